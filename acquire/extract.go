package acquire

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ngx-go/ngx/errors"
)

// maxEntrySize bounds a single archive member. The largest file in an
// nginx release tree is well under this.
const maxEntrySize = 256 << 20

// extractTarGz unpacks archive under dest. Entries escaping dest,
// absolute names, and link targets outside the tree are rejected: the
// archive content is attacker-influenced until the signature check has
// passed, and even after it this code stays defensive about paths.
func extractTarGz(archive, dest string) error {
	f, err := os.Open(archive)
	if err != nil {
		return errors.Acquisition(errors.KindExtraction, err, "open archive")
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return errors.Acquisition(errors.KindExtraction, err, "gzip stream")
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Acquisition(errors.KindExtraction, err, "read archive entry")
		}

		target, err := securePath(dest, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return errors.Acquisition(errors.KindExtraction, err, "create dir "+hdr.Name)
			}
		case tar.TypeReg:
			if hdr.Size > maxEntrySize {
				return errors.Acquisition(errors.KindExtraction, nil, "oversized entry "+hdr.Name)
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return errors.Acquisition(errors.KindExtraction, err, "create parent for "+hdr.Name)
			}
			if err := writeFile(target, tr, hdr.FileInfo().Mode().Perm()); err != nil {
				return errors.Acquisition(errors.KindExtraction, err, "write "+hdr.Name)
			}
		case tar.TypeSymlink:
			if filepath.IsAbs(hdr.Linkname) {
				return errors.Acquisition(errors.KindExtraction, nil, "absolute symlink "+hdr.Name)
			}
			if _, err := securePath(dest, filepath.Join(filepath.Dir(hdr.Name), hdr.Linkname)); err != nil {
				return err
			}
			if err := os.Symlink(hdr.Linkname, target); err != nil {
				return errors.Acquisition(errors.KindExtraction, err, "symlink "+hdr.Name)
			}
		default:
			// Device nodes, fifos and hard links have no business in a
			// source release.
			return errors.Acquisition(errors.KindExtraction, nil, "unexpected entry type in "+hdr.Name)
		}
	}
}

func securePath(dest, name string) (string, error) {
	if filepath.IsAbs(name) {
		return "", errors.Acquisition(errors.KindExtraction, nil, "absolute path "+name)
	}
	target := filepath.Join(dest, name)
	if target != dest && !strings.HasPrefix(target, dest+string(os.PathSeparator)) {
		return "", errors.Acquisition(errors.KindExtraction, nil, "path escapes archive root: "+name)
	}
	return target, nil
}

func writeFile(target string, r io.Reader, mode os.FileMode) error {
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, io.LimitReader(r, maxEntrySize+1)); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
