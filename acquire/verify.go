package acquire

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/openpgp"

	"github.com/ngx-go/ngx/buildcfg"
	"github.com/ngx-go/ngx/errors"
)

// verifyRelease checks the downloaded archive. The detached PGP
// signature against the operator's keyring is mandatory; when
// cfg.ReleaseSums pins the release, the sha256 must match too.
func verifyRelease(cfg buildcfg.Config, archive, sig string) error {
	if want, ok := cfg.ReleaseSums[cfg.Release]; ok {
		got, err := fileSHA256(archive)
		if err != nil {
			return errors.Acquisition(errors.KindChecksum, err, "hash archive")
		}
		if got != want {
			return errors.Acquisition(errors.KindChecksum, nil,
				fmt.Sprintf("archive sha256 mismatch for %s: got %s, want %s", cfg.Release, got, want))
		}
	}

	keyring, err := signingKeyring(cfg)
	if err != nil {
		return err
	}
	return verifyDetached(keyring, archive, sig)
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// verifyDetached checks an armored detached signature over the archive
// against the given keyring.
func verifyDetached(keyring openpgp.EntityList, archive, sig string) error {
	data, err := os.Open(archive)
	if err != nil {
		return errors.Acquisition(errors.KindSignature, err, "open archive")
	}
	defer data.Close()

	sigFile, err := os.Open(sig)
	if err != nil {
		return errors.Acquisition(errors.KindSignature, err, "open signature")
	}
	defer sigFile.Close()

	if _, err := openpgp.CheckArmoredDetachedSignature(keyring, data, sigFile); err != nil {
		return errors.Acquisition(errors.KindSignature, err, "signature verification failed")
	}
	return nil
}

// verifyTreeRelease checks that the extracted tree identifies itself
// as the requested release. A validly signed archive for the wrong
// release still fails the build here.
func verifyTreeRelease(dir, release string) error {
	path := filepath.Join(dir, "src", "core", "nginx.h")
	f, err := os.Open(path)
	if err != nil {
		return errors.Acquisition(errors.KindChecksum, err, "open "+path)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, "#define NGINX_VERSION") {
			continue
		}
		got := strings.Trim(strings.TrimSpace(strings.TrimPrefix(line, "#define NGINX_VERSION")), `"`)
		if got != release {
			return errors.Acquisition(errors.KindChecksum, nil,
				fmt.Sprintf("tree identifies as release %s, want %s", got, release))
		}
		return nil
	}
	if err := sc.Err(); err != nil {
		return errors.Acquisition(errors.KindChecksum, err, "scan "+path)
	}
	return errors.Acquisition(errors.KindChecksum, nil, "no NGINX_VERSION in "+path)
}
