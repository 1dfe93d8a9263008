package acquire

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/ngx-go/ngx/buildcfg"
	"github.com/ngx-go/ngx/errors"
)

// Source is an acquired, verified nginx source tree.
type Source struct {
	// Dir is the root of the extracted tree (contains "configure").
	Dir string
	// Release is the release identifier the tree was verified as.
	Release string
	// Cached reports whether the tree came from the build cache rather
	// than a fresh download.
	Cached bool
}

// Acquire resolves the source tree for cfg.
//
// cfg.SourceDir, when set, is accepted verbatim after a sanity check
// and no network access happens. Otherwise the cache under
// cfg.CacheRoot is consulted, and on a miss the release is downloaded,
// verified, and extracted into the cache.
func Acquire(ctx context.Context, cfg buildcfg.Config) (*Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.SourceDir != "" {
		if _, err := os.Stat(filepath.Join(cfg.SourceDir, "configure")); err != nil {
			return nil, errors.Acquisition(errors.KindNotFound, err,
				"provided source dir has no configure script: "+cfg.SourceDir)
		}
		Logger().Info("using provided source tree", zap.String("dir", cfg.SourceDir))
		return &Source{Dir: cfg.SourceDir, Release: cfg.Release}, nil
	}

	cacheRoot := cfg.CacheRoot
	if cacheRoot == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, errors.Acquisition(errors.KindNotFound, err, "no cache directory available")
		}
		cacheRoot = filepath.Join(base, "ngx-go")
	}
	if err := os.MkdirAll(cacheRoot, 0o755); err != nil {
		return nil, errors.Acquisition(errors.KindExtraction, err, "create cache root")
	}

	// One build at a time per cache root. The lock is advisory and
	// released implicitly when the process exits.
	unlock, err := lockCache(cacheRoot)
	if err != nil {
		return nil, err
	}
	defer unlock()

	dest := filepath.Join(cacheRoot, cfg.CacheDirName())
	if _, err := os.Stat(filepath.Join(dest, "configure")); err == nil {
		Logger().Info("cache hit", zap.String("dir", dest))
		return &Source{Dir: dest, Release: cfg.Release, Cached: true}, nil
	}

	archive, sig, err := fetchRelease(ctx, cfg.Release, cacheRoot)
	if err != nil {
		return nil, err
	}

	if err := verifyRelease(cfg, archive, sig); err != nil {
		return nil, err
	}

	stage := dest + ".partial"
	if err := os.RemoveAll(stage); err != nil {
		return nil, errors.Acquisition(errors.KindExtraction, err, "clear staging dir")
	}
	if err := extractTarGz(archive, stage); err != nil {
		return nil, err
	}

	// The tarball unpacks into nginx-<release>/.
	unpacked := filepath.Join(stage, "nginx-"+cfg.Release)
	if _, err := os.Stat(filepath.Join(unpacked, "configure")); err != nil {
		return nil, errors.Acquisition(errors.KindExtraction, err,
			"archive did not contain nginx-"+cfg.Release)
	}
	if err := verifyTreeRelease(unpacked, cfg.Release); err != nil {
		return nil, err
	}
	if err := os.Rename(unpacked, dest); err != nil {
		return nil, errors.Acquisition(errors.KindExtraction, err, "move into cache")
	}
	_ = os.RemoveAll(stage)

	Logger().Info("acquired release",
		zap.String("release", cfg.Release),
		zap.String("dir", dest))
	return &Source{Dir: dest, Release: cfg.Release}, nil
}

func lockCache(cacheRoot string) (func(), error) {
	f, err := os.OpenFile(filepath.Join(cacheRoot, ".lock"), os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, errors.Acquisition(errors.KindExtraction, err, "open cache lock")
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		f.Close()
		return nil, errors.Acquisition(errors.KindExtraction, err, "lock cache")
	}
	return func() {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
		_ = f.Close()
	}, nil
}
