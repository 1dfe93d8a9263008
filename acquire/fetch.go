package acquire

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ngx-go/ngx/errors"
)

// Mirrors is the fixed set of release archive origins, tried in the
// order a parallel HEAD probe ranks them.
var Mirrors = []string{
	"https://nginx.org/download",
	"https://freenginx.org/download",
}

var httpClient = &http.Client{Timeout: 5 * time.Minute}

// fetchRelease downloads nginx-<release>.tar.gz and its detached
// signature into the cache root, returning both paths.
func fetchRelease(ctx context.Context, release, cacheRoot string) (archive, sig string, err error) {
	name := "nginx-" + release + ".tar.gz"
	archive = filepath.Join(cacheRoot, name)
	sig = archive + ".asc"

	mirror, err := probeMirrors(ctx, name)
	if err != nil {
		return "", "", err
	}
	Logger().Info("selected mirror", zap.String("mirror", mirror))

	if err := download(ctx, mirror+"/"+name, archive); err != nil {
		return "", "", err
	}
	if err := download(ctx, mirror+"/"+name+".asc", sig); err != nil {
		return "", "", err
	}
	return archive, sig, nil
}

// probeMirrors HEADs every mirror in parallel and returns the first
// that has the archive. All mirrors failing is a fatal network error.
func probeMirrors(ctx context.Context, name string) (string, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	var winner string
	lastErr := fmt.Errorf("no mirrors configured")

	for _, m := range Mirrors {
		g.Go(func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodHead, m+"/"+name, nil)
			if err != nil {
				return nil
			}
			resp, err := httpClient.Do(req)
			if err != nil {
				mu.Lock()
				lastErr = err
				mu.Unlock()
				return nil
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				mu.Lock()
				lastErr = fmt.Errorf("%s: status %s", m, resp.Status)
				mu.Unlock()
				return nil
			}
			mu.Lock()
			if winner == "" {
				winner = m
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", errors.Acquisition(errors.KindNetwork, err, "mirror probe")
	}
	if winner == "" {
		return "", errors.Acquisition(errors.KindNetwork, lastErr, "no mirror has "+name)
	}
	return winner, nil
}

func download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Acquisition(errors.KindNetwork, err, "build request for "+url)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return errors.Acquisition(errors.KindNetwork, err, "fetch "+url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Acquisition(errors.KindNetwork, nil,
			fmt.Sprintf("fetch %s: status %s", url, resp.Status))
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
	if err != nil {
		return errors.Acquisition(errors.KindExtraction, err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return errors.Acquisition(errors.KindNetwork, err, "download "+url)
	}
	if err := tmp.Close(); err != nil {
		return errors.Acquisition(errors.KindExtraction, err, "finish "+dest)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return errors.Acquisition(errors.KindExtraction, err, "place "+dest)
	}
	Logger().Debug("downloaded", zap.String("url", url), zap.String("dest", dest))
	return nil
}
