package acquire

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ngx-go/ngx/buildcfg"
	"github.com/ngx-go/ngx/errors"
)

func TestAcquire_ProvidedSourceDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "configure"), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	src, err := Acquire(context.Background(), buildcfg.Config{Release: "1.27.4", SourceDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	if src.Dir != dir {
		t.Errorf("dir: got %q, want %q", src.Dir, dir)
	}
	if src.Cached {
		t.Error("provided dir reported as cached")
	}
}

func TestAcquire_ProvidedSourceDirWithoutConfigure(t *testing.T) {
	_, err := Acquire(context.Background(), buildcfg.Config{Release: "1.27.4", SourceDir: t.TempDir()})
	if !errors.IsKind(err, errors.KindNotFound) {
		t.Fatalf("got %v, want not_found", err)
	}
}

func TestAcquire_CacheHit(t *testing.T) {
	cfg := buildcfg.Config{Release: "1.27.4", CacheRoot: t.TempDir()}

	cached := filepath.Join(cfg.CacheRoot, cfg.CacheDirName())
	if err := os.MkdirAll(cached, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cached, "configure"), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	src, err := Acquire(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !src.Cached {
		t.Error("cache hit not reported")
	}
	if src.Dir != cached {
		t.Errorf("dir: got %q, want %q", src.Dir, cached)
	}
}

func TestAcquire_InvalidConfig(t *testing.T) {
	_, err := Acquire(context.Background(), buildcfg.Config{Release: "not-a-version"})
	if !errors.IsKind(err, errors.KindUnsupported) {
		t.Fatalf("got %v, want unsupported", err)
	}
}
