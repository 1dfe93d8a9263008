package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/ngx-go/ngx"
	"github.com/ngx-go/ngx/acquire"
	"github.com/ngx-go/ngx/bindgen"
	"github.com/ngx-go/ngx/buildcfg"
	"github.com/ngx-go/ngx/configure"
)

func main() {
	var (
		release     = flag.String("release", ngx.DefaultRelease, "nginx release to build against")
		source      = flag.String("source", "", "Existing source tree, skips download")
		cache       = flag.String("cache", "", "Build cache directory (default: user cache dir)")
		keyring     = flag.String("keyring", "", "Armored PGP keyring with the nginx signing keys (required for downloads)")
		cc          = flag.String("cc", "", "C compiler passed to configure")
		modules     = flag.String("modules", "", "Extension module dirs (comma-separated)")
		cflags      = flag.String("cflags", "", "Extra compiler flags (comma-separated)")
		confArgs    = flag.String("configure-args", "", "Extra configure arguments (comma-separated)")
		sanitize    = flag.String("sanitize", "", "Sanitizers: address,undefined,thread")
		ssl         = flag.Bool("ssl", true, "Build with SSL support")
		http2       = flag.Bool("http2", false, "Build with HTTP/2 support")
		http3       = flag.Bool("http3", false, "Build with HTTP/3 support (requires -ssl)")
		threads     = flag.Bool("threads", false, "Build with thread pool support")
		debug       = flag.Bool("debug", false, "Build with debug logging")
		out         = flag.String("out", "ffi", "Output directory for generated bindings")
		noBindgen   = flag.Bool("no-bindgen", false, "Stop after the native build")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	var sanitizers []buildcfg.Sanitizer
	for _, s := range splitList(*sanitize) {
		sanitizers = append(sanitizers, buildcfg.Sanitizer(s))
	}

	cfg := buildcfg.Config{
		Release:            *release,
		SourceDir:          *source,
		CacheRoot:          *cache,
		KeyringPath:        *keyring,
		CC:                 *cc,
		ModuleDirs:         splitList(*modules),
		ExtraCFlags:        splitList(*cflags),
		ExtraConfigureArgs: splitList(*confArgs),
		Features: buildcfg.Features{
			Sanitizers: sanitizers,
			SSL:        *ssl,
			HTTP2:      *http2,
			HTTP3:      *http3,
			Threads:    *threads,
			Debug:      *debug,
		},
	}

	if *interactive {
		if err := runInteractive(cfg, *out); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger := newLogger(*verbose)
	defer logger.Sync()
	acquire.SetLogger(logger)
	configure.SetLogger(logger)
	bindgen.SetLogger(logger)

	if err := run(context.Background(), cfg, *out, *noBindgen); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg buildcfg.Config, outDir string, noBindgen bool) error {
	src, err := acquire.Acquire(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Source: %s", src.Dir)
	if src.Cached {
		fmt.Printf(" (cached)")
	}
	fmt.Println()

	art, err := configure.NewRunner(cfg, src).Run(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Archive: %s\n", art.Archive)
	fmt.Printf("Objects: %d\n", len(art.Objects))
	fmt.Printf("Build log: %s\n", art.BuildLog)

	if noBindgen {
		return nil
	}

	gen := &bindgen.Generator{
		Allow:     bindgen.Default(),
		Artifacts: art,
		Release:   cfg.Release,
		OutDir:    outDir,
		CC:        cfg.CC,
	}
	files, err := gen.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\nGenerated files:\n")
	for _, f := range files {
		fmt.Printf("  %s\n", f)
	}
	return nil
}

// newLogger picks the console encoder on a terminal and the production
// JSON encoder otherwise, so CI output stays machine-readable.
func newLogger(verbose bool) *zap.Logger {
	var zcfg zap.Config
	if term.IsTerminal(int(os.Stderr.Fd())) {
		zcfg = zap.NewDevelopmentConfig()
		if !verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		}
	} else {
		zcfg = zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
	}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
