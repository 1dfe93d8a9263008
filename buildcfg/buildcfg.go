package buildcfg

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/coreos/go-semver/semver"

	"github.com/ngx-go/ngx/errors"
)

// Sanitizer selects compiler instrumentation for the native build.
type Sanitizer string

const (
	SanitizerAddress   Sanitizer = "address"
	SanitizerUndefined Sanitizer = "undefined"
	SanitizerThread    Sanitizer = "thread"
)

// Features is the fixed enumerated feature set accepted by the native
// configure invocation.
type Features struct {
	Sanitizers []Sanitizer
	SSL        bool
	HTTP2      bool
	HTTP3      bool
	Threads    bool
	Debug      bool
}

// Config drives both the native compilation and the binding generation
// so the two never drift. Treat values as frozen once handed to the
// pipeline; Config is a value type and every consumer takes its own
// copy.
type Config struct {
	// Release is the nginx release identifier, e.g. "1.27.4".
	Release string

	// SourceDir, when set, points at an existing source tree and
	// bypasses acquisition entirely.
	SourceDir string

	// CacheRoot is the build cache directory. Safe to delete at any
	// time; keyed by CacheKey.
	CacheRoot string

	// KeyringPath points at an armored PGP keyring holding the nginx
	// signing keys, published at https://nginx.org/en/pgp_keys.html.
	// Downloads are refused without one; the NGX_PGP_KEYRING
	// environment variable overrides this field. Trees supplied via
	// SourceDir or already present in the cache do not need it.
	KeyringPath string

	// ReleaseSums optionally pins the sha256 of release archives,
	// keyed by release identifier. When the requested release has an
	// entry the downloaded archive must match it in addition to
	// carrying a valid signature.
	ReleaseSums map[string]string

	// CC overrides the C compiler passed to configure.
	CC string

	// ModuleDirs are extension module source directories handed to
	// configure as additional module paths.
	ModuleDirs []string

	ExtraCFlags        []string
	ExtraConfigureArgs []string

	Features Features
}

// minHTTP3 is the first release shipping the QUIC listener.
var minHTTP3 = semver.Version{Major: 1, Minor: 25, Patch: 0}

// Version parses the release identifier.
func (c Config) Version() (*semver.Version, error) {
	v, err := semver.NewVersion(c.Release)
	if err != nil {
		return nil, errors.Acquisition(errors.KindUnsupported, err,
			fmt.Sprintf("unsupported release identifier %q", c.Release))
	}
	return v, nil
}

// Validate checks the configuration for contradictions before any work
// is done. Errors here are fatal to the build.
func (c Config) Validate() error {
	v, err := c.Version()
	if err != nil {
		return err
	}
	if c.Features.HTTP3 && !c.Features.SSL {
		return errors.InvalidInput(errors.PhaseConfigure, "HTTP/3 requires SSL")
	}
	if c.Features.HTTP3 && v.LessThan(minHTTP3) {
		return errors.Unsupported(errors.PhaseConfigure,
			fmt.Sprintf("HTTP/3 requires release %s or later, have %s", minHTTP3, v))
	}
	for _, s := range c.Features.Sanitizers {
		switch s {
		case SanitizerAddress, SanitizerUndefined, SanitizerThread:
		default:
			return errors.InvalidInput(errors.PhaseConfigure,
				fmt.Sprintf("unknown sanitizer %q", s))
		}
	}
	return nil
}

// ConfigureArgs builds the native configure invocation. The ordering is
// fully deterministic for a given Config so repeated builds are
// reproducible and cache-friendly: fixed flags first, then sorted
// feature flags, then module dirs and extra args in caller order.
func (c Config) ConfigureArgs() []string {
	args := []string{
		"--prefix=.",
		"--with-compat",
	}

	var features []string
	if c.Features.SSL {
		features = append(features, "--with-http_ssl_module")
	}
	if c.Features.HTTP2 {
		features = append(features, "--with-http_v2_module")
	}
	if c.Features.HTTP3 {
		features = append(features, "--with-http_v3_module")
	}
	if c.Features.Threads {
		features = append(features, "--with-threads")
	}
	if c.Features.Debug {
		features = append(features, "--with-debug")
	}
	sort.Strings(features)
	args = append(args, features...)

	cflags := append([]string(nil), c.ExtraCFlags...)
	sanitizers := append([]Sanitizer(nil), c.Features.Sanitizers...)
	sort.Slice(sanitizers, func(i, j int) bool { return sanitizers[i] < sanitizers[j] })
	for _, s := range sanitizers {
		cflags = append(cflags, "-fsanitize="+string(s), "-fno-omit-frame-pointer")
	}
	if c.Features.Debug {
		cflags = append(cflags, "-g")
	}
	if len(cflags) > 0 {
		args = append(args, "--with-cc-opt="+strings.Join(cflags, " "))
	}
	if len(sanitizers) > 0 {
		ldflags := make([]string, 0, len(sanitizers))
		for _, s := range sanitizers {
			ldflags = append(ldflags, "-fsanitize="+string(s))
		}
		args = append(args, "--with-ld-opt="+strings.Join(ldflags, " "))
	}
	if c.CC != "" {
		args = append(args, "--with-cc="+c.CC)
	}

	for _, dir := range c.ModuleDirs {
		args = append(args, "--add-module="+dir)
	}
	args = append(args, c.ExtraConfigureArgs...)

	return args
}

// CacheKey derives the build cache key from every input that affects
// the produced tree. Identical configurations map to identical keys.
func (c Config) CacheKey() string {
	h := sha256.New()
	writeField := func(name, value string) {
		fmt.Fprintf(h, "%s=%s\n", name, value)
	}
	writeField("release", c.Release)
	writeField("cc", c.CC)
	writeField("args", strings.Join(c.ConfigureArgs(), "\x00"))
	return hex.EncodeToString(h.Sum(nil))[:32]
}

// CacheDirName is the directory name under CacheRoot for this
// configuration.
func (c Config) CacheDirName() string {
	return fmt.Sprintf("nginx-%s-%s", c.Release, c.CacheKey()[:12])
}
