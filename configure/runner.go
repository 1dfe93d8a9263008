package configure

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ngx-go/ngx/acquire"
	"github.com/ngx-go/ngx/buildcfg"
	"github.com/ngx-go/ngx/errors"
)

// entryObject is the native process entry point, excluded from the
// archive because the host process owns main.
const entryObject = "src/core/nginx.o"

const stampName = ".ngx-go-stamp"

// Artifacts is the contract handed to the binding generator. Everything
// in it is derived from the configured build tree, never discovered
// independently.
type Artifacts struct {
	// SourceDir is the configured source tree root.
	SourceDir string
	// BuildDir is the objs directory inside it.
	BuildDir string
	// IncludeDirs are the header search paths the native compiler used,
	// in Makefile order.
	IncludeDirs []string
	// Defines are the configuration-dependent preprocessor defines from
	// ngx_auto_config.h.
	Defines map[string]string
	// Objects are the compiled core objects, entry object excluded.
	Objects []string
	// Archive is the static archive of Objects for built-in linkage.
	Archive string
	// BuildLog is the captured configure and compile output.
	BuildLog string
}

// Runner executes the native configure and build steps for one frozen
// configuration.
type Runner struct {
	cfg buildcfg.Config
	src *acquire.Source
}

func NewRunner(cfg buildcfg.Config, src *acquire.Source) *Runner {
	return &Runner{cfg: cfg, src: src}
}

// Run configures and compiles the native core, returning the artifacts
// contract. Repeated runs with an identical configuration and source
// tree reuse the configured tree and produce identical artifacts.
func (r *Runner) Run(ctx context.Context) (*Artifacts, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}

	logPath := filepath.Join(r.src.Dir, "ngx-go-build.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Configure(err, "", "open build log")
	}
	defer logFile.Close()

	if err := r.configure(ctx, logFile); err != nil {
		return nil, err
	}
	if err := r.compile(ctx, logFile); err != nil {
		return nil, err
	}
	return r.collect(logPath)
}

// configure runs the native configure script unless a stamp from the
// same configuration is already present.
func (r *Runner) configure(ctx context.Context, logFile *os.File) error {
	buildDir := filepath.Join(r.src.Dir, "objs")
	stamp := filepath.Join(buildDir, stampName)
	if prev, err := os.ReadFile(stamp); err == nil && strings.TrimSpace(string(prev)) == r.cfg.CacheKey() {
		Logger().Info("configure up to date", zap.String("dir", r.src.Dir))
		return nil
	}

	args := r.cfg.ConfigureArgs()
	Logger().Info("running configure",
		zap.String("dir", r.src.Dir),
		zap.Strings("args", args))

	out, err := r.execCaptured(ctx, logFile, r.src.Dir, "./configure", args...)
	if err != nil {
		return errors.Configure(err, out, "configure "+strings.Join(args, " "))
	}

	if err := os.WriteFile(stamp, []byte(r.cfg.CacheKey()+"\n"), 0o644); err != nil {
		return errors.Configure(err, "", "write configure stamp")
	}
	return nil
}

// compile builds the core objects through the generated Makefile.
func (r *Runner) compile(ctx context.Context, logFile *os.File) error {
	jobs := strconv.Itoa(runtime.NumCPU())
	Logger().Info("compiling native core", zap.String("jobs", jobs))

	out, err := r.execCaptured(ctx, logFile, r.src.Dir, "make", "-j", jobs, "-f", "objs/Makefile", "build")
	if err != nil {
		return errors.Compile(err, out, "make build")
	}
	return nil
}

// collect gathers include dirs, defines and objects from the configured
// tree, then archives the objects minus the entry point.
func (r *Runner) collect(logPath string) (*Artifacts, error) {
	buildDir := filepath.Join(r.src.Dir, "objs")

	includes, err := ParseMakefileIncludes(filepath.Join(buildDir, "Makefile"))
	if err != nil {
		return nil, err
	}

	defines, err := ParseAutoConfig(filepath.Join(buildDir, "ngx_auto_config.h"))
	if err != nil {
		return nil, err
	}

	var objects []string
	err = filepath.WalkDir(buildDir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".o") {
			return err
		}
		rel, relErr := filepath.Rel(buildDir, path)
		if relErr != nil {
			return relErr
		}
		if filepath.ToSlash(rel) == entryObject {
			return nil
		}
		objects = append(objects, path)
		return nil
	})
	if err != nil {
		return nil, errors.Compile(err, "", "collect objects")
	}
	if len(objects) == 0 {
		return nil, errors.Compile(nil, "", "no objects produced under "+buildDir)
	}

	archive := filepath.Join(buildDir, "libnginx.a")
	arArgs := append([]string{"rcs", archive}, objects...)
	if out, err := exec.Command("ar", arArgs...).CombinedOutput(); err != nil {
		return nil, errors.Compile(err, string(out), "archive core objects")
	}

	Logger().Info("build complete",
		zap.Int("objects", len(objects)),
		zap.Int("include_dirs", len(includes)),
		zap.String("archive", archive))

	return &Artifacts{
		SourceDir:   r.src.Dir,
		BuildDir:    buildDir,
		IncludeDirs: includes,
		Defines:     defines,
		Objects:     objects,
		Archive:     archive,
		BuildLog:    logPath,
	}, nil
}

// execCaptured runs a command with output teed to the build log and
// returned for error reporting.
func (r *Runner) execCaptured(ctx context.Context, logFile *os.File, dir, name string, args ...string) (string, error) {
	var buf bytes.Buffer
	sink := io.MultiWriter(&buf, logFile)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = sink
	cmd.Stderr = sink
	err := cmd.Run()
	return buf.String(), err
}
