package bindgen

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ngx-go/ngx/bindgen/internal/cparse"
	"github.com/ngx-go/ngx/configure"
	"github.com/ngx-go/ngx/errors"
)

// Generator binds the allow-listed surface of a configured source
// tree. Zero-value optional fields get working defaults.
type Generator struct {
	Allow     Allowlist
	Artifacts *configure.Artifacts
	Release   string

	// OutDir receives the mirror files; cgo wrappers and shims go to
	// OutDir/call.
	OutDir string

	// Package names the mirror package, "ffi" by default. The wrapper
	// package is always named call.
	Package string

	// CC overrides the compiler used by the default prober.
	CC string

	// Prober substitutes the layout oracle, for tests.
	Prober Prober
}

// Run scans the configured headers, probes layout and constant values,
// and writes the generated files, returning their paths.
func (g *Generator) Run(ctx context.Context) ([]string, error) {
	pkg := g.Package
	if pkg == "" {
		pkg = "ffi"
	}
	prober := g.Prober
	if prober == nil {
		prober = &CCProber{CC: g.CC, Artifacts: g.Artifacts}
	}

	ix, err := g.scanHeaders()
	if err != nil {
		return nil, err
	}
	structs, funcs, vars, consts, err := resolve(g.Allow.sorted(), ix)
	if err != nil {
		return nil, err
	}

	Logger().Info("binding configured surface",
		zap.Int("structs", len(structs)),
		zap.Int("funcs", len(funcs)),
		zap.Int("consts", len(consts)))

	res, err := prober.Probe(ctx, &ProbeRequest{Structs: structs, Consts: consts})
	if err != nil {
		return nil, err
	}

	types, err := emitTypes(g.Release, pkg, structs, res, ix.Typedefs)
	if err != nil {
		return nil, err
	}
	constants, err := emitConsts(g.Release, pkg, consts, res)
	if err != nil {
		return nil, err
	}
	shims, err := emitShims(g.Release, structs, funcs, vars)
	if err != nil {
		return nil, err
	}
	wrappers, err := emitFuncs(g.Release, "call", structs, funcs, vars)
	if err != nil {
		return nil, err
	}
	asserts := emitAssert(g.Release, structs, res)

	callDir := filepath.Join(g.OutDir, "call")
	if err := os.MkdirAll(callDir, 0o755); err != nil {
		return nil, errors.Wrap(errors.PhaseBind, errors.KindLayout, err, "creating output directory")
	}

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(g.OutDir, "zz_generated_types.go"), types},
		{filepath.Join(g.OutDir, "zz_generated_const.go"), constants},
		{filepath.Join(callDir, "zz_generated_shims.h"), shims},
		{filepath.Join(callDir, "zz_generated_funcs.go"), wrappers},
		// The assert file lives in the cgo package so a mismatched
		// header set fails its native compile step.
		{filepath.Join(callDir, "zz_layout_assert.c"), asserts},
	}

	var paths []string
	for _, f := range files {
		if err := os.WriteFile(f.path, []byte(f.content), 0o644); err != nil {
			return nil, errors.Wrap(errors.PhaseBind, errors.KindLayout, err, "writing "+filepath.Base(f.path))
		}
		paths = append(paths, f.path)
	}
	return paths, nil
}

// scanHeaders indexes every header in the include directories that
// belong to the source tree itself. System include paths contribute
// nothing bindable and are skipped.
func (g *Generator) scanHeaders() (*cparse.Index, error) {
	ix := cparse.NewIndex()
	for _, dir := range g.Artifacts.IncludeDirs {
		if !strings.HasPrefix(dir, g.Artifacts.SourceDir) &&
			!strings.HasPrefix(dir, g.Artifacts.BuildDir) {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseBind, errors.KindParse, err, "reading include directory")
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".h") {
				continue
			}
			b, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				return nil, errors.Wrap(errors.PhaseBind, errors.KindParse, err, "reading header")
			}
			ix.Scan(string(b))
		}
	}
	return ix, nil
}

// resolve checks the allow-list against the scanned declarations.
// Every entry must be found; a miss means the list has drifted from
// the native release and binding stops.
func resolve(allow Allowlist, ix *cparse.Index) ([]*cparse.Struct, []*cparse.Func, []*cparse.Var, []string, error) {
	var structs []*cparse.Struct
	for _, name := range allow.Structs {
		st, ok := ix.Structs[name]
		if !ok {
			// Forward-declared typedefs resolve to the tagged
			// definition.
			if def, found := ix.Typedefs[name]; found {
				st, ok = ix.Structs[def]
			}
		}
		if !ok {
			return nil, nil, nil, nil, errors.UnresolvedSymbol(name)
		}
		structs = append(structs, st)
	}
	var funcs []*cparse.Func
	for _, name := range allow.Funcs {
		fn, ok := ix.Funcs[name]
		if !ok {
			return nil, nil, nil, nil, errors.UnresolvedSymbol(name)
		}
		funcs = append(funcs, fn)
	}
	var vars []*cparse.Var
	for _, name := range allow.Vars {
		v, ok := ix.Vars[name]
		if !ok {
			return nil, nil, nil, nil, errors.UnresolvedSymbol(name)
		}
		vars = append(vars, v)
	}
	for _, name := range allow.Consts {
		if _, ok := ix.Macros[name]; !ok {
			return nil, nil, nil, nil, errors.UnresolvedSymbol(name)
		}
	}
	return structs, funcs, vars, allow.Consts, nil
}
