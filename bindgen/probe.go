package bindgen

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ngx-go/ngx/bindgen/internal/cparse"
	"github.com/ngx-go/ngx/configure"
	"github.com/ngx-go/ngx/errors"
)

// FieldLayout is the probed position of one struct member.
type FieldLayout struct {
	Name   string
	Offset uint64
	Size   uint64
}

// Layout is the probed layout of one struct on the target platform.
type Layout struct {
	Size   uint64
	Align  uint64
	Fields []FieldLayout
}

// ProbeRequest names everything the probe must measure.
type ProbeRequest struct {
	Structs []*cparse.Struct
	Consts  []string
}

// ProbeResult carries the measured layouts and constant values.
type ProbeResult struct {
	Structs map[string]*Layout
	Consts  map[string]int64
}

// Prober measures struct layout and constant values against the
// configured headers. The production implementation compiles and runs
// a C program; tests substitute a fake.
type Prober interface {
	Probe(ctx context.Context, req *ProbeRequest) (*ProbeResult, error)
}

// CCProber compiles the probe program with the same compiler and
// header set the core was built with, runs it, and parses its report.
type CCProber struct {
	CC        string
	Artifacts *configure.Artifacts
}

func (p *CCProber) Probe(ctx context.Context, req *ProbeRequest) (*ProbeResult, error) {
	cc := p.CC
	if cc == "" {
		cc = "cc"
	}

	dir, err := os.MkdirTemp("", "ngx-probe-")
	if err != nil {
		return nil, errors.Wrap(errors.PhaseBind, errors.KindLayout, err, "creating probe workspace")
	}
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "probe.c")
	bin := filepath.Join(dir, "probe")
	if err := os.WriteFile(src, []byte(ProbeSource(req)), 0o644); err != nil {
		return nil, errors.Wrap(errors.PhaseBind, errors.KindLayout, err, "writing probe source")
	}

	args := []string{"-o", bin}
	for _, inc := range p.Artifacts.IncludeDirs {
		args = append(args, "-I", inc)
	}
	args = append(args, src)

	Logger().Debug("compiling layout probe",
		zap.String("cc", cc),
		zap.Int("structs", len(req.Structs)),
		zap.Int("consts", len(req.Consts)))

	cmd := exec.CommandContext(ctx, cc, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, errors.New(errors.PhaseBind, errors.KindLayout).
			Cause(err).
			Output(string(out)).
			Detail("probe compilation failed; headers and allow-list disagree").
			Build()
	}

	var out bytes.Buffer
	run := exec.CommandContext(ctx, bin)
	run.Stdout = &out
	if err := run.Run(); err != nil {
		return nil, errors.Wrap(errors.PhaseBind, errors.KindLayout, err, "probe execution failed")
	}

	return ParseProbeOutput(out.String())
}

// ProbeSource renders the probe program. It prints one line per
// measurement; bit-field and opaque members cannot be taken by
// offsetof and are left to padding in the emitted mirrors.
func ProbeSource(req *ProbeRequest) string {
	var b strings.Builder

	b.WriteString("#include <stdio.h>\n")
	b.WriteString("#include <stddef.h>\n\n")
	b.WriteString("#include <ngx_config.h>\n")
	b.WriteString("#include <ngx_core.h>\n")
	b.WriteString("#include <ngx_http.h>\n\n")
	b.WriteString("int\nmain(void)\n{\n")

	for _, st := range req.Structs {
		// Tagged spellings contain a space; the report mangles it so
		// lines stay whitespace-splittable.
		key := strings.ReplaceAll(st.Name, " ", ":")
		fmt.Fprintf(&b, "    printf(\"struct %s %%zu %%zu\\n\", sizeof(%s), _Alignof(%s));\n",
			key, st.Name, st.Name)
		for _, f := range st.Fields {
			if f.Name == "" || f.Bits > 0 || f.Opaque {
				continue
			}
			fmt.Fprintf(&b, "    printf(\"field %s %s %%zu %%zu\\n\", offsetof(%s, %s), sizeof(((%s *) 0)->%s));\n",
				key, f.Name, st.Name, f.Name, st.Name, f.Name)
		}
	}
	for _, name := range req.Consts {
		fmt.Fprintf(&b, "    printf(\"const %s %%ld\\n\", (long) (%s));\n", name, name)
	}

	b.WriteString("    return 0;\n}\n")
	return b.String()
}

// ParseProbeOutput decodes the probe report.
func ParseProbeOutput(out string) (*ProbeResult, error) {
	res := &ProbeResult{
		Structs: make(map[string]*Layout),
		Consts:  make(map[string]int64),
	}

	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		bad := func() error {
			return errors.New(errors.PhaseBind, errors.KindLayout).
				Detail("malformed probe report line %q", line).
				Build()
		}

		switch fields[0] {
		case "struct":
			if len(fields) != 4 {
				return nil, bad()
			}
			size, err1 := strconv.ParseUint(fields[2], 10, 64)
			align, err2 := strconv.ParseUint(fields[3], 10, 64)
			if err1 != nil || err2 != nil {
				return nil, bad()
			}
			res.Structs[strings.ReplaceAll(fields[1], ":", " ")] = &Layout{Size: size, Align: align}
		case "field":
			if len(fields) != 5 {
				return nil, bad()
			}
			l := res.Structs[strings.ReplaceAll(fields[1], ":", " ")]
			if l == nil {
				return nil, bad()
			}
			off, err1 := strconv.ParseUint(fields[3], 10, 64)
			size, err2 := strconv.ParseUint(fields[4], 10, 64)
			if err1 != nil || err2 != nil {
				return nil, bad()
			}
			l.Fields = append(l.Fields, FieldLayout{Name: fields[2], Offset: off, Size: size})
		case "const":
			if len(fields) != 3 {
				return nil, bad()
			}
			v, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil {
				return nil, bad()
			}
			res.Consts[fields[1]] = v
		default:
			return nil, bad()
		}
	}
	return res, nil
}
