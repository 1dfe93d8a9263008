package configure

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ngx-go/ngx/errors"
)

// ParseMakefileIncludes reads the autoconf-generated Makefile and
// returns every include path from its ALL_INCS block, relative entries
// resolved against the source root (the Makefile lives in objs/).
//
// The block looks like:
//
//	ALL_INCS = -I src/core \
//		-I src/event \
//		-I objs
func ParseMakefileIncludes(makefilePath string) ([]string, error) {
	raw, err := os.ReadFile(makefilePath)
	if err != nil {
		return nil, errors.Configure(err, "", "read generated Makefile")
	}

	sourceRoot, err := filepath.Abs(filepath.Join(filepath.Dir(makefilePath), ".."))
	if err != nil {
		return nil, errors.Configure(err, "", "resolve source root")
	}

	var includes []string
	inBlock := false
	for _, line := range strings.Split(string(raw), "\n") {
		if !inBlock {
			rest, ok := strings.CutPrefix(line, "ALL_INCS")
			if !ok {
				continue
			}
			inBlock = true
			if _, after, found := strings.Cut(rest, "="); found {
				includes = append(includes, incsFromLine(after)...)
			}
			continue
		}

		found := incsFromLine(line)
		if len(found) == 0 {
			break
		}
		includes = append(includes, found...)
		if !strings.HasSuffix(strings.TrimSpace(line), "\\") {
			break
		}
	}

	if len(includes) == 0 {
		return nil, errors.Configure(nil, "", "no ALL_INCS block in "+makefilePath)
	}

	resolved := make([]string, 0, len(includes))
	for _, inc := range includes {
		if !filepath.IsAbs(inc) {
			inc = filepath.Join(sourceRoot, inc)
		}
		resolved = append(resolved, inc)
	}
	return resolved, nil
}

// incsFromLine extracts the paths following -I flags on one line,
// tolerating both "-I path" and "-Ipath" spellings and a trailing
// continuation backslash.
func incsFromLine(line string) []string {
	line = strings.TrimSuffix(strings.TrimSpace(line), "\\")
	fields := strings.Fields(line)

	var out []string
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		switch {
		case f == "-I" && i+1 < len(fields):
			out = append(out, fields[i+1])
			i++
		case strings.HasPrefix(f, "-I") && len(f) > 2:
			out = append(out, f[2:])
		}
	}
	return out
}
