package configure

import (
	"os"
	"strings"

	"github.com/ngx-go/ngx/errors"
)

// ParseAutoConfig extracts the preprocessor defines from the generated
// ngx_auto_config.h. Value-less defines map to "1" so feature tests can
// treat presence uniformly.
func ParseAutoConfig(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Configure(err, "", "read ngx_auto_config.h")
	}

	defines := make(map[string]string)
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(line, "#define")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		switch len(fields) {
		case 0:
			continue
		case 1:
			defines[fields[0]] = "1"
		default:
			defines[fields[0]] = strings.Join(fields[1:], " ")
		}
	}
	return defines, nil
}

// HasFeature reports whether the configured tree enables a native
// feature define such as NGX_HAVE_EPOLL or NGX_DEBUG.
func (a *Artifacts) HasFeature(name string) bool {
	v, ok := a.Defines[name]
	return ok && v != "0"
}
