package configure

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ngx-go/ngx/errors"
)

const sampleMakefile = `
CC =	cc
CFLAGS =  -pipe  -O -W -Wall

ALL_INCS = -I src/core \
	-I src/event \
	-I src/event/modules \
	-I src/os/unix \
	-I /usr/local/include \
	-I objs \
	-I src/http \
	-I src/http/modules

CORE_DEPS = src/core/nginx.h \
	src/core/ngx_config.h
`

func writeMakefile(t *testing.T, content string) string {
	t.Helper()
	srcRoot := t.TempDir()
	objs := filepath.Join(srcRoot, "objs")
	if err := os.MkdirAll(objs, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(objs, "Makefile")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseMakefileIncludes(t *testing.T) {
	path := writeMakefile(t, sampleMakefile)
	srcRoot := filepath.Dir(filepath.Dir(path))

	incs, err := ParseMakefileIncludes(path)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(srcRoot, "src/core"),
		filepath.Join(srcRoot, "src/event"),
		filepath.Join(srcRoot, "src/event/modules"),
		filepath.Join(srcRoot, "src/os/unix"),
		"/usr/local/include",
		filepath.Join(srcRoot, "objs"),
		filepath.Join(srcRoot, "src/http"),
		filepath.Join(srcRoot, "src/http/modules"),
	}
	if len(incs) != len(want) {
		t.Fatalf("got %d includes %v, want %d", len(incs), incs, len(want))
	}
	for i := range want {
		// The temp dir may come back through a symlink; compare suffixes
		// for the relative entries and exact values for absolute ones.
		if strings.HasPrefix(want[i], "/usr") {
			if incs[i] != want[i] {
				t.Errorf("include %d: got %q, want %q", i, incs[i], want[i])
			}
			continue
		}
		rel, _ := filepath.Rel(srcRoot, want[i])
		if !strings.HasSuffix(incs[i], rel) {
			t.Errorf("include %d: got %q, want suffix %q", i, incs[i], rel)
		}
	}
}

func TestParseMakefileIncludes_SingleLine(t *testing.T) {
	path := writeMakefile(t, "ALL_INCS = -I src/core -I objs\n\nCORE_DEPS = x\n")
	incs, err := ParseMakefileIncludes(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(incs) != 2 {
		t.Fatalf("got %v, want 2 entries", incs)
	}
}

func TestParseMakefileIncludes_Missing(t *testing.T) {
	path := writeMakefile(t, "CC = cc\n")
	_, err := ParseMakefileIncludes(path)
	if !errors.IsKind(err, errors.KindExitStatus) {
		t.Fatalf("got %v, want configure error", err)
	}
}

func TestParseAutoConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ngx_auto_config.h")
	content := `#ifndef NGX_CONFIGURE
#define NGX_CONFIGURE " --with-http_ssl_module"
#endif

#ifndef NGX_HAVE_EPOLL
#define NGX_HAVE_EPOLL  1
#endif

#ifndef NGX_DEBUG
#define NGX_DEBUG
#endif

#ifndef NGX_PTR_SIZE
#define NGX_PTR_SIZE  8
#endif
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	defines, err := ParseAutoConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if defines["NGX_HAVE_EPOLL"] != "1" {
		t.Errorf("NGX_HAVE_EPOLL: got %q", defines["NGX_HAVE_EPOLL"])
	}
	if defines["NGX_DEBUG"] != "1" {
		t.Errorf("value-less define: got %q", defines["NGX_DEBUG"])
	}
	if defines["NGX_PTR_SIZE"] != "8" {
		t.Errorf("NGX_PTR_SIZE: got %q", defines["NGX_PTR_SIZE"])
	}

	a := &Artifacts{Defines: defines}
	if !a.HasFeature("NGX_HAVE_EPOLL") || a.HasFeature("NGX_HAVE_KQUEUE") {
		t.Error("HasFeature misreported")
	}
}
