package bindgen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ngx-go/ngx/configure"
	"github.com/ngx-go/ngx/errors"
)

const testHeader = `
#define NGX_OK       0
#define NGX_LOG_ERR  4

typedef intptr_t   ngx_int_t;
typedef uintptr_t  ngx_uint_t;
typedef struct ngx_buf_s  ngx_buf_t;

typedef struct {
    size_t      len;
    u_char     *data;
} ngx_str_t;

struct ngx_buf_s {
    u_char     *pos;
    unsigned    temporary:1;
    unsigned    memory:1;
};

void *ngx_palloc(ngx_pool_t *pool, size_t size);
ngx_int_t ngx_log_error_core(ngx_uint_t level, ngx_log_t *log, const char *fmt, ...);

extern volatile ngx_cycle_t  *ngx_cycle;
`

type fakeProber struct{}

func (fakeProber) Probe(ctx context.Context, req *ProbeRequest) (*ProbeResult, error) {
	return &ProbeResult{
		Structs: map[string]*Layout{
			"ngx_str_t": {Size: 16, Align: 8, Fields: []FieldLayout{
				{Name: "len", Offset: 0, Size: 8},
				{Name: "data", Offset: 8, Size: 8},
			}},
			"struct ngx_buf_s": {Size: 16, Align: 8, Fields: []FieldLayout{
				{Name: "pos", Offset: 0, Size: 8},
			}},
		},
		Consts: map[string]int64{"NGX_OK": 0, "NGX_LOG_ERR": 4},
	}, nil
}

func testAllow() Allowlist {
	return Allowlist{
		Structs: []string{"ngx_str_t", "struct ngx_buf_s"},
		Funcs:   []string{"ngx_palloc", "ngx_log_error_core"},
		Vars:    []string{"ngx_cycle"},
		Consts:  []string{"NGX_OK", "NGX_LOG_ERR"},
	}
}

func testArtifacts(t *testing.T) *configure.Artifacts {
	t.Helper()
	src := t.TempDir()
	inc := filepath.Join(src, "src", "core")
	if err := os.MkdirAll(inc, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(inc, "ngx_core.h"), []byte(testHeader), 0o644); err != nil {
		t.Fatal(err)
	}
	return &configure.Artifacts{
		SourceDir:   src,
		BuildDir:    filepath.Join(src, "objs"),
		IncludeDirs: []string{inc, "/usr/local/include"},
	}
}

func generate(t *testing.T, out string) []string {
	t.Helper()
	g := &Generator{
		Allow:     testAllow(),
		Artifacts: testArtifacts(t),
		Release:   "1.27.4",
		OutDir:    out,
		Prober:    fakeProber{},
	}
	paths, err := g.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return paths
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestGenerator_Run(t *testing.T) {
	out := t.TempDir()
	paths := generate(t, out)
	if len(paths) != 5 {
		t.Fatalf("paths: %v", paths)
	}

	types := readFile(t, filepath.Join(out, "zz_generated_types.go"))
	for _, want := range []string{
		"package ffi",
		"// Str mirrors ngx_str_t (16 bytes).",
		"type Str struct {",
		"Data unsafe.Pointer",
		"type Buf struct {",
		"[8]byte", // bit-field run folded into padding
	} {
		if !strings.Contains(types, want) {
			t.Errorf("types missing %q:\n%s", want, types)
		}
	}

	consts := readFile(t, filepath.Join(out, "zz_generated_const.go"))
	for _, want := range []string{"// NGX_OK", "// NGX_LOG_ERR", "LogErr"} {
		if !strings.Contains(consts, want) {
			t.Errorf("consts missing %q:\n%s", want, consts)
		}
	}

	funcs := readFile(t, filepath.Join(out, "call", "zz_generated_funcs.go"))
	for _, want := range []string{
		"package call",
		"func Palloc(pool unsafe.Pointer, size uintptr) unsafe.Pointer",
		"C.ngx_go_call_ngx_log_error_core", // variadic goes through the shim
		"tail unsafe.Pointer",
		"func BufTemporary(o unsafe.Pointer) uint",
		"func Cycle() unsafe.Pointer",
	} {
		if !strings.Contains(funcs, want) {
			t.Errorf("funcs missing %q:\n%s", want, funcs)
		}
	}

	shims := readFile(t, filepath.Join(out, "call", "zz_generated_shims.h"))
	for _, want := range []string{
		"ngx_go_get_ngx_buf_s_temporary",
		"ngx_go_set_ngx_buf_s_memory",
		"ngx_go_var_ngx_cycle",
		"ngx_go_call_ngx_log_error_core",
	} {
		if !strings.Contains(shims, want) {
			t.Errorf("shims missing %q:\n%s", want, shims)
		}
	}

	asserts := readFile(t, filepath.Join(out, "call", "zz_layout_assert.c"))
	for _, want := range []string{
		"_Static_assert(sizeof(ngx_str_t) == 16",
		"_Static_assert(offsetof(ngx_str_t, data) == 8",
		"_Static_assert(sizeof(struct ngx_buf_s) == 16",
	} {
		if !strings.Contains(asserts, want) {
			t.Errorf("asserts missing %q:\n%s", want, asserts)
		}
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	pa := generate(t, a)
	pb := generate(t, b)
	if len(pa) != len(pb) {
		t.Fatal("file sets differ")
	}
	for i := range pa {
		if readFile(t, pa[i]) != readFile(t, pb[i]) {
			t.Errorf("%s not byte-identical between runs", filepath.Base(pa[i]))
		}
	}
}

func TestGenerator_AllowlistDrift(t *testing.T) {
	allow := testAllow()
	allow.Structs = append(allow.Structs, "ngx_gone_t")
	g := &Generator{
		Allow:     allow,
		Artifacts: testArtifacts(t),
		Release:   "1.27.4",
		OutDir:    t.TempDir(),
		Prober:    fakeProber{},
	}
	_, err := g.Run(context.Background())
	if !errors.IsKind(err, errors.KindSymbol) {
		t.Fatalf("got %v, want symbol error", err)
	}
}

func TestGoName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ngx_str_t", "Str"},
		{"struct ngx_buf_s", "Buf"},
		{"ngx_http_request_t", "HTTPRequest"},
		{"ngx_table_elt_t", "TableElt"},
		{"ngx_palloc", "Palloc"},
		{"ngx_create_temp_buf", "CreateTempBuf"},
		{"NGX_OK", "OK"},
		{"NGX_LOG_ERR", "LogErr"},
		{"NGX_HTTP_LOC_CONF_OFFSET", "HTTPLocConfOffset"},
	}
	for _, tt := range tests {
		if got := GoName(tt.in); got != tt.want {
			t.Errorf("GoName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProbeSource(t *testing.T) {
	arts := testArtifacts(t)
	g := &Generator{Allow: testAllow(), Artifacts: arts}
	ix, err := g.scanHeaders()
	if err != nil {
		t.Fatal(err)
	}
	structs, _, _, consts, err := resolve(g.Allow.sorted(), ix)
	if err != nil {
		t.Fatal(err)
	}

	src := ProbeSource(&ProbeRequest{Structs: structs, Consts: consts})
	for _, want := range []string{
		"offsetof(ngx_str_t, len)",
		"struct:ngx_buf_s", // report key stays whitespace-free
		"sizeof(struct ngx_buf_s)",
		"(long) (NGX_OK)",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("probe source missing %q:\n%s", want, src)
		}
	}
	// Bit-field members cannot be measured with offsetof.
	if strings.Contains(src, "temporary") {
		t.Error("probe measures a bit-field member")
	}
}

func TestParseProbeOutput(t *testing.T) {
	out := "struct ngx_str_t 16 8\n" +
		"field ngx_str_t len 0 8\n" +
		"field ngx_str_t data 8 8\n" +
		"struct struct:ngx_buf_s 16 8\n" +
		"field struct:ngx_buf_s pos 0 8\n" +
		"const NGX_OK 0\n" +
		"const NGX_ERROR -1\n"

	res, err := ParseProbeOutput(out)
	if err != nil {
		t.Fatal(err)
	}
	str := res.Structs["ngx_str_t"]
	if str == nil || str.Size != 16 || len(str.Fields) != 2 {
		t.Fatalf("ngx_str_t: %+v", str)
	}
	if res.Structs["struct ngx_buf_s"] == nil {
		t.Fatal("mangled struct key not restored")
	}
	if res.Consts["NGX_ERROR"] != -1 {
		t.Errorf("NGX_ERROR: %d", res.Consts["NGX_ERROR"])
	}

	if _, err := ParseProbeOutput("field nope x 0 8\n"); err == nil {
		t.Error("field before struct accepted")
	}
	if _, err := ParseProbeOutput("garbage line\n"); err == nil {
		t.Error("malformed line accepted")
	}
}
