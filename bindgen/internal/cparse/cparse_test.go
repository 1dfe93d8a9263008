package cparse

import "testing"

const sampleHeader = `
/* sample of the declaration shapes found in the nginx headers */

#ifndef _SAMPLE_H_INCLUDED_
#define _SAMPLE_H_INCLUDED_

#define NGX_OK          0
#define NGX_ERROR      -1
#define NGX_AGAIN      -2
#define NGX_LOG_ERR     4
#define ngx_string(str) { sizeof(str) - 1, (u_char *) str }

typedef intptr_t        ngx_int_t;
typedef uintptr_t       ngx_uint_t;
typedef struct ngx_pool_s ngx_pool_t;

typedef struct {
    size_t      len;
    u_char     *data;
} ngx_str_t;

typedef struct ngx_buf_s ngx_buf_t;

struct ngx_buf_s {
    u_char          *pos;
    u_char          *last;
    off_t            file_pos;
    ngx_buf_t       *shadow;

    /* the buf's content could be changed */
    unsigned         temporary:1;
    unsigned         memory:1;
    unsigned         mmap:1;
    unsigned         last_buf:1;

    int              num;
};

typedef struct {
    ngx_str_t        key;
    ngx_str_t        value;
    u_char           lowcase_key[32];
    void           (*handler)(ngx_pool_t *p);
} ngx_table_elt_t;

void *ngx_palloc(ngx_pool_t *pool, size_t size);
void *ngx_pcalloc(ngx_pool_t *pool, size_t size);
ngx_int_t ngx_foo_bar(ngx_uint_t n, ...);

static ngx_inline void
ngx_post_mark(ngx_buf_t *b, ngx_uint_t n)
{
    if (b->num < 0) {
        b->num = (int) n;
    }
}

extern volatile ngx_cycle_t  *ngx_cycle;
extern ngx_uint_t             ngx_max_module;

#endif
`

func scan(t *testing.T) *Index {
	t.Helper()
	ix := NewIndex()
	ix.Scan(sampleHeader)
	return ix
}

func TestScanMacros(t *testing.T) {
	ix := scan(t)

	tests := []struct {
		name, value string
	}{
		{"NGX_OK", "0"},
		{"NGX_ERROR", "-1"},
		{"NGX_LOG_ERR", "4"},
	}
	for _, tt := range tests {
		m, ok := ix.Macros[tt.name]
		if !ok {
			t.Errorf("macro %s not scanned", tt.name)
			continue
		}
		if m.Value != tt.value {
			t.Errorf("%s: got %q, want %q", tt.name, m.Value, tt.value)
		}
	}

	if _, ok := ix.Macros["ngx_string(str)"]; ok {
		t.Error("function-like macro recorded")
	}
	if _, ok := ix.Macros["ngx_string"]; ok {
		t.Error("function-like macro recorded under bare name")
	}
}

func TestScanTypedefs(t *testing.T) {
	ix := scan(t)

	if got := ix.Typedefs["ngx_int_t"]; got != "intptr_t" {
		t.Errorf("ngx_int_t: got %q", got)
	}
	if got := ix.Typedefs["ngx_pool_t"]; got != "struct ngx_pool_s" {
		t.Errorf("ngx_pool_t: got %q", got)
	}
	if got := ix.Typedefs["ngx_buf_t"]; got != "struct ngx_buf_s" {
		t.Errorf("ngx_buf_t: got %q", got)
	}
}

func TestScanTaglessStruct(t *testing.T) {
	ix := scan(t)

	st, ok := ix.Structs["ngx_str_t"]
	if !ok {
		t.Fatal("ngx_str_t not scanned")
	}
	if len(st.Fields) != 2 {
		t.Fatalf("fields: got %+v", st.Fields)
	}
	if st.Fields[0].Name != "len" || st.Fields[0].Type != "size_t" || st.Fields[0].Stars != 0 {
		t.Errorf("len field: %+v", st.Fields[0])
	}
	if st.Fields[1].Name != "data" || st.Fields[1].Type != "u_char" || st.Fields[1].Stars != 1 {
		t.Errorf("data field: %+v", st.Fields[1])
	}
	if st.HasBitfields() {
		t.Error("ngx_str_t has no bit-fields")
	}
}

func TestScanTaggedStructWithBitfields(t *testing.T) {
	ix := scan(t)

	st, ok := ix.Structs["struct ngx_buf_s"]
	if !ok {
		t.Fatal("struct ngx_buf_s not scanned")
	}
	if !st.HasBitfields() {
		t.Fatal("bit-fields not detected")
	}

	byName := map[string]Field{}
	for _, f := range st.Fields {
		byName[f.Name] = f
	}

	if f := byName["temporary"]; f.Bits != 1 || f.Type != "unsigned" {
		t.Errorf("temporary: %+v", f)
	}
	if f := byName["shadow"]; f.Stars != 1 || f.Type != "ngx_buf_t" {
		t.Errorf("shadow: %+v", f)
	}
	if f := byName["num"]; f.Bits != 0 || f.Type != "int" {
		t.Errorf("num: %+v", f)
	}
	if f := byName["file_pos"]; f.Type != "off_t" {
		t.Errorf("file_pos: %+v", f)
	}
}

func TestScanArrayAndFunctionPointerMembers(t *testing.T) {
	ix := scan(t)

	st, ok := ix.Structs["ngx_table_elt_t"]
	if !ok {
		t.Fatal("ngx_table_elt_t not scanned")
	}

	var lowcase *Field
	opaque := 0
	for i := range st.Fields {
		f := &st.Fields[i]
		if f.Name == "lowcase_key" {
			lowcase = f
		}
		if f.Opaque {
			opaque++
		}
	}
	if lowcase == nil || lowcase.Array != "32" {
		t.Errorf("lowcase_key: %+v", lowcase)
	}
	if opaque != 1 {
		t.Errorf("function-pointer member not marked opaque, fields: %+v", st.Fields)
	}
}

func TestScanPrototypes(t *testing.T) {
	ix := scan(t)

	fn, ok := ix.Funcs["ngx_palloc"]
	if !ok {
		t.Fatal("ngx_palloc not scanned")
	}
	if fn.Ret != "void" || fn.RetStars != 1 {
		t.Errorf("return: %q stars %d", fn.Ret, fn.RetStars)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("params: %+v", fn.Params)
	}
	if fn.Params[0].Type != "ngx_pool_t" || fn.Params[0].Stars != 1 || fn.Params[0].Name != "pool" {
		t.Errorf("param 0: %+v", fn.Params[0])
	}
	if fn.Params[1].Type != "size_t" || fn.Params[1].Name != "size" {
		t.Errorf("param 1: %+v", fn.Params[1])
	}

	va, ok := ix.Funcs["ngx_foo_bar"]
	if !ok {
		t.Fatal("variadic prototype not scanned")
	}
	if !va.Variadic {
		t.Error("variadic not detected")
	}

	// Static inline definitions in headers are bindable too.
	in, ok := ix.Funcs["ngx_post_mark"]
	if !ok {
		t.Fatal("static inline definition not scanned")
	}
	if len(in.Params) != 2 || in.Params[0].Name != "b" {
		t.Errorf("inline params: %+v", in.Params)
	}
}

func TestScanExterns(t *testing.T) {
	ix := scan(t)

	v, ok := ix.Vars["ngx_cycle"]
	if !ok {
		t.Fatal("ngx_cycle not scanned")
	}
	if v.Stars != 1 || v.Type != "volatile ngx_cycle_t" {
		t.Errorf("ngx_cycle: %+v", v)
	}

	if _, ok := ix.Vars["ngx_max_module"]; !ok {
		t.Error("ngx_max_module not scanned")
	}
}

func TestFirstSightingWins(t *testing.T) {
	ix := NewIndex()
	ix.Scan("#define NGX_OK 0\n")
	ix.Scan("#define NGX_OK 42\n")
	if ix.Macros["NGX_OK"].Value != "0" {
		t.Error("later definition overwrote earlier one")
	}
}
