package bindgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ngx-go/ngx/bindgen/internal/cparse"
	"github.com/ngx-go/ngx/errors"
)

// acronyms keeps initialisms upper-case in generated Go names.
var acronyms = map[string]string{
	"http": "HTTP",
	"uri":  "URI",
	"url":  "URL",
	"id":   "ID",
	"ok":   "OK",
	"ssl":  "SSL",
}

// GoName maps a native identifier to its exported Go spelling:
// "ngx_str_t" becomes Str, "struct ngx_buf_s" becomes Buf,
// "ngx_http_request_t" becomes HTTPRequest, "NGX_LOG_ERR" becomes
// LogErr.
func GoName(cname string) string {
	name := strings.TrimPrefix(cname, "struct ")
	name = strings.TrimSuffix(name, "_t")
	name = strings.TrimSuffix(name, "_s")
	name = strings.TrimPrefix(name, "ngx_")
	name = strings.TrimPrefix(name, "NGX_")
	return camel(name)
}

// goFieldName maps a struct member name without the suffix trimming
// GoName applies to type names.
func goFieldName(name string) string {
	return camel(name)
}

func camel(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		part = strings.ToLower(part)
		if a, ok := acronyms[part]; ok {
			b.WriteString(a)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// typeQuals are stripped before type resolution.
var typeQuals = map[string]bool{
	"const":      true,
	"volatile":   true,
	"static":     true,
	"inline":     true,
	"ngx_inline": true,
	"extern":     true,
	"register":   true,
}

func stripQuals(ctype string) string {
	var kept []string
	for _, w := range strings.Fields(ctype) {
		if !typeQuals[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// unsignedWide lists pointer-sized unsigned typedefs mirrored as
// uintptr.
var unsignedWide = map[string]bool{
	"size_t":            true,
	"uintptr_t":         true,
	"ngx_uint_t":        true,
	"ngx_msec_t":        true,
	"ngx_atomic_uint_t": true,
}

var signedScalars = map[string]bool{
	"char":           true,
	"signed char":    true,
	"short":          true,
	"int":            true,
	"long":           true,
	"long long":      true,
	"intptr_t":       true,
	"ssize_t":        true,
	"off_t":          true,
	"time_t":         true,
	"ngx_int_t":      true,
	"ngx_flag_t":     true,
	"ngx_err_t":      true,
	"ngx_msec_int_t": true,
}

// scalarMirrorType picks the Go field type for a non-pointer scalar of
// the probed size.
func scalarMirrorType(ctype string, size uint64) string {
	ctype = stripQuals(ctype)
	if unsignedWide[ctype] && size == 8 {
		return "uintptr"
	}
	signed := signedScalars[ctype]
	switch size {
	case 1:
		if signed {
			return "int8"
		}
		return "uint8"
	case 2:
		if signed {
			return "int16"
		}
		return "uint16"
	case 4:
		if signed {
			return "int32"
		}
		return "uint32"
	case 8:
		if signed {
			return "int64"
		}
		return "uint64"
	default:
		// Embedded aggregate of a type outside the allow-list; only
		// its extent matters.
		return fmt.Sprintf("[%d]byte", size)
	}
}

// scalarWrapType picks the Go type used at cgo wrapper boundaries.
func scalarWrapType(ctype string) string {
	ctype = stripQuals(ctype)
	if signedScalars[ctype] {
		return "int"
	}
	return "uintptr"
}

// cgoTypeName renders a C type name as its cgo selector suffix.
func cgoTypeName(ctype string) string {
	ctype = stripQuals(ctype)
	switch ctype {
	case "unsigned", "unsigned int":
		return "uint"
	case "unsigned char":
		return "uchar"
	case "unsigned short":
		return "ushort"
	case "unsigned long":
		return "ulong"
	case "unsigned long long":
		return "ulonglong"
	case "signed char":
		return "schar"
	case "long long":
		return "longlong"
	}
	if tag, ok := strings.CutPrefix(ctype, "struct "); ok {
		return "struct_" + tag
	}
	return ctype
}

// cIdent renders a struct spelling as a flat identifier for shim names.
func cIdent(cname string) string {
	return strings.TrimPrefix(cname, "struct ")
}

func generatedHeader(release string) string {
	return fmt.Sprintf("// Code generated by ngx-build for nginx %s. DO NOT EDIT.\n\n", release)
}

func cGeneratedHeader(release string) string {
	return fmt.Sprintf("/* Code generated by ngx-build for nginx %s. DO NOT EDIT. */\n\n", release)
}

const cIncludes = "#include <ngx_config.h>\n#include <ngx_core.h>\n#include <ngx_http.h>\n"

// emitTypes renders the pure-Go struct mirrors. Field positions come
// from the probe; gaps, bit-field runs and opaque members become
// anonymous padding.
func emitTypes(release, pkg string, structs []*cparse.Struct, res *ProbeResult, typedefs map[string]string) (string, error) {
	mirror := make(map[string]string, len(structs))
	for _, st := range structs {
		mirror[st.Name] = GoName(st.Name)
		if st.Tag != "" {
			mirror["struct "+st.Tag] = GoName(st.Name)
		}
	}
	resolveMirror := func(ctype string) (string, bool) {
		ctype = stripQuals(ctype)
		if g, ok := mirror[ctype]; ok {
			return g, true
		}
		if def, ok := typedefs[ctype]; ok {
			g, ok := mirror[def]
			return g, ok
		}
		return "", false
	}

	var body strings.Builder
	for _, st := range structs {
		layout := res.Structs[st.Name]
		if layout == nil {
			return "", errors.LayoutAmbiguous(st.Name, "no probe record for struct")
		}
		decl := make(map[string]*cparse.Field, len(st.Fields))
		for i := range st.Fields {
			decl[st.Fields[i].Name] = &st.Fields[i]
		}

		probed := append([]FieldLayout(nil), layout.Fields...)
		sort.Slice(probed, func(i, j int) bool { return probed[i].Offset < probed[j].Offset })

		type line struct{ name, typ string }
		var lines []line
		width := 1

		var cur uint64
		for _, f := range probed {
			if f.Offset > cur {
				lines = append(lines, line{"_", fmt.Sprintf("[%d]byte", f.Offset-cur)})
			}
			cf := decl[f.Name]
			if cf == nil {
				return "", errors.LayoutAmbiguous(st.Name, "probe reported unknown member "+f.Name)
			}
			goType := ""
			switch {
			case cf.Stars > 0:
				goType = "unsafe.Pointer"
			case cf.Array != "":
				goType = fmt.Sprintf("[%d]byte", f.Size)
			default:
				if g, ok := resolveMirror(cf.Type); ok {
					goType = g
				} else {
					goType = scalarMirrorType(cf.Type, f.Size)
				}
			}
			lines = append(lines, line{goFieldName(f.Name), goType})
			cur = f.Offset + f.Size
		}
		if layout.Size > cur {
			lines = append(lines, line{"_", fmt.Sprintf("[%d]byte", layout.Size-cur)})
		}

		for _, l := range lines {
			if len(l.name) > width {
				width = len(l.name)
			}
		}
		fmt.Fprintf(&body, "// %s mirrors %s (%d bytes).\ntype %s struct {\n",
			GoName(st.Name), st.Name, layout.Size, GoName(st.Name))
		for _, l := range lines {
			fmt.Fprintf(&body, "\t%-*s %s\n", width, l.name, l.typ)
		}
		body.WriteString("}\n\n")
	}

	var out strings.Builder
	out.WriteString(generatedHeader(release))
	fmt.Fprintf(&out, "package %s\n\n", pkg)
	if strings.Contains(body.String(), "unsafe.Pointer") {
		out.WriteString("import \"unsafe\"\n\n")
	}
	out.WriteString(strings.TrimSuffix(body.String(), "\n"))
	return out.String(), nil
}

// emitConsts renders the probed constant values.
func emitConsts(release, pkg string, consts []string, res *ProbeResult) (string, error) {
	width, vwidth := 0, 0
	for _, name := range consts {
		if n := len(GoName(name)); n > width {
			width = n
		}
		if n := len(fmt.Sprint(res.Consts[name])); n > vwidth {
			vwidth = n
		}
	}

	var out strings.Builder
	out.WriteString(generatedHeader(release))
	fmt.Fprintf(&out, "package %s\n\nconst (\n", pkg)
	for _, name := range consts {
		v, ok := res.Consts[name]
		if !ok {
			return "", errors.UnresolvedSymbol(name)
		}
		fmt.Fprintf(&out, "\t%-*s = %-*d // %s\n", width, GoName(name), vwidth, v, name)
	}
	out.WriteString(")\n")
	return out.String(), nil
}

// emitAssert renders the _Static_assert file pinning the mirrors to
// the probed layout. Compiling it against a different nginx build
// fails before anything can run.
func emitAssert(release string, structs []*cparse.Struct, res *ProbeResult) string {
	var out strings.Builder
	out.WriteString(cGeneratedHeader(release))
	out.WriteString("#include <stddef.h>\n\n")
	out.WriteString(cIncludes)
	out.WriteString("\n")

	for _, st := range structs {
		layout := res.Structs[st.Name]
		fmt.Fprintf(&out, "_Static_assert(sizeof(%s) == %d, \"%s size\");\n",
			st.Name, layout.Size, st.Name)
		for _, f := range layout.Fields {
			fmt.Fprintf(&out, "_Static_assert(offsetof(%s, %s) == %d, \"%s.%s offset\");\n",
				st.Name, f.Name, f.Offset, st.Name, f.Name)
		}
		out.WriteString("\n")
	}
	return strings.TrimSuffix(out.String(), "\n")
}

func renderCParams(params []cparse.Param) (string, error) {
	if len(params) == 0 {
		return "void", nil
	}
	var parts []string
	for i, p := range params {
		if p.Type == "fnptr" {
			return "", errors.Unsupported(errors.PhaseBind, "function-pointer parameter in shim")
		}
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("a%d", i)
		}
		parts = append(parts, p.Type+" "+strings.Repeat("*", p.Stars)+name)
	}
	return strings.Join(parts, ", "), nil
}

// emitShims renders the static inline C accessors: bit-field get/set
// pairs, extern variable readers, and fixed-arity forwarders for
// variadic functions.
func emitShims(release string, structs []*cparse.Struct, funcs []*cparse.Func, vars []*cparse.Var) (string, error) {
	var out strings.Builder
	out.WriteString(cGeneratedHeader(release))
	out.WriteString("#ifndef NGX_GO_GENERATED_SHIMS_H_\n#define NGX_GO_GENERATED_SHIMS_H_\n\n")
	out.WriteString(cIncludes)
	out.WriteString("\n")

	for _, st := range structs {
		if !st.HasBitfields() {
			continue
		}
		for _, f := range st.Fields {
			if f.Bits == 0 || f.Name == "" {
				continue
			}
			id := cIdent(st.Name)
			fmt.Fprintf(&out, "static inline %s\nngx_go_get_%s_%s(%s *o)\n{\n    return o->%s;\n}\n\n",
				f.Type, id, f.Name, st.Name, f.Name)
			fmt.Fprintf(&out, "static inline void\nngx_go_set_%s_%s(%s *o, %s v)\n{\n    o->%s = v;\n}\n\n",
				id, f.Name, st.Name, f.Type, f.Name)
		}
	}

	for _, v := range vars {
		typ := stripQuals(v.Type)
		if v.Stars > 0 {
			fmt.Fprintf(&out, "static inline void *\nngx_go_var_%s(void)\n{\n    return (void *) %s;\n}\n\n",
				v.Name, v.Name)
			continue
		}
		fmt.Fprintf(&out, "static inline %s\nngx_go_var_%s(void)\n{\n    return %s;\n}\n\n",
			typ, v.Name, v.Name)
	}

	for _, fn := range funcs {
		if !fn.Variadic {
			continue
		}
		params, err := renderCParams(fn.Params)
		if err != nil {
			return "", err
		}
		ret := stripQuals(fn.Ret)
		if fn.RetStars > 0 {
			ret += " " + strings.Repeat("*", fn.RetStars)
		}
		var args []string
		for i, p := range fn.Params {
			name := p.Name
			if name == "" {
				name = fmt.Sprintf("a%d", i)
			}
			args = append(args, name)
		}
		args = append(args, "ngx_go_tail")
		keyword := "return "
		if ret == "void" {
			keyword = ""
		}
		fmt.Fprintf(&out, "static inline %s\nngx_go_call_%s(%s, const char *ngx_go_tail)\n{\n    %s%s(%s);\n}\n\n",
			ret, fn.Name, params, keyword, fn.Name, strings.Join(args, ", "))
	}

	out.WriteString("#endif\n")
	return out.String(), nil
}

// wrapParam renders one Go wrapper parameter and its conversion to the
// cgo call argument.
func wrapParam(p cparse.Param, i int) (decl, arg string, err error) {
	if p.Type == "fnptr" {
		return "", "", errors.Unsupported(errors.PhaseBind, "function-pointer parameter in wrapper")
	}
	name := p.Name
	if name == "" {
		name = fmt.Sprintf("a%d", i)
	}
	if goKeywords[name] {
		name += "_"
	}
	base := stripQuals(p.Type)
	if p.Stars > 0 {
		if base == "void" && p.Stars == 1 {
			return name + " unsafe.Pointer", name, nil
		}
		return name + " unsafe.Pointer",
			fmt.Sprintf("(%sC.%s)(%s)", strings.Repeat("*", p.Stars), cgoTypeName(base), name), nil
	}
	return name + " " + scalarWrapType(base),
		fmt.Sprintf("C.%s(%s)", cgoTypeName(base), name), nil
}

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true,
}

// emitFuncs renders the cgo wrapper file: one Go function per
// allow-listed prototype, plus bit-field accessor and variable reader
// wrappers over the generated shims.
func emitFuncs(release, pkg string, structs []*cparse.Struct, funcs []*cparse.Func, vars []*cparse.Var) (string, error) {
	var out strings.Builder
	out.WriteString(generatedHeader(release))
	fmt.Fprintf(&out, "package %s\n\n", pkg)
	out.WriteString("/*\n")
	out.WriteString(cIncludes)
	out.WriteString("\n#include \"zz_generated_shims.h\"\n*/\n")
	out.WriteString("import \"C\"\n\nimport \"unsafe\"\n\n")

	for _, fn := range funcs {
		var decls, args []string
		for i, p := range fn.Params {
			d, a, err := wrapParam(p, i)
			if err != nil {
				return "", err
			}
			decls = append(decls, d)
			args = append(args, a)
		}

		target := "C." + fn.Name
		if fn.Variadic {
			target = "C.ngx_go_call_" + fn.Name
			decls = append(decls, "tail unsafe.Pointer")
			args = append(args, "(*C.char)(tail)")
		}
		call := fmt.Sprintf("%s(%s)", target, strings.Join(args, ", "))

		ret := stripQuals(fn.Ret)
		switch {
		case fn.RetStars > 0:
			fmt.Fprintf(&out, "func %s(%s) unsafe.Pointer {\n\treturn unsafe.Pointer(%s)\n}\n\n",
				GoName(fn.Name), strings.Join(decls, ", "), call)
		case ret == "void":
			fmt.Fprintf(&out, "func %s(%s) {\n\t%s\n}\n\n",
				GoName(fn.Name), strings.Join(decls, ", "), call)
		default:
			goRet := scalarWrapType(ret)
			fmt.Fprintf(&out, "func %s(%s) %s {\n\treturn %s(%s)\n}\n\n",
				GoName(fn.Name), strings.Join(decls, ", "), goRet, goRet, call)
		}
	}

	for _, st := range structs {
		if !st.HasBitfields() {
			continue
		}
		ptr := fmt.Sprintf("(*C.%s)(o)", cgoTypeName(st.Name))
		for _, f := range st.Fields {
			if f.Bits == 0 || f.Name == "" {
				continue
			}
			id := cIdent(st.Name)
			accessor := GoName(st.Name) + goFieldName(f.Name)
			fmt.Fprintf(&out, "func %s(o unsafe.Pointer) uint {\n\treturn uint(C.ngx_go_get_%s_%s(%s))\n}\n\n",
				accessor, id, f.Name, ptr)
			fmt.Fprintf(&out, "func Set%s(o unsafe.Pointer, v uint) {\n\tC.ngx_go_set_%s_%s(%s, C.%s(v))\n}\n\n",
				accessor, id, f.Name, ptr, cgoTypeName(f.Type))
		}
	}

	for _, v := range vars {
		if v.Stars > 0 {
			fmt.Fprintf(&out, "func %s() unsafe.Pointer {\n\treturn unsafe.Pointer(C.ngx_go_var_%s())\n}\n\n",
				GoName(v.Name), v.Name)
			continue
		}
		goRet := scalarWrapType(v.Type)
		fmt.Fprintf(&out, "func %s() %s {\n\treturn %s(C.ngx_go_var_%s())\n}\n\n",
			GoName(v.Name), goRet, goRet, v.Name)
	}

	return strings.TrimSuffix(out.String(), "\n"), nil
}
