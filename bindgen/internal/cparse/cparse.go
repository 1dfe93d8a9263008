// Package cparse is a restricted C declaration scanner.
//
// It understands exactly as much C as the binding generator needs from
// the nginx headers: top-level struct definitions (fields, pointers,
// arrays, bit-field widths, embedded anonymous aggregates as opaque
// members), typedefs, function prototypes, extern variables, and
// object-like #define constants. Everything else is skipped. It is not
// a C parser and must never be asked to be one; the native compiler
// remains the layout oracle.
package cparse

import (
	"strings"
)

// Field is one struct member.
type Field struct {
	Name string
	// Type is the canonical spelling of the declaration's type tokens,
	// e.g. "ngx_uint_t", "unsigned char", "struct ngx_pool_s".
	Type string
	// Stars counts pointer indirections in the declarator.
	Stars int
	// Bits is the bit-field width, 0 for plain members.
	Bits int
	// Array is the array length expression, "" for scalars.
	Array string
	// Opaque marks embedded anonymous aggregates and other members the
	// scanner does not model beyond their existence.
	Opaque bool
}

// Struct is a named C struct definition.
type Struct struct {
	// Tag is the struct tag, "" for tagless typedef'd structs.
	Tag string
	// Name is the typedef name when the definition is typedef'd,
	// otherwise "struct <tag>".
	Name   string
	Fields []Field
}

// HasBitfields reports whether any member is a bit-field. Such structs
// need generated accessor shims because their layout is not portably
// expressible outside the native compiler.
func (s *Struct) HasBitfields() bool {
	for _, f := range s.Fields {
		if f.Bits > 0 {
			return true
		}
	}
	return false
}

// Param is one function parameter.
type Param struct {
	Name  string
	Type  string
	Stars int
}

// Func is a function prototype.
type Func struct {
	Name     string
	Ret      string
	RetStars int
	Params   []Param
	Variadic bool
}

// Var is an extern variable declaration.
type Var struct {
	Name  string
	Type  string
	Stars int
}

// Macro is an object-like #define.
type Macro struct {
	Name  string
	Value string
}

// Index aggregates scanned declarations across headers. Later
// definitions never overwrite earlier ones: the configured header set
// defines each symbol once, and the first sighting wins.
type Index struct {
	Structs  map[string]*Struct
	Typedefs map[string]string
	Funcs    map[string]*Func
	Vars     map[string]*Var
	Macros   map[string]Macro
}

func NewIndex() *Index {
	return &Index{
		Structs:  make(map[string]*Struct),
		Typedefs: make(map[string]string),
		Funcs:    make(map[string]*Func),
		Vars:     make(map[string]*Var),
		Macros:   make(map[string]Macro),
	}
}

// Scan tokenizes src and merges its declarations into the index.
func (ix *Index) Scan(src string) {
	p := &scanner{ix: ix, tokens: Tokenize(src)}
	p.run()
}

type scanner struct {
	ix     *Index
	tokens []Token
	pos    int
}

func (s *scanner) peek() *Token {
	if s.pos >= len(s.tokens) {
		return nil
	}
	return &s.tokens[s.pos]
}

func (s *scanner) next() *Token {
	t := s.peek()
	if t != nil {
		s.pos++
	}
	return t
}

func (s *scanner) run() {
	for {
		t := s.peek()
		if t == nil {
			return
		}
		switch {
		case t.Type == Directive:
			s.directive()
		case t.Type == Ident && t.Value == "typedef":
			s.typedef()
		case t.Type == Ident && (t.Value == "struct" || t.Value == "union"):
			s.structDef()
		case t.Type == Ident && t.Value == "extern":
			s.externDecl()
		case t.Type == Ident:
			s.prototypeOrSkip()
		default:
			s.pos++
		}
	}
}

// directive records object-like #define NAME VALUE lines.
func (s *scanner) directive() {
	t := s.next()
	fields := strings.Fields(strings.TrimPrefix(t.Value, "#"))
	if len(fields) < 2 || fields[0] != "define" {
		return
	}
	name := fields[1]
	// Function-like macros carry their parameter list glued to the name.
	if strings.Contains(name, "(") {
		return
	}
	value := strings.TrimSpace(strings.TrimPrefix(t.Value, "#"))
	value = strings.TrimSpace(strings.TrimPrefix(value, "define"))
	value = strings.TrimSpace(strings.TrimPrefix(value, name))
	if _, seen := s.ix.Macros[name]; !seen {
		s.ix.Macros[name] = Macro{Name: name, Value: value}
	}
}

// typedef handles "typedef struct tag {..} name;", "typedef struct tag
// name;", plain type aliases, and skips function-pointer typedefs.
func (s *scanner) typedef() {
	s.next() // typedef

	t := s.peek()
	if t == nil {
		return
	}

	if t.Type == Ident && (t.Value == "struct" || t.Value == "union") {
		kw := s.next().Value
		tag := ""
		if n := s.peek(); n != nil && n.Type == Ident {
			tag = s.next().Value
		}
		if n := s.peek(); n != nil && n.Value == "{" {
			fields := s.fields()
			if name := s.peek(); name != nil && name.Type == Ident {
				s.next()
				s.record(&Struct{Tag: tag, Name: name.Value, Fields: fields})
				if tag != "" {
					s.ix.Typedefs[name.Value] = kw + " " + tag
				}
			}
			s.skipTo(";")
			return
		}
		// typedef struct tag name;
		if name := s.peek(); name != nil && name.Type == Ident {
			s.next()
			s.ix.Typedefs[name.Value] = kw + " " + tag
		}
		s.skipTo(";")
		return
	}

	// Collect tokens to ';'. A '(' anywhere makes this a function or
	// function-pointer typedef, which the scanner treats as opaque.
	var parts []string
	hasParen := false
	for {
		t := s.next()
		if t == nil || t.Value == ";" {
			break
		}
		if t.Value == "(" || t.Value == ")" {
			hasParen = true
		}
		parts = append(parts, t.Value)
	}
	if hasParen || len(parts) < 2 {
		return
	}
	name := parts[len(parts)-1]
	if _, seen := s.ix.Typedefs[name]; !seen {
		s.ix.Typedefs[name] = strings.Join(parts[:len(parts)-1], " ")
	}
}

// structDef handles non-typedef "struct tag { ... };" definitions.
func (s *scanner) structDef() {
	kw := s.next().Value

	tag := ""
	if t := s.peek(); t != nil && t.Type == Ident {
		tag = s.next().Value
	}
	t := s.peek()
	if t == nil || t.Value != "{" {
		// Forward declaration or a variable of struct type; not ours.
		s.skipTo(";")
		return
	}
	fields := s.fields()
	if tag != "" {
		s.record(&Struct{Tag: tag, Name: kw + " " + tag, Fields: fields})
	}
	s.skipTo(";")
}

// fields consumes a brace-enclosed member list. The opening brace must
// be the current token.
func (s *scanner) fields() []Field {
	s.next() // {

	var fields []Field
	for {
		t := s.peek()
		if t == nil {
			return fields
		}
		if t.Value == "}" {
			s.next()
			return fields
		}
		if t.Type == Directive {
			s.next()
			continue
		}

		// Embedded anonymous (or named) aggregate: record as opaque.
		if t.Type == Ident && (t.Value == "struct" || t.Value == "union") {
			if n := s.lookAheadValue(1); n == "{" || s.lookAheadValue(2) == "{" {
				s.next()
				if p := s.peek(); p != nil && p.Type == Ident {
					s.next()
				}
				s.skipBraces()
				name := ""
				if p := s.peek(); p != nil && p.Type == Ident {
					name = s.next().Value
				}
				fields = append(fields, Field{Name: name, Type: t.Value, Opaque: true})
				s.skipTo(";")
				continue
			}
		}

		fields = append(fields, s.memberDecl()...)
	}
}

// memberDecl parses one "type declarator[, declarator...];" member
// line, producing a Field per declarator.
func (s *scanner) memberDecl() []Field {
	var typeParts []string
	var fields []Field

	// Type tokens: identifiers (possibly "struct x"), up to the first
	// '*' or the declarator name.
	for {
		t := s.peek()
		if t == nil || t.Value == ";" || t.Value == "}" {
			break
		}
		if t.Value == "*" || t.Value == ":" || t.Value == "[" || t.Value == "," {
			break
		}
		if t.Type != Ident {
			// Function-pointer member or something stranger; treat the
			// whole line as opaque.
			s.skipTo(";")
			return []Field{{Name: "", Type: strings.Join(typeParts, " "), Opaque: true}}
		}
		s.next()
		typeParts = append(typeParts, t.Value)
	}

	if len(typeParts) == 0 {
		s.skipTo(";")
		return nil
	}

	// The last identifier collected is the first declarator name,
	// except for pointer declarators (the name follows the stars) and
	// anonymous bit-fields like "unsigned:1".
	declName := ""
	switch n := s.peek(); {
	case n != nil && n.Value == "*":
	case n != nil && n.Value == ":" && len(typeParts) == 1:
	default:
		declName = typeParts[len(typeParts)-1]
		typeParts = typeParts[:len(typeParts)-1]
	}
	typ := strings.Join(typeParts, " ")

	f := Field{Name: declName, Type: typ}
	for {
		t := s.peek()
		if t == nil {
			break
		}
		switch t.Value {
		case "*":
			s.next()
			f.Stars++
			if n := s.peek(); n != nil && n.Type == Ident {
				f.Name = s.next().Value
			}
			continue
		case ":":
			s.next()
			if n := s.peek(); n != nil && n.Type == Number {
				f.Bits = atoi(s.next().Value)
			}
			continue
		case "[":
			s.next()
			var expr []string
			for {
				n := s.next()
				if n == nil || n.Value == "]" {
					break
				}
				expr = append(expr, n.Value)
			}
			f.Array = strings.Join(expr, " ")
			continue
		case ",":
			s.next()
			fields = append(fields, f)
			f = Field{Type: typ}
			if n := s.peek(); n != nil && n.Type == Ident {
				f.Name = s.next().Value
			}
			continue
		case ";":
			s.next()
			fields = append(fields, f)
			return fields
		}
		// Unknown construct mid-member; bail out opaquely.
		s.skipTo(";")
		f.Opaque = true
		fields = append(fields, f)
		return fields
	}
	fields = append(fields, f)
	return fields
}

// externDecl handles "extern type name;" variable declarations.
func (s *scanner) externDecl() {
	s.next() // extern

	var parts []string
	stars := 0
	for {
		t := s.next()
		if t == nil || t.Value == ";" {
			break
		}
		if t.Value == "*" {
			stars++
			continue
		}
		if t.Value == "(" || t.Value == "[" {
			// Function declaration or array; prototypes are picked up
			// elsewhere, arrays are not needed.
			s.skipTo(";")
			return
		}
		parts = append(parts, t.Value)
	}
	if len(parts) < 2 {
		return
	}
	name := parts[len(parts)-1]
	if _, seen := s.ix.Vars[name]; !seen {
		s.ix.Vars[name] = &Var{
			Name:  name,
			Type:  strings.Join(parts[:len(parts)-1], " "),
			Stars: stars,
		}
	}
}

// prototypeOrSkip recognizes top-level "ret name(params);" prototypes
// and skips anything else up to the next ';' or balanced '}'.
func (s *scanner) prototypeOrSkip() {
	start := s.pos

	// Collect tokens up to the opening paren. The last identifier is
	// the function name, everything before it the return type.
	for {
		t := s.peek()
		if t == nil || t.Value == ";" || t.Value == "{" || t.Value == "}" || t.Type == Directive {
			s.pos = start
			s.skipStatement()
			return
		}
		if t.Value == "(" {
			break
		}
		if t.Type != Ident && t.Value != "*" {
			s.pos = start
			s.skipStatement()
			return
		}
		s.next()
	}

	toks := s.tokens[start:s.pos]
	if len(toks) < 2 || toks[len(toks)-1].Type != Ident {
		s.pos = start
		s.skipStatement()
		return
	}
	name := toks[len(toks)-1].Value
	var ret []string
	stars := 0
	for _, t := range toks[:len(toks)-1] {
		if t.Value == "*" {
			stars++
		} else {
			ret = append(ret, t.Value)
		}
	}
	if len(ret) == 0 {
		s.pos = start
		s.skipStatement()
		return
	}

	params, variadic, ok := s.paramList()
	if !ok {
		s.pos = start
		s.skipStatement()
		return
	}
	switch t := s.peek(); {
	case t != nil && t.Value == ";":
		s.next()
	case t != nil && t.Value == "{":
		// Static inline definition; the body is irrelevant but the
		// signature is still bindable.
		s.skipBraces()
	default:
		s.skipStatement()
		return
	}

	if _, seen := s.ix.Funcs[name]; !seen {
		s.ix.Funcs[name] = &Func{
			Name:     name,
			Ret:      strings.Join(ret, " "),
			RetStars: stars,
			Params:   params,
			Variadic: variadic,
		}
	}
}

// paramList consumes "(...)" returning parsed parameters. The opening
// paren must be the current token.
func (s *scanner) paramList() ([]Param, bool, bool) {
	s.next() // (

	var params []Param
	variadic := false
	cur := Param{}
	var parts []string

	flush := func() {
		if len(parts) == 0 {
			return
		}
		if len(parts) == 1 && (parts[0] == "void") {
			parts = nil
			return
		}
		cur.Name = parts[len(parts)-1]
		cur.Type = strings.Join(parts[:len(parts)-1], " ")
		if cur.Type == "" {
			// Unnamed parameter: the single token is the type.
			cur.Type, cur.Name = cur.Name, ""
		}
		params = append(params, cur)
		cur = Param{}
		parts = nil
	}

	depth := 1
	for {
		t := s.next()
		if t == nil {
			return nil, false, false
		}
		switch t.Value {
		case "(":
			// Function-pointer parameter: give up on this prototype's
			// fine structure but keep scanning to the close.
			depth++
			cur.Type = "fnptr"
		case ")":
			depth--
			if depth == 0 {
				flush()
				return params, variadic, true
			}
		case ",":
			if depth == 1 {
				flush()
			}
		case "*":
			cur.Stars++
		case ".":
			variadic = true
		default:
			if t.Type == Ident && depth == 1 && cur.Type != "fnptr" {
				parts = append(parts, t.Value)
			}
		}
	}
}

// skipStatement advances past the current declaration or definition,
// balancing braces.
func (s *scanner) skipStatement() {
	depth := 0
	for {
		t := s.next()
		if t == nil {
			return
		}
		switch t.Value {
		case "{":
			depth++
		case "}":
			depth--
			if depth <= 0 {
				// Consume a trailing ';' if present.
				if n := s.peek(); n != nil && n.Value == ";" {
					s.next()
				}
				return
			}
		case ";":
			if depth == 0 {
				return
			}
		}
	}
}

// skipBraces consumes a balanced brace block; the opening brace must be
// the current token.
func (s *scanner) skipBraces() {
	if t := s.peek(); t == nil || t.Value != "{" {
		return
	}
	depth := 0
	for {
		t := s.next()
		if t == nil {
			return
		}
		if t.Value == "{" {
			depth++
		}
		if t.Value == "}" {
			depth--
			if depth == 0 {
				return
			}
		}
	}
}

func (s *scanner) skipTo(v string) {
	for {
		t := s.next()
		if t == nil || t.Value == v {
			return
		}
	}
}

func (s *scanner) lookAheadValue(n int) string {
	if s.pos+n >= len(s.tokens) {
		return ""
	}
	return s.tokens[s.pos+n].Value
}

func (s *scanner) record(st *Struct) {
	if _, seen := s.ix.Structs[st.Name]; !seen {
		s.ix.Structs[st.Name] = st
	}
	if st.Tag != "" {
		key := "struct " + st.Tag
		if _, seen := s.ix.Structs[key]; !seen && st.Name != key {
			s.ix.Structs[key] = st
		}
	}
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return n
		}
		n = n*10 + int(c-'0')
	}
	return n
}
