package demangle

import "strconv"

// printer renders a decoded symbol back to C++ declarator syntax.
//
// C declarations mirror use, so the string cannot be built by a plain
// left-to-right walk: for a pointer to a function returning int, the
// innermost "int" comes first, the parameter list last, and the pointer
// lands in between, parenthesized. The printer therefore splits every node
// into a prefix phase (everything before the declared name) and a suffix
// phase (everything after it).
type printer struct {
	buf []byte
}

func (p *printer) String() string { return string(p.buf) }

func (p *printer) writeString(s string) { p.buf = append(p.buf, s...) }

func (p *printer) writeByte(b byte) { p.buf = append(p.buf, b) }

// writeSpace separates the next token from a preceding identifier-like
// token, so that "int" and a following name or qualifier do not run
// together.
func (p *printer) writeSpace() {
	if n := len(p.buf); n > 0 && isAlpha(p.buf[n-1]) {
		p.buf = append(p.buf, ' ')
	}
}

func isAlpha(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// needsGrouping reports whether a pointer or reference to t must be
// parenthesized. "[]" and "()" bind tighter than "*", so "int *x(int)"
// declares a function returning int*; pointing at the function itself
// requires "int (*x)(int)".
func needsGrouping(t Type) bool {
	switch t.(type) {
	case *MemberFunction, *NonMemberFunction, *Array:
		return true
	}
	return false
}

// writePre emits everything preceding the declared name.
func (p *printer) writePre(t Type) {
	var sc StorageClass

	switch t := t.(type) {
	case nil:
		// Constructors and destructors have no declared return type.
		return

	case *MemberFunction:
		p.writePre(t.Return)
		return
	case *NonMemberFunction:
		p.writePre(t.Return)
		return

	case *Pointer:
		p.writePre(t.Inner)
		if needsGrouping(t.Inner) {
			p.writeByte('(')
		}
		p.writeByte('*')
		sc = t.Storage
	case *Reference:
		p.writePre(t.Inner)
		if needsGrouping(t.Inner) {
			p.writeByte('(')
		}
		p.writeByte('&')
		sc = t.Storage

	case *Array:
		p.writePre(t.Inner)
		sc = t.Storage

	case *Tag:
		p.writeString(tagNames[t.Kind])
		p.writeByte(' ')
		p.writeName(&t.Names)
		sc = t.Storage

	case *Primitive:
		p.writeString(primitiveNames[t.Prim])
		sc = t.Storage
	}

	if sc&SCConst != 0 {
		p.writeSpace()
		p.writeString("const")
	}
}

// writePost emits everything following the declared name.
func (p *printer) writePost(t Type) {
	switch t := t.(type) {
	case *MemberFunction:
		p.writeByte('(')
		p.writeParams(&t.Params)
		p.writeByte(')')
		if t.Storage&SCConst != 0 {
			p.writeString("const")
		}
	case *NonMemberFunction:
		p.writeByte('(')
		p.writeParams(&t.Params)
		p.writeByte(')')
		if t.Storage&SCConst != 0 {
			p.writeString("const")
		}

	case *Pointer:
		if needsGrouping(t.Inner) {
			p.writeByte(')')
		}
		p.writePost(t.Inner)
	case *Reference:
		if needsGrouping(t.Inner) {
			p.writeByte(')')
		}
		p.writePost(t.Inner)

	case *Array:
		p.writeByte('[')
		p.buf = strconv.AppendInt(p.buf, int64(t.Len), 10)
		p.writeByte(']')
		p.writePost(t.Inner)
	}
}

func (p *printer) writeParams(params *Params) {
	for i, t := range params.Types {
		if i > 0 {
			p.writeByte(',')
		}
		p.writePre(t)
		p.writePost(t)
	}
}

// writeName renders a qualified name. Segments are stored innermost-first,
// so outer scopes print from the end of the sequence down to the second
// element, then the innermost segment is rendered according to what it is.
func (p *printer) writeName(names *NameSequence) {
	p.writeSpace()

	for i := len(names.Names) - 1; i >= 1; i-- {
		n := &names.Names[i]
		p.writeString(n.Name)
		p.writeTemplateParams(n.TemplateParams)
		p.writeString("::")
	}

	if len(names.Names) == 0 {
		return
	}
	n := &names.Names[0]
	switch {
	case n.Op == "":
		p.writeString(n.Name)
		p.writeTemplateParams(n.TemplateParams)

	case n.Op == opCtor || n.Op == opDtor:
		// Constructors and destructors repeat the class name.
		p.writeString(n.Name)
		if n.TemplateParams != nil {
			p.writeParams(n.TemplateParams)
		}
		p.writeString("::")
		if n.Op == opDtor {
			p.writeByte('~')
		}
		p.writeString(n.Name)

	default:
		// The Class:: prefix is omitted when the operator occurrence
		// carried no associated name.
		if n.Name != "" {
			p.writeString(n.Name)
			p.writeString("::")
		}
		p.writeString("operator")
		p.writeString(n.Op)
	}
}

func (p *printer) writeTemplateParams(params *Params) {
	if params == nil {
		return
	}
	p.writeByte('<')
	p.writeParams(params)
	p.writeByte('>')
}
