package demangle

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Demangle converts an MSVC decorated name to a readable C++ declaration.
// Decoding is a pure function of the input: no state is retained across
// calls, and concurrent calls need no coordination.
func Demangle(mangled string) (string, error) {
	sym, err := Parse(mangled)
	if err != nil {
		return "", err
	}
	return sym.String(), nil
}

// Parse decodes a mangled name into its symbol AST.
func Parse(mangled string) (*Symbol, error) {
	p := &parser{cur: cursor{rest: mangled}}
	return p.parse()
}

// IsMangled reports whether the name looks like an MSVC mangled name.
func IsMangled(name string) bool {
	return len(name) > 0 && (name[0] == '?' || strings.HasPrefix(name, "@?"))
}

func fail(kind error, remainder string) error {
	return &DecodeError{Err: kind, Remainder: remainder}
}

// parser holds the per-call decode state: the input cursor and the name
// back-reference cache. Parameter lists carry their own type caches, scoped
// strictly to one list (see readParams).
type parser struct {
	cur cursor

	// The first 10 distinct name segments can be back-referenced by a
	// single digit.
	names []string
}

func (p *parser) parse() (*Symbol, error) {
	if !p.cur.consume("?") {
		return nil, fail(ErrMissingPrefix, p.cur.rest)
	}

	// The main symbol name, possibly qualified by namespaces or classes.
	name, err := p.readName()
	if err != nil {
		return nil, err
	}

	var typ Type
	switch {
	case p.cur.consume("3"):
		// Variable.
		typ, err = p.readVarType(0)
		if err != nil {
			return nil, err
		}

	case p.cur.consume("Y"):
		// Non-member function.
		if _, err = p.readCallingConv(); err != nil {
			return nil, err
		}
		sc, err := p.readStorageClassForReturn()
		if err != nil {
			return nil, err
		}
		ret, err := p.readVarType(sc)
		if err != nil {
			return nil, err
		}
		params, err := p.readParams()
		if err != nil {
			return nil, err
		}
		typ = &NonMemberFunction{Params: orEmpty(params), Return: ret}

	default:
		// Member function.
		if _, err = p.readFuncClass(); err != nil {
			return nil, err
		}
		p.cur.consume("E") // 64-bit pointer marker, decoded and discarded
		access := p.readFuncAccessClass()
		if _, err = p.readCallingConv(); err != nil {
			return nil, err
		}
		sc, err := p.readStorageClassForReturn()
		if err != nil {
			return nil, err
		}
		ret, err := p.readFuncReturnType(sc)
		if err != nil {
			return nil, err
		}
		params, err := p.readParams()
		if err != nil {
			return nil, err
		}
		typ = &MemberFunction{Params: orEmpty(params), Storage: access, Return: ret}
	}

	return &Symbol{Name: name, Type: typ}, nil
}

func orEmpty(p *Params) Params {
	if p == nil {
		return Params{}
	}
	return *p
}

// readNumber decodes an embedded integer:
//
//	<number>               ::= [?] <non-negative integer>
//	<non-negative integer> ::= <decimal digit>   # value digit+1 (1..10)
//	                       ::= <hex digit>+ @    # A=0 .. P=15, big-endian
//
// A leading '?' negates the value. Hex encodings whose magnitude does not
// fit in 31 bits are rejected rather than wrapped.
func (p *parser) readNumber() (int32, error) {
	neg := p.cur.consume("?")

	if d, ok := p.cur.consumeDigit(); ok {
		n := int32(d) + 1
		if neg {
			n = -n
		}
		return n, nil
	}

	orig := p.cur.rest
	var n int32
	for i := 0; i < len(p.cur.rest); i++ {
		c := p.cur.rest[i]
		switch {
		case c == '@':
			p.cur.trim(i + 1)
			if neg {
				n = -n
			}
			return n, nil
		case c >= 'A' && c <= 'P':
			if n > math.MaxInt32>>4 {
				return 0, fail(ErrBadNumber, orig)
			}
			n = n<<4 + int32(c-'A')
		default:
			return 0, fail(ErrBadNumber, orig)
		}
	}
	return 0, fail(ErrBadNumber, orig)
}

// readString reads raw identifier bytes up to the next '@'. The fragment is
// validated as text here so the printer cannot fail later.
func (p *parser) readString() (string, error) {
	i := strings.IndexByte(p.cur.rest, '@')
	if i < 0 {
		return "", fail(ErrUnexpectedEnd, p.cur.rest)
	}
	s := p.cur.rest[:i]
	p.cur.trim(i + 1)
	if !utf8.ValidString(s) {
		return "", fail(ErrInvalidText, s)
	}
	return s, nil
}

// memorizeName records a name segment for back-referencing. Insertion is
// idempotent and stops once 10 entries are held; later names stay usable,
// they just cannot be referenced.
func (p *parser) memorizeName(s string) {
	if len(p.names) >= 10 {
		return
	}
	for _, n := range p.names {
		if n == s {
			return
		}
	}
	p.names = append(p.names, s)
}

// readName parses a qualified name in the form A@B@C@@, which represents
// C::B::A. Segments are stored innermost-first, as encoded.
func (p *parser) readName() (NameSequence, error) {
	var names []Name
	for !p.cur.consume("@") {
		orig := p.cur.rest
		var name Name

		switch {
		case p.cur.peek() >= '0' && p.cur.peek() <= '9':
			d, _ := p.cur.consumeDigit()
			if d >= len(p.names) {
				return NameSequence{}, fail(ErrInvalidBackref, orig)
			}
			name = Name{Name: p.names[d]}

		case p.cur.consume("?$"):
			// Template specialization.
			s, err := p.readString()
			if err != nil {
				return NameSequence{}, err
			}
			params, err := p.readParams()
			if err != nil {
				return NameSequence{}, err
			}
			if !p.cur.consume("@") {
				return NameSequence{}, fail(ErrUnexpectedEnd, p.cur.rest)
			}
			name = Name{Name: s, TemplateParams: params}

		case p.cur.consume("?"):
			// Overloaded operator or special member.
			var err error
			name, err = p.readOperator()
			if err != nil {
				return NameSequence{}, err
			}

		default:
			s, err := p.readString()
			if err != nil {
				return NameSequence{}, err
			}
			p.memorizeName(s)
			name = Name{Name: s}
		}

		names = append(names, name)
	}
	return NameSequence{Names: names}, nil
}

// readOperator decodes an operator code, the class-name echo that may follow
// it, and trailing template arguments.
func (p *parser) readOperator() (Name, error) {
	op, err := p.readOperatorName()
	if err != nil {
		return Name{}, err
	}
	var name string
	if p.cur.peek() != '@' {
		if name, err = p.readString(); err != nil {
			return Name{}, err
		}
		p.memorizeName(name)
	}
	params, err := p.readParams()
	if err != nil {
		return Name{}, err
	}
	return Name{Name: name, Op: op, TemplateParams: params}, nil
}

func (p *parser) readOperatorName() (string, error) {
	orig := p.cur.rest

	c, err := p.cur.get()
	if err != nil {
		return "", err
	}
	if c != '_' {
		if op, ok := operatorNames[c]; ok {
			return op, nil
		}
		return "", fail(ErrUnknownOperator, orig)
	}

	// '_'-prefixed extension set.
	c, err = p.cur.get()
	if err != nil {
		return "", err
	}
	if c == '_' {
		if p.cur.consume("L") {
			return " co_await", nil
		}
		return "", fail(ErrUnknownOperator, orig)
	}
	if op, ok := extendedOperatorNames[c]; ok {
		return op, nil
	}
	return "", fail(ErrUnknownOperator, orig)
}

func (p *parser) readFuncClass() (FuncClass, error) {
	orig := p.cur.rest
	c, err := p.cur.get()
	if err != nil {
		return 0, err
	}
	switch c {
	case 'A':
		return FCPrivate, nil
	case 'B':
		return FCPrivate | FCFar, nil
	case 'C', 'D':
		return FCPrivate | FCStatic, nil
	case 'E', 'F':
		return FCPrivate | FCVirtual, nil
	case 'I':
		return FCProtected, nil
	case 'J':
		return FCProtected | FCFar, nil
	case 'K':
		return FCProtected | FCStatic, nil
	case 'L':
		return FCProtected | FCStatic | FCFar, nil
	case 'M':
		return FCProtected | FCVirtual, nil
	case 'N':
		return FCProtected | FCVirtual | FCFar, nil
	case 'Q':
		return FCPublic, nil
	case 'R':
		return FCPublic | FCFar, nil
	case 'S':
		return FCPublic | FCStatic, nil
	case 'T':
		return FCPublic | FCStatic | FCFar, nil
	case 'U':
		return FCPublic | FCVirtual, nil
	case 'V':
		return FCPublic | FCVirtual | FCFar, nil
	case 'Y':
		return FCGlobal, nil
	case 'Z':
		return FCGlobal | FCFar, nil
	}
	return 0, fail(ErrUnknownFuncClass, orig)
}

// readFuncAccessClass decodes the optional cv-qualifier on a member
// function. An unrecognized byte is left unconsumed.
func (p *parser) readFuncAccessClass() StorageClass {
	var sc StorageClass
	switch p.cur.peek() {
	case 'A':
		sc = 0
	case 'B':
		sc = SCConst
	case 'C':
		sc = SCVolatile
	case 'D':
		sc = SCConst | SCVolatile
	default:
		return 0
	}
	p.cur.trim(1)
	return sc
}

func (p *parser) readCallingConv() (CallingConv, error) {
	orig := p.cur.rest
	c, err := p.cur.get()
	if err != nil {
		return 0, err
	}
	switch c {
	case 'A', 'B':
		return CallingConvCdecl, nil
	case 'C':
		return CallingConvPascal, nil
	case 'E':
		return CallingConvThiscall, nil
	case 'G':
		return CallingConvStdcall, nil
	case 'I':
		return CallingConvFastcall, nil
	}
	return 0, fail(ErrUnknownCallingConv, orig)
}

// readFuncReturnType reads a return type, or the no-declared-return-type
// sentinel ('@') used by constructors and destructors.
func (p *parser) readFuncReturnType(sc StorageClass) (Type, error) {
	if p.cur.consume("@") {
		return nil, nil
	}
	return p.readVarType(sc)
}

// readStorageClass decodes a pointee's storage class byte. An unrecognized
// byte is left unconsumed and means "no qualifiers".
func (p *parser) readStorageClass() StorageClass {
	var sc StorageClass
	switch p.cur.peek() {
	case 'A':
		sc = 0
	case 'B':
		sc = SCConst
	case 'C':
		sc = SCVolatile
	case 'D':
		sc = SCConst | SCVolatile
	case 'E':
		sc = SCFar
	case 'F':
		sc = SCConst | SCFar
	case 'G':
		sc = SCVolatile | SCFar
	case 'H':
		sc = SCConst | SCVolatile | SCFar
	default:
		return 0
	}
	p.cur.trim(1)
	return sc
}

// readStorageClassForReturn decodes the optional '?'-introduced qualifier
// marker preceding a return type.
func (p *parser) readStorageClassForReturn() (StorageClass, error) {
	if !p.cur.consume("?") {
		return 0, nil
	}
	orig := p.cur.rest
	c, err := p.cur.get()
	if err != nil {
		return 0, err
	}
	switch c {
	case 'A':
		return 0, nil
	case 'B':
		return SCConst, nil
	case 'C':
		return SCVolatile, nil
	case 'D':
		return SCConst | SCVolatile, nil
	}
	return 0, fail(ErrUnknownStorageClass, orig)
}
