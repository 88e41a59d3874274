package demangle

import "strings"

// readVarType decodes one type. Two-byte lookaheads come first, then
// single-byte dispatch.
func (p *parser) readVarType(sc StorageClass) (Type, error) {
	if p.cur.consume("W4") {
		names, err := p.readName()
		if err != nil {
			return nil, err
		}
		return &Tag{Kind: TagEnum, Names: names, Storage: sc}, nil
	}

	if p.cur.consume("P6A") {
		return p.readFuncPtr(sc)
	}

	orig := p.cur.rest
	c, err := p.cur.get()
	if err != nil {
		return nil, err
	}

	switch c {
	case 'T':
		return p.readTag(TagUnion, sc)
	case 'U':
		return p.readTag(TagStruct, sc)
	case 'V':
		return p.readTag(TagClass, sc)

	case 'A':
		inner, err := p.readPointee()
		if err != nil {
			return nil, err
		}
		return &Reference{Inner: inner, Storage: sc}, nil
	case 'P':
		inner, err := p.readPointee()
		if err != nil {
			return nil, err
		}
		return &Pointer{Inner: inner, Storage: sc}, nil
	case 'Q':
		inner, err := p.readPointee()
		if err != nil {
			return nil, err
		}
		return &Pointer{Inner: inner, Storage: SCConst}, nil

	case 'Y':
		return p.readArray()

	case 'X':
		return &Primitive{Prim: PrimVoid, Storage: sc}, nil
	case 'D':
		return &Primitive{Prim: PrimChar, Storage: sc}, nil
	case 'C':
		return &Primitive{Prim: PrimSchar, Storage: sc}, nil
	case 'E':
		return &Primitive{Prim: PrimUchar, Storage: sc}, nil
	case 'F':
		return &Primitive{Prim: PrimShort, Storage: sc}, nil
	case 'G':
		return &Primitive{Prim: PrimUshort, Storage: sc}, nil
	case 'H':
		return &Primitive{Prim: PrimInt, Storage: sc}, nil
	case 'I':
		return &Primitive{Prim: PrimUint, Storage: sc}, nil
	case 'J':
		return &Primitive{Prim: PrimLong, Storage: sc}, nil
	case 'K':
		return &Primitive{Prim: PrimUlong, Storage: sc}, nil
	case 'M':
		return &Primitive{Prim: PrimFloat, Storage: sc}, nil
	case 'N':
		return &Primitive{Prim: PrimDouble, Storage: sc}, nil
	case 'O':
		return &Primitive{Prim: PrimLdouble, Storage: sc}, nil

	case '_':
		// Extended primitive set.
		c, err = p.cur.get()
		if err != nil {
			return nil, err
		}
		switch c {
		case 'N':
			return &Primitive{Prim: PrimBool, Storage: sc}, nil
		case 'J':
			return &Primitive{Prim: PrimInt64, Storage: sc}, nil
		case 'K':
			return &Primitive{Prim: PrimUint64, Storage: sc}, nil
		case 'W':
			return &Primitive{Prim: PrimWchar, Storage: sc}, nil
		}
		return nil, fail(ErrUnknownType, orig)
	}
	return nil, fail(ErrUnknownType, orig)
}

func (p *parser) readTag(kind TagKind, sc StorageClass) (Type, error) {
	names, err := p.readName()
	if err != nil {
		return nil, err
	}
	return &Tag{Kind: kind, Names: names, Storage: sc}, nil
}

// readPointee decodes what a pointer or reference points at: an optional
// 64-bit marker, a storage class byte, then the pointee type.
func (p *parser) readPointee() (Type, error) {
	p.cur.consume("E")
	sc := p.readStorageClass()
	return p.readVarType(sc)
}

// readFuncPtr decodes the P6A pointer-to-function shorthand: return type,
// parameter list, and an optional @Z or Z trailer.
func (p *parser) readFuncPtr(sc StorageClass) (Type, error) {
	ret, err := p.readVarType(0)
	if err != nil {
		return nil, err
	}
	params, err := p.readParams()
	if err != nil {
		return nil, err
	}
	if !p.cur.consume("@Z") {
		p.cur.consume("Z")
	}
	return &Pointer{
		Inner:   &NonMemberFunction{Params: orEmpty(params), Return: ret},
		Storage: sc,
	}, nil
}

// readArray decodes Y<dimension-count><length>... recursing inward.
// The grammar never encodes empty or negative arrays.
func (p *parser) readArray() (Type, error) {
	orig := p.cur.rest
	dim, err := p.readNumber()
	if err != nil {
		return nil, err
	}
	if dim <= 0 {
		return nil, fail(ErrBadArrayDimension, orig)
	}
	arr, _, err := p.readNestedArray(dim)
	return arr, err
}

// readNestedArray reads dim lengths, then the element type. The innermost
// level may carry a $$C qualifier triplet whose storage class is attached
// to every array level on the way back out.
func (p *parser) readNestedArray(dim int32) (Type, StorageClass, error) {
	if dim > 0 {
		orig := p.cur.rest
		length, err := p.readNumber()
		if err != nil {
			return nil, 0, err
		}
		if length <= 0 {
			return nil, 0, fail(ErrBadArrayDimension, orig)
		}
		inner, sc, err := p.readNestedArray(dim - 1)
		if err != nil {
			return nil, 0, err
		}
		return &Array{Len: length, Inner: inner, Storage: sc}, sc, nil
	}

	var sc StorageClass
	if p.cur.consume("$$C") {
		if p.cur.consume("B") {
			sc = SCConst
		} else if p.cur.consume("C") || p.cur.consume("D") {
			sc = SCConst | SCVolatile
		} else if !p.cur.consume("A") {
			return nil, 0, fail(ErrUnknownStorageClass, p.cur.rest)
		}
	}
	elem, err := p.readVarType(0)
	return elem, sc, err
}

// readParams decodes a function parameter or template argument list. Each
// list owns a fresh 10-slot type cache: a back-reference digit resolves only
// against types memorized in this same list. A nil result means the list was
// absent, distinct from present-but-empty.
func (p *parser) readParams() (*Params, error) {
	var backrefs []Type
	var types []Type

	for !strings.HasPrefix(p.cur.rest, "@") && !strings.HasPrefix(p.cur.rest, "Z") {
		orig := p.cur.rest

		if d, ok := p.cur.consumeDigit(); ok {
			if d >= len(backrefs) {
				return nil, fail(ErrInvalidBackref, orig)
			}
			types = append(types, backrefs[d])
			continue
		}

		before := len(p.cur.rest)
		t, err := p.readVarType(0)
		if err != nil {
			return nil, err
		}

		// Single-byte encodings are never memorized; re-emitting the byte
		// costs no more than a back-reference digit.
		if len(backrefs) < 10 && before-len(p.cur.rest) > 1 {
			backrefs = append(backrefs, t)
		}
		types = append(types, t)
	}

	if len(types) == 0 {
		return nil, nil
	}
	return &Params{Types: types}, nil
}
