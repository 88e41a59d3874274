// Package demangle decodes MSVC-style mangled C++ symbol names into
// readable C++ declarations.
package demangle

// StorageClass is a bit set of type qualifiers attached to a type node.
type StorageClass uint32

const (
	SCConst StorageClass = 1 << iota
	SCVolatile
	SCFar
	SCHuge
	SCUnaligned
	SCRestrict
)

// FuncClass is a bit set describing a member function's access and linkage.
type FuncClass uint32

const (
	FCPublic FuncClass = 1 << iota
	FCProtected
	FCPrivate
	FCGlobal
	FCStatic
	FCVirtual
	FCFar
)

// CallingConv identifies a function calling convention.
type CallingConv int

const (
	CallingConvCdecl CallingConv = iota
	CallingConvPascal
	CallingConvThiscall
	CallingConvStdcall
	CallingConvFastcall
	CallingConvRegcall // reserved, never decoded
)

// TypeKind identifies the concrete variant behind a Type.
type TypeKind int

const (
	KindMemberFunction TypeKind = iota
	KindNonMemberFunction
	KindPointer
	KindReference
	KindArray
	KindTag
	KindPrimitive
)

// Type is a node in the decoded type tree. Nested types are exclusively
// owned; nothing is mutated after construction.
type Type interface {
	TypeKind() TypeKind
}

// Name is one segment of a qualified identifier.
type Name struct {
	// Name holds the raw identifier bytes read from the input. For a
	// constructor, destructor or operator it is the class-name echo that
	// follows the operator code, and may be empty.
	Name string

	// Op is the operator spelling ("==", "ctor", " new[]", ...) when this
	// segment is an overloaded operator or special member, otherwise "".
	Op string

	// TemplateParams holds template arguments. nil means not a template;
	// an empty list is a template with zero arguments.
	TemplateParams *Params
}

// NameSequence is a qualified name, stored innermost-first as encoded:
// Base@Derived@@ decodes to [Base, Derived] and prints as Derived::Base.
type NameSequence struct {
	Names []Name
}

// Params is an ordered type list, used for both function parameters and
// template arguments.
type Params struct {
	Types []Type
}

// MemberFunction is a member function signature. A nil Return is the
// "no declared return type" sentinel used by constructors and destructors.
type MemberFunction struct {
	Params  Params
	Storage StorageClass // access qualifiers ('const' member function)
	Return  Type
}

// NonMemberFunction is a free function signature.
type NonMemberFunction struct {
	Params  Params
	Storage StorageClass
	Return  Type
}

// Pointer is a pointer to Inner.
type Pointer struct {
	Inner   Type
	Storage StorageClass
}

// Reference is a reference to Inner.
type Reference struct {
	Inner   Type
	Storage StorageClass
}

// Array is a fixed-length array of Inner.
type Array struct {
	Len     int32
	Inner   Type
	Storage StorageClass
}

// TagKind identifies the user-defined type kinds.
type TagKind int

const (
	TagStruct TagKind = iota
	TagUnion
	TagClass
	TagEnum
)

var tagNames = [...]string{
	TagStruct: "struct",
	TagUnion:  "union",
	TagClass:  "class",
	TagEnum:   "enum",
}

// Tag is a named user-defined type (struct, union, class or enum).
type Tag struct {
	Kind    TagKind
	Names   NameSequence
	Storage StorageClass
}

// PrimitiveKind identifies the fixed primitive types.
type PrimitiveKind int

const (
	PrimVoid PrimitiveKind = iota
	PrimBool
	PrimChar
	PrimSchar
	PrimUchar
	PrimShort
	PrimUshort
	PrimInt
	PrimUint
	PrimLong
	PrimUlong
	PrimInt64
	PrimUint64
	PrimWchar
	PrimFloat
	PrimDouble
	PrimLdouble
)

var primitiveNames = [...]string{
	PrimVoid:    "void",
	PrimBool:    "bool",
	PrimChar:    "char",
	PrimSchar:   "signed char",
	PrimUchar:   "unsigned char",
	PrimShort:   "short",
	PrimUshort:  "unsigned short",
	PrimInt:     "int",
	PrimUint:    "unsigned int",
	PrimLong:    "long",
	PrimUlong:   "unsigned long",
	PrimInt64:   "int64_t",
	PrimUint64:  "uint64_t",
	PrimWchar:   "wchar_t",
	PrimFloat:   "float",
	PrimDouble:  "double",
	PrimLdouble: "long double",
}

// Primitive is a fundamental type.
type Primitive struct {
	Prim    PrimitiveKind
	Storage StorageClass
}

func (*MemberFunction) TypeKind() TypeKind    { return KindMemberFunction }
func (*NonMemberFunction) TypeKind() TypeKind { return KindNonMemberFunction }
func (*Pointer) TypeKind() TypeKind           { return KindPointer }
func (*Reference) TypeKind() TypeKind         { return KindReference }
func (*Array) TypeKind() TypeKind             { return KindArray }
func (*Tag) TypeKind() TypeKind               { return KindTag }
func (*Primitive) TypeKind() TypeKind         { return KindPrimitive }

// Symbol is the terminal decode artifact: a qualified name and its type.
type Symbol struct {
	Name NameSequence
	Type Type
}

// String renders the symbol as a C++ declaration. Rendering a well-formed
// symbol never fails and is deterministic.
func (s *Symbol) String() string {
	var p printer
	p.writePre(s.Type)
	p.writeName(&s.Name)
	p.writePost(s.Type)
	return p.String()
}
