package demangle

// Spellings for the ctor/dtor special members. They are rendered by
// repeating the class name rather than by an "operator" prefix.
const (
	opCtor = "ctor"
	opDtor = "dtor"
)

// operatorNames maps a one-letter operator code to its spelling. Codes for
// operator new/delete carry a leading space so that "operator new" prints
// with its separator.
var operatorNames = map[byte]string{
	'0': opCtor,
	'1': opDtor,
	'2': " new",
	'3': " delete",
	'4': "=",
	'5': ">>",
	'6': "<<",
	'7': "!",
	'8': "==",
	'9': "!=",
	'A': "[]",
	'C': "->",
	'D': "*",
	'E': "++",
	'F': "--",
	'G': "-",
	'H': "+",
	'I': "&",
	'J': "->*",
	'K': "/",
	'L': "%",
	'M': "<",
	'N': "<=",
	'O': ">",
	'P': ">=",
	'Q': ",",
	'R': "()",
	'S': "~",
	'T': "^",
	'U': "|",
	'V': "&&",
	'W': "||",
	'X': "*=",
	'Y': "+=",
	'Z': "-=",
}

// extendedOperatorNames maps the second byte of a '_'-prefixed operator
// code. The co_await spelling is a third level ("__L") handled by the
// name decoder.
var extendedOperatorNames = map[byte]string{
	'0': "/=",
	'1': "%=",
	'2': ">>=",
	'3': "<<=",
	'4': "&=",
	'5': "|=",
	'6': "^=",
	'U': " new[]",
	'V': " delete[]",
}
