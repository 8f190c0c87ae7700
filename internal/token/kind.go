// Package token defines the lexical token vocabulary of mcdoc.
package token

// Kind categorizes a token.
type Kind uint8

const (
	Invalid Kind = iota
	EOF

	Ident
	ResourceLocation // namespace:path/segments

	// Keywords.
	KwStruct
	KwEnum
	KwType
	KwUse
	KwAs
	KwSuper
	KwInject
	KwDispatch
	KwTo
	KwAny
	KwBoolean
	KwString
	KwByte
	KwShort
	KwInt
	KwLong
	KwFloat
	KwDouble
	KwTrue
	KwFalse

	// Literals.
	IntLit
	FloatLit
	TypedNumberLit // integer/float immediately followed by a b/s/i/l/f/d suffix
	StringLit
	DocComment

	// Punctuation & operators.
	DblColon         // ::
	DotDot           // ..
	DotDotLt         // ..<
	LtDotDot         // <..
	LtDotDotLt       // <..<
	Question         // ?
	At               // @
	Hash             // #
	Percent          // %
	DotDotDot        // ...
	Assign           // =
	Pipe             // |
	Comma            // ,
	Semicolon        // ;
	Colon            // :
	LBrace           // {
	RBrace           // }
	LBracket         // [
	RBracket         // ]
	LParen           // (
	RParen           // )
	LAngle           // <
	RAngle           // >
)

var kindNames = map[Kind]string{
	Invalid: "invalid", EOF: "eof",
	Ident: "ident", ResourceLocation: "resource-location",
	KwStruct: "struct", KwEnum: "enum", KwType: "type", KwUse: "use",
	KwAs: "as", KwSuper: "super", KwInject: "inject", KwDispatch: "dispatch",
	KwTo: "to", KwAny: "any", KwBoolean: "boolean", KwString: "string",
	KwByte: "byte", KwShort: "short", KwInt: "int", KwLong: "long",
	KwFloat: "float", KwDouble: "double", KwTrue: "true", KwFalse: "false",
	IntLit: "int-lit", FloatLit: "float-lit", TypedNumberLit: "typed-number-lit",
	StringLit: "string-lit", DocComment: "doc-comment",
	DblColon: "::", DotDot: "..", DotDotLt: "..<", LtDotDot: "<..", LtDotDotLt: "<..<",
	Question: "?", At: "@", Hash: "#", Percent: "%", DotDotDot: "...", Assign: "=", Pipe: "|",
	Comma: ",", Semicolon: ";", Colon: ":", LBrace: "{", RBrace: "}", LBracket: "[", RBracket: "]",
	LParen: "(", RParen: ")", LAngle: "<", RAngle: ">",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Keywords maps reserved words to their Kind. Reserved words cannot be used
// as identifiers (diagnostic reserved-word-as-identifier).
var Keywords = map[string]Kind{
	"struct":  KwStruct,
	"enum":    KwEnum,
	"type":    KwType,
	"use":     KwUse,
	"as":      KwAs,
	"super":   KwSuper,
	"inject":  KwInject,
	"dispatch": KwDispatch,
	"to":      KwTo,
	"any":     KwAny,
	"boolean": KwBoolean,
	"string":  KwString,
	"byte":    KwByte,
	"short":   KwShort,
	"int":     KwInt,
	"long":    KwLong,
	"float":   KwFloat,
	"double":  KwDouble,
	"true":    KwTrue,
	"false":   KwFalse,
}

// IsReserved reports whether text names a reserved word.
func IsReserved(text string) bool {
	_, ok := Keywords[text]
	return ok
}
