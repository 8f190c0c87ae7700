package diag

// Code identifies the kind of problem a Diagnostic reports. Values are
// grouped by stage into numeric bands (lexical, syntax, resolution, ...).
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical — 1000s.
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexInvalidEscape            Code = 1003
	LexNumberOutOfRangeForSuffix Code = 1004
	LexStrayDocComment          Code = 1005

	// Syntax — 2000s.
	SynUnexpectedToken       Code = 2001
	SynUnclosedDelimiter     Code = 2002
	SynExpectedTypeExpr      Code = 2003
	SynExpectedIdent         Code = 2004
	SynSingleUnionMember     Code = 2005
	SynDynamicIndexInDispatch Code = 2006
	SynFallbackOnDispatchLHS Code = 2007
	SynReservedWordAsIdent   Code = 2008
	SynBadEnumVariantValue   Code = 2009

	// Symbol resolution — 3000s.
	ResDuplicateDeclaration Code = 3001
	ResDuplicateDispatchKey Code = 3002
	ResUnknownPath          Code = 3003
	ResSuperPastRoot        Code = 3004
	ResUnknownInjectTarget  Code = 3005
	ResGenericShadowsModule Code = 3006

	// Instantiation — 4000s.
	InstTypeArgCountMismatch           Code = 4001
	InstStaticKeyOnNonDispatcherStruct Code = 4002
	InstUnknownDispatcherRegistry      Code = 4003
	InstCycleWithoutLaziness           Code = 4004

	// I/O and project loading — 5000s.
	IOLoadFileError     Code = 5001
	IOManifestError     Code = 5002
)

func (c Code) String() string {
	switch c {
	case UnknownCode:
		return "unknown"
	case LexUnknownChar:
		return "lex-unknown-char"
	case LexUnterminatedString:
		return "lex-unterminated-string"
	case LexInvalidEscape:
		return "invalid-escape"
	case LexNumberOutOfRangeForSuffix:
		return "number-out-of-range-for-suffix"
	case LexStrayDocComment:
		return "lex-stray-doc-comment"
	case SynUnexpectedToken:
		return "syn-unexpected-token"
	case SynUnclosedDelimiter:
		return "syn-unclosed-delimiter"
	case SynExpectedTypeExpr:
		return "syn-expected-type-expr"
	case SynExpectedIdent:
		return "syn-expected-ident"
	case SynSingleUnionMember:
		return "syn-single-union-member"
	case SynDynamicIndexInDispatch:
		return "dynamic-index-in-dispatch-statement"
	case SynFallbackOnDispatchLHS:
		return "fallback-on-dispatch-lhs"
	case SynReservedWordAsIdent:
		return "reserved-word-as-identifier"
	case SynBadEnumVariantValue:
		return "syn-bad-enum-variant-value"
	case ResDuplicateDeclaration:
		return "duplicate-declaration"
	case ResDuplicateDispatchKey:
		return "duplicate-dispatch-key"
	case ResUnknownPath:
		return "unknown-path"
	case ResSuperPastRoot:
		return "super-past-root"
	case ResUnknownInjectTarget:
		return "unknown-path"
	case ResGenericShadowsModule:
		return "res-generic-shadows-module"
	case InstTypeArgCountMismatch:
		return "type-arg-count-mismatch"
	case InstStaticKeyOnNonDispatcherStruct:
		return "static-key-on-non-dispatcher-non-struct"
	case InstUnknownDispatcherRegistry:
		return "unknown-dispatcher-registry"
	case InstCycleWithoutLaziness:
		return "cycle-without-laziness"
	case IOLoadFileError:
		return "io-load-file-error"
	case IOManifestError:
		return "io-manifest-error"
	default:
		return "unknown"
	}
}
