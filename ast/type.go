package ast

// ObjectType represents the type of an AST object
type ObjectType uint16

// Object types
const (
	objectTypeValue  ObjectType = 128
	objectTypeVector ObjectType = 256

	ObjectTypeVoid   = objectTypeValue | 1
	ObjectTypeBool   = objectTypeValue | 2
	ObjectTypeInt    = objectTypeValue | 4
	ObjectTypeSymbol = objectTypeValue | 8

	ObjectTypeList   = objectTypeVector | 1
	ObjectTypeLambda = objectTypeVector | 2
)

func (ot ObjectType) String() string {
	s, ok := objectTypeName[ot]
	if ok {
		return s
	}
	return ""
}

var objectTypeName = map[ObjectType]string{
	ObjectTypeVoid:   "void",
	ObjectTypeBool:   "bool",
	ObjectTypeInt:    "int",
	ObjectTypeSymbol: "symbol",
	ObjectTypeList:   "list",
	ObjectTypeLambda: "lambda",
}
