package vectors

type Kind uint8

// Kinds are ordered by promotion: combining two vectors yields the greater kind.
const (
	KindNull Kind = iota
	KindLogical
	KindInteger
	KindDouble
	KindComplex
	KindCharacter
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "NULL"
	case KindLogical:
		return "logical"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	case KindComplex:
		return "complex"
	case KindCharacter:
		return "character"
	}
	return "invalid"
}
