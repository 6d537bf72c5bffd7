package logic

type Op uint8

const (
	OpAnd Op = iota + 1
	OpOr
	OpNot
	OpAndElse
	OpOrElse
	OpAll
	OpAny
)

func (o Op) String() string {
	switch o {
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	case OpNot:
		return "!"
	case OpAndElse:
		return "&&"
	case OpOrElse:
		return "||"
	case OpAll:
		return "all"
	case OpAny:
		return "any"
	}
	return "invalid"
}
