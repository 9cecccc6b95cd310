package metadata

// Kind identifies the payload type a Value can carry. The set is closed;
// resolution, parsing, and rendering switch over it exhaustively.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindTime
)

// String returns the lowercase name of the kind, e.g. "int".
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// KindFromString resolves a kind by its lowercase name.
func KindFromString(s string) (Kind, bool) {
	switch s {
	case "string":
		return KindString, true
	case "int":
		return KindInt, true
	case "float":
		return KindFloat, true
	case "bool":
		return KindBool, true
	case "time":
		return KindTime, true
	default:
		return Kind(-1), false
	}
}

func (k Kind) valid() bool {
	return k >= KindString && k <= KindTime
}
