package vulpes

// Code identifies the outcome of a boundary operation. Zero means success.
// The values are stable across releases and shared by every operation.
type Code int

const (
	CodeOK                 Code = 0
	CodeNotInitialized     Code = 1
	CodeAlreadyInitialized Code = 2
	CodeInvalidArgument    Code = 3
	CodeOutOfMemory        Code = 4
	CodeNetwork            Code = 5
	CodeParse              Code = 6
	CodeUnknown            Code = 99
)

// String returns the symbolic name of the code.
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeNotInitialized:
		return "not_initialized"
	case CodeAlreadyInitialized:
		return "already_initialized"
	case CodeInvalidArgument:
		return "invalid_argument"
	case CodeOutOfMemory:
		return "out_of_memory"
	case CodeNetwork:
		return "network"
	case CodeParse:
		return "parse"
	case CodeUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// OK reports whether the code is the success value.
func (c Code) OK() bool { return c == CodeOK }
