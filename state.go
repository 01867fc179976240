package zx0

// decodeState is a state of the decoder state machine.
type decodeState int

const (
	stateCopyLiterals decodeState = iota
	stateCopyFromLastOffset
	stateCopyFromNewOffset
	stateDone
)

func (s decodeState) String() string {
	switch s {
	case stateCopyLiterals:
		return "CopyLiterals"
	case stateCopyFromLastOffset:
		return "CopyFromLastOffset"
	case stateCopyFromNewOffset:
		return "CopyFromNewOffset"
	case stateDone:
		return "Done"
	default:
		return "Unknown"
	}
}
