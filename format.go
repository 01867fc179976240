package zx0

// ZX0 format constants.
const (
	InitialOffset     = 1   // Last offset before the first new-offset copy.
	EndOfStreamMarker = 256 // High part of a new offset that terminates the stream.
	OffsetLowBits     = 7   // Offset bits carried in bits 7..1 of the offset byte.
)
