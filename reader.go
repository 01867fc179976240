package zx0

import (
	"errors"
	"fmt"
	"io"
)

// sliceByteReader reads from a byte slice.
type sliceByteReader struct {
	data []byte // The byte slice to read from.
	pos  int    // The current position in the byte slice.
}

// countingByteReader reads from a byte reader and counts the number of bytes read.
type countingByteReader struct {
	base  io.ByteReader // The byte reader to read from.
	count int64         // The number of bytes read.
}

// ReadByte reads a byte from the slice.
func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// ReadByte reads a byte from the reader and increments the count.
func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}

// bitEmpty is the register value when only the end marker is left.
const bitEmpty = 0x8000

// bitReader extracts single bits MSB-first and raw bytes from the same source.
type bitReader struct {
	src io.ByteReader
	// Unread bits start at the most significant bit and are followed by a
	// single 1 bit marking the end of the buffered data.
	bits uint16
}

func newBitReader(src io.ByteReader) *bitReader {
	return &bitReader{src: src, bits: bitEmpty}
}

// readByte reads one raw byte. End of input maps to ErrTruncatedInput,
// any other failure is wrapped in ErrReadFailure.
func (r *bitReader) readByte() (byte, error) {
	b, err := r.src.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, ErrTruncatedInput
		}

		return 0, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}

	return b, nil
}

// readBit returns the next bit, refilling from the source when the register is empty.
func (r *bitReader) readBit() (bool, error) {
	if r.bits == bitEmpty {
		b, err := r.readByte()
		if err != nil {
			return false, err
		}
		r.bits = uint16(b)<<8 | 0x80
	}

	bit := r.bits&0x8000 != 0
	r.bits <<= 1

	return bit, nil
}

// pushBit makes bit 0 of b the next bit returned by readBit.
func (r *bitReader) pushBit(b byte) {
	r.bits = r.bits>>1 | uint16(b&1)<<15
}
