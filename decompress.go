package zx0

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// Decompress decompresses one ZX0 stream from src.
// Options nil means DefaultOptions (current format, no output limit).
// Bytes after the end-of-stream marker are ignored.
func Decompress(src []byte, opts *Options) ([]byte, error) {
	out, _, err := DecompressBlock(src, opts)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DecompressBlock decompresses one ZX0 stream from the beginning of src.
// It returns decompressed bytes and the number of consumed bytes, which lets
// callers continue with data packed right after the stream.
func DecompressBlock(src []byte, opts *Options) ([]byte, int, error) {
	reader := &sliceByteReader{data: src}
	out, err := decompressFromByteReader(reader, opts)
	if err != nil {
		return nil, reader.pos, err
	}

	return out, reader.pos, nil
}

// DecompressFromReader decompresses one ZX0 stream from r and returns consumed bytes.
// If r implements io.ByteReader it is read directly and left positioned right after
// the stream; otherwise it is buffered and may be read past the end of the stream.
func DecompressFromReader(r io.Reader, opts *Options) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	var byteReader io.ByteReader
	if existing, ok := r.(io.ByteReader); ok {
		byteReader = existing
	} else {
		byteReader = bufio.NewReader(r)
	}

	countingReader := &countingByteReader{base: byteReader}
	out, err := decompressFromByteReader(countingReader, opts)
	if err != nil {
		return nil, countingReader.count, err
	}

	return out, countingReader.count, nil
}

// decoder holds the state of a single decompression call.
type decoder struct {
	bits       *bitReader
	classic    bool
	limit      int
	lastOffset int
	out        []byte
}

// decompressFromByteReader decompresses from a byte reader.
func decompressFromByteReader(r io.ByteReader, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if opts.MaxOutputSize < 0 {
		return nil, ErrNegativeMaxOutput
	}

	limit := opts.MaxOutputSize
	if limit == 0 {
		limit = Unlimited
	}

	d := &decoder{
		bits:       newBitReader(r),
		classic:    opts.ClassicMode,
		limit:      limit,
		lastOffset: InitialOffset,
		out:        []byte{},
	}
	if err := d.run(); err != nil {
		return nil, err
	}

	return d.out, nil
}

// run drives the state machine until the end marker or the output limit.
func (d *decoder) run() error {
	state := stateCopyLiterals
	for len(d.out) < d.limit {
		next, err := d.step(state)
		if err != nil {
			return fmt.Errorf("%s: %w", state, err)
		}

		if next == stateDone {
			break
		}
		state = next
	}

	return nil
}

// step executes one instruction and returns the next state.
func (d *decoder) step(s decodeState) (decodeState, error) {
	switch s {
	case stateCopyLiterals:
		length, err := d.readEliasGamma(false, ErrInvalidLength)
		if err != nil {
			return s, err
		}

		// Only literals that fit under the limit are consumed.
		length = min(length, d.limit-len(d.out))
		for i := 0; i < length; i++ {
			b, err := d.bits.readByte()
			if err != nil {
				return s, err
			}
			d.out = append(d.out, b)
		}

		return d.next(s, stateCopyFromLastOffset)

	case stateCopyFromLastOffset:
		length, err := d.readEliasGamma(false, ErrInvalidLength)
		if err != nil {
			return s, err
		}

		if err := d.writeBytes(d.lastOffset, length); err != nil {
			return s, err
		}

		return d.next(s, stateCopyLiterals)

	case stateCopyFromNewOffset:
		high, err := d.readEliasGamma(!d.classic, ErrInvalidOffset)
		if err != nil {
			return s, err
		}

		if high == EndOfStreamMarker {
			return stateDone, nil
		}

		low, err := d.bits.readByte()
		if err != nil {
			return s, err
		}

		if high > math.MaxInt>>OffsetLowBits {
			return s, fmt.Errorf("%w: high part %d", ErrInvalidOffset, high)
		}

		offset := high<<OffsetLowBits - int(low>>1)
		if offset <= 0 {
			return s, fmt.Errorf("%w: offset=%d", ErrInvalidOffset, offset)
		}
		d.lastOffset = offset

		// Bit 0 of the offset byte is the first bit of the length code.
		d.bits.pushBit(low)

		length, err := d.readEliasGamma(false, ErrInvalidLength)
		if err != nil {
			return s, err
		}

		if length == math.MaxInt {
			return s, ErrInvalidLength
		}

		if err := d.writeBytes(offset, length+1); err != nil {
			return s, err
		}

		return d.next(s, stateCopyLiterals)

	default:
		return stateDone, nil
	}
}

// next reads the control bit after a copy: 1 selects a new offset, 0 selects alt.
// Nothing is read once the output limit is reached.
func (d *decoder) next(s, alt decodeState) (decodeState, error) {
	if len(d.out) >= d.limit {
		return s, nil
	}

	bit, err := d.bits.readBit()
	if err != nil {
		return s, err
	}

	if bit {
		return stateCopyFromNewOffset, nil
	}

	return alt, nil
}

// readEliasGamma reads an interlaced Elias-gamma value (>= 1).
// A 0 continuation bit is followed by a data bit, a 1 ends the value.
// Data bits are flipped when inverted is set.
// If the value does not fit in int, overflowErr is returned.
func (d *decoder) readEliasGamma(inverted bool, overflowErr error) (int, error) {
	value := 1
	for {
		stop, err := d.bits.readBit()
		if err != nil {
			return 0, err
		}

		if stop {
			return value, nil
		}

		bit, err := d.bits.readBit()
		if err != nil {
			return 0, err
		}

		if value > math.MaxInt>>1 {
			return 0, overflowErr
		}

		value <<= 1
		if bit != inverted {
			value |= 1
		}
	}
}

// writeBytes appends length bytes copied from offset bytes back in the output.
// Length is clamped to the output limit.
func (d *decoder) writeBytes(offset, length int) error {
	if offset <= 0 || offset > len(d.out) {
		return fmt.Errorf("%w: offset=%d output=%d", ErrInvalidOffset, offset, len(d.out))
	}

	length = min(length, d.limit-len(d.out))
	start := len(d.out) - offset

	// Overlapping back-ref (offset < length): copy byte-by-byte so each written byte
	// is visible to the next read (RLE-like). copy(dst, src) does not handle overlap.
	for i := 0; i < length; i++ {
		d.out = append(d.out, d.out[start+i])
	}

	return nil
}
