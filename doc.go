/*
Package zx0 implements ZX0 decompression.

Format: LZ77 with bit-packed instructions; bits are read MSB-first from control bytes
interleaved with raw literal and offset bytes. Lengths and offset high parts use
interlaced Elias-gamma codes where continuation bit 0 means "more", 1 means "stop".
The stream starts with a literal run; after each block one bit selects the next:
after literals 0 = copy from last offset, 1 = copy from new offset; after a copy
0 = literals, 1 = copy from new offset.
New offset: high = gamma (data bits inverted unless classic v1), low byte bits 7..1,
offset = high*128 - low; bit 0 of the low byte is the first bit of the length code,
length = gamma+1. High part 256 marks end of stream. Initial last offset is 1.

Use Decompress(src, opts) with nil for default (current format, no output limit).
Use DecompressBlock(src, opts) to also get the number of consumed bytes.
Use DecompressFromReader(r, opts) to decode one stream from an io.Reader.
Use ClassicOptions() for data produced by the classic (v1) compressor.
Set Options.MaxOutputSize to bound memory when decoding untrusted input.

# Examples

Decompress with default options:

	out, err := zx0.Decompress(encoded, nil)
	if err != nil {
		return err
	}

Decompress a classic (v1) stream:

	out, err := zx0.Decompress(encoded, zx0.ClassicOptions())

Decompress untrusted data with a size limit:

	opts := zx0.DefaultOptions()
	opts.MaxOutputSize = 64 << 10
	out, err := zx0.Decompress(encoded, opts)

Decompress two streams packed back to back in one buffer:

	first, consumed, err := zx0.DecompressBlock(packed, nil)
	if err != nil {
		return err
	}
	second, err := zx0.Decompress(packed[consumed:], nil)

Errors can be checked with errors.Is against ErrTruncatedInput, ErrReadFailure,
ErrInvalidLength and ErrInvalidOffset.
*/
package zx0
