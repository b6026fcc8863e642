/*
Package lz1x implements LZ10 and LZ11 decompression.

Both formats start with a 4-byte header: a tag byte (0x10 for LZ10, 0x11 for LZ11)
followed by the decompressed size as a 24-bit little-endian integer. The body is a
sequence of groups: one flag byte, then up to 8 instructions, most significant bit
first. Bit 0 is a literal (1 byte copied to output), bit 1 a back-reference.

LZ10 back-reference: 2 bytes, big-endian [length-3:4 | distance-1:12], length 3..18.

LZ11 back-reference: the top nibble of the first byte selects the width.
Nibble 0 gives a 3-byte reference with length 0x11..0x110, nibble 1 a 4-byte
reference with length 0x111..0x10110, any other nibble n a 2-byte reference
with length n+1. Distance is always 12 bits plus one.

Back-references are copied byte by byte, so a distance shorter than the length
repeats the tail of the output. Decoding stops the moment the declared size is
reached, even in the middle of a flag byte or a back-reference; unused flag bits
and trailing input are ignored.

Malformed input never panics. Errors match the package sentinels via errors.Is:
ErrTruncatedHeader, ErrInvalidTag, ErrTruncatedStream, ErrInvalidBackReference.

Only decompression is provided.

# Examples

Decompress a complete stream:

	out, err := lz1x.Decompress(encoded)
	if err != nil {
		return err
	}

Decompress one stream from the beginning of a larger buffer and continue after it:

	out, consumed, err := lz1x.DecompressBlock(buf)
	if err != nil {
		return err
	}
	buf = buf[consumed:]

Decompress from a stream without reading to EOF:

	out, consumed, err := lz1x.DecompressFromReader(r)
	if err != nil {
		return err
	}
	_ = consumed

Check whether a payload looks compressed before decoding it:

	if hdr, ok := lz1x.Probe(payload); ok {
		fmt.Println(hdr.Variant, hdr.Size)
	}

Distinguish failures:

	_, err := lz1x.Decompress(payload)
	switch {
	case errors.Is(err, lz1x.ErrInvalidTag):
		// not compressed
	case errors.Is(err, lz1x.ErrTruncatedStream):
		// payload cut short
	}
*/
package lz1x
