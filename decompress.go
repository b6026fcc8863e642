// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz1x

package lz1x

import (
	"bufio"
	"fmt"
	"io"
)

// Decompress decompresses a complete LZ10/LZ11 stream, header included.
// Bytes after the last instruction needed to reach the declared size are ignored.
func Decompress(src []byte) ([]byte, error) {
	out, _, err := DecompressBlock(src)
	return out, err
}

// DecompressBlock decompresses one stream from the beginning of src.
// It returns decompressed bytes and the number of consumed bytes (header + body).
func DecompressBlock(src []byte) ([]byte, int, error) {
	reader := &sliceByteReader{data: src}
	out, err := decompressFromByteReader(reader)
	if err != nil {
		return nil, reader.pos, err
	}

	return out, reader.pos, nil
}

// DecompressFromReader decompresses one stream from r and returns consumed bytes.
// Decoding stops exactly after the instruction that completes the declared size.
// If r is not an io.ByteReader it is wrapped in a bufio.Reader, which may read ahead.
func DecompressFromReader(r io.Reader) ([]byte, int64, error) {
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
	out, err := decompressFromByteReader(countingReader)
	if err != nil {
		return nil, countingReader.count, err
	}

	return out, countingReader.count, nil
}

// decompressFromByteReader parses the header and runs the instruction loop.
func decompressFromByteReader(r offsetByteReader) ([]byte, error) {
	hdr, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	out := newWindow(hdr.Size)
	var flags flagState

	for !out.full() {
		if flags.empty() {
			b, err := readByte(r, ErrTruncatedStream)
			if err != nil {
				return nil, err
			}
			flags.load(b)
		}

		if !flags.next() {
			b, err := readByte(r, ErrTruncatedStream)
			if err != nil {
				return nil, err
			}
			out.append(b)
			continue
		}

		ref, err := readBackref(r, hdr.Variant)
		if err != nil {
			return nil, err
		}
		if _, err := out.copyBack(ref.distance, ref.length); err != nil {
			return nil, fmt.Errorf("%w: offset=%d", err, r.offset())
		}
	}

	if out.len() != hdr.Size {
		return nil, fmt.Errorf("%w: got=%d declared=%d", ErrSizeMismatch, out.len(), hdr.Size)
	}

	return out.bytes(), nil
}
