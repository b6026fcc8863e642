// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz1x

// Package arc reads offset/size table containers.
//
// The container starts with a 16-byte preamble followed by 8-byte records:
// big-endian uint32 payload offset and big-endian uint32 payload size.
// All-zero records are padding. The table has no explicit length; it ends at
// the first record that points outside the file, or where the first payload begins.
package arc

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Container layout constants.
const (
	TableOffset = 0x10 // Start of the record table.
	RecordSize  = 8    // Offset + size, both uint32 big-endian.
)

// Package errors.
var (
	ErrTruncated  = errors.New("archive shorter than table preamble")
	ErrOutOfRange = errors.New("entry outside archive")
)

// Entry is one payload described by the table.
type Entry struct {
	Index  int    // Position among non-empty records.
	Offset uint32 // Payload start in the archive.
	Size   uint32 // Payload length in bytes.
}

// Name returns the file name used when extracting the entry.
func (e Entry) Name() string {
	return fmt.Sprintf("file_%d.bin", e.Index)
}

// Data returns the entry payload as a subslice of archive.
func (e Entry) Data(archive []byte) ([]byte, error) {
	end := uint64(e.Offset) + uint64(e.Size)
	if end > uint64(len(archive)) {
		return nil, fmt.Errorf("%w: offset=%d size=%d archive=%d", ErrOutOfRange, e.Offset, e.Size, len(archive))
	}

	return archive[e.Offset:end], nil
}

// Parse reads the record table of data.
func Parse(data []byte) ([]Entry, error) {
	if len(data) < TableOffset {
		return nil, ErrTruncated
	}

	var entries []Entry
	tableEnd := uint64(len(data)) // shrinks to the lowest payload offset seen

	for cursor := uint64(TableOffset); cursor+RecordSize <= tableEnd; cursor += RecordSize {
		start := binary.BigEndian.Uint32(data[cursor:])
		size := binary.BigEndian.Uint32(data[cursor+4:])

		if start == 0 && size == 0 {
			continue
		}

		if uint64(start)+uint64(size) > uint64(len(data)) {
			break
		}

		entries = append(entries, Entry{Index: len(entries), Offset: start, Size: size})

		if s := uint64(start); s >= cursor+RecordSize && s < tableEnd {
			tableEnd = s
		}
	}

	return entries, nil
}
