// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz1x

// Package u8 reads U8 archives.
//
// Layout (all integers big-endian):
//
//	0x00 magic 55 AA 38 2D
//	0x04 root node offset
//	0x08 size of node table plus string table
//	0x0C data offset
//	0x10 reserved (16 bytes)
//
// Nodes are 12 bytes: type (0 file, 1 directory), 24-bit name offset into the
// string table, then two uint32 fields. For files they are the data offset and
// size; for directories the parent index and the index one past the last
// descendant. The root node is a directory whose end index is the node count.
// The string table follows the last node.
package u8

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"path"
	"strings"
)

// Archive layout constants.
const (
	Magic    = 0x55AA382D
	NodeSize = 12
)

// NodeType distinguishes files from directories.
type NodeType uint8

// Node types.
const (
	File      NodeType = 0
	Directory NodeType = 1
)

// Package errors.
var (
	ErrInvalidMagic = errors.New("not a U8 archive")
	ErrTruncated    = errors.New("archive truncated")
	ErrInvalidNode  = errors.New("invalid node")
	ErrInvalidName  = errors.New("invalid node name")
	ErrOutOfRange   = errors.New("file data outside archive")
)

// Node is one entry below the root.
type Node struct {
	Index  int      // Position in the node table.
	Type   NodeType // File or Directory.
	Name   string   // Base name.
	Path   string   // Slash-separated path from the root.
	Offset uint32   // Data offset (files) or parent index (directories).
	Size   uint32   // Data size (files) or end index (directories).
}

// IsDir reports whether n is a directory.
func (n Node) IsDir() bool {
	return n.Type == Directory
}

// Data returns the file contents as a subslice of archive.
func (n Node) Data(archive []byte) ([]byte, error) {
	if n.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidNode, n.Path)
	}

	end := uint64(n.Offset) + uint64(n.Size)
	if end > uint64(len(archive)) {
		return nil, fmt.Errorf("%w: %s offset=%d size=%d", ErrOutOfRange, n.Path, n.Offset, n.Size)
	}

	return archive[n.Offset:end], nil
}

type rawNode struct {
	typ     NodeType
	nameOff uint32
	a, b    uint32
}

func readNode(data []byte, at uint64) (rawNode, error) {
	if at+NodeSize > uint64(len(data)) {
		return rawNode{}, fmt.Errorf("%w: node at 0x%x", ErrTruncated, at)
	}

	word := binary.BigEndian.Uint32(data[at:])
	return rawNode{
		typ:     NodeType(word >> 24),
		nameOff: word & 0x00FFFFFF,
		a:       binary.BigEndian.Uint32(data[at+4:]),
		b:       binary.BigEndian.Uint32(data[at+8:]),
	}, nil
}

// Parse walks the node table of data and returns every node below the root
// in table order, directories before their contents.
func Parse(data []byte) ([]Node, error) {
	if len(data) < 0x20 {
		return nil, ErrTruncated
	}
	if binary.BigEndian.Uint32(data) != Magic {
		return nil, ErrInvalidMagic
	}

	rootOff := uint64(binary.BigEndian.Uint32(data[4:]))
	root, err := readNode(data, rootOff)
	if err != nil {
		return nil, err
	}
	if root.typ != Directory || root.b == 0 {
		return nil, fmt.Errorf("%w: root", ErrInvalidNode)
	}

	count := root.b
	strTab := rootOff + uint64(count)*NodeSize
	if strTab > uint64(len(data)) {
		return nil, fmt.Errorf("%w: node table", ErrTruncated)
	}

	type dirFrame struct {
		path string
		end  uint32
	}
	stack := []dirFrame{{end: count}}
	nodes := make([]Node, 0, count-1)

	for i := uint32(1); i < count; i++ {
		for len(stack) > 1 && i >= stack[len(stack)-1].end {
			stack = stack[:len(stack)-1]
		}

		raw, err := readNode(data, rootOff+uint64(i)*NodeSize)
		if err != nil {
			return nil, err
		}

		name, err := readName(data, strTab+uint64(raw.nameOff))
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}

		parent := stack[len(stack)-1]
		n := Node{
			Index:  int(i),
			Type:   raw.typ,
			Name:   name,
			Path:   path.Join(parent.path, name),
			Offset: raw.a,
			Size:   raw.b,
		}

		switch raw.typ {
		case File:
		case Directory:
			if raw.b <= i || raw.b > parent.end {
				return nil, fmt.Errorf("%w: directory %s end=%d", ErrInvalidNode, n.Path, raw.b)
			}
			stack = append(stack, dirFrame{path: n.Path, end: raw.b})
		default:
			return nil, fmt.Errorf("%w: node %d type=%d", ErrInvalidNode, i, raw.typ)
		}

		nodes = append(nodes, n)
	}

	return nodes, nil
}

// readName reads a NUL-terminated name and rejects anything that could escape the extraction root.
func readName(data []byte, at uint64) (string, error) {
	if at >= uint64(len(data)) {
		return "", fmt.Errorf("%w: name at 0x%x", ErrTruncated, at)
	}

	end := bytes.IndexByte(data[at:], 0)
	if end < 0 {
		return "", fmt.Errorf("%w: unterminated name at 0x%x", ErrTruncated, at)
	}

	name := string(data[at : at+uint64(end)])
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return name, nil
}
