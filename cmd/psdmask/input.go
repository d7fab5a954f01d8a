package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/joshuapare/psdkit/internal/mmfile"
	"github.com/joshuapare/psdkit/psd/cursor"
)

// input is an opened document plus the cursor placed at the requested offset.
type input struct {
	data    []byte
	cursor  *cursor.Cursor
	release func() error
}

func (in *input) Close() error {
	if in.release == nil {
		return nil
	}
	return in.release()
}

// openInput maps path (or parses it as hex text when asHex is set) and
// positions a cursor at offset.
func openInput(path string, offset int, asHex bool) (*input, error) {
	var (
		data    []byte
		release func() error
		err     error
	)
	if asHex {
		data, err = readHexFile(path)
		release = func() error { return nil }
	} else {
		data, release, err = mmfile.Map(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	c := cursor.New(data)
	if err := c.Skip(offset); err != nil {
		_ = release()
		return nil, fmt.Errorf("offset %d outside %s (%d bytes): %w", offset, path, len(data), err)
	}
	return &input{data: data, cursor: c, release: release}, nil
}

// readHexFile decodes a hex dump, ignoring all whitespace.
func readHexFile(path string) ([]byte, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, string(text))
	data, err := hex.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return data, nil
}
