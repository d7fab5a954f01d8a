package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/psdkit/psd/mask"
)

// Two records (vector then raster) plus two padding bytes: 4 + 38 bytes.
var twoRecordSection = []byte{
	0x00, 0x00, 0x00, 0x26,
	// record 1: top, left, bottom, right, color, flags
	0x00, 0x00, 0x00, 0x0A, 0x00, 0x00, 0x00, 0x14,
	0x00, 0x00, 0x00, 0x1E, 0x00, 0x00, 0x00, 0x28,
	0x00, 0x00,
	// record 2: flags, color, top, left, bottom, right
	0x01, 0xFF,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x64, 0x00, 0x00, 0x00, 0xC8,
	// padding
	0x00, 0x00,
}

const singleRecordHex = `
00000014
00000001 00000002 00000065 00000034
ff 02
0000
`

func TestMaskCommand(t *testing.T) {
	prefixed := append([]byte{0xAA, 0xBB, 0xCC}, twoRecordSection...)

	tests := []struct {
		name           string
		data           []byte
		fileName       string
		offset         int
		hex            bool
		json           bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:     "two records",
			data:     twoRecordSection,
			fileName: "section.bin",
			wantContain: []string{
				"Vector mask:",
				"Rect: top=10 left=20 bottom=30 right=40",
				"Raster mask:",
				"Rect: top=0 left=0 bottom=100 right=200",
				"Flags: 0x01 (relative)",
				"Density: 255",
			},
			wantNotContain: []string{"mask: (none)"},
		},
		{
			name:        "offset",
			data:        prefixed,
			fileName:    "document.bin",
			offset:      3,
			wantContain: []string{"Vector mask:", "Raster mask:"},
		},
		{
			name:           "hex input single raster record",
			data:           []byte(singleRecordHex),
			fileName:       "section.txt",
			hex:            true,
			wantContain:    []string{"Vector mask: (none)", "Size: 50x100", "Flags: 0x02 (disabled)"},
			wantNotContain: []string{"relative"},
		},
		{
			name:        "json",
			data:        twoRecordSection,
			fileName:    "section.bin",
			json:        true,
			wantContain: []string{`"vector_mask"`, `"raster_mask"`, `"height": 100`},
		},
		{
			name:     "truncated",
			data:     twoRecordSection[:20],
			fileName: "short.bin",
			wantErr:  true,
		},
		{
			name:     "offset past end",
			data:     twoRecordSection,
			fileName: "section.bin",
			offset:   1000,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.json
			maskOffset = tt.offset
			maskHex = tt.hex

			args := []string{writeTestFile(t, tt.fileName, tt.data)}
			output, err := captureOutput(t, func() error {
				return runMask(args)
			})

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestMaskCommand_ErrorKind(t *testing.T) {
	resetFlags()
	path := writeTestFile(t, "short.bin", twoRecordSection[:30])

	_, err := captureOutput(t, func() error {
		return runMask([]string{path})
	})
	require.True(t, errors.Is(err, mask.ErrTruncatedSection), "got %v", err)
}

func TestMaskCommand_Quiet(t *testing.T) {
	resetFlags()
	quiet = true
	path := writeTestFile(t, "section.bin", twoRecordSection)

	output, err := captureOutput(t, func() error {
		return runMask([]string{path})
	})
	require.NoError(t, err)
	require.Empty(t, output)
}

func TestMaskCommand_BadHex(t *testing.T) {
	resetFlags()
	maskHex = true
	path := writeTestFile(t, "bad.txt", []byte("00 0g"))

	_, err := captureOutput(t, func() error {
		return runMask([]string{path})
	})
	require.ErrorContains(t, err, "invalid hex")
}
