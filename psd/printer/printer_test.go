package printer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/psdkit/psd/layer"
	"github.com/joshuapare/psdkit/psd/mask"
)

func sampleSection() mask.Section {
	return mask.Section{
		Raster: &mask.Record{
			Top: 2, Left: 3, Bottom: 12, Right: 23,
			DefaultColor: 255,
			Flags:        0x03,
			Density:      128,
			Feather:      1.5,
		},
	}
}

func TestPrinter_PrintSection_Text(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, DefaultOptions())

	require.NoError(t, p.PrintSection(sampleSection()))

	output := buf.String()
	t.Logf("Text output:\n%s", output)
	require.Contains(t, output, "Vector mask: (none)")
	require.Contains(t, output, "Raster mask:\n")
	require.Contains(t, output, "  Rect: top=2 left=3 bottom=12 right=23")
	require.Contains(t, output, "  Size: 20x10")
	require.Contains(t, output, "  Flags: 0x03 (relative|disabled)")
	require.Contains(t, output, "  Density: 128")
	require.Contains(t, output, "  Feather: 1.5")
}

func TestPrinter_PrintSection_TextNoFlagNames(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.ShowFlags = false
	opts.IndentSize = 4

	require.NoError(t, New(&buf, opts).PrintSection(sampleSection()))
	require.Contains(t, buf.String(), "    Flags: 0x03\n")
}

func TestPrinter_PrintSection_JSON(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON

	require.NoError(t, New(&buf, opts).PrintSection(sampleSection()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.NotContains(t, got, "vector_mask")
	raster, ok := got["raster_mask"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(10), raster["height"])
	require.Equal(t, float64(128), raster["density"])
	require.Equal(t, 1.5, raster["feather"])
	require.Equal(t, []any{"relative", "disabled"}, raster["flag_names"])
}

func TestPrinter_PrintSection_Empty(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	require.NoError(t, New(&buf, opts).PrintSection(mask.Section{}))
	require.JSONEq(t, `{}`, buf.String())
}

func TestPrinter_PrintExtraData(t *testing.T) {
	ed := layer.ExtraData{
		Mask: sampleSection(),
		Blending: layer.BlendingRanges{
			Composite: &layer.BlendRange{
				Source: layer.Range{White: [2]uint8{255, 255}},
				Dest:   layer.Range{White: [2]uint8{255, 255}},
			},
			Channels: []layer.BlendRange{{}},
		},
		Name:           "Café",
		AdditionalInfo: make([]byte, 12),
	}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, DefaultOptions()).PrintExtraData(ed))
	output := buf.String()
	require.Contains(t, output, `Name: "Café"`)
	require.Contains(t, output, "  Raster mask:\n")
	require.Contains(t, output, "    Density: 128")
	require.Contains(t, output, "  Composite: src 0-0..255-255 dst 0-0..255-255")
	require.Contains(t, output, "  Channel 0: src 0-0..0-0")
	require.Contains(t, output, "Additional info: 12 bytes")

	buf.Reset()
	opts := DefaultOptions()
	opts.Format = FormatJSON
	require.NoError(t, New(&buf, opts).PrintExtraData(ed))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "Café", got["name"])
	require.Equal(t, float64(12), got["additional_info_bytes"])
	require.Len(t, got["channel_ranges"], 1)
}

func TestPrinter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, Options{Format: "xml"})
	require.Error(t, p.PrintSection(mask.Section{}))
	require.Error(t, p.PrintExtraData(layer.ExtraData{}))
}
