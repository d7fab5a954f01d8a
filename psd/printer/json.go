package printer

import (
	"encoding/json"
	"strings"

	"github.com/joshuapare/psdkit/psd/layer"
	"github.com/joshuapare/psdkit/psd/mask"
)

// jsonRecord represents one mask record in JSON format.
type jsonRecord struct {
	Top          int32    `json:"top"`
	Left         int32    `json:"left"`
	Bottom       int32    `json:"bottom"`
	Right        int32    `json:"right"`
	Height       int32    `json:"height"`
	Width        int32    `json:"width"`
	DefaultColor uint8    `json:"default_color"`
	Flags        uint8    `json:"flags"`
	FlagNames    []string `json:"flag_names,omitempty"`
	Density      uint8    `json:"density"`
	Feather      float64  `json:"feather"`
}

// jsonSection represents a mask section in JSON format.
type jsonSection struct {
	Vector *jsonRecord `json:"vector_mask,omitempty"`
	Raster *jsonRecord `json:"raster_mask,omitempty"`
}

type jsonRange struct {
	Source [4]uint8 `json:"source"`
	Dest   [4]uint8 `json:"dest"`
}

type jsonExtra struct {
	Name           string      `json:"name"`
	Mask           jsonSection `json:"mask"`
	Composite      *jsonRange  `json:"composite_range,omitempty"`
	Channels       []jsonRange `json:"channel_ranges,omitempty"`
	AdditionalInfo int         `json:"additional_info_bytes"`
}

func toJSONRecord(r *mask.Record, showFlags bool) *jsonRecord {
	if r == nil {
		return nil
	}
	jr := &jsonRecord{
		Top:          r.Top,
		Left:         r.Left,
		Bottom:       r.Bottom,
		Right:        r.Right,
		Height:       r.Height(),
		Width:        r.Width(),
		DefaultColor: r.DefaultColor,
		Flags:        uint8(r.Flags),
		Density:      r.Density,
		Feather:      r.Feather,
	}
	if showFlags && r.Flags.String() != "none" {
		jr.FlagNames = strings.Split(r.Flags.String(), "|")
	}
	return jr
}

func toJSONSection(sec mask.Section, showFlags bool) jsonSection {
	return jsonSection{
		Vector: toJSONRecord(sec.Vector, showFlags),
		Raster: toJSONRecord(sec.Raster, showFlags),
	}
}

func toJSONRange(b layer.BlendRange) jsonRange {
	return jsonRange{
		Source: [4]uint8{b.Source.Black[0], b.Source.Black[1], b.Source.White[0], b.Source.White[1]},
		Dest:   [4]uint8{b.Dest.Black[0], b.Dest.Black[1], b.Dest.White[0], b.Dest.White[1]},
	}
}

func toJSONExtra(ed layer.ExtraData, showFlags bool) jsonExtra {
	out := jsonExtra{
		Name:           ed.Name,
		Mask:           toJSONSection(ed.Mask, showFlags),
		AdditionalInfo: len(ed.AdditionalInfo),
	}
	if ed.Blending.Composite != nil {
		c := toJSONRange(*ed.Blending.Composite)
		out.Composite = &c
	}
	for _, ch := range ed.Blending.Channels {
		out.Channels = append(out.Channels, toJSONRange(ch))
	}
	return out
}

func (p *Printer) writeJSON(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", strings.Repeat(" ", p.opts.IndentSize))
	return enc.Encode(v)
}
