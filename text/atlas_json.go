package text

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// ParseAtlasJSON reads the JSON layout written by msdf-atlas-gen
// (-json output) and builds an AtlasFace from it.
//
// Only the first variant of a multi-font layout is used. Glyphs must be
// keyed by "unicode"; glyph-index layouts are rejected.
func ParseAtlasJSON(data []byte) (*AtlasFace, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidAtlas)
	}
	root := gjson.ParseBytes(data)

	font := root
	if v := root.Get("variants.0"); v.Exists() {
		font = v
	}

	atlas := root.Get("atlas")
	if !atlas.Exists() {
		return nil, &AtlasError{Field: "atlas", Reason: "missing"}
	}
	layout := AtlasLayout{
		Atlas: AtlasInfo{
			Width:         int(atlas.Get("width").Int()),
			Height:        int(atlas.Get("height").Int()),
			Kind:          parseAtlasKind(atlas.Get("type").String()),
			DistanceRange: atlas.Get("distanceRange").Float(),
			YOrigin:       YOriginBottom,
		},
	}
	if atlas.Get("yOrigin").String() == "top" {
		layout.Atlas.YOrigin = YOriginTop
	}

	metrics := font.Get("metrics")
	emSize := metrics.Get("emSize").Float()
	if emSize <= 0 {
		emSize = 1
	}
	layout.Metrics = FontMetrics{
		Ascent:     metrics.Get("ascender").Float(),
		Descent:    metrics.Get("descender").Float(),
		LineHeight: metrics.Get("lineHeight").Float(),
		UnitsPerEm: emSize,
	}
	layout.Atlas.TexelsPerUnit = atlas.Get("size").Float() / emSize

	var parseErr error
	font.Get("glyphs").ForEach(func(_, g gjson.Result) bool {
		u := g.Get("unicode")
		if !u.Exists() {
			parseErr = &AtlasError{Field: "glyphs", Reason: "glyph without unicode"}
			return false
		}
		layout.Glyphs = append(layout.Glyphs, AtlasGlyph{
			Rune: rune(u.Int()),
			GlyphMetrics: GlyphMetrics{
				Advance: g.Get("advance").Float(),
				Plane:   parseBounds(g.Get("planeBounds")),
				Atlas:   parseBounds(g.Get("atlasBounds")),
			},
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	font.Get("kerning").ForEach(func(_, k gjson.Result) bool {
		layout.Kerning = append(layout.Kerning, KerningPair{
			Left:   rune(k.Get("unicode1").Int()),
			Right:  rune(k.Get("unicode2").Int()),
			Adjust: k.Get("advance").Float(),
		})
		return true
	})

	return NewAtlasFace(layout)
}

// LoadAtlasJSON reads and parses an msdf-atlas-gen JSON layout file.
func LoadAtlasJSON(path string) (*AtlasFace, error) {
	// #nosec G304 -- Atlas path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read atlas layout: %w", err)
	}
	return ParseAtlasJSON(data)
}

// parseAtlasKind maps msdf-atlas-gen atlas types onto AtlasKind.
func parseAtlasKind(t string) AtlasKind {
	switch t {
	case "hardmask", "softmask":
		return AtlasBitmap
	default:
		return AtlasSDF
	}
}

func parseBounds(r gjson.Result) Bounds {
	if !r.Exists() {
		return Bounds{}
	}
	return Bounds{
		Left:   r.Get("left").Float(),
		Bottom: r.Get("bottom").Float(),
		Right:  r.Get("right").Float(),
		Top:    r.Get("top").Float(),
	}
}
