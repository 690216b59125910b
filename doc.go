// Package ggedit is the core of an interactive single- or multi-line text
// box: it stores the edited text, measures spans of it in pixels, and turns
// it into positioned glyph quads for display.
//
// # Overview
//
// A text box has three parts that must agree at every keystroke:
//
//   - a growable byte buffer with positional insert and delete
//     (package buffer)
//   - a pixel-exact measurer that a cursor/navigation state machine calls
//     on every key, frame and drag event (package layout)
//   - a quad builder that reproduces the measurer's pen arithmetic exactly,
//     so glyphs never drift from the caret and the selection highlight
//     (package layout)
//
// Glyph metrics come from a text.MetricsProvider: either a pre-baked
// atlas (text.AtlasFace, loaded from msdf-atlas-gen JSON) or a font file
// rasterized at load time (text.SystemFace).
//
// # Quick Start
//
//	face, _ := text.LoadAtlasJSON("font.json")
//	font, _ := layout.NewFont(face, layout.WithPixelSize(24))
//	s, _ := ggedit.NewSession(font, ggedit.WithText("Hello"))
//
//	_ = s.Insert(5, []byte(", world"))
//	caret, _ := s.Caret(12)
//	run, _ := s.Quads(0, 0)
//	vertices, indices := layout.Mesh(run.Quads)
//
// # Threading
//
// A Session belongs to the goroutine that receives input events and drives
// the render loop. Nothing in it blocks and nothing locks. Font metrics are
// immutable while a font is loaded; SetFont replaces the font between
// calls.
//
// # Logging
//
// ggedit produces no log output by default. See SetLogger.
package ggedit
