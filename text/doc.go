// Package text provides the font measurement and line layout that the ui
// core delegates to: parsing font data, measuring glyph advances, and
// breaking strings into positioned lines (galleys).
//
// The package deliberately stops at glyph placement. Rasterization and
// atlas management belong to the renderer.
//
// Two shapers are available:
//   - BuiltinShaper (default): advance-plus-kerning measurement via
//     golang.org/x/image/font. Sufficient for Latin, Cyrillic, Greek and
//     CJK user interface text.
//   - HarfBuzzShaper: full OpenType shaping (ligatures, contextual forms,
//     complex scripts) via go-text/typesetting. Opt in with SetShaper.
package text
