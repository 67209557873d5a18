// Package format implements the concrete palette file codecs and
// registers them with the palette codec registry on import:
//
//	jasc  .pal   JASC-PAL text (Paint Shop Pro)
//	gimp  .gpl   GIMP palette text
//	act   .act   Adobe color table (raw 256-entry RGB)
//	json  .json  hex color array, read with gjson, written with sjson
//	toml  .toml  hex color array
//
// Importers that only need the registry side effect blank-import the
// package:
//
//	import _ "github.com/dshills/palettekit/internal/format"
package format
