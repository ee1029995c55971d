// Package sticker turns a torn-off page into a sticker on the wall.
//
// A Sticker keeps the page's full record snapshot, tombstones included, so
// deleted glyphs can still be drawn struck through. Geometry is unitless:
// pixels for a graphical host, cells for the terminal.
package sticker
