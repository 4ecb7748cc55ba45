// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The package is responsible for input handling, viewport behavior,
// grapheme-aware rendering of classified text, incremental search, and the
// status line. Classification itself happens in the buffer; the editor only
// asks it to cover the visible rows and maps the resulting tags to styles.
package editor
