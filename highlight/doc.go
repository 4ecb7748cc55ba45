// Package highlight classifies the text of a single line into typed tags.
//
// Classification is lexical, not grammar-aware. Every function in this package
// is pure: a line's tags depend only on its text, the language Profile, whether
// the line starts inside an unterminated block comment, and the active search
// word. Tags are indexed by grapheme cluster, one tag per cluster.
//
// Cross-line state (block comment continuation) is passed in and returned
// explicitly so callers can thread it row to row and cache results per line.
package highlight
