// Package buffer implements the line-oriented document model for Scribe.
//
// Positions are 0-based (X, Y) where X counts grapheme clusters from the start
// of line Y. Index arguments never cause a panic: out-of-range positions are
// clamped or ignored.
//
// A Buffer owns its Lines and the cached classification of each one. Edits
// invalidate the cache from the line before the edit through the end of the
// buffer; Highlight recomputes only up to the requested row.
package buffer
