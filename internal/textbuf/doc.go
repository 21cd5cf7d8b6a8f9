// Package textbuf provides the canonical in-memory text representation
// for the editor: an ordered sequence of 16-bit code units with an
// explicit length.
//
// Once decoded, a Text is encoding-agnostic. Only the encoding tag
// retained by the owning document remembers how to serialize it back
// to bytes; see the textenc package.
package textbuf
