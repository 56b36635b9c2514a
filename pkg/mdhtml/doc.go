// Package mdhtml converts Markdown to W3.CSS-styled HTML fragments and
// documents.
//
// The converter is single-pass and allocation-free: every handler writes
// through a Sink, which either measures (counts the bytes a conversion would
// produce) or stores into a caller-supplied buffer of fixed capacity. A
// measuring pass followed by a bounded write into a buffer of exactly
// measured+1 bytes produces the complete output; this is what
// Converter.ConvertDocument and Converter.ConvertFragment do.
//
// Malformed Markdown never fails: constructs that do not parse are emitted
// as literal text. Handlers that do not match write nothing and leave the
// cursor unmoved.
package mdhtml
