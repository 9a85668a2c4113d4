// Package stego hides text in the least significant bits of an image's RGB
// channels and recovers it.
//
// The package works on in-memory pixel grids only. Loading, format policy and
// saving live in the imaging package; nothing here performs I/O or logs.
//
// # Wire Format
//
// An image of N = width×height pixels is laid out as follows:
//
//   - Header: the last 11 pixels of the raster, visited from pixel N-1
//     backwards (for images at least 11 pixels wide this is the bottom row,
//     right to left). Each header pixel carries 3 bits in channel order
//     B, G, R, forming a 33-bit big-endian count of payload bits.
//   - Payload: pixels 0, 1, 2, ... in row-major order starting at the
//     top-left, 3 bits per pixel in channel order R, G, B. Each character is
//     8 bits, most significant bit first.
//
// Only bit 0 of a channel is ever changed. Alpha is never written.
//
// # Capacity
//
// An image holds (N - 11) × 3 payload bits. Encode rejects text that needs
// more; Decode rejects headers that claim more.
//
// # Errors
//
// All failures are *Error values tagged with a Kind. Use KindOf or IsKind to
// classify them through any wrapping added by callers.
package stego
