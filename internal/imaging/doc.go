// Package imaging handles image ingestion and egress for the steganography
// codec.
//
// The stego package works on in-memory pixel grids only. This package loads
// image files into those grids, decides which file formats may be used at
// each stage, writes encoded results back to disk, and provides a few
// read-only views used for inspection (per-pixel channel samples and the LSB
// plane). Coordinates are 0-based with (0,0) at the top-left corner.
//
// # Format Policy
//
// Hidden bits live in the least significant bit of each channel, so any lossy
// recompression between encode and decode destroys them:
//   - Cover images (encode input) may be any decodable 8-bit format: PNG,
//     JPEG, GIF, BMP, TIFF or WebP.
//   - Stego images (encode output and decode input) must be lossless: PNG or
//     BMP.
//
// Formats are detected from the file extension, not the file contents. Callers
// must validate before invoking the codec; ValidateCoverFormat and
// ValidateLosslessFormat return ErrUnsupportedFormat on violation.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Other functions are
// stateless.
//
// # Error Handling
//
// Functions return errors for:
//   - Coordinates outside image bounds
//   - Unsupported or lossy formats where a lossless one is required
//   - File I/O errors during loading and saving
package imaging
