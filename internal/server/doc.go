// Package server implements the MCP (Model Context Protocol) server for the
// LSB text steganography tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the codec in
// internal/stego, plus supporting inspection tools, through the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Steganography:
//   - stego_capacity: Payload bits and characters an image can carry
//   - stego_encode: Hide text and save a lossless stego image
//   - stego_decode: Recover hidden text
//   - stego_peek_header: Read the raw length header
//
// Inspection:
//   - stego_inspect_pixels: Channel values and LSBs at given points
//   - stego_lsb_plane: Render the LSB plane
//   - stego_compare: Distortion between a cover and its stego image
//
// # Image Caching
//
// Images are cached by path and reused across tool calls. stego_encode
// evicts its output path so a later decode sees the file it just wrote.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, prefixed with "[kind]" for codec errors
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
