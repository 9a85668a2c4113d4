package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/image-steg-mcp/internal/analysis"
	"github.com/ironsheep/image-steg-mcp/internal/imaging"
	"github.com/ironsheep/image-steg-mcp/internal/stego"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "stego_encode", "stego_decode").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
// Codec failures carry their kind in brackets at the start of the error data,
// e.g. "[capacity] encode: capacity error: ...".
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.opts.Debug {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", toolErrorData(err))
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate stego/imaging/analysis function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Steganography
	case "stego_capacity":
		return s.handleStegoCapacity(args)
	case "stego_encode":
		return s.handleStegoEncode(args)
	case "stego_decode":
		return s.handleStegoDecode(args)
	case "stego_peek_header":
		return s.handleStegoPeekHeader(args)

	// Inspection
	case "stego_inspect_pixels":
		return s.handleStegoInspectPixels(args)
	case "stego_lsb_plane":
		return s.handleStegoLSBPlane(args)
	case "stego_compare":
		return s.handleStegoCompare(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// toolErrorData renders a tool failure for the error data field.
func toolErrorData(err error) string {
	if kind := stego.KindOf(err); kind != 0 {
		return fmt.Sprintf("[%s] %v", kind, err)
	}
	return err.Error()
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Steganography Handlers ===

// CapacityResult is returned by stego_capacity.
type CapacityResult struct {
	Path string `json:"path"`
	stego.CapacityReport
}

func (s *Server) handleStegoCapacity(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return &CapacityResult{Path: a.Path, CapacityReport: s.encoder.Capacity(img)}, nil
}

type stegoEncodeArgs struct {
	Path       string `json:"path"`
	Text       string `json:"text"`
	OutputPath string `json:"output_path"`
}

// EncodeResult is returned by stego_encode.
type EncodeResult struct {
	OutputPath     string `json:"output_path"`
	Characters     int    `json:"characters"`
	PayloadBits    int    `json:"payload_bits"`
	MaxPayloadBits int    `json:"max_payload_bits"`
}

func (s *Server) handleStegoEncode(args json.RawMessage) (interface{}, error) {
	var a stegoEncodeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.OutputPath == "" {
		a.OutputPath = s.opts.DefaultOutput
	}

	if err := imaging.ValidateCoverFormat(a.Path); err != nil {
		return nil, err
	}
	if err := imaging.ValidateLosslessFormat(a.OutputPath); err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	encoded, err := s.encoder.Encode(img, a.Text)
	if err != nil {
		return nil, err
	}

	if err := imaging.SaveLossless(a.OutputPath, encoded); err != nil {
		return nil, err
	}
	// The output may overwrite a file that was loaded earlier.
	s.cache.Evict(a.OutputPath)

	chars := len([]rune(a.Text))
	if s.opts.Debug {
		log.Printf("Encoded %d characters into %s", chars, a.OutputPath)
	}

	return &EncodeResult{
		OutputPath:     a.OutputPath,
		Characters:     chars,
		PayloadBits:    chars * stego.BitsPerChar,
		MaxPayloadBits: s.encoder.Capacity(encoded).MaxPayloadBits,
	}, nil
}

// DecodeResult is returned by stego_decode.
type DecodeResult struct {
	Text       string `json:"text"`
	Characters int    `json:"characters"`
}

func (s *Server) handleStegoDecode(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := imaging.ValidateLosslessFormat(a.Path); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	text, err := s.decoder.Decode(img)
	if err != nil {
		return nil, err
	}
	return &DecodeResult{Text: text, Characters: len([]rune(text))}, nil
}

// HeaderResult is returned by stego_peek_header.
type HeaderResult struct {
	// HeaderValue is the raw bit count stored in the header.
	HeaderValue uint64 `json:"header_value"`

	// Plausible reports whether HeaderValue is byte aligned and fits the
	// image, i.e. whether Decode would accept it.
	Plausible bool `json:"plausible"`

	MaxPayloadBits int `json:"max_payload_bits"`
}

func (s *Server) handleStegoPeekHeader(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	value, err := s.decoder.PeekHeader(img)
	if err != nil {
		return nil, err
	}
	maxBits := s.encoder.Capacity(img).MaxPayloadBits
	return &HeaderResult{
		HeaderValue:    value,
		Plausible:      value%stego.BitsPerChar == 0 && value <= uint64(maxBits),
		MaxPayloadBits: maxBits,
	}, nil
}

// === Inspection Handlers ===

type stegoInspectPixelsArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleStegoInspectPixels(args json.RawMessage) (interface{}, error) {
	var a stegoInspectPixelsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleChannelsMulti(img, points)
}

type stegoLSBPlaneArgs struct {
	Path  string `json:"path"`
	Scale int    `json:"scale"`
}

func (s *Server) handleStegoLSBPlane(args json.RawMessage) (interface{}, error) {
	var a stegoLSBPlaneArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.LSBPlane(img, a.Scale)
}

type stegoCompareArgs struct {
	CoverPath string `json:"cover_path"`
	StegoPath string `json:"stego_path"`
}

func (s *Server) handleStegoCompare(args json.RawMessage) (interface{}, error) {
	var a stegoCompareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	cover, err := s.cache.Load(a.CoverPath)
	if err != nil {
		return nil, err
	}
	encoded, err := s.cache.Load(a.StegoPath)
	if err != nil {
		return nil, err
	}
	return analysis.Compare(cover, encoded)
}
