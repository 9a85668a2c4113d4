package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema shared by every tool that takes an image path.
func pathProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and whether the format is lossless (able to carry hidden bits).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},

		// Steganography
		{
			Name:        "stego_capacity",
			Description: "Report how many payload bits and characters an image can hide after reserving the 11-pixel length header.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the cover image"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "stego_encode",
			Description: "Hide text in the least significant bits of an image's RGB channels and save the result as a lossless PNG or BMP. Characters must be in the range U+0000 to U+00FF. Requests are limited to 64 MiB, which caps the text at a little under that.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the cover image (png, jpeg, gif, bmp, tiff or webp)"),
					"text": map[string]interface{}{
						"type":        "string",
						"description": "Text to hide. Must not be empty or whitespace only.",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Where to write the stego image (.png or .bmp). Default output.png",
						"default":     DefaultOutputPath,
					},
				},
				"required": []string{"path", "text"},
			},
		},
		{
			Name:        "stego_decode",
			Description: "Recover text hidden by stego_encode. The image must be a lossless PNG or BMP that has not been recompressed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the stego image (png or bmp)"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "stego_peek_header",
			Description: "Read the raw 33-bit length header of an image without decoding the payload, and report whether it is a plausible payload length.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},

		// Inspection
		{
			Name:        "stego_inspect_pixels",
			Description: "Get channel values, their least significant bits and the header/payload region for one or more pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Array of points to inspect",
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "stego_lsb_plane",
			Description: "Render the least-significant-bit plane of an image as a base64-encoded PNG, with the fraction of set bits per channel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
					"scale": map[string]interface{}{
						"type":        "integer",
						"description": "Optional integer upscale factor (1-16). Default 1",
						"default":     1,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "stego_compare",
			Description: "Compare a cover image with its stego version: changed pixels and channels, largest channel delta, whether changes are confined to the LSB, and perceptual color difference.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"cover_path": pathProperty("Absolute path to the original cover image"),
					"stego_path": pathProperty("Absolute path to the stego image"),
				},
				"required": []string{"cover_path", "stego_path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
