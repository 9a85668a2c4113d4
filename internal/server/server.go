package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/image-steg-mcp/internal/imaging"
	"github.com/ironsheep/image-steg-mcp/internal/stego"
)

// DefaultOutputPath is where stego_encode writes when no output_path is given.
const DefaultOutputPath = "output.png"

// MaxRequestBytes is the largest JSON-RPC request line Serve accepts. It
// leaves room for stego_encode text filling a cover of roughly 60 megapixels.
const MaxRequestBytes = 64 << 20

// Options configures a Server.
type Options struct {
	// DefaultOutput is the encode output path used when a call omits one.
	// Empty means DefaultOutputPath.
	DefaultOutput string

	// Debug enables per-call logging to the standard logger.
	Debug bool
}

// Server handles MCP protocol communication
type Server struct {
	cache   *imaging.ImageCache
	encoder *stego.Encoder
	decoder *stego.Decoder
	opts    Options
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// MCPNotification represents an outgoing notification (no ID)
type MCPNotification struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

// New creates a new MCP server instance with default options
func New() *Server {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a new MCP server instance
func NewWithOptions(opts Options) *Server {
	if opts.DefaultOutput == "" {
		opts.DefaultOutput = DefaultOutputPath
	}
	cfg := stego.DefaultConfig()
	return &Server{
		cache:   imaging.NewImageCache(),
		encoder: stego.NewEncoder(cfg),
		decoder: stego.NewDecoder(cfg),
		opts:    opts,
	}
}

// Run starts the MCP server, reading from stdin and writing to stdout
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve reads newline-delimited JSON-RPC requests from in and writes
// responses to out until in is exhausted.
func (s *Server) Serve(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	// Requests carry whole messages, so allow lines far beyond the default
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, MaxRequestBytes)

	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Failed to parse request: %v", err)
			continue
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				log.Printf("Failed to encode response: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	if s.opts.Debug {
		log.Printf("Request: %s (id=%v)", req.Method, req.ID)
	}

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "image-steg-mcp",
				"version": "0.1.0",
			},
		},
	}
}
