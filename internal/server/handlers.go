package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/lightpaint/internal/composite"
	"github.com/ironsheep/lightpaint/internal/imaging"
	"github.com/ironsheep/lightpaint/internal/mapper"
	"github.com/ironsheep/lightpaint/internal/source"
)

const (
	modePixels = "pixels"
	modeRows   = "rows"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_composite").
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
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Printf("tool %s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Target Selection
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Color Matching
	case "image_color_mask":
		return s.handleImageColorMask(args)
	case "image_locate_color":
		return s.handleImageLocateColor(args)

	// Compositing
	case "image_composite":
		return s.handleImageComposite(args)

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

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Target Selection Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Color Matching Handlers ===

// targetArgs are the matching arguments shared by the color tools.
type targetArgs struct {
	Color     *imaging.RGBColor `json:"color,omitempty"`
	Hex       string            `json:"hex,omitempty"`
	Tolerance int               `json:"tolerance"`
}

var errNoTarget = errors.New("a target color is required (color or hex)")

// config validates the target arguments before any image is touched.
func (a targetArgs) config() (mapper.Config, error) {
	cfg := mapper.Config{Tolerance: a.Tolerance}
	switch {
	case a.Color != nil:
		cfg.Target = *a.Color
	case a.Hex != "":
		c, err := mapper.ParseHexColor(a.Hex)
		if err != nil {
			return mapper.Config{}, err
		}
		cfg.Target = c
	default:
		return mapper.Config{}, errNoTarget
	}
	return cfg, nil
}

// MaskResult describes the color mask of a single image, or of one region of
// it. Width, Height and MatchCount refer to the mask before any zoom.
type MaskResult struct {
	Width       int              `json:"width"`
	Height      int              `json:"height"`
	MatchCount  int              `json:"match_count"`
	Target      imaging.RGBColor `json:"target"`
	Tolerance   int              `json:"tolerance"`
	ImageBase64 string           `json:"image_base64"`
	MimeType    string           `json:"mime_type"`
}

type imageColorMaskArgs struct {
	Path   string          `json:"path"`
	Region *imaging.Region `json:"region,omitempty"`
	Area   string          `json:"area,omitempty"`
	Scale  float64         `json:"scale"`
	targetArgs
}

// crop narrows img to the requested region or named area, if any.
func (a imageColorMaskArgs) crop(img image.Image) (image.Image, error) {
	switch {
	case a.Region != nil:
		return imaging.CropRegion(img, *a.Region)
	case a.Area != "":
		r, err := imaging.NamedRegion(img.Bounds(), a.Area)
		if err != nil {
			return nil, err
		}
		return imaging.CropRegion(img, r)
	}
	return img, nil
}

func (s *Server) handleImageColorMask(args json.RawMessage) (interface{}, error) {
	var a imageColorMaskArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	img, err = a.crop(img)
	if err != nil {
		return nil, err
	}

	mask := mapper.New(cfg).Classify(img)
	encoded, err := imaging.EncodePNGBase64(imaging.Zoom(mask, a.Scale))
	if err != nil {
		return nil, err
	}

	return &MaskResult{
		Width:       mask.Rect.Dx(),
		Height:      mask.Rect.Dy(),
		MatchCount:  mapper.MatchCount(mask),
		Target:      cfg.Target,
		Tolerance:   cfg.Tolerance,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

// LocateResult lists match positions in one image.
type LocateResult struct {
	Mode       string `json:"mode"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	MatchCount int    `json:"match_count"`
	Points     []int  `json:"points"`
}

type imageLocateColorArgs struct {
	Path string `json:"path"`
	Mode string `json:"mode"`
	targetArgs
}

func (s *Server) handleImageLocateColor(args json.RawMessage) (interface{}, error) {
	var a imageLocateColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Mode == "" {
		a.Mode = modePixels
	}
	if a.Mode != modePixels && a.Mode != modeRows {
		return nil, fmt.Errorf("unknown mode %q (use %s or %s)", a.Mode, modePixels, modeRows)
	}
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	m := mapper.New(cfg)
	var points []int
	if a.Mode == modeRows {
		points = m.RowPoints(img)
	} else {
		points = m.Locate(img)
	}

	matches := 0
	for _, p := range points {
		if p != mapper.NoMatch {
			matches++
		}
	}

	b := img.Bounds()
	return &LocateResult{
		Mode:       a.Mode,
		Width:      b.Dx(),
		Height:     b.Dy(),
		MatchCount: matches,
		Points:     points,
	}, nil
}

// === Compositing Handlers ===

// CompositeResult describes a composite built from a directory of frames.
type CompositeResult struct {
	ImagesMerged int    `json:"images_merged"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	MatchCount   int    `json:"match_count"`
	OutputPath   string `json:"output_path,omitempty"`
	ImageBase64  string `json:"image_base64,omitempty"`
	MimeType     string `json:"mime_type,omitempty"`
}

type imageCompositeArgs struct {
	SourceDir  string   `json:"source_dir"`
	Extensions []string `json:"extensions"`
	OutputPath string   `json:"output_path"`
	targetArgs
}

func (s *Server) handleImageComposite(args json.RawMessage) (interface{}, error) {
	var a imageCompositeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	if a.OutputPath != "" {
		if _, err := imaging.EncoderFor(a.OutputPath); err != nil {
			return nil, err
		}
	}

	dir, err := source.Scan(a.SourceDir, a.Extensions)
	if err != nil {
		return nil, err
	}

	out, ok, err := composite.New(mapper.New(cfg), s.logger).Merge(dir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, source.ErrNoImages
	}

	result := &CompositeResult{
		ImagesMerged: dir.Len(),
		Width:        out.Rect.Dx(),
		Height:       out.Rect.Dy(),
		MatchCount:   mapper.MatchCount(out),
	}

	if a.OutputPath != "" {
		if err := imaging.Save(a.OutputPath, out); err != nil {
			return nil, err
		}
		result.OutputPath = a.OutputPath
		return result, nil
	}

	encoded, err := imaging.EncodePNGBase64(out)
	if err != nil {
		return nil, err
	}
	result.ImageBase64 = encoded
	result.MimeType = "image/png"
	return result, nil
}
