package server

import "github.com/ironsheep/lightpaint/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// targetProperties returns the schema properties shared by every tool that
// matches a target color.
func targetProperties() map[string]interface{} {
	return map[string]interface{}{
		"color": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"r": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255},
				"g": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255},
				"b": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255},
			},
			"required":    []string{"r", "g", "b"},
			"description": "Target color as 8-bit channels. Either color or hex is required.",
		},
		"hex": map[string]interface{}{
			"type":        "string",
			"description": "Target color as #RRGGBB. Used when color is omitted.",
		},
		"tolerance": map[string]interface{}{
			"type":        "integer",
			"description": "Maximum per-channel difference that still matches. 0 requires an exact match. Default 0",
			"default":     0,
		},
	}
}

func withPath(props map[string]interface{}) map[string]interface{} {
	props["path"] = map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": withPath(map[string]interface{}{}),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file. All frames of a composite must share them.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": withPath(map[string]interface{}{}),
				"required":   []string{"path"},
			},
		},

		// Target Selection
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a pixel. Sample the light source to choose a target color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withPath(map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				}),
				"required": []string{"path", "x", "y"},
			},
		},

		// Color Matching
		{
			Name:        "image_color_mask",
			Description: "Mark the pixels of one image that match a target color within a tolerance. Returns a black and white PNG (white = match) and the match count. Use region or area with scale to zoom in on a small light source.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withPath(func() map[string]interface{} {
					props := targetProperties()
					props["region"] = map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"required":    []string{"x1", "y1", "x2", "y2"},
						"description": "Optional rectangle to mask instead of the whole image (x2, y2 exclusive)",
					}
					props["area"] = map[string]interface{}{
						"type":        "string",
						"enum":        imaging.Areas,
						"description": "Optional named part of the image to mask. Ignored when region is given",
					}
					props["scale"] = map[string]interface{}{
						"type":        "number",
						"description": "Zoom factor for the returned PNG. Nearest neighbor, so the mask stays black and white. Default 1.0",
						"default":     1.0,
					}
					return props
				}()),
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_locate_color",
			Description: "List where a target color occurs in one image. Mode 'pixels' returns one entry per pixel (its linear index, or -1); mode 'rows' returns one entry per row (the leftmost matching column, or -1).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withPath(func() map[string]interface{} {
					props := targetProperties()
					props["mode"] = map[string]interface{}{
						"type":        "string",
						"enum":        []string{modePixels, modeRows},
						"description": "Result layout. Default 'pixels'",
						"default":     modePixels,
					}
					return props
				}()),
				"required": []string{"path"},
			},
		},

		// Compositing
		{
			Name:        "image_composite",
			Description: "Combine every image in a directory into one black and white image where a pixel is white if it matched the target color in any frame. Writes output_path when given, otherwise returns the PNG as base64.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": func() map[string]interface{} {
					props := targetProperties()
					props["source_dir"] = map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the directory holding the frames",
					}
					props["extensions"] = map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "File extensions to include, case-sensitive. Default png, jpg, jpeg, bmp, tif, tiff, gif, webp",
					}
					props["output_path"] = map[string]interface{}{
						"type":        "string",
						"description": "Optional destination file (.png, .bmp or .jpg)",
					}
					return props
				}(),
				"required": []string{"source_dir"},
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
