package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"image_load",
		"image_dimensions",
		"image_sample_color",
		"image_color_mask",
		"image_locate_color",
		"image_composite",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("Tool %s defined twice", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("Tool count: got %d, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			// Name should not be empty
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}

			// Description should not be empty
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}

			// InputSchema should exist
			if tool.InputSchema == nil {
				t.Error("Tool InputSchema is nil")
			}

			// InputSchema should be an object type
			schemaType, ok := tool.InputSchema["type"]
			if !ok {
				t.Error("InputSchema missing 'type' field")
			}
			if schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			// InputSchema should have properties
			props, ok := tool.InputSchema["properties"]
			if !ok {
				t.Error("InputSchema missing 'properties' field")
			}
			if props == nil {
				t.Error("InputSchema properties is nil")
			}
		})
	}
}

func TestToolDefinitions_RequiredPath(t *testing.T) {
	// Every single-image tool requires a 'path' parameter
	toolsRequiringPath := []string{
		"image_load",
		"image_dimensions",
		"image_sample_color",
		"image_color_mask",
		"image_locate_color",
	}

	tools := GetToolDefinitions()
	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range toolsRequiringPath {
		tool, ok := toolMap[name]
		if !ok {
			t.Errorf("Tool %s not found", name)
			continue
		}

		t.Run(name, func(t *testing.T) {
			required, ok := tool.InputSchema["required"]
			if !ok {
				t.Error("InputSchema missing 'required' field")
				return
			}

			requiredList, ok := required.([]string)
			if !ok {
				t.Error("'required' should be a string slice")
				return
			}

			hasPath := false
			for _, r := range requiredList {
				if r == "path" {
					hasPath = true
					break
				}
			}

			if !hasPath {
				t.Error("Tool should require 'path' parameter")
			}
		})
	}
}

func findTool(t *testing.T, name string) Tool {
	t.Helper()
	for _, tool := range GetToolDefinitions() {
		if tool.Name == name {
			return tool
		}
	}
	t.Fatalf("%s tool not found", name)
	return Tool{}
}

func TestToolDefinitions_CompositeRequiresSourceDir(t *testing.T) {
	tool := findTool(t, "image_composite")

	required, ok := tool.InputSchema["required"].([]string)
	if !ok {
		t.Fatal("required should be a string slice")
	}
	if len(required) != 1 || required[0] != "source_dir" {
		t.Errorf("image_composite required: got %v, want [source_dir]", required)
	}

	props, ok := tool.InputSchema["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("properties should be a map")
	}
	for _, name := range []string{"source_dir", "extensions", "output_path", "color", "hex", "tolerance"} {
		if _, ok := props[name]; !ok {
			t.Errorf("image_composite missing property %s", name)
		}
	}
}

func TestToolDefinitions_LocateModes(t *testing.T) {
	tool := findTool(t, "image_locate_color")

	props, ok := tool.InputSchema["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("properties should be a map")
	}

	modeProp, ok := props["mode"].(map[string]interface{})
	if !ok {
		t.Fatal("mode property should exist and be a map")
	}

	enum, ok := modeProp["enum"].([]string)
	if !ok {
		t.Fatal("mode should have enum")
	}
	if len(enum) != 2 || enum[0] != "pixels" || enum[1] != "rows" {
		t.Errorf("mode enum: got %v, want [pixels rows]", enum)
	}
	if modeProp["default"] != "pixels" {
		t.Errorf("mode default: got %v, want pixels", modeProp["default"])
	}
}

func TestToolDefinitions_TargetProperties(t *testing.T) {
	for _, name := range []string{"image_color_mask", "image_locate_color", "image_composite"} {
		t.Run(name, func(t *testing.T) {
			props, ok := findTool(t, name).InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("properties should be a map")
			}

			tolerance, ok := props["tolerance"].(map[string]interface{})
			if !ok {
				t.Fatal("tolerance property should exist and be a map")
			}
			if tolerance["default"] != 0 {
				t.Errorf("tolerance default: got %v, want 0", tolerance["default"])
			}

			colorProp, ok := props["color"].(map[string]interface{})
			if !ok {
				t.Fatal("color property should exist and be a map")
			}
			required, ok := colorProp["required"].([]string)
			if !ok || len(required) != 3 {
				t.Errorf("color required: got %v, want [r g b]", colorProp["required"])
			}
		})
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
	}

	resp := s.handleToolsList(req)

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	tools, ok := result["tools"]
	if !ok {
		t.Fatal("Result should contain 'tools' key")
	}

	toolsList, ok := tools.([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	// Should match GetToolDefinitions
	expected := GetToolDefinitions()
	if len(toolsList) != len(expected) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(expected))
	}
}

func TestToolStruct(t *testing.T) {
	tool := Tool{
		Name:        "test_tool",
		Description: "A test tool",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"param1": map[string]interface{}{
					"type":        "string",
					"description": "A test parameter",
				},
			},
			"required": []string{"param1"},
		},
	}

	if tool.Name != "test_tool" {
		t.Errorf("Name: got %s, want test_tool", tool.Name)
	}
	if tool.Description != "A test tool" {
		t.Errorf("Description: got %s, want 'A test tool'", tool.Description)
	}
	if tool.InputSchema == nil {
		t.Error("InputSchema should not be nil")
	}
}

func TestToolDefinitions_MaskPreview(t *testing.T) {
	props, ok := findTool(t, "image_color_mask").InputSchema["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("properties should be a map")
	}

	for _, name := range []string{"region", "area", "scale"} {
		if _, ok := props[name]; !ok {
			t.Errorf("image_color_mask missing property %s", name)
		}
	}

	area := props["area"].(map[string]interface{})
	if enum, ok := area["enum"].([]string); !ok || len(enum) != 9 {
		t.Errorf("area enum: got %v", area["enum"])
	}
}
