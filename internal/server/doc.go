// Package server implements the MCP (Model Context Protocol) server for
// light-trail compositing.
//
// This package provides a JSON-RPC 2.0 server that exposes color matching and
// compositing through the MCP protocol, so an assistant can inspect a burst of
// frames, pick the color of the light source, preview which pixels match, and
// render the combined trail.
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
// Target Selection:
//   - image_sample_color: Get color at pixel
//
// Color Matching:
//   - image_color_mask: Black and white match mask of one image, or a zoomed region of it
//   - image_locate_color: Match positions per pixel or per row
//
// Compositing:
//   - image_composite: Merge the masks of every frame in a directory
//
// # Image Caching
//
// Single-image tools share an in-memory cache keyed by path, since a frame is
// usually sampled and masked repeatedly while a tolerance is tuned.
// image_composite bypasses the cache and decodes one frame at a time.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
