package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/lightpaint/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("lightpaint-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("lightpaint-mcp - MCP server for light painting composites")
			fmt.Println()
			fmt.Println("Usage: lightpaint-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  LIGHTPAINT_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logger := log.New(io.Discard, "", 0)
	if os.Getenv("LIGHTPAINT_MCP_LOG_LEVEL") == "debug" {
		logger = log.New(os.Stderr, "lightpaint-mcp: ", log.Ldate|log.Ltime)
		logger.Printf("Lightpaint MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(server.WithLogger(logger), server.WithVersion(Version))
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
