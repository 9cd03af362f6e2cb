// Command wallexport renders a saved project's workspace to a composite
// image file.
package main

import (
	"flag"
	"fmt"
	"os"

	"gallery-wall/internal/app"
	"gallery-wall/internal/export"
)

func main() {
	project := flag.String("p", "", "Path to project JSON file")
	workspaceID := flag.String("ws", "", "Workspace id (default: first in project)")
	output := flag.String("o", "wall.png", "Path to output image")
	width := flag.Int("width", 1920, "Output width in pixels")
	format := flag.String("format", "png", "Output format: png or jpeg")
	quality := flag.Int("q", 90, "JPEG quality (1-100)")
	flag.Parse()

	if *project == "" {
		fmt.Println("Usage: wallexport -p <project.json> [-ws <workspace-id>] [-o <out.png>] [-width <px>]")
		os.Exit(1)
	}

	state := app.NewState()
	if err := state.LoadProject(*project); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load project: %v\n", err)
		os.Exit(1)
	}

	if *workspaceID != "" {
		if err := state.SetCurrentWorkspace(*workspaceID); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	ws := state.CurrentWorkspace()
	if ws == nil {
		fmt.Fprintln(os.Stderr, "Project contains no workspaces")
		os.Exit(1)
	}
	wall := state.Wall(ws.WallID)
	if wall == nil {
		fmt.Fprintf(os.Stderr, "Workspace references unknown wall %q\n", ws.WallID)
		os.Exit(1)
	}

	// Rebuild derived pixel buffers from the source paths; buffers are
	// never stored in the project file.
	if err := app.RebuildWallImage(wall); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: wall background unavailable: %v\n", err)
	}
	artworks := state.Artworks()
	for id, a := range artworks {
		if err := app.RebuildArtworkImage(a); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping artwork %s: %v\n", id, err)
		}
	}

	fmt.Printf("=== Exporting workspace %q (%s) ===\n", ws.Name, ws.WorkspaceID)
	err := export.Export(ws, wall, artworks, *output, export.Options{
		Width:   *width,
		Format:  *format,
		Quality: *quality,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *output)
}
