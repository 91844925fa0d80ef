// Command drawglview draws a YAML scene of lines, triangles, points and
// polygons through drawgl.
//
// Usage:
//
//	drawglview -scene scene.yaml -output scene.png
//	drawglview -scene scene.yaml -backend mesh
//	drawglview -scene scene.yaml -backend recording
//
// The raster backend writes a PNG, the mesh backend logs a summary of the
// vertex and index buffers it built and the recording backend prints the
// call stream.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/drawgl"
	"github.com/gogpu/drawgl/backend/mesh"
	"github.com/gogpu/drawgl/backend/raster"
	"github.com/gogpu/drawgl/recording"
)

func main() {
	var (
		scene    = flag.String("scene", "scene.yaml", "scene file")
		output   = flag.String("output", "scene.png", "output file (raster backend)")
		width    = flag.Int("width", 512, "image width")
		height   = flag.Int("height", 512, "image height")
		backend  = flag.String("backend", "raster", "backend: raster, mesh or recording")
		lighting = flag.Bool("lighting", false, "compute missing face normals and shade triangles")
		verbose  = flag.Bool("v", false, "log draw calls")
	)
	flag.Parse()

	if *verbose {
		drawgl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	s, err := LoadScene(*scene)
	if err != nil {
		log.Fatal(err)
	}

	switch *backend {
	case "raster":
		bg, err := s.Background.color(color.Black)
		if err != nil {
			log.Fatal(err)
		}
		b := raster.NewBackend(*width, *height,
			raster.WithLighting(*lighting),
			raster.WithBackground(bg))
		lo, hi := s.Bounds()
		b.FitView(lo, hi, 16)
		draw(s, b, *lighting)
		if err := b.SavePNG(*output); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Scene saved to %s (%dx%d)\n", *output, *width, *height)

	case "mesh":
		b := mesh.NewBackend()
		draw(s, b, *lighting)
		if err := summarize(b); err != nil {
			log.Fatal(err)
		}

	default:
		b, err := drawgl.NewBackend(*backend)
		if err != nil {
			log.Fatal(err)
		}
		draw(s, b, *lighting)
		if rec, ok := b.(*recording.Recorder); ok {
			fmt.Print(rec.FinishRecording())
			if err := rec.Err(); err != nil {
				log.Fatal(err)
			}
		}
	}
}

func draw(s *Scene, b drawgl.Backend, lighting bool) {
	d := drawgl.NewDrawer(b, drawgl.WithLighting(lighting))
	if err := s.Draw(d); err != nil {
		log.Fatal(err)
	}
}

// summarize logs the buffers the mesh backend would upload.
func summarize(b *mesh.Backend) error {
	log.Printf("%d batches\n", len(b.Batches()))
	for _, topo := range []gputypes.PrimitiveTopology{
		gputypes.PrimitiveTopologyPointList,
		gputypes.PrimitiveTopologyLineList,
		gputypes.PrimitiveTopologyTriangleList,
	} {
		vs := b.Vertices(topo)
		if len(vs) == 0 {
			continue
		}
		unique, indices, format := mesh.Indexed(vs)
		log.Printf("%v: %d vertices, %d unique (%d bytes), %d %v indices (%d bytes)\n",
			topo, len(vs), len(unique), len(mesh.Encode(unique)),
			len(indices), format, len(mesh.EncodeIndices(indices, format)))
	}
	spirv, err := mesh.CompileShader()
	if err != nil {
		return fmt.Errorf("compile shader: %w", err)
	}
	log.Printf("shader: %d bytes of SPIR-V\n", len(spirv))
	return nil
}
