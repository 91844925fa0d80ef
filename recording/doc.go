// Package recording provides a command-based recording backend for drawgl.
//
// The Recorder implements drawgl.Backend and drawgl.Namer and captures every
// call of a primitive stream as a typed command. Recordings can be inspected
// (Commands, Count, Stats, Trace), checked for protocol violations (Err) and
// replayed to any other backend (Playback).
//
// Commands are typed structs rather than a binary encoding so recordings
// are easy to inspect in tests and debuggers.
//
// # Basic Usage
//
//	rec := recording.NewRecorder()
//	d := drawgl.NewDrawer(rec)
//	if err := d.DrawTriangles(coords, normals, colors, 1); err != nil {
//	    return err
//	}
//	r := rec.FinishRecording()
//	fmt.Println(r.Stats())
//
// # Playback
//
//	r.Playback(raster.NewBackend(800, 600))
//
// # Registration
//
// Importing the package registers the "recording" backend:
//
//	import _ "github.com/gogpu/drawgl/recording"
//
//	b, _ := drawgl.NewBackend("recording")
package recording
