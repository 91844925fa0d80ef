package recording

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/drawgl"
)

func init() {
	drawgl.Register("recording", func() drawgl.Backend {
		return NewRecorder()
	})
}

// ErrProtocol reports a call sequence a real immediate-mode backend would
// reject: nested batches, unbalanced End or PopName, or vertices outside a
// batch.
var ErrProtocol = errors.New("recording: primitive stream protocol violation")

// Recorder captures a primitive stream as commands.
// It implements drawgl.Backend and drawgl.Namer. Use FinishRecording to
// obtain an immutable Recording that can be replayed to other backends.
//
// Example:
//
//	rec := recording.NewRecorder()
//	d := drawgl.NewDrawer(rec)
//	d.DrawLines(coords, drawgl.NoColors())
//	r := rec.FinishRecording()
//	r.Playback(rasterBackend)
//
// The Recorder records every call, including protocol violations, and
// remembers the first violation; see Err.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
	open     bool
	names    int
	err      error
}

// Ensure Recorder implements the drawgl interfaces.
var (
	_ drawgl.Backend = (*Recorder)(nil)
	_ drawgl.Namer   = (*Recorder)(nil)
)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands: make([]Command, 0, 256),
	}
}

// Begin implements drawgl.Backend.
func (r *Recorder) Begin(mode drawgl.Mode) {
	if r.open {
		r.fail("Begin inside an open batch")
	}
	r.open = true
	r.commands = append(r.commands, BeginCommand{Mode: mode})
}

// End implements drawgl.Backend.
func (r *Recorder) End() {
	if !r.open {
		r.fail("End without Begin")
	}
	r.open = false
	r.commands = append(r.commands, EndCommand{})
}

// Vertex implements drawgl.Backend.
func (r *Recorder) Vertex(v f32.Vec3) {
	if !r.open {
		r.fail("Vertex outside a batch")
	}
	r.commands = append(r.commands, VertexCommand{Position: v})
}

// Normal implements drawgl.Backend.
func (r *Recorder) Normal(n f32.Vec3) {
	r.commands = append(r.commands, NormalCommand{Normal: n})
}

// Color3 implements drawgl.Backend.
func (r *Recorder) Color3(c f32.Vec3) {
	r.commands = append(r.commands, Color3Command{Color: c})
}

// Color4 implements drawgl.Backend.
func (r *Recorder) Color4(c f32.Vec4) {
	r.commands = append(r.commands, Color4Command{Color: c})
}

// PushName implements drawgl.Namer.
func (r *Recorder) PushName(name uint32) {
	r.names++
	r.commands = append(r.commands, PushNameCommand{Name: name})
}

// PopName implements drawgl.Namer.
func (r *Recorder) PopName() {
	if r.names == 0 {
		r.fail("PopName on an empty name stack")
	} else {
		r.names--
	}
	r.commands = append(r.commands, PopNameCommand{})
}

func (r *Recorder) fail(msg string) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s at command %d", ErrProtocol, msg, len(r.commands))
	}
}

// Err returns the first protocol violation recorded, or nil.
func (r *Recorder) Err() error {
	return r.err
}

// Commands returns the commands recorded so far.
// The returned slice must not be modified.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Reset discards all recorded commands and errors.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.open = false
	r.names = 0
	r.err = nil
}

// FinishRecording returns an immutable Recording of all commands so far.
// A batch left open is reported through Err. After calling
// FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	if r.open {
		r.fail("batch left open")
	}
	return &Recording{commands: r.commands}
}

// Recording is an immutable container for recorded commands.
// It can be replayed to any drawgl.Backend.
type Recording struct {
	commands []Command
}

// Commands returns all recorded commands.
// The returned slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Stats summarizes a recording.
type Stats struct {
	Batches  int
	Vertices int
	Normals  int
	Colors3  int
	Colors4  int
	Names    int
}

// Stats returns command counts for the recording.
func (r *Recording) Stats() Stats {
	return Stats{
		Batches:  r.Count(CmdBegin),
		Vertices: r.Count(CmdVertex),
		Normals:  r.Count(CmdNormal),
		Colors3:  r.Count(CmdColor3),
		Colors4:  r.Count(CmdColor4),
		Names:    r.Count(CmdPushName),
	}
}

// Trace returns the command types of the recording separated by spaces,
// for example "Begin Color3 Vertex Vertex End".
func (r *Recording) Trace() string {
	var sb strings.Builder
	for i, c := range r.commands {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.Type().String())
	}
	return sb.String()
}

// String returns one command per line with its arguments.
func (r *Recording) String() string {
	var sb strings.Builder
	for _, c := range r.commands {
		fmt.Fprintln(&sb, c)
	}
	return sb.String()
}

// Playback replays the recording to the given backend.
// Name commands are replayed only if the backend implements drawgl.Namer.
func (r *Recording) Playback(backend drawgl.Backend) {
	namer, _ := backend.(drawgl.Namer)
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case BeginCommand:
			backend.Begin(c.Mode)
		case EndCommand:
			backend.End()
		case VertexCommand:
			backend.Vertex(c.Position)
		case NormalCommand:
			backend.Normal(c.Normal)
		case Color3Command:
			backend.Color3(c.Color)
		case Color4Command:
			backend.Color4(c.Color)
		case PushNameCommand:
			if namer != nil {
				namer.PushName(c.Name)
			}
		case PopNameCommand:
			if namer != nil {
				namer.PopName()
			}
		}
	}
}
