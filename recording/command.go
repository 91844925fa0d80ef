package recording

import (
	"fmt"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/drawgl"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one Backend or Namer method.
type CommandType uint8

const (
	// Batch commands
	CmdBegin CommandType = iota // Open a batch
	CmdEnd                      // Close a batch

	// Vertex commands
	CmdVertex // Submit a vertex
	CmdNormal // Set the current normal
	CmdColor3 // Set an opaque color
	CmdColor4 // Set a color with alpha

	// Selection commands
	CmdPushName // Push a pick name
	CmdPopName  // Pop a pick name
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBegin:    "Begin",
	CmdEnd:      "End",
	CmdVertex:   "Vertex",
	CmdNormal:   "Normal",
	CmdColor3:   "Color3",
	CmdColor4:   "Color4",
	CmdPushName: "PushName",
	CmdPopName:  "PopName",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// BeginCommand opens a batch of primitives.
type BeginCommand struct {
	Mode drawgl.Mode
}

// Type implements Command.
func (BeginCommand) Type() CommandType { return CmdBegin }

func (c BeginCommand) String() string { return "Begin " + c.Mode.String() }

// EndCommand closes the current batch.
type EndCommand struct{}

// Type implements Command.
func (EndCommand) Type() CommandType { return CmdEnd }

func (EndCommand) String() string { return "End" }

// VertexCommand submits a vertex.
type VertexCommand struct {
	Position f32.Vec3
}

// Type implements Command.
func (VertexCommand) Type() CommandType { return CmdVertex }

func (c VertexCommand) String() string { return "Vertex " + vec3String(c.Position) }

// NormalCommand sets the current normal.
type NormalCommand struct {
	Normal f32.Vec3
}

// Type implements Command.
func (NormalCommand) Type() CommandType { return CmdNormal }

func (c NormalCommand) String() string { return "Normal " + vec3String(c.Normal) }

// Color3Command sets an opaque color.
type Color3Command struct {
	Color f32.Vec3
}

// Type implements Command.
func (Color3Command) Type() CommandType { return CmdColor3 }

func (c Color3Command) String() string { return "Color3 " + vec3String(c.Color) }

// Color4Command sets a color with alpha.
type Color4Command struct {
	Color f32.Vec4
}

// Type implements Command.
func (Color4Command) Type() CommandType { return CmdColor4 }

func (c Color4Command) String() string {
	return fmt.Sprintf("Color4 (%g %g %g %g)", c.Color[0], c.Color[1], c.Color[2], c.Color[3])
}

// PushNameCommand pushes a pick name.
type PushNameCommand struct {
	Name uint32
}

// Type implements Command.
func (PushNameCommand) Type() CommandType { return CmdPushName }

func (c PushNameCommand) String() string { return fmt.Sprintf("PushName %d", c.Name) }

// PopNameCommand pops the innermost pick name.
type PopNameCommand struct{}

// Type implements Command.
func (PopNameCommand) Type() CommandType { return CmdPopName }

func (PopNameCommand) String() string { return "PopName" }

func vec3String(v f32.Vec3) string {
	return fmt.Sprintf("(%g %g %g)", v[0], v[1], v[2])
}
