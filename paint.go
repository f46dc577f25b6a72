package ui

// PaintCmd is one drawable primitive handed to the external tessellator.
// It is a closed set of variants; each carries everything the tessellator
// needs and is never partially mutated after being pushed to the buffer.
type PaintCmd interface {
	paintCmd()
}

// LineStyle describes an outline or stroked line.
type LineStyle struct {
	Width float64
	Color RGBA
}

// NewLineStyle creates a line style.
func NewLineStyle(width float64, color RGBA) LineStyle {
	return LineStyle{Width: width, Color: color}
}

// RectCmd paints a filled and/or outlined rectangle with rounded corners.
// Fill and Outline may each be nil for "none".
type RectCmd struct {
	Rect         Rect
	CornerRadius float64
	Fill         *RGBA
	Outline      *LineStyle
}

// CircleCmd paints a filled and/or outlined circle.
type CircleCmd struct {
	Center  Point
	Radius  float64
	Fill    *RGBA
	Outline *LineStyle
}

// LineCmd paints an open polyline through Points.
type LineCmd struct {
	Points []Point
	Color  RGBA
	Width  float64
}

// TextCmd paints an already laid-out text run. Pos is the top-left corner
// of the galley's bounding box.
type TextCmd struct {
	Pos       Point
	Galley    Galley
	TextStyle TextStyle
	Color     RGBA
}

// MeshCmd carries pre-tessellated triangles straight through to the
// renderer.
type MeshCmd struct {
	Mesh Mesh
}

func (RectCmd) paintCmd()   {}
func (CircleCmd) paintCmd() {}
func (LineCmd) paintCmd()   {}
func (TextCmd) paintCmd()   {}
func (MeshCmd) paintCmd()   {}

// Vertex is one tessellated vertex. UV indexes the font texture for text;
// solid geometry uses the texture's white pixel.
type Vertex struct {
	Pos   Point
	UV    Point
	Color RGBA
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles in the mesh.
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// PaintStats aggregates per-frame paint diagnostics. Purely informational;
// nothing in the frame lifecycle depends on it.
type PaintStats struct {
	Batches    int
	Primitives int
	Vertices   int
	Triangles  int
}
