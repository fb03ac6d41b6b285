// Package display models the fixed-function display lists handed to the
// renderer: small vertex records with 16-bit positions and texture
// coordinates, plus a per-frame arena so per-shadow allocations cannot leak
// across frames.
package display

// Shape selects the visual drawn over a 4-vertex quad.
type Shape uint8

const (
	// ShapeCircle draws the round shadow texture.
	ShapeCircle Shape = iota
	// ShapeSquare draws the square shadow texture.
	ShapeSquare
)

// Vertex is one display-list vertex. Positions are parent-relative and
// rounded to 16-bit integers; texture coordinates are in the s10.5 fixed
// texel range; color carries the shadow's opacity in A.
type Vertex struct {
	X, Y, Z int16
	U, V    int16
	R, G, B uint8
	A       uint8
}

// QuadVertexCount is the fixed vertex count of every shadow quad.
const QuadVertexCount = 4

// List is one renderable primitive: a shape header, its vertices, and an
// implicit terminator. Vertex storage is borrowed from the frame Pool.
type List struct {
	Shape Shape
	Verts []Vertex
}

// Pool is a frame-scoped arena for vertices and lists. Everything allocated
// from it is valid until the next Reset; allocation failure is reported as
// nil, never as a panic, because a missing shadow is a legal frame.
type Pool struct {
	verts []Vertex
	lists []List
	usedV int
	usedL int
}

// NewPool sizes an arena for at most maxQuads shadow quads per frame.
func NewPool(maxQuads int) *Pool {
	return &Pool{
		verts: make([]Vertex, maxQuads*QuadVertexCount),
		lists: make([]List, maxQuads),
	}
}

// Reset recycles the arena for a new frame. Previously returned slices and
// lists must no longer be touched.
func (p *Pool) Reset() {
	p.usedV = 0
	p.usedL = 0
}

// AllocVerts returns a zeroed slice of n vertices, or nil when the frame
// budget is exhausted.
func (p *Pool) AllocVerts(n int) []Vertex {
	if p.usedV+n > len(p.verts) {
		return nil
	}
	out := p.verts[p.usedV : p.usedV+n : p.usedV+n]
	for i := range out {
		out[i] = Vertex{}
	}
	p.usedV += n
	return out
}

// AllocList wraps vertices into a List, or returns nil when the frame budget
// is exhausted.
func (p *Pool) AllocList(shape Shape, verts []Vertex) *List {
	if p.usedL >= len(p.lists) {
		return nil
	}
	l := &p.lists[p.usedL]
	p.usedL++
	l.Shape = shape
	l.Verts = verts
	return l
}
