package display

import "testing"

func TestPoolAllocVerts(t *testing.T) {
	p := NewPool(2)

	a := p.AllocVerts(QuadVertexCount)
	if a == nil {
		t.Fatal("first AllocVerts returned nil")
	}
	if len(a) != QuadVertexCount {
		t.Fatalf("len = %d, want %d", len(a), QuadVertexCount)
	}
	b := p.AllocVerts(QuadVertexCount)
	if b == nil {
		t.Fatal("second AllocVerts returned nil")
	}
	if p.AllocVerts(1) != nil {
		t.Error("AllocVerts past the frame budget returned a slice")
	}
}

func TestPoolAllocVertsZeroesReusedStorage(t *testing.T) {
	p := NewPool(1)
	a := p.AllocVerts(QuadVertexCount)
	a[0].A = 180

	p.Reset()
	b := p.AllocVerts(QuadVertexCount)
	if b[0].A != 0 {
		t.Errorf("reused vertex still carries A = %d", b[0].A)
	}
}

func TestPoolAllocVertsSlicesDoNotOverlap(t *testing.T) {
	p := NewPool(2)
	a := p.AllocVerts(QuadVertexCount)
	b := p.AllocVerts(QuadVertexCount)

	a[3].X = 77
	if b[0].X != 0 {
		t.Error("writes to the first slice leaked into the second")
	}
	if cap(a) != QuadVertexCount {
		t.Errorf("cap(a) = %d, want %d", cap(a), QuadVertexCount)
	}
}

func TestPoolAllocList(t *testing.T) {
	p := NewPool(1)
	verts := p.AllocVerts(QuadVertexCount)

	l := p.AllocList(ShapeSquare, verts)
	if l == nil {
		t.Fatal("AllocList returned nil with budget left")
	}
	if l.Shape != ShapeSquare || len(l.Verts) != QuadVertexCount {
		t.Errorf("list = {%d, %d verts}, want {ShapeSquare, %d verts}", l.Shape, len(l.Verts), QuadVertexCount)
	}
	if p.AllocList(ShapeCircle, verts) != nil {
		t.Error("AllocList past the frame budget returned a list")
	}

	p.Reset()
	if p.AllocList(ShapeCircle, nil) == nil {
		t.Error("AllocList after Reset returned nil")
	}
}
