package engine2D

import "github.com/chewxy/math32"

type Vec2 struct {
	X, Y float32
}

func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Rect is a rectangle in pixel units. Source rectangles may carry negative
// width or height; Abs normalizes them.
type Rect struct {
	X, Y, Width, Height float32
}

func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) Abs() Rect {
	return Rect{X: r.X, Y: r.Y, Width: math32.Abs(r.Width), Height: math32.Abs(r.Height)}
}

// Empty reports whether the rectangle selects nothing, which for source
// rectangles means "use the whole texture".
func (r Rect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// Mat4 is a column-major 4x4 matrix, laid out the way shader uniforms expect.
type Mat4 [16]float32

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ortho builds an orthographic projection for the box [left,right]x[bottom,top]x[near,far].
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	m := Identity()
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -2 / (far - near)
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[14] = -(far + near) / (far - near)
	return m
}

// ScreenProjection maps [0,width]x[0,height] with Y pointing down onto clip space.
func ScreenProjection(width, height int) Mat4 {
	return Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// Project transforms a 2D point (z=0, w=1) and returns its x and y.
func (m Mat4) Project(p Vec2) Vec2 {
	return Vec2{
		X: m[0]*p.X + m[4]*p.Y + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[13],
	}
}

// affine is a 2D affine transform:
//
//	x' = a*x + c*y + tx
//	y' = b*x + d*y + ty
//
// Every builder method right-multiplies, so calls read in the same order as
// the equivalent matrix product.
type affine struct {
	a, b, c, d, tx, ty float32
}

func identityAffine() affine {
	return affine{a: 1, d: 1}
}

func (m affine) translate(x, y float32) affine {
	m.tx += m.a*x + m.c*y
	m.ty += m.b*x + m.d*y
	return m
}

func (m affine) rotate(radians float32) affine {
	s, c := math32.Sincos(radians)
	return affine{
		a:  m.a*c + m.c*s,
		b:  m.b*c + m.d*s,
		c:  m.c*c - m.a*s,
		d:  m.d*c - m.b*s,
		tx: m.tx,
		ty: m.ty,
	}
}

func (m affine) scale(x, y float32) affine {
	m.a *= x
	m.b *= x
	m.c *= y
	m.d *= y
	return m
}

func (m affine) apply(p Vec2) Vec2 {
	return Vec2{
		X: m.a*p.X + m.c*p.Y + m.tx,
		Y: m.b*p.X + m.d*p.Y + m.ty,
	}
}

func degToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}

// QuadCorners returns the corners of the quad the batcher emits for these
// arguments, in template order.
func QuadCorners(position, size Vec2, rotation float32, origin Vec2) [VerticesPerQuad]Vec2 {
	xf := quadTransform(position, size, rotation, origin)
	var corners [VerticesPerQuad]Vec2
	for i, p := range quadPositions {
		corners[i] = xf.apply(p)
	}
	return corners
}

// quadTransform is T(position) * T(origin) * Rz(rotation) * S(size) * T(-origin).
// The order is load-bearing: moving the pivot step changes where the quad lands.
func quadTransform(position, size Vec2, rotation float32, origin Vec2) affine {
	return identityAffine().
		translate(position.X, position.Y).
		translate(origin.X, origin.Y).
		rotate(degToRad(rotation)).
		scale(size.X, size.Y).
		translate(-origin.X, -origin.Y)
}
