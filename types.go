package nav

import "math"

// maxDist is the "no winner yet" distance used by score results.
const maxDist = math.MaxFloat32

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X float32 `toml:"x"`
	Y float32 `toml:"y"`
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Floor rounds both components toward negative infinity.
func (v Vec2) Floor() Vec2 {
	return Vec2{X: floorf(v.X), Y: floorf(v.Y)}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect is an axis-aligned rectangle stored as min/max corners.
// A rect whose Min is greater than its Max on either axis is inverted,
// which is how "no rect" is represented.
type Rect struct {
	Min, Max Vec2
}

// RectXYWH builds a rect from a top-left position and a size.
func RectXYWH(x, y, w, h float32) Rect {
	return Rect{Min: Vec2{X: x, Y: y}, Max: Vec2{X: x + w, Y: y + h}}
}

// InvertedRect returns the empty accumulator rect (+max..-max).
func InvertedRect() Rect {
	return Rect{Min: Vec2{X: maxDist, Y: maxDist}, Max: Vec2{X: -maxDist, Y: -maxDist}}
}

// W returns the width.
func (r Rect) W() float32 { return r.Max.X - r.Min.X }

// H returns the height.
func (r Rect) H() float32 { return r.Max.Y - r.Min.Y }

// Size returns width and height as a vector.
func (r Rect) Size() Vec2 { return Vec2{X: r.W(), Y: r.H()} }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Min.X + r.Max.X) * 0.5, Y: (r.Min.Y + r.Max.Y) * 0.5}
}

// IsInverted reports whether the rect has Min > Max on either axis.
func (r Rect) IsInverted() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// ContainsRect returns true if other lies fully inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.Min.X >= r.Min.X && other.Min.Y >= r.Min.Y &&
		other.Max.X <= r.Max.X && other.Max.Y <= r.Max.Y
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return other.Min.Y < r.Max.Y && other.Max.Y > r.Min.Y &&
		other.Min.X < r.Max.X && other.Max.X > r.Min.X
}

// Translate returns the rect moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// TranslateX returns the rect moved horizontally.
func (r Rect) TranslateX(dx float32) Rect { return r.Translate(Vec2{X: dx}) }

// TranslateY returns the rect moved vertically.
func (r Rect) TranslateY(dy float32) Rect { return r.Translate(Vec2{Y: dy}) }

// Expand grows the rect by amount on every side.
func (r Rect) Expand(amount float32) Rect {
	return Rect{
		Min: Vec2{X: r.Min.X - amount, Y: r.Min.Y - amount},
		Max: Vec2{X: r.Max.X + amount, Y: r.Max.Y + amount},
	}
}

// Union returns the smallest rect containing both rects.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Vec2{X: minf(r.Min.X, other.Min.X), Y: minf(r.Min.Y, other.Min.Y)},
		Max: Vec2{X: maxf(r.Max.X, other.Max.X), Y: maxf(r.Max.Y, other.Max.Y)},
	}
}

// ClipWithFull clamps both corners into clip. The result may be degenerate
// (zero width or height) but never inverted relative to clip.
func (r Rect) ClipWithFull(clip Rect) Rect {
	return Rect{
		Min: Vec2{X: clampf(r.Min.X, clip.Min.X, clip.Max.X), Y: clampf(r.Min.Y, clip.Min.Y, clip.Max.Y)},
		Max: Vec2{X: clampf(r.Max.X, clip.Min.X, clip.Max.X), Y: clampf(r.Max.Y, clip.Min.Y, clip.Max.Y)},
	}
}

// Dir is a cardinal navigation direction.
type Dir int8

const (
	DirNone Dir = iota - 1
	DirLeft
	DirRight
	DirUp
	DirDown
)

// String returns a human-readable name for the direction.
func (d Dir) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirNone:
		return "None"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction (Up<->Down, Left<->Right).
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// IsVertical returns true for Up/Down directions.
func (d Dir) IsVertical() bool {
	return d == DirUp || d == DirDown
}

// IsHorizontal returns true for Left/Right directions.
func (d Dir) IsHorizontal() bool {
	return d == DirLeft || d == DirRight
}

// quadrantFromDelta maps a delta to the dominant cardinal direction.
// Ties between |dx| and |dy| go to the vertical axis.
func quadrantFromDelta(dx, dy float32) Dir {
	if absf(dx) > absf(dy) {
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	}
	if dy > 0 {
		return DirDown
	}
	return DirUp
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func clampi(v, minVal, maxVal int) int {
	return min(max(v, minVal), maxVal)
}

// saturate clamps to [0,1].
func saturate(v float32) float32 {
	return clampf(v, 0, 1)
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func lerpf(a, b, t float32) float32 {
	return a + (b-a)*t
}

func floorf(v float32) float32 {
	return float32(math.Floor(float64(v)))
}
