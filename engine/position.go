package engine

// Position is an absolute point on the play field, in field units
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the position displaced by d
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is a movement vector with exactly one non-zero axis, or the zero vector when unset
type Direction struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// IsZero reports whether the direction is unset
func (d Direction) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

// Field is the play area. Bounds are inclusive on both ends
type Field struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains reports whether p lies inside the field
func (f Field) Contains(p Position) bool {
	return p.X >= 0 && p.X <= f.Width && p.Y >= 0 && p.Y <= f.Height
}

// FieldSource returns the current field bounds; re-read every tick so resizes take effect
type FieldSource func() Field

// StaticField returns a FieldSource that never changes
func StaticField(f Field) FieldSource {
	return func() Field { return f }
}

// Overlaps reports whether a and b are within one cell of each other on both axes.
// The box is open: points exactly one cell apart do not overlap
func Overlaps(a, b Position, cell int) bool {
	return a.X > b.X-cell && a.X < b.X+cell &&
		a.Y > b.Y-cell && a.Y < b.Y+cell
}
