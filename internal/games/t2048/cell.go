package t2048

// Annotation tags what just happened to a cell, for presentation only.
type Annotation int

const (
	AnnotationNone Annotation = iota
	AnnotationSpawned
	AnnotationMerged
)

// String returns a human-readable name for the annotation.
func (a Annotation) String() string {
	switch a {
	case AnnotationNone:
		return "none"
	case AnnotationSpawned:
		return "spawned"
	case AnnotationMerged:
		return "merged"
	default:
		return "unknown"
	}
}

// Cell is a single grid position. A zero value means empty.
type Cell struct {
	value      int
	annotation Annotation
}

// NewCell creates an unannotated cell holding v.
func NewCell(v int) Cell {
	return Cell{value: v}
}

// Value returns the tile value (0 for empty).
func (c Cell) Value() int {
	return c.value
}

// Annotation returns the transient presentation tag.
func (c Cell) Annotation() Annotation {
	return c.annotation
}

// IsEmpty returns true if the cell holds no tile.
func (c Cell) IsEmpty() bool {
	return c.value == 0
}

// SetValue assigns v and resets the annotation to none.
// Callers must only assign 0 or a power of two >= 2.
func (c *Cell) SetValue(v int) {
	c.value = v
	c.annotation = AnnotationNone
}

// Annotate sets the annotation without touching the value.
func (c *Cell) Annotate(a Annotation) {
	c.annotation = a
}
