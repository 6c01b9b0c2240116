package clonetest

import (
	"math"

	"github.com/zoobzio/dolly"
)

// Figure is the polymorphic view shared by shapes.
type Figure interface {
	dolly.Cloneable
	Area() float64
}

// Shape is the base level of the shape hierarchy. It has no Allocate of its
// own; only concrete shapes can be cloned.
type Shape struct {
	ID   int
	Name string
}

// Populate copies the Shape level into target.
func (s *Shape) Populate(target *Shape) {
	target.ID = s.ID
	target.Name = s.Name
}

// Circle is a concrete shape.
type Circle struct {
	Shape
	Radius float64
}

// Area returns the circle's area.
func (c *Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Allocate implements Template[*Circle].
func (c *Circle) Allocate() *Circle { return &Circle{} }

// Populate implements Template[*Circle].
func (c *Circle) Populate(target *Circle) {
	c.Shape.Populate(&target.Shape)
	target.Radius = c.Radius
}

// Clone returns an independent copy of c.
func (c *Circle) Clone() *Circle { return dolly.Clone(c) }

// CloneAny implements Cloneable.
func (c *Circle) CloneAny() any { return c.Clone() }

// Rectangle is a concrete shape.
type Rectangle struct {
	Shape
	Width  float64
	Height float64
}

// Area returns the rectangle's area.
func (r *Rectangle) Area() float64 { return r.Width * r.Height }

// Allocate implements Template[*Rectangle].
func (r *Rectangle) Allocate() *Rectangle { return &Rectangle{} }

// Populate implements Template[*Rectangle].
func (r *Rectangle) Populate(target *Rectangle) {
	r.Shape.Populate(&target.Shape)
	target.Width = r.Width
	target.Height = r.Height
}

// Clone returns an independent copy of r.
func (r *Rectangle) Clone() *Rectangle { return dolly.Clone(r) }

// CloneAny implements Cloneable.
func (r *Rectangle) CloneAny() any { return r.Clone() }

// Drawing keeps shapes in a list and a name index.
type Drawing struct {
	Shapes []Figure
	ByName map[string]Figure
}

// Allocate implements Template[*Drawing].
func (d *Drawing) Allocate() *Drawing {
	return &Drawing{
		Shapes: []Figure{},
		ByName: make(map[string]Figure, len(d.ByName)),
	}
}

// Populate implements Template[*Drawing].
func (d *Drawing) Populate(target *Drawing) {
	if d.Shapes == nil {
		target.Shapes = nil
	} else {
		dolly.CloneSliceInto(&target.Shapes, d.Shapes)
	}
	if d.ByName == nil {
		target.ByName = nil
	} else {
		dolly.CloneMapInto(target.ByName, d.ByName)
	}
}

// Clone returns an independent copy of d.
func (d *Drawing) Clone() *Drawing { return dolly.Clone(d) }

// CloneAny implements Cloneable.
func (d *Drawing) CloneAny() any { return d.Clone() }
