package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// Point represents a 2D point in page coordinates
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned bounding box in page coordinates.
// The origin is the top-left corner of the page and Y grows downward,
// so Y0 is the top edge and Y1 the bottom edge.
type Rect struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// NewRect creates a rectangle from its edge coordinates
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent of the rectangle
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the rectangle
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// CenterX returns the horizontal center
func (r Rect) CenterX() float64 {
	return (r.X0 + r.X1) / 2
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{
		X: (r.X0 + r.X1) / 2,
		Y: (r.Y0 + r.Y1) / 2,
	}
}

// Rounded returns the rectangle with every coordinate rounded to the nearest
// integer, ties to even. Two lines whose rounded boxes agree occupy the same
// slot on their pages.
func (r Rect) Rounded() [4]int {
	return [4]int{
		int(math.RoundToEven(r.X0)),
		int(math.RoundToEven(r.Y0)),
		int(math.RoundToEven(r.X1)),
		int(math.RoundToEven(r.Y1)),
	}
}

// Union returns the smallest rectangle containing both rectangles
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Contains checks if a point is inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// IsEmpty returns true if the rectangle has zero area
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// MarshalJSON encodes the rectangle as [x0, y0, x1, y1]
func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{r.X0, r.Y0, r.X1, r.Y1})
}

// UnmarshalJSON decodes a rectangle from [x0, y0, x1, y1]
func (r *Rect) UnmarshalJSON(data []byte) error {
	var coords []float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return fmt.Errorf("bbox: %w", err)
	}
	if len(coords) != 4 {
		return fmt.Errorf("bbox: expected 4 coordinates, got %d", len(coords))
	}
	*r = Rect{X0: coords[0], Y0: coords[1], X1: coords[2], Y1: coords[3]}
	return nil
}
