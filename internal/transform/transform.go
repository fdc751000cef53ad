// Package transform implements the canvas geometry engine used for slide
// image placement: transform validation, crop/scale sizing, canvas-pixel to
// EMU conversion, animation interpolation and linear undo history.
package transform

import "fmt"

// MaxScale is the largest scale factor a transform may carry.
const MaxScale = 10.0

// Position is an offset on the canvas in pixels. Offsets may be negative or
// fractional.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Crop holds the percentage cut from each image edge, each in [0,100].
type Crop struct {
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
}

// Transform describes how an image is placed on the canvas. Instances are
// validated at construction; a Transform obtained from New is always
// well-formed.
type Transform struct {
	Scale    float64  `json:"scale" yaml:"scale"`
	Position Position `json:"position" yaml:"position"`
	Crop     Crop     `json:"crop" yaml:"crop"`
	Rotation float64  `json:"rotation" yaml:"rotation"`
}

// ValidationError reports the first transform field that violates its
// allowed range, together with the received value.
type ValidationError struct {
	Field      string
	Value      float64
	Constraint string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid transform %s %v: must be %s", e.Field, e.Value, e.Constraint)
}

// New creates a validated Transform. Any out-of-range parameter fails the
// whole construction; a partially valid transform is never returned.
func New(scale float64, pos Position, crop Crop, rotation float64) (Transform, error) {
	t := Transform{
		Scale:    scale,
		Position: pos,
		Crop:     crop,
		Rotation: rotation,
	}
	if err := t.Validate(); err != nil {
		return Transform{}, err
	}
	return t, nil
}

// Identity returns the neutral transform: scale 1, origin position, no crop,
// no rotation.
func Identity() Transform {
	return Transform{Scale: 1.0}
}

// Validate checks every field against its allowed range:
// 0 < scale <= 10, each crop side in [0,100], rotation in [-360,360].
func (t Transform) Validate() error {
	if !(t.Scale > 0 && t.Scale <= MaxScale) {
		return &ValidationError{Field: "scale", Value: t.Scale, Constraint: fmt.Sprintf("greater than 0 and at most %v", MaxScale)}
	}
	for _, side := range []struct {
		name  string
		value float64
	}{
		{"crop.top", t.Crop.Top},
		{"crop.right", t.Crop.Right},
		{"crop.bottom", t.Crop.Bottom},
		{"crop.left", t.Crop.Left},
	} {
		if !(side.value >= 0 && side.value <= 100) {
			return &ValidationError{Field: side.name, Value: side.value, Constraint: "between 0 and 100"}
		}
	}
	if !(t.Rotation >= -360 && t.Rotation <= 360) {
		return &ValidationError{Field: "rotation", Value: t.Rotation, Constraint: "between -360 and 360"}
	}
	return nil
}

// FinalDimensions returns the rendered size of an image under this
// transform: the crop is applied to the original dimensions first, then the
// scale. Results are not clamped; callers must ensure opposing crop
// percentages sum to less than 100 so a positive area remains.
func (t Transform) FinalDimensions(originalWidth, originalHeight float64) (width, height float64) {
	width = originalWidth * (100 - t.Crop.Left - t.Crop.Right) / 100 * t.Scale
	height = originalHeight * (100 - t.Crop.Top - t.Crop.Bottom) / 100 * t.Scale
	return width, height
}
