package transform

// lerp linearly interpolates between a and b at parameter t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Interpolate returns the transform at parameter t between start and end,
// with t clamped to [0,1]. Scale, position, each crop side and rotation are
// interpolated independently and the result is re-validated before being
// returned.
func Interpolate(start, end Transform, t float64) (Transform, error) {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return New(
		lerp(start.Scale, end.Scale, t),
		Position{
			X: lerp(start.Position.X, end.Position.X, t),
			Y: lerp(start.Position.Y, end.Position.Y, t),
		},
		Crop{
			Top:    lerp(start.Crop.Top, end.Crop.Top, t),
			Right:  lerp(start.Crop.Right, end.Crop.Right, t),
			Bottom: lerp(start.Crop.Bottom, end.Crop.Bottom, t),
			Left:   lerp(start.Crop.Left, end.Crop.Left, t),
		},
		lerp(start.Rotation, end.Rotation, t),
	)
}

// Frames produces n animation frames between start and end with evenly
// spaced parameters over [0,1] inclusive. The first frame is exactly start
// and the last exactly end, so endpoint frames carry no floating-point
// drift. n <= 0 yields no frames; n == 1 yields only the end frame.
func Frames(start, end Transform, n int) ([]Transform, error) {
	if n <= 0 {
		return nil, nil
	}
	if n == 1 {
		return []Transform{end}, nil
	}

	frames := make([]Transform, 0, n)
	frames = append(frames, start)
	for i := 1; i < n-1; i++ {
		f, err := Interpolate(start, end, float64(i)/float64(n-1))
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	frames = append(frames, end)
	return frames, nil
}
