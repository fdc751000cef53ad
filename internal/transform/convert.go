package transform

// EMU (English Metric Unit) conversion between canvas pixels and the
// fixed-point length unit used by presentation documents. The ratio is a
// pure DPI assumption: 914400 EMU per inch over the canvas pixel density.
const (
	// EMUPerInch is fixed by the presentation document format.
	EMUPerInch = 914400
	// DefaultDPI is the assumed canvas pixel density.
	DefaultDPI = 96
)

// Converter converts between canvas pixels and EMU for a given canvas DPI.
// The zero value is not usable; construct with NewConverter.
type Converter struct {
	dpi float64
}

// NewConverter returns a Converter for the default 96 DPI canvas.
func NewConverter() Converter {
	return Converter{dpi: DefaultDPI}
}

// NewConverterDPI returns a Converter for a non-standard canvas density.
// Non-positive densities fall back to the default.
func NewConverterDPI(dpi float64) Converter {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return Converter{dpi: dpi}
}

// EMUPerPixel returns the linear scale factor applied to every conversion.
// At the default density this is 914400/96 = 9525.
func (c Converter) EMUPerPixel() float64 {
	return EMUPerInch / c.dpi
}

// PixelsToEMU converts a pixel length to EMU, truncating to the integer
// grid of the document format.
func (c Converter) PixelsToEMU(px float64) int64 {
	return int64(px * c.EMUPerPixel())
}

// EMUToPixels converts an EMU length back to pixels.
func (c Converter) EMUToPixels(emu int64) float64 {
	return float64(emu) / c.EMUPerPixel()
}

// Placement is the EMU-space geometry handed to the slide placement layer.
type Placement struct {
	X      int64 `json:"x" yaml:"x"`
	Y      int64 `json:"y" yaml:"y"`
	Width  int64 `json:"width" yaml:"width"`
	Height int64 `json:"height" yaml:"height"`
}

// PlacementFor converts a transform applied to an image of the given
// original pixel dimensions into EMU-space placement geometry. The same
// scale factor is applied uniformly to position and final dimensions.
func (c Converter) PlacementFor(t Transform, originalWidth, originalHeight float64) Placement {
	w, h := t.FinalDimensions(originalWidth, originalHeight)
	return Placement{
		X:      c.PixelsToEMU(t.Position.X),
		Y:      c.PixelsToEMU(t.Position.Y),
		Width:  c.PixelsToEMU(w),
		Height: c.PixelsToEMU(h),
	}
}
