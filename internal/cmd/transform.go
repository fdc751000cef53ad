package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/podium/internal/transform"
	"github.com/felixgeelhaar/podium/internal/ux"
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Work with image transforms and slide geometry",
	Long: `Validate image transforms and compute the slide geometry they produce:
final dimensions after crop and scale, EMU placement for the presentation
layer, and interpolated animation frames.`,
}

var (
	transformScale    float64
	transformX        float64
	transformY        float64
	transformCropTop  float64
	transformCropR    float64
	transformCropBot  float64
	transformCropLeft float64
	transformRotation float64
	transformWidth    float64
	transformHeight   float64
	transformDPI      float64
	framesSteps       int
)

func init() {
	for _, sub := range []*cobra.Command{placementCmd, framesCmd} {
		sub.Flags().Float64Var(&transformScale, "scale", 1.0, "scale factor (0 < scale <= 10)")
		sub.Flags().Float64Var(&transformX, "x", 0, "horizontal position offset in pixels")
		sub.Flags().Float64Var(&transformY, "y", 0, "vertical position offset in pixels")
		sub.Flags().Float64Var(&transformCropTop, "crop-top", 0, "crop from the top edge in percent")
		sub.Flags().Float64Var(&transformCropR, "crop-right", 0, "crop from the right edge in percent")
		sub.Flags().Float64Var(&transformCropBot, "crop-bottom", 0, "crop from the bottom edge in percent")
		sub.Flags().Float64Var(&transformCropLeft, "crop-left", 0, "crop from the left edge in percent")
		sub.Flags().Float64Var(&transformRotation, "rotation", 0, "rotation in degrees (-360 to 360)")
		transformCmd.AddCommand(sub)
	}

	placementCmd.Flags().Float64Var(&transformWidth, "width", 0, "original image width in pixels (required)")
	placementCmd.Flags().Float64Var(&transformHeight, "height", 0, "original image height in pixels (required)")
	placementCmd.Flags().Float64Var(&transformDPI, "dpi", transform.DefaultDPI, "pixel density for EMU conversion")
	_ = placementCmd.MarkFlagRequired("width")
	_ = placementCmd.MarkFlagRequired("height")

	framesCmd.Flags().IntVar(&framesSteps, "steps", 10, "number of animation frames to generate")

	rootCmd.AddCommand(transformCmd)
}

var placementCmd = &cobra.Command{
	Use:   "placement",
	Short: "Compute the EMU placement for a transformed image",
	Long: `Validate a transform, apply crop and scale to the original image
dimensions, and print the resulting placement in English Metric Units
(EMU), the coordinate space presentation files use.

Example:
  podium transform placement --width 800 --height 600 --scale 1.5 --crop-left 10
`,
	RunE: runPlacement,
}

func runPlacement(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	t, err := buildTransform()
	if err != nil {
		return ux.FormatError(err, "validating transform")
	}

	conv := transform.NewConverterDPI(transformDPI)
	placement := conv.PlacementFor(t, transformWidth, transformHeight)

	if cmdCtx.Format == "json" || cmdCtx.Format == "yaml" {
		formatter, err := ux.NewFormatter(cmdCtx.Format, &ux.FormatterOptions{
			NoColor: cmdCtx.NoColor,
		})
		if err != nil {
			return err
		}
		return formatter.Format(placement)
	}

	w, h := t.FinalDimensions(transformWidth, transformHeight)
	fmt.Printf("Final size: %.2f x %.2f px\n", w, h)
	fmt.Println(ux.RenderTable(
		[]string{"Field", "EMU"},
		[][]string{
			{"X", fmt.Sprintf("%d", placement.X)},
			{"Y", fmt.Sprintf("%d", placement.Y)},
			{"Width", fmt.Sprintf("%d", placement.Width)},
			{"Height", fmt.Sprintf("%d", placement.Height)},
		},
	))
	return nil
}

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Generate interpolated animation frames for a transform",
	Long: `Interpolate from the identity transform to the given transform and
print the intermediate frames. Useful for previewing zoom and pan
animations before they are applied.

Example:
  podium transform frames --scale 2 --x 100 --steps 5 --format json
`,
	RunE: runFrames,
}

func runFrames(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	end, err := buildTransform()
	if err != nil {
		return ux.FormatError(err, "validating transform")
	}

	frames, err := transform.Frames(transform.Identity(), end, framesSteps)
	if err != nil {
		return ux.FormatError(err, "interpolating frames")
	}

	if cmdCtx.Format == "json" || cmdCtx.Format == "yaml" {
		formatter, err := ux.NewFormatter(cmdCtx.Format, &ux.FormatterOptions{
			NoColor: cmdCtx.NoColor,
		})
		if err != nil {
			return err
		}
		return formatter.Format(frames)
	}

	for i, f := range frames {
		fmt.Printf("frame %2d: scale=%.3f pos=(%.1f, %.1f) rotation=%.1f\n",
			i, f.Scale, f.Position.X, f.Position.Y, f.Rotation)
	}
	return nil
}

func buildTransform() (transform.Transform, error) {
	return transform.New(
		transformScale,
		transform.Position{X: transformX, Y: transformY},
		transform.Crop{
			Top:    transformCropTop,
			Right:  transformCropR,
			Bottom: transformCropBot,
			Left:   transformCropLeft,
		},
		transformRotation,
	)
}
