package pulse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/oliverbestmann/roxy/glm"
)

// ColorPortalBlue is the default background of the engine.
var ColorPortalBlue = ColorLinearRGBA(0.1, 0.2, 0.3, 1)

// Color is a straight rgba value in linear rgb space.
// The zero value is fully opaque white.
type Color struct {
	r1, g1, b1, a1 float32
}

func ColorLinearRGBA(r, g, b, a float32) Color {
	return Color{
		r1: r - 1,
		g1: g - 1,
		b1: b - 1,
		a1: a - 1,
	}
}

// ColorOf takes the linear rgba components from the vector.
func ColorOf(color glm.Vec4f) Color {
	return ColorLinearRGBA(color[0], color[1], color[2], color[3])
}

// ColorSRGBA decodes srgb encoded components into linear space. Use this
// for colors taken from a color picker or an image. Alpha stays as is.
func ColorSRGBA(r, g, b, a float32) Color {
	srgb := colorful.Color{R: float64(r), G: float64(g), B: float64(b)}
	lr, lg, lb := srgb.LinearRgb()

	return ColorLinearRGBA(float32(lr), float32(lg), float32(lb), a)
}

// ParseColor accepts either an srgb hex color like "#1a334d", or three to
// four comma separated linear components like "0.1, 0.2, 0.3, 1".
func ParseColor(text string) (Color, error) {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "#") {
		srgb, err := colorful.Hex(text)
		if err != nil {
			return Color{}, fmt.Errorf("parse hex color: %w", err)
		}

		return ColorSRGBA(float32(srgb.R), float32(srgb.G), float32(srgb.B), 1), nil
	}

	parts := strings.Split(text, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("expected 3 or 4 components in color %q", text)
	}

	vec := glm.Vec4f{0, 0, 0, 1}
	for idx, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return Color{}, fmt.Errorf("parse color component %d: %w", idx, err)
		}

		vec[idx] = float32(value)
	}

	return ColorOf(vec), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

func (c Color) ToVec() glm.Vec4f {
	return glm.Vec4f{
		c.r1 + 1,
		c.g1 + 1,
		c.b1 + 1,
		c.a1 + 1,
	}
}

// ToWGPU returns the components as expected by a wgpu clear value.
func (c Color) ToWGPU() [4]float64 {
	return c.ToVec().ToWGPU()
}
