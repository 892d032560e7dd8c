package layout

import "github.com/waozixyz/kir"

// TextMeasurer supplies intrinsic text sizes. The active rendering backend
// implements it; layout calls Measure once per text component per pass and
// does not cache across calls.
type TextMeasurer interface {
	// Measure returns the pixel size of text rendered with the given font,
	// wrapped at maxWidth. maxWidth <= 0 means unconstrained.
	Measure(text string, font kir.Font, maxWidth float64) (width, height float64)
}

// charMeasurer approximates text size from character count. It stands in
// when no backend measurer is supplied, keeping layout usable in tests and
// headless tools.
type charMeasurer struct{}

func (charMeasurer) Measure(text string, font kir.Font, maxWidth float64) (width, height float64) {
	size := font.Size
	if size <= 0 {
		size = DefaultFontSize
	}
	lineHeight := font.LineHeight
	if lineHeight <= 0 {
		lineHeight = 1.5
	}

	// Monospace-ish advance approximation.
	advance := size * 0.6
	runes := 0
	for range text {
		runes++
	}
	w := float64(runes) * advance

	lines := 1.0
	if maxWidth > 0 && w > maxWidth && advance > 0 {
		perLine := maxf(1, float64(int(maxWidth/advance)))
		lines = float64((runes + int(perLine) - 1) / int(perLine))
		w = maxWidth
	}
	return w, lines * size * lineHeight
}

// MeasureFunc adapts a function to the TextMeasurer interface.
type MeasureFunc func(text string, font kir.Font, maxWidth float64) (float64, float64)

// Measure implements TextMeasurer.
func (f MeasureFunc) Measure(text string, font kir.Font, maxWidth float64) (float64, float64) {
	return f(text, font, maxWidth)
}

// FixedMeasurer returns a measurer reporting the same size for every text.
// Tests use it to make intrinsic sizes predictable.
func FixedMeasurer(width, height float64) TextMeasurer {
	return MeasureFunc(func(string, kir.Font, float64) (float64, float64) {
		return width, height
	})
}
