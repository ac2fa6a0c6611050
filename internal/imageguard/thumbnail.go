package imageguard

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

const upperHalf = "▀"

// Thumbnail renders img into width x height terminal cells. Each cell shows
// two vertically stacked pixels using an upper half block.
func Thumbnail(img image.Image, width, height int) string {
	if img == nil || width <= 0 || height <= 0 {
		return ""
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height*2))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	var b strings.Builder
	for y := 0; y < height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			top := hex(dst.At(x, y*2))
			bottom := hex(dst.At(x, y*2+1))
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render(upperHalf))
		}
	}
	return b.String()
}

func hex(c color.Color) string {
	col, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent pixel.
		return "#0b0b0b"
	}
	return col.Hex()
}

// PlaceholderView renders the placeholder graphic at width x height cells.
func PlaceholderView(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	text := PlaceholderText
	if lipgloss.Width(text) > width {
		text = "n/a"
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Render(text),
		lipgloss.WithWhitespaceBackground(lipgloss.Color("#0b0b0b")))
}
