// Package termview turns rendered widget pixels into terminal text.
//
// Each terminal cell shows two vertically stacked pixels using the upper
// half block glyph: the foreground paints the top pixel and the background
// paints the bottom one.
package termview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

const upperHalfBlock = "▀"

// Render scales img to cols x rows terminal cells and returns the cells as
// lines joined by '\n'. Transparent pixels are composited over bg.
func Render(img image.Image, cols, rows int, bg gg.RGBA) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}

	scaled := Scale(img, cols, rows*2)
	base := toNRGBA(bg)

	var sb strings.Builder
	for y := 0; y < rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < cols; x++ {
			top := over(scaled.RGBAAt(x, 2*y), base)
			bottom := over(scaled.RGBAAt(x, 2*y+1), base)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(Hex(top))).
				Background(lipgloss.Color(Hex(bottom)))
			sb.WriteString(style.Render(upperHalfBlock))
		}
	}
	return sb.String()
}

// Scale resamples img into a width x height RGBA image.
func Scale(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// over composites the premultiplied pixel p onto an opaque base color.
func over(p color.RGBA, base color.NRGBA) color.NRGBA {
	inv := 255 - uint32(p.A)
	blend := func(c uint8, b uint8) uint8 {
		return uint8(min(255, uint32(c)+(uint32(b)*inv+127)/255))
	}
	return color.NRGBA{
		R: blend(p.R, base.R),
		G: blend(p.G, base.G),
		B: blend(p.B, base.B),
		A: 255,
	}
}

func toNRGBA(c gg.RGBA) color.NRGBA {
	n, _ := color.NRGBAModel.Convert(c.Color()).(color.NRGBA)
	n.A = 255
	return n
}

// Hex formats an opaque color as #RRGGBB.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
