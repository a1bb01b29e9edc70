package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

var (
	polyVs []ebiten.Vertex
	polyIs []uint16
)

func polygonPath(pts [][2]float64) *vector.Path {
	path := &vector.Path{}
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(float32(p[0]), float32(p[1]))
		} else {
			path.LineTo(float32(p[0]), float32(p[1]))
		}
	}
	path.Close()
	return path
}

func drawVertices(dst *ebiten.Image, clr color.RGBA) {
	for i := range polyVs {
		polyVs[i].SrcX, polyVs[i].SrcY = 1, 1
		polyVs[i].ColorR = float32(clr.R) / 255
		polyVs[i].ColorG = float32(clr.G) / 255
		polyVs[i].ColorB = float32(clr.B) / 255
		polyVs[i].ColorA = float32(clr.A) / 255
	}
	dst.DrawTriangles(polyVs, polyIs, whiteImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// FillPolygon fills a closed polygon given in screen pixels.
func FillPolygon(dst *ebiten.Image, pts [][2]float64, clr color.RGBA) {
	polyVs, polyIs = polygonPath(pts).AppendVerticesAndIndicesForFilling(polyVs[:0], polyIs[:0])
	drawVertices(dst, clr)
}

// StrokePolygon outlines a closed polygon.
func StrokePolygon(dst *ebiten.Image, pts [][2]float64, width float32, clr color.RGBA) {
	polyVs, polyIs = polygonPath(pts).AppendVerticesAndIndicesForStroke(polyVs[:0], polyIs[:0], &vector.StrokeOptions{Width: width})
	drawVertices(dst, clr)
}
