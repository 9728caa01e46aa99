/* Copyright (C) 2016 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package gotracks

/* -------------------------------------------------------------------------- */

import "image"
import "image/color"
import "io"
import "math"

import "gonum.org/v1/plot"
import "gonum.org/v1/plot/font"
import "gonum.org/v1/plot/vg"
import "gonum.org/v1/plot/vg/vgimg"

/* -------------------------------------------------------------------------- */

// Canvas that forwards all drawing operations to a gonum vector graphics
// canvas. One point corresponds to one pixel, the y axis is flipped.
type VgCanvas struct {
  Canvas vg.Canvas
  Width  int
  Height int
  Face   font.Face
}

func NewVgCanvas(canvas vg.Canvas, width, height int) *VgCanvas {
  face := font.DefaultCache.Lookup(plot.DefaultFont, vg.Points(10))
  return &VgCanvas{canvas, width, height, face}
}

// Vector canvas rasterised at 72 dpi, so that one point is one pixel.
func NewVgImageCanvas(width, height int) (*VgCanvas, *vgimg.Canvas) {
  img := vgimg.NewWith(
    vgimg.UseWH (vg.Length(width), vg.Length(height)),
    vgimg.UseDPI(72))
  return NewVgCanvas(img, width, height), img
}

/* -------------------------------------------------------------------------- */

func (c *VgCanvas) point(x, y float64) vg.Point {
  return vg.Point{X: vg.Length(x), Y: vg.Length(float64(c.Height) - y)}
}

func (c *VgCanvas) rectPath(x0, y0, x1, y1 float64) vg.Path {
  p := vg.Path{}
  p.Move(c.point(x0, y0))
  p.Line(c.point(x1, y0))
  p.Line(c.point(x1, y1))
  p.Line(c.point(x0, y1))
  p.Close()
  return p
}

func (c *VgCanvas) Bounds() image.Rectangle {
  return image.Rect(0, 0, c.Width, c.Height)
}

func (c *VgCanvas) FillRect(r image.Rectangle, col color.Color) {
  r = r.Canon().Intersect(c.Bounds())
  if r.Empty() {
    return
  }
  c.Canvas.SetColor(col)
  c.Canvas.Fill(c.rectPath(float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y)))
}

func (c *VgCanvas) StrokeRect(r image.Rectangle, col color.Color) {
  r = r.Canon()
  if r.Empty() {
    return
  }
  c.Canvas.SetColor(col)
  c.Canvas.SetLineWidth(1)
  // stroke through pixel centers
  c.Canvas.Stroke(c.rectPath(float64(r.Min.X)+0.5, float64(r.Min.Y)+0.5, float64(r.Max.X)-0.5, float64(r.Max.Y)-0.5))
}

func (c *VgCanvas) DrawLine(x0, y0, x1, y1 int, col color.Color) {
  c.Canvas.SetColor(col)
  c.Canvas.SetLineWidth(1)
  p := vg.Path{}
  p.Move(c.point(float64(x0)+0.5, float64(y0)+0.5))
  p.Line(c.point(float64(x1)+0.5, float64(y1)+0.5))
  c.Canvas.Stroke(p)
}

func (c *VgCanvas) DrawText(x, y int, text string, col color.Color) {
  c.Canvas.SetColor(col)
  c.Canvas.FillString(c.Face, c.point(float64(x), float64(y)), text)
}

func (c *VgCanvas) DrawLetter(r image.Rectangle, letter byte, col color.Color) {
  r = r.Canon()
  if r.Empty() {
    return
  }
  s := string([]byte{letter})
  e := c.Face.Extents()
  w := float64(c.Face.Width(s))
  h := float64(e.Ascent + e.Descent)
  if w <= 0 || h <= 0 {
    return
  }
  c.Canvas.Push()
  defer c.Canvas.Pop()
  c.Canvas.SetColor(col)
  c.Canvas.Translate(c.point(float64(r.Min.X), float64(r.Max.Y)))
  c.Canvas.Scale(float64(r.Dx())/w, float64(r.Dy())/h)
  c.Canvas.FillString(c.Face, vg.Point{X: 0, Y: e.Descent}, s)
}

func (c *VgCanvas) TextWidth(text string) int {
  return int(math.Ceil(float64(c.Face.Width(text))))
}

func (c *VgCanvas) TextHeight() int {
  return int(math.Ceil(float64(c.Face.Extents().Height)))
}

/* -------------------------------------------------------------------------- */

func WriteVgPNG(writer io.Writer, img *vgimg.Canvas) error {
  _, err := vgimg.PngCanvas{Canvas: img}.WriteTo(writer)
  return err
}
