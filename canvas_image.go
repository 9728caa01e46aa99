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
import "image/png"
import "io"

import "golang.org/x/image/draw"
import "golang.org/x/image/font"
import "golang.org/x/image/font/basicfont"
import "golang.org/x/image/math/fixed"

/* -------------------------------------------------------------------------- */

// Raster canvas backed by an RGBA image. All drawing operations are
// clipped to the image bounds.
type ImageCanvas struct {
  Image *image.RGBA
  Face   font.Face
}

func NewImageCanvas(width, height int) *ImageCanvas {
  return &ImageCanvas{
    Image: image.NewRGBA(image.Rect(0, 0, width, height)),
    Face : basicfont.Face7x13 }
}

/* -------------------------------------------------------------------------- */

func (c *ImageCanvas) Bounds() image.Rectangle {
  return c.Image.Bounds()
}

func (c *ImageCanvas) FillRect(r image.Rectangle, col color.Color) {
  r = r.Canon().Intersect(c.Image.Bounds())
  if r.Empty() {
    return
  }
  op := draw.Over
  if _, _, _, a := col.RGBA(); a == 0xffff {
    op = draw.Src
  }
  draw.Draw(c.Image, r, image.NewUniform(col), image.Point{}, op)
}

func (c *ImageCanvas) StrokeRect(r image.Rectangle, col color.Color) {
  strokeRectWithFill(c, r.Canon(), col)
}

func (c *ImageCanvas) DrawLine(x0, y0, x1, y1 int, col color.Color) {
  drawLineWithFill(c, x0, y0, x1, y1, col)
}

func (c *ImageCanvas) DrawText(x, y int, text string, col color.Color) {
  d := &font.Drawer{
    Dst : c.Image,
    Src : image.NewUniform(col),
    Face: c.Face,
    Dot : fixed.P(x, y) }
  d.DrawString(text)
}

// Render the glyph into an alpha mask of its natural size and scale the
// mask to the target rectangle.
func (c *ImageCanvas) DrawLetter(r image.Rectangle, letter byte, col color.Color) {
  r = r.Canon()
  if r.Empty() {
    return
  }
  s       := string([]byte{letter})
  metrics := c.Face.Metrics()
  w       := font.MeasureString(c.Face, s).Ceil()
  h       := (metrics.Ascent + metrics.Descent).Ceil()
  if w <= 0 || h <= 0 {
    return
  }
  glyph := image.NewAlpha(image.Rect(0, 0, w, h))
  d := &font.Drawer{
    Dst : glyph,
    Src : image.Opaque,
    Face: c.Face,
    Dot : fixed.P(0, metrics.Ascent.Ceil()) }
  d.DrawString(s)

  mask := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
  draw.ApproxBiLinear.Scale(mask, mask.Bounds(), glyph, glyph.Bounds(), draw.Src, nil)
  draw.DrawMask(c.Image, r, image.NewUniform(col), image.Point{}, mask, image.Point{}, draw.Over)
}

func (c *ImageCanvas) TextWidth(text string) int {
  return font.MeasureString(c.Face, text).Ceil()
}

func (c *ImageCanvas) TextHeight() int {
  return c.Face.Metrics().Height.Ceil()
}

/* -------------------------------------------------------------------------- */

func (c *ImageCanvas) WritePNG(writer io.Writer) error {
  return png.Encode(writer, c.Image)
}
