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

/* -------------------------------------------------------------------------- */

// Drawing surface used by all track renderers. Coordinates are pixels with
// the origin in the top-left corner, rectangles exclude their maximum
// point as in the image package.
type Canvas interface {
  Bounds    ()                                       image.Rectangle
  FillRect  (r image.Rectangle, c color.Color)
  StrokeRect(r image.Rectangle, c color.Color)
  DrawLine  (x0, y0, x1, y1 int, c color.Color)
  // draw text starting at x with its baseline at y
  DrawText  (x, y int, text string, c color.Color)
  // draw a single letter stretched to fill r
  DrawLetter(r image.Rectangle, letter byte, c color.Color)
  TextWidth (text string)                            int
  TextHeight()                                       int
}

/* -------------------------------------------------------------------------- */

func strokeRectWithFill(canvas Canvas, r image.Rectangle, c color.Color) {
  if r.Empty() {
    return
  }
  canvas.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
  canvas.FillRect(image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
  canvas.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
  canvas.FillRect(image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// Bresenham line drawn with single pixel rectangles.
func drawLineWithFill(canvas Canvas, x0, y0, x1, y1 int, c color.Color) {
  dx :=  iAbs(x1 - x0)
  dy := -iAbs(y1 - y0)
  sx := 1
  sy := 1
  if x0 > x1 {
    sx = -1
  }
  if y0 > y1 {
    sy = -1
  }
  err := dx + dy
  for {
    canvas.FillRect(image.Rect(x0, y0, x0+1, y0+1), c)
    if x0 == x1 && y0 == y1 {
      break
    }
    e2 := 2*err
    if e2 >= dy {
      err += dy
      x0  += sx
    }
    if e2 <= dx {
      err += dx
      y0  += sy
    }
  }
}
