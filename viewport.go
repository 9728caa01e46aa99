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

import "fmt"
import "math"

/* -------------------------------------------------------------------------- */

type Orientation int

const (
  Direct Orientation = iota
  Reverse
)

func (o Orientation) String() string {
  switch o {
  case Direct:  return "direct"
  case Reverse: return "reverse"
  default:      return "invalid"
  }
}

/* -------------------------------------------------------------------------- */

// Visible window of one sequence. Start and End are genomic positions
// (both included), Scale is given in pixels per base.
type Viewport struct {
  Start       int
  End         int
  Scale       float64
  Orientation Orientation
}

func NewViewport(start, end int, scale float64, orientation Orientation) (Viewport, error) {
  if start > end {
    return Viewport{}, fmt.Errorf("NewViewport(): invalid window [%d, %d]", start, end)
  }
  if !(scale > 0.0) || math.IsInf(scale, 1) {
    return Viewport{}, fmt.Errorf("NewViewport(): scale must be strictly positive")
  }
  return Viewport{start, end, scale, orientation}, nil
}

// Create a viewport that shows [start, end] on exactly width pixels. When
// zoomed out the first and last column cover only half a bin, hence the
// scale is chosen such that the last position maps to column width-1.
func FitViewport(start, end, width int, orientation Orientation) (Viewport, error) {
  if width <= 0 {
    return Viewport{}, fmt.Errorf("FitViewport(): width must be strictly positive")
  }
  if start > end {
    return Viewport{}, fmt.Errorf("FitViewport(): invalid window [%d, %d]", start, end)
  }
  n := end-start+1
  switch {
  case width >= n:
    return NewViewport(start, end, float64(width)/float64(n), orientation)
  case width == 1:
    return NewViewport(start, end, 0.5/float64(n), orientation)
  default:
    return NewViewport(start, end, float64(width-1)/float64(n-1), orientation)
  }
}

/* -------------------------------------------------------------------------- */

func (v Viewport) Length() int {
  return v.End - v.Start + 1
}

func (v Viewport) Range() Range {
  return Range{v.Start, v.End}
}

func (v Viewport) IsReverse() bool {
  return v.Orientation == Reverse
}

// Number of bases covered by one pixel column.
func (v Viewport) BasesPerPixel() float64 {
  return 1.0/v.Scale
}

func (v Viewport) String() string {
  return fmt.Sprintf("[%d %d] scale=%g %v", v.Start, v.End, v.Scale, v.Orientation)
}
