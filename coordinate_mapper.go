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

import "math"

/* -------------------------------------------------------------------------- */

// Conversion between genomic positions and pixel columns. Positions are
// measured from the viewport start (direct orientation) or from the
// viewport end (reverse orientation). The pixel column of a position at
// distance d is round(d*scale), a position covers all columns up to the
// column of its successor. Out-of-range input is clamped, no errors are
// raised.
type CoordinateMapper struct {
  Sequence Sequence
  Viewport Viewport
  OriginX  int
}

/* -------------------------------------------------------------------------- */

func NewCoordinateMapper(sequence Sequence, viewport Viewport, originX int) CoordinateMapper {
  return CoordinateMapper{sequence, viewport, originX}
}

/* -------------------------------------------------------------------------- */

func (m CoordinateMapper) distance(position int) int {
  if m.Viewport.Orientation == Reverse {
    return m.Viewport.End - position
  } else {
    return position - m.Viewport.Start
  }
}

func (m CoordinateMapper) position(d int) int {
  if m.Viewport.Orientation == Reverse {
    return m.Viewport.End - d
  } else {
    return m.Viewport.Start + d
  }
}

func (m CoordinateMapper) column(d int) int {
  return columnAt(d, m.Viewport.Scale)
}

func (m CoordinateMapper) columnEnd(d int) int {
  return iMax(m.column(d), m.column(d+1)-1)
}

func columnAt(d int, scale float64) int {
  return iRound(float64(d)*scale)
}

// Distances [dLo, dHi] that map to the pixel column offset, where column
// computes the first column of a distance. The bounds are computed in
// closed form and corrected for rounding errors, so the cost does not
// depend on the number of bases per pixel. The result is not restricted
// to the viewport and may be empty.
func columnBounds(offset int, scale float64, column func(int) int) (int, int) {
  columnEnd := func(d int) int {
    return iMax(column(d), column(d+1)-1)
  }
  // smallest distance d with columnEnd(d) >= offset
  dLo := iMin(
    int(math.Ceil((float64(offset)-0.5)/scale)),
    int(math.Ceil((float64(offset)+0.5)/scale))-1)
  dLo  = iMax(dLo, 0)
  for dLo > 0 && columnEnd(dLo-1) >= offset {
    dLo--
  }
  for columnEnd(dLo) < offset {
    dLo++
  }
  // largest distance d with column(d) <= offset
  dHi := int(math.Ceil((float64(offset)+0.5)/scale)) - 1
  for dHi >= 0 && column(dHi) > offset {
    dHi--
  }
  for column(dHi+1) <= offset {
    dHi++
  }
  return dLo, dHi
}

/* -------------------------------------------------------------------------- */

// Width of the viewport in pixels.
func (m CoordinateMapper) Width() int {
  return m.columnEnd(m.Viewport.Length()-1) + 1
}

// Genomic positions that are both in the viewport and in the sequence.
func (m CoordinateMapper) VisibleRange() Range {
  return m.Viewport.Range().Intersection(m.Sequence.Range())
}

// Clamp a screen offset to the pixel columns of the viewport.
func (m CoordinateMapper) ClampX(x int) int {
  return iClamp(x, m.OriginX, m.OriginX + m.Width() - 1)
}

// First pixel column covered by a genomic position.
func (m CoordinateMapper) PixelX(position int) int {
  d := m.distance(m.Sequence.Clamp(position))
  return m.OriginX + m.column(d)
}

// Inclusive range of pixel columns covered by a genomic position.
func (m CoordinateMapper) PixelRange(position int) (int, int) {
  d := m.distance(m.Sequence.Clamp(position))
  return m.OriginX + m.column(d), m.OriginX + m.columnEnd(d)
}

// Inclusive range of pixel columns covered by the genomic interval r,
// independent of the orientation the first return value is the leftmost
// column.
func (m CoordinateMapper) PixelSpan(r Range) (int, int) {
  a0, a1 := m.PixelRange(r.From)
  b0, b1 := m.PixelRange(r.To)
  return iMin(a0, b0), iMax(a1, b1)
}

// Genomic positions [first, last] that map to the pixel column at screen
// offset x. The returned range is sorted in genomic order also for the
// reverse orientation. The second return value is false if no position of
// the sequence maps to this column.
func (m CoordinateMapper) GenomicRange(x int) (Range, bool) {
  offset   := m.ClampX(x) - m.OriginX
  n        := m.Viewport.Length()
  dLo, dHi := columnBounds(offset, m.Viewport.Scale, m.column)
  dLo = iMax(dLo, 0)
  dHi = iMin(dHi, n-1)
  if dLo > dHi {
    return EmptyRange(), false
  }
  r := Range{m.position(dLo), m.position(dHi)}
  if r.From > r.To {
    r.From, r.To = r.To, r.From
  }
  r = r.Intersection(m.Sequence.Range())
  if r.IsEmpty() {
    return r, false
  }
  return r, true
}

// Genomic anchor of a click at screen offset x. If several positions map to
// the same column, the center position is returned.
func (m CoordinateMapper) PositionAt(x int) (int, bool) {
  if r, ok := m.GenomicRange(x); ok {
    return r.Center(), true
  }
  return 0, false
}

/* -------------------------------------------------------------------------- */

type Column struct {
  X     int
  Range Range
}

// All pixel columns of the viewport together with the genomic positions
// they cover, columns without data are skipped.
func (m CoordinateMapper) Columns() []Column {
  w := m.Width()
  r := make([]Column, 0, w)
  for x := m.OriginX; x < m.OriginX+w; x++ {
    if g, ok := m.GenomicRange(x); ok {
      r = append(r, Column{x, g})
    }
  }
  return r
}
