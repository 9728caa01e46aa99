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

/* -------------------------------------------------------------------------- */

// Range of positions. Contrary to bed files both boundaries are included,
// i.e. the interval is [From, To]. A range with To < From is empty.
type Range struct {
  From, To int
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewRange(from, to int) Range {
  if from > to {
    panic("NewRange(): from > to")
  }
  return Range{from, to}
}

func EmptyRange() Range {
  return Range{0, -1}
}

/* -------------------------------------------------------------------------- */

func (r Range) Length() int {
  if r.To < r.From {
    return 0
  }
  return r.To - r.From + 1
}

func (r Range) IsEmpty() bool {
  return r.To < r.From
}

func (r Range) Contains(position int) bool {
  return r.From <= position && position <= r.To
}

func (r Range) Overlaps(s Range) bool {
  if r.IsEmpty() || s.IsEmpty() {
    return false
  }
  return r.From <= s.To && s.From <= r.To
}

func (r Range) Intersection(s Range) Range {
  from := iMax(r.From, s.From)
  to   := iMin(r.To,   s.To)
  if to < from {
    return EmptyRange()
  }
  return Range{from, to}
}

// Center position of the range, rounded down.
func (r Range) Center() int {
  return r.From + (r.To - r.From)/2
}

func (r Range) Shift(offset int) Range {
  return Range{r.From+offset, r.To+offset}
}

/* -------------------------------------------------------------------------- */

func (r Range) String() string {
  return fmt.Sprintf("[%d %d]", r.From, r.To)
}
