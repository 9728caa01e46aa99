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

// Numeric data for every position of a sequence. Data[i] is the value at
// genomic position Sequence.Start+i.
type NumericTrack struct {
  Name     string
  Sequence Sequence
  Data     []float64
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewNumericTrack(name string, seq Sequence, data []float64) (*NumericTrack, error) {
  if err := checkTrackLength(name, seq, len(data)); err != nil {
    return nil, err
  }
  return &NumericTrack{name, seq, data}, nil
}

func AllocNumericTrack(name string, seq Sequence) *NumericTrack {
  return &NumericTrack{name, seq, make([]float64, seq.Length())}
}

/* -------------------------------------------------------------------------- */

func (track *NumericTrack) Clone() *NumericTrack {
  data := make([]float64, len(track.Data))
  copy(data, track.Data)
  return &NumericTrack{track.Name, track.Sequence, data}
}

func (track *NumericTrack) CloneTrack() Track {
  return track.Clone()
}

// Value level comparison, NaN values are considered equal.
func (track *NumericTrack) Equals(other *NumericTrack) bool {
  if other == nil || track.Sequence != other.Sequence || len(track.Data) != len(other.Data) {
    return false
  }
  for i, a := range track.Data {
    b := other.Data[i]
    if a != b && !(math.IsNaN(a) && math.IsNaN(b)) {
      return false
    }
  }
  return true
}

func (track *NumericTrack) EqualsTrack(other Track) bool {
  if t, ok := other.(*NumericTrack); ok {
    return track.Equals(t)
  }
  return false
}

/* access methods
 * -------------------------------------------------------------------------- */

func (track *NumericTrack) GetName() string {
  return track.Name
}

func (track *NumericTrack) GetSequence() Sequence {
  return track.Sequence
}

func (track *NumericTrack) Kind() TrackKind {
  return NumericKind
}

func (track *NumericTrack) Size() int {
  return len(track.Data)
}

func (track *NumericTrack) RegionStart() int {
  return track.Sequence.Start
}

func (track *NumericTrack) RegionEnd() int {
  return track.Sequence.End
}

// Value at a position relative to the sequence start.
func (track *NumericTrack) ValueAt(relative int) float64 {
  return track.Data[relative]
}

// Value at a genomic position, positions outside the sequence are clamped.
func (track *NumericTrack) At(position int) float64 {
  if len(track.Data) == 0 {
    return math.NaN()
  }
  return track.Data[track.Sequence.Relative(track.Sequence.Clamp(position))]
}

// Set the value at a genomic position. Returns false if the position is
// outside the sequence.
func (track *NumericTrack) Set(position int, value float64) bool {
  if !track.Sequence.Contains(position) {
    return false
  }
  track.Data[track.Sequence.Relative(position)] = value
  return true
}

// Values in the genomic interval [from, to] clamped to the sequence. The
// returned slice shares memory with the track.
func (track *NumericTrack) Slice(from, to int) []float64 {
  r := Range{from, to}.Intersection(track.Sequence.Range())
  if r.IsEmpty() {
    return nil
  }
  return track.Data[track.Sequence.Relative(r.From):track.Sequence.Relative(r.To)+1]
}

// Minimum and maximum value ignoring NaNs. Returns NaNs for tracks without
// data.
func (track *NumericTrack) Range() (float64, float64) {
  min := math.NaN()
  max := math.NaN()
  for _, v := range track.Data {
    if math.IsNaN(v) {
      continue
    }
    if math.IsNaN(min) || v < min {
      min = v
    }
    if math.IsNaN(max) || v > max {
      max = v
    }
  }
  return min, max
}
