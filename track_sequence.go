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

import "bytes"

/* -------------------------------------------------------------------------- */

// DNA bases of a sequence, one byte per position.
type SequenceTrack struct {
  Name     string
  Sequence Sequence
  Data     []byte
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewSequenceTrack(name string, seq Sequence, data []byte) (*SequenceTrack, error) {
  if err := checkTrackLength(name, seq, len(data)); err != nil {
    return nil, err
  }
  return &SequenceTrack{name, seq, data}, nil
}

/* -------------------------------------------------------------------------- */

func (track *SequenceTrack) Clone() *SequenceTrack {
  data := make([]byte, len(track.Data))
  copy(data, track.Data)
  return &SequenceTrack{track.Name, track.Sequence, data}
}

func (track *SequenceTrack) CloneTrack() Track {
  return track.Clone()
}

func (track *SequenceTrack) Equals(other *SequenceTrack) bool {
  return other != nil && track.Sequence == other.Sequence && bytes.Equal(track.Data, other.Data)
}

func (track *SequenceTrack) EqualsTrack(other Track) bool {
  if t, ok := other.(*SequenceTrack); ok {
    return track.Equals(t)
  }
  return false
}

/* access methods
 * -------------------------------------------------------------------------- */

func (track *SequenceTrack) GetName() string {
  return track.Name
}

func (track *SequenceTrack) GetSequence() Sequence {
  return track.Sequence
}

func (track *SequenceTrack) Kind() TrackKind {
  return SequenceKind
}

func (track *SequenceTrack) Size() int {
  return len(track.Data)
}

// Base at a genomic position, positions outside the sequence are clamped.
func (track *SequenceTrack) At(position int) byte {
  if len(track.Data) == 0 {
    return 'N'
  }
  return track.Data[track.Sequence.Relative(track.Sequence.Clamp(position))]
}

func (track *SequenceTrack) Set(position int, base byte) bool {
  if !track.Sequence.Contains(position) {
    return false
  }
  track.Data[track.Sequence.Relative(position)] = base
  return true
}

func (track *SequenceTrack) Slice(from, to int) []byte {
  r := Range{from, to}.Intersection(track.Sequence.Range())
  if r.IsEmpty() {
    return nil
  }
  return track.Data[track.Sequence.Relative(r.From):track.Sequence.Relative(r.To)+1]
}

func (track *SequenceTrack) String() string {
  return string(track.Data)
}
