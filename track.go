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

type TrackKind int

const (
  NumericKind TrackKind = iota
  RegionKind
  SequenceKind
)

func (kind TrackKind) String() string {
  switch kind {
  case NumericKind:  return "numeric"
  case RegionKind:   return "region"
  case SequenceKind: return "sequence"
  default:           return "invalid"
  }
}

func ParseTrackKind(str string) (TrackKind, error) {
  switch str {
  case "numeric":  return NumericKind,  nil
  case "region":   return RegionKind,   nil
  case "sequence": return SequenceKind, nil
  default:
    return NumericKind, fmt.Errorf("invalid track kind `%s'", str)
  }
}

/* -------------------------------------------------------------------------- */

// A track associates every position of a single sequence with a value.
// The length of a track is fixed, values may be modified in place.
type Track interface {
  GetName    ()            string
  GetSequence()            Sequence
  Kind       ()            TrackKind
  Size       ()            int
  CloneTrack ()            Track
  EqualsTrack(other Track) bool
}

func checkTrackLength(name string, seq Sequence, n int) error {
  if n != seq.Length() {
    return fmt.Errorf("track `%s' has %d values but sequence `%s' has length %d", name, n, seq.Name, seq.Length())
  }
  return nil
}
