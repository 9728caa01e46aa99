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

// Named reference from a composite region (e.g. a module) to one of its
// parts. Index refers to the region list of the same track.
type RegionChild struct {
  Slot  string
  Index int
}

// Annotated interval [From, To] relative to the sequence start of the
// owning track. Strand is one of '+', '-' or '*'.
type Region struct {
  From       int
  To         int
  Type       string
  Score      float64
  Strand     byte
  Properties map[string]string
  Parent     int
  Children   []RegionChild
}

func NewRegion(from, to int, regionType string, score float64, strand byte) Region {
  if from > to {
    panic("NewRegion(): from > to")
  }
  if strand != '+' && strand != '-' {
    strand = '*'
  }
  return Region{
    From  : from,
    To    : to,
    Type  : regionType,
    Score : score,
    Strand: strand,
    Parent: -1 }
}

/* -------------------------------------------------------------------------- */

func (r Region) Clone() Region {
  s := r
  if r.Properties != nil {
    s.Properties = make(map[string]string, len(r.Properties))
    for k, v := range r.Properties {
      s.Properties[k] = v
    }
  }
  if r.Children != nil {
    s.Children = make([]RegionChild, len(r.Children))
    copy(s.Children, r.Children)
  }
  return s
}

func (r Region) Equals(s Region) bool {
  if r.From != s.From || r.To != s.To || r.Type != s.Type || r.Score != s.Score ||
    r.Strand != s.Strand || r.Parent != s.Parent {
    return false
  }
  if len(r.Properties) != len(s.Properties) || len(r.Children) != len(s.Children) {
    return false
  }
  for k, v := range r.Properties {
    if w, ok := s.Properties[k]; !ok || w != v {
      return false
    }
  }
  for i := range r.Children {
    if r.Children[i] != s.Children[i] {
      return false
    }
  }
  return true
}

func (r Region) Range() Range {
  return Range{r.From, r.To}
}

func (r Region) Length() int {
  return r.To - r.From + 1
}

func (r *Region) SetProperty(name, value string) {
  if r.Properties == nil {
    r.Properties = make(map[string]string)
  }
  r.Properties[name] = value
}

func (r Region) GetProperty(name string) (string, bool) {
  v, ok := r.Properties[name]
  return v, ok
}

/* -------------------------------------------------------------------------- */

// Regions of a single sequence. Regions may overlap, the storage order is
// preserved by all queries.
type RegionTrack struct {
  Name     string
  Sequence Sequence
  Regions  []Region
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewRegionTrack(name string, seq Sequence) *RegionTrack {
  return &RegionTrack{Name: name, Sequence: seq}
}

/* -------------------------------------------------------------------------- */

func (track *RegionTrack) Clone() *RegionTrack {
  regions := make([]Region, len(track.Regions))
  for i, r := range track.Regions {
    regions[i] = r.Clone()
  }
  return &RegionTrack{track.Name, track.Sequence, regions}
}

func (track *RegionTrack) CloneTrack() Track {
  return track.Clone()
}

func (track *RegionTrack) Equals(other *RegionTrack) bool {
  if other == nil || track.Sequence != other.Sequence || len(track.Regions) != len(other.Regions) {
    return false
  }
  for i := range track.Regions {
    if !track.Regions[i].Equals(other.Regions[i]) {
      return false
    }
  }
  return true
}

func (track *RegionTrack) EqualsTrack(other Track) bool {
  if t, ok := other.(*RegionTrack); ok {
    return track.Equals(t)
  }
  return false
}

/* access methods
 * -------------------------------------------------------------------------- */

func (track *RegionTrack) GetName() string {
  return track.Name
}

func (track *RegionTrack) GetSequence() Sequence {
  return track.Sequence
}

func (track *RegionTrack) Kind() TrackKind {
  return RegionKind
}

// Number of positions covered by the track.
func (track *RegionTrack) Size() int {
  return track.Sequence.Length()
}

func (track *RegionTrack) Length() int {
  return len(track.Regions)
}

// Genomic interval of a region.
func (track *RegionTrack) GenomicRange(i int) Range {
  return track.Regions[i].Range().Shift(track.Sequence.Start)
}

// Append a region and return its index. The region is clipped to the
// sequence.
func (track *RegionTrack) Add(r Region) (int, error) {
  n := track.Sequence.Length()
  if r.To < 0 || r.From >= n || r.From > r.To {
    return -1, fmt.Errorf("region [%d, %d] is outside of sequence `%s'", r.From, r.To, track.Sequence.Name)
  }
  r.From = iMax(r.From, 0)
  r.To   = iMin(r.To, n-1)
  if len(r.Children) > 0 {
    return -1, fmt.Errorf("regions must be added before they can be linked")
  }
  r.Parent = -1
  track.Regions = append(track.Regions, r)
  return len(track.Regions)-1, nil
}

// Link region child as part of region parent. A region has at most one
// parent and links must not form cycles.
func (track *RegionTrack) AddChild(parent int, slot string, child int) error {
  n := len(track.Regions)
  if parent < 0 || parent >= n || child < 0 || child >= n {
    return fmt.Errorf("AddChild(): index out of range")
  }
  if track.Regions[child].Parent != -1 {
    return fmt.Errorf("AddChild(): region %d already has a parent", child)
  }
  for i := parent; i != -1; i = track.Regions[i].Parent {
    if i == child {
      return fmt.Errorf("AddChild(): linking region %d to %d creates a cycle", child, parent)
    }
  }
  if _, ok := track.Child(parent, slot); ok {
    return fmt.Errorf("AddChild(): slot `%s' of region %d is already in use", slot, parent)
  }
  track.Regions[parent].Children = append(track.Regions[parent].Children, RegionChild{slot, child})
  track.Regions[child ].Parent   = parent
  return nil
}

func (track *RegionTrack) Child(parent int, slot string) (int, bool) {
  for _, c := range track.Regions[parent].Children {
    if c.Slot == slot {
      return c.Index, true
    }
  }
  return -1, false
}

// Indices of all regions that overlap a genomic position, in storage
// order.
func (track *RegionTrack) RegionsOverlapping(position int) []int {
  p := track.Sequence.Relative(position)
  r := []int{}
  for i := range track.Regions {
    if track.Regions[i].From <= p && p <= track.Regions[i].To {
      r = append(r, i)
    }
  }
  return r
}

// Indices of all regions that overlap the genomic interval q, in storage
// order.
func (track *RegionTrack) RegionsOverlappingRange(q Range) []int {
  q = q.Shift(-track.Sequence.Start)
  r := []int{}
  for i := range track.Regions {
    if track.Regions[i].Range().Overlaps(q) {
      r = append(r, i)
    }
  }
  return r
}
