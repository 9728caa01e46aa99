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

//import "fmt"
import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func newTestRegionTrack(t *testing.T, seq Sequence, regions ...Region) *RegionTrack {
  track := NewRegionTrack("regions", seq)
  for _, r := range regions {
    if _, err := track.Add(r); err != nil {
      t.Fatal(err)
    }
  }
  return track
}

/* -------------------------------------------------------------------------- */

func TestRegionTrack1(t *testing.T) {
  track := NewRegionTrack("regions", NewSequence("chr1", 100, 199))

  // regions are clipped to the sequence
  if i, err := track.Add(NewRegion(-10, 5, "a", 0, '+')); err != nil || i != 0 || track.Regions[0].From != 0 {
    t.Error("TestRegionTrack1 failed!")
  }
  if _, err := track.Add(NewRegion(100, 120, "b", 0, '+')); err == nil {
    t.Error("TestRegionTrack1 failed!")
  }
  if track.GenomicRange(0) != (Range{100, 105}) {
    t.Error("TestRegionTrack1 failed!")
  }
  // strands other than + and - are indeterminate
  if r := NewRegion(0, 1, "c", 0, 'x'); r.Strand != '*' || r.Parent != -1 {
    t.Error("TestRegionTrack1 failed!")
  }
}

func TestRegionTrack2(t *testing.T) {
  track := newTestRegionTrack(t, NewSequence("chr1", 0, 999),
    NewRegion(100, 200, "module", 10, '+'),
    NewRegion(110, 120, "motif",   1, '+'),
    NewRegion(150, 160, "motif",   2, '-'))

  if err := track.AddChild(0, "first", 1); err != nil {
    t.Error(err)
  }
  if err := track.AddChild(0, "second", 2); err != nil {
    t.Error(err)
  }
  // a region has at most one parent
  if err := track.AddChild(2, "x", 1); err == nil {
    t.Error("TestRegionTrack2 failed!")
  }
  // links must not form cycles
  if err := track.AddChild(1, "x", 0); err == nil {
    t.Error("TestRegionTrack2 failed!")
  }
  if err := track.AddChild(0, "x", 0); err == nil {
    t.Error("TestRegionTrack2 failed!")
  }
  if err := track.AddChild(0, "x", 7); err == nil {
    t.Error("TestRegionTrack2 failed!")
  }
  if i, ok := track.Child(0, "second"); !ok || i != 2 {
    t.Error("TestRegionTrack2 failed!")
  }
  if track.Regions[1].Parent != 0 || track.Regions[2].Parent != 0 {
    t.Error("TestRegionTrack2 failed!")
  }
  // regions with links cannot be added again
  if _, err := track.Add(track.Regions[0]); err == nil {
    t.Error("TestRegionTrack2 failed!")
  }
}

func TestRegionTrack3(t *testing.T) {
  track := newTestRegionTrack(t, NewSequence("chr1", 0, 999),
    NewRegion(100, 200, "a", 0, '+'))
  track.Regions[0].SetProperty("name", "x")

  clone := track.Clone()
  if !clone.Equals(track) {
    t.Error("TestRegionTrack3 failed!")
  }
  // clones are independent
  clone.Regions[0].SetProperty("name", "y")
  if v, _ := track.Regions[0].GetProperty("name"); v != "x" || clone.Equals(track) {
    t.Error("TestRegionTrack3 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestFindOverlaps1(t *testing.T) {
  track := newTestRegionTrack(t, NewSequence("chr4", 0, 999),
    NewRegion(400, 450, "a", 0, '*'),
    NewRegion(100, 150, "a", 0, '*'),
    NewRegion(300, 350, "a", 0, '*'),
    NewRegion(200, 250, "a", 0, '*'))

  hits := track.FindOverlaps([]Range{
    {100, 150}, {110, 120}, {190, 220}, {340, 360}, {390, 400}, {451, 500}, {0, 999}, EmptyRange()})

  result := [][]int{{1}, {1}, {3}, {2}, {0}, nil, {0, 1, 2, 3}, nil}

  for i := range result {
    if len(hits[i]) != len(result[i]) {
      t.Errorf("TestFindOverlaps1 failed! query %d: %v", i, hits[i])
      continue
    }
    for j := range result[i] {
      if hits[i][j] != result[i][j] {
        t.Errorf("TestFindOverlaps1 failed! query %d: %v", i, hits[i])
      }
    }
  }
}

func TestFindOverlaps2(t *testing.T) {
  // sequence with offset, overlaps are computed on genomic positions
  track := newTestRegionTrack(t, NewSequence("chr4", 1000, 1999),
    NewRegion(0, 9, "a", 0, '*'),
    NewRegion(5, 5, "b", 0, '*'))

  hits := track.FindOverlaps([]Range{{1005, 1005}, {1009, 1010}, {0, 999}})
  if len(hits[0]) != 2 || len(hits[1]) != 1 || hits[1][0] != 0 || len(hits[2]) != 0 {
    t.Error("TestFindOverlaps2 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestVisibilityFilter1(t *testing.T) {
  track := newTestRegionTrack(t, NewSequence("chr1", 0, 999),
    NewRegion(450, 550, "A", 0, '+'),
    NewRegion(480, 520, "B", 0, '+'))

  filter := VisibilityFilter{Types: NewTypeVisibility()}
  filter.Types.SetVisible("B", false)

  regions := filter.VisibleRegionsAt(track, 500)
  if len(regions) != 1 || regions[0].Type != "A" {
    t.Error("TestVisibilityFilter1 failed!")
  }
  // changes of the visibility set are effective immediately
  filter.Types.Toggle("B")
  if len(filter.VisibleRegionsAt(track, 500)) != 2 {
    t.Error("TestVisibilityFilter1 failed!")
  }
  filter.Types.Toggle("A")
  if r, ok := filter.FirstVisibleRegionAt(track, 500); !ok || r.Type != "B" {
    t.Error("TestVisibilityFilter1 failed!")
  }
  if h := filter.Types.Hidden(); len(h) != 1 || h[0] != "A" {
    t.Error("TestVisibilityFilter1 failed!")
  }
}

func TestVisibilityFilter2(t *testing.T) {
  // storage order decides, not the start position
  track := newTestRegionTrack(t, NewSequence("chr1", 0, 999),
    NewRegion(490, 510, "x", 1, '+'),
    NewRegion(100, 900, "y", 5, '+'),
    NewRegion(495, 505, "z", 9, '+'))

  filter := VisibilityFilter{Types: NewTypeVisibility()}
  if i, ok := filter.FirstVisibleIndexAt(track, 500); !ok || i != 0 {
    t.Error("TestVisibilityFilter2 failed!")
  }
  filter.Predicate = ScoreThreshold(3)
  if i, ok := filter.FirstVisibleIndexAt(track, 500); !ok || i != 1 {
    t.Error("TestVisibilityFilter2 failed!")
  }
  if indices := filter.VisibleIndicesAt(track, 500); len(indices) != 2 || indices[0] != 1 || indices[1] != 2 {
    t.Error("TestVisibilityFilter2 failed!")
  }
  if _, ok := filter.FirstVisibleIndexAt(track, 950); ok {
    t.Error("TestVisibilityFilter2 failed!")
  }
  // a nil visibility set shows everything
  if !(VisibilityFilter{}).IsVisible(track.Regions[0]) {
    t.Error("TestVisibilityFilter2 failed!")
  }
}

func TestVisibilityFilter3(t *testing.T) {
  track := NewRegionTrack("regions", NewSequence("chr1", 0, 999))
  for i := 0; i < 20; i++ {
    track.Add(NewRegion(400+i, 600, "a", float64(i), '+'))
  }
  filter  := VisibilityFilter{Types: NewTypeVisibility()}
  summary := filter.OverlapSummaryAt(track, 500)
  if len(summary.Indices) != MaxTooltipRegions || summary.More != 5 || summary.Total() != 20 {
    t.Error("TestVisibilityFilter3 failed!")
  }
  text := RegionTooltip(track, filter, 500)
  if !strings.HasSuffix(text, "+5 more") || strings.Count(text, "\n") != MaxTooltipRegions {
    t.Error("TestVisibilityFilter3 failed!")
  }
  // only visible regions are counted
  filter.Predicate = ScoreThreshold(10)
  if s := filter.OverlapSummaryAt(track, 500); len(s.Indices) != 10 || s.More != 0 {
    t.Error("TestVisibilityFilter3 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestRegionTooltip1(t *testing.T) {
  track := newTestRegionTrack(t, NewSequence("chr1", 1000, 1999),
    NewRegion(100, 200, "module", 2.5, '+'),
    NewRegion(110, 120, "motif",  1,   '-'))
  track.Regions[0].SetProperty("name", "m1")
  track.Regions[0].SetProperty("id",   "7")
  if err := track.AddChild(0, "left", 1); err != nil {
    t.Fatal(err)
  }
  filter := VisibilityFilter{Types: NewTypeVisibility()}

  text := RegionTooltip(track, filter, 1115)
  lines := strings.Split(text, "\n")
  if len(lines) != 4 {
    t.Fatalf("TestRegionTooltip1 failed! %q", text)
  }
  if lines[0] != "module 1100-1200 score=2.5 strand=+ id=7 name=m1" {
    t.Errorf("TestRegionTooltip1 failed! %q", lines[0])
  }
  if lines[1] != "  left:" || lines[2] != "    motif 1110-1120 score=1 strand=-" {
    t.Errorf("TestRegionTooltip1 failed! %q", text)
  }
  if lines[3] != "motif 1110-1120 score=1 strand=-" {
    t.Errorf("TestRegionTooltip1 failed! %q", lines[3])
  }
  if RegionTooltip(track, filter, 1500) != "" {
    t.Error("TestRegionTooltip1 failed!")
  }
}
