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

import "sort"

/* -------------------------------------------------------------------------- */

// Maximum number of regions that are described individually in a tooltip.
const MaxTooltipRegions = 15

/* -------------------------------------------------------------------------- */

// Region types that are currently hidden. All types are visible by
// default. A single instance is shared by all region renderers.
type TypeVisibility struct {
  hidden map[string]bool
}

func NewTypeVisibility() *TypeVisibility {
  return &TypeVisibility{make(map[string]bool)}
}

func (obj *TypeVisibility) IsVisible(regionType string) bool {
  if obj == nil {
    return true
  }
  return !obj.hidden[regionType]
}

func (obj *TypeVisibility) SetVisible(regionType string, visible bool) {
  if visible {
    delete(obj.hidden, regionType)
  } else {
    obj.hidden[regionType] = true
  }
}

func (obj *TypeVisibility) Toggle(regionType string) {
  obj.SetVisible(regionType, !obj.IsVisible(regionType))
}

// Sorted list of hidden types.
func (obj *TypeVisibility) Hidden() []string {
  r := []string{}
  for t := range obj.hidden {
    r = append(r, t)
  }
  sort.Strings(r)
  return r
}

/* -------------------------------------------------------------------------- */

type RegionPredicate func(r Region) bool

// Accept only regions with a score of at least min.
func ScoreThreshold(min float64) RegionPredicate {
  return func(r Region) bool {
    return r.Score >= min
  }
}

/* -------------------------------------------------------------------------- */

// Decides which regions are visible. Visibility is evaluated on every
// call, since both the type set and the predicate may change between two
// frames.
type VisibilityFilter struct {
  Types     *TypeVisibility
  Predicate RegionPredicate
}

func (filter VisibilityFilter) IsVisible(r Region) bool {
  if !filter.Types.IsVisible(r.Type) {
    return false
  }
  if filter.Predicate != nil && !filter.Predicate(r) {
    return false
  }
  return true
}

// Remove all invisible regions from a list of indices. The order is
// preserved.
func (filter VisibilityFilter) Filter(track *RegionTrack, indices []int) []int {
  r := indices[:0:0]
  for _, i := range indices {
    if filter.IsVisible(track.Regions[i]) {
      r = append(r, i)
    }
  }
  return r
}

// Indices of all visible regions at a genomic position in storage order.
func (filter VisibilityFilter) VisibleIndicesAt(track *RegionTrack, position int) []int {
  return filter.Filter(track, track.RegionsOverlapping(position))
}

func (filter VisibilityFilter) VisibleRegionsAt(track *RegionTrack, position int) []Region {
  indices := filter.VisibleIndicesAt(track, position)
  r := make([]Region, len(indices))
  for i, j := range indices {
    r[i] = track.Regions[j]
  }
  return r
}

// First visible region at a genomic position. Ties are resolved by storage
// order and not by genomic position.
func (filter VisibilityFilter) FirstVisibleIndexAt(track *RegionTrack, position int) (int, bool) {
  p := track.Sequence.Relative(position)
  for i, r := range track.Regions {
    if r.From <= p && p <= r.To && filter.IsVisible(r) {
      return i, true
    }
  }
  return -1, false
}

func (filter VisibilityFilter) FirstVisibleRegionAt(track *RegionTrack, position int) (Region, bool) {
  if i, ok := filter.FirstVisibleIndexAt(track, position); ok {
    return track.Regions[i], true
  }
  return Region{}, false
}

/* -------------------------------------------------------------------------- */

// Visible regions at a position for display in a tooltip. At most
// MaxTooltipRegions are listed, the rest is only counted.
type OverlapSummary struct {
  Indices []int
  More    int
}

func (s OverlapSummary) Total() int {
  return len(s.Indices) + s.More
}

func (filter VisibilityFilter) OverlapSummaryAt(track *RegionTrack, position int) OverlapSummary {
  indices := filter.VisibleIndicesAt(track, position)
  if len(indices) > MaxTooltipRegions {
    return OverlapSummary{indices[:MaxTooltipRegions], len(indices)-MaxTooltipRegions}
  }
  return OverlapSummary{indices, 0}
}
