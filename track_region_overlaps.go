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

type endPoint struct {
  position int
  isStart  bool
  srcIdx   int
  isQuery  bool
}

/* endPointList
 * -------------------------------------------------------------------------- */

type endPointList []endPoint

func (r endPointList) Len() int {
  return len(r)
}

func (r endPointList) Less(i, j int) bool {
  if r[i].position != r[j].position {
    return r[i].position < r[j].position
  }
  // intervals are closed, hence starts have priority over ends at the
  // same position
  return r[i].isStart && !r[j].isStart
}

func (r endPointList) Swap(i, j int) {
  r[i], r[j] = r[j], r[i]
}

func (r *endPointList) appendRange(from, to, idx int, isQuery bool) {
  *r = append(*r, endPoint{from, true , idx, isQuery})
  *r = append(*r, endPoint{to  , false, idx, isQuery})
}

/* FindOverlaps
 * -------------------------------------------------------------------------- */

// Find all regions that overlap with the given genomic query ranges. For
// each query the indices of overlapping regions are returned in storage
// order. The search is a sweep over all sorted end points.
func (track *RegionTrack) FindOverlaps(queries []Range) [][]int {
  entry := make(endPointList, 0, 2*(len(queries)+len(track.Regions)))
  for i, q := range queries {
    if q.IsEmpty() {
      continue
    }
    entry.appendRange(q.From, q.To, i, true)
  }
  for i := range track.Regions {
    g := track.GenomicRange(i)
    entry.appendRange(g.From, g.To, i, false)
  }
  sort.Stable(entry)

  hits          := make([][]int, len(queries))
  queryList     := make(map[int]struct{})
  subjectList   := make(map[int]struct{})
  for _, r := range entry {
    if r.isQuery {
      if r.isStart {
        queryList[r.srcIdx] = struct{}{}
        // all elements in subjectList overlap with this query
        for j := range subjectList {
          hits[r.srcIdx] = append(hits[r.srcIdx], j)
        }
      } else {
        delete(queryList, r.srcIdx)
      }
    } else {
      if r.isStart {
        subjectList[r.srcIdx] = struct{}{}
        // all elements in queryList overlap with this region
        for i := range queryList {
          hits[i] = append(hits[i], r.srcIdx)
        }
      } else {
        delete(subjectList, r.srcIdx)
      }
    }
  }
  for i := range hits {
    sort.Ints(hits[i])
  }
  return hits
}
