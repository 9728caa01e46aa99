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
import "fmt"
import "math"
import "sort"
import "strings"

/* -------------------------------------------------------------------------- */

func writeRegionDescription(buffer *bytes.Buffer, track *RegionTrack, i int, indent string, depth int) {
  r := track.Regions[i]
  g := track.GenomicRange(i)
  fmt.Fprintf(buffer, "%s%s %d-%d score=%g strand=%c", indent, r.Type, g.From, g.To, r.Score, r.Strand)
  if len(r.Properties) > 0 {
    keys := make([]string, 0, len(r.Properties))
    for k := range r.Properties {
      keys = append(keys, k)
    }
    sort.Strings(keys)
    for _, k := range keys {
      fmt.Fprintf(buffer, " %s=%s", k, r.Properties[k])
    }
  }
  buffer.WriteString("\n")
  // links are acyclic if created with AddChild, the depth limit guards
  // against manually constructed tracks
  if depth > 8 {
    return
  }
  for _, child := range r.Children {
    fmt.Fprintf(buffer, "%s  %s:\n", indent, child.Slot)
    writeRegionDescription(buffer, track, child.Index, indent+"    ", depth+1)
  }
}

// Description of all visible regions at a genomic position. At most
// MaxTooltipRegions regions are described, the remaining ones are only
// counted. Returns an empty string if no region is visible.
func RegionTooltip(track *RegionTrack, filter VisibilityFilter, position int) string {
  summary := filter.OverlapSummaryAt(track, position)
  if summary.Total() == 0 {
    return ""
  }
  var buffer bytes.Buffer
  for _, i := range summary.Indices {
    writeRegionDescription(&buffer, track, i, "", 0)
  }
  if summary.More > 0 {
    fmt.Fprintf(&buffer, "+%d more\n", summary.More)
  }
  return strings.TrimRight(buffer.String(), "\n")
}

// Description of the numeric value shown at screen offset x.
func NumericTooltip(ctx *RenderContext, renderer NumericRenderer, x int) string {
  track, ok := lookupNumericTrack(ctx, renderer.Name)
  if !ok {
    return ""
  }
  r, ok := ctx.Mapper.GenomicRange(x)
  if !ok {
    return ""
  }
  v, _ := renderer.ColumnValue(ctx, track, x)
  if math.IsNaN(v) {
    return ""
  }
  if r.Length() == 1 {
    return fmt.Sprintf("%s %s:%d %g", track.Name, track.Sequence.Name, r.From, v)
  }
  return fmt.Sprintf("%s %s:%d-%d %g (%v)", track.Name, track.Sequence.Name, r.From, r.To, v, ctx.Settings.Sampler.Mode)
}
