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

import "image"
import "image/color"
import "sort"

/* -------------------------------------------------------------------------- */

// Renderer for region tracks. In expanded mode overlapping regions are
// stacked in rows, otherwise they are drawn on top of each other such that
// the first visible region in storage order ends up on top.
type RegionRenderer struct {
  Name string
}

func (obj RegionRenderer) Feature() string {
  return obj.Name
}

func (obj RegionRenderer) Kind() TrackKind {
  return RegionKind
}

func (obj RegionRenderer) Height(ctx *RenderContext) int {
  fs := ctx.Settings.Feature(obj.Name)
  if !fs.Expanded {
    return fs.Height
  }
  track, ok := lookupRegionTrack(ctx, obj.Name)
  if !ok {
    return fs.RowHeight
  }
  _, n := obj.Rows(ctx, track)
  return iMax(1, n)*fs.RowHeight
}

/* -------------------------------------------------------------------------- */

// Visible top-level regions of the viewport in storage order. Nested
// regions are drawn as part of their parent.
func (obj RegionRenderer) visibleRegions(ctx *RenderContext, track *RegionTrack) []int {
  indices := ctx.Filter.Filter(track, track.RegionsOverlappingRange(ctx.Mapper.VisibleRange()))
  r := indices[:0]
  for _, i := range indices {
    if track.Regions[i].Parent == -1 {
      r = append(r, i)
    }
  }
  return r
}

// Assign visible regions to rows for the expanded mode. Regions are placed
// greedily in order of their start position into the first row that is
// free at this position. Returns the row of each region and the number of
// rows.
func (obj RegionRenderer) Rows(ctx *RenderContext, track *RegionTrack) (map[int]int, int) {
  indices := obj.visibleRegions(ctx, track)
  sorted  := make([]int, len(indices))
  copy(sorted, indices)
  sort.SliceStable(sorted, func(a, b int) bool {
    return track.Regions[sorted[a]].From < track.Regions[sorted[b]].From
  })
  rows := make(map[int]int, len(sorted))
  ends := []int{}
  for _, i := range sorted {
    r   := track.Regions[i]
    row := -1
    for k, end := range ends {
      if end < r.From {
        row = k
        break
      }
    }
    if row == -1 {
      row  = len(ends)
      ends = append(ends, r.To)
    } else {
      ends[row] = r.To
    }
    rows[i] = row
  }
  return rows, len(ends)
}

func (obj RegionRenderer) rowRect(ctx *RenderContext, fs FeatureSettings, expanded bool, row int) (int, int) {
  if !expanded {
    return ctx.Top, ctx.Height
  }
  return ctx.Top + row*fs.RowHeight, fs.RowHeight
}

/* -------------------------------------------------------------------------- */

func (obj RegionRenderer) DrawBackground(canvas Canvas, ctx *RenderContext) {
  drawSegmentBackground(canvas, ctx, ctx.Settings.Feature(obj.Name))
}

func (obj RegionRenderer) DrawVisibleSegment(canvas Canvas, ctx *RenderContext) {
  track, ok := lookupRegionTrack(ctx, obj.Name)
  if !ok {
    return
  }
  fs := ctx.Settings.Feature(obj.Name)

  var rows map[int]int
  if fs.Expanded {
    rows, _ = obj.Rows(ctx, track)
  }
  if ctx.Optimize {
    obj.drawColumns(canvas, ctx, track, fs, rows)
    return
  }
  indices := obj.visibleRegions(ctx, track)
  // reverse storage order, so that the first region is drawn last
  for k := len(indices)-1; k >= 0; k-- {
    i := indices[k]
    top, height := obj.rowRect(ctx, fs, fs.Expanded, rows[i])
    obj.drawRegion(canvas, ctx, track, i, top, height)
  }
}

// Draw one pixel column at a time, used when zoomed out. Overlaps of all
// columns with the regions are computed in a single sweep.
func (obj RegionRenderer) drawColumns(canvas Canvas, ctx *RenderContext, track *RegionTrack, fs FeatureSettings, rows map[int]int) {
  columns := ctx.Mapper.Columns()
  queries := make([]Range, len(columns))
  for k, col := range columns {
    queries[k] = col.Range
  }
  hits := track.FindOverlaps(queries)
  for k, col := range columns {
    drawn := map[int]bool{}
    for _, i := range hits[k] {
      r := track.Regions[i]
      if r.Parent != -1 || !ctx.Filter.IsVisible(r) {
        continue
      }
      row := rows[i]
      if drawn[row] {
        continue
      }
      drawn[row] = true
      top, height := obj.rowRect(ctx, fs, fs.Expanded, row)
      canvas.FillRect(image.Rect(col.X, top+1, col.X+1, top+height-1), obj.regionColor(ctx, r))
      if !fs.Expanded {
        break
      }
    }
  }
}

func (obj RegionRenderer) regionColor(ctx *RenderContext, r Region) color.RGBA {
  if v, ok := r.GetProperty("color"); ok {
    if c, err := ParseColor(v); err == nil {
      return c
    }
  }
  return ctx.Settings.TypeColor(r.Type)
}

// Draw a region and its visible parts. Parts are drawn inside the box of
// the parent with a smaller height.
func (obj RegionRenderer) drawRegion(canvas Canvas, ctx *RenderContext, track *RegionTrack, i, top, height int) {
  r      := track.Regions[i]
  x0, x1 := ctx.Mapper.PixelSpan(track.GenomicRange(i))
  box    := image.Rect(x0, top+1, x1+1, top+height-1)
  c      := obj.regionColor(ctx, r)
  canvas.FillRect(box, c)
  if box.Dx() >= 3 {
    canvas.StrokeRect(box, darkerColor(c))
  }
  if len(r.Children) == 0 || height < 6 {
    return
  }
  for _, child := range r.Children {
    if !ctx.Filter.IsVisible(track.Regions[child.Index]) {
      continue
    }
    obj.drawRegion(canvas, ctx, track, child.Index, top+height/4, height/2)
  }
}

/* -------------------------------------------------------------------------- */

// Outline regions and mark their strand, only used at high zoom levels.
func (obj RegionRenderer) DrawOverlay(canvas Canvas, ctx *RenderContext) {
  if ctx.Scale() < ctx.Settings.OverlayThreshold {
    return
  }
  track, ok := lookupRegionTrack(ctx, obj.Name)
  if !ok {
    return
  }
  fs := ctx.Settings.Feature(obj.Name)

  var rows map[int]int
  if fs.Expanded {
    rows, _ = obj.Rows(ctx, track)
  }
  for _, i := range obj.visibleRegions(ctx, track) {
    r := track.Regions[i]
    if r.Strand == '*' {
      continue
    }
    top, height := obj.rowRect(ctx, fs, fs.Expanded, rows[i])
    x0, x1 := ctx.Mapper.PixelSpan(track.GenomicRange(i))
    if x1 - x0 < 6 || height < 6 {
      continue
    }
    // an arrow head pointing in the direction of the strand as displayed
    right := (r.Strand == '+') == (ctx.Mapper.Viewport.Orientation == Direct)
    y     := top + height/2
    c     := darkerColor(obj.regionColor(ctx, r))
    if right {
      canvas.DrawLine(x1-4, y-2, x1-2, y, c)
      canvas.DrawLine(x1-2, y, x1-4, y+2, c)
    } else {
      canvas.DrawLine(x0+4, y-2, x0+2, y, c)
      canvas.DrawLine(x0+2, y, x0+4, y+2, c)
    }
  }
}
