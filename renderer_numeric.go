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
import "math"

/* -------------------------------------------------------------------------- */

// Bar graph renderer for numeric tracks.
type NumericRenderer struct {
  Name string
}

func (obj NumericRenderer) Feature() string {
  return obj.Name
}

func (obj NumericRenderer) Kind() TrackKind {
  return NumericKind
}

func (obj NumericRenderer) Height(ctx *RenderContext) int {
  return ctx.Settings.Feature(obj.Name).Height
}

/* -------------------------------------------------------------------------- */

// Vertical layout of the track. If the range is scaled per sequence, the
// minimum and maximum are taken from the data. The layout is computed once
// per render context.
func (obj NumericRenderer) Layout(ctx *RenderContext, track *NumericTrack) BaselineLayout {
  if c := ctx.layout; c != nil && c.track == track && c.height == ctx.Height {
    return c.layout
  }
  layout    := obj.computeLayout(ctx, track)
  ctx.layout = &cachedLayout{track, ctx.Height, layout}
  return layout
}

func (obj NumericRenderer) computeLayout(ctx *RenderContext, track *NumericTrack) BaselineLayout {
  fs  := ctx.Settings.Feature(obj.Name)
  min := fs.Min
  max := fs.Max
  if fs.ScalePerSequence && track != nil {
    if a, b := track.Range(); !math.IsNaN(a) && !math.IsNaN(b) {
      min = math.Min(a, fs.Baseline)
      max = math.Max(b, fs.Baseline)
    }
  }
  if max < min {
    min, max = max, min
  }
  return NewBaselineLayout(ctx.Height, min, max, fs.Baseline, fs.BaselineIndependent)
}

// Value that represents the pixel column x. If the column covers more than
// a single base the configured sampler is used.
func (obj NumericRenderer) ColumnValue(ctx *RenderContext, track *NumericTrack, x int) (float64, bool) {
  r, ok := ctx.Mapper.GenomicRange(x)
  if !ok {
    return math.NaN(), false
  }
  seq := track.Sequence
  if r.Length() == 1 {
    return track.At(r.From), true
  }
  return ctx.Settings.Sampler.RepresentativeValue(track, seq.Relative(r.From), seq.Relative(r.To)), true
}

/* -------------------------------------------------------------------------- */

func (obj NumericRenderer) DrawBackground(canvas Canvas, ctx *RenderContext) {
  fs := ctx.Settings.Feature(obj.Name)
  drawSegmentBackground(canvas, ctx, fs)
  track, _ := lookupNumericTrack(ctx, obj.Name)
  layout   := obj.Layout(ctx, track)
  if layout.HasBaseline {
    if r, ok := ctx.SegmentRect(); ok {
      y := ctx.Top + layout.BaselineRow()
      canvas.FillRect(image.Rect(r.Min.X, y, r.Max.X, y+1), fs.BaselineColor)
    }
  }
}

func (obj NumericRenderer) DrawVisibleSegment(canvas Canvas, ctx *RenderContext) {
  track, ok := lookupNumericTrack(ctx, obj.Name)
  if !ok {
    return
  }
  fs     := ctx.Settings.Feature(obj.Name)
  layout := obj.Layout(ctx, track)

  if fs.GraphType == GraphDNA {
    if obj.drawLetters(canvas, ctx, track, fs, layout) {
      return
    }
  }
  if ctx.Optimize {
    // one iteration per pixel column
    for _, col := range ctx.Mapper.Columns() {
      v := ctx.Settings.Sampler.RepresentativeValue(track,
        track.Sequence.Relative(col.Range.From),
        track.Sequence.Relative(col.Range.To))
      obj.drawBar(canvas, ctx, fs, layout, col.X, col.X, v)
    }
    return
  }
  visible := ctx.Mapper.VisibleRange()
  last    := math.MinInt
  for p := visible.From; p <= visible.To; p++ {
    x0, x1 := ctx.Mapper.PixelRange(p)
    if ctx.Scale() < 1.0 {
      // several bases share this column
      if x0 == last {
        continue
      }
      last = x0
      if v, ok := obj.ColumnValue(ctx, track, x0); ok {
        obj.drawBar(canvas, ctx, fs, layout, x0, x0, v)
      }
    } else {
      obj.drawBar(canvas, ctx, fs, layout, x0, x1, track.At(p))
    }
  }
}

// Draw a bar covering columns [x0, x1]. The fractional part of the bar
// height is drawn as one additional row with a color between background
// and foreground.
func (obj NumericRenderer) drawBar(canvas Canvas, ctx *RenderContext, fs FeatureSettings, layout BaselineLayout, x0, x1 int, value float64) {
  if math.IsNaN(value) {
    return
  }
  h    := layout.BarHeight(value)
  base := ctx.Top + layout.BaselineRow()
  full := int(math.Floor(math.Abs(h)))
  frac := math.Abs(h) - float64(full)
  if h >= 0.0 {
    if full > 0 {
      canvas.FillRect(image.Rect(x0, base-full, x1+1, base), fs.Foreground)
    }
    if frac > 0.0 && full < layout.Above {
      y := base - full - 1
      canvas.FillRect(image.Rect(x0, y, x1+1, y+1), blendColor(fs.Background, fs.Foreground, frac))
    }
  } else {
    if full > 0 {
      canvas.FillRect(image.Rect(x0, base+1, x1+1, base+1+full), fs.Secondary)
    }
    if frac > 0.0 && full < layout.Below {
      y := base + 1 + full
      canvas.FillRect(image.Rect(x0, y, x1+1, y+1), blendColor(fs.Background, fs.Secondary, frac))
    }
  }
}

// Draw the reference bases with heights given by the track values. Returns
// false if the plain bar graph must be used instead.
func (obj NumericRenderer) drawLetters(canvas Canvas, ctx *RenderContext, track *NumericTrack, fs FeatureSettings, layout BaselineLayout) bool {
  if ctx.Optimize || ctx.Scale() < ctx.Settings.LetterThreshold {
    return false
  }
  if fs.ReferenceTrack == "" {
    return false
  }
  ref, ok := ctx.Source.Lookup(fs.ReferenceTrack, ctx.Mapper.Sequence.Name)
  if !ok {
    ctx.Logger.Printf(2, "reference track `%s' not available, drawing bars\n", fs.ReferenceTrack)
    return false
  }
  seq, ok := ref.(*SequenceTrack)
  if !ok {
    reportMismatch(ctx, fs.ReferenceTrack, SequenceKind, ref)
    return false
  }
  alphabet := NucleotideAlphabet{}
  visible  := ctx.Mapper.VisibleRange()
  base     := ctx.Top + layout.BaselineRow()
  for p := visible.From; p <= visible.To; p++ {
    v := track.At(p)
    if math.IsNaN(v) {
      continue
    }
    h := iRound(layout.BarHeight(v))
    if h == 0 {
      continue
    }
    x0, x1 := ctx.Mapper.PixelRange(p)
    letter := displayBase(alphabet, seq.At(p), ctx.Mapper.Viewport.Orientation)
    if h > 0 {
      canvas.DrawLetter(image.Rect(x0, base-h, x1+1, base), letter, ctx.Settings.BaseColor(letter))
    } else {
      canvas.DrawLetter(image.Rect(x0, base+1, x1+1, base+1-h), letter, ctx.Settings.BaseColor(letter))
    }
  }
  return true
}

/* -------------------------------------------------------------------------- */

// Outline the top of every bar, only used at high zoom levels.
func (obj NumericRenderer) DrawOverlay(canvas Canvas, ctx *RenderContext) {
  if ctx.Scale() < ctx.Settings.OverlayThreshold {
    return
  }
  track, ok := lookupNumericTrack(ctx, obj.Name)
  if !ok {
    return
  }
  fs      := ctx.Settings.Feature(obj.Name)
  layout  := obj.Layout(ctx, track)
  base    := ctx.Top + layout.BaselineRow()
  visible := ctx.Mapper.VisibleRange()
  for p := visible.From; p <= visible.To; p++ {
    v := track.At(p)
    if math.IsNaN(v) {
      continue
    }
    h := iRound(layout.BarHeight(v))
    x0, x1 := ctx.Mapper.PixelRange(p)
    switch {
    case h > 0:
      canvas.DrawLine(x0, base-h, x1, base-h, darkerColor(fs.Foreground))
    case h < 0:
      canvas.DrawLine(x0, base-h, x1, base-h, darkerColor(fs.Secondary))
    }
  }
}
