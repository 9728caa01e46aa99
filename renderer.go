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

/* -------------------------------------------------------------------------- */

// Everything a renderer needs to paint one track for one frame.
type RenderContext struct {
  Mapper    CoordinateMapper
  Top       int
  Height    int
  Settings  *Settings
  Source    TrackSource
  Filter    VisibilityFilter
  Logger    *Logger
  // render once per pixel column instead of once per base
  Optimize  bool
  // genomic position of the edit cursor
  Cursor    int
  HasCursor bool
  // numeric layout of the current frame
  layout    *cachedLayout
}

type cachedLayout struct {
  track  *NumericTrack
  height int
  layout BaselineLayout
}

func NewRenderContext(mapper CoordinateMapper, settings *Settings, source TrackSource, logger *Logger) *RenderContext {
  return &RenderContext{
    Mapper  : mapper,
    Settings: settings,
    Source  : source,
    Filter  : VisibilityFilter{Types: settings.Types},
    Logger  : logger,
    Optimize: mapper.Viewport.Scale < settings.OptimizationThreshold }
}

// Pixel rectangle of the track.
func (ctx *RenderContext) Rect() image.Rectangle {
  return image.Rect(ctx.Mapper.OriginX, ctx.Top, ctx.Mapper.OriginX + ctx.Mapper.Width(), ctx.Top + ctx.Height)
}

func (ctx *RenderContext) Scale() float64 {
  return ctx.Mapper.Viewport.Scale
}

// Pixel rectangle of the visible part of the sequence.
func (ctx *RenderContext) SegmentRect() (image.Rectangle, bool) {
  r := ctx.Mapper.VisibleRange()
  if r.IsEmpty() {
    return image.Rectangle{}, false
  }
  x0, x1 := ctx.Mapper.PixelSpan(r)
  return image.Rect(x0, ctx.Top, x1+1, ctx.Top+ctx.Height), true
}

/* -------------------------------------------------------------------------- */

// Renderer strategy for one kind of track. Renderers never fail during a
// paint cycle, missing or mismatching data results in drawing less.
type TrackRenderer interface {
  Feature           ()                              string
  Kind              ()                              TrackKind
  // preferred height of the track in pixels
  Height            (ctx *RenderContext)            int
  DrawBackground    (canvas Canvas, ctx *RenderContext)
  DrawVisibleSegment(canvas Canvas, ctx *RenderContext)
  DrawOverlay       (canvas Canvas, ctx *RenderContext)
}

func NewTrackRenderer(kind TrackKind, feature string) TrackRenderer {
  switch kind {
  case RegionKind:
    return RegionRenderer{feature}
  case SequenceKind:
    return SequenceRenderer{feature}
  default:
    return NumericRenderer{feature}
  }
}

// Draw background, visible segment and, if the scale permits, the
// overlay.
func RenderTrack(renderer TrackRenderer, canvas Canvas, ctx *RenderContext) {
  renderer.DrawBackground    (canvas, ctx)
  renderer.DrawVisibleSegment(canvas, ctx)
  if ctx.Scale() >= ctx.Settings.OverlayThreshold || ctx.HasCursor {
    renderer.DrawOverlay(canvas, ctx)
  }
}

/* -------------------------------------------------------------------------- */

func lookupTrack(ctx *RenderContext, feature string) (Track, bool) {
  if ctx.Source == nil {
    return nil, false
  }
  track, ok := ctx.Source.Lookup(feature, ctx.Mapper.Sequence.Name)
  if !ok {
    ctx.Logger.Printf(2, "no data for track `%s' on sequence `%s'\n", feature, ctx.Mapper.Sequence.Name)
  }
  return track, ok
}

func reportMismatch(ctx *RenderContext, feature string, expected TrackKind, track Track) {
  ctx.Logger.Once("mismatch:"+feature+":"+ctx.Mapper.Sequence.Name,
    "track `%s' on sequence `%s' contains %v data, expected %v data\n",
    feature, ctx.Mapper.Sequence.Name, track.Kind(), expected)
}

func lookupNumericTrack(ctx *RenderContext, feature string) (*NumericTrack, bool) {
  track, ok := lookupTrack(ctx, feature)
  if !ok {
    return nil, false
  }
  if t, ok := track.(*NumericTrack); ok {
    return t, true
  }
  reportMismatch(ctx, feature, NumericKind, track)
  return nil, false
}

func lookupRegionTrack(ctx *RenderContext, feature string) (*RegionTrack, bool) {
  track, ok := lookupTrack(ctx, feature)
  if !ok {
    return nil, false
  }
  if t, ok := track.(*RegionTrack); ok {
    return t, true
  }
  reportMismatch(ctx, feature, RegionKind, track)
  return nil, false
}

func lookupSequenceTrack(ctx *RenderContext, feature string) (*SequenceTrack, bool) {
  track, ok := lookupTrack(ctx, feature)
  if !ok {
    return nil, false
  }
  if t, ok := track.(*SequenceTrack); ok {
    return t, true
  }
  reportMismatch(ctx, feature, SequenceKind, track)
  return nil, false
}

/* -------------------------------------------------------------------------- */

func drawSegmentBackground(canvas Canvas, ctx *RenderContext, fs FeatureSettings) {
  if r, ok := ctx.SegmentRect(); ok {
    canvas.FillRect(r, fs.Background)
  }
}
