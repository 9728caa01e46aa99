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

// A panel shows several tracks of one sequence stacked vertically.
type Panel struct {
  Sequence  Sequence
  Viewport  Viewport
  Renderers []TrackRenderer
  Settings  *Settings
  Logger    *Logger
  // predicate applied to all region tracks in addition to the type set
  Predicate RegionPredicate
  OriginX   int
  OriginY   int
  Spacing   int
  Cursor    int
  HasCursor bool
}

func NewPanel(sequence Sequence, viewport Viewport, settings *Settings, logger *Logger) *Panel {
  return &Panel{
    Sequence: sequence,
    Viewport: viewport,
    Settings: settings,
    Logger  : logger,
    Spacing : 2 }
}

func (panel *Panel) AddTrack(kind TrackKind, feature string) TrackRenderer {
  r := NewTrackRenderer(kind, feature)
  panel.Renderers = append(panel.Renderers, r)
  return r
}

func (panel *Panel) Mapper() CoordinateMapper {
  return NewCoordinateMapper(panel.Sequence, panel.Viewport, panel.OriginX)
}

/* -------------------------------------------------------------------------- */

// Render contexts of all tracks for the current frame. Heights are
// recomputed on every call, since expanded region tracks depend on the
// visible regions.
func (panel *Panel) Contexts(source TrackSource) []*RenderContext {
  result := make([]*RenderContext, len(panel.Renderers))
  top    := panel.OriginY
  for i, r := range panel.Renderers {
    ctx := NewRenderContext(panel.Mapper(), panel.Settings, source, panel.Logger)
    ctx.Filter.Predicate = panel.Predicate
    ctx.Top       = top
    ctx.Cursor    = panel.Cursor
    ctx.HasCursor = panel.HasCursor && r.Kind() == SequenceKind
    ctx.Height    = iMax(1, r.Height(ctx))
    result[i]     = ctx
    top          += ctx.Height + panel.Spacing
  }
  return result
}

// Size of the panel in pixels.
func (panel *Panel) Size(source TrackSource) image.Point {
  contexts := panel.Contexts(source)
  h := 0
  if n := len(contexts); n > 0 {
    h = contexts[n-1].Top + contexts[n-1].Height - panel.OriginY
  }
  return image.Pt(panel.Mapper().Width(), h)
}

func (panel *Panel) Render(canvas Canvas, source TrackSource) {
  for i, ctx := range panel.Contexts(source) {
    RenderTrack(panel.Renderers[i], canvas, ctx)
  }
}

// Track under the screen coordinate y.
func (panel *Panel) TrackAt(source TrackSource, y int) (TrackRenderer, *RenderContext, bool) {
  for i, ctx := range panel.Contexts(source) {
    if y >= ctx.Top && y < ctx.Top+ctx.Height {
      return panel.Renderers[i], ctx, true
    }
  }
  return nil, nil, false
}

// Tooltip text for the screen position (x, y).
func (panel *Panel) Tooltip(source TrackSource, x, y int) string {
  renderer, ctx, ok := panel.TrackAt(source, y)
  if !ok {
    return ""
  }
  switch r := renderer.(type) {
  case NumericRenderer:
    return NumericTooltip(ctx, r, x)
  case RegionRenderer:
    track, ok := lookupRegionTrack(ctx, r.Name)
    if !ok {
      return ""
    }
    if p, ok := ctx.Mapper.PositionAt(x); ok {
      return RegionTooltip(track, ctx.Filter, p)
    }
  case SequenceRenderer:
    track, ok := lookupSequenceTrack(ctx, r.Name)
    if !ok {
      return ""
    }
    if g, ok := ctx.Mapper.GenomicRange(x); ok && g.Length() == 1 {
      return string([]byte{track.At(g.From)})
    }
  }
  return ""
}
