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

// Renderer for DNA sequences. Bases are drawn as letters if there is
// enough space and as colored boxes otherwise. The reverse orientation
// shows the complementary strand.
type SequenceRenderer struct {
  Name string
}

func (obj SequenceRenderer) Feature() string {
  return obj.Name
}

func (obj SequenceRenderer) Kind() TrackKind {
  return SequenceKind
}

func (obj SequenceRenderer) Height(ctx *RenderContext) int {
  return ctx.Settings.Feature(obj.Name).Height
}

/* -------------------------------------------------------------------------- */

func (obj SequenceRenderer) DrawBackground(canvas Canvas, ctx *RenderContext) {
  drawSegmentBackground(canvas, ctx, ctx.Settings.Feature(obj.Name))
}

func (obj SequenceRenderer) DrawVisibleSegment(canvas Canvas, ctx *RenderContext) {
  track, ok := lookupSequenceTrack(ctx, obj.Name)
  if !ok {
    return
  }
  alphabet    := NucleotideAlphabet{}
  orientation := ctx.Mapper.Viewport.Orientation
  top         := ctx.Top + 1
  bottom      := ctx.Top + ctx.Height - 1

  if ctx.Optimize {
    for _, col := range ctx.Mapper.Columns() {
      b := displayBase(alphabet, track.At(col.Range.Center()), orientation)
      canvas.FillRect(image.Rect(col.X, top, col.X+1, bottom), ctx.Settings.BaseColor(b))
    }
    return
  }
  letters := ctx.Scale() >= ctx.Settings.LetterThreshold
  visible := ctx.Mapper.VisibleRange()
  last    := -1
  for p := visible.From; p <= visible.To; p++ {
    x0, x1 := ctx.Mapper.PixelRange(p)
    if x0 == last {
      continue
    }
    last = x0
    b := displayBase(alphabet, track.At(p), orientation)
    c := ctx.Settings.BaseColor(b)
    if letters {
      w := canvas.TextWidth(string([]byte{b}))
      x := x0 + (x1 - x0 + 1 - w)/2
      y := ctx.Top + (ctx.Height + canvas.TextHeight())/2 - 2
      canvas.DrawText(x, y, string([]byte{b}), c)
    } else {
      canvas.FillRect(image.Rect(x0, top, x1+1, bottom), c)
    }
  }
}

// Draw the edit cursor.
func (obj SequenceRenderer) DrawOverlay(canvas Canvas, ctx *RenderContext) {
  if !ctx.HasCursor || !ctx.Mapper.VisibleRange().Contains(ctx.Cursor) {
    return
  }
  x0, x1 := ctx.Mapper.PixelRange(ctx.Cursor)
  fs     := ctx.Settings.Feature(obj.Name)
  canvas.StrokeRect(image.Rect(x0, ctx.Top, x1+1, ctx.Top+ctx.Height), fs.Secondary)
}
