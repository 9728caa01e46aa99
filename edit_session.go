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

import "errors"
import "fmt"

/* -------------------------------------------------------------------------- */

var ErrSessionActive = errors.New("edit session is already active")

type EditState int

const (
  EditIdle EditState = iota
  EditActive
  EditCommitted
  EditDiscarded
)

func (state EditState) String() string {
  switch state {
  case EditIdle:      return "idle"
  case EditActive:    return "active"
  case EditCommitted: return "committed"
  case EditDiscarded: return "discarded"
  default:            return "invalid"
  }
}

/* -------------------------------------------------------------------------- */

// Notification sent to the host after a commit. Old is the track that was
// replaced, New the edited copy that is now canonical.
type TrackUpdate struct {
  Feature  string
  Sequence string
  Old      Track
  New      Track
}

type UpdateNotifier func(update TrackUpdate)

/* -------------------------------------------------------------------------- */

// Edit buffer for a single gesture. While a session is active all reads of
// the edited track through the session return the buffer, the canonical
// track in the store stays untouched until the buffer is committed.
type EditSession struct {
  Store      *TrackStore
  Notify     UpdateNotifier
  state      EditState
  original   Track
  buffer     Track
  // previous pointer position of a paint gesture
  lastAnchor int
  lastValue  float64
  lastBase   byte
  hasAnchor  bool
}

func NewEditSession(store *TrackStore, notify UpdateNotifier) *EditSession {
  return &EditSession{Store: store, Notify: notify}
}

/* -------------------------------------------------------------------------- */

func (session *EditSession) State() EditState {
  return session.state
}

func (session *EditSession) IsActive() bool {
  return session.state == EditActive
}

// The edit buffer, nil if no session is active.
func (session *EditSession) Buffer() Track {
  if session.state != EditActive {
    return nil
  }
  return session.buffer
}

// Track lookup that redirects the edited track to the buffer.
func (session *EditSession) Lookup(feature, seqname string) (Track, bool) {
  if session.state == EditActive &&
    session.buffer.GetName() == feature && session.buffer.GetSequence().Name == seqname {
    return session.buffer, true
  }
  return session.Store.Lookup(feature, seqname)
}

/* transitions
 * -------------------------------------------------------------------------- */

// Start a gesture on a track by cloning its current values into a private
// buffer. Starting a gesture while another one is active is an error.
func (session *EditSession) Begin(feature, seqname string) error {
  if session.state == EditActive {
    return ErrSessionActive
  }
  track, err := session.Store.Get(feature, seqname)
  if err != nil {
    return err
  }
  session.original  = track
  session.buffer    = track.CloneTrack()
  session.state     = EditActive
  session.hasAnchor = false
  return nil
}

// Replace the canonical track by the buffer if the buffer differs from the
// original data and notify the host. An unchanged buffer is discarded.
// Returns true if the store was modified. Calling Commit without an active
// session has no effect.
func (session *EditSession) Commit() bool {
  if session.state != EditActive {
    return false
  }
  buffer   := session.buffer
  original := session.original
  session.release()
  if buffer.EqualsTrack(original) {
    session.state = EditDiscarded
    return false
  }
  old, err := session.Store.Replace(buffer)
  if err != nil {
    session.state = EditDiscarded
    return false
  }
  session.state = EditCommitted
  if session.Notify != nil {
    session.Notify(TrackUpdate{buffer.GetName(), buffer.GetSequence().Name, old, buffer})
  }
  return true
}

// Drop the buffer without touching the canonical track. Calling Discard
// without an active session has no effect.
func (session *EditSession) Discard() {
  if session.state != EditActive {
    return
  }
  session.release()
  session.state = EditDiscarded
}

func (session *EditSession) release() {
  session.buffer    = nil
  session.original  = nil
  session.hasAnchor = false
}

/* gestures
 * -------------------------------------------------------------------------- */

func (session *EditSession) numericBuffer() (*NumericTrack, error) {
  if session.state != EditActive {
    return nil, fmt.Errorf("no active edit session")
  }
  if t, ok := session.buffer.(*NumericTrack); ok {
    return t, nil
  }
  return nil, fmt.Errorf("track `%s' is not numeric", session.buffer.GetName())
}

func (session *EditSession) sequenceBuffer() (*SequenceTrack, error) {
  if session.state != EditActive {
    return nil, fmt.Errorf("no active edit session")
  }
  if t, ok := session.buffer.(*SequenceTrack); ok {
    return t, nil
  }
  return nil, fmt.Errorf("track `%s' is not a sequence track", session.buffer.GetName())
}

func (session *EditSession) regionBuffer() (*RegionTrack, error) {
  if session.state != EditActive {
    return nil, fmt.Errorf("no active edit session")
  }
  if t, ok := session.buffer.(*RegionTrack); ok {
    return t, nil
  }
  return nil, fmt.Errorf("track `%s' is not a region track", session.buffer.GetName())
}

// Positions strictly between the previous anchor and p.
func (session *EditSession) between(p int, f func(q int, t float64)) {
  if !session.hasAnchor || session.lastAnchor == p {
    return
  }
  a := session.lastAnchor
  n := iAbs(p - a)
  s := 1
  if p < a {
    s = -1
  }
  for k := 1; k < n; k++ {
    f(a + s*k, float64(k)/float64(n))
  }
}

// Draw the signal at screen position (x, row), where row is relative to the
// top of the track. All positions of the pixel column are set, gaps to the
// previous pointer position are filled by linear interpolation.
func (session *EditSession) PaintValue(mapper CoordinateMapper, layout BaselineLayout, x, row int) error {
  track, err := session.numericBuffer()
  if err != nil {
    return err
  }
  r, ok := mapper.GenomicRange(x)
  if !ok {
    return nil
  }
  value  := layout.ValueAtRow(row)
  anchor := r.Center()
  v0     := session.lastValue
  session.between(anchor, func(q int, t float64) {
    if !r.Contains(q) {
      track.Set(q, v0 + t*(value - v0))
    }
  })
  for p := r.From; p <= r.To; p++ {
    track.Set(p, value)
  }
  session.lastAnchor = anchor
  session.lastValue  = value
  session.hasAnchor  = true
  return nil
}

// Paint a base at screen offset x. Gaps to the previous pointer position
// are filled with the base painted there.
func (session *EditSession) PaintBase(mapper CoordinateMapper, x int, base byte) error {
  track, err := session.sequenceBuffer()
  if err != nil {
    return err
  }
  if !(NucleotideAlphabet{}).IsValid(base) {
    return fmt.Errorf("PaintBase(): `%c' is not a valid base", base)
  }
  r, ok := mapper.GenomicRange(x)
  if !ok {
    return nil
  }
  anchor := r.Center()
  b0     := session.lastBase
  session.between(anchor, func(q int, t float64) {
    if r.Contains(q) {
      return
    }
    if t < 0.5 {
      track.Set(q, b0)
    } else {
      track.Set(q, base)
    }
  })
  for p := r.From; p <= r.To; p++ {
    track.Set(p, base)
  }
  session.lastAnchor = anchor
  session.lastBase   = base
  session.hasAnchor  = true
  return nil
}

// Set a single base at a genomic position, used for text-style editing.
func (session *EditSession) SetBase(position int, base byte) error {
  track, err := session.sequenceBuffer()
  if err != nil {
    return err
  }
  if !(NucleotideAlphabet{}).IsValid(base) {
    return fmt.Errorf("SetBase(): `%c' is not a valid base", base)
  }
  if !track.Set(position, base) {
    return fmt.Errorf("SetBase(): position %d is outside of sequence `%s'", position, track.Sequence.Name)
  }
  return nil
}

// Add a region covering the box drawn between the screen offsets x0 and
// x1. Position, type, score and strand are taken from the template, the
// interval is replaced. Returns the index of the new region in the buffer.
func (session *EditSession) DrawRegion(mapper CoordinateMapper, x0, x1 int, template Region) (int, error) {
  track, err := session.regionBuffer()
  if err != nil {
    return -1, err
  }
  a, ok1 := mapper.GenomicRange(x0)
  b, ok2 := mapper.GenomicRange(x1)
  if !ok1 || !ok2 {
    return -1, fmt.Errorf("DrawRegion(): box is outside of sequence `%s'", track.Sequence.Name)
  }
  r := template.Clone()
  r.From     = track.Sequence.Relative(iMin(a.From, b.From))
  r.To       = track.Sequence.Relative(iMax(a.To, b.To))
  r.Children = nil
  if r.Strand != '+' && r.Strand != '-' {
    r.Strand = '*'
  }
  return track.Add(r)
}
