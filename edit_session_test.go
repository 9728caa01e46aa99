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
import "bytes"
import "errors"
import "testing"

/* -------------------------------------------------------------------------- */

func newTestStore(t *testing.T, tracks ...Track) *TrackStore {
  store := NewTrackStore()
  for _, track := range tracks {
    if err := store.Add(track); err != nil {
      t.Fatal(err)
    }
  }
  return store
}

func lookupSequence(store *TrackStore, feature, seqname string) string {
  if track, ok := store.Lookup(feature, seqname); ok {
    return track.(*SequenceTrack).String()
  }
  return ""
}

/* -------------------------------------------------------------------------- */

func TestEditSession1(t *testing.T) {
  seq      := NewSequence("chr1", 0, 3)
  track, _ := NewSequenceTrack("dna", seq, []byte("ACGT"))
  store    := newTestStore(t, track)
  notified := 0
  session  := NewEditSession(store, func(update TrackUpdate) { notified++ })

  if err := session.Begin("dna", "chr1"); err != nil {
    t.Fatal(err)
  }
  if err := session.SetBase(2, 'G'); err != nil {
    t.Error(err)
  }
  if err := session.SetBase(3, 'G'); err != nil {
    t.Error(err)
  }
  // the canonical track is not modified while the session is active
  if lookupSequence(store, "dna", "chr1") != "ACGT" {
    t.Error("TestEditSession1 failed!")
  }
  // reads through the session see the buffer
  if buffer, ok := session.Lookup("dna", "chr1"); !ok || buffer.(*SequenceTrack).String() != "ACGG" {
    t.Error("TestEditSession1 failed!")
  }
  session.Discard()

  if session.State() != EditDiscarded || session.Buffer() != nil {
    t.Error("TestEditSession1 failed!")
  }
  if lookupSequence(store, "dna", "chr1") != "ACGT" || notified != 0 {
    t.Error("TestEditSession1 failed!")
  }
  if canonical, _ := store.Lookup("dna", "chr1"); canonical != Track(track) {
    t.Error("TestEditSession1 failed!")
  }
}

func TestEditSession2(t *testing.T) {
  seq      := NewSequence("chr1", 0, 3)
  track, _ := NewSequenceTrack("dna", seq, []byte("ACGT"))
  store    := newTestStore(t, track)
  updates  := []TrackUpdate{}
  session  := NewEditSession(store, func(update TrackUpdate) { updates = append(updates, update) })

  session.Begin("dna", "chr1")
  session.SetBase(1, 'T')

  if !session.Commit() || session.State() != EditCommitted {
    t.Error("TestEditSession2 failed!")
  }
  if lookupSequence(store, "dna", "chr1") != "ATGT" {
    t.Error("TestEditSession2 failed!")
  }
  // the old track is replaced, not modified
  if track.String() != "ACGT" {
    t.Error("TestEditSession2 failed!")
  }
  if len(updates) != 1 || updates[0].Feature != "dna" || updates[0].Sequence != "chr1" {
    t.Fatal("TestEditSession2 failed!")
  }
  if updates[0].Old != Track(track) || updates[0].New.(*SequenceTrack).String() != "ATGT" {
    t.Error("TestEditSession2 failed!")
  }
}

func TestEditSession3(t *testing.T) {
  seq      := NewSequence("chr1", 0, 3)
  track, _ := NewSequenceTrack("dna", seq, []byte("ACGT"))
  store    := newTestStore(t, track)
  notified := 0
  session  := NewEditSession(store, func(update TrackUpdate) { notified++ })

  // commit and discard without session are no-ops
  if session.Commit() {
    t.Error("TestEditSession3 failed!")
  }
  session.Discard()
  if session.State() != EditIdle {
    t.Error("TestEditSession3 failed!")
  }
  // unchanged buffers are not committed
  session.Begin("dna", "chr1")
  session.SetBase(2, 'G')
  session.SetBase(2, 'g')
  session.SetBase(2, 'G')
  if err := session.SetBase(2, 'X'); err == nil {
    t.Error("TestEditSession3 failed!")
  }
  if err := session.SetBase(10, 'A'); err == nil {
    t.Error("TestEditSession3 failed!")
  }
  session.SetBase(2, 'G')
  session.SetBase(2, 'G')
  session.SetBase(3, 'T')
  if session.Commit() || session.State() != EditDiscarded || notified != 0 {
    t.Error("TestEditSession3 failed!")
  }
  if canonical, _ := store.Lookup("dna", "chr1"); canonical != Track(track) {
    t.Error("TestEditSession3 failed!")
  }
}

func TestEditSession4(t *testing.T) {
  seq      := NewSequence("chr1", 0, 3)
  track, _ := NewSequenceTrack("dna", seq, []byte("ACGT"))
  store    := newTestStore(t, track)
  session  := NewEditSession(store, nil)

  if err := session.Begin("dna", "chr1"); err != nil {
    t.Fatal(err)
  }
  if err := session.Begin("dna", "chr1"); !errors.Is(err, ErrSessionActive) {
    t.Error("TestEditSession4 failed!")
  }
  session.Discard()
  if err := session.Begin("rna", "chr1"); !errors.Is(err, ErrTrackNotFound) {
    t.Error("TestEditSession4 failed!")
  }
  if session.IsActive() {
    t.Error("TestEditSession4 failed!")
  }
  // gestures require an active session
  if err := session.SetBase(1, 'A'); err == nil {
    t.Error("TestEditSession4 failed!")
  }
}

func TestEditSession5(t *testing.T) {
  // paint a numeric signal with gaps between pointer positions
  seq     := NewSequence("chr1", 0, 99)
  track   := AllocNumericTrack("signal", seq)
  store   := newTestStore(t, track)
  session := NewEditSession(store, nil)

  viewport, _ := NewViewport(0, 99, 1.0, Direct)
  mapper      := NewCoordinateMapper(seq, viewport, 0)
  layout      := NewBaselineLayout(11, -10.0, 10.0, 0.0, true)

  session.Begin("signal", "chr1")
  // row 0 is the maximum, row 5 the baseline
  if err := session.PaintValue(mapper, layout, 10, 0); err != nil {
    t.Fatal(err)
  }
  if err := session.PaintValue(mapper, layout, 20, 5); err != nil {
    t.Fatal(err)
  }
  buffer := session.Buffer().(*NumericTrack)
  if buffer.At(10) != 10.0 || buffer.At(20) != 0.0 {
    t.Error("TestEditSession5 failed!")
  }
  // positions between the pointer positions are interpolated
  if buffer.At(15) != 5.0 || buffer.At(11) != 9.0 {
    t.Error("TestEditSession5 failed!")
  }
  if buffer.At(21) != 0.0 || buffer.At(9) != 0.0 {
    t.Error("TestEditSession5 failed!")
  }
  if track.At(10) != 0.0 {
    t.Error("TestEditSession5 failed!")
  }
  // bases cannot be painted on numeric tracks
  if err := session.PaintBase(mapper, 5, 'A'); err == nil {
    t.Error("TestEditSession5 failed!")
  }
  if !session.Commit() {
    t.Error("TestEditSession5 failed!")
  }
  if canonical, _ := store.Lookup("signal", "chr1"); canonical.(*NumericTrack).At(15) != 5.0 {
    t.Error("TestEditSession5 failed!")
  }
}

func TestEditSession6(t *testing.T) {
  // paint bases while zoomed out, every column covers ten bases
  seq      := NewSequence("chr1", 0, 99)
  track, _ := NewSequenceTrack("dna", seq, bytes.Repeat([]byte("N"), 100))
  store    := newTestStore(t, track)
  session  := NewEditSession(store, nil)

  viewport, _ := NewViewport(0, 99, 0.1, Direct)
  mapper      := NewCoordinateMapper(seq, viewport, 0)

  session.Begin("dna", "chr1")
  session.PaintBase(mapper, 1, 'A')
  session.PaintBase(mapper, 4, 'C')

  buffer := session.Buffer().(*SequenceTrack)
  // columns 1 and 4 cover [5, 14] and [35, 44]
  if buffer.At(5) != 'A' || buffer.At(14) != 'A' || buffer.At(35) != 'C' || buffer.At(44) != 'C' {
    t.Errorf("TestEditSession6 failed! %s", buffer.String())
  }
  // the gap is filled
  for p := 15; p < 35; p++ {
    if buffer.At(p) == 'N' {
      t.Errorf("TestEditSession6 failed! %s", buffer.String())
      break
    }
  }
  if buffer.At(4) != 'N' || buffer.At(45) != 'N' {
    t.Errorf("TestEditSession6 failed! %s", buffer.String())
  }
}

func TestEditSession7(t *testing.T) {
  // draw a region box
  seq     := NewSequence("chr1", 1000, 1099)
  track   := NewRegionTrack("regions", seq)
  store   := newTestStore(t, track)
  session := NewEditSession(store, nil)

  viewport, _ := NewViewport(1000, 1099, 2.0, Direct)
  mapper      := NewCoordinateMapper(seq, viewport, 0)

  session.Begin("regions", "chr1")
  i, err := session.DrawRegion(mapper, 41, 20, NewRegion(0, 0, "motif", 3, '-'))
  if err != nil || i != 0 {
    t.Fatal("TestEditSession7 failed!")
  }
  buffer := session.Buffer().(*RegionTrack)
  if buffer.GenomicRange(0) != (Range{1010, 1020}) || buffer.Regions[0].Type != "motif" {
    t.Error("TestEditSession7 failed!")
  }
  // the dialog was cancelled
  session.Discard()
  if len(track.Regions) != 0 {
    t.Error("TestEditSession7 failed!")
  }
  session.Begin("regions", "chr1")
  session.DrawRegion(mapper, 20, 41, NewRegion(0, 0, "motif", 3, '-'))
  session.Commit()
  if canonical, _ := store.Lookup("regions", "chr1"); canonical.(*RegionTrack).Length() != 1 {
    t.Error("TestEditSession7 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestTrackStore1(t *testing.T) {
  seq      := NewSequence("chr1", 0, 3)
  dna, _   := NewSequenceTrack("dna", seq, []byte("ACGT"))
  signal   := AllocNumericTrack("signal", seq)
  store    := newTestStore(t, dna, signal)

  if err := store.Add(dna); err == nil {
    t.Error("TestTrackStore1 failed!")
  }
  if f := store.Features("chr1"); len(f) != 2 || f[0] != "dna" || f[1] != "signal" {
    t.Error("TestTrackStore1 failed!")
  }
  // tracks cannot change their kind
  wrong := AllocNumericTrack("dna", seq)
  if _, err := store.Replace(wrong); err == nil {
    t.Error("TestTrackStore1 failed!")
  }
  if _, err := store.Get("dna", "chr2"); !errors.Is(err, ErrTrackNotFound) {
    t.Error("TestTrackStore1 failed!")
  }
}
