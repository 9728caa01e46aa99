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

package main

/* -------------------------------------------------------------------------- */

//import "fmt"
import   "bytes"
import   "errors"
import   "image/png"
import   "testing"

import . "github.com/pbenner/gotracks"

/* -------------------------------------------------------------------------- */

type failingWriter struct {
}

func (failingWriter) Write(p []byte) (int, error) {
  return 0, errors.New("disk full")
}

func newTestPanel(t *testing.T) (*Panel, *TrackStore) {
  seq   := NewSequence("chr1", 0, 99)
  track := AllocNumericTrack("signal", seq)
  store := NewTrackStore()
  if err := store.Add(track); err != nil {
    t.Fatal(err)
  }
  viewport, err := FitViewport(0, 99, 50, Direct)
  if err != nil {
    t.Fatal(err)
  }
  panel := NewPanel(seq, viewport, NewSettings(), nil)
  panel.AddTrack(NumericKind, "signal")
  return panel, store
}

/* -------------------------------------------------------------------------- */

func TestWritePanel1(t *testing.T) {
  for _, backend := range []string{"image", "vg"} {
    config       := Config{Backend: backend}
    panel, store := newTestPanel(t)

    var buffer bytes.Buffer
    if err := writePanel(config, panel, store, &buffer); err != nil {
      t.Fatal(err)
    }
    img, err := png.Decode(&buffer)
    if err != nil {
      t.Fatal(err)
    }
    size := panel.Size(store)
    if b := img.Bounds(); b.Dx() != 50 || b.Dx() != size.X || b.Dy() != size.Y {
      t.Errorf("TestWritePanel1 failed! bounds are %v", b)
    }
    // the image is smaller than the write buffer, so the error is only
    // seen when flushing
    if err := writePanel(config, panel, store, failingWriter{}); err == nil {
      t.Error("TestWritePanel1 failed!")
    }
  }
}

func TestParseLocation1(t *testing.T) {
  if seqname, from, to, err := parseLocation("chr1:1,000-2,000"); err != nil || seqname != "chr1" || from != 1000 || to != 2000 {
    t.Error("TestParseLocation1 failed!")
  }
  for _, str := range []string{"chr1", "chr1:10", "chr1:20-10", "chr1:a-b"} {
    if _, _, _, err := parseLocation(str); err == nil {
      t.Errorf("TestParseLocation1 failed! `%s' accepted", str)
    }
  }
  if name, filename := splitTrackItem("data/signal.bedGraph.gz"); name != "signal" || filename != "data/signal.bedGraph.gz" {
    t.Error("TestParseLocation1 failed!")
  }
}
