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

var ErrTrackNotFound = errors.New("track not found")

// Read access to tracks by feature name and sequence name.
type TrackSource interface {
  Lookup(feature, seqname string) (Track, bool)
}

/* -------------------------------------------------------------------------- */

type trackKey struct {
  feature string
  seqname string
}

// Canonical copy of all tracks. Tracks are never modified in place by the
// edit tools, a commit replaces the whole track.
type TrackStore struct {
  tracks map[trackKey]Track
  order  []trackKey
}

func NewTrackStore() *TrackStore {
  return &TrackStore{tracks: make(map[trackKey]Track)}
}

/* -------------------------------------------------------------------------- */

func (store *TrackStore) Add(track Track) error {
  key := trackKey{track.GetName(), track.GetSequence().Name}
  if _, ok := store.tracks[key]; ok {
    return fmt.Errorf("track `%s' already exists for sequence `%s'", key.feature, key.seqname)
  }
  store.tracks[key] = track
  store.order       = append(store.order, key)
  return nil
}

func (store *TrackStore) Lookup(feature, seqname string) (Track, bool) {
  track, ok := store.tracks[trackKey{feature, seqname}]
  return track, ok
}

func (store *TrackStore) Get(feature, seqname string) (Track, error) {
  if track, ok := store.Lookup(feature, seqname); ok {
    return track, nil
  }
  return nil, fmt.Errorf("%w: `%s' on sequence `%s'", ErrTrackNotFound, feature, seqname)
}

// Replace an existing track and return the previous one.
func (store *TrackStore) Replace(track Track) (Track, error) {
  key := trackKey{track.GetName(), track.GetSequence().Name}
  old, ok := store.tracks[key]
  if !ok {
    return nil, fmt.Errorf("%w: `%s' on sequence `%s'", ErrTrackNotFound, key.feature, key.seqname)
  }
  if old.Kind() != track.Kind() {
    return nil, fmt.Errorf("cannot replace %v track `%s' by %v data", old.Kind(), key.feature, track.Kind())
  }
  store.tracks[key] = track
  return old, nil
}

// Feature names of all tracks of a sequence in insertion order.
func (store *TrackStore) Features(seqname string) []string {
  r := []string{}
  for _, key := range store.order {
    if key.seqname == seqname {
      r = append(r, key.feature)
    }
  }
  return r
}
