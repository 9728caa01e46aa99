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

import "bufio"
import "fmt"
import "io"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Import data from a bedGraph file. Only rows of the track's sequence are
// used, positions not covered by the file keep their value.
func (track *NumericTrack) ReadBedGraph(reader io.Reader) error {
  scanner := bufio.NewScanner(reader)
  for line := 1; scanner.Scan(); line++ {
    if isBedHeader(scanner.Text()) {
      continue
    }
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) != 4 {
      return fmt.Errorf("ReadBedGraph(): line %d: bedGraph file must have four columns", line)
    }
    if fields[0] != track.Sequence.Name {
      continue
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64); if err != nil {
      return err
    }
    t2, err := strconv.ParseInt(fields[2], 10, 64); if err != nil {
      return err
    }
    t3, err := strconv.ParseFloat(fields[3], 64); if err != nil {
      return err
    }
    for i := int(t1); i < int(t2); i++ {
      track.Set(i, t3)
    }
  }
  return scanner.Err()
}

func (track *NumericTrack) ImportBedGraph(filename string) error {
  r, closer, err := openReader(filename)
  if err != nil {
    return err
  }
  defer closer()
  return track.ReadBedGraph(r)
}
