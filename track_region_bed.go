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

func isBedHeader(line string) bool {
  return strings.HasPrefix(line, "#") || strings.HasPrefix(line, "track") || strings.HasPrefix(line, "browser")
}

// Import regions from a bed file with three to nine columns. Only rows of
// the track's sequence are used. The name column is used as region type,
// thickStart, thickEnd and itemRgb are stored as properties.
func (track *RegionTrack) ReadBed(reader io.Reader) error {
  scanner := bufio.NewScanner(reader)
  for line := 1; scanner.Scan(); line++ {
    if isBedHeader(scanner.Text()) {
      continue
    }
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 3 {
      return fmt.Errorf("ReadBed(): line %d: bed file must have at least three columns", line)
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
    // bed intervals are half-open
    g := Range{int(t1), int(t2)-1}.Intersection(track.Sequence.Range())
    if g.IsEmpty() {
      continue
    }
    r := NewRegion(track.Sequence.Relative(g.From), track.Sequence.Relative(g.To), "region", 0.0, '*')
    if len(fields) > 3 {
      r.Type = fields[3]
    }
    if len(fields) > 4 && fields[4] != "." {
      if r.Score, err = strconv.ParseFloat(fields[4], 64); err != nil {
        return err
      }
    }
    if len(fields) > 5 && (fields[5] == "+" || fields[5] == "-") {
      r.Strand = fields[5][0]
    }
    if len(fields) > 6 {
      r.SetProperty("thickStart", fields[6])
    }
    if len(fields) > 7 {
      r.SetProperty("thickEnd", fields[7])
    }
    if len(fields) > 8 && fields[8] != "0" {
      r.SetProperty("color", fields[8])
    }
    if _, err := track.Add(r); err != nil {
      return err
    }
  }
  return scanner.Err()
}

func (track *RegionTrack) ImportBed(filename string) error {
  r, closer, err := openReader(filename)
  if err != nil {
    return err
  }
  defer closer()
  return track.ReadBed(r)
}
