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
import "strings"
import "unicode"

/* -------------------------------------------------------------------------- */

// Read the bases of the given sequence from a fasta file. The first base
// of a fasta record is at position 0, positions not contained in the
// record are set to `N'.
func ReadFastaSequence(reader io.Reader, name string, seq Sequence) (*SequenceTrack, error) {
  scanner := bufio.NewScanner(reader)
  scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

  data  := make([]byte, seq.Length())
  for i := range data {
    data[i] = 'N'
  }
  found := false
  inside := false
  pos    := 0

  for scanner.Scan() {
    line := scanner.Text()
    if len(line) == 0 {
      continue
    }
    if line[0] == '>' {
      fields := strings.FieldsFunc(line, func(c rune) bool {
        return unicode.IsSpace(c) || c == '>' || c == '|'
      })
      if len(fields) == 0 {
        return nil, fmt.Errorf("ReadFastaSequence(): invalid fasta file")
      }
      if inside {
        break
      }
      inside = fields[0] == seq.Name
      found  = found || inside
      pos    = 0
      continue
    }
    if !inside {
      continue
    }
    for i := 0; i < len(line); i++ {
      if seq.Contains(pos) {
        data[seq.Relative(pos)] = line[i]
      }
      pos++
    }
    if pos > seq.End {
      break
    }
  }
  if err := scanner.Err(); err != nil {
    return nil, err
  }
  if !found {
    return nil, fmt.Errorf("ReadFastaSequence(): sequence `%s' not found", seq.Name)
  }
  return NewSequenceTrack(name, seq, data)
}

func ImportFastaSequence(filename, name string, seq Sequence) (*SequenceTrack, error) {
  r, closer, err := openReader(filename)
  if err != nil {
    return nil, err
  }
  defer closer()
  return ReadFastaSequence(r, name, seq)
}
