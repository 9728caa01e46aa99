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
import "bytes"
import "fmt"
import "io"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Absolute bounds [Start, End] of a sequence in genomic coordinates. Both
// boundaries are included.
type Sequence struct {
  Name  string
  Start int
  End   int
}

func NewSequence(name string, start, end int) Sequence {
  if start > end {
    panic("NewSequence(): start > end")
  }
  return Sequence{name, start, end}
}

func (seq Sequence) Length() int {
  return seq.End - seq.Start + 1
}

// Position relative to the sequence start.
func (seq Sequence) Relative(position int) int {
  return position - seq.Start
}

func (seq Sequence) Genomic(relative int) int {
  return seq.Start + relative
}

// Clamp a genomic position to the sequence bounds.
func (seq Sequence) Clamp(position int) int {
  return iClamp(position, seq.Start, seq.End)
}

func (seq Sequence) Contains(position int) bool {
  return seq.Start <= position && position <= seq.End
}

func (seq Sequence) Range() Range {
  return Range{seq.Start, seq.End}
}

func (seq Sequence) String() string {
  return fmt.Sprintf("%s:%d-%d", seq.Name, seq.Start, seq.End)
}

/* -------------------------------------------------------------------------- */

// Structure containing chromosome sizes.
type Genome struct {
  Seqnames []string
  Lengths  []int
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewGenome(seqnames []string, lengths []int) Genome {
  if len(seqnames) != len(lengths) {
    panic("NewGenome(): Invalid parameters!")
  }
  return Genome{seqnames, lengths}
}

/* -------------------------------------------------------------------------- */

// Number of chromosomes in the structure.
func (genome Genome) Length() int {
  return len(genome.Seqnames)
}

// Length of the given chromosome. Returns an error if the chromosome
// is not found.
func (genome Genome) SeqLength(seqname string) (int, error) {
  for i, s := range genome.Seqnames {
    if seqname == s {
      return genome.Lengths[i], nil
    }
  }
  return 0, fmt.Errorf("sequence `%s' not found", seqname)
}

// Sequence bounds of a chromosome. The first position is numbered 0.
func (genome Genome) Sequence(seqname string) (Sequence, error) {
  if n, err := genome.SeqLength(seqname); err != nil {
    return Sequence{}, err
  } else {
    return Sequence{seqname, 0, n-1}, nil
  }
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (genome Genome) String() string {
  var buffer bytes.Buffer

  buffer.WriteString(
    fmt.Sprintf("%10s %10s\n", "seqnames", "lengths"))

  for i := 0; i < genome.Length(); i++ {
    if i != 0 {
      buffer.WriteString("\n")
    }
    buffer.WriteString(
      fmt.Sprintf("%10s %10d",
        genome.Seqnames[i],
        genome.Lengths [i]))
  }
  return buffer.String()
}

/* i/o
 * -------------------------------------------------------------------------- */

// Read chromosome sizes in UCSC format. The format is a whitespace
// separated table where the first column is the name of the chromosome and
// the second column the chromosome length.
func (genome *Genome) Read(reader io.Reader) error {
  seqnames := []string{}
  lengths  := []int{}

  scanner := bufio.NewScanner(reader)
  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 2 {
      return fmt.Errorf("Read(): invalid genome file")
    }
    t, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return err
    }
    if t <= 0 {
      return fmt.Errorf("Read(): sequence `%s' has invalid length", fields[0])
    }
    seqnames = append(seqnames, fields[0])
    lengths  = append(lengths,  int(t))
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  *genome = NewGenome(seqnames, lengths)
  return nil
}

func (genome *Genome) Import(filename string) error {
  r, closer, err := openReader(filename)
  if err != nil {
    return err
  }
  defer closer()
  return genome.Read(r)
}
