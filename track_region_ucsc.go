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
import "database/sql"
import "fmt"
import "io"
import "strconv"
import "strings"

import _ "github.com/go-sql-driver/mysql"

/* -------------------------------------------------------------------------- */

// Add a transcript as `gene' region with the coding sequence as
// nested `cds' region. Coordinates are genomic and half-open as in UCSC
// tables. Transcripts outside the sequence are ignored.
func (track *RegionTrack) addTranscript(name string, strand byte, txFrom, txTo, cdsFrom, cdsTo int) error {
  g := Range{txFrom, txTo-1}.Intersection(track.Sequence.Range())
  if g.IsEmpty() {
    return nil
  }
  seq := track.Sequence
  tx  := NewRegion(seq.Relative(g.From), seq.Relative(g.To), "gene", 0.0, strand)
  tx.SetProperty("name", name)
  i, err := track.Add(tx)
  if err != nil {
    return err
  }
  c := Range{cdsFrom, cdsTo-1}.Intersection(g)
  if c.IsEmpty() {
    return nil
  }
  cds := NewRegion(seq.Relative(c.From), seq.Relative(c.To), "cds", 0.0, strand)
  j, err := track.Add(cds)
  if err != nil {
    return err
  }
  return track.AddChild(i, "cds", j)
}

// Read genes from UCSC text files. The format is a whitespace separated
// table with columns: Name, Seqname, Strand, TranscriptStart,
// TranscriptEnd, CodingStart, and CodingEnd.
func (track *RegionTrack) ReadUCSCGenes(reader io.Reader) error {
  scanner := bufio.NewScanner(reader)
  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) != 7 {
      return fmt.Errorf("ReadUCSCGenes(): file must have seven columns")
    }
    if fields[1] != track.Sequence.Name {
      continue
    }
    t := [4]int{}
    for k := 0; k < 4; k++ {
      v, err := strconv.ParseInt(fields[3+k], 10, 64)
      if err != nil {
        return err
      }
      t[k] = int(v)
    }
    if err := track.addTranscript(fields[0], fields[2][0], t[0], t[1], t[2], t[3]); err != nil {
      return err
    }
  }
  return scanner.Err()
}

// Import genes of the track's sequence from the UCSC MySQL server, e.g.
// genome `hg19' and table `knownGene'.
func (track *RegionTrack) ImportUCSCGenes(genome, table string) error {
  var i_name, i_strand string
  var i_txFrom, i_txTo, i_cdsFrom, i_cdsTo int

  // table names cannot be passed as query parameters
  for _, c := range table {
    if !(c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
      return fmt.Errorf("ImportUCSCGenes(): invalid table name `%s'", table)
    }
  }

  db, err := sql.Open("mysql",
    fmt.Sprintf("genome@tcp(genome-mysql.soe.ucsc.edu:3306)/%s", genome))
  if err != nil {
    return err
  }
  defer db.Close()

  if err := db.Ping(); err != nil {
    return err
  }
  rows, err := db.Query(
    fmt.Sprintf("SELECT name, strand, txStart, txEnd, cdsStart, cdsEnd FROM %s WHERE chrom = ?", table),
    track.Sequence.Name)
  if err != nil {
    return err
  }
  defer rows.Close()
  for rows.Next() {
    if err := rows.Scan(&i_name, &i_strand, &i_txFrom, &i_txTo, &i_cdsFrom, &i_cdsTo); err != nil {
      return err
    }
    strand := byte('*')
    if len(i_strand) > 0 {
      strand = i_strand[0]
    }
    if err := track.addTranscript(i_name, strand, i_txFrom, i_txTo, i_cdsFrom, i_cdsTo); err != nil {
      return err
    }
  }
  return rows.Err()
}
