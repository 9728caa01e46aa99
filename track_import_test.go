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
import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestReadBed1(t *testing.T) {
  input := `track name=test
# comment
chr1	100	200	promoter	5	+	120	180	255,0,0
chr2	100	200	promoter	5	+
chr1	50	60
chr1	990	1100	enhancer	.	-	990	1000	0
`
  track := NewRegionTrack("regions", NewSequence("chr1", 0, 999))
  if err := track.ReadBed(strings.NewReader(input)); err != nil {
    t.Fatal(err)
  }
  if track.Length() != 3 {
    t.Fatalf("TestReadBed1 failed! %d regions read", track.Length())
  }
  r := track.Regions[0]
  if track.GenomicRange(0) != (Range{100, 199}) || r.Type != "promoter" || r.Score != 5 || r.Strand != '+' {
    t.Error("TestReadBed1 failed!")
  }
  if v, ok := r.GetProperty("color"); !ok || v != "255,0,0" {
    t.Error("TestReadBed1 failed!")
  }
  if v, ok := r.GetProperty("thickEnd"); !ok || v != "180" {
    t.Error("TestReadBed1 failed!")
  }
  // default type and strand
  if r := track.Regions[1]; r.Type != "region" || r.Strand != '*' {
    t.Error("TestReadBed1 failed!")
  }
  // regions are clipped to the sequence
  if track.GenomicRange(2) != (Range{990, 999}) || track.Regions[2].Score != 0 {
    t.Error("TestReadBed1 failed!")
  }
  if _, ok := track.Regions[2].GetProperty("color"); ok {
    t.Error("TestReadBed1 failed!")
  }
}

func TestReadBed2(t *testing.T) {
  track := NewRegionTrack("regions", NewSequence("chr1", 0, 999))
  if err := track.ReadBed(strings.NewReader("chr1 100\n")); err == nil {
    t.Error("TestReadBed2 failed!")
  }
  if err := track.ReadBed(strings.NewReader("chr1 100 x\n")); err == nil {
    t.Error("TestReadBed2 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestReadBedGraph1(t *testing.T) {
  input := `track type=bedGraph
chr1	0	3	1.5
chr1	8	12	-2
chr3	0	10	7
`
  track := AllocNumericTrack("signal", NewSequence("chr1", 0, 9))
  if err := track.ReadBedGraph(strings.NewReader(input)); err != nil {
    t.Fatal(err)
  }
  result := []float64{1.5, 1.5, 1.5, 0, 0, 0, 0, 0, -2, -2}
  for i, v := range result {
    if track.At(i) != v {
      t.Errorf("TestReadBedGraph1 failed! position %d has value %v", i, track.At(i))
    }
  }
  if err := track.ReadBedGraph(strings.NewReader("chr1 0 3\n")); err == nil {
    t.Error("TestReadBedGraph1 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestReadFasta1(t *testing.T) {
  input := `>chr1 first
ACGTA
CGT
>chr2|second
GGGGG
`
  track, err := ReadFastaSequence(strings.NewReader(input), "dna", NewSequence("chr2", 0, 6))
  if err != nil {
    t.Fatal(err)
  }
  if track.String() != "GGGGGNN" {
    t.Errorf("TestReadFasta1 failed! %s", track.String())
  }
  // records are continued over several lines
  track, err = ReadFastaSequence(strings.NewReader(input), "dna", NewSequence("chr1", 3, 6))
  if err != nil {
    t.Fatal(err)
  }
  if track.String() != "TACG" || track.Name != "dna" {
    t.Errorf("TestReadFasta1 failed! %s", track.String())
  }
  if _, err := ReadFastaSequence(strings.NewReader(input), "dna", NewSequence("chr3", 0, 6)); err == nil {
    t.Error("TestReadFasta1 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestReadUCSCGenes1(t *testing.T) {
  input := `
uc001 chr1 + 100 200 120 180
uc002 chr1 - 150 300 300 300
uc003 chr2 + 100 200 120 180
uc004 chr1 + 900 1200 950 1100
`
  track := NewRegionTrack("genes", NewSequence("chr1", 0, 999))
  if err := track.ReadUCSCGenes(strings.NewReader(input)); err != nil {
    t.Fatal(err)
  }
  // three genes and two coding sequences
  if track.Length() != 5 {
    t.Fatalf("TestReadUCSCGenes1 failed! %d regions read", track.Length())
  }
  if track.Regions[0].Type != "gene" || track.GenomicRange(0) != (Range{100, 199}) {
    t.Error("TestReadUCSCGenes1 failed!")
  }
  if v, _ := track.Regions[0].GetProperty("name"); v != "uc001" {
    t.Error("TestReadUCSCGenes1 failed!")
  }
  i, ok := track.Child(0, "cds")
  if !ok || track.Regions[i].Type != "cds" || track.GenomicRange(i) != (Range{120, 179}) {
    t.Error("TestReadUCSCGenes1 failed!")
  }
  // non-coding transcripts have no cds
  if _, ok := track.Child(2, "cds"); ok || track.Regions[2].Strand != '-' {
    t.Error("TestReadUCSCGenes1 failed!")
  }
  // transcripts and coding sequences are clipped to the sequence
  if track.GenomicRange(3) != (Range{900, 999}) {
    t.Error("TestReadUCSCGenes1 failed!")
  }
  if i, ok := track.Child(3, "cds"); !ok || track.GenomicRange(i) != (Range{950, 999}) {
    t.Error("TestReadUCSCGenes1 failed!")
  }
  if err := track.ReadUCSCGenes(strings.NewReader("uc001 chr1 + 100 200\n")); err == nil {
    t.Error("TestReadUCSCGenes1 failed!")
  }
}

func TestImportUCSCGenes1(t *testing.T) {
  track := NewRegionTrack("genes", NewSequence("chr1", 0, 999))
  // table names are checked before connecting
  if err := track.ImportUCSCGenes("hg19", "knownGene; DROP TABLE x"); err == nil {
    t.Error("TestImportUCSCGenes1 failed!")
  }
}
