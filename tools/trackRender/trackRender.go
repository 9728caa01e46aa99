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

import   "bufio"
import   "fmt"
import   "io"
import   "log"
import   "os"
import   "path/filepath"
import   "strconv"
import   "strings"

import   "github.com/pborman/getopt"
import   "github.com/pbenner/threadpool"

import . "github.com/pbenner/gotracks"
import   "github.com/pbenner/gotracks/lib/progress"

/* -------------------------------------------------------------------------- */

type Config struct {
  BedGraph  []string
  Bed       []string
  Fasta     []string
  UCSCGenes []string
  Regions   string
  Settings  *Settings
  Width     int
  Scale     float64
  Reverse   bool
  Backend   string
  Threads   int
  Verbose   int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

// Split a comma separated list of `name:filename' or `filename' items.
// Tracks without explicit name are named after the file.
func parseTrackList(str string) []string {
  if str == "" {
    return nil
  }
  return strings.Split(str, ",")
}

func splitTrackItem(item string) (string, string) {
  if i := strings.Index(item, ":"); i > 0 {
    return item[0:i], item[i+1:]
  }
  name := filepath.Base(item)
  for _, ext := range []string{".gz", ".bedGraph", ".bed", ".fa", ".fasta"} {
    name = strings.TrimSuffix(name, ext)
  }
  return name, item
}

// Parse a location of the form `chr1:1000-2000', the end is included.
func parseLocation(str string) (string, int, int, error) {
  i := strings.LastIndex(str, ":")
  if i <= 0 {
    return "", 0, 0, fmt.Errorf("invalid location `%s'", str)
  }
  fields := strings.Split(str[i+1:], "-")
  if len(fields) != 2 {
    return "", 0, 0, fmt.Errorf("invalid location `%s'", str)
  }
  from, err := strconv.Atoi(strings.ReplaceAll(fields[0], ",", "")); if err != nil {
    return "", 0, 0, fmt.Errorf("invalid location `%s'", str)
  }
  to, err := strconv.Atoi(strings.ReplaceAll(fields[1], ",", "")); if err != nil {
    return "", 0, 0, fmt.Errorf("invalid location `%s'", str)
  }
  if from > to {
    return "", 0, 0, fmt.Errorf("invalid location `%s'", str)
  }
  return str[0:i], from, to, nil
}

/* -------------------------------------------------------------------------- */

func importGenome(config Config, filename string) Genome {
  genome := Genome{}
  PrintStderr(config, 1, "Reading genome `%s'... ", filename)
  if err := genome.Import(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return genome
}

func importSettings(config Config, filename string) *Settings {
  settings := NewSettings()
  if filename == "" {
    return settings
  }
  PrintStderr(config, 1, "Reading settings `%s'... ", filename)
  if err := settings.Import(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return settings
}

// Import all tracks of a sequence into a new store. Kinds and features are
// returned in command line order.
func importTracks(config Config, seq Sequence) (*TrackStore, []TrackKind, []string) {
  store    := NewTrackStore()
  kinds    := []TrackKind{}
  features := []string{}

  add := func(track Track) {
    if err := store.Add(track); err != nil {
      log.Fatal(err)
    }
    kinds    = append(kinds, track.Kind())
    features = append(features, track.GetName())
  }
  for _, item := range config.Fasta {
    name, filename := splitTrackItem(item)
    PrintStderr(config, 1, "Reading fasta file `%s' [%s]... ", filename, seq.Name)
    track, err := ImportFastaSequence(filename, name, seq)
    if err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
    add(track)
  }
  for _, item := range config.BedGraph {
    name, filename := splitTrackItem(item)
    track := AllocNumericTrack(name, seq)
    PrintStderr(config, 1, "Reading bedGraph file `%s' [%s]... ", filename, seq.Name)
    if err := track.ImportBedGraph(filename); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
    add(track)
  }
  for _, item := range config.Bed {
    name, filename := splitTrackItem(item)
    track := NewRegionTrack(name, seq)
    PrintStderr(config, 1, "Reading bed file `%s' [%s]... ", filename, seq.Name)
    if err := track.ImportBed(filename); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
    add(track)
  }
  for _, item := range config.UCSCGenes {
    fields := strings.Split(item, ":")
    if len(fields) != 2 {
      log.Fatalf("invalid UCSC gene table `%s'", item)
    }
    track := NewRegionTrack(fields[1], seq)
    PrintStderr(config, 1, "Importing genes from UCSC table `%s' [%s]... ", item, seq.Name)
    if err := track.ImportUCSCGenes(fields[0], fields[1]); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
    add(track)
  }
  return store, kinds, features
}

/* -------------------------------------------------------------------------- */

func newViewport(config Config, from, to int) (Viewport, error) {
  orientation := Direct
  if config.Reverse {
    orientation = Reverse
  }
  if config.Scale > 0.0 {
    return NewViewport(from, to, config.Scale, orientation)
  }
  return FitViewport(from, to, config.Width, orientation)
}

func renderLocation(config Config, logger *Logger, store *TrackStore, kinds []TrackKind, features []string, seq Sequence, from, to int, filename string) error {
  viewport, err := newViewport(config, from, to)
  if err != nil {
    return err
  }
  panel := NewPanel(seq, viewport, config.Settings, logger)
  for i := range features {
    panel.AddTrack(kinds[i], features[i])
  }
  size := panel.Size(store)
  if size.X <= 0 || size.Y <= 0 {
    return fmt.Errorf("nothing to render at %s:%d-%d", seq.Name, from, to)
  }
  f, err := os.Create(filename)
  if err != nil {
    return err
  }
  if err := writePanel(config, panel, store, f); err != nil {
    f.Close()
    return err
  }
  return f.Close()
}

// Render the panel and write it as PNG, including the final flush.
func writePanel(config Config, panel *Panel, store *TrackStore, writer io.Writer) error {
  size := panel.Size(store)
  w    := bufio.NewWriter(writer)
  switch config.Backend {
  case "vg":
    canvas, img := NewVgImageCanvas(size.X, size.Y)
    panel.Render(canvas, store)
    if err := WriteVgPNG(w, img); err != nil {
      return err
    }
  default:
    canvas := NewImageCanvas(size.X, size.Y)
    panel.Render(canvas, store)
    if err := canvas.WritePNG(w); err != nil {
      return err
    }
  }
  return w.Flush()
}

/* -------------------------------------------------------------------------- */

func trackRender(config Config, filenameGenome, location, filenameOut string) {
  genome := importGenome(config, filenameGenome)
  logger := NewLogger(config.Verbose, os.Stderr)

  seqname, from, to, err := parseLocation(location)
  if err != nil {
    log.Fatal(err)
  }
  seq, err := genome.Sequence(seqname)
  if err != nil {
    log.Fatal(err)
  }
  store, kinds, features := importTracks(config, seq)

  PrintStderr(config, 1, "Rendering `%s'... ", filenameOut)
  if err := renderLocation(config, logger, store, kinds, features, seq, from, to, filenameOut); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

type location struct {
  seqname  string
  from, to int
}

func importRegions(config Config, filename string) []location {
  f, err := os.Open(filename)
  if err != nil {
    log.Fatal(err)
  }
  defer f.Close()

  r := []location{}
  scanner := bufio.NewScanner(f)
  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 || strings.HasPrefix(fields[0], "#") || fields[0] == "track" {
      continue
    }
    if len(fields) < 3 {
      log.Fatalf("invalid bed file `%s'", filename)
    }
    from, err1 := strconv.Atoi(fields[1])
    to,   err2 := strconv.Atoi(fields[2])
    if err1 != nil || err2 != nil || from >= to {
      log.Fatalf("invalid bed file `%s'", filename)
    }
    r = append(r, location{fields[0], from, to-1})
  }
  if err := scanner.Err(); err != nil {
    log.Fatal(err)
  }
  return r
}

// Render one image per region of a bed file. Tracks are imported once per
// sequence, images are rendered in parallel.
func trackRenderRegions(config Config, filenameGenome, prefix string) {
  genome  := importGenome(config, filenameGenome)
  logger  := NewLogger(config.Verbose, os.Stderr)
  regions := importRegions(config, config.Regions)

  type tracks struct {
    seq      Sequence
    store    *TrackStore
    kinds    []TrackKind
    features []string
  }
  cache := make(map[string]tracks)
  for _, r := range regions {
    if _, ok := cache[r.seqname]; ok {
      continue
    }
    seq, err := genome.Sequence(r.seqname)
    if err != nil {
      log.Fatal(err)
    }
    store, kinds, features := importTracks(config, seq)
    cache[r.seqname] = tracks{seq, store, kinds, features}
  }

  pool := threadpool.New(config.Threads, 100*config.Threads)
  bar  := progress.New(len(regions), 100)
  bar.Label = "Rendering"

  g := pool.NewJobGroup()

  if err := pool.AddRangeJob(0, len(regions), g, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    if erf() != nil {
      return nil
    }
    r := regions[i]
    t := cache[r.seqname]
    filename := fmt.Sprintf("%s.%s_%d_%d.png", prefix, r.seqname, r.from, r.to+1)
    if err := renderLocation(config, logger, t.store, t.kinds, t.features, t.seq, r.from, r.to, filename); err != nil {
      return err
    }
    if config.Verbose > 0 {
      bar.Done()
    }
    return nil
  }); err != nil {
    log.Fatal(err)
  }
  if err := pool.Wait(g); err != nil {
    log.Fatal(err)
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optBedGraph  := options. StringLong("bedGraph",   0 , "",      "comma separated list of [name:]file.bedGraph")
  optBed       := options. StringLong("bed",        0 , "",      "comma separated list of [name:]file.bed")
  optFasta     := options. StringLong("fasta",      0 , "",      "comma separated list of [name:]file.fa")
  optUCSCGenes := options. StringLong("ucsc-genes", 0 , "",      "comma separated list of genome:table (e.g. hg19:knownGene)")
  optSettings  := options. StringLong("settings",   0 , "",      "display settings table")
  optWidth     := options.    IntLong("width",      0 , 1000,    "width of the image in pixels [default: 1000]")
  optScale     := options. StringLong("scale",      0 , "",      "pixels per base (overrides --width)")
  optReverse   := options.   BoolLong("reverse",    0 ,          "show the reverse strand")
  optBackend   := options. StringLong("backend",    0 , "image", "drawing backend [image (default), vg]")
  optSampler   := options. StringLong("sampler",    0 , "",      "sampler for zoomed out numeric tracks [extreme, average, center]")
  optRegions   := options. StringLong("regions",    0 , "",      "render one image per region in the given bed file")
  optThreads   := options.    IntLong("threads",    0 , 1,       "number of threads [default: 1]")
  optVerbose   := options.CounterLong("verbose",   'v',          "verbose level [-v or -vv]")
  optHelp      := options.   BoolLong("help",      'h',          "print help")

  options.SetParameters("<GENOME> <SEQNAME:FROM-TO> <OUTPUT.png>\n" +
    "       trackRender [option]... --regions=<REGIONS.bed> <GENOME> <OUTPUT_PREFIX>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if (*optRegions == "" && len(options.Args()) != 3) || (*optRegions != "" && len(options.Args()) != 2) {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.BedGraph  = parseTrackList(*optBedGraph)
  config.Bed       = parseTrackList(*optBed)
  config.Fasta     = parseTrackList(*optFasta)
  config.UCSCGenes = parseTrackList(*optUCSCGenes)
  config.Regions   = *optRegions
  config.Width     = *optWidth
  config.Reverse   = *optReverse
  config.Backend   = *optBackend
  config.Threads   = *optThreads
  config.Verbose   = *optVerbose
  config.Settings  = importSettings(config, *optSettings)

  if *optScale != "" {
    if t, err := strconv.ParseFloat(*optScale, 64); err != nil {
      log.Fatal(err)
    } else {
      config.Scale = t
    }
  }
  if *optSampler != "" {
    if mode, err := ParseSamplerMode(*optSampler); err != nil {
      log.Fatal(err)
    } else {
      config.Settings.Sampler.Mode = mode
    }
  }
  if config.Backend != "image" && config.Backend != "vg" {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if config.Threads < 1 {
    config.Threads = 1
  }
  if config.Regions == "" {
    trackRender(config, options.Args()[0], options.Args()[1], options.Args()[2])
  } else {
    trackRenderRegions(config, options.Args()[0], options.Args()[1])
  }
}
