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
import "hash/fnv"
import "image/color"
import "io"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

type GraphType int

const (
  GraphBar GraphType = iota
  // bars drawn as DNA letters scaled by the value
  GraphDNA
)

func ParseGraphType(str string) (GraphType, error) {
  switch strings.ToLower(str) {
  case "bar": return GraphBar, nil
  case "dna": return GraphDNA, nil
  default:
    return GraphBar, fmt.Errorf("invalid graph type `%s'", str)
  }
}

/* -------------------------------------------------------------------------- */

// Display settings of a single feature.
type FeatureSettings struct {
  Foreground          color.RGBA
  Background          color.RGBA
  BaselineColor       color.RGBA
  Secondary           color.RGBA
  Min                 float64
  Max                 float64
  Baseline            float64
  // compute Min and Max from the data of each sequence
  ScalePerSequence    bool
  // stack overlapping regions instead of drawing them on top of each other
  Expanded            bool
  GraphType           GraphType
  // sequence track used by the DNA graph type
  ReferenceTrack      string
  BaselineIndependent bool
  Height              int
  RowHeight           int
}

func DefaultFeatureSettings() FeatureSettings {
  return FeatureSettings{
    Foreground    : color.RGBA{  0,   0, 255, 255},
    Background    : color.RGBA{255, 255, 255, 255},
    BaselineColor : color.RGBA{128, 128, 128, 255},
    Secondary     : color.RGBA{255,   0,   0, 255},
    Min           : 0.0,
    Max           : 1.0,
    Baseline      : 0.0,
    Height        : 30,
    RowHeight     : 10 }
}

/* -------------------------------------------------------------------------- */

// Settings surface shared by all renderers of a panel.
type Settings struct {
  Sampler               *SamplerConfig
  Types                 *TypeVisibility
  TypeColors            map[string]color.RGBA
  BaseColors            map[byte]color.RGBA
  // render once per pixel column below this scale
  OptimizationThreshold float64
  // draw overlays above this scale
  OverlayThreshold      float64
  // draw letters above this scale
  LetterThreshold       float64
  features              map[string]FeatureSettings
}

func NewSettings() *Settings {
  return &Settings{
    Sampler              : NewSamplerConfig(),
    Types                : NewTypeVisibility(),
    TypeColors           : make(map[string]color.RGBA),
    BaseColors           : map[byte]color.RGBA{
      'A': {  0, 160,   0, 255},
      'C': {  0,   0, 220, 255},
      'G': {230, 150,   0, 255},
      'T': {220,   0,   0, 255} },
    OptimizationThreshold: 0.5,
    OverlayThreshold     : 4.0,
    LetterThreshold      : 7.0,
    features             : make(map[string]FeatureSettings) }
}

/* -------------------------------------------------------------------------- */

func (settings *Settings) Feature(name string) FeatureSettings {
  if fs, ok := settings.features[name]; ok {
    return fs
  }
  return DefaultFeatureSettings()
}

func (settings *Settings) SetFeature(name string, fs FeatureSettings) {
  settings.features[name] = fs
}

// Color of a region type. Types without an explicit color get a color
// derived from the type name.
func (settings *Settings) TypeColor(regionType string) color.RGBA {
  if c, ok := settings.TypeColors[regionType]; ok {
    return c
  }
  h := fnv.New32a()
  h.Write([]byte(regionType))
  v := h.Sum32()
  return color.RGBA{uint8(64 + v%160), uint8(64 + (v>>8)%160), uint8(64 + (v>>16)%160), 255}
}

func (settings *Settings) BaseColor(base byte) color.RGBA {
  if base >= 'a' && base <= 'z' {
    base -= 'a' - 'A'
  }
  if c, ok := settings.BaseColors[base]; ok {
    return c
  }
  return color.RGBA{128, 128, 128, 255}
}

/* i/o
 * -------------------------------------------------------------------------- */

// Parse a color in `r,g,b' notation.
func ParseColor(str string) (color.RGBA, error) {
  fields := strings.Split(str, ",")
  if len(fields) != 3 {
    return color.RGBA{}, fmt.Errorf("invalid color `%s'", str)
  }
  c := [3]uint8{}
  for i, f := range fields {
    t, err := strconv.ParseUint(strings.TrimSpace(f), 10, 8)
    if err != nil {
      return color.RGBA{}, fmt.Errorf("invalid color `%s'", str)
    }
    c[i] = uint8(t)
  }
  return color.RGBA{c[0], c[1], c[2], 255}, nil
}

func (settings *Settings) setGlobal(key, value string) error {
  var err error
  switch {
  case key == "sampler":
    settings.Sampler.Mode, err = ParseSamplerMode(value)
  case key == "sampling-cutoff":
    settings.Sampler.SamplingLengthCutoff, err = strconv.Atoi(value)
  case key == "sampling-size":
    settings.Sampler.SamplingSize, err = strconv.Atoi(value)
  case key == "optimization-threshold":
    settings.OptimizationThreshold, err = strconv.ParseFloat(value, 64)
  case key == "overlay-threshold":
    settings.OverlayThreshold, err = strconv.ParseFloat(value, 64)
  case key == "letter-threshold":
    settings.LetterThreshold, err = strconv.ParseFloat(value, 64)
  case key == "hide":
    settings.Types.SetVisible(value, false)
  case strings.HasPrefix(key, "color:"):
    var c color.RGBA
    if c, err = ParseColor(value); err == nil {
      settings.TypeColors[strings.TrimPrefix(key, "color:")] = c
    }
  default:
    return fmt.Errorf("unknown global setting `%s'", key)
  }
  return err
}

func (fs *FeatureSettings) set(key, value string) error {
  var err error
  switch key {
  case "foreground"          : fs.Foreground, err = ParseColor(value)
  case "background"          : fs.Background, err = ParseColor(value)
  case "baseline-color"      : fs.BaselineColor, err = ParseColor(value)
  case "secondary"           : fs.Secondary, err = ParseColor(value)
  case "min"                 : fs.Min, err = strconv.ParseFloat(value, 64)
  case "max"                 : fs.Max, err = strconv.ParseFloat(value, 64)
  case "baseline"            : fs.Baseline, err = strconv.ParseFloat(value, 64)
  case "scale-per-sequence"  : fs.ScalePerSequence, err = strconv.ParseBool(value)
  case "expanded"            : fs.Expanded, err = strconv.ParseBool(value)
  case "graph"               : fs.GraphType, err = ParseGraphType(value)
  case "reference"           : fs.ReferenceTrack = value
  case "baseline-independent": fs.BaselineIndependent, err = strconv.ParseBool(value)
  case "height"              : fs.Height, err = strconv.Atoi(value)
  case "row-height"          : fs.RowHeight, err = strconv.Atoi(value)
  default:
    return fmt.Errorf("unknown setting `%s'", key)
  }
  return err
}

// Read settings from a whitespace separated table with columns feature,
// key and value. The feature `*' refers to global settings. Empty lines
// and lines starting with `#' are ignored.
func (settings *Settings) Read(reader io.Reader) error {
  scanner := bufio.NewScanner(reader)
  for line := 1; scanner.Scan(); line++ {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
      continue
    }
    if len(fields) != 3 {
      return fmt.Errorf("Read(): line %d: settings file must have three columns", line)
    }
    if fields[0] == "*" {
      if err := settings.setGlobal(fields[1], fields[2]); err != nil {
        return fmt.Errorf("Read(): line %d: %v", line, err)
      }
    } else {
      fs := settings.Feature(fields[0])
      if err := fs.set(fields[1], fields[2]); err != nil {
        return fmt.Errorf("Read(): line %d: %v", line, err)
      }
      settings.SetFeature(fields[0], fs)
    }
  }
  return scanner.Err()
}

func (settings *Settings) Import(filename string) error {
  r, closer, err := openReader(filename)
  if err != nil {
    return err
  }
  defer closer()
  return settings.Read(r)
}
