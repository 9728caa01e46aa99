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

import "fmt"
import "math"
import "strings"

/* -------------------------------------------------------------------------- */

// Read access to numeric data by position relative to the sequence start.
type ValueSource interface {
  Size   ()             int
  ValueAt(relative int) float64
}

/* -------------------------------------------------------------------------- */

type SamplerMode int

const (
  SampleExtreme SamplerMode = iota
  SampleAverage
  SampleCenter
)

func ParseSamplerMode(str string) (SamplerMode, error) {
  switch strings.ToLower(str) {
  case "extreme": return SampleExtreme, nil
  case "average": return SampleAverage, nil
  case "center" : return SampleCenter,  nil
  default:
    return SampleExtreme, fmt.Errorf("invalid sampler mode `%s'", str)
  }
}

func (mode SamplerMode) String() string {
  switch mode {
  case SampleExtreme: return "extreme"
  case SampleAverage: return "average"
  case SampleCenter : return "center"
  default:            return "invalid"
  }
}

/* -------------------------------------------------------------------------- */

// Configuration of the value sampler. A single instance is shared by all
// numeric renderers of a panel, so that changing the mode affects every
// track in the same way.
type SamplerConfig struct {
  Mode                 SamplerMode
  // intervals longer than this are sampled instead of scanned
  SamplingLengthCutoff int
  // number of positions scanned for sampled intervals
  SamplingSize         int
}

func NewSamplerConfig() *SamplerConfig {
  return &SamplerConfig{
    Mode                : SampleExtreme,
    SamplingLengthCutoff: 10000,
    SamplingSize        : 100 }
}

/* -------------------------------------------------------------------------- */

// Positions scanned for the interval [from, to]. For intervals longer
// than the cutoff a uniform sample of fixed size is returned, which
// always contains both boundaries.
func (config *SamplerConfig) samplePositions(from, to int, f func(int)) {
  n := to - from + 1
  k := config.SamplingSize
  if n <= config.SamplingLengthCutoff || k <= 0 || k >= n {
    for i := from; i <= to; i++ {
      f(i)
    }
    return
  }
  if k == 1 {
    f(from + (to-from)/2)
    return
  }
  step := float64(n-1)/float64(k-1)
  for i := 0; i < k; i++ {
    f(from + iRound(float64(i)*step))
  }
}

// Value that represents all positions in the interval [from, to] given
// relative to the sequence start. The interval is clamped to the data, NaN
// is returned if no data is available.
func (config *SamplerConfig) RepresentativeValue(src ValueSource, from, to int) float64 {
  if from > to {
    from, to = to, from
  }
  from = iMax(from, 0)
  to   = iMin(to, src.Size()-1)
  if from > to {
    return math.NaN()
  }
  switch config.Mode {
  case SampleCenter:
    return src.ValueAt(from + (to-from)/2)
  case SampleAverage:
    sum := 0.0
    n   := 0
    config.samplePositions(from, to, func(i int) {
      if v := src.ValueAt(i); !math.IsNaN(v) {
        sum += v
        n   += 1
      }
    })
    if n == 0 {
      return math.NaN()
    }
    return sum/float64(n)
  default:
    result := math.NaN()
    config.samplePositions(from, to, func(i int) {
      v := src.ValueAt(i)
      if math.IsNaN(v) {
        return
      }
      // strict inequality keeps the first occurrence
      if math.IsNaN(result) || math.Abs(v) > math.Abs(result) {
        result = v
      }
    })
    return result
  }
}

/* baseline
 * -------------------------------------------------------------------------- */

// Vertical partition of a numeric track. If a baseline is in effect the
// track consists of Above rows, one baseline row and Below rows (from top
// to bottom).
type BaselineLayout struct {
  Height      int
  Above       int
  Below       int
  HasBaseline bool
  Min         float64
  Max         float64
  Baseline    float64
}

// A baseline is in effect if it is strictly above the minimum. Unless the
// renderer is baseline independent, the bands are sized proportionally to
// |max-baseline| and |baseline-min|.
func NewBaselineLayout(height int, min, max, baseline float64, independent bool) BaselineLayout {
  layout := BaselineLayout{Height: iMax(height, 0), Min: min, Max: max, Baseline: baseline}
  if layout.Height == 0 {
    return layout
  }
  if !(baseline > min) {
    layout.Above    = layout.Height
    layout.Baseline = min
    return layout
  }
  layout.HasBaseline = true
  if independent {
    layout.Above = (layout.Height-1)/2
  } else {
    a := math.Abs(max - baseline)
    b := math.Abs(baseline - min)
    if a+b > 0.0 {
      layout.Above = iRound(float64(layout.Height-1)*a/(a+b))
    }
  }
  layout.Below = layout.Height - 1 - layout.Above
  return layout
}

// Row of the baseline relative to the top of the track. Without a baseline
// bars start below the last row.
func (layout BaselineLayout) BaselineRow() int {
  if layout.HasBaseline {
    return layout.Above
  }
  return layout.Height
}

// Signed bar height in pixels, positive values extend upwards from the
// baseline. Values outside [Min, Max] are clamped.
func (layout BaselineLayout) BarHeight(value float64) float64 {
  if math.IsNaN(value) {
    return 0.0
  }
  value = fClamp(value, layout.Min, layout.Max)
  if value >= layout.Baseline {
    if !(layout.Max > layout.Baseline) {
      return 0.0
    }
    return (value - layout.Baseline)/(layout.Max - layout.Baseline)*float64(layout.Above)
  } else {
    if !(layout.Baseline > layout.Min) {
      return 0.0
    }
    return -(layout.Baseline - value)/(layout.Baseline - layout.Min)*float64(layout.Below)
  }
}

// Inverse of BarHeight, converts a row relative to the top of the track to
// a value. Used by the draw tool.
func (layout BaselineLayout) ValueAtRow(row int) float64 {
  row = iClamp(row, 0, iMax(layout.Height-1, 0))
  base := layout.BaselineRow()
  if row < base || !layout.HasBaseline {
    if layout.Above == 0 {
      return layout.Baseline
    }
    h := float64(base - row)
    return layout.Baseline + h/float64(layout.Above)*(layout.Max - layout.Baseline)
  }
  if row == base || layout.Below == 0 {
    return layout.Baseline
  }
  return layout.Baseline - float64(row - base)/float64(layout.Below)*(layout.Baseline - layout.Min)
}
