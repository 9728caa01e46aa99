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

import "compress/gzip"
import "image/color"
import "io"
import "math"
import "os"

/* -------------------------------------------------------------------------- */

func iMin(a, b int) int {
  if a < b {
    return a
  } else {
    return b
  }
}

func iMax(a, b int) int {
  if a > b {
    return a
  } else {
    return b
  }
}

func iAbs(a int) int {
  if a < 0 {
    return -a
  }
  return a
}

func iClamp(a, lo, hi int) int {
  if a < lo {
    return lo
  }
  if a > hi {
    return hi
  }
  return a
}

func fClamp(a, lo, hi float64) float64 {
  if a < lo {
    return lo
  }
  if a > hi {
    return hi
  }
  return a
}

// Round to the nearest integer, halfway cases away from zero.
func iRound(x float64) int {
  return int(math.Round(x))
}

/* -------------------------------------------------------------------------- */

// Linear interpolation between two colors, t = 0 returns a and t = 1
// returns b.
func blendColor(a, b color.Color, t float64) color.RGBA {
  t = fClamp(t, 0.0, 1.0)
  r1, g1, b1, a1 := a.RGBA()
  r2, g2, b2, a2 := b.RGBA()
  mix := func(x, y uint32) uint8 {
    return uint8((float64(x)*(1.0-t) + float64(y)*t)/257.0 + 0.5)
  }
  return color.RGBA{mix(r1, r2), mix(g1, g2), mix(b1, b2), mix(a1, a2)}
}

func darkerColor(c color.Color) color.RGBA {
  return blendColor(c, color.Black, 0.35)
}

/* -------------------------------------------------------------------------- */

func isGzip(filename string) bool {

  f, err := os.Open(filename)
  if err != nil {
    return false
  }
  defer f.Close()

  b := make([]byte, 2)
  n, err := f.Read(b)
  if err != nil {
    return false
  }

  if n == 2 && b[0] == 31 && b[1] == 139 {
    return true
  }
  return false
}

// Open a file for reading, gzipped files are decompressed on the fly. The
// returned function closes all opened readers.
func openReader(filename string) (io.Reader, func(), error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, nil, err
  }
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      f.Close()
      return nil, nil, err
    }
    return g, func() { g.Close(); f.Close() }, nil
  }
  return f, func() { f.Close() }, nil
}
