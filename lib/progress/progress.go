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

package progress

/* -------------------------------------------------------------------------- */

import "fmt"
import "io"
import "os"
import "strings"
import "sync"

/* -------------------------------------------------------------------------- */

// Progress bar for n jobs that finish in arbitrary order. The bar is
// redrawn every k finished jobs.
type Progress struct {
  N, K, LineWidth int
  Label           string
  Writer          io.Writer
  mtx             sync.Mutex
  done            int
}

/* -------------------------------------------------------------------------- */

func New(n, k int) *Progress {
  progress := Progress{N: n, K: 1, LineWidth: 40, Writer: os.Stderr}
  if k > 0 && k <= n {
    progress.K = n/k
  }
  return &progress
}

/* -------------------------------------------------------------------------- */

const lineDel = "\033[2K\r"

// Format the bar for i finished jobs.
func (progress *Progress) Format(i int) string {
  var b strings.Builder

  p := 1.0
  if progress.N > 0 {
    p = float64(i)/float64(progress.N)
  }
  fmt.Fprintf(&b, "%s", lineDel)
  if progress.Label != "" {
    fmt.Fprintf(&b, "%s ", progress.Label)
  }
  b.WriteString("|")
  for j := 1; j < progress.LineWidth-1; j++ {
    if float64(j)/float64(progress.LineWidth) < p {
      b.WriteString(">")
    } else {
      b.WriteString(" ")
    }
  }
  fmt.Fprintf(&b, "| %6.2f%% (%d/%d)", p*100, i, progress.N)
  if i >= progress.N {
    b.WriteString("\n")
  }
  return b.String()
}

// Record a finished job and redraw the bar if necessary. Safe for
// concurrent use.
func (progress *Progress) Done() {
  progress.mtx.Lock()
  defer progress.mtx.Unlock()
  progress.done++
  if i := progress.done; i == 1 || i == progress.N || i % progress.K == 0 {
    fmt.Fprint(progress.Writer, progress.Format(i))
  }
}

func (progress *Progress) Finished() int {
  progress.mtx.Lock()
  defer progress.mtx.Unlock()
  return progress.done
}
