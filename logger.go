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
import "io"
import "os"
import "sync"

/* -------------------------------------------------------------------------- */

// Verbosity gated diagnostics. A nil logger is silent, messages at level
// zero are always printed otherwise.
type Logger struct {
  Verbose int
  Writer  io.Writer
  mtx     sync.Mutex
  seen    map[string]struct{}
}

func NewLogger(verbose int, writer io.Writer) *Logger {
  if writer == nil {
    writer = os.Stderr
  }
  return &Logger{Verbose: verbose, Writer: writer}
}

/* -------------------------------------------------------------------------- */

func (logger *Logger) Printf(level int, format string, args ...interface{}) {
  if logger == nil || logger.Verbose < level {
    return
  }
  w := logger.Writer
  if w == nil {
    w = os.Stderr
  }
  logger.mtx.Lock()
  defer logger.mtx.Unlock()
  fmt.Fprintf(w, format, args...)
}

// Print a diagnostic only the first time key is seen. Returns true if the
// message was recorded.
func (logger *Logger) Once(key string, format string, args ...interface{}) bool {
  if logger == nil {
    return false
  }
  logger.mtx.Lock()
  if logger.seen == nil {
    logger.seen = make(map[string]struct{})
  }
  if _, ok := logger.seen[key]; ok {
    logger.mtx.Unlock()
    return false
  }
  logger.seen[key] = struct{}{}
  logger.mtx.Unlock()

  logger.Printf(0, format, args...)
  return true
}
