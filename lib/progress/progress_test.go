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

import "bytes"
import "strings"
import "sync"
import "testing"

/* -------------------------------------------------------------------------- */

func TestProgress1(test *testing.T) {
  var buffer bytes.Buffer
  p := New(10, 5)
  p.Writer = &buffer
  p.Label  = "rendering"

  var wg sync.WaitGroup
  for i := 0; i < 10; i++ {
    wg.Add(1)
    go func() {
      defer wg.Done()
      p.Done()
    }()
  }
  wg.Wait()

  if p.Finished() != 10 {
    test.Error("TestProgress1 failed!")
  }
  if !strings.HasSuffix(buffer.String(), "100.00% (10/10)\n") {
    test.Error("TestProgress1 failed!")
  }
  if !strings.Contains(buffer.String(), "rendering |") {
    test.Error("TestProgress1 failed!")
  }
}

func TestProgress2(test *testing.T) {
  p := New(4, 100)
  if p.K != 1 {
    test.Error("TestProgress2 failed!")
  }
  if s := p.Format(2); !strings.Contains(s, " 50.00%") || strings.HasSuffix(s, "\n") {
    test.Error("TestProgress2 failed!")
  }
}
