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

/* -------------------------------------------------------------------------- */

type ComplementableAlphabet interface {
  Complement(i byte) (byte, error)
  IsValid   (i byte) bool
  String    ()       string
}

/* -------------------------------------------------------------------------- */

// Nucleotides including the wildcard N. Case is preserved by all
// operations.
type NucleotideAlphabet struct {
}

func (NucleotideAlphabet) IsValid(i byte) bool {
  switch i {
  case 'A', 'a', 'C', 'c', 'G', 'g', 'T', 't', 'N', 'n':
    return true
  default:
    return false
  }
}

func (NucleotideAlphabet) Complement(i byte) (byte, error) {
  switch i {
  case 'A': return 'T', nil
  case 'a': return 't', nil
  case 'C': return 'G', nil
  case 'c': return 'g', nil
  case 'G': return 'C', nil
  case 'g': return 'c', nil
  case 'T': return 'A', nil
  case 't': return 'a', nil
  case 'N': return 'N', nil
  case 'n': return 'n', nil
  default:  return 0xFF, fmt.Errorf("Complement(): `%c' is not part of the alphabet", i)
  }
}

func (NucleotideAlphabet) String() string {
  return "nucleotide alphabet"
}

/* -------------------------------------------------------------------------- */

// Base as displayed for the given orientation. Letters outside the
// alphabet are shown unchanged.
func displayBase(alphabet ComplementableAlphabet, base byte, orientation Orientation) byte {
  if orientation != Reverse {
    return base
  }
  if c, err := alphabet.Complement(base); err == nil {
    return c
  }
  return base
}
