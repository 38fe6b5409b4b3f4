// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package checked provides overflow-checked arithmetic on signed integers.
//
// A wrapped result would silently corrupt an algebraic identity, so every
// operation reports overflow to the caller instead of wrapping.
package checked

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrOverflow reports that an arithmetic result does not fit in its type.
var ErrOverflow = errors.New("integer overflow")

// Add returns x+y, or ErrOverflow if the sum does not fit in T.
func Add[T constraints.Signed](x, y T) (T, error) {
	s := x + y
	if (y > 0 && s < x) || (y < 0 && s > x) {
		return 0, errors.Wrapf(ErrOverflow, "%d + %d", x, y)
	}
	return s, nil
}

// Mul returns x*y, or ErrOverflow if the product does not fit in T.
func Mul[T constraints.Signed](x, y T) (T, error) {
	if x == 0 || y == 0 {
		return 0, nil
	}
	if y == -1 {
		return Neg(x)
	}
	p := x * y
	// y is neither 0 nor -1 here, so the division cannot trap.
	if p/y != x {
		return 0, errors.Wrapf(ErrOverflow, "%d * %d", x, y)
	}
	return p, nil
}

// Neg returns -x, or ErrOverflow when x is the minimum value of T.
func Neg[T constraints.Signed](x T) (T, error) {
	if x != 0 && -x == x {
		return 0, errors.Wrapf(ErrOverflow, "-(%d)", x)
	}
	return -x, nil
}
