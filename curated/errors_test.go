// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

const testError = "test error: %s"

func TestUncurated(t *testing.T) {
	test.ExpectedFailure(t, curated.IsAny(nil))
	test.ExpectedFailure(t, curated.Is(nil, testError))
	test.ExpectedFailure(t, curated.Has(nil, testError))

	e := errors.New("plain error")
	test.ExpectedFailure(t, curated.IsAny(e))
	test.ExpectedFailure(t, curated.Is(e, testError))
	test.ExpectedFailure(t, curated.Has(e, testError))
}

func TestIsAndHas(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testError))
	test.ExpectedSuccess(t, curated.Has(e, testError))
	test.ExpectedFailure(t, curated.Is(e, "some other error"))

	// wrapping doesn't affect Has() but it does affect Is()
	f := curated.Errorf("wrapped: %v", e)
	test.ExpectedSuccess(t, curated.Has(f, testError))
	test.ExpectedSuccess(t, curated.Has(f, "wrapped: %v"))
	test.ExpectedFailure(t, curated.Is(f, testError))
}

func TestDuplicateNormalisation(t *testing.T) {
	e := curated.Errorf(testError, "foo")

	// wrap the error in itself a couple of times. the message should not
	// repeat
	f := curated.Errorf("%v", curated.Errorf("%v", e))
	test.Equate(t, f.Error(), "test error: foo")

	g := curated.Errorf("debugger: %v", curated.Errorf("debugger: %v", e))
	test.Equate(t, g.Error(), "debugger: test error: foo")
}
