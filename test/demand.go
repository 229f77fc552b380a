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

package test

import "testing"

// DemandSuccess is a stricter form of ExpectedSuccess(). Failure of the test
// is a testing fatality, ending the test immediately.
//
// Useful when subsequent test expressions rely on the success condition. For
// example, demanding that a command template parses before using it to
// validate input.
func DemandSuccess(t *testing.T, v interface{}) {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			t.Fatalf("demanded success (bool)")
		}

	case error:
		if v != nil {
			t.Fatalf("demanded success (error: %v)", v)
		}

	case nil:

	default:
		t.Fatalf("unsupported type (%T) for demand testing", v)
	}
}
