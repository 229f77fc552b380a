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

package cartridgeloader_test

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/test"
)

func TestLoadFile(t *testing.T) {
	rom := []byte{0x12, 0x00, 0xa2, 0x2a}

	fn := filepath.Join(t.TempDir(), "example.ch8")
	err := os.WriteFile(fn, rom, 0600)
	test.ExpectedSuccess(t, err)

	cl := cartridgeloader.NewLoader(fn)
	test.Equate(t, cl.HasLoaded(), false)
	test.Equate(t, cl.ShortName(), "example")

	err = cl.Load()
	test.ExpectedSuccess(t, err)
	test.Equate(t, cl.HasLoaded(), true)
	test.Equate(t, len(cl.Data), 4)
	test.Equate(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(rom)))
}

func TestLoadMissingFile(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "does_not_exist.ch8"))
	test.ExpectedFailure(t, cl.Load())
}

func TestLoadEmptyFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "empty.ch8")
	err := os.WriteFile(fn, []byte{}, 0600)
	test.ExpectedSuccess(t, err)

	cl := cartridgeloader.NewLoader(fn)
	test.ExpectedFailure(t, cl.Load())
}

func TestHashValidation(t *testing.T) {
	rom := []byte{0x12, 0x00}

	fn := filepath.Join(t.TempDir(), "example.ch8")
	err := os.WriteFile(fn, rom, 0600)
	test.ExpectedSuccess(t, err)

	// an incorrect hash should cause a load failure
	cl := cartridgeloader.NewLoader(fn)
	cl.Hash = "0000000000000000000000000000000000000000"
	test.ExpectedFailure(t, cl.Load())

	// the correct hash should not
	cl = cartridgeloader.NewLoader(fn)
	cl.Hash = fmt.Sprintf("%x", sha1.Sum(rom))
	test.ExpectedSuccess(t, cl.Load())
}
