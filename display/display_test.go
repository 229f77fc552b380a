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

package display_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/display"
	"github.com/jetsetilly/gopher8/test"
)

// the "0" sprite from the machine's font
var zeroSprite = []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0}

func TestDrawSprite(t *testing.T) {
	dsp := display.NewDisplay()

	collision, err := dsp.DrawSprite(0, 0, zeroSprite)
	test.ExpectedSuccess(t, err)
	test.Equate(t, collision, false)

	// top row of the glyph is four pixels wide
	test.Equate(t, dsp.Pixel(0, 0), true)
	test.Equate(t, dsp.Pixel(1, 0), true)
	test.Equate(t, dsp.Pixel(2, 0), true)
	test.Equate(t, dsp.Pixel(3, 0), true)
	test.Equate(t, dsp.Pixel(4, 0), false)

	// second row is the two outer pixels only
	test.Equate(t, dsp.Pixel(0, 1), true)
	test.Equate(t, dsp.Pixel(1, 1), false)
	test.Equate(t, dsp.Pixel(2, 1), false)
	test.Equate(t, dsp.Pixel(3, 1), true)
}

func TestDoubleDraw(t *testing.T) {
	dsp := display.NewDisplay()

	// drawing the same sprite twice in the same place erases it. the second
	// draw collides on every pixel
	collision, err := dsp.DrawSprite(10, 5, zeroSprite)
	test.ExpectedSuccess(t, err)
	test.Equate(t, collision, false)

	collision, err = dsp.DrawSprite(10, 5, zeroSprite)
	test.ExpectedSuccess(t, err)
	test.Equate(t, collision, true)

	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			if dsp.Pixel(x, y) {
				t.Fatalf("pixel (%d,%d) unexpectedly on after double draw", x, y)
			}
		}
	}
}

func TestPartialCollision(t *testing.T) {
	dsp := display.NewDisplay()

	// single-pixel sprite
	dot := []uint8{0x80}

	collision, err := dsp.DrawSprite(0, 0, dot)
	test.ExpectedSuccess(t, err)
	test.Equate(t, collision, false)

	// a sprite overlapping an existing pixel collides even though other
	// pixels of the sprite do not
	collision, err = dsp.DrawSprite(0, 0, []uint8{0xc0})
	test.ExpectedSuccess(t, err)
	test.Equate(t, collision, true)

	// the overlapped pixel is now off, the fresh pixel on
	test.Equate(t, dsp.Pixel(0, 0), false)
	test.Equate(t, dsp.Pixel(1, 0), true)
}

func TestStartCoordinateWrap(t *testing.T) {
	dsp := display.NewDisplay()

	// starting coordinates wrap around the buffer. (68, 35) is (4, 3)
	collision, err := dsp.DrawSprite(68, 35, []uint8{0x80})
	test.ExpectedSuccess(t, err)
	test.Equate(t, collision, false)
	test.Equate(t, dsp.Pixel(4, 3), true)
}

func TestClipRight(t *testing.T) {
	dsp := display.NewDisplay()

	// a sprite drawn near the right edge is clipped, not wrapped
	_, err := dsp.DrawSprite(62, 0, []uint8{0xff})
	test.ExpectedSuccess(t, err)
	test.Equate(t, dsp.Pixel(62, 0), true)
	test.Equate(t, dsp.Pixel(63, 0), true)
	test.Equate(t, dsp.Pixel(0, 0), false)
	test.Equate(t, dsp.Pixel(1, 0), false)
}

func TestClipBottom(t *testing.T) {
	dsp := display.NewDisplay()

	// a sprite drawn near the bottom edge loses its lower rows
	_, err := dsp.DrawSprite(0, 30, zeroSprite)
	test.ExpectedSuccess(t, err)
	test.Equate(t, dsp.Pixel(0, 30), true)
	test.Equate(t, dsp.Pixel(0, 31), true)
	test.Equate(t, dsp.Pixel(0, 0), false)
	test.Equate(t, dsp.Pixel(0, 1), false)
}

func TestClear(t *testing.T) {
	dsp := display.NewDisplay()

	_, err := dsp.DrawSprite(0, 0, zeroSprite)
	test.ExpectedSuccess(t, err)
	test.Equate(t, dsp.Pixel(0, 0), true)

	err = dsp.Clear()
	test.ExpectedSuccess(t, err)
	test.Equate(t, dsp.Pixel(0, 0), false)
}

// mock renderer counting pixel changes and updates
type mockRenderer struct {
	pixels  int
	updates int
}

func (m *mockRenderer) SetPixel(x, y int, on bool) error {
	m.pixels++
	return nil
}

func (m *mockRenderer) EndUpdate() error {
	m.updates++
	return nil
}

func TestRendererNotification(t *testing.T) {
	dsp := display.NewDisplay()
	m := &mockRenderer{}
	dsp.AddPixelRenderer(m)

	// the "0" glyph has 14 lit pixels
	_, err := dsp.DrawSprite(0, 0, zeroSprite)
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.pixels, 14)
	test.Equate(t, m.updates, 1)

	// clearing the display notifies only the pixels that were on
	err = dsp.Clear()
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.pixels, 28)
	test.Equate(t, m.updates, 2)
}
