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

// Package display implements the monochrome pixel buffer of the machine.
// The buffer is written to exclusively by the CPU, through the Clear() and
// DrawSprite() functions, and read by whatever renderers have been attached
// with AddPixelRenderer().
//
// DrawSprite() implements the drawing behaviour of the machine faithfully:
// sprites are XOR blitted, the starting coordinate wraps around the buffer
// edges, individual pixels beyond the edge are clipped, and the collision
// outcome is reported to the caller.
package display

// The display dimensions, in pixels.
const (
	Width  = 64
	Height = 32
)

// PixelRenderer implementations display the pixel buffer on whatever medium
// they like. Renderers are informed of every pixel change through SetPixel()
// and can expect an EndUpdate() when a batch of changes is complete.
//
// Renderers are called in the emulation goroutine. Implementations that draw
// from a different goroutine must arrange their own synchronisation.
type PixelRenderer interface {
	SetPixel(x, y int, on bool) error
	EndUpdate() error
}

// Display is the pixel buffer of the machine.
type Display struct {
	pixels [Height][Width]bool

	renderers []PixelRenderer
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{}
}

// AddPixelRenderer attaches a renderer to the display. Every renderer
// receives every pixel change.
func (dsp *Display) AddPixelRenderer(r PixelRenderer) {
	dsp.renderers = append(dsp.renderers, r)
}

// Pixel returns the state of the pixel at the given coordinates. Coordinates
// outside the buffer are never on.
func (dsp *Display) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return dsp.pixels[y][x]
}

func (dsp *Display) setPixel(x, y int, on bool) error {
	dsp.pixels[y][x] = on
	for _, r := range dsp.renderers {
		if err := r.SetPixel(x, y, on); err != nil {
			return err
		}
	}
	return nil
}

func (dsp *Display) endUpdate() error {
	for _, r := range dsp.renderers {
		if err := r.EndUpdate(); err != nil {
			return err
		}
	}
	return nil
}

// Clear every pixel in the buffer.
func (dsp *Display) Clear() error {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if dsp.pixels[y][x] {
				if err := dsp.setPixel(x, y, false); err != nil {
					return err
				}
			}
		}
	}
	return dsp.endUpdate()
}

// Reset the display to its initial, empty state.
func (dsp *Display) Reset() error {
	return dsp.Clear()
}

// DrawSprite XOR blits a sprite onto the buffer at the given coordinates.
// Each byte of the sprite is one row of eight pixels, most significant bit
// leftmost. The starting coordinate wraps around the buffer edges; pixels
// that would fall beyond an edge are clipped.
//
// Returns true if any pixel was turned from on to off by the blit.
func (dsp *Display) DrawSprite(x, y uint8, sprite []uint8) (bool, error) {
	// starting coordinates wrap around the buffer
	px := int(x) % Width
	py := int(y) % Height

	collision := false

	for row, b := range sprite {
		// rows beyond the bottom edge are clipped
		if py+row >= Height {
			break
		}

		for col := 0; col < 8; col++ {
			if b&(0x80>>col) == 0 {
				continue
			}

			// columns beyond the right edge are clipped
			if px+col >= Width {
				break
			}

			on := dsp.pixels[py+row][px+col]
			if on {
				collision = true
			}
			if err := dsp.setPixel(px+col, py+row, !on); err != nil {
				return collision, err
			}
		}
	}

	return collision, dsp.endUpdate()
}
