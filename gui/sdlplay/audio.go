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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"
)

// the machine has a single sound, a flat tone. the pitch is not defined by
// the machine so we can choose something pleasant.
const toneFreq = 440

const sampleFreq = 22050

// the amplitude of the tone above and below the silence level.
const toneAmplitude = 24

// beeper sounds the tone through SDL. the tone is started and stopped with
// setTone() and the audio queue is kept topped up with service().
type beeper struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// one wavelength of a square wave. queued repeatedly for as long as the
	// tone is sounding
	wave []uint8

	tone bool
}

// newBeeper is the preferred method of initialisation for the beeper type.
//
// prerequisite: SDL_INIT_AUDIO must be included in the call to sdl.Init().
func newBeeper() (*beeper, error) {
	bpr := &beeper{}

	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var err error
	var actualSpec sdl.AudioSpec

	bpr.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}
	bpr.spec = actualSpec

	bpr.wave = make([]uint8, sampleFreq/toneFreq)
	for i := range bpr.wave {
		if i < len(bpr.wave)/2 {
			bpr.wave[i] = bpr.spec.Silence + toneAmplitude
		} else {
			bpr.wave[i] = bpr.spec.Silence - toneAmplitude
		}
	}

	sdl.PauseAudioDevice(bpr.id, false)

	return bpr, nil
}

// setTone starts and stops the tone.
func (bpr *beeper) setTone(on bool) {
	if bpr.tone && !on {
		sdl.ClearQueuedAudio(bpr.id)
	}
	bpr.tone = on
}

// keep the audio queue topped up while the tone is sounding. called once per
// iteration of the service loop.
func (bpr *beeper) service() {
	if !bpr.tone {
		return
	}

	// a tenth of a second of queued audio is plenty. the queue is topped up
	// again long before it runs dry
	for sdl.GetQueuedAudioSize(bpr.id) < sampleFreq/10 {
		_ = sdl.QueueAudio(bpr.id, bpr.wave)
	}
}

// end releases the audio device. the beeper is not usable after this.
func (bpr *beeper) end() {
	sdl.ClearQueuedAudio(bpr.id)
	sdl.CloseAudioDevice(bpr.id)
}
