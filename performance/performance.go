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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/display"
	"github.com/jetsetilly/gopher8/hardware"
)

// Check is a very rough and ready calculation of the emulator's performance.
//
// The machine runs flat out with no display attached and no rate limiting,
// so the resulting figures are a measure of maximum throughput. A CPU or
// memory profile can be captured at the same time, as defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, cartload cartridgeloader.Loader, ips int, duration string) error {
	mac := hardware.NewMachine(display.NewDisplay())
	mac.SetInstructionRate(ips)

	if err := mac.AttachCartridge(cartload); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startFrame := 0
	instructions := 0

	runner := func() error {
		// the timer channel signals false when the leadtime has elapsed and
		// measurement should begin; true when the measurement period is over
		timerChan := make(chan bool)

		// force a two second leadtime to let the host warm up, then restart
		// the timer for the specified duration
		go func() {
			time.AfterFunc(2*time.Second, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		// checking the timer channel is relatively expensive so only do it
		// every PerformanceBrake instructions
		performanceBrake := 0

		return mac.Run(func() (bool, error) {
			instructions++

			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					if v {
						return false, nil
					}

					// leadtime has concluded. note the start frame and begin
					// counting instructions from nothing
					startFrame = mac.Frame()
					instructions = 0
				default:
				}
			}

			return true, nil
		})
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	if err := RunProfiler(profile, "performance", runner); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := mac.Frame() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))
	output.Write([]byte(fmt.Sprintf("%.0f instructions per second (rate requested %d)\n", float64(instructions)/dur.Seconds(), mac.InstructionRate())))

	return nil
}
