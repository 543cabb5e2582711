package game

import "fmt"

// Window title refresh period, in ticks.
const titleInterval = 10

func hudTitle(base string, v view) string {
	f := v.Frame
	state := "grip"
	if f.Drifting {
		state = "drift"
	}
	return fmt.Sprintf("%s | speed %.2f | %s | cam %s | smoke %d (%.0f%%)",
		base, f.Result.Speed, state, f.Camera.Mode, v.Smoke, v.Opacity*100)
}
