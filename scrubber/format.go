package scrubber

import (
	"fmt"
	"math"
)

// FormatTime renders seconds as m:ss.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}
	mins := int(math.Floor(seconds / 60))
	secs := int(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// Label renders the elapsed / total time label.
func Label(cur, dur float64) string {
	return FormatTime(cur) + " / " + FormatTime(dur)
}
