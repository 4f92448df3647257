package bekk

import (
	"fmt"
	"time"
)

// formatDuration renders an elapsed time at two decimals, picking the unit
// by magnitude: minutes, seconds, milliseconds or microseconds.
func formatDuration(d time.Duration) string {
	t := d.Seconds()
	switch {
	case t > 60:
		return fmt.Sprintf("%.2f min", t/60)
	case t > 1e-2:
		return fmt.Sprintf("%.2f s", t)
	case t > 1e-5:
		return fmt.Sprintf("%.2f ms", t*1e3)
	default:
		return fmt.Sprintf("%.2f us", t*1e6)
	}
}
