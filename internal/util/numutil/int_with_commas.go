package numutil

import "fmt"

// Int64WithCommas returns a string representation of an integer with commas.
//
// Example:
//
//	12345 -> "12,345"
func Int64WithCommas(i int64) string {
	if i < 0 {
		return "-" + Int64WithCommas(-i)
	}
	if i < 1000 {
		return fmt.Sprintf("%d", i)
	}
	return Int64WithCommas(i/1000) + "," + fmt.Sprintf("%03d", i%1000)
}
