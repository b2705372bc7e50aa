package youtube

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// durationRegexp matches the restricted ISO-8601 duration tokens the
// API emits for videos: hours, minutes, and seconds only.
var durationRegexp = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseDuration converts an ISO-8601 duration token like "PT1H2M3S"
// into a compact human-readable form like "1h 2m 3s". Components whose
// value is zero or absent are omitted, so "PT0S" yields "" and "PT2H"
// yields "2h". Input that does not match the token shape at all is
// returned unchanged.
func ParseDuration(raw string) string {
	m := durationRegexp.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}

	var b strings.Builder
	units := [...]string{"h", "m", "s"}
	for i, unit := range units {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			// Component too large to represent; treat the whole token
			// as unparseable and pass it through.
			return raw
		}
		if n == 0 {
			continue
		}
		fmt.Fprintf(&b, "%d%s ", n, unit)
	}
	return strings.TrimRight(b.String(), " ")
}
