package status

import "time"

// eventTimeLayouts lists the timestamp formats the carrier has been seen
// to send, in order of preference.
var eventTimeLayouts = []string{
	"02/01/2006 15:04:05",
	"2006-01-02 15:04:05",
}

// ParseEventTime parses a carrier event timestamp. It returns nil for an
// empty or unparseable value so that a bad timestamp never blocks an event.
func ParseEventTime(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}

	return nil
}
