package career

import "time"

// entryDateFormats are tried in order when parsing entry dates. Exports from
// other tools range from full RFC 3339 timestamps down to plain calendar
// dates.
var entryDateFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses an entry date string. Returns the zero time if the string
// is empty or matches no supported format; the zero time sorts before any
// real date, so undated entries never displace dated ones.
func ParseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range entryDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
