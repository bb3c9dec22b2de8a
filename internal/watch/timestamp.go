package watch

import (
	"fmt"
	"time"
)

// Timestamp formats t as a fixed-width UTC string of exactly 17 ASCII
// digits: YYYYMMDDHHMMSSmmm. Lexicographic order matches wall-clock
// order at millisecond resolution, so the strings double as sortable
// uniqueness keys in backup filenames.
func Timestamp(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%04d%02d%02d%02d%02d%02d%03d",
		t.Year(),
		int(t.Month()),
		t.Day(),
		t.Hour(),
		t.Minute(),
		t.Second(),
		t.Nanosecond()/int(time.Millisecond),
	)
}
