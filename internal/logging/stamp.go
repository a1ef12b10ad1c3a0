package logging

import (
	"fmt"
	"time"
)

// Stamp renders t as YYYY-MM-DD-HH-MM-SS-mmm in local time. It is used as
// the timestamp suffix of uploaded note filenames.
func Stamp(t time.Time) string {
	return fmt.Sprintf("%s-%03d", t.Format("2006-01-02-15-04-05"), t.Nanosecond()/int(time.Millisecond))
}
