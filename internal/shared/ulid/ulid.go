package ulid

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID returns a ULID for the current time. Used for request and message IDs.
var NewULID = func() string {
	return ulid.Make().String()
}

// NewULIDAt returns a ULID whose timestamp part is t, so generated batch IDs
// sort by the time the batch was received.
var NewULIDAt = func(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy()).String()
}

// TimeOf returns the time encoded in id, or false if id is not a valid ULID.
func TimeOf(id string) (time.Time, bool) {
	parsed, err := ulid.ParseStrict(id)
	if err != nil {
		return time.Time{}, false
	}
	return ulid.Time(parsed.Time()).UTC(), true
}
