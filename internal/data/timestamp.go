package data

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// TimestampLayout is the stored ISO-8601 form. It is fixed width, so sorting
// the strings sorts the instants.
const TimestampLayout = "2006-01-02T15:04:05.000000-07:00"

// naiveLayout accepts ISO-8601 strings written without an offset; they are read as UTC.
const naiveLayout = "2006-01-02T15:04:05.999999999"

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp converts a stored timestamp value back into a UTC time.Time.
// Strings in any RFC 3339 form are accepted, as are native BSON datetimes.
func ParseTimestamp(v any) (time.Time, error) {
	switch ts := v.(type) {
	case string:
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			return t.UTC(), nil
		}
		t, err := time.ParseInLocation(naiveLayout, ts, time.UTC)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", ts, err)
		}
		return t, nil
	case bson.DateTime:
		return ts.Time().UTC(), nil
	case time.Time:
		return ts.UTC(), nil
	case nil:
		return time.Time{}, fmt.Errorf("missing timestamp")
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp type %T", v)
	}
}
