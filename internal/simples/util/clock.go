package util

import "time"

// ISOLayout matches the millisecond UTC form clients of the lookup API
// already parse, e.g. 2024-05-01T12:00:00.000Z.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// Now is replaced in tests.
var Now = time.Now

// Timestamp renders t in UTC using ISOLayout.
func Timestamp(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// NowTimestamp is Timestamp(Now()).
func NowTimestamp() string {
	return Timestamp(Now())
}
