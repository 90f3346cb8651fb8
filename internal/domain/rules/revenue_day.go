package rules

import "time"

// DayKey buckets a timestamp into its UTC calendar date, the rollup key for
// daily revenue records.
func DayKey(at time.Time) string {
	return at.UTC().Format("2006-01-02")
}

// ParseDayKey is the inverse of DayKey.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", key, time.UTC)
}
