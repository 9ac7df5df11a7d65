package services

import "time"

// DateAtLocation returns midnight of value's calendar day in the given
// location. The reference timezone is always an explicit named zone so
// that day boundaries survive daylight-saving transitions.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayWindow resolves value to the half-open instant range
// [start, start+24h) covering its calendar day in location. Every feed
// query uses this one window so a record timestamped exactly at start
// is included and one just before start belongs to the previous day.
func DayWindow(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}
