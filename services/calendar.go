package services

import "time"

// DateOnly strips the time component, normalising to midnight UTC. All
// ledger and booking dates are compared at day granularity.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StayDates enumerates the occupied nights of a stay as the half-open range
// [checkIn, checkOut): the checkout day itself is not included, since the
// guest vacates that morning.
func StayDates(checkIn, checkOut time.Time) ([]time.Time, error) {
	in := DateOnly(checkIn)
	out := DateOnly(checkOut)

	if !out.After(in) {
		return nil, ErrInvalidStayRange
	}

	var dates []time.Time
	for d := in; d.Before(out); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates, nil
}
