package subscription

import "time"

// EndDate computes start plus one billing period: a calendar month for
// MONTHLY, a calendar year for YEARLY (2024-01-15 -> 2024-02-15 /
// 2025-01-15).
func EndDate(start time.Time, model BillingModel) (time.Time, error) {
	switch model {
	case BillingMonthly:
		return start.AddDate(0, 1, 0), nil
	case BillingYearly:
		return start.AddDate(1, 0, 0), nil
	}
	return time.Time{}, ErrInvalidBillingModel
}

// RemainingDays returns 0 for any end in the past, otherwise the number
// of days until end, rounded up.
func RemainingDays(end, now time.Time) int64 {
	remaining := end.Sub(now)
	if remaining <= 0 {
		return 0
	}
	const day = 24 * time.Hour
	return int64((remaining + day - 1) / day)
}

// EndDateWithRemainingDays extends the computed end date by the days
// still left on a previous subscription, so switching plans mid-cycle
// doesn't forfeit paid time.
func EndDateWithRemainingDays(start time.Time, model BillingModel, prevEnd, now time.Time) (time.Time, error) {
	end, err := EndDate(start, model)
	if err != nil {
		return time.Time{}, err
	}
	return end.AddDate(0, 0, int(RemainingDays(prevEnd, now))), nil
}
