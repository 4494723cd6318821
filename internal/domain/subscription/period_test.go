package subscription

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEndDate(t *testing.T) {
	start := date(2024, time.January, 15)

	end, err := EndDate(start, BillingMonthly)
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}
	if !end.Equal(date(2024, time.February, 15)) {
		t.Errorf("monthly end = %v, want 2024-02-15", end)
	}

	end, err = EndDate(start, BillingYearly)
	if err != nil {
		t.Fatalf("yearly: %v", err)
	}
	if !end.Equal(date(2025, time.January, 15)) {
		t.Errorf("yearly end = %v, want 2025-01-15", end)
	}
}

func TestEndDateMonthOverflow(t *testing.T) {
	// AddDate normalizes: Jan 31 + 1 month lands in early March.
	end, err := EndDate(date(2024, time.January, 31), BillingMonthly)
	if err != nil {
		t.Fatal(err)
	}
	if !end.Equal(date(2024, time.March, 2)) {
		t.Errorf("end = %v, want 2024-03-02", end)
	}
}

func TestEndDateInvalidModel(t *testing.T) {
	if _, err := EndDate(date(2024, time.January, 1), BillingModel("WEEKLY")); !errors.Is(err, ErrInvalidBillingModel) {
		t.Errorf("err = %v, want ErrInvalidBillingModel", err)
	}
}

func TestRemainingDays(t *testing.T) {
	now := date(2024, time.June, 1)

	tests := []struct {
		name string
		end  time.Time
		want int64
	}{
		{"past", date(2024, time.May, 1), 0},
		{"exactly now", now, 0},
		{"ten days ahead", date(2024, time.June, 11), 10},
		{"partial day rounds up", now.Add(36 * time.Hour), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemainingDays(tt.end, now); got != tt.want {
				t.Errorf("RemainingDays(%v) = %d, want %d", tt.end, got, tt.want)
			}
		})
	}
}

func TestEndDateWithRemainingDays(t *testing.T) {
	now := date(2024, time.June, 1)
	prevEnd := date(2024, time.June, 11) // 10 days left

	end, err := EndDateWithRemainingDays(now, BillingMonthly, prevEnd, now)
	if err != nil {
		t.Fatal(err)
	}
	if !end.Equal(date(2024, time.July, 11)) {
		t.Errorf("end = %v, want 2024-07-11", end)
	}

	// Nothing left to carry over.
	end, err = EndDateWithRemainingDays(now, BillingMonthly, date(2024, time.May, 1), now)
	if err != nil {
		t.Fatal(err)
	}
	if !end.Equal(date(2024, time.July, 1)) {
		t.Errorf("end = %v, want 2024-07-01", end)
	}
}
