package caffeine

import (
	"fmt"
	"sort"
	"time"

	"github.com/blaisecz/caffeine-planner/internal/domain"
)

// SortByTime returns a copy of the schedule ordered by timestamp.
// Doses sharing a timestamp keep their input order.
func SortByTime(schedule []domain.Dose) []domain.Dose {
	sorted := make([]domain.Dose, len(schedule))
	copy(sorted, schedule)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// TotalMg sums the amounts of a schedule.
func TotalMg(schedule []domain.Dose) float64 {
	total := 0.0
	for _, d := range schedule {
		total += d.AmountMg
	}
	return total
}

// Validate checks a whole schedule against the constraints and returns the first
// violated rule wrapped with detail, or nil.
func Validate(schedule []domain.Dose, c domain.Constraints) error {
	// max daily
	if total := TotalMg(schedule); total > c.MaxDailyMg {
		return fmt.Errorf("%w: %.1f mg > %.1f mg", ErrDailyLimitExceeded, total, c.MaxDailyMg)
	}

	// minimum gap, on time order
	sorted := SortByTime(schedule)
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i].Timestamp.Sub(sorted[i-1].Timestamp).Hours()
		if gap < c.MinGapHours {
			return fmt.Errorf("%w: %.2fh between doses at %s and %s, need %.2fh",
				ErrGapTooShort, gap, sorted[i-1].Timestamp.Format(time.RFC3339), sorted[i].Timestamp.Format(time.RFC3339), c.MinGapHours)
		}
	}

	// cutoff
	for _, d := range sorted {
		if d.Timestamp.After(c.NoCaffeineAfter) {
			return fmt.Errorf("%w: dose at %s, cutoff %s",
				ErrAfterCutoff, d.Timestamp.Format(time.RFC3339), c.NoCaffeineAfter.Format(time.RFC3339))
		}
	}
	return nil
}

// IsValid reports whether the schedule satisfies every constraint.
func IsValid(schedule []domain.Dose, c domain.Constraints) bool {
	return Validate(schedule, c) == nil
}
