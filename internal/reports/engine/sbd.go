package engine

import (
	"time"

	"github.com/suchithrkar/kci-upload-creation-tool/internal/rules"
)

// SBD evaluation outcomes.
const (
	SBDMet    = "Met"
	SBDNotMet = "Not Met"
	SBDNA     = "NA"
)

// SBD evaluates the service-deadline rule for one case. firstOrder is the
// earliest timestamp among the case's work, material, and service orders;
// nil when the case has no orders at all.
//
// The deadline is the creation date plus one calendar day, compared on
// date portions only, so an order placed any time on the next day still
// meets it regardless of the creation time of day.
func SBD(createdOn time.Time, country string, firstOrder *time.Time, window rules.SBDWindow) string {
	if !containsCountry(window.Countries, country) {
		return SBDNA
	}

	created := dateOf(createdOn)
	if created.Before(dateOf(window.PeriodStart)) || created.After(dateOf(window.PeriodEnd)) {
		return SBDNA
	}

	if firstOrder == nil {
		return SBDNotMet
	}

	deadline := created.AddDate(0, 0, 1)
	if !dateOf(*firstOrder).After(deadline) {
		return SBDMet
	}
	return SBDNotMet
}

// dateOf truncates a timestamp to its date portion.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func containsCountry(countries []string, country string) bool {
	for _, c := range countries {
		if c == country {
			return true
		}
	}
	return false
}
