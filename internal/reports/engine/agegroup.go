// Package engine implements the record-linkage and derivation core: pure
// functions that join the per-case record collections of a session
// snapshot and compute the consolidated repair-case and closed-case
// outputs. The engine raises no errors; absent data degrades to defaults.
package engine

import "time"

type ageBucket struct {
	maxDays float64
	label   string
}

// Ordered bucket table with inclusive upper bounds.
var ageBuckets = []ageBucket{
	{3, "0–3 Days"},
	{5, "3–5 Days"},
	{10, "5–10 Days"},
	{15, "10–15 Days"},
	{30, "15–30 Days"},
	{60, "30–60 Days"},
	{90, "60–90 Days"},
}

const ageOverflowLabel = "> 90 Days"

// AgeGroup returns the case-age bucket label for a case created at
// createdOn, evaluated at now. Future timestamps clamp to zero age.
func AgeGroup(now, createdOn time.Time) string {
	ageDays := now.Sub(createdOn).Hours() / 24
	if ageDays < 0 {
		ageDays = 0
	}

	for _, bucket := range ageBuckets {
		if ageDays <= bucket.maxDays {
			return bucket.label
		}
	}
	return ageOverflowLabel
}
