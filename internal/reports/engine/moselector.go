package engine

import (
	"strings"
	"time"

	"github.com/suchithrkar/kci-upload-creation-tool/internal/casedata"
)

// Orders created within this window back from the newest one are treated
// as a single burst of near-simultaneous order-system writes; the window
// only looks backward from the maximum timestamp.
const burstWindow = 5 * time.Minute

// Lower number wins. A status that represents a more final state beats
// mere recency within one burst.
var statusPriority = map[string]int{
	"closed":            1,
	"pod":               2,
	"shipped":           3,
	"ordered":           4,
	"partially ordered": 5,
	"order pending":     6,
	"new":               7,
	"cancelled":         8,
}

const unknownStatusPriority = 9

func priorityOf(status string) int {
	if p, ok := statusPriority[strings.ToLower(strings.TrimSpace(status))]; ok {
		return p
	}
	return unknownStatusPriority
}

// SelectMaterialOrder picks the material order representing the current
// status of a case: among orders created within the burst window of the
// newest one, the highest-priority status wins, ties broken by recency.
// Returns false when the case has no material orders.
func SelectMaterialOrder(caseID string, orders []casedata.MaterialOrder) (casedata.MaterialOrder, bool) {
	var candidates []casedata.MaterialOrder
	for _, mo := range orders {
		if mo.CaseID == caseID {
			candidates = append(candidates, mo)
		}
	}
	if len(candidates) == 0 {
		return casedata.MaterialOrder{}, false
	}

	latest := candidates[0].CreatedOn
	for _, mo := range candidates[1:] {
		if mo.CreatedOn.After(latest) {
			latest = mo.CreatedOn
		}
	}
	windowStart := latest.Add(-burstWindow)

	best := casedata.MaterialOrder{}
	bestPriority := 0
	found := false
	for _, mo := range candidates {
		if mo.CreatedOn.Before(windowStart) {
			continue
		}
		p := priorityOf(mo.OrderStatus)
		switch {
		case !found, p < bestPriority:
			best, bestPriority, found = mo, p, true
		case p == bestPriority && mo.CreatedOn.After(best.CreatedOn):
			best = mo
		}
	}
	return best, found
}
