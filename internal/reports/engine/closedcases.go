package engine

import (
	"time"

	"github.com/suchithrkar/kci-upload-creation-tool/internal/casedata"
)

// autoCloseActor is the CRM batch account that auto-closes stale cases.
const autoCloseActor = "# CrmWebJobUser-Prod"

// autoCloseDisplay is shown instead of the batch account name.
const autoCloseDisplay = "CRM Auto Closed"

// System and admin accounts whose modifications hide the real closing
// agent; for these the case owner is reported instead.
var ownerOverrideActors = map[string]struct{}{
	"# MSFT-ServiceSystemAdmin":    {},
	"# CrmEEGUser-Prod":            {},
	"# MSFT-ServiceSystemAdminDev": {},
	"SYSTEM":                       {},
}

// DefaultClosedCaseMonths is the default trailing window for the
// closed-case report.
const DefaultClosedCaseMonths = 6

// BuildClosedCaseReports joins closed cases against previously derived
// repair cases. A closed case is reported only when it closed on or after
// the first day of the month monthsBack months before now, and a repair
// case with the same case id exists.
func BuildClosedCaseReports(now time.Time, closed []casedata.ClosedCase, repairs []casedata.RepairCase, monthsBack int) []casedata.ClosedCaseReport {
	if monthsBack <= 0 {
		monthsBack = DefaultClosedCaseMonths
	}
	cutoff := monthStart(now, monthsBack)

	repairByCase := make(map[string]casedata.RepairCase, len(repairs))
	for _, rc := range repairs {
		if _, exists := repairByCase[rc.CaseID]; !exists {
			repairByCase[rc.CaseID] = rc
		}
	}

	var out []casedata.ClosedCaseReport
	for _, cc := range closed {
		if cc.ClosedOn.Before(cutoff) {
			continue
		}
		repair, ok := repairByCase[cc.CaseID]
		if !ok {
			continue
		}

		out = append(out, casedata.ClosedCaseReport{
			CaseID:         cc.CaseID,
			CustomerName:   cc.CustomerName,
			CreatedOn:      cc.CreatedOn,
			CreatedBy:      cc.CreatedBy,
			ModifiedBy:     cc.ModifiedBy,
			ModifiedOn:     cc.ModifiedOn,
			ClosedOn:       cc.ClosedOn,
			ClosedBy:       closedBy(cc.ModifiedBy, cc.Owner),
			Country:        cc.Country,
			ResolutionCode: cc.ResolutionCode,
			CaseOwner:      cc.CaseOwner,
			OTCCode:        cc.OTCCode,
			TL:             repair.TL,
			SBD:            repair.SBD,
			Market:         repair.Market,
		})
	}
	return out
}

// monthStart returns the first instant of the month monthsBack months
// before the reference; the year rolls back as needed.
func monthStart(reference time.Time, monthsBack int) time.Time {
	return time.Date(reference.Year(), reference.Month()-time.Month(monthsBack), 1, 0, 0, 0, 0, reference.Location())
}

// closedBy computes the display actor for "closed by".
func closedBy(modifiedBy, owner string) string {
	if modifiedBy == autoCloseActor {
		return autoCloseDisplay
	}
	if _, system := ownerOverrideActors[modifiedBy]; system {
		return owner
	}
	return modifiedBy
}
