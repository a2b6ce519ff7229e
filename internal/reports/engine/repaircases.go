package engine

import (
	"strings"
	"time"

	"github.com/suchithrkar/kci-upload-creation-tool/internal/casedata"
	"github.com/suchithrkar/kci-upload-creation-tool/internal/rules"
)

// primaryLineSuffix marks the line item of interest on a material order.
// The source system encodes "primary line" only through this naming
// convention; there is no structural field for it.
const primaryLineSuffix = "- 1"

// dnapPhrase in a CSO repair status marks an offsite repair that came back
// unrepaired ("did not arrive properly").
const dnapPhrase = "product returned unrepaired to customer"

// BuildRepairCases derives one consolidated repair case per eligible case
// in the snapshot, in input order. Cases whose resolution code is not one
// of the three valid values are skipped.
func BuildRepairCases(now time.Time, snap casedata.Snapshot, r rules.Rules) []casedata.RepairCase {
	workOrders := groupWorkOrders(snap.WorkOrders)
	materialOrders := groupMaterialOrders(snap.MaterialOrders)
	serviceOrders := groupServiceOrders(snap.ServiceOrders)
	csoByCase := indexCSOStatuses(snap.CSOStatuses)
	deliveryByCase := indexDeliveries(snap.Deliveries)

	var out []casedata.RepairCase
	for _, c := range snap.Cases {
		if !casedata.ValidResolution(c.ResolutionCode) {
			continue
		}

		caseWOs := workOrders[c.CaseID]
		caseMOs := materialOrders[c.CaseID]
		caseSOs := serviceOrders[c.CaseID]

		latestWO, hasWO := latestWorkOrder(caseWOs)
		latestMO, hasMO := SelectMaterialOrder(c.CaseID, caseMOs)
		cso, hasCSO := csoByCase[c.CaseID]
		delivery, hasDelivery := deliveryByCase[c.CaseID]

		tl, tlOK := TeamLeadFor(c.CaseOwner, r.TeamLeads)
		market, marketOK := MarketFor(c.Country, r.Markets)
		firstOrder := firstOrderDate(caseWOs, caseMOs, caseSOs)

		var onsiteRFC, csrRFC, benchRFC, closureNotes, partNumber, partName, trackingStatus string
		var onsiteOK, csrOK, benchOK, notesOK, partOK, trackingOK bool

		switch c.ResolutionCode {
		case casedata.ResolutionOnsiteSolution:
			if hasWO {
				onsiteRFC, onsiteOK = latestWO.SystemStatus, true
				closureNotes, notesOK = latestWO.ResolutionNotes, true
			}
		case casedata.ResolutionPartsShipped:
			if hasMO {
				csrRFC, csrOK = latestMO.OrderStatus, true
				partNumber, partName, partOK = partDetails(latestMO, snap.MaterialLines)
			}
		case casedata.ResolutionOffsiteSolution:
			if hasCSO {
				benchRFC, benchOK = cso.Status, true
			}
		}

		if hasDelivery {
			trackingStatus, trackingOK = delivery.CurrentStatus, true
		}

		dnap := "False"
		if c.ResolutionCode == casedata.ResolutionOffsiteSolution && hasCSO &&
			strings.Contains(strings.ToLower(cso.RepairStatus), dnapPhrase) {
			dnap = "True"
		}

		out = append(out, casedata.RepairCase{
			CaseID:         c.CaseID,
			CustomerName:   c.CustomerName,
			CreatedOn:      c.CreatedOn,
			CreatedBy:      c.CreatedBy,
			Country:        c.Country,
			ResolutionCode: c.ResolutionCode,
			CaseOwner:      c.CaseOwner,
			OTCCode:        c.OTCCode,
			CAGroup:        AgeGroup(now, c.CreatedOn),
			TL:             orNotFound(tl, tlOK),
			SBD:            SBD(c.CreatedOn, c.Country, firstOrder, r.SBD),
			OnsiteRFC:      orNotFound(onsiteRFC, onsiteOK),
			CSRRFC:         orNotFound(csrRFC, csrOK),
			BenchRFC:       orNotFound(benchRFC, benchOK),
			Market:         orNotFound(market, marketOK),
			WOClosureNotes: orNotFound(closureNotes, notesOK),
			TrackingStatus: orNotFound(trackingStatus, trackingOK),
			PartNumber:     orNotFound(partNumber, partOK),
			PartName:       orNotFound(partName, partOK),
			SerialNumber:   c.SerialNumber,
			ProductName:    c.ProductName,
			EmailStatus:    c.EmailStatus,
			DNAP:           dnap,
		})
	}
	return out
}

// orNotFound converts an unresolved optional to the output sentinel. The
// sentinel exists only at record-assembly time; the derivation logic above
// works with (value, ok) pairs.
func orNotFound(value string, ok bool) string {
	if !ok {
		return casedata.NotFound
	}
	return value
}

func latestWorkOrder(wos []casedata.WorkOrder) (casedata.WorkOrder, bool) {
	if len(wos) == 0 {
		return casedata.WorkOrder{}, false
	}
	latest := wos[0]
	for _, wo := range wos[1:] {
		if wo.CreatedOn.After(latest.CreatedOn) {
			latest = wo
		}
	}
	return latest, true
}

// firstOrderDate returns the earliest fulfillment-order timestamp across
// the case's work, material, and service orders, or nil if none exist.
// Zero timestamps mean the source cell did not parse; they are not real
// order dates and are skipped.
func firstOrderDate(wos []casedata.WorkOrder, mos []casedata.MaterialOrder, sos []casedata.ServiceOrder) *time.Time {
	var first *time.Time
	consider := func(t time.Time) {
		if t.IsZero() {
			return
		}
		if first == nil || t.Before(*first) {
			ts := t
			first = &ts
		}
	}
	for _, wo := range wos {
		consider(wo.CreatedOn)
	}
	for _, mo := range mos {
		consider(mo.CreatedOn)
	}
	for _, so := range sos {
		consider(so.SubmittedOn)
	}
	return first
}

// partDetails resolves part number and name from the primary line of a
// material order. The part name is the description after its first hyphen,
// trimmed, or the whole trimmed description when no hyphen is present.
func partDetails(mo casedata.MaterialOrder, lines []casedata.MaterialOrderLine) (partNumber, partName string, ok bool) {
	for _, line := range lines {
		if line.OrderNumber != mo.OrderNumber || !strings.HasSuffix(line.LineName, primaryLineSuffix) {
			continue
		}
		name := strings.TrimSpace(line.Description)
		if _, after, found := strings.Cut(line.Description, "-"); found {
			name = strings.TrimSpace(after)
		}
		return line.PartNumber, name, true
	}
	return "", "", false
}

func groupWorkOrders(wos []casedata.WorkOrder) map[string][]casedata.WorkOrder {
	grouped := make(map[string][]casedata.WorkOrder)
	for _, wo := range wos {
		grouped[wo.CaseID] = append(grouped[wo.CaseID], wo)
	}
	return grouped
}

func groupMaterialOrders(mos []casedata.MaterialOrder) map[string][]casedata.MaterialOrder {
	grouped := make(map[string][]casedata.MaterialOrder)
	for _, mo := range mos {
		grouped[mo.CaseID] = append(grouped[mo.CaseID], mo)
	}
	return grouped
}

func groupServiceOrders(sos []casedata.ServiceOrder) map[string][]casedata.ServiceOrder {
	grouped := make(map[string][]casedata.ServiceOrder)
	for _, so := range sos {
		grouped[so.CaseID] = append(grouped[so.CaseID], so)
	}
	return grouped
}

// indexCSOStatuses builds the at-most-one-per-case association; the first
// occurrence in input order wins on duplicate case ids.
func indexCSOStatuses(statuses []casedata.CSOStatus) map[string]casedata.CSOStatus {
	indexed := make(map[string]casedata.CSOStatus)
	for _, status := range statuses {
		if _, exists := indexed[status.CaseID]; !exists {
			indexed[status.CaseID] = status
		}
	}
	return indexed
}

func indexDeliveries(deliveries []casedata.DeliveryStatus) map[string]casedata.DeliveryStatus {
	indexed := make(map[string]casedata.DeliveryStatus)
	for _, delivery := range deliveries {
		if _, exists := indexed[delivery.CaseID]; !exists {
			indexed[delivery.CaseID] = delivery
		}
	}
	return indexed
}
