package engine

import (
	"fmt"
	"strings"

	"github.com/suchithrkar/kci-upload-creation-tool/internal/casedata"
)

// CSO statuses that exclude a case from the service-order copy list: the
// unit is already back with the customer or the order is terminally dead.
var excludedCSOStatuses = map[string]struct{}{
	"delivered":                           {},
	"order cancelled, not to be reopened": {},
}

// Material-order statuses whose line items may carry a usable carrier URL.
var trackableMOStatuses = map[string]struct{}{
	"closed": {},
	"pod":    {},
}

const upsTrackingURL = "http://wwwapps.ups.com/WebTracking/processInputRequest?TypeOfInquiryNumber=T&InquiryNumber1=%s"

const noStatusFound = "no status found"

// BuildServiceOrderCopyList produces "{case_id},{reference}" lines for
// offsite cases whose bench unit is still out, using the latest service
// order per case with any hyphen suffix stripped from the reference.
func BuildServiceOrderCopyList(snap casedata.Snapshot) []string {
	csoByCase := indexCSOStatuses(snap.CSOStatuses)
	serviceOrders := groupServiceOrders(snap.ServiceOrders)

	var lines []string
	for _, c := range snap.Cases {
		if c.ResolutionCode != casedata.ResolutionOffsiteSolution {
			continue
		}

		if cso, ok := csoByCase[c.CaseID]; ok {
			if _, excluded := excludedCSOStatuses[strings.ToLower(cso.Status)]; excluded {
				continue
			}
		}

		latest, ok := latestServiceOrder(serviceOrders[c.CaseID])
		if !ok {
			continue
		}

		lines = append(lines, c.CaseID+","+stripOrderSuffix(latest.OrderReferenceID))
	}
	return lines
}

// BuildTrackingURLCopyList produces "{case_id} | {url}" lines for cases
// that still need a tracking link. Cases whose delivery feed already
// carries a real status are excluded. Parts-shipped cases resolve the URL
// from the current material order's primary line; any case falls back to
// the UPS template when a delivered CSO carries a tracking number.
func BuildTrackingURLCopyList(snap casedata.Snapshot) []string {
	excluded := deliveryExclusions(snap.Deliveries)
	csoByCase := indexCSOStatuses(snap.CSOStatuses)
	materialOrders := groupMaterialOrders(snap.MaterialOrders)

	var lines []string
	for _, c := range snap.Cases {
		if _, skip := excluded[c.CaseID]; skip {
			continue
		}

		url := ""
		if c.ResolutionCode == casedata.ResolutionPartsShipped {
			if mo, ok := SelectMaterialOrder(c.CaseID, materialOrders[c.CaseID]); ok {
				if _, trackable := trackableMOStatuses[strings.ToLower(mo.OrderStatus)]; trackable {
					url = primaryLineTrackingURL(mo, snap.MaterialLines)
				}
			}
		}

		if url == "" {
			if cso, ok := csoByCase[c.CaseID]; ok &&
				strings.ToLower(cso.Status) == "delivered" && cso.TrackingNumber != "" {
				url = fmt.Sprintf(upsTrackingURL, cso.TrackingNumber)
			}
		}

		if url != "" {
			lines = append(lines, c.CaseID+" | "+url)
		}
	}
	return lines
}

// deliveryExclusions collects case ids whose delivery feed carries a real
// status, meaning a tracking link is no longer needed.
func deliveryExclusions(deliveries []casedata.DeliveryStatus) map[string]struct{} {
	excluded := make(map[string]struct{})
	for _, d := range deliveries {
		current := strings.TrimSpace(d.CurrentStatus)
		if current != "" && !strings.EqualFold(current, noStatusFound) {
			excluded[d.CaseID] = struct{}{}
		}
	}
	return excluded
}

func latestServiceOrder(sos []casedata.ServiceOrder) (casedata.ServiceOrder, bool) {
	if len(sos) == 0 {
		return casedata.ServiceOrder{}, false
	}
	latest := sos[0]
	for _, so := range sos[1:] {
		if so.SubmittedOn.After(latest.SubmittedOn) {
			latest = so
		}
	}
	return latest, true
}

// stripOrderSuffix drops everything from the first hyphen on.
func stripOrderSuffix(reference string) string {
	before, _, _ := strings.Cut(reference, "-")
	return before
}

func primaryLineTrackingURL(mo casedata.MaterialOrder, lines []casedata.MaterialOrderLine) string {
	for _, line := range lines {
		if line.OrderNumber == mo.OrderNumber &&
			strings.HasSuffix(line.LineName, primaryLineSuffix) &&
			line.TrackingURL != "" {
			return line.TrackingURL
		}
	}
	return ""
}
