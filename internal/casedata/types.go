// Package casedata defines the record types exchanged between the ingest
// layer, the session store, and the derivation engine. All records are
// immutable values keyed by a string case identifier (or order number for
// orders); the engine never mutates them.
package casedata

import "time"

// Resolution codes eligible for repair-case derivation. Any other value
// makes the case ineligible.
const (
	ResolutionPartsShipped    = "parts shipped"
	ResolutionOnsiteSolution  = "onsite solution"
	ResolutionOffsiteSolution = "offsite solution"
)

// NotFound is the sentinel written to derived string fields that could not
// be resolved. Output records never carry empty or null derived fields.
const NotFound = "Not Found"

// Case is a raw case record from the dump export.
type Case struct {
	CaseID         string    `json:"caseId"`
	CustomerName   string    `json:"customerName"`
	CreatedOn      time.Time `json:"createdOn"`
	CreatedBy      string    `json:"createdBy"`
	Country        string    `json:"country"`
	ResolutionCode string    `json:"resolutionCode"`
	CaseOwner      string    `json:"caseOwner"`
	OTCCode        string    `json:"otcCode"`
	SerialNumber   string    `json:"serialNumber"`
	ProductName    string    `json:"productName"`
	EmailStatus    string    `json:"emailStatus"`
}

// WorkOrder is a work order linked to a case. Many-to-one with Case.
type WorkOrder struct {
	CaseID          string    `json:"caseId"`
	WorkOrderNumber string    `json:"workOrderNumber"`
	CreatedOn       time.Time `json:"createdOn"`
	SystemStatus    string    `json:"systemStatus"`
	Workgroup       string    `json:"workgroup"`
	Country         string    `json:"country"`
	ResolutionNotes string    `json:"resolutionNotes"`
}

// MaterialOrder is a material order tied to a case. Many-to-one with Case.
type MaterialOrder struct {
	OrderNumber string    `json:"orderNumber"`
	CaseID      string    `json:"caseId"`
	CreatedOn   time.Time `json:"createdOn"`
	OrderStatus string    `json:"orderStatus"`
}

// MaterialOrderLine is a single line item within a material order.
// TrackingURL is empty when the carrier link is not known.
type MaterialOrderLine struct {
	OrderNumber string `json:"orderNumber"`
	LineName    string `json:"lineName"`
	PartNumber  string `json:"partNumber"`
	Description string `json:"description"`
	TrackingURL string `json:"trackingUrl"`
}

// ServiceOrder is a service order submission for a case.
// OrderReferenceID may carry a hyphen suffix that is stripped for display.
type ServiceOrder struct {
	CaseID           string    `json:"caseId"`
	SubmittedOn      time.Time `json:"submittedOn"`
	OrderReferenceID string    `json:"orderReferenceId"`
}

// CSOStatus is the offsite/bench status feed entry for a case.
// At most one per case; on duplicates the first occurrence wins.
type CSOStatus struct {
	CaseID         string `json:"caseId"`
	CSO            string `json:"cso"`
	Status         string `json:"status"`
	TrackingNumber string `json:"trackingNumber"`
	RepairStatus   string `json:"repairStatus"`
}

// DeliveryStatus is the parts-delivery status feed entry for a case.
// At most one per case; on duplicates the first occurrence wins.
type DeliveryStatus struct {
	CaseID        string `json:"caseId"`
	CurrentStatus string `json:"currentStatus"`
}

// ClosedCase is a closed case record from the source system.
type ClosedCase struct {
	CaseID         string    `json:"caseId"`
	CustomerName   string    `json:"customerName"`
	CreatedOn      time.Time `json:"createdOn"`
	CreatedBy      string    `json:"createdBy"`
	ModifiedBy     string    `json:"modifiedBy"`
	ModifiedOn     time.Time `json:"modifiedOn"`
	ClosedOn       time.Time `json:"closedOn"`
	ClosedBy       string    `json:"closedBy"`
	Owner          string    `json:"owner"`
	Country        string    `json:"country"`
	ResolutionCode string    `json:"resolutionCode"`
	CaseOwner      string    `json:"caseOwner"`
	OTCCode        string    `json:"otcCode"`
}

// RepairCase is the consolidated derived record, one per eligible case.
type RepairCase struct {
	CaseID         string    `json:"caseId"`
	CustomerName   string    `json:"customerName"`
	CreatedOn      time.Time `json:"createdOn"`
	CreatedBy      string    `json:"createdBy"`
	Country        string    `json:"country"`
	ResolutionCode string    `json:"resolutionCode"`
	CaseOwner      string    `json:"caseOwner"`
	OTCCode        string    `json:"otcCode"`
	CAGroup        string    `json:"caGroup"`
	TL             string    `json:"tl"`
	SBD            string    `json:"sbd"`
	OnsiteRFC      string    `json:"onsiteRfc"`
	CSRRFC         string    `json:"csrRfc"`
	BenchRFC       string    `json:"benchRfc"`
	Market         string    `json:"market"`
	WOClosureNotes string    `json:"woClosureNotes"`
	TrackingStatus string    `json:"trackingStatus"`
	PartNumber     string    `json:"partNumber"`
	PartName       string    `json:"partName"`
	SerialNumber   string    `json:"serialNumber"`
	ProductName    string    `json:"productName"`
	EmailStatus    string    `json:"emailStatus"`
	DNAP           string    `json:"dnap"`
}

// ClosedCaseReport is the derived closed-case report record: closed-case
// fields plus team lead, SBD, and market borrowed from the matching repair
// case, and the computed closed-by display actor.
type ClosedCaseReport struct {
	CaseID         string    `json:"caseId"`
	CustomerName   string    `json:"customerName"`
	CreatedOn      time.Time `json:"createdOn"`
	CreatedBy      string    `json:"createdBy"`
	ModifiedBy     string    `json:"modifiedBy"`
	ModifiedOn     time.Time `json:"modifiedOn"`
	ClosedOn       time.Time `json:"closedOn"`
	ClosedBy       string    `json:"closedBy"`
	Country        string    `json:"country"`
	ResolutionCode string    `json:"resolutionCode"`
	CaseOwner      string    `json:"caseOwner"`
	OTCCode        string    `json:"otcCode"`
	TL             string    `json:"tl"`
	SBD            string    `json:"sbd"`
	Market         string    `json:"market"`
}

// ValidResolution reports whether code is one of the three resolution
// codes eligible for repair-case derivation.
func ValidResolution(code string) bool {
	switch code {
	case ResolutionPartsShipped, ResolutionOnsiteSolution, ResolutionOffsiteSolution:
		return true
	}
	return false
}
