package casedata

import "sync"

// Snapshot is a point-in-time view of every loaded data set. Report runs
// operate on a Snapshot value, never on the live store, so a concurrent
// upload cannot change a run mid-flight.
type Snapshot struct {
	Cases          []Case
	WorkOrders     []WorkOrder
	MaterialOrders []MaterialOrder
	MaterialLines  []MaterialOrderLine
	ServiceOrders  []ServiceOrder
	CSOStatuses    []CSOStatus
	Deliveries     []DeliveryStatus
	ClosedCases    []ClosedCase
}

// Store holds the data sets of the active session. Uploads replace whole
// sets under a write lock; there is no partial mutation. Created once in
// the composition root and injected into the ingest and reports modules.
type Store struct {
	mu   sync.RWMutex
	data Snapshot
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns a copy of the current data sets.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// ReplaceCaseExport replaces the five data sets sourced from the case
// export workbook in one step.
func (s *Store) ReplaceCaseExport(cases []Case, wos []WorkOrder, mos []MaterialOrder, lines []MaterialOrderLine, sos []ServiceOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Cases = cases
	s.data.WorkOrders = wos
	s.data.MaterialOrders = mos
	s.data.MaterialLines = lines
	s.data.ServiceOrders = sos
}

// ReplaceClosedCases replaces the closed-case data set.
func (s *Store) ReplaceClosedCases(closed []ClosedCase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.ClosedCases = closed
}

// ReplaceCSOStatuses replaces the CSO status data set.
func (s *Store) ReplaceCSOStatuses(statuses []CSOStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.CSOStatuses = statuses
}

// ReplaceDeliveries replaces the delivery status data set.
func (s *Store) ReplaceDeliveries(deliveries []DeliveryStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Deliveries = deliveries
}

// Clear resets every data set, ending the session.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = Snapshot{}
}
