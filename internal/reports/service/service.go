// Package service derives the reports exposed by the HTTP layer. All
// derivations read a single store snapshot so concurrent uploads cannot
// tear a report.
package service

import (
	"strings"
	"time"

	"github.com/suchithrkar/kci-upload-creation-tool/internal/casedata"
	"github.com/suchithrkar/kci-upload-creation-tool/internal/reports/engine"
	"github.com/suchithrkar/kci-upload-creation-tool/internal/reports/transport"
	"github.com/suchithrkar/kci-upload-creation-tool/internal/rules"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/apperr"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/logger"
)

const (
	msgCaseExportNotLoaded  = "no case export loaded, upload one first"
	msgClosedCasesNotLoaded = "no closed cases loaded, upload them first"
)

// Service derives reports from the session store.
type Service struct {
	store *casedata.Store
	rules rules.Rules
	log   *logger.Logger

	defaultMonths int

	// now is swappable for tests.
	now func() time.Time
}

// New creates a new reports service.
func New(store *casedata.Store, r rules.Rules, defaultMonths int, log *logger.Logger) *Service {
	if defaultMonths <= 0 {
		defaultMonths = engine.DefaultClosedCaseMonths
	}
	return &Service{
		store:         store,
		rules:         r,
		log:           log,
		defaultMonths: defaultMonths,
		now:           time.Now,
	}
}

// RepairCases derives the repair-case report from the current snapshot.
func (s *Service) RepairCases() (transport.RepairCasesResponse, error) {
	snap := s.store.Snapshot()
	if len(snap.Cases) == 0 {
		return transport.RepairCasesResponse{}, apperr.Precondition(msgCaseExportNotLoaded)
	}

	cases := engine.BuildRepairCases(s.now(), snap, s.rules)
	return transport.RepairCasesResponse{Count: len(cases), Cases: cases}, nil
}

// ClosedCases derives the closed-case report over the trailing window.
// Months of zero uses the configured default.
func (s *Service) ClosedCases(months int) (transport.ClosedCasesResponse, error) {
	snap := s.store.Snapshot()
	if len(snap.Cases) == 0 {
		return transport.ClosedCasesResponse{}, apperr.Precondition(msgCaseExportNotLoaded)
	}
	if len(snap.ClosedCases) == 0 {
		return transport.ClosedCasesResponse{}, apperr.Precondition(msgClosedCasesNotLoaded)
	}
	if months <= 0 {
		months = s.defaultMonths
	}

	now := s.now()
	repairs := engine.BuildRepairCases(now, snap, s.rules)
	reports := engine.BuildClosedCaseReports(now, snap.ClosedCases, repairs, months)
	return transport.ClosedCasesResponse{Count: len(reports), Months: months, Cases: reports}, nil
}

// ServiceOrderCopyText renders the offsite service-order copy list as a
// newline-joined text block ready for pasting.
func (s *Service) ServiceOrderCopyText() (string, error) {
	snap := s.store.Snapshot()
	if len(snap.Cases) == 0 {
		return "", apperr.Precondition(msgCaseExportNotLoaded)
	}
	return joinLines(engine.BuildServiceOrderCopyList(snap)), nil
}

// TrackingURLCopyText renders the tracking-link copy list as a
// newline-joined text block ready for pasting.
func (s *Service) TrackingURLCopyText() (string, error) {
	snap := s.store.Snapshot()
	if len(snap.Cases) == 0 {
		return "", apperr.Precondition(msgCaseExportNotLoaded)
	}
	return joinLines(engine.BuildTrackingURLCopyList(snap)), nil
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
