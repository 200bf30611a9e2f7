package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status  Status
	Checks  map[string]CheckResult
	Entries int
}

// Service coordinates health checks.
type Service struct {
	catalog CatalogSizer
	db      DBPinger
}

// New creates a Service. db is nil when the catalog comes from a file.
func New(catalog CatalogSizer, db DBPinger) *Service {
	return &Service{catalog: catalog, db: db}
}

// Check runs health checks against all components.
// An empty catalog counts as a failure: every search would return nothing.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	entries := s.catalog.Len()
	if entries > 0 {
		checks["catalog"] = CheckOK
	} else {
		checks["catalog"] = CheckError
	}

	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			checks["database"] = CheckError
		} else {
			checks["database"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks, Entries: entries}
}
