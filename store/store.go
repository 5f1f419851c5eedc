package store

import (
	"strings"
	"sync"

	"github.com/Eklavvyaaaaa/CIVIX/models"
)

// ReportStore owns the ordered collection of reports for the running
// session. Newest-first ordering is an invariant of the whole system:
// every view assumes index 0 is the most recent report. State is held in
// memory only and lives as long as the process.
type ReportStore struct {
	mu      sync.RWMutex
	reports []models.Report
}

// New builds a store pre-populated with the given reports, newest first.
func New(seed ...models.Report) *ReportStore {
	s := &ReportStore{reports: make([]models.Report, 0, len(seed)+16)}
	s.reports = append(s.reports, seed...)
	return s
}

// Insert prepends a report to the collection. It always succeeds.
func (s *ReportStore) Insert(r models.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append([]models.Report{r}, s.reports...)
}

// All returns a copy of the full collection, newest first.
func (s *ReportStore) All() []models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Report, len(s.reports))
	copy(out, s.reports)
	return out
}

// Recent returns the first n reports, or fewer if the collection is
// smaller. The result is always a prefix of All().
func (s *ReportStore) Recent(n int) []models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n < 0 {
		n = 0
	}
	if n > len(s.reports) {
		n = len(s.reports)
	}
	out := make([]models.Report, n)
	copy(out, s.reports[:n])
	return out
}

// Search returns the reports whose title, description or category contains
// term, case-insensitively. A blank or whitespace-only term is a deliberate
// no-filter default and returns the full collection.
func (s *ReportStore) Search(term string) []models.Report {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return s.All()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Report, 0, len(s.reports))
	for _, r := range s.reports {
		if strings.Contains(strings.ToLower(r.Title), needle) ||
			strings.Contains(strings.ToLower(r.Description), needle) ||
			strings.Contains(strings.ToLower(string(r.Category)), needle) {
			out = append(out, r)
		}
	}
	return out
}

// Get looks a report up by id.
func (s *ReportStore) Get(id string) (models.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reports {
		if r.ID == id {
			return r, true
		}
	}
	return models.Report{}, false
}

// Len reports the current collection size.
func (s *ReportStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}
