package jsonstore

import (
	"time"

	"loandesk/internal/core/domain"
)

// LoanStore is a read-only collection of loan records queried by
// simple predicates. Query results are copies; the backing slice is
// never handed out.
type LoanStore struct {
	records []domain.LoanRecord
}

// NewLoanStore creates a loan store over the given records.
func NewLoanStore(records []domain.LoanRecord) *LoanStore {
	return &LoanStore{records: records}
}

// All returns every loan record in dataset order.
func (s *LoanStore) All() []domain.LoanRecord {
	return s.filter(func(domain.LoanRecord) bool { return true })
}

// ByStatus returns loans whose status matches exactly.
func (s *LoanStore) ByStatus(status string) []domain.LoanRecord {
	return s.filter(func(l domain.LoanRecord) bool { return l.Status == status })
}

// ExpiredAsOf returns loans whose maturity date is strictly before
// the given instant.
func (s *LoanStore) ExpiredAsOf(now time.Time) []domain.LoanRecord {
	return s.filter(func(l domain.LoanRecord) bool { return l.MaturityDate.Before(now) })
}

// ByApplicantEmail returns loans whose applicant email matches,
// ignoring case.
func (s *LoanStore) ByApplicantEmail(email string) []domain.LoanRecord {
	return s.filter(func(l domain.LoanRecord) bool { return l.HasApplicantEmail(email) })
}

// ByID returns the loan with the given id, or false when absent.
func (s *LoanStore) ByID(id int) (*domain.LoanRecord, bool) {
	for i := range s.records {
		if s.records[i].ID == id {
			rec := s.records[i].Clone()
			return &rec, true
		}
	}
	return nil, false
}

// Count returns the number of loan records.
func (s *LoanStore) Count() int {
	return len(s.records)
}

func (s *LoanStore) filter(keep func(domain.LoanRecord) bool) []domain.LoanRecord {
	out := make([]domain.LoanRecord, 0, len(s.records))
	for _, rec := range s.records {
		if keep(rec) {
			out = append(out, rec.Clone())
		}
	}
	return out
}
