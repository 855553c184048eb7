package services

import (
	"context"
	"time"

	"loandesk/internal/adapters/persistence/jsonstore"
	"loandesk/internal/core/domain"
)

// LoanService handles loan queries over the read-only dataset
type LoanService struct {
	loans *jsonstore.LoanStore
}

// NewLoanService creates a new loan service
func NewLoanService(loans *jsonstore.LoanStore) *LoanService {
	return &LoanService{loans: loans}
}

// List returns all loans, optionally filtered by exact status match.
// An empty status returns the full dataset.
func (s *LoanService) List(ctx context.Context, status string) []domain.LoanRecord {
	if status == "" {
		return s.loans.All()
	}
	return s.loans.ByStatus(status)
}

// Expired returns loans whose maturity date is strictly before now.
func (s *LoanService) Expired(ctx context.Context, now time.Time) []domain.LoanRecord {
	return s.loans.ExpiredAsOf(now)
}

// ByApplicant returns loans for the given applicant email,
// matched case-insensitively.
func (s *LoanService) ByApplicant(ctx context.Context, email string) []domain.LoanRecord {
	return s.loans.ByApplicantEmail(email)
}

// Delete acknowledges deletion of the loan with the given id.
// The record is verified to exist but is NOT removed from the
// dataset; the store is read-only for the process lifetime. This
// mirrors the legacy system's observable behavior.
func (s *LoanService) Delete(ctx context.Context, id int) error {
	if _, ok := s.loans.ByID(id); !ok {
		return domain.ErrLoanNotFound
	}
	return nil
}

// Shape produces the role-appropriate view of a loan list. The staff
// view deep-copies each record and strips the applicant's totalLoan;
// every other role sees all fields. Results are always copies, so
// callers can never mutate store state through a response, and input
// order is preserved exactly. A role outside the known set behaves
// as non-staff.
func Shape(records []domain.LoanRecord, role domain.Role) []domain.LoanRecord {
	out := make([]domain.LoanRecord, 0, len(records))
	for _, rec := range records {
		view := rec.Clone()
		if role == domain.RoleStaff {
			view.Applicant.TotalLoan = nil
		}
		out = append(out, view)
	}
	return out
}
