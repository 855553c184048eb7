package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"loandesk/internal/adapters/persistence/jsonstore"
	"loandesk/internal/core/domain"
)

func seedLoans() []domain.LoanRecord {
	t1 := 100.0
	t2 := 200.0
	t3 := 300.0
	return []domain.LoanRecord{
		{ID: 1, Status: "pending", MaturityDate: domain.NewDate(2023, time.March, 1),
			Applicant: domain.Applicant{Name: "Kofi", Email: "kofi@example.com", TotalLoan: &t1}},
		{ID: 2, Status: "approved", MaturityDate: domain.NewDate(2031, time.June, 15),
			Applicant: domain.Applicant{Name: "Ama", Email: "ama@example.com", TotalLoan: &t2}},
		{ID: 3, Status: "approved", MaturityDate: domain.NewDate(2022, time.December, 31),
			Applicant: domain.Applicant{Name: "Kofi", Email: "kofi@example.com", TotalLoan: &t3}},
	}
}

func newLoanService() *LoanService {
	return NewLoanService(jsonstore.NewLoanStore(seedLoans()))
}

func TestListWithAndWithoutStatus(t *testing.T) {
	svc := newLoanService()
	ctx := context.Background()

	if got := svc.List(ctx, ""); len(got) != 3 {
		t.Fatalf("expected all 3 loans, got %d", len(got))
	}
	if got := svc.List(ctx, "approved"); len(got) != 2 {
		t.Fatalf("expected 2 approved loans, got %d", len(got))
	}
	// Exact string match only.
	if got := svc.List(ctx, "Approved"); len(got) != 0 {
		t.Fatalf("status filter must be exact, got %d", len(got))
	}
}

func TestExpiredStrictlyBeforeNow(t *testing.T) {
	svc := newLoanService()
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	got := svc.Expired(context.Background(), now)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected expired set: %+v", got)
	}
}

func TestByApplicantCaseInsensitive(t *testing.T) {
	svc := newLoanService()
	a := svc.ByApplicant(context.Background(), "Kofi@Example.com")
	b := svc.ByApplicant(context.Background(), "kofi@example.com")
	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("expected identical result sets, got %d and %d", len(a), len(b))
	}
}

func TestDeleteDoesNotRemoveRecord(t *testing.T) {
	svc := newLoanService()
	ctx := context.Background()

	if err := svc.Delete(ctx, 2); err != nil {
		t.Fatalf("delete known id: %v", err)
	}

	// The acknowledged record is still served afterwards.
	after := svc.List(ctx, "")
	if len(after) != 3 {
		t.Fatalf("expected dataset unchanged after delete, got %d loans", len(after))
	}
	found := false
	for _, l := range after {
		if l.ID == 2 {
			found = true
		}
	}
	if !found {
		t.Fatal("deleted id missing from a subsequent list")
	}
}

func TestDeleteUnknownID(t *testing.T) {
	svc := newLoanService()
	if err := svc.Delete(context.Background(), 99); !errors.Is(err, domain.ErrLoanNotFound) {
		t.Fatalf("expected ErrLoanNotFound, got %v", err)
	}
}

func TestShapeStripsTotalLoanForStaff(t *testing.T) {
	shaped := Shape(seedLoans(), domain.RoleStaff)
	if len(shaped) != 3 {
		t.Fatalf("expected 3 shaped loans, got %d", len(shaped))
	}
	for _, l := range shaped {
		if l.Applicant.TotalLoan != nil {
			t.Fatalf("loan %d: staff view must not carry totalLoan", l.ID)
		}
	}

	// The key itself must be absent from the JSON view.
	out, err := json.Marshal(shaped)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(out), "totalLoan") {
		t.Fatalf("totalLoan key present in staff JSON: %s", out)
	}
}

func TestShapePassesThroughForElevatedRoles(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin} {
		shaped := Shape(seedLoans(), role)
		for i, l := range shaped {
			if l.Applicant.TotalLoan == nil {
				t.Fatalf("role %s: loan %d lost totalLoan", role, l.ID)
			}
			if want := seedLoans()[i]; *l.Applicant.TotalLoan != *want.Applicant.TotalLoan {
				t.Fatalf("role %s: loan %d totalLoan changed", role, l.ID)
			}
		}
	}
}

func TestShapeUnknownRolePassesThrough(t *testing.T) {
	shaped := Shape(seedLoans(), domain.Role("auditor"))
	for _, l := range shaped {
		if l.Applicant.TotalLoan == nil {
			t.Fatalf("unknown role must behave as non-staff, loan %d redacted", l.ID)
		}
	}
}

func TestShapePreservesOrderAndCopies(t *testing.T) {
	input := seedLoans()
	shaped := Shape(input, domain.RoleAdmin)

	for i := range input {
		if shaped[i].ID != input[i].ID {
			t.Fatalf("order changed at index %d: %d vs %d", i, shaped[i].ID, input[i].ID)
		}
	}

	*shaped[0].Applicant.TotalLoan = -1
	if *input[0].Applicant.TotalLoan != 100.0 {
		t.Fatal("mutating the shaped view leaked into the input records")
	}
}
