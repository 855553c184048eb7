package jsonstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

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
			Applicant: domain.Applicant{Name: "Kofi", Email: "Kofi@Example.com", TotalLoan: &t3}},
	}
}

func TestStaffStoreFindByEmail(t *testing.T) {
	store := NewStaffStore([]domain.StaffRecord{
		{ID: 1, Email: "amara@loandesk.io", Role: domain.RoleStaff},
	})

	rec, ok := store.FindByEmail("amara@loandesk.io")
	if !ok || rec.ID != 1 {
		t.Fatalf("expected record 1, got %+v (ok=%v)", rec, ok)
	}

	if _, ok := store.FindByEmail("nobody@loandesk.io"); ok {
		t.Fatal("expected lookup miss for unknown email")
	}
}

func TestLoanStoreByStatus(t *testing.T) {
	store := NewLoanStore(seedLoans())

	approved := store.ByStatus("approved")
	if len(approved) != 2 || approved[0].ID != 2 || approved[1].ID != 3 {
		t.Fatalf("unexpected approved set: %+v", approved)
	}

	if got := store.ByStatus("nope"); len(got) != 0 {
		t.Fatalf("expected empty set for unknown status, got %d", len(got))
	}
}

func TestLoanStoreExpiredAsOf(t *testing.T) {
	store := NewLoanStore(seedLoans())
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	expired := store.ExpiredAsOf(now)
	if len(expired) != 2 || expired[0].ID != 1 || expired[1].ID != 3 {
		t.Fatalf("unexpected expired set: %+v", expired)
	}

	// Everything is expired from far enough in the future.
	if got := store.ExpiredAsOf(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)); len(got) != 3 {
		t.Fatalf("expected all loans expired, got %d", len(got))
	}
}

func TestLoanStoreByApplicantEmailIgnoresCase(t *testing.T) {
	store := NewLoanStore(seedLoans())

	lower := store.ByApplicantEmail("kofi@example.com")
	mixed := store.ByApplicantEmail("KOFI@EXAMPLE.COM")
	if len(lower) != 2 || len(mixed) != 2 {
		t.Fatalf("expected 2 loans regardless of case, got %d and %d", len(lower), len(mixed))
	}
	for i := range lower {
		if lower[i].ID != mixed[i].ID {
			t.Fatalf("result sets differ at %d: %d vs %d", i, lower[i].ID, mixed[i].ID)
		}
	}
}

func TestLoanStoreResultsDoNotAliasStore(t *testing.T) {
	store := NewLoanStore(seedLoans())

	first := store.All()
	*first[0].Applicant.TotalLoan = -1
	first[0].Status = "mutated"

	second := store.All()
	if *second[0].Applicant.TotalLoan != 100.0 || second[0].Status != "pending" {
		t.Fatalf("store state was mutated through a query result: %+v", second[0])
	}
}

func TestLoanStoreByID(t *testing.T) {
	store := NewLoanStore(seedLoans())

	rec, ok := store.ByID(2)
	if !ok || rec.Status != "approved" {
		t.Fatalf("expected loan 2, got %+v (ok=%v)", rec, ok)
	}
	if _, ok := store.ByID(99); ok {
		t.Fatal("expected miss for unknown id")
	}
}

func TestLoadStaffAndLoans(t *testing.T) {
	dir := t.TempDir()

	staffPath := filepath.Join(dir, "staff.json")
	staffJSON := `[{"id":1,"name":"A","email":"a@b.c","password":"$2a$12$hash","role":"admin"}]`
	if err := os.WriteFile(staffPath, []byte(staffJSON), 0o600); err != nil {
		t.Fatalf("write staff file: %v", err)
	}

	loanPath := filepath.Join(dir, "loans.json")
	loanJSON := `[{"id":9,"status":"pending","maturityDate":"2025-01-01","applicant":{"name":"K","email":"k@e.c","totalLoan":42}}]`
	if err := os.WriteFile(loanPath, []byte(loanJSON), 0o600); err != nil {
		t.Fatalf("write loan file: %v", err)
	}

	staff, err := LoadStaff(staffPath)
	if err != nil {
		t.Fatalf("load staff: %v", err)
	}
	rec, ok := staff.FindByEmail("a@b.c")
	if !ok || rec.Password != "$2a$12$hash" || rec.Role != domain.RoleAdmin {
		t.Fatalf("unexpected staff record: %+v", rec)
	}

	loans, err := LoadLoans(loanPath)
	if err != nil {
		t.Fatalf("load loans: %v", err)
	}
	loan, ok := loans.ByID(9)
	if !ok || loan.Applicant.TotalLoan == nil || *loan.Applicant.TotalLoan != 42 {
		t.Fatalf("unexpected loan record: %+v", loan)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadStaff(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing staff file")
	}
	if _, err := LoadLoans(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing loan file")
	}
}
