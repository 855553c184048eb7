package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Role represents a staff role in the system
type Role string

const (
	RoleStaff      Role = "staff"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superAdmin"
)

// RoleAllowed reports whether role is a member of the allowed set.
// It is a pure function so authorization rules can be tested without
// an HTTP layer.
func RoleAllowed(role Role, allowed ...Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// Date is a calendar date (no time-of-day component). It marshals to
// and from "2006-01-02" JSON strings and compares as midnight UTC.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate builds a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON parses a "2006-01-02" JSON string.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON renders the date as a "2006-01-02" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// Before reports whether the date (at midnight UTC) is strictly
// before the given instant.
func (d Date) Before(t time.Time) bool {
	return d.Time.Before(t)
}

// StaffRecord represents a staff member able to log in.
// Loaded once at process start; never mutated at runtime.
type StaffRecord struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"` // bcrypt hash
	Role     Role   `json:"role"`
}

// StaffResponse DTO
type StaffResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (s *StaffRecord) ToResponse() *StaffResponse {
	return &StaffResponse{
		ID:    s.ID,
		Name:  s.Name,
		Email: s.Email,
		Role:  s.Role,
	}
}

// Applicant holds the borrower details attached to a loan.
// TotalLoan is the sensitive field: a nil pointer omits the key
// from the JSON view entirely.
type Applicant struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone,omitempty"`
	TotalLoan *float64 `json:"totalLoan,omitempty"`
}

// LoanRecord represents a loan in the read-only dataset.
type LoanRecord struct {
	ID           int       `json:"id"`
	Status       string    `json:"status"`
	MaturityDate Date      `json:"maturityDate"`
	Applicant    Applicant `json:"applicant"`
}

// Clone returns a deep copy of the record. Views handed to callers
// must never alias store state.
func (l LoanRecord) Clone() LoanRecord {
	out := l
	if l.Applicant.TotalLoan != nil {
		v := *l.Applicant.TotalLoan
		out.Applicant.TotalLoan = &v
	}
	return out
}

// HasApplicantEmail reports a case-insensitive exact match against
// the applicant's email.
func (l LoanRecord) HasApplicantEmail(email string) bool {
	return strings.EqualFold(l.Applicant.Email, email)
}

// Identity is the verified claim set for one request's lifetime.
// It is bound to the request context by the auth middleware and is
// never shared across requests.
type Identity struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
