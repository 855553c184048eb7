package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"

	"loandesk/internal/core/domain"
)

// staffFileRecord mirrors the on-disk staff document. The password
// hash lives under its own key so StaffRecord can keep `json:"-"` on
// the field for API responses.
type staffFileRecord struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// LoadStaff reads staff records from a JSON file.
func LoadStaff(path string) (*StaffStore, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read staff dataset %s: %w", path, err)
	}

	var fileRecords []staffFileRecord
	if err := json.Unmarshal(raw, &fileRecords); err != nil {
		return nil, fmt.Errorf("parse staff dataset %s: %w", path, err)
	}

	records := make([]domain.StaffRecord, 0, len(fileRecords))
	for _, fr := range fileRecords {
		records = append(records, domain.StaffRecord{
			ID:       fr.ID,
			Name:     fr.Name,
			Email:    fr.Email,
			Password: fr.Password,
			Role:     fr.Role,
		})
	}
	return NewStaffStore(records), nil
}

// LoadLoans reads loan records from a JSON file.
func LoadLoans(path string) (*LoanStore, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read loan dataset %s: %w", path, err)
	}

	var records []domain.LoanRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse loan dataset %s: %w", path, err)
	}
	return NewLoanStore(records), nil
}
