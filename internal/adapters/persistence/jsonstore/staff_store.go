package jsonstore

import "loandesk/internal/core/domain"

// StaffStore is a read-only lookup of staff records, loaded once at
// process start. No locking is needed: records never change afterwards.
type StaffStore struct {
	records []domain.StaffRecord
}

// NewStaffStore creates a staff store over the given records.
func NewStaffStore(records []domain.StaffRecord) *StaffStore {
	return &StaffStore{records: records}
}

// FindByEmail returns the staff record matching the email, or false
// when no record matches.
func (s *StaffStore) FindByEmail(email string) (*domain.StaffRecord, bool) {
	for i := range s.records {
		if s.records[i].Email == email {
			rec := s.records[i]
			return &rec, true
		}
	}
	return nil, false
}

// Count returns the number of staff records.
func (s *StaffStore) Count() int {
	return len(s.records)
}
