package auth

import (
	"sync"

	"loantracker/pkg/types"
)

// OTPStore holds the most recently issued code per phone number. Issuing a
// new code for a phone replaces the previous one; the last write wins.
type OTPStore struct {
	mu      sync.Mutex
	records map[string]types.OTPRecord
}

func NewOTPStore() *OTPStore {
	return &OTPStore{records: make(map[string]types.OTPRecord)}
}

func (s *OTPStore) Put(phone string, record types.OTPRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[phone] = record
}

func (s *OTPStore) Get(phone string) (types.OTPRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[phone]
	return record, ok
}

func (s *OTPStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
