package store

import (
	"encoding/json"
	"sync"

	"tableflip.dev/semana/pkg/record"
)

// NewMemory returns an in-memory Persistence. It backs tests and dry runs
// with the same defensive-load semantics as the diskv store.
func NewMemory() *Memory {
	return &Memory{
		data:     make(map[string][]byte),
		accounts: make(map[string]record.Account),
	}
}

// Memory is a Persistence held entirely in process memory.
type Memory struct {
	mu       sync.Mutex
	data     map[string][]byte
	accounts map[string]record.Account
	session  *record.Session

	// FailWrites makes every save return ErrUnavailable, for exercising
	// storage-failure paths.
	FailWrites bool
}

// ErrUnavailable is returned by a Memory store with FailWrites set.
var ErrUnavailable = errUnavailable{}

type errUnavailable struct{}

func (errUnavailable) Error() string { return "store: persistence unavailable" }

func (m *Memory) Load(user string) *record.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := record.NewSnapshot(user)
	memLoad(m, user, Tasks, &s.Tasks)
	memLoad(m, user, Goals, &s.Goals)
	memLoad(m, user, Gym, &s.Gym)
	memLoad(m, user, Workouts, &s.Workouts)
	memLoad(m, user, Notes, &s.Notes)
	memLoad(m, user, Metrics, &s.Metrics)
	s.Normalize()
	return s
}

func memLoad[T any](m *Memory, user string, c Collection, target *T) {
	raw, ok := m.data[collectionKey(user, c)]
	if !ok {
		return
	}
	var parsed T
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return
	}
	*target = parsed
}

func (m *Memory) Save(s *record.Snapshot) error {
	s.Normalize()
	for c, v := range map[Collection]any{
		Tasks:    s.Tasks,
		Goals:    s.Goals,
		Gym:      s.Gym,
		Workouts: s.Workouts,
		Notes:    s.Notes,
		Metrics:  s.Metrics,
	} {
		if err := m.SaveCollection(s.User, c, v); err != nil {
			return err
		}
	}
	return nil
}

func (m *Memory) SaveCollection(user string, c Collection, v any) error {
	if m.FailWrites {
		return ErrUnavailable
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[collectionKey(user, c)] = data
	return nil
}

func (m *Memory) ReadRaw(user string, c Collection) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[collectionKey(user, c)]
	return raw, ok
}

// SeedRaw stores a raw value for a collection, bypassing marshaling. Tests
// use it to plant legacy and corrupt shapes.
func (m *Memory) SeedRaw(user string, c Collection, raw []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[collectionKey(user, c)] = raw
}

func (m *Memory) Session() (record.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil || !m.session.Authenticated {
		return record.Session{}, false
	}
	return *m.session, true
}

func (m *Memory) SetSession(s record.Session) error {
	if m.FailWrites {
		return ErrUnavailable
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = &s
	return nil
}

func (m *Memory) ClearSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}

func (m *Memory) Accounts() (map[string]record.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]record.Account, len(m.accounts))
	for name, a := range m.accounts {
		out[name] = a
	}
	return out, nil
}

func (m *Memory) SaveAccount(a record.Account) error {
	if m.FailWrites {
		return ErrUnavailable
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[a.Username] = a
	return nil
}
