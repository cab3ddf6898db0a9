// Package account manages user registration, login and the persisted
// session marker. Usernames partition every other collection in the store.
package account

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tableflip.dev/semana/pkg/record"
	"tableflip.dev/semana/pkg/store"
)

var (
	ErrUsernameTaken      = errors.New("account: username already taken")
	ErrInvalidCredentials = errors.New("account: invalid username or password")
)

// Manager performs account operations against the store's account
// directory.
type Manager struct {
	Persistence store.Persistence

	// Now stands in for time.Now in tests.
	Now func() time.Time
}

// NewManager returns a Manager over the given persistence.
func NewManager(p store.Persistence) *Manager {
	return &Manager{Persistence: p, Now: time.Now}
}

// Register creates a new account. The username must be unused.
func (m *Manager) Register(username, email, password string) (record.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return record.Account{}, errors.New("account: username required")
	}
	if password == "" {
		return record.Account{}, errors.New("account: password required")
	}
	all, err := m.Persistence.Accounts()
	if err != nil {
		return record.Account{}, err
	}
	if _, exists := all[username]; exists {
		return record.Account{}, ErrUsernameTaken
	}
	hash, err := HashPassword(password)
	if err != nil {
		return record.Account{}, err
	}
	a := record.Account{
		Username:     username,
		Email:        strings.TrimSpace(email),
		PasswordHash: hash,
		CreatedAt:    m.Now().UTC(),
	}
	if err := m.Persistence.SaveAccount(a); err != nil {
		return record.Account{}, err
	}
	return a, nil
}

// Login checks credentials and installs the session marker. Accounts whose
// stored hash is still the legacy checksum are upgraded to bcrypt on the
// first successful login.
func (m *Manager) Login(username, password string) (record.Session, error) {
	all, err := m.Persistence.Accounts()
	if err != nil {
		return record.Session{}, err
	}
	a, ok := all[username]
	if !ok || !Verify(password, a.PasswordHash) {
		return record.Session{}, ErrInvalidCredentials
	}

	if !strings.HasPrefix(a.PasswordHash, bcryptPrefix) {
		if hash, err := HashPassword(password); err == nil {
			a.PasswordHash = hash
			_ = m.Persistence.SaveAccount(a)
		}
	}

	s := record.Session{Username: a.Username, Email: a.Email, Authenticated: true}
	if err := m.Persistence.SetSession(s); err != nil {
		return record.Session{}, err
	}
	return s, nil
}

// Logout clears the persisted session marker.
func (m *Manager) Logout() error {
	return m.Persistence.ClearSession()
}

const bcryptPrefix = "$2"

// HashPassword hashes a password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify checks a password against a stored hash. Both bcrypt hashes and
// the legacy base-36 checksum remain accepted so old account directories
// keep working.
func Verify(password, storedHash string) bool {
	if strings.HasPrefix(storedHash, bcryptPrefix) {
		return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
	}
	return LegacyChecksum(password) == storedHash
}

// LegacyChecksum reproduces the original non-cryptographic password
// checksum: a 32-bit rolling hash rendered in base 36. Kept only to verify
// pre-existing account records; never used for new hashes.
func LegacyChecksum(password string) string {
	var h int32
	for _, r := range password {
		h = (h << 5) - h + int32(r)
	}
	if h < 0 {
		return "-" + strconv.FormatInt(-int64(h), 36)
	}
	return strconv.FormatInt(int64(h), 36)
}
