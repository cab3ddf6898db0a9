package store

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/semana/pkg/record"
)

const (
	userspace   = "u"
	accountsDir = "users"
	sessionDir  = "session"
	sessionKey  = "current"
)

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Load reads every collection for user into a fresh snapshot. Values that
// fail to parse or have the wrong container shape are coerced to empty
// rather than surfaced: one corrupt record must not block the session.
func (p *persistence) Load(user string) *record.Snapshot {
	s := record.NewSnapshot(user)
	loadInto(p, user, Tasks, &s.Tasks)
	loadInto(p, user, Goals, &s.Goals)
	loadInto(p, user, Gym, &s.Gym)
	loadInto(p, user, Workouts, &s.Workouts)
	loadInto(p, user, Notes, &s.Notes)
	loadInto(p, user, Metrics, &s.Metrics)
	s.Normalize()
	return s
}

func loadInto[T any](p *persistence, user string, c Collection, target *T) {
	raw, ok := p.ReadRaw(user, c)
	if !ok {
		return
	}
	var parsed T
	if err := json.Unmarshal(raw, &parsed); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s/%s: %s (resetting to empty)\n", user, c, err)
		return
	}
	*target = parsed
}

func (p *persistence) Save(s *record.Snapshot) error {
	s.Normalize()
	for c, v := range map[Collection]any{
		Tasks:    s.Tasks,
		Goals:    s.Goals,
		Gym:      s.Gym,
		Workouts: s.Workouts,
		Notes:    s.Notes,
		Metrics:  s.Metrics,
	} {
		if err := p.SaveCollection(s.User, c, v); err != nil {
			return err
		}
	}
	return nil
}

func (p *persistence) SaveCollection(user string, c Collection, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.d.Write(collectionKey(user, c), data)
}

func (p *persistence) ReadRaw(user string, c Collection) ([]byte, bool) {
	data, err := p.d.Read(collectionKey(user, c))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (p *persistence) Session() (record.Session, bool) {
	data, err := p.d.Read(sessionDir + "-" + sessionKey)
	if err != nil {
		return record.Session{}, false
	}
	var s record.Session
	if err := json.Unmarshal(data, &s); err != nil || !s.Authenticated {
		return record.Session{}, false
	}
	return s, true
}

func (p *persistence) SetSession(s record.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return p.d.Write(sessionDir+"-"+sessionKey, data)
}

func (p *persistence) ClearSession() error {
	err := p.d.Erase(sessionDir + "-" + sessionKey)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (p *persistence) Accounts() (map[string]record.Account, error) {
	all := make(map[string]record.Account)
	for key := range p.d.Keys(nil) {
		pk := keyToPathTransform(key)
		if len(pk.Path) != 1 || pk.Path[0] != accountsDir {
			continue
		}
		data, err := p.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
			continue
		}
		var a record.Account
		if err := json.Unmarshal(data, &a); err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
			continue
		}
		all[a.Username] = a
	}
	return all, nil
}

func (p *persistence) SaveAccount(a record.Account) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return p.d.Write(accountsDir+"-"+encode(a.Username), data)
}

// collectionKey makes `u-<user>-<collection>`. The username is hex encoded so
// it can never collide with the key separator.
func collectionKey(user string, c Collection) string {
	return fmt.Sprintf("%s-%s-%s", userspace, encode(user), c)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

func encode(s string) string {
	return hex.EncodeToString([]byte(s))
}
