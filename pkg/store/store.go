// Package store persists planner collections in a local key/value store,
// one namespace per user identity.
package store

import (
	"tableflip.dev/semana/pkg/record"
)

// Collection names one logical record collection within a user's namespace.
type Collection string

const (
	Tasks    Collection = "tasks"
	Goals    Collection = "objetivos"
	Gym      Collection = "gym"
	Workouts Collection = "gymWorkouts"
	Notes    Collection = "notes"
	Metrics  Collection = "metrics"

	// LegacyTasks is the pre-schema weekday-keyed task map. It is read by
	// the migrator once and then never again, but it is not deleted.
	LegacyTasks Collection = "tasks_app"
)

// Collections lists the current collections, in save order.
var Collections = []Collection{Tasks, Goals, Gym, Workouts, Notes, Metrics}

// Persistence is the storage contract for planner records, accounts and the
// session marker. Load never fails on malformed data: any stored value that
// does not match its expected container shape degrades to an empty
// collection.
type Persistence interface {
	Load(user string) *record.Snapshot
	Save(s *record.Snapshot) error
	SaveCollection(user string, c Collection, v any) error
	ReadRaw(user string, c Collection) ([]byte, bool)

	Session() (record.Session, bool)
	SetSession(s record.Session) error
	ClearSession() error

	Accounts() (map[string]record.Account, error)
	SaveAccount(a record.Account) error
}
