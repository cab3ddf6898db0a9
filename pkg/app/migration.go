package app

import (
	"encoding/json"
	"time"

	"tableflip.dev/semana/pkg/dates"
	"tableflip.dev/semana/pkg/record"
	"tableflip.dev/semana/pkg/store"
)

// legacyTask is the pre-schema task shape: no date, optional id, and the
// weekday implied by the map key it lived under.
type legacyTask struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Time             string          `json:"time"`
	Category         string          `json:"category"`
	Priority         record.Priority `json:"priority"`
	Description      string          `json:"description"`
	Completed        bool            `json:"completed"`
	EstimatedMinutes int             `json:"estimatedMinutes"`
	Reminder         bool            `json:"reminder"`
}

// MigrateWeekdayTasks upgrades the legacy weekday-keyed task map to the
// current flat list, pinning each weekday's tasks onto the matching date of
// the week containing ref. It only activates when raw holds the legacy
// shape (a JSON object); an array or anything unparseable returns
// (nil, false). Entries without an id get one; missing fields default.
func MigrateWeekdayTasks(raw []byte, ref time.Time) ([]record.Task, bool) {
	// The current shape is an array; only a plain object is legacy.
	var asList []json.RawMessage
	if err := json.Unmarshal(raw, &asList); err == nil {
		return nil, false
	}
	var byDay map[string][]legacyTask
	if err := json.Unmarshal(raw, &byDay); err != nil {
		return nil, false
	}

	week := dates.WeekDates(ref)
	var migrated []record.Task
	for _, day := range dates.DayKeys {
		idx := dates.DayKeyIndex(day)
		for _, lt := range byDay[day] {
			t := record.Task{
				ID:               lt.ID,
				Name:             lt.Name,
				Date:             dates.FormatDay(week[idx]),
				Time:             lt.Time,
				Category:         lt.Category,
				Priority:         lt.Priority,
				Description:      lt.Description,
				Completed:        lt.Completed,
				EstimatedMinutes: lt.EstimatedMinutes,
				Reminder:         lt.Reminder,
			}
			t.FillDefaults()
			migrated = append(migrated, t)
		}
	}
	return migrated, true
}

// migrateLegacyTasks runs once at startup, before anything else reads the
// snapshot. The legacy key is left in place afterwards but never read
// again: once a current-shape task list exists, the migration does not
// activate a second time, so records are never duplicated.
func (s *Service) migrateLegacyTasks() {
	if len(s.snap.Tasks) > 0 {
		return
	}
	raw, ok := s.Persistence.ReadRaw(s.user, store.LegacyTasks)
	if !ok {
		// Very old stores kept the weekday map under the current key.
		raw, ok = s.Persistence.ReadRaw(s.user, store.Tasks)
		if !ok {
			return
		}
	}
	migrated, ok := MigrateWeekdayTasks(raw, s.Now())
	if !ok {
		return
	}
	s.snap.Tasks = migrated
	// Best effort: if the write fails the migrated tasks still live in
	// memory for this session and migration will re-run next start.
	_ = s.persist("migrate tasks", store.Tasks, s.snap.Tasks)
}
