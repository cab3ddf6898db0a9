package stats

import (
	"sort"

	"tableflip.dev/semana/pkg/dates"
	"tableflip.dev/semana/pkg/record"
)

// Bucket classifies a goal's urgency relative to its due date. This is a
// display hint only; it never affects scheduling.
type Bucket string

const (
	BucketOverdue  Bucket = "overdue"
	BucketDueToday Bucket = "dueToday"
	BucketUrgent   Bucket = "urgent"
	BucketNormal   Bucket = "normal"
)

// UrgentWindowDays is the due-soon window for BucketUrgent. A heuristic
// carried over from the source views, kept configurable rather than fixed.
var UrgentWindowDays = 7

// GoalBucket classifies a due date against today and returns the bucket and
// whole days remaining (negative when past due). ok is false when dueDate
// is absent or malformed.
func GoalBucket(dueDate, today string) (bucket Bucket, daysRemaining int, ok bool) {
	if dueDate == "" {
		return BucketNormal, 0, false
	}
	due, err := dates.ParseDay(dueDate)
	if err != nil {
		return BucketNormal, 0, false
	}
	now, err := dates.ParseDay(today)
	if err != nil {
		return BucketNormal, 0, false
	}
	days := dates.DiffDays(now, due)
	switch {
	case days < 0:
		return BucketOverdue, days, true
	case days == 0:
		return BucketDueToday, days, true
	case days <= UrgentWindowDays:
		return BucketUrgent, days, true
	default:
		return BucketNormal, days, true
	}
}

// GoalStatus pairs a goal with its urgency classification.
type GoalStatus struct {
	Goal          record.Goal
	Bucket        Bucket
	DaysRemaining int
}

// UrgentGoals returns up to n open goals with due dates, soonest first.
func UrgentGoals(goals []record.Goal, today string, n int) []GoalStatus {
	var out []GoalStatus
	for _, g := range goals {
		if g.Completed || g.DueDate == "" {
			continue
		}
		bucket, days, ok := GoalBucket(g.DueDate, today)
		if !ok {
			continue
		}
		out = append(out, GoalStatus{Goal: g, Bucket: bucket, DaysRemaining: days})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Goal.DueDate < out[j].Goal.DueDate
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
