package record

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// FocusGroups lists the known muscle-group focuses for a routine.
var FocusGroups = []string{"chest", "back", "legs", "shoulders", "arms", "core", "full", "cardio", "other"}

// Exercise is one planned movement inside a routine.
type Exercise struct {
	ExerciseID int     `json:"exerciseId,omitempty"`
	Name       string  `json:"name"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
}

// ExerciseList decodes both routine shapes found on disk: the current
// structured list, and the legacy newline-delimited "Name SxR" string. It
// always normalizes to the structured form, so nothing past the storage
// boundary ever branches on shape again.
type ExerciseList []Exercise

func (l *ExerciseList) UnmarshalJSON(b []byte) error {
	var structured []Exercise
	if err := json.Unmarshal(b, &structured); err == nil {
		*l = structured
		return nil
	}
	var legacy string
	if err := json.Unmarshal(b, &legacy); err != nil {
		return err
	}
	*l = ParseLegacyExercises(legacy)
	return nil
}

var legacyExercisePattern = regexp.MustCompile(`^(.+?)\s+(\d+)x(\d+)$`)

// ParseLegacyExercises parses the legacy newline-delimited routine string.
// Lines that do not match "<name> <sets>x<reps>" are kept as a bare named
// exercise so no planned work is dropped during the upgrade.
func ParseLegacyExercises(raw string) []Exercise {
	var out []Exercise
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := legacyExercisePattern.FindStringSubmatch(line); m != nil {
			sets, _ := strconv.Atoi(m[2])
			reps, _ := strconv.Atoi(m[3])
			out = append(out, Exercise{Name: strings.TrimSpace(m[1]), Sets: sets, Reps: reps})
			continue
		}
		out = append(out, Exercise{Name: line})
	}
	return out
}

// Routine is the per-weekday exercise template. The snapshot keys routines
// by weekday, at most one per day.
type Routine struct {
	Focus     string       `json:"focus"`
	Exercises ExerciseList `json:"exercises"`
}
