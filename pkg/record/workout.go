package record

// WorkoutSet is one performed set of an exercise.
type WorkoutSet struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// WorkoutExercise captures the sets actually performed for one exercise.
type WorkoutExercise struct {
	Name string       `json:"name"`
	Sets []WorkoutSet `json:"sets"`
}

// Workout is a dated log of a performed session. Logs are append-only
// history and stay valid even after the originating routine is deleted.
type Workout struct {
	ID        string            `json:"id"`
	Day       string            `json:"day"`
	Focus     string            `json:"focus"`
	Date      string            `json:"date"`
	Exercises []WorkoutExercise `json:"exercises"`
	Notes     string            `json:"notes,omitempty"`
}

// Volume is the classic tonnage heuristic: the sum of reps times weight
// across every set of the workout.
func (w Workout) Volume() float64 {
	var total float64
	for _, ex := range w.Exercises {
		for _, set := range ex.Sets {
			total += float64(set.Reps) * set.Weight
		}
	}
	return total
}
