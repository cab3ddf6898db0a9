package record

import "strings"

// CatalogEntry describes one exercise in the built-in reference catalog.
type CatalogEntry struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Group       string   `json:"group"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Images: Free Exercise DB (https://github.com/yuhonas/free-exercise-db), public domain.
var catalog = []CatalogEntry{
	{1, "Bench Press", "chest", "Staple chest builder hitting pecs, front delts and triceps.", []string{"compound", "strength", "basic"}},
	{2, "Incline Press", "chest", "Bench variant emphasizing the upper chest.", []string{"compound", "strength"}},
	{3, "Dumbbell Flyes", "chest", "Chest isolation with a long stretch.", []string{"isolation", "stretch"}},
	{4, "Dips", "chest", "Bodyweight push working chest, triceps and shoulders.", []string{"compound", "bodyweight"}},
	{5, "Cable Crossover", "chest", "Constant-tension chest isolation.", []string{"isolation", "cables"}},
	{6, "Pull-ups", "back", "Bodyweight back staple: lats, rhomboids, biceps.", []string{"compound", "bodyweight", "basic"}},
	{7, "Barbell Row", "back", "Fundamental compound for back thickness.", []string{"compound", "strength", "basic"}},
	{8, "Lat Pulldown", "back", "Pull-up alternative targeting the lats.", []string{"compound", "cables"}},
	{9, "Seated Cable Row", "back", "Back thickness under constant tension.", []string{"compound", "cables"}},
	{10, "Deadlift", "back", "Full posterior-chain compound.", []string{"compound", "strength", "basic", "full body"}},
	{11, "Squat", "legs", "The king of lifts: quads, glutes and hamstrings.", []string{"compound", "strength", "basic"}},
	{12, "Leg Press", "legs", "Squat alternative with less spinal load.", []string{"compound", "machine"}},
	{13, "Leg Extension", "legs", "Quadriceps isolation.", []string{"isolation", "machine"}},
	{14, "Leg Curl", "legs", "Hamstring isolation.", []string{"isolation", "machine"}},
	{15, "Lunges", "legs", "Unilateral legs and glutes.", []string{"compound", "unilateral"}},
	{16, "Calf Raise", "legs", "Direct calf work.", []string{"isolation"}},
	{17, "Overhead Press", "shoulders", "Basic shoulder strength builder.", []string{"compound", "strength", "basic"}},
	{18, "Lateral Raise", "shoulders", "Side delt isolation.", []string{"isolation"}},
	{19, "Rear Delt Raise", "shoulders", "Rear delt isolation.", []string{"isolation"}},
	{20, "Face Pull", "shoulders", "Rear delts plus shoulder health.", []string{"cables", "joint health"}},
	{21, "Barbell Curl", "arms", "Basic biceps builder.", []string{"isolation", "biceps", "basic"}},
	{22, "Hammer Curl", "arms", "Biceps and brachialis.", []string{"isolation", "biceps"}},
	{23, "Lying Triceps Press", "arms", "Triceps isolation.", []string{"isolation", "triceps"}},
	{24, "Triceps Pushdown", "arms", "Constant-tension triceps work.", []string{"isolation", "triceps", "cables"}},
	{25, "Plank", "core", "Isometric core staple.", []string{"isometric", "bodyweight", "basic"}},
	{26, "Crunch", "core", "Basic rectus abdominis work.", []string{"isolation", "bodyweight"}},
	{27, "Hanging Leg Raise", "core", "Lower core emphasis.", []string{"bodyweight"}},
	{28, "Russian Twist", "core", "Obliques and rotation.", []string{"bodyweight", "rotational"}},
}

// Catalog returns the full exercise catalog.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(catalog))
	copy(out, catalog)
	return out
}

// CatalogByGroup returns the catalog entries for one muscle group, or the
// whole catalog when group is empty.
func CatalogByGroup(group string) []CatalogEntry {
	if group == "" {
		return Catalog()
	}
	var out []CatalogEntry
	for _, e := range catalog {
		if e.Group == group {
			out = append(out, e)
		}
	}
	return out
}

// SearchCatalog matches entries by name, group or tag, case-insensitively.
func SearchCatalog(query string) []CatalogEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return Catalog()
	}
	var out []CatalogEntry
	for _, e := range catalog {
		if strings.Contains(strings.ToLower(e.Name), query) ||
			strings.Contains(strings.ToLower(e.Group), query) ||
			tagMatch(e.Tags, query) {
			out = append(out, e)
		}
	}
	return out
}

// LookupCatalog finds a catalog entry by id.
func LookupCatalog(id int) (CatalogEntry, bool) {
	for _, e := range catalog {
		if e.ID == id {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

func tagMatch(tags []string, query string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
