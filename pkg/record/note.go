package record

// Note is a quick timestamped jot. Notes are append/delete only.
type Note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// Metric is a dated body measurement snapshot.
type Metric struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Photo  string  `json:"photo,omitempty"`
	Notes  string  `json:"notes,omitempty"`
}
