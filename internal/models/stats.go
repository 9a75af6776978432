package models

type TaskStats struct {
	Total     int
	Completed int
}

func (s TaskStats) Pending() int {
	return s.Total - s.Completed
}

// CompletionRate is a percentage; an empty store reports 0.
func (s TaskStats) CompletionRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}
