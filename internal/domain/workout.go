package domain

// Workout represents a single workout entry in the fitness tracker.
// ID and Date are assigned by the store at insert time and are immutable
// for the life of the record. DeletedFlag is the soft-delete marker:
// deleted records stay in storage but drop out of list results.
type Workout struct {
	ID          int64   `json:"id"`
	Date        Date    `json:"date"`
	Exercise    string  `json:"exercise"`
	Sets        int     `json:"sets"`
	Reps        int     `json:"reps"`
	Weight      float64 `json:"weight"`
	DeletedFlag bool    `json:"deleted_flag"`
}
