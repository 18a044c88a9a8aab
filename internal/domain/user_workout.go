package domain

// UserWorkout is a workout entry owned by a specific user. UserID is an
// opaque scoping value: the server never verifies it against an identity,
// but every mutation of a user workout must match it, so one user's
// updates and deletes can never touch another user's records.
type UserWorkout struct {
	ID          int64   `json:"id"`
	Date        Date    `json:"date"`
	Exercise    string  `json:"exercise"`
	Sets        int     `json:"sets"`
	Reps        int     `json:"reps"`
	Weight      float64 `json:"weight"`
	UserID      int64   `json:"user_id"`
	DeletedFlag bool    `json:"deleted_flag"`
}
