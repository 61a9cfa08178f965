package models

// Progress is one completion record for a user and calendar day.
// Records are append-only; the same user+day may appear more than once.
// Collection: progress
type Progress struct {
	UserID       string `json:"user_id" bson:"user_id"`
	Day          string `json:"day" bson:"day"` // YYYY-MM-DD
	Completed    bool   `json:"completed" bson:"completed"`
	PointsEarned int    `json:"points_earned" bson:"points_earned"`
}

// ProgressStats is the computed view of a user's completion history.
type ProgressStats struct {
	DaysCompleted int `json:"days_completed"`
	CurrentStreak int `json:"current_streak"`
	TotalPoints   int `json:"total_points"`
}

// CompleteRequest is the payload for POST /api/progress/complete.
// Day is optional and defaults to today.
type CompleteRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Day    string `json:"day"`
}
