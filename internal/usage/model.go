package usage

import "time"

// Usage represents a user's scan quota snapshot.
type Usage struct {
	Plan      string    `json:"plan"`
	Limit     int       `json:"limit"`
	Used      int       `json:"used"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Remaining returns how many scans the user has left.
func (u Usage) Remaining() int {
	if u.Used >= u.Limit {
		return 0
	}
	return u.Limit - u.Used
}
