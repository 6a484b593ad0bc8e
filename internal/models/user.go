package models

import (
	"strconv"
	"time"
)

// UserID is the opaque identifier supplied by the host platform.
type UserID int64

func (id UserID) String() string { return strconv.FormatInt(int64(id), 10) }

// ParseUserID parses a decimal user identifier.
func ParseUserID(s string) (UserID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return UserID(n), nil
}

// Location is whatever the geocoder resolved for the user.
type Location struct {
	City     string  `db:"location_city" json:"city"`
	Lat      float64 `db:"location_lat" json:"lat"`
	Lon      float64 `db:"location_lon" json:"lon"`
	Timezone string  `db:"timezone" json:"timezone"`
}

// User is created on first contact and touched on every later one.
type User struct {
	ID           UserID    `db:"user_id" json:"id"`
	DisplayName  string    `db:"display_name" json:"display_name"`
	CurrentPhase string    `db:"current_phase" json:"current_phase"`
	Streak       int       `db:"streak" json:"streak"`
	LastLogin    time.Time `db:"last_login" json:"last_login"`
	Location
}

// UserDefaults are applied when a user is created.
type UserDefaults struct {
	Phase    string
	Location Location
}
