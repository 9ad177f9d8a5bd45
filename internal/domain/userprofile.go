package domain

// UserProfile holds per-user settings. DayStartHour (0..23) shifts the
// logical day boundary: activity before that hour counts toward the
// previous calendar day.
type UserProfile struct {
	ID           string
	DayStartHour int
}
