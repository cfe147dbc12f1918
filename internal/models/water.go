package models

// WaterIntake is a single logged water intake.
type WaterIntake struct {
	// ID is the unique identifier (UUID format).
	ID string

	// UserID is the owning user's ID.
	UserID string

	// Amount is the volume in milliliters.
	Amount float64

	// CreatedAt is the Unix timestamp when the intake was logged.
	CreatedAt int64
}
