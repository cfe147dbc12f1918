package models

// SavingsGoal is a named savings target.
type SavingsGoal struct {
	// ID is the unique identifier (UUID format).
	ID string

	// UserID is the owning user's ID.
	UserID string

	// Name describes what is being saved for.
	Name string

	// Target is the amount to reach.
	Target float64

	// Saved is the sum of contributions so far.
	Saved float64

	// Deadline is an optional Unix timestamp; zero means no deadline.
	Deadline int64

	// CreatedAt is the Unix timestamp when the goal was created.
	CreatedAt int64
}

// Progress returns the completion ratio in [0, 1]. A zero target counts
// as complete.
func (g *SavingsGoal) Progress() float64 {
	if g.Target <= 0 {
		return 1
	}
	p := g.Saved / g.Target
	if p > 1 {
		return 1
	}
	return p
}
