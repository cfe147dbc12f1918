package models

// ItemStatus is the purchase state of a shopping-list entry.
type ItemStatus string

const (
	StatusPending ItemStatus = "pending"
	StatusBought  ItemStatus = "bought"
)

// ShoppingItem is one entry on a user's shopping list.
type ShoppingItem struct {
	// ID is the unique identifier (UUID format).
	ID string

	// UserID is the owning user's ID.
	UserID string

	// Name is the item description.
	Name string

	// Status is "pending" or "bought".
	Status ItemStatus

	// Price is the expected or paid price; zero means unknown.
	Price float64

	// CreatedAt is the Unix timestamp when the item was added.
	CreatedAt int64
}
