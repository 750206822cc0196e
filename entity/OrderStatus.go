package entity

// Intended status domain. Incoming values are stored as-is, nothing
// rejects a value outside these two (see DESIGN.md).
const (
	StatusPlaced    = "PLACED"
	StatusDelivered = "DELIVERED"
)
