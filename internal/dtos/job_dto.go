package dtos

type JobCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location" binding:"required"`
	// Pointer so a posted salary of 0 still counts as provided.
	Salary *float64 `json:"salary" binding:"required"`

	// Optional Fields
	Skills []string `json:"skills"`
}

// JobUpdateRequest uses pointers throughout: nil means "leave the old
// value", a present zero value overwrites. This replaces merge-by-
// truthiness, which made it impossible to clear a field or zero a salary.
type JobUpdateRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Company     *string   `json:"company"`
	Location    *string   `json:"location"`
	Salary      *float64  `json:"salary"`
	Skills      *[]string `json:"skills"`
}
