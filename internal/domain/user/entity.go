package user

import "time"

// Roles carried in the JWT role claim.
const (
	RoleAdmin    = "1"
	RoleEmployee = "2"
)

// Statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type User struct {
	ID           int64
	Name         string
	Username     string
	Email        string
	PasswordHash *string
	Mobile       *string
	Address      *string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Attribute sets loaded from the join tables
	Qualifications []Attribute
	Skills         []Attribute
	Languages      []Attribute
}

// Attribute is one qualification, skill or language assigned to a user.
type Attribute struct {
	ID   int64  `json:"value"`
	Name string `json:"label"`
}
