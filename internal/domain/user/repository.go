package user

import "context"

// Attribute kinds, matching the join table names.
const (
	AttrQualification = "qualification"
	AttrSkill         = "skill"
	AttrLanguage      = "language"
)

// Repository defines data access for users and their attribute sets.
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id int64) error

	// List returns users with attribute sets loaded, plus the total count.
	List(ctx context.Context, filter ListFilter) ([]User, int64, error)

	// SearchActive matches active users by username substring.
	SearchActive(ctx context.Context, username string) ([]User, error)

	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	// Attribute set maintenance
	AddAttributes(ctx context.Context, userID int64, kind string, ids []int64) error
	RemoveAttributes(ctx context.Context, userID int64, kind string, ids []int64) error
	AttributeIDs(ctx context.Context, userID int64, kind string) ([]int64, error)

	// AllAttributes returns every qualification, skill and language.
	AllAttributes(ctx context.Context) (SummaryResponse, error)
}
