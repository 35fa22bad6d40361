package roster

import "context"

// Service defines business logic for the roster view.
type Service interface {
	View(ctx context.Context, filter Filter) (ViewResponse, error)
}
