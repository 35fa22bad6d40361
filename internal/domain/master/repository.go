package master

import "context"

// Repository defines data access for the reference tables. Create calls
// report ErrDuplicateName on a name clash; Update and Delete report
// ErrNotFound when the id does not exist.
type Repository interface {
	// Locations
	CreateLocation(ctx context.Context, l Location) (Location, error)
	ListLocations(ctx context.Context) ([]Location, error)
	GetLocation(ctx context.Context, id int64) (Location, error)
	UpdateLocation(ctx context.Context, l Location) error
	DeleteLocation(ctx context.Context, id int64) error

	// Events
	CreateEvent(ctx context.Context, e Event) (Event, error)
	ListEvents(ctx context.Context) ([]Event, error)
	UpdateEvent(ctx context.Context, e Event) error
	DeleteEvent(ctx context.Context, id int64) error

	// Tasks
	CreateTask(ctx context.Context, t Task) (Task, error)
	ListTasks(ctx context.Context) ([]Task, error)
	UpdateTask(ctx context.Context, t Task) error
	DeleteTask(ctx context.Context, id int64) error

	// Clients
	CreateClient(ctx context.Context, c Client) (Client, error)
	ListClients(ctx context.Context) ([]Client, error)
	GetClient(ctx context.Context, id int64) (Client, error)
	UpdateClient(ctx context.Context, c Client) error
	DeleteClient(ctx context.Context, id int64) error

	// Qualifications, skills, languages; kind selects the table.
	CreateAttribute(ctx context.Context, a Attribute) (Attribute, error)
	ListAttributes(ctx context.Context, kind string) ([]Attribute, error)
	UpdateAttribute(ctx context.Context, a Attribute) error
	DeleteAttribute(ctx context.Context, kind string, id int64) error

	// Report templates
	CreateTemplate(ctx context.Context, t Template) (Template, error)
	ListTemplates(ctx context.Context) ([]Template, error)
	GetTemplate(ctx context.Context, id int64) (Template, error)
	UpdateTemplate(ctx context.Context, t Template) error
	DeleteTemplate(ctx context.Context, id int64) error
}
