package master

import "context"

// Service defines business logic for the reference tables.
type Service interface {
	// Locations
	CreateLocation(ctx context.Context, req LocationRequest) (LocationResponse, error)
	ListLocations(ctx context.Context) ([]LocationResponse, error)
	UpdateLocation(ctx context.Context, id int64, req LocationRequest) (LocationResponse, error)
	DeleteLocation(ctx context.Context, id int64) error

	// Events
	CreateEvent(ctx context.Context, req EventRequest) (EventResponse, error)
	ListEvents(ctx context.Context) ([]EventResponse, error)
	UpdateEvent(ctx context.Context, id int64, req EventRequest) (EventResponse, error)
	DeleteEvent(ctx context.Context, id int64) error

	// Tasks
	CreateTask(ctx context.Context, req NameRequest) (NameResponse, error)
	ListTasks(ctx context.Context) ([]NameResponse, error)
	UpdateTask(ctx context.Context, id int64, req NameRequest) (NameResponse, error)
	DeleteTask(ctx context.Context, id int64) error

	// Clients
	CreateClient(ctx context.Context, req ClientRequest) (ClientResponse, error)
	ListClients(ctx context.Context) ([]ClientResponse, error)
	UpdateClient(ctx context.Context, id int64, req ClientRequest) (ClientResponse, error)
	DeleteClient(ctx context.Context, id int64) error

	// Qualifications, skills, languages; kind selects the table.
	CreateAttribute(ctx context.Context, kind string, req NameRequest) (NameResponse, error)
	ListAttributes(ctx context.Context, kind string) ([]NameResponse, error)
	UpdateAttribute(ctx context.Context, kind string, id int64, req NameRequest) (NameResponse, error)
	DeleteAttribute(ctx context.Context, kind string, id int64) error

	// Report templates
	CreateTemplate(ctx context.Context, req TemplateRequest) (TemplateResponse, error)
	ListTemplates(ctx context.Context) ([]TemplateResponse, error)
	UpdateTemplate(ctx context.Context, id int64, req TemplateRequest) (TemplateResponse, error)
	DeleteTemplate(ctx context.Context, id int64) error
}
