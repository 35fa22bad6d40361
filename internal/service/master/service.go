package master

import (
	"context"

	"github.com/shiftops/workforce-backend-go/internal/domain/master"
)

type MasterServiceImpl struct {
	repo master.Repository
}

func NewMasterService(repo master.Repository) master.Service {
	return &MasterServiceImpl{repo: repo}
}

// ========================================
// LOCATIONS
// ========================================

// CreateLocation implements master.Service.
func (s *MasterServiceImpl) CreateLocation(ctx context.Context, req master.LocationRequest) (master.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return master.LocationResponse{}, err
	}

	created, err := s.repo.CreateLocation(ctx, master.Location{Name: req.Name, Rate: req.Rate})
	if err != nil {
		return master.LocationResponse{}, err
	}
	return toLocationResponse(created), nil
}

// ListLocations implements master.Service.
func (s *MasterServiceImpl) ListLocations(ctx context.Context) ([]master.LocationResponse, error) {
	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]master.LocationResponse, 0, len(locations))
	for _, l := range locations {
		responses = append(responses, toLocationResponse(l))
	}
	return responses, nil
}

// UpdateLocation implements master.Service.
func (s *MasterServiceImpl) UpdateLocation(ctx context.Context, id int64, req master.LocationRequest) (master.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return master.LocationResponse{}, err
	}

	updated := master.Location{ID: id, Name: req.Name, Rate: req.Rate}
	if err := s.repo.UpdateLocation(ctx, updated); err != nil {
		return master.LocationResponse{}, err
	}
	return toLocationResponse(updated), nil
}

// DeleteLocation implements master.Service.
func (s *MasterServiceImpl) DeleteLocation(ctx context.Context, id int64) error {
	return s.repo.DeleteLocation(ctx, id)
}

func toLocationResponse(l master.Location) master.LocationResponse {
	return master.LocationResponse{ID: l.ID, Name: l.Name, Rate: l.Rate}
}

// ========================================
// EVENTS
// ========================================

// CreateEvent implements master.Service.
func (s *MasterServiceImpl) CreateEvent(ctx context.Context, req master.EventRequest) (master.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return master.EventResponse{}, err
	}

	created, err := s.repo.CreateEvent(ctx, master.Event{Name: req.Name, Color: req.Color})
	if err != nil {
		return master.EventResponse{}, err
	}
	return toEventResponse(created), nil
}

// ListEvents implements master.Service.
func (s *MasterServiceImpl) ListEvents(ctx context.Context) ([]master.EventResponse, error) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]master.EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, toEventResponse(e))
	}
	return responses, nil
}

// UpdateEvent implements master.Service.
func (s *MasterServiceImpl) UpdateEvent(ctx context.Context, id int64, req master.EventRequest) (master.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return master.EventResponse{}, err
	}

	updated := master.Event{ID: id, Name: req.Name, Color: req.Color}
	if err := s.repo.UpdateEvent(ctx, updated); err != nil {
		return master.EventResponse{}, err
	}
	return toEventResponse(updated), nil
}

// DeleteEvent implements master.Service.
func (s *MasterServiceImpl) DeleteEvent(ctx context.Context, id int64) error {
	return s.repo.DeleteEvent(ctx, id)
}

func toEventResponse(e master.Event) master.EventResponse {
	return master.EventResponse{ID: e.ID, Name: e.Name, Color: e.Color}
}

// ========================================
// TASKS
// ========================================

// CreateTask implements master.Service.
func (s *MasterServiceImpl) CreateTask(ctx context.Context, req master.NameRequest) (master.NameResponse, error) {
	if err := req.Validate(); err != nil {
		return master.NameResponse{}, err
	}

	created, err := s.repo.CreateTask(ctx, master.Task{Name: req.Name})
	if err != nil {
		return master.NameResponse{}, err
	}
	return master.NameResponse{ID: created.ID, Name: created.Name}, nil
}

// ListTasks implements master.Service.
func (s *MasterServiceImpl) ListTasks(ctx context.Context) ([]master.NameResponse, error) {
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]master.NameResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, master.NameResponse{ID: t.ID, Name: t.Name})
	}
	return responses, nil
}

// UpdateTask implements master.Service.
func (s *MasterServiceImpl) UpdateTask(ctx context.Context, id int64, req master.NameRequest) (master.NameResponse, error) {
	if err := req.Validate(); err != nil {
		return master.NameResponse{}, err
	}

	if err := s.repo.UpdateTask(ctx, master.Task{ID: id, Name: req.Name}); err != nil {
		return master.NameResponse{}, err
	}
	return master.NameResponse{ID: id, Name: req.Name}, nil
}

// DeleteTask implements master.Service.
func (s *MasterServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	return s.repo.DeleteTask(ctx, id)
}

// ========================================
// CLIENTS
// ========================================

// CreateClient implements master.Service.
func (s *MasterServiceImpl) CreateClient(ctx context.Context, req master.ClientRequest) (master.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return master.ClientResponse{}, err
	}

	created, err := s.repo.CreateClient(ctx, master.Client{Name: req.Name, Email: req.Email, Rate: req.Rate})
	if err != nil {
		return master.ClientResponse{}, err
	}
	return toClientResponse(created), nil
}

// ListClients implements master.Service.
func (s *MasterServiceImpl) ListClients(ctx context.Context) ([]master.ClientResponse, error) {
	clients, err := s.repo.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]master.ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, toClientResponse(c))
	}
	return responses, nil
}

// UpdateClient implements master.Service.
func (s *MasterServiceImpl) UpdateClient(ctx context.Context, id int64, req master.ClientRequest) (master.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return master.ClientResponse{}, err
	}

	updated := master.Client{ID: id, Name: req.Name, Email: req.Email, Rate: req.Rate}
	if err := s.repo.UpdateClient(ctx, updated); err != nil {
		return master.ClientResponse{}, err
	}
	return toClientResponse(updated), nil
}

// DeleteClient implements master.Service.
func (s *MasterServiceImpl) DeleteClient(ctx context.Context, id int64) error {
	return s.repo.DeleteClient(ctx, id)
}

func toClientResponse(c master.Client) master.ClientResponse {
	return master.ClientResponse{ID: c.ID, Name: c.Name, Email: c.Email, Rate: c.Rate}
}

// ========================================
// QUALIFICATIONS / SKILLS / LANGUAGES
// ========================================

// CreateAttribute implements master.Service.
func (s *MasterServiceImpl) CreateAttribute(ctx context.Context, kind string, req master.NameRequest) (master.NameResponse, error) {
	if err := req.Validate(); err != nil {
		return master.NameResponse{}, err
	}

	created, err := s.repo.CreateAttribute(ctx, master.Attribute{Name: req.Name, Kind: kind})
	if err != nil {
		return master.NameResponse{}, err
	}
	return master.NameResponse{ID: created.ID, Name: created.Name}, nil
}

// ListAttributes implements master.Service.
func (s *MasterServiceImpl) ListAttributes(ctx context.Context, kind string) ([]master.NameResponse, error) {
	attrs, err := s.repo.ListAttributes(ctx, kind)
	if err != nil {
		return nil, err
	}

	responses := make([]master.NameResponse, 0, len(attrs))
	for _, a := range attrs {
		responses = append(responses, master.NameResponse{ID: a.ID, Name: a.Name})
	}
	return responses, nil
}

// UpdateAttribute implements master.Service.
func (s *MasterServiceImpl) UpdateAttribute(ctx context.Context, kind string, id int64, req master.NameRequest) (master.NameResponse, error) {
	if err := req.Validate(); err != nil {
		return master.NameResponse{}, err
	}

	if err := s.repo.UpdateAttribute(ctx, master.Attribute{ID: id, Name: req.Name, Kind: kind}); err != nil {
		return master.NameResponse{}, err
	}
	return master.NameResponse{ID: id, Name: req.Name}, nil
}

// DeleteAttribute implements master.Service.
func (s *MasterServiceImpl) DeleteAttribute(ctx context.Context, kind string, id int64) error {
	return s.repo.DeleteAttribute(ctx, kind, id)
}

// ========================================
// REPORT TEMPLATES
// ========================================

// CreateTemplate implements master.Service.
func (s *MasterServiceImpl) CreateTemplate(ctx context.Context, req master.TemplateRequest) (master.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return master.TemplateResponse{}, err
	}

	created, err := s.repo.CreateTemplate(ctx, master.Template{Title: req.Title, Type: req.Type, Columns: req.Columns})
	if err != nil {
		return master.TemplateResponse{}, err
	}
	return toTemplateResponse(created), nil
}

// ListTemplates implements master.Service.
func (s *MasterServiceImpl) ListTemplates(ctx context.Context) ([]master.TemplateResponse, error) {
	templates, err := s.repo.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]master.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		responses = append(responses, toTemplateResponse(t))
	}
	return responses, nil
}

// UpdateTemplate implements master.Service.
func (s *MasterServiceImpl) UpdateTemplate(ctx context.Context, id int64, req master.TemplateRequest) (master.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return master.TemplateResponse{}, err
	}

	updated := master.Template{ID: id, Title: req.Title, Type: req.Type, Columns: req.Columns}
	if err := s.repo.UpdateTemplate(ctx, updated); err != nil {
		return master.TemplateResponse{}, err
	}
	return toTemplateResponse(updated), nil
}

// DeleteTemplate implements master.Service.
func (s *MasterServiceImpl) DeleteTemplate(ctx context.Context, id int64) error {
	return s.repo.DeleteTemplate(ctx, id)
}

func toTemplateResponse(t master.Template) master.TemplateResponse {
	return master.TemplateResponse{ID: t.ID, Title: t.Title, Type: t.Type, Columns: t.Columns}
}
