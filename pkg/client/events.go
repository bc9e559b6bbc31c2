package client

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Event as returned by the API
type Event struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Location    *string   `json:"location"`
	Status      string    `json:"status"`
	CreatedBy   *string   `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EventDetail is an event with its partners, as returned by Get
type EventDetail struct {
	Event
	Partners []Partner `json:"partners"`
}

// EventRequest is the body of create and update. EndDate must not precede StartDate.
type EventRequest struct {
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Location    *string   `json:"location,omitempty"`
	Status      *string   `json:"status,omitempty"`
}

// EventsService covers /api/events
type EventsService struct{ c *Client }

// List returns a page of events
func (s *EventsService) List(ctx context.Context, opts ListOptions) (*Page[Event], error) {
	var page Page[Event]
	if err := s.c.do(ctx, http.MethodGet, "/api/events", opts.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns an event with its partners
func (s *EventsService) Get(ctx context.Context, id uint) (*EventDetail, error) {
	var e EventDetail
	if err := s.c.do(ctx, http.MethodGet, eventPath(id), nil, nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create stores a new event
func (s *EventsService) Create(ctx context.Context, req EventRequest) (*Event, error) {
	var e Event
	if err := s.c.do(ctx, http.MethodPost, "/api/events", nil, req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Update replaces an event
func (s *EventsService) Update(ctx context.Context, id uint, req EventRequest) (*Event, error) {
	var e Event
	if err := s.c.do(ctx, http.MethodPut, eventPath(id), nil, req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Delete removes an event and its partner links
func (s *EventsService) Delete(ctx context.Context, id uint) error {
	return s.c.do(ctx, http.MethodDelete, eventPath(id), nil, nil, nil)
}

// AddPartner links a partner. A duplicate link is a 400 APIError.
func (s *EventsService) AddPartner(ctx context.Context, eventID, partnerID uint) error {
	body := map[string]uint{"partnerId": partnerID}
	return s.c.do(ctx, http.MethodPost, eventPath(eventID)+"/partners", nil, body, nil)
}

// RemovePartner unlinks a partner. A missing link is a 404 APIError.
func (s *EventsService) RemovePartner(ctx context.Context, eventID, partnerID uint) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/partners/%d", eventPath(eventID), partnerID), nil, nil, nil)
}

// ListPartners returns the partners linked to an event
func (s *EventsService) ListPartners(ctx context.Context, eventID uint) ([]Partner, error) {
	var partners []Partner
	if err := s.c.do(ctx, http.MethodGet, eventPath(eventID)+"/partners", nil, nil, &partners); err != nil {
		return nil, err
	}
	return partners, nil
}

func eventPath(id uint) string { return fmt.Sprintf("/api/events/%d", id) }
