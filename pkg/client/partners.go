package client

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Partner as returned by the API
type Partner struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	ContactPerson *string   `json:"contactPerson"`
	Phone         *string   `json:"phone"`
	Email         *string   `json:"email"`
	Address       *string   `json:"address"`
	Description   *string   `json:"description"`
	Status        string    `json:"status"`
	CreatedBy     *string   `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PartnerRequest is the body of create and update. Update replaces every field but a nil Status.
type PartnerRequest struct {
	Name          string  `json:"name"`
	ContactPerson *string `json:"contactPerson,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Address       *string `json:"address,omitempty"`
	Description   *string `json:"description,omitempty"`
	Status        *string `json:"status,omitempty"`
}

// PartnersService covers /api/partners
type PartnersService struct{ c *Client }

// List returns a page of partners
func (s *PartnersService) List(ctx context.Context, opts ListOptions) (*Page[Partner], error) {
	var page Page[Partner]
	if err := s.c.do(ctx, http.MethodGet, "/api/partners", opts.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns one partner
func (s *PartnersService) Get(ctx context.Context, id uint) (*Partner, error) {
	var p Partner
	if err := s.c.do(ctx, http.MethodGet, partnerPath(id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create stores a new partner
func (s *PartnersService) Create(ctx context.Context, req PartnerRequest) (*Partner, error) {
	var p Partner
	if err := s.c.do(ctx, http.MethodPost, "/api/partners", nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update replaces a partner
func (s *PartnersService) Update(ctx context.Context, id uint, req PartnerRequest) (*Partner, error) {
	var p Partner
	if err := s.c.do(ctx, http.MethodPut, partnerPath(id), nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a partner and its event links
func (s *PartnersService) Delete(ctx context.Context, id uint) error {
	return s.c.do(ctx, http.MethodDelete, partnerPath(id), nil, nil, nil)
}

func partnerPath(id uint) string { return fmt.Sprintf("/api/partners/%d", id) }
