package api

import (
	"fmt"      // Location header
	"net/http" // HTTP status codes

	"partner_management/internal/domain"     // Importing domain models
	"partner_management/internal/repository" // Partner storage

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// Request struct for creating and replacing a partner
type PartnerRequest struct {
	Name          string  `json:"name" binding:"required,max=100"`           // Partner name must be provided
	ContactPerson *string `json:"contactPerson" binding:"omitempty,max=100"` // Optional contact
	Phone         *string `json:"phone" binding:"omitempty,max=20"`          // Optional phone
	Email         *string `json:"email" binding:"omitempty,max=100"`         // Optional email
	Address       *string `json:"address" binding:"omitempty,max=500"`       // Optional address
	Description   *string `json:"description" binding:"omitempty,max=2000"`  // Optional description
	Status        *string `json:"status" binding:"omitempty,max=20"`         // Defaults to active
}

func (r PartnerRequest) input() domain.PartnerInput {
	return domain.PartnerInput{
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Phone:         r.Phone,
		Email:         r.Email,
		Address:       r.Address,
		Description:   r.Description,
		Status:        r.Status,
	}
}

// ListPartnersHandler returns a filtered page of partners
func ListPartnersHandler(partners repository.PartnerRepository, maxPageSize int) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := partners.List(c.Request.Context(), parseListParams(c, maxPageSize))
		if err != nil {
			respondError(c, err, "list partners")
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetPartnerHandler returns a single partner
func GetPartnerHandler(partners repository.PartnerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		partner, err := partners.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "get partner")
			return
		}
		c.JSON(http.StatusOK, partner)
	}
}

// CreatePartnerHandler stores a new partner owned by the caller
func CreatePartnerHandler(partners repository.PartnerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PartnerRequest // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		partner := domain.NewPartner(req.input(), currentUserID(c))
		if err := partners.Create(c.Request.Context(), partner); err != nil {
			respondError(c, err, "create partner")
			return
		}
		logrus.WithFields(logrus.Fields{"partner_id": partner.ID, "user_id": partner.CreatedBy}).Info("Partner created")
		c.Header("Location", fmt.Sprintf("/api/partners/%d", partner.ID))
		c.JSON(http.StatusCreated, partner)
	}
}

// UpdatePartnerHandler replaces the fields of a partner
func UpdatePartnerHandler(partners repository.PartnerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var req PartnerRequest // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		partner, err := partners.Update(c.Request.Context(), id, req.input())
		if err != nil {
			respondError(c, err, "update partner")
			return
		}
		c.JSON(http.StatusOK, partner)
	}
}

// DeletePartnerHandler removes a partner and its event links
func DeletePartnerHandler(partners repository.PartnerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := partners.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err, "delete partner")
			return
		}
		logrus.WithField("partner_id", id).Info("Partner deleted")
		c.Status(http.StatusNoContent)
	}
}
