package api

import (
	"fmt"      // Location header
	"net/http" // HTTP status codes
	"time"     // Event dates

	"partner_management/internal/domain"     // Importing domain models
	"partner_management/internal/repository" // Event storage

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// Request struct for creating and replacing an event
type EventRequest struct {
	Name        string    `json:"name" binding:"required,max=200"`               // Event name must be provided
	Description *string   `json:"description" binding:"omitempty,max=2000"`      // Optional description
	StartDate   time.Time `json:"startDate" binding:"required"`                  // RFC 3339 start
	EndDate     time.Time `json:"endDate" binding:"required,gtefield=StartDate"` // Must not precede the start
	Location    *string   `json:"location" binding:"omitempty,max=200"`          // Optional location
	Status      *string   `json:"status" binding:"omitempty,max=20"`             // Defaults to planned
}

func (r EventRequest) input() domain.EventInput {
	return domain.EventInput{
		Name:        r.Name,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Location:    r.Location,
		Status:      r.Status,
	}
}

// Request struct for linking a partner to an event
type AddPartnerRequest struct {
	PartnerID uint `json:"partnerId" binding:"required"` // Partner to attach
}

// ListEventsHandler returns a filtered page of events
func ListEventsHandler(events repository.EventRepository, maxPageSize int) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := events.List(c.Request.Context(), parseListParams(c, maxPageSize))
		if err != nil {
			respondError(c, err, "list events")
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetEventHandler returns an event with its partners
func GetEventHandler(events repository.EventRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		event, err := events.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "get event")
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

// CreateEventHandler stores a new event owned by the caller
func CreateEventHandler(events repository.EventRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EventRequest // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		event := domain.NewEvent(req.input(), currentUserID(c))
		if err := events.Create(c.Request.Context(), event); err != nil {
			respondError(c, err, "create event")
			return
		}
		logrus.WithFields(logrus.Fields{"event_id": event.ID, "user_id": event.CreatedBy}).Info("Event created")
		c.Header("Location", fmt.Sprintf("/api/events/%d", event.ID))
		c.JSON(http.StatusCreated, event)
	}
}

// UpdateEventHandler replaces the fields of an event
func UpdateEventHandler(events repository.EventRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var req EventRequest // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		event, err := events.Update(c.Request.Context(), id, req.input())
		if err != nil {
			respondError(c, err, "update event")
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

// DeleteEventHandler removes an event and its partner links
func DeleteEventHandler(events repository.EventRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := events.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err, "delete event")
			return
		}
		logrus.WithField("event_id", id).Info("Event deleted")
		c.Status(http.StatusNoContent)
	}
}

// AddEventPartnerHandler links a partner to an event
func AddEventPartnerHandler(events repository.EventRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseID(c, "id")
		if !ok {
			return
		}
		var req AddPartnerRequest // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		if _, err := events.AddPartner(c.Request.Context(), eventID, req.PartnerID); err != nil {
			respondError(c, err, "add event partner")
			return
		}
		logrus.WithFields(logrus.Fields{"event_id": eventID, "partner_id": req.PartnerID}).Info("Partner added to event")
		c.JSON(http.StatusOK, gin.H{"message": "Partner added to event successfully"})
	}
}

// RemoveEventPartnerHandler unlinks a partner from an event
func RemoveEventPartnerHandler(events repository.EventRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseID(c, "id")
		if !ok {
			return
		}
		partnerID, ok := parseID(c, "partnerId")
		if !ok {
			return
		}
		if err := events.RemovePartner(c.Request.Context(), eventID, partnerID); err != nil {
			respondError(c, err, "remove event partner")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ListEventPartnersHandler returns the partners attached to an event
func ListEventPartnersHandler(events repository.EventRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseID(c, "id")
		if !ok {
			return
		}
		partners, err := events.ListPartners(c.Request.Context(), eventID)
		if err != nil {
			respondError(c, err, "list event partners")
			return
		}
		c.JSON(http.StatusOK, partners)
	}
}
