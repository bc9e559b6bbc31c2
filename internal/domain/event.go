package domain

import "time"

// Default event status
const EventStatusPlanned = "planned"

// Event Model
type Event struct {
	ID            uint           `gorm:"primaryKey" json:"id"`                                  // Primary key
	Name          string         `gorm:"size:200;not null;index" json:"name"`                   // Display name
	Description   *string        `gorm:"size:2000" json:"description"`                          // Optional notes
	StartDate     time.Time      `gorm:"not null;index" json:"startDate"`                       // Start, stored in UTC
	EndDate       time.Time      `gorm:"not null" json:"endDate"`                               // End, never before StartDate
	Location      *string        `gorm:"size:200" json:"location"`                              // Optional venue
	Status        string         `gorm:"size:20;not null;default:planned;index" json:"status"`  // Free-form status, planned by default
	CreatedBy     *string        `gorm:"size:36" json:"createdBy"`                              // ID of the creating user
	CreatedAt     time.Time      `gorm:"not null" json:"createdAt"`                             // Creation time
	UpdatedAt     time.Time      `gorm:"not null" json:"updatedAt"`                             // Last update time
	EventPartners []EventPartner `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"` // Links to partners, removed with the event
}

// EventInput holds the client-supplied fields of an event
type EventInput struct {
	Name        string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
	Location    *string
	Status      *string
}

// NewEvent builds an event from input, defaulting the status
func NewEvent(in EventInput, createdBy *string) *Event {
	e := &Event{Status: EventStatusPlanned, CreatedBy: createdBy}
	in.Apply(e)
	return e
}

// Apply replaces every field of e with the input. Status is kept when omitted.
func (in EventInput) Apply(e *Event) {
	e.Name = in.Name
	e.Description = in.Description
	e.StartDate = in.StartDate.UTC()
	e.EndDate = in.EndDate.UTC()
	e.Location = in.Location
	if in.Status != nil && *in.Status != "" {
		e.Status = *in.Status
	}
}

// EventPartner links an event to a partner. The pair is unique.
type EventPartner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                                                                    // Primary key
	EventID   uint      `gorm:"not null;uniqueIndex:idx_event_partners_event_partner,priority:1;index" json:"eventId"`   // Linked event
	PartnerID uint      `gorm:"not null;uniqueIndex:idx_event_partners_event_partner,priority:2;index" json:"partnerId"` // Linked partner
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`                                                               // Link time
}

// EventDetail is an event together with the partners attached to it
type EventDetail struct {
	Event
	Partners []Partner `json:"partners"` // Linked partners in link order
}

// Models lists every persisted type, in migration order
func Models() []any {
	return []any{&Role{}, &User{}, &Partner{}, &Event{}, &EventPartner{}}
}
