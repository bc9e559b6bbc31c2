package domain

import "time"

// Default partner status
const PartnerStatusActive = "active"

// Partner Model
type Partner struct {
	ID            uint           `gorm:"primaryKey" json:"id"`                                  // Primary key
	Name          string         `gorm:"size:100;not null;index" json:"name"`                   // Display name
	ContactPerson *string        `gorm:"size:100" json:"contactPerson"`                         // Optional contact
	Phone         *string        `gorm:"size:20" json:"phone"`                                  // Optional phone
	Email         *string        `gorm:"size:100;index" json:"email"`                           // Optional contact email
	Address       *string        `gorm:"size:500" json:"address"`                               // Optional postal address
	Description   *string        `gorm:"size:2000" json:"description"`                          // Optional notes
	Status        string         `gorm:"size:20;not null;default:active;index" json:"status"`   // Free-form status, active by default
	CreatedBy     *string        `gorm:"size:36" json:"createdBy"`                              // ID of the creating user
	CreatedAt     time.Time      `gorm:"not null;index" json:"createdAt"`                       // Creation time
	UpdatedAt     time.Time      `gorm:"not null" json:"updatedAt"`                             // Last update time
	EventPartners []EventPartner `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"` // Links to events, removed with the partner
}

// PartnerInput holds the client-supplied fields of a partner
type PartnerInput struct {
	Name          string
	ContactPerson *string
	Phone         *string
	Email         *string
	Address       *string
	Description   *string
	Status        *string
}

// NewPartner builds a partner from input, defaulting the status
func NewPartner(in PartnerInput, createdBy *string) *Partner {
	p := &Partner{Status: PartnerStatusActive, CreatedBy: createdBy}
	in.Apply(p)
	return p
}

// Apply replaces every field of p with the input. Status is kept when omitted.
func (in PartnerInput) Apply(p *Partner) {
	p.Name = in.Name
	p.ContactPerson = in.ContactPerson
	p.Phone = in.Phone
	p.Email = in.Email
	p.Address = in.Address
	p.Description = in.Description
	if in.Status != nil && *in.Status != "" {
		p.Status = *in.Status
	}
}
