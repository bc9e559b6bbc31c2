package repository

import (
	"context"

	"partner_management/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	eventNotFound      = "Event not found"
	linkNotFound       = "Partner not associated with this event"
	linkAlreadyPresent = "Partner already added to this event"
)

// EventRepository stores events and their partner links
type EventRepository interface {
	List(ctx context.Context, params ListParams) (*Page[domain.Event], error)
	Get(ctx context.Context, id uint) (*domain.EventDetail, error)
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, id uint, in domain.EventInput) (*domain.Event, error)
	Delete(ctx context.Context, id uint) error
	AddPartner(ctx context.Context, eventID, partnerID uint) (*domain.EventPartner, error)
	RemovePartner(ctx context.Context, eventID, partnerID uint) error
	ListPartners(ctx context.Context, eventID uint) ([]domain.Partner, error)
}

// GormEventRepository is the GORM-backed EventRepository
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates an event repository on db
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// List returns a page of events, latest start date first
func (r *GormEventRepository) List(ctx context.Context, params ListParams) (*Page[domain.Event], error) {
	query := r.db.WithContext(ctx).Model(&domain.Event{})
	if params.Search != "" {
		like := likePattern(params.Search)
		query = query.Where(searchClause("name", "location"), like, like)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	return paginate[domain.Event](query, params, "start_date DESC, id DESC")
}

// Get returns the event with its partners, or NotFound
func (r *GormEventRepository) Get(ctx context.Context, id uint) (*domain.EventDetail, error) {
	var detail domain.EventDetail
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&detail.Event, id).Error; err != nil {
			return notFound(err, eventNotFound)
		}
		partners, err := partnersOf(tx, id)
		if err != nil {
			return err
		}
		detail.Partners = partners
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// Create inserts the event and reloads its server-assigned fields
func (r *GormEventRepository) Create(ctx context.Context, event *domain.Event) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(event).Error; err != nil {
			return err
		}
		return tx.First(event, event.ID).Error
	})
}

// Update replaces the event fields under a row lock
func (r *GormEventRepository) Update(ctx context.Context, id uint, in domain.EventInput) (*domain.Event, error) {
	var e domain.Event
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&e, id).Error; err != nil {
			return notFound(err, eventNotFound)
		}
		in.Apply(&e)
		return tx.Omit(clause.Associations).Save(&e).Error
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Delete removes the event and its partner links
func (r *GormEventRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&domain.Event{}, id).Error; err != nil {
			return notFound(err, eventNotFound)
		}
		if err := tx.Where("event_id = ?", id).Delete(&domain.EventPartner{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Event{}, id).Error
	})
}

// AddPartner links a partner to an event. The existence check runs first; a
// concurrent insert of the same pair is caught by the unique index and reported
// as the same conflict.
func (r *GormEventRepository) AddPartner(ctx context.Context, eventID, partnerID uint) (*domain.EventPartner, error) {
	link := domain.EventPartner{EventID: eventID, PartnerID: partnerID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&domain.Event{}, eventID).Error; err != nil {
			return notFound(err, eventNotFound)
		}
		if err := tx.Select("id").First(&domain.Partner{}, partnerID).Error; err != nil {
			return notFound(err, partnerNotFound)
		}
		var existing int64
		if err := tx.Model(&domain.EventPartner{}).
			Where("event_id = ? AND partner_id = ?", eventID, partnerID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return domain.Conflict(linkAlreadyPresent)
		}
		return tx.Create(&link).Error
	})
	if err != nil {
		return nil, translateLinkError(err)
	}
	return &link, nil
}

// RemovePartner deletes a link, or returns NotFound when there is none
func (r *GormEventRepository) RemovePartner(ctx context.Context, eventID, partnerID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("event_id = ? AND partner_id = ?", eventID, partnerID).Delete(&domain.EventPartner{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.NotFound(linkNotFound)
		}
		return nil
	})
}

// ListPartners returns the partners linked to an existing event
func (r *GormEventRepository) ListPartners(ctx context.Context, eventID uint) ([]domain.Partner, error) {
	var partners []domain.Partner
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&domain.Event{}, eventID).Error; err != nil {
			return notFound(err, eventNotFound)
		}
		var err error
		partners, err = partnersOf(tx, eventID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return partners, nil
}

// partnersOf loads the partners joined to an event through event_partners
func partnersOf(tx *gorm.DB, eventID uint) ([]domain.Partner, error) {
	partners := make([]domain.Partner, 0)
	err := tx.Model(&domain.Partner{}).
		Joins("JOIN event_partners ON event_partners.partner_id = partners.id").
		Where("event_partners.event_id = ?", eventID).
		Order("event_partners.id").
		Find(&partners).Error
	return partners, err
}

// translateLinkError turns a unique violation on the event/partner pair into a conflict
func translateLinkError(err error) error {
	if isDuplicateKey(err) {
		return domain.Conflict(linkAlreadyPresent)
	}
	return err
}
