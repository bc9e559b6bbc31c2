package repository

import (
	"context"

	"partner_management/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const partnerNotFound = "Partner not found"

// PartnerRepository stores partners
type PartnerRepository interface {
	List(ctx context.Context, params ListParams) (*Page[domain.Partner], error)
	Get(ctx context.Context, id uint) (*domain.Partner, error)
	Create(ctx context.Context, partner *domain.Partner) error
	Update(ctx context.Context, id uint, in domain.PartnerInput) (*domain.Partner, error)
	Delete(ctx context.Context, id uint) error
}

// GormPartnerRepository is the GORM-backed PartnerRepository
type GormPartnerRepository struct {
	db *gorm.DB
}

// NewGormPartnerRepository creates a partner repository on db
func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

// List returns a page of partners, newest first
func (r *GormPartnerRepository) List(ctx context.Context, params ListParams) (*Page[domain.Partner], error) {
	query := r.db.WithContext(ctx).Model(&domain.Partner{})
	if params.Search != "" {
		like := likePattern(params.Search)
		query = query.Where(searchClause("name", "contact_person"), like, like)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	return paginate[domain.Partner](query, params, "created_at DESC, id DESC")
}

// Get returns a partner or NotFound
func (r *GormPartnerRepository) Get(ctx context.Context, id uint) (*domain.Partner, error) {
	var p domain.Partner
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFound(err, partnerNotFound)
	}
	return &p, nil
}

// Create inserts the partner and reloads its server-assigned fields
func (r *GormPartnerRepository) Create(ctx context.Context, partner *domain.Partner) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(partner).Error; err != nil {
			return err
		}
		// reload so database defaults are reflected
		return tx.First(partner, partner.ID).Error
	})
}

// Update replaces the partner fields under a row lock
func (r *GormPartnerRepository) Update(ctx context.Context, id uint, in domain.PartnerInput) (*domain.Partner, error) {
	var p domain.Partner
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, id).Error; err != nil {
			return notFound(err, partnerNotFound)
		}
		in.Apply(&p)
		return tx.Omit(clause.Associations).Save(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes the partner and its event links
func (r *GormPartnerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p domain.Partner
		if err := tx.Select("id").First(&p, id).Error; err != nil {
			return notFound(err, partnerNotFound)
		}
		if err := tx.Where("partner_id = ?", id).Delete(&domain.EventPartner{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Partner{}, id).Error
	})
}
