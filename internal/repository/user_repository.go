package repository

import (
	"context"
	"errors"
	"fmt"

	"partner_management/internal/domain"

	"gorm.io/gorm"
)

// UserRepository stores accounts and their roles
type UserRepository interface {
	Create(ctx context.Context, user *domain.User, roleName string) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, params ListParams) (*Page[domain.User], error)
}

// GormUserRepository is the GORM-backed UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a user repository on db
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts the user with a single role. A taken email is a validation error.
func (r *GormUserRepository) Create(ctx context.Context, user *domain.User, roleName string) error {
	user.Email = toLower(user.Email)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&domain.User{}).Where("email = ?", user.Email).Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return emailTaken(user.Email)
		}
		var role domain.Role
		if err := tx.Where("name = ?", roleName).First(&role).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("role %q is not seeded", roleName)
			}
			return err
		}
		user.Roles = []domain.Role{role}
		return tx.Omit("Roles.*").Create(user).Error
	})
	if isDuplicateKey(err) {
		return emailTaken(user.Email)
	}
	return err
}

// FindByEmail looks a user up by case-insensitive email, roles included
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Preload("Roles").Where("email = ?", toLower(email)).First(&u).Error; err != nil {
		return nil, notFound(err, "User not found")
	}
	return &u, nil
}

// FindByID looks a user up by ID, roles included
func (r *GormUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Preload("Roles").First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "User not found")
	}
	return &u, nil
}

// List returns a page of users with roles, newest first
func (r *GormUserRepository) List(ctx context.Context, params ListParams) (*Page[domain.User], error) {
	query := r.db.WithContext(ctx).Model(&domain.User{})
	if params.Search != "" {
		like := likePattern(params.Search)
		query = query.Where(searchClause("email", "full_name"), like, like)
	}
	return paginate[domain.User](query, params, "created_at DESC, id DESC", withRoles)
}

func withRoles(db *gorm.DB) *gorm.DB {
	return db.Preload("Roles")
}

func emailTaken(email string) error {
	return domain.NewValidationError(fmt.Sprintf("Email '%s' is already taken.", email))
}
