package repository

import (
	"errors"

	"github.com/igor-rodz/Projeto-delivery/entity"
	"gorm.io/gorm"
)

type BusinessRepository struct {
	DB *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{DB: db}
}

func (r *BusinessRepository) GetByID(id uint) (*entity.Business, error) {
	var b entity.Business
	if err := r.DB.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBySlug backs the public storefront; gorm.ErrRecordNotFound means 404.
func (r *BusinessRepository) GetBySlug(slug string) (*entity.Business, error) {
	var b entity.Business
	if err := r.DB.Where("slug = ?", slug).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// GetByOwner returns nil without error when the user has no business yet,
// so onboarding can branch on it.
func (r *BusinessRepository) GetByOwner(userID uint) (*entity.Business, error) {
	var b entity.Business
	err := r.DB.Where("user_id = ?", userID).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BusinessRepository) SlugExists(slug string) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Business{}).Where("slug = ?", slug).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *BusinessRepository) Create(tx *gorm.DB, b *entity.Business) error {
	return tx.Create(b).Error
}

func (r *BusinessRepository) Update(b *entity.Business) error {
	return r.DB.Save(b).Error
}

func (r *BusinessRepository) IsOwnedBy(businessID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Business{}).
		Where("id = ? AND user_id = ?", businessID, userID).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}
