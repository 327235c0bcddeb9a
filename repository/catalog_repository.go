package repository

import (
	"github.com/igor-rodz/Projeto-delivery/entity"
	"gorm.io/gorm"
)

// CatalogRepository covers the menu-side aggregates: categories, products,
// additionals and delivery areas, always scoped by business_id.
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// ---------------- Storefront snapshot reads ----------------

func (r *CatalogRepository) ListCategories(businessID uint, onlyEnabled bool) ([]entity.Category, error) {
	var out []entity.Category
	q := r.DB.Where("business_id = ?", businessID)
	if onlyEnabled {
		q = q.Where("enabled = ?", true)
	}
	err := q.Order("sort_order").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) ListProducts(businessID uint, onlyEnabled bool) ([]entity.Product, error) {
	var out []entity.Product
	q := r.DB.Where("business_id = ?", businessID)
	if onlyEnabled {
		q = q.Where("enabled = ?", true)
	}
	err := q.Order("name").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) ListAdditionals(businessID uint, onlyEnabled bool) ([]entity.Additional, error) {
	var out []entity.Additional
	q := r.DB.Where("business_id = ?", businessID)
	if onlyEnabled {
		q = q.Where("enabled = ?", true)
	}
	err := q.Order("name").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) ListDeliveryAreas(businessID uint, onlyEnabled bool) ([]entity.DeliveryArea, error) {
	var out []entity.DeliveryArea
	q := r.DB.Where("business_id = ?", businessID)
	if onlyEnabled {
		q = q.Where("enabled = ?", true)
	}
	err := q.Order("name").Find(&out).Error
	return out, err
}

// ---------------- Cart/checkout lookups ----------------

// GetProductInBusiness fetches an enabled product, rejecting cross-business IDs.
func (r *CatalogRepository) GetProductInBusiness(productID, businessID uint) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.Where("id = ? AND business_id = ? AND enabled = ?", productID, businessID, true).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAdditionalsByIDs returns only the enabled additionals of this business;
// callers compare lengths to detect foreign or disabled IDs.
func (r *CatalogRepository) GetAdditionalsByIDs(businessID uint, ids []uint) ([]entity.Additional, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []entity.Additional
	err := r.DB.Where("id IN ? AND business_id = ? AND enabled = ?", ids, businessID, true).
		Find(&out).Error
	return out, err
}

func (r *CatalogRepository) GetDeliveryArea(areaID, businessID uint) (*entity.DeliveryArea, error) {
	var a entity.DeliveryArea
	err := r.DB.Where("id = ? AND business_id = ? AND enabled = ?", areaID, businessID, true).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ---------------- Dashboard CRUD ----------------

func (r *CatalogRepository) CreateCategory(cat *entity.Category) error { return r.DB.Create(cat).Error }
func (r *CatalogRepository) UpdateCategory(cat *entity.Category) error { return r.DB.Save(cat).Error }

func (r *CatalogRepository) GetCategoryInBusiness(categoryID, businessID uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.Where("id = ? AND business_id = ?", categoryID, businessID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CatalogRepository) DeleteCategory(categoryID, businessID uint) error {
	return r.DB.Where("id = ? AND business_id = ?", categoryID, businessID).
		Delete(&entity.Category{}).Error
}

func (r *CatalogRepository) CreateProduct(p *entity.Product) error { return r.DB.Create(p).Error }
func (r *CatalogRepository) UpdateProduct(p *entity.Product) error { return r.DB.Save(p).Error }

func (r *CatalogRepository) GetProductForOwner(productID, businessID uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Where("id = ? AND business_id = ?", productID, businessID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) DeleteProduct(productID, businessID uint) error {
	return r.DB.Where("id = ? AND business_id = ?", productID, businessID).
		Delete(&entity.Product{}).Error
}

func (r *CatalogRepository) CountProducts(businessID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Product{}).Where("business_id = ?", businessID).Count(&cnt).Error
	return cnt, err
}

func (r *CatalogRepository) CreateAdditional(a *entity.Additional) error { return r.DB.Create(a).Error }
func (r *CatalogRepository) UpdateAdditional(a *entity.Additional) error { return r.DB.Save(a).Error }

func (r *CatalogRepository) GetAdditionalForOwner(additionalID, businessID uint) (*entity.Additional, error) {
	var a entity.Additional
	if err := r.DB.Where("id = ? AND business_id = ?", additionalID, businessID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *CatalogRepository) DeleteAdditional(additionalID, businessID uint) error {
	return r.DB.Where("id = ? AND business_id = ?", additionalID, businessID).
		Delete(&entity.Additional{}).Error
}

func (r *CatalogRepository) CreateDeliveryArea(a *entity.DeliveryArea) error { return r.DB.Create(a).Error }
func (r *CatalogRepository) UpdateDeliveryArea(a *entity.DeliveryArea) error { return r.DB.Save(a).Error }

func (r *CatalogRepository) GetDeliveryAreaForOwner(areaID, businessID uint) (*entity.DeliveryArea, error) {
	var a entity.DeliveryArea
	if err := r.DB.Where("id = ? AND business_id = ?", areaID, businessID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *CatalogRepository) DeleteDeliveryArea(areaID, businessID uint) error {
	return r.DB.Where("id = ? AND business_id = ?", areaID, businessID).
		Delete(&entity.DeliveryArea{}).Error
}
