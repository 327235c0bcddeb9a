package services

import (
	"errors"
	"fmt"

	"github.com/igor-rodz/Projeto-delivery/entity"
	"github.com/igor-rodz/Projeto-delivery/repository"
	"github.com/igor-rodz/Projeto-delivery/utils"
	"gorm.io/gorm"
)

var (
	ErrAlreadyOnboarded = errors.New("user already owns a business")
	ErrNoBusiness       = errors.New("user has no business")
)

type BusinessService struct {
	DB      *gorm.DB
	BizRepo *repository.BusinessRepository
	Catalog *repository.CatalogRepository
}

func NewBusinessService(db *gorm.DB, br *repository.BusinessRepository, cat *repository.CatalogRepository) *BusinessService {
	return &BusinessService{DB: db, BizRepo: br, Catalog: cat}
}

// ---------------- Onboarding ----------------

type OnboardIn struct {
	BusinessName string `json:"businessName" binding:"required"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	LogoURL      string `json:"logoUrl"`
}

// Onboard creates the merchant's business with sensible defaults, a unique
// slug and the starter menu, all in one transaction. The slug gets a numeric
// suffix when the plain one is taken.
func (s *BusinessService) Onboard(userID uint, in *OnboardIn) (*entity.Business, error) {
	existing, err := s.BizRepo.GetByOwner(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyOnboarded
	}

	slug, err := s.uniqueSlug(in.BusinessName)
	if err != nil {
		return nil, err
	}

	b := entity.Business{
		UserID:         userID,
		BusinessName:   in.BusinessName,
		Slug:           slug,
		Address:        in.Address,
		Phone:          in.Phone,
		LogoURL:        in.LogoURL,
		CoverURL:       "https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=800&h=400&fit=crop",
		IsOpen:         true,
		OpeningHours:   "18:00 - 23:00",
		MinOrder:       2500,
		DeliveryFee:    500,
		DeliveryTime:   "30-45 min",
		PaymentMethods: templatePaymentMethods,
		ThemeColor:     "#f97316",
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.BizRepo.Create(tx, &b); err != nil {
			return err
		}
		return cloneTemplate(tx, b.ID)
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BusinessService) uniqueSlug(name string) (string, error) {
	base := utils.Slugify(name)
	slug := base
	for counter := 1; ; counter++ {
		exists, err := s.BizRepo.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

func cloneTemplate(tx *gorm.DB, businessID uint) error {
	categoryIDs := make(map[string]uint, len(templateCategories))
	for _, tc := range templateCategories {
		cat := entity.Category{
			BusinessID:  businessID,
			Name:        tc.Name,
			Description: tc.Description,
			SortOrder:   tc.SortOrder,
			Enabled:     true,
		}
		if err := tx.Create(&cat).Error; err != nil {
			return err
		}
		categoryIDs[cat.Name] = cat.ID
	}
	for _, tp := range templateProducts {
		p := entity.Product{
			BusinessID:  businessID,
			CategoryID:  categoryIDs[tp.Category],
			Name:        tp.Name,
			Description: tp.Description,
			Price:       tp.Price,
			ImageURL:    tp.ImageURL,
			PrepTime:    tp.PrepTime,
			Enabled:     true,
		}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
	}
	for _, ta := range templateAdditionals {
		a := entity.Additional{BusinessID: businessID, Name: ta.Name, Price: ta.Price, Enabled: true}
		if err := tx.Create(&a).Error; err != nil {
			return err
		}
	}
	for _, td := range templateDeliveryAreas {
		d := entity.DeliveryArea{BusinessID: businessID, Name: td.Name, Fee: td.Price, Enabled: true}
		if err := tx.Create(&d).Error; err != nil {
			return err
		}
	}
	return nil
}

// ---------------- Settings ----------------

type SettingsIn struct {
	BusinessName   *string   `json:"businessName"`
	Description    *string   `json:"description"`
	Address        *string   `json:"address"`
	Phone          *string   `json:"phone"`
	LogoURL        *string   `json:"logoUrl"`
	CoverURL       *string   `json:"coverUrl"`
	IsOpen         *bool     `json:"isOpen"`
	OpeningHours   *string   `json:"openingHours"`
	MinOrder       *int64    `json:"minOrder"`
	DeliveryFee    *int64    `json:"deliveryFee"`
	DeliveryTime   *string   `json:"deliveryTime"`
	PaymentMethods *[]string `json:"paymentMethods"`
	ThemeColor     *string   `json:"themeColor"`
}

// UpdateSettings mutates the owner's business. Last write wins; the slug is
// fixed at onboarding and never changes, links stay stable.
func (s *BusinessService) UpdateSettings(userID uint, in *SettingsIn) (*entity.Business, error) {
	b, err := s.BizRepo.GetByOwner(userID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNoBusiness
	}

	if in.BusinessName != nil {
		b.BusinessName = *in.BusinessName
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	if in.Address != nil {
		b.Address = *in.Address
	}
	if in.Phone != nil {
		b.Phone = *in.Phone
	}
	if in.LogoURL != nil {
		b.LogoURL = *in.LogoURL
	}
	if in.CoverURL != nil {
		b.CoverURL = *in.CoverURL
	}
	if in.IsOpen != nil {
		b.IsOpen = *in.IsOpen
	}
	if in.OpeningHours != nil {
		b.OpeningHours = *in.OpeningHours
	}
	if in.MinOrder != nil && *in.MinOrder >= 0 {
		b.MinOrder = *in.MinOrder
	}
	if in.DeliveryFee != nil && *in.DeliveryFee >= 0 {
		b.DeliveryFee = *in.DeliveryFee
	}
	if in.DeliveryTime != nil {
		b.DeliveryTime = *in.DeliveryTime
	}
	if in.PaymentMethods != nil {
		b.PaymentMethods = *in.PaymentMethods
	}
	if in.ThemeColor != nil {
		b.ThemeColor = *in.ThemeColor
	}

	if err := s.BizRepo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ---------------- Storefront snapshot ----------------

// MenuOut is the catalog snapshot a storefront visit fetches once: the
// business plus everything enabled, ordered for display.
type MenuOut struct {
	Business      *entity.Business      `json:"business"`
	Categories    []entity.Category     `json:"categories"`
	Products      []entity.Product      `json:"products"`
	Additionals   []entity.Additional   `json:"additionals"`
	DeliveryAreas []entity.DeliveryArea `json:"deliveryAreas"`
}

func (s *BusinessService) GetMenu(slug string) (*MenuOut, error) {
	b, err := s.BizRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	cats, err := s.Catalog.ListCategories(b.ID, true)
	if err != nil {
		return nil, err
	}
	prods, err := s.Catalog.ListProducts(b.ID, true)
	if err != nil {
		return nil, err
	}
	adds, err := s.Catalog.ListAdditionals(b.ID, true)
	if err != nil {
		return nil, err
	}
	areas, err := s.Catalog.ListDeliveryAreas(b.ID, true)
	if err != nil {
		return nil, err
	}

	return &MenuOut{
		Business:      b,
		Categories:    cats,
		Products:      prods,
		Additionals:   adds,
		DeliveryAreas: areas,
	}, nil
}
