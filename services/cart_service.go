package services

import (
	"errors"

	"github.com/igor-rodz/Projeto-delivery/entity"
	"github.com/igor-rodz/Projeto-delivery/repository"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound    = errors.New("product not found in this menu")
	ErrInvalidAdditionals = errors.New("invalid additionals")
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	Catalog  *repository.CatalogRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, cat *repository.CatalogRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, Catalog: cat}
}

type AddToCartIn struct {
	BusinessID    uint   `json:"businessId" binding:"required"`
	ProductID     uint   `json:"productId" binding:"required"`
	Quantity      int    `json:"quantity" binding:"min=1"`
	Note          string `json:"note"`
	AdditionalIDs []uint `json:"additionalIds"`
}

type CartOut struct {
	Cart       *entity.Cart `json:"cart"`
	Subtotal   int64        `json:"subtotal"`
	TotalItems int          `json:"totalItems"`
}

func (s *CartService) Get(sessionKey string) (*CartOut, error) {
	c, err := s.CartRepo.GetCartWithItems(sessionKey)
	if err != nil {
		return nil, err
	}
	return &CartOut{Cart: c, Subtotal: Subtotal(c.Items), TotalItems: TotalItems(c.Items)}, nil
}

// Add validates the selection against the live catalog, snapshots prices into
// the line and merges it into the cart. A cart bound to a different business
// is replaced wholesale with the new line: switching restaurants discards the
// previous cart, by policy rather than by accident.
func (s *CartService) Add(sessionKey string, in *AddToCartIn) error {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	p, err := s.Catalog.GetProductInBusiness(in.ProductID, in.BusinessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	key := AdditionalsKey(in.AdditionalIDs)
	adds, err := s.Catalog.GetAdditionalsByIDs(in.BusinessID, in.AdditionalIDs)
	if err != nil {
		return err
	}
	// GetAdditionalsByIDs drops foreign and disabled IDs; any shrinkage after
	// dedup means the request named additionals this menu does not offer.
	if len(adds) != countUnique(in.AdditionalIDs) {
		return ErrInvalidAdditionals
	}

	var addTotal int64
	snaps := make([]entity.AdditionalSnapshot, 0, len(adds))
	for _, a := range adds {
		addTotal += a.Price
		snaps = append(snaps, entity.AdditionalSnapshot{ID: a.ID, Name: a.Name, Price: a.Price})
	}

	row := &entity.CartItem{
		ProductID:        p.ID,
		ProductName:      p.Name,
		Quantity:         in.Quantity,
		UnitPrice:        p.Price,
		Note:             in.Note,
		AdditionalsKey:   key,
		Additionals:      snaps,
		AdditionalsTotal: addTotal,
	}

	c, err := s.CartRepo.GetOrCreateCart(sessionKey, in.BusinessID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if c.BusinessID != 0 && c.BusinessID != in.BusinessID {
			return s.CartRepo.ReplaceAll(tx, c.ID, in.BusinessID, row)
		}
		if c.BusinessID == 0 {
			if err := s.CartRepo.BindBusiness(tx, c.ID, in.BusinessID); err != nil {
				return err
			}
		}
		return s.CartRepo.UpsertItem(tx, c.ID, row)
	})
}

func (s *CartService) UpdateQuantity(sessionKey string, productID uint, additionalsKey string, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQuantity(tx, sessionKey, productID, additionalsKey, qty)
	})
}

func (s *CartService) Remove(sessionKey string, productID uint, additionalsKey string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, sessionKey, productID, additionalsKey)
	})
}

func (s *CartService) Clear(sessionKey string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, sessionKey)
	})
}

func countUnique(ids []uint) int {
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	return len(seen)
}
