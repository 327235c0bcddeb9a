package repository

import (
	"errors"

	"github.com/igor-rodz/Projeto-delivery/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the session's cart, or an empty unbound cart when
// none exists yet, so storefront reads never error on a fresh session.
func (r *CartRepository) GetCartWithItems(sessionKey string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("session_key = ?", sessionKey).
		Preload("Items").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{SessionKey: sessionKey}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(sessionKey string, businessID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("session_key = ?", sessionKey).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{SessionKey: sessionKey, BusinessID: businessID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

func (r *CartRepository) BindBusiness(tx *gorm.DB, cartID, businessID uint) error {
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).
		Update("business_id", businessID).Error
}

// ReplaceAll drops every line and rebinds the cart to a new business, then
// inserts the single new line. Switching restaurants discards the old cart.
func (r *CartRepository) ReplaceAll(tx *gorm.DB, cartID, businessID uint, row *entity.CartItem) error {
	if err := tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	if err := r.BindBusiness(tx, cartID, businessID); err != nil {
		return err
	}
	row.CartID = cartID
	return tx.Create(row).Error
}

// UpsertItem merges by (product_id, additionals_key): an existing line only
// gains quantity, the incoming note and snapshots are ignored on merge.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ? AND additionals_key = ?",
		cartID, row.ProductID, row.AdditionalsKey).
		First(&exist).Error
	if err == nil {
		exist.Quantity += row.Quantity
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

func (r *CartRepository) UpdateQuantity(tx *gorm.DB, sessionKey string, productID uint, additionalsKey string, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, sessionKey, productID, additionalsKey)
	}
	// no-op when the key matches nothing
	return tx.Exec(`
		UPDATE cart_items
		   SET quantity = ?
		 WHERE product_id = ?
		   AND additionals_key = ?
		   AND deleted_at IS NULL
		   AND cart_id IN (SELECT id FROM carts WHERE session_key = ? AND deleted_at IS NULL)
	`, qty, productID, additionalsKey, sessionKey).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, sessionKey string, productID uint, additionalsKey string) error {
	if err := tx.
		Where("product_id = ? AND additionals_key = ? AND cart_id IN (SELECT id FROM carts WHERE session_key = ? AND deleted_at IS NULL)",
			productID, additionalsKey, sessionKey).
		Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	// an emptied cart unbinds so the next add may come from any business
	return tx.Exec(`
		UPDATE carts SET business_id = 0
		 WHERE session_key = ?
		   AND NOT EXISTS (
		       SELECT 1 FROM cart_items ci
		        WHERE ci.cart_id = carts.id AND ci.deleted_at IS NULL)
	`, sessionKey).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, sessionKey string) error {
	var c entity.Cart
	if err := tx.Where("session_key = ?", sessionKey).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", c.ID).Update("business_id", 0).Error
}
