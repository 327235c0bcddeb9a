package repository

import (
	"time"

	"github.com/igor-rodz/Projeto-delivery/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForBusiness(businessID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND business_id = ?", orderID, businessID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrdersForBusiness pages through a business's orders. The dashboard views
// are pure status predicates, not separate lists:
// active = not yet delivered/cancelled, completed = delivered, cancelled, all.
func (r *OrderRepository) ListOrdersForBusiness(businessID uint, view string, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	base := r.DB.Model(&entity.Order{}).Where("business_id = ?", businessID)
	switch view {
	case "active":
		base = base.Where("status NOT IN ?", []string{entity.StatusDelivered, entity.StatusCancelled})
	case "completed":
		base = base.Where("status = ?", entity.StatusDelivered)
	case "cancelled":
		base = base.Where("status = ?", entity.StatusCancelled)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Order
	if err := base.Order("id DESC").Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// UpdateStatusGuard is a conditional single-field update: it only fires while
// the row still holds the expected current status, so two dashboards racing
// on the same order cannot silently clobber each other. Zero rows affected
// means the caller lost the race (or requested a stale transition).
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(map[string]any{"status": to, "updated_at": time.Now().UTC()})
	return res.RowsAffected, res.Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// ---------------- Dashboard stats ----------------

type BusinessStats struct {
	TodayOrders   int64 `json:"todayOrders"`
	TodayRevenue  int64 `json:"todayRevenue"`
	PendingOrders int64 `json:"pendingOrders"`
}

func (r *OrderRepository) StatsForBusiness(businessID uint, since time.Time) (*BusinessStats, error) {
	var s BusinessStats
	if err := r.DB.Model(&entity.Order{}).
		Where("business_id = ? AND created_at >= ?", businessID, since).
		Count(&s.TodayOrders).Error; err != nil {
		return nil, err
	}
	var revenue struct{ Total int64 }
	if err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total), 0) AS total").
		Where("business_id = ? AND created_at >= ? AND status <> ?",
			businessID, since, entity.StatusCancelled).
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	s.TodayRevenue = revenue.Total
	if err := r.DB.Model(&entity.Order{}).
		Where("business_id = ? AND status = ?", businessID, entity.StatusPending).
		Count(&s.PendingOrders).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
