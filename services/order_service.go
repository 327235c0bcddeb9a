package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/igor-rodz/Projeto-delivery/entity"
	"github.com/igor-rodz/Projeto-delivery/repository"
	"gorm.io/gorm"
)

var (
	ErrCartEmpty        = errors.New("cart is empty")
	ErrCartWrongMenu    = errors.New("cart belongs to another menu")
	ErrNameRequired     = errors.New("customer name is required")
	ErrPhoneInvalid     = errors.New("a valid phone number is required")
	ErrAddressRequired  = errors.New("address and delivery area are required")
	ErrPaymentRequired  = errors.New("select a payment method")
	ErrBelowMinimum     = errors.New("minimum order not reached")
	ErrForbidden        = errors.New("forbidden")
)

// Notifier is the change-feed boundary: the hub only learns that something
// changed for a business, dashboards re-fetch on their own.
type Notifier interface {
	Notify(businessID, orderID uint, action string)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	Catalog  *repository.CatalogRepository
	BizRepo  *repository.BusinessRepository
	Hub      Notifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	catalog *repository.CatalogRepository,
	bizRepo *repository.BusinessRepository,
	hub Notifier,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, Catalog: catalog, BizRepo: bizRepo, Hub: hub}
}

// ---------------- Checkout ----------------

type CheckoutReq struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`

	OrderType string `json:"orderType" binding:"required,oneof=local takeaway delivery"`

	// delivery address fragments, composed server-side
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`

	DeliveryAreaID uint   `json:"deliveryAreaId"`
	Observations   string `json:"observations"`
	PaymentMethod  string `json:"paymentMethod"`
}

type CheckoutRes struct {
	ID    uint  `json:"id"`
	Total int64 `json:"total"`
}

// Checkout validates the cart and form, then persists the order and its
// price-snapshotted items in one transaction and clears the cart. The
// preconditions run in a fixed order and fail fast with a distinct reason.
func (s *OrderService) Checkout(sessionKey string, business *entity.Business, req *CheckoutReq) (*CheckoutRes, error) {
	cart, err := s.CartRepo.GetCartWithItems(sessionKey)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}
	if cart.BusinessID != business.ID {
		return nil, ErrCartWrongMenu
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, ErrNameRequired
	}
	if countDigits(req.CustomerPhone) < 10 {
		return nil, ErrPhoneInvalid
	}

	var area *entity.DeliveryArea
	if req.OrderType == entity.OrderTypeDelivery {
		if strings.TrimSpace(req.Street) == "" || req.DeliveryAreaID == 0 {
			return nil, ErrAddressRequired
		}
		area, err = s.Catalog.GetDeliveryArea(req.DeliveryAreaID, business.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAddressRequired
			}
			return nil, err
		}
	}

	if len(business.PaymentMethods) > 0 {
		if req.PaymentMethod == "" || !containsString(business.PaymentMethods, req.PaymentMethod) {
			return nil, ErrPaymentRequired
		}
	}

	quote := BuildQuote(cart.Items, req.OrderType, area, business.MinOrder)
	if !quote.MeetsMinimum {
		return nil, fmt.Errorf("%w: R$ %s", ErrBelowMinimum, FormatCents(business.MinOrder))
	}

	order := entity.Order{
		BusinessID:    business.ID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		OrderType:     req.OrderType,
		Subtotal:      quote.Subtotal,
		DeliveryFee:   quote.DeliveryFee,
		Total:         quote.Total,
		Observations:  req.Observations,
		PaymentMethod: req.PaymentMethod,
		Status:        entity.StatusPending,
	}
	if req.OrderType == entity.OrderTypeDelivery {
		order.Address = composeAddress(req.Street, req.Number, req.Complement)
		order.DeliveryArea = area.Name
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:          order.ID,
				ProductID:        it.ProductID,
				ProductName:      it.ProductName,
				Quantity:         it.Quantity,
				UnitPrice:        it.UnitPrice,
				Additionals:      it.Additionals,
				AdditionalsTotal: it.AdditionalsTotal,
				Note:             it.Note,
				Total:            it.LineTotal(),
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		return s.CartRepo.ClearCart(tx, sessionKey)
	})
	if err != nil {
		// cart untouched, the customer can retry
		return nil, err
	}

	if s.Hub != nil {
		s.Hub.Notify(business.ID, order.ID, "insert")
	}
	return &CheckoutRes{ID: order.ID, Total: order.Total}, nil
}

// ---------------- Confirmation (public by order id) ----------------

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) GetForConfirmation(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

// ---------------- Dashboard reads ----------------

type DashboardOrderListOut struct {
	Items []entity.Order `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func (s *OrderService) ListForBusiness(userID, businessID uint, view string, page, limit int) (*DashboardOrderListOut, error) {
	ok, err := s.BizRepo.IsOwnedBy(businessID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	items, total, err := s.Repo.ListOrdersForBusiness(businessID, view, page, limit)
	if err != nil {
		return nil, err
	}
	return &DashboardOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) DetailForBusiness(userID, businessID, orderID uint) (*OrderDetail, error) {
	ok, err := s.BizRepo.IsOwnedBy(businessID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	o, err := s.Repo.GetOrderForBusiness(businessID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

func (s *OrderService) StatsForBusiness(userID, businessID uint) (*repository.BusinessStats, error) {
	ok, err := s.BizRepo.IsOwnedBy(businessID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return s.Repo.StatsForBusiness(businessID, midnight)
}

// ---------------- Helpers ----------------

func composeAddress(street, number, complement string) string {
	addr := strings.TrimSpace(street)
	if n := strings.TrimSpace(number); n != "" {
		addr += ", " + n
	}
	if cpl := strings.TrimSpace(complement); cpl != "" {
		addr += " - " + cpl
	}
	return addr
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
