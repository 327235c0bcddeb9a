package services

import (
	"errors"

	"github.com/igor-rodz/Projeto-delivery/entity"
	"gorm.io/gorm"
)

var (
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrTransitionConflict = errors.New("order status changed concurrently")
)

// AllowedNext lists the statuses an order may move to from its current one.
// Cancellation is only possible while pending; delivery orders pass through
// out_for_delivery, everything else goes straight from ready to delivered.
// Delivered and cancelled are terminal.
func AllowedNext(status, orderType string) []string {
	switch status {
	case entity.StatusPending:
		return []string{entity.StatusConfirmed, entity.StatusCancelled}
	case entity.StatusConfirmed:
		return []string{entity.StatusPreparing}
	case entity.StatusPreparing:
		return []string{entity.StatusReady}
	case entity.StatusReady:
		if orderType == entity.OrderTypeDelivery {
			return []string{entity.StatusOutForDelivery}
		}
		return []string{entity.StatusDelivered}
	case entity.StatusOutForDelivery:
		if orderType == entity.OrderTypeDelivery {
			return []string{entity.StatusDelivered}
		}
		return nil
	default:
		return nil
	}
}

func CanTransition(from, to, orderType string) bool {
	for _, next := range AllowedNext(from, orderType) {
		if next == to {
			return true
		}
	}
	return false
}

// AdvanceStatus moves an order one step through its lifecycle. The transition
// is validated against the table before any write, then applied as a guarded
// conditional update: if another dashboard advanced the order in between, no
// row matches and the caller gets a conflict instead of clobbering the newer
// state.
func (s *OrderService) AdvanceStatus(userID, businessID, orderID uint, to string) error {
	ok, err := s.BizRepo.IsOwnedBy(businessID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}

	o, err := s.Repo.GetOrderForBusiness(businessID, orderID)
	if err != nil {
		return err
	}
	if !CanTransition(o.Status, to, o.OrderType) {
		return ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrTransitionConflict
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.Hub != nil {
		s.Hub.Notify(businessID, orderID, "update")
	}
	return nil
}
