package controllers

import (
	"errors"
	"strconv"

	"github.com/igor-rodz/Projeto-delivery/pkg/resp"
	"github.com/igor-rodz/Projeto-delivery/repository"
	"github.com/igor-rodz/Projeto-delivery/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderController is the public side of the order lifecycle: checkout and the
// confirmation view the customer keeps the order id from.
type OrderController struct {
	Svc     *services.OrderService
	BizRepo *repository.BusinessRepository
}

func NewOrderController(svc *services.OrderService, bizRepo *repository.BusinessRepository) *OrderController {
	return &OrderController{Svc: svc, BizRepo: bizRepo}
}

// POST /menu/:slug/checkout
func (oc *OrderController) Checkout(c *gin.Context) {
	key, ok := sessionKey(c)
	if !ok {
		return
	}

	business, err := oc.BizRepo.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Svc.Checkout(key, business, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartEmpty),
			errors.Is(err, services.ErrCartWrongMenu),
			errors.Is(err, services.ErrNameRequired),
			errors.Is(err, services.ErrPhoneInvalid),
			errors.Is(err, services.ErrAddressRequired),
			errors.Is(err, services.ErrPaymentRequired),
			errors.Is(err, services.ErrBelowMinimum):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, out)
}

// GET /orders/:id — confirmation lookup by the id surfaced to the customer.
func (oc *OrderController) Confirmation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}

	out, err := oc.Svc.GetForConfirmation(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
