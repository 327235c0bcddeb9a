package controllers

import (
	"errors"
	"strconv"

	"github.com/igor-rodz/Projeto-delivery/entity"
	"github.com/igor-rodz/Projeto-delivery/pkg/resp"
	"github.com/igor-rodz/Projeto-delivery/repository"
	"github.com/igor-rodz/Projeto-delivery/services"
	"github.com/igor-rodz/Projeto-delivery/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DashboardOrderController is the merchant side: list/detail views and the
// status transitions.
type DashboardOrderController struct {
	Svc     *services.OrderService
	BizRepo *repository.BusinessRepository
	Catalog *repository.CatalogRepository
}

func NewDashboardOrderController(svc *services.OrderService, bizRepo *repository.BusinessRepository, catalog *repository.CatalogRepository) *DashboardOrderController {
	return &DashboardOrderController{Svc: svc, BizRepo: bizRepo, Catalog: catalog}
}

// ownBusiness resolves the caller's business; every dashboard route is scoped
// to it.
func (ctl *DashboardOrderController) ownBusiness(c *gin.Context) (*entity.Business, bool) {
	b, err := ctl.BizRepo.GetByOwner(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return nil, false
	}
	if b == nil {
		resp.NotFound(c, "no business for this user")
		return nil, false
	}
	return b, true
}

// GET /dashboard/orders?view=active|completed|cancelled|all&page=&limit=
func (ctl *DashboardOrderController) List(c *gin.Context) {
	b, ok := ctl.ownBusiness(c)
	if !ok {
		return
	}

	view := c.DefaultQuery("view", "active")
	switch view {
	case "active", "completed", "cancelled", "all":
	default:
		resp.BadRequest(c, "unknown view")
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := ctl.Svc.ListForBusiness(utils.CurrentUserID(c), b.ID, view, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /dashboard/orders/:id
func (ctl *DashboardOrderController) Detail(c *gin.Context) {
	b, ok := ctl.ownBusiness(c)
	if !ok {
		return
	}
	orderID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	out, err := ctl.Svc.DetailForBusiness(utils.CurrentUserID(c), b.ID, uint(orderID))
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

// PATCH /dashboard/orders/:id/status
func (ctl *DashboardOrderController) UpdateStatus(c *gin.Context) {
	b, ok := ctl.ownBusiness(c)
	if !ok {
		return
	}
	orderID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ctl.Svc.AdvanceStatus(utils.CurrentUserID(c), b.ID, uint(orderID), body.Status)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "forbidden")
		case errors.Is(err, services.ErrInvalidTransition):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrTransitionConflict):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"status": body.Status})
}

// GET /dashboard/stats
func (ctl *DashboardOrderController) Stats(c *gin.Context) {
	b, ok := ctl.ownBusiness(c)
	if !ok {
		return
	}

	stats, err := ctl.Svc.StatsForBusiness(utils.CurrentUserID(c), b.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	products, err := ctl.Catalog.CountProducts(b.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"todayOrders":   stats.TodayOrders,
		"todayRevenue":  stats.TodayRevenue,
		"pendingOrders": stats.PendingOrders,
		"totalProducts": products,
	})
}
