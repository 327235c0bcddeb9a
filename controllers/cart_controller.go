package controllers

import (
	"errors"
	"net/http"

	"github.com/igor-rodz/Projeto-delivery/pkg/resp"
	"github.com/igor-rodz/Projeto-delivery/services"
	"github.com/gin-gonic/gin"
)

// CartController is session-keyed, not authenticated: customers are anonymous
// and the client keeps its key in durable storage so the cart survives
// reloads.
type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

func sessionKey(c *gin.Context) (string, bool) {
	key := c.GetHeader("X-Session-Key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing X-Session-Key header"})
		return "", false
	}
	return key, true
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	key, ok := sessionKey(c)
	if !ok {
		return
	}
	out, err := h.Svc.Get(key)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	key, ok := sessionKey(c)
	if !ok {
		return
	}

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(key, &req); err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrInvalidAdditionals):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"ok": true})
}

// PATCH /cart/items
func (h *CartController) UpdateQuantity(c *gin.Context) {
	key, ok := sessionKey(c)
	if !ok {
		return
	}

	var body struct {
		ProductID      uint   `json:"productId" binding:"required"`
		AdditionalsKey string `json:"additionalsKey" binding:"required"`
		Quantity       int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQuantity(key, body.ProductID, body.AdditionalsKey, body.Quantity); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /cart/items
func (h *CartController) Remove(c *gin.Context) {
	key, ok := sessionKey(c)
	if !ok {
		return
	}

	var body struct {
		ProductID      uint   `json:"productId" binding:"required"`
		AdditionalsKey string `json:"additionalsKey" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Remove(key, body.ProductID, body.AdditionalsKey); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	key, ok := sessionKey(c)
	if !ok {
		return
	}
	if err := h.Svc.Clear(key); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
