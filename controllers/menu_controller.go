package controllers

import (
	"errors"
	"fmt"

	"github.com/igor-rodz/Projeto-delivery/pkg/resp"
	"github.com/igor-rodz/Projeto-delivery/services"
	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

// MenuController serves the public storefront: the catalog snapshot by slug
// and a QR code pointing at the menu URL.
type MenuController struct {
	Svc     *services.BusinessService
	BaseURL string
}

func NewMenuController(svc *services.BusinessService, baseURL string) *MenuController {
	return &MenuController{Svc: svc, BaseURL: baseURL}
}

// GET /menu/:slug
func (mc *MenuController) Menu(c *gin.Context) {
	out, err := mc.Svc.GetMenu(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /menu/:slug/qr
func (mc *MenuController) QR(c *gin.Context) {
	slug := c.Param("slug")
	if _, err := mc.Svc.GetMenu(slug); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	png, err := qrcode.Encode(fmt.Sprintf("%s/menu/%s", mc.BaseURL, slug), qrcode.Medium, 256)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(200, "image/png", png)
}
