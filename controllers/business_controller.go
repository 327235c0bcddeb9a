package controllers

import (
	"errors"

	"github.com/igor-rodz/Projeto-delivery/configs"
	"github.com/igor-rodz/Projeto-delivery/pkg/resp"
	"github.com/igor-rodz/Projeto-delivery/repository"
	"github.com/igor-rodz/Projeto-delivery/services"
	"github.com/igor-rodz/Projeto-delivery/utils"
	"github.com/gin-gonic/gin"
)

// BusinessController covers onboarding, settings and image uploads for the
// merchant's own business.
type BusinessController struct {
	Svc     *services.BusinessService
	BizRepo *repository.BusinessRepository
	Cfg     *configs.Config
}

func NewBusinessController(svc *services.BusinessService, bizRepo *repository.BusinessRepository, cfg *configs.Config) *BusinessController {
	return &BusinessController{Svc: svc, BizRepo: bizRepo, Cfg: cfg}
}

// POST /dashboard/business
func (bc *BusinessController) Onboard(c *gin.Context) {
	var req services.OnboardIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	b, err := bc.Svc.Onboard(utils.CurrentUserID(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyOnboarded) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, b)
}

// GET /dashboard/business
func (bc *BusinessController) MyBusiness(c *gin.Context) {
	b, err := bc.BizRepo.GetByOwner(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if b == nil {
		resp.NotFound(c, "no business for this user")
		return
	}
	resp.OK(c, b)
}

// PATCH /dashboard/business
func (bc *BusinessController) UpdateSettings(c *gin.Context) {
	var req services.SettingsIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	b, err := bc.Svc.UpdateSettings(utils.CurrentUserID(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrNoBusiness) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, b)
}

// POST /dashboard/uploads — base64 image in, public URL out. The folder
// namespaces logos, covers and product shots.
func (bc *BusinessController) Upload(c *gin.Context) {
	var body struct {
		Folder string `json:"folder" binding:"required,oneof=logos covers products"`
		Data   string `json:"data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	url, err := utils.SaveBase64Image(body.Data, bc.Cfg.UploadDir, body.Folder)
	if err != nil {
		resp.BadRequest(c, "invalid image data")
		return
	}
	resp.Created(c, gin.H{"url": url})
}
