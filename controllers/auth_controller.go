package controllers

import (
	"net/http"
	"strings"

	"github.com/igor-rodz/Projeto-delivery/configs"
	"github.com/igor-rodz/Projeto-delivery/entity"
	"github.com/igor-rodz/Projeto-delivery/pkg/resp"
	"github.com/igor-rodz/Projeto-delivery/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var exist entity.User
	if err := a.DB.Where("email = ?", strings.ToLower(req.Email)).First(&exist).Error; err == nil {
		resp.BadRequest(c, "email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	user := entity.User{
		Email:    strings.ToLower(req.Email),
		Password: string(hashed),
		Name:     req.Name,
	}

	if err := a.DB.Create(&user).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{"id": user.ID, "email": user.Email, "name": user.Name})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var user entity.User
	if err := a.DB.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  gin.H{"id": user.ID, "email": user.Email, "name": user.Name},
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	var user entity.User
	if err := a.DB.First(&user, utils.CurrentUserID(c)).Error; err != nil {
		resp.BadRequest(c, "user not found")
		return
	}
	resp.OK(c, gin.H{"id": user.ID, "email": user.Email, "name": user.Name})
}
