package controllers

import (
	"errors"
	"strconv"

	"github.com/igor-rodz/Projeto-delivery/entity"
	"github.com/igor-rodz/Projeto-delivery/pkg/resp"
	"github.com/igor-rodz/Projeto-delivery/repository"
	"github.com/igor-rodz/Projeto-delivery/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CatalogController is the dashboard's menu management: categories, products,
// additionals and delivery areas, always scoped to the caller's business.
type CatalogController struct {
	Catalog *repository.CatalogRepository
	BizRepo *repository.BusinessRepository
}

func NewCatalogController(catalog *repository.CatalogRepository, bizRepo *repository.BusinessRepository) *CatalogController {
	return &CatalogController{Catalog: catalog, BizRepo: bizRepo}
}

func (ctl *CatalogController) ownBusiness(c *gin.Context) (*entity.Business, bool) {
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

func pathID(c *gin.Context) uint {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id)
}

// GET /dashboard/catalog — everything, disabled rows included, for editing.
func (ctl *CatalogController) List(c *gin.Context) {
	b, ok := ctl.ownBusiness(c)
	if !ok {
		return
	}

	cats, err := ctl.Catalog.ListCategories(b.ID, false)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	prods, err := ctl.Catalog.ListProducts(b.ID, false)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	adds, err := ctl.Catalog.ListAdditionals(b.ID, false)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	areas, err := ctl.Catalog.ListDeliveryAreas(b.ID, false)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"categories":    cats,
		"products":      prods,
		"additionals":   adds,
		"deliveryAreas": areas,
	})
}

// ---------------- Categories ----------------

type categoryIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
	Enabled     *bool  `json:"enabled"`
}

// POST /dashboard/categories
func (ctl *CatalogController) CreateCategory(c *gin.Context) {
	b, ok := ctl.ownBusiness(c)
	if !ok {
		return
	}
	var in categoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat := entity.Category{
		BusinessID:  b.ID,
		Name:        in.Name,
		Description: in.Description,
		SortOrder:   in.SortOrder,
		Enabled:     in.Enabled == nil || *in.Enabled,
	}
	if err := ctl.Catalog.CreateCategory(&cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /dashboard/categories/:id
func (ctl *CatalogController) UpdateCategory(c *gin.Context) {
	b, ok := ctl.ownBusiness(c)
	if !ok {
		return
	}
	cat, err := ctl.Catalog.GetCategoryInBusiness(pathID(c), b.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	var in categoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat.Name = in.Name
	cat.Description = in.Description
	cat.SortOrder = in.SortOrder
	if in.Enabled != nil {
		cat.Enabled = *in.Enabled
	}
	if err := ctl.Catalog.UpdateCategory(cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /dashboard/categories/:id
func (ctl *CatalogController) DeleteCategory(c *gin.Context) {
	b, ok := ctl.ownBusiness(c)
	if !ok {
		return
	}
	if err := ctl.Catalog.DeleteCategory(pathID(c), b.ID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// ---------------- Products ----------------

type productIn struct {
	CategoryID  uint   `json:"categoryId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"min=0"`
	ImageURL    string `json:"imageUrl"`
	PrepTime    string `json:"prepTime"`
	Enabled     *bool  `json:"enabled"`
}

// POST /dashboard/products
func (ctl *CatalogController) CreateProduct(c *gin.Context) {
	b, ok := ctl.ownBusiness(c)
	if !ok {
		return
	}
	var in productIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if _, err := ctl.Catalog.GetCategoryInBusiness(in.CategoryID, b.ID); err != nil {
		resp.BadRequest(c, "category not in this business")
		return
	}
	p := entity.Product{
		BusinessID:  b.ID,
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		PrepTime:    in.PrepTime,
		Enabled:     in.Enabled == nil || *in.Enabled,
	}
	if err := ctl.Catalog.CreateProduct(&p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, p)
}

// PATCH /dashboard/products/:id
func (ctl *CatalogController) UpdateProduct(c *gin.Context) {
	b, ok := ctl.ownBusiness(c)
	if !ok {
		return
	}
	p, err := ctl.Catalog.GetProductForOwner(pathID(c), b.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	var in productIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if _, err := ctl.Catalog.GetCategoryInBusiness(in.CategoryID, b.ID); err != nil {
		resp.BadRequest(c, "category not in this business")
		return
	}
	p.CategoryID = in.CategoryID
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.ImageURL = in.ImageURL
	p.PrepTime = in.PrepTime
	if in.Enabled != nil {
		p.Enabled = *in.Enabled
	}
	if err := ctl.Catalog.UpdateProduct(p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /dashboard/products/:id
func (ctl *CatalogController) DeleteProduct(c *gin.Context) {
	b, ok := ctl.ownBusiness(c)
	if !ok {
		return
	}
	if err := ctl.Catalog.DeleteProduct(pathID(c), b.ID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// PATCH /dashboard/products/:id/toggle
func (ctl *CatalogController) ToggleProduct(c *gin.Context) {
	b, ok := ctl.ownBusiness(c)
	if !ok {
		return
	}
	p, err := ctl.Catalog.GetProductForOwner(pathID(c), b.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	p.Enabled = !p.Enabled
	if err := ctl.Catalog.UpdateProduct(p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// ---------------- Additionals ----------------

type additionalIn struct {
	Name    string `json:"name" binding:"required"`
	Price   int64  `json:"price" binding:"min=0"`
	Enabled *bool  `json:"enabled"`
}

// POST /dashboard/additionals
func (ctl *CatalogController) CreateAdditional(c *gin.Context) {
	b, ok := ctl.ownBusiness(c)
	if !ok {
		return
	}
	var in additionalIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a := entity.Additional{
		BusinessID: b.ID,
		Name:       in.Name,
		Price:      in.Price,
		Enabled:    in.Enabled == nil || *in.Enabled,
	}
	if err := ctl.Catalog.CreateAdditional(&a); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, a)
}

// PATCH /dashboard/additionals/:id
func (ctl *CatalogController) UpdateAdditional(c *gin.Context) {
	b, ok := ctl.ownBusiness(c)
	if !ok {
		return
	}
	a, err := ctl.Catalog.GetAdditionalForOwner(pathID(c), b.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "additional not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	var in additionalIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a.Name = in.Name
	a.Price = in.Price
	if in.Enabled != nil {
		a.Enabled = *in.Enabled
	}
	if err := ctl.Catalog.UpdateAdditional(a); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, a)
}

// DELETE /dashboard/additionals/:id
func (ctl *CatalogController) DeleteAdditional(c *gin.Context) {
	b, ok := ctl.ownBusiness(c)
	if !ok {
		return
	}
	if err := ctl.Catalog.DeleteAdditional(pathID(c), b.ID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// ---------------- Delivery areas ----------------

type deliveryAreaIn struct {
	Name    string `json:"name" binding:"required"`
	Fee     int64  `json:"fee" binding:"min=0"`
	Enabled *bool  `json:"enabled"`
}

// POST /dashboard/delivery-areas
func (ctl *CatalogController) CreateDeliveryArea(c *gin.Context) {
	b, ok := ctl.ownBusiness(c)
	if !ok {
		return
	}
	var in deliveryAreaIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a := entity.DeliveryArea{
		BusinessID: b.ID,
		Name:       in.Name,
		Fee:        in.Fee,
		Enabled:    in.Enabled == nil || *in.Enabled,
	}
	if err := ctl.Catalog.CreateDeliveryArea(&a); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, a)
}

// PATCH /dashboard/delivery-areas/:id
func (ctl *CatalogController) UpdateDeliveryArea(c *gin.Context) {
	b, ok := ctl.ownBusiness(c)
	if !ok {
		return
	}
	a, err := ctl.Catalog.GetDeliveryAreaForOwner(pathID(c), b.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "delivery area not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	var in deliveryAreaIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a.Name = in.Name
	a.Fee = in.Fee
	if in.Enabled != nil {
		a.Enabled = *in.Enabled
	}
	if err := ctl.Catalog.UpdateDeliveryArea(a); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, a)
}

// DELETE /dashboard/delivery-areas/:id
func (ctl *CatalogController) DeleteDeliveryArea(c *gin.Context) {
	b, ok := ctl.ownBusiness(c)
	if !ok {
		return
	}
	if err := ctl.Catalog.DeleteDeliveryArea(pathID(c), b.ID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
