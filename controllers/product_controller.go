package controllers

import (
	"fmt"
	"net/http"

	"github.com/Techkepper/PoskepperApi/entity"
	"github.com/Techkepper/PoskepperApi/middlewares"
	"github.com/Techkepper/PoskepperApi/pkg/resp"
	"github.com/Techkepper/PoskepperApi/repository"
	"github.com/Techkepper/PoskepperApi/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	msgProductFieldsReq = "Todos los campos son requeridos para registrar un producto"
	msgPriceFormat      = "El precio debe ser un número positivo sin decimales"
	msgQuantityFormat   = "La cantidad debe ser un número positivo sin decimales"
	msgProductNotFound  = "No se encontró el producto con el ID proporcionado"
)

type ProductController struct {
	Repo *repository.ProductRepository
}

func NewProductController(repo *repository.ProductRepository) *ProductController {
	return &ProductController{Repo: repo}
}

// ProductForm is the multipart body of register and update; the photo
// travels in the "foto" file part.
type ProductForm struct {
	Name        string `form:"nombre" binding:"required"`
	Description string `form:"descripcion"`
	CategoryID  int64  `form:"idCategoria" binding:"required"`
	Price       string `form:"precio" binding:"required"`
	Quantity    string `form:"cantidad" binding:"required"`
	Comment     string `form:"comentario"`
	Active      bool   `form:"estado"`
}

func (f *ProductForm) product() (*entity.Product, string) {
	price, err := decimal.NewFromString(f.Price)
	if err != nil || !utils.NonNegativeInteger(price) {
		return nil, msgPriceFormat
	}
	qty, err := decimal.NewFromString(f.Quantity)
	if err != nil || !utils.NonNegativeInteger(qty) {
		return nil, msgQuantityFormat
	}
	return &entity.Product{
		Name:        f.Name,
		Description: f.Description,
		CategoryID:  f.CategoryID,
		Price:       price,
		Quantity:    int(qty.IntPart()),
		Comment:     f.Comment,
		Active:      f.Active,
	}, ""
}

func baseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if p := c.GetHeader("X-Forwarded-Proto"); p != "" {
		scheme = p
	}
	return scheme + "://" + c.Request.Host
}

// withImageURLs drops photo bytes and points each product at its image route.
func withImageURLs(c *gin.Context, products []entity.Product) []entity.Product {
	base := baseURL(c)
	for i := range products {
		products[i].Photo = nil
		products[i].ImageURL = fmt.Sprintf("%s/api/productos/imagen/%d", base, products[i].ID)
	}
	return products
}

func (ctl *ProductController) respondList(c *gin.Context, products []entity.Product, err error) {
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(products) == 0 {
		resp.NotFound(c, "No se encontraron productos")
		return
	}
	resp.OK(c, withImageURLs(c, products))
}

// POST /api/productos/registrar
func (ctl *ProductController) Register(c *gin.Context) {
	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		resp.BadRequest(c, msgProductFieldsReq)
		return
	}
	p, msg := form.product()
	if msg != "" {
		resp.BadRequest(c, msg)
		return
	}
	p.Photo = middlewares.Photo(c)

	if err := ctl.Repo.Create(c.Request.Context(), p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusCreated, "Producto registrado exitosamente")
}

// GET /api/productos
func (ctl *ProductController) List(c *gin.Context) {
	products, err := ctl.Repo.List(c.Request.Context())
	ctl.respondList(c, products, err)
}

// GET /api/productos/platos
func (ctl *ProductController) Dishes(c *gin.Context) {
	products, err := ctl.Repo.ListDishes(c.Request.Context())
	ctl.respondList(c, products, err)
}

// GET /api/productos/productos
func (ctl *ProductController) Goods(c *gin.Context) {
	products, err := ctl.Repo.ListGoods(c.Request.Context())
	ctl.respondList(c, products, err)
}

// GET /api/productos/categoria/:nombreCategoria
func (ctl *ProductController) ByCategory(c *gin.Context) {
	products, err := ctl.Repo.ListByCategory(c.Request.Context(), c.Param("nombreCategoria"))
	ctl.respondList(c, products, err)
}

// GET /api/productos/top/mas-vendidos
func (ctl *ProductController) TopSellers(c *gin.Context) {
	products, err := ctl.Repo.TopSellers(c.Request.Context())
	ctl.respondList(c, products, err)
}

// GET /api/productos/:id
func (ctl *ProductController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := ctl.Repo.FindByID(c.Request.Context(), id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if p == nil {
		resp.NotFound(c, msgProductNotFound)
		return
	}
	resp.OK(c, withImageURLs(c, []entity.Product{*p})[0])
}

// GET /api/productos/imagen/:id
func (ctl *ProductController) Image(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := ctl.Repo.FindByID(c.Request.Context(), id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if p == nil || len(p.Photo) == 0 {
		resp.NotFound(c, "No se encontró la imagen del producto")
		return
	}
	c.Data(http.StatusOK, http.DetectContentType(p.Photo), p.Photo)
}

// PUT /api/productos/:id
func (ctl *ProductController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		resp.BadRequest(c, "No se pudo actualizar el producto")
		return
	}
	p, msg := form.product()
	if msg != "" {
		resp.BadRequest(c, msg)
		return
	}
	p.Photo = middlewares.Photo(c)

	ctx := c.Request.Context()
	found, err := ctl.Repo.ExistsID(ctx, id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !found {
		resp.NotFound(c, msgProductNotFound)
		return
	}
	if err := ctl.Repo.Update(ctx, id, p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Producto actualizado correctamente")
}

// DELETE /api/productos/:id
func (ctl *ProductController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	found, err := ctl.Repo.ExistsID(ctx, id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !found {
		resp.NotFound(c, msgProductNotFound)
		return
	}
	if err := ctl.Repo.Delete(ctx, id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Producto eliminado correctamente")
}
