package controllers

import (
	"net/http"

	"github.com/Techkepper/PoskepperApi/entity"
	"github.com/Techkepper/PoskepperApi/pkg/resp"
	"github.com/Techkepper/PoskepperApi/repository"
	"github.com/Techkepper/PoskepperApi/utils"

	"github.com/gin-gonic/gin"
)

const (
	msgCedulaFormat   = "La cédula debe tener 7 o 9 dígitos"
	msgPhoneFormat    = "El número de teléfono debe tener 8 dígitos"
	msgCedulaTaken    = "La cedula del cliente ya está en uso"
	msgClientEmailUse = "El correo electrónico ya está en uso"
	msgClientMissing  = "No se encontró el cliente con el ID proporcionado"
)

type ClientController struct {
	Repo *repository.ClientRepository
}

func NewClientController(repo *repository.ClientRepository) *ClientController {
	return &ClientController{Repo: repo}
}

type ClientReq struct {
	Cedula   string `json:"cedula" binding:"required"`
	Name     string `json:"nombre" binding:"required"`
	LastName string `json:"apellidos" binding:"required"`
	Email    string `json:"correoElectronico" binding:"required"`
	Phone    string `json:"telefono" binding:"required"`
	Address  string `json:"direccion"`
	Comment  string `json:"comentario"`
	Active   *bool  `json:"estado"`
}

type ClientUpdateReq struct {
	Cedula   *string `json:"cedula"`
	Name     *string `json:"nombre"`
	LastName *string `json:"apellidos"`
	Email    *string `json:"correoElectronico"`
	Phone    *string `json:"telefono"`
	Address  *string `json:"direccion"`
	Comment  *string `json:"comentario"`
	Active   *bool   `json:"estado"`
}

// clientFormatError returns the message for the first malformed field.
func clientFormatError(cedula, email, phone *string) string {
	switch {
	case cedula != nil && !utils.ValidCedula(*cedula):
		return msgCedulaFormat
	case email != nil && !utils.ValidEmail(*email):
		return msgEmailFormat
	case phone != nil && !utils.ValidTelefono(*phone):
		return msgPhoneFormat
	}
	return ""
}

// POST /api/clientes/registrar
func (ctl *ClientController) Register(c *gin.Context) {
	var req ClientReq
	if !bindJSON(c, &req, "Todos los campos son requeridos para registrar un cliente") {
		return
	}
	if msg := clientFormatError(&req.Cedula, &req.Email, &req.Phone); msg != "" {
		resp.BadRequest(c, msg)
		return
	}

	ctx := c.Request.Context()
	taken, err := ctl.Repo.ExistsCedula(ctx, req.Cedula)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if taken {
		resp.BadRequest(c, msgCedulaTaken)
		return
	}
	taken, err = ctl.Repo.ExistsEmail(ctx, req.Email)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if taken {
		resp.BadRequest(c, msgClientEmailUse)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	client := &entity.Client{
		Cedula:   req.Cedula,
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Comment:  req.Comment,
		Active:   active,
	}
	if err := ctl.Repo.Create(ctx, client); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusCreated, "Cliente registrado correctamente")
}

// GET /api/clientes
func (ctl *ClientController) List(c *gin.Context) {
	clients, err := ctl.Repo.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(clients) == 0 {
		resp.NotFound(c, "No se encontraron clientes")
		return
	}
	resp.OK(c, clients)
}

// GET /api/clientes/:id
func (ctl *ClientController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	client, err := ctl.Repo.FindByID(c.Request.Context(), id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if client == nil {
		resp.NotFound(c, msgClientMissing)
		return
	}
	resp.OK(c, client)
}

// PUT /api/clientes/:id
func (ctl *ClientController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req ClientUpdateReq
	if !bindJSON(c, &req, "No se pudo actualizar el cliente") {
		return
	}
	if msg := clientFormatError(req.Cedula, req.Email, req.Phone); msg != "" {
		resp.BadRequest(c, msg)
		return
	}

	ctx := c.Request.Context()
	current, err := ctl.Repo.FindByID(ctx, id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if current == nil {
		resp.NotFound(c, msgClientMissing)
		return
	}
	if req.Cedula != nil && *req.Cedula != current.Cedula {
		taken, err := ctl.Repo.ExistsCedula(ctx, *req.Cedula)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		if taken {
			resp.BadRequest(c, msgCedulaTaken)
			return
		}
	}
	if req.Email != nil && *req.Email != current.Email {
		taken, err := ctl.Repo.ExistsEmail(ctx, *req.Email)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		if taken {
			resp.BadRequest(c, msgClientEmailUse)
			return
		}
	}

	upd := entity.ClientUpdate{
		Cedula:   req.Cedula,
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Comment:  req.Comment,
		Active:   req.Active,
	}
	if err := ctl.Repo.Update(ctx, id, upd); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Cliente actualizado correctamente")
}

// DELETE /api/clientes/:id
func (ctl *ClientController) Delete(c *gin.Context) {
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
		resp.NotFound(c, msgClientMissing)
		return
	}
	if err := ctl.Repo.Delete(ctx, id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Cliente eliminado correctamente")
}
