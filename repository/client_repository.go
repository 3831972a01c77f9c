package repository

import (
	"context"

	"github.com/Techkepper/PoskepperApi/entity"

	"gorm.io/gorm"
)

type ClientRepository struct {
	DB *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *entity.Client) error {
	return exec(ctx, r.DB, "sp_RegistrarCliente", c.Cedula, c.Name, c.LastName, c.Email,
		c.Phone, c.Address, c.Comment, c.Active)
}

func (r *ClientRepository) List(ctx context.Context) ([]entity.Client, error) {
	var out []entity.Client
	if err := call(ctx, r.DB, &out, "sp_ObtenerClientes"); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*entity.Client, error) {
	return one[entity.Client](ctx, r.DB, "sp_ObtenerClientePorId", id)
}

func (r *ClientRepository) Update(ctx context.Context, id int64, c entity.ClientUpdate) error {
	return exec(ctx, r.DB, "sp_ActualizarCliente", id, c.Cedula, c.Name, c.LastName, c.Email,
		c.Phone, c.Address, c.Comment, c.Active)
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	return exec(ctx, r.DB, "sp_EliminarCliente", id)
}

func (r *ClientRepository) ExistsID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.DB, "sp_ExisteIdCliente", id)
}

func (r *ClientRepository) ExistsCedula(ctx context.Context, cedula string) (bool, error) {
	return exists(ctx, r.DB, "sp_ExisteCedulaCliente", cedula)
}

func (r *ClientRepository) ExistsEmail(ctx context.Context, email string) (bool, error) {
	return exists(ctx, r.DB, "sp_ExisteCorreoCliente", email)
}
