package repository

import (
	"context"
	"photomagnet_server/database"
	"photomagnet_server/lib"
	"photomagnet_server/structs/tables"
)

type AdminPGRepository struct {
	db *database.DB
}

func NewAdminPGRepository(db *database.DB) *AdminPGRepository {
	return &AdminPGRepository{db: db}
}

func (r *AdminPGRepository) FindByEmail(ctx context.Context, email string) (*tables.Admin, error) {
	admin, err := database.Query[tables.Admin](r.db).Where("email", email).First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if admin == nil {
		return nil, lib.ErrNotFound
	}
	return admin, nil
}

func (r *AdminPGRepository) Create(ctx context.Context, admin *tables.Admin) (*tables.Admin, error) {
	created, err := database.Query[tables.Admin](r.db).Insert(ctx, admin)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return created, nil
}
