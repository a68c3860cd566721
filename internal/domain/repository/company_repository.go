package repository

import (
	"context"

	"github.com/jhoicas/company-reviews-api/internal/domain/entity"
	"github.com/jhoicas/company-reviews-api/internal/domain/search"
)

// CompanyListOptions opciones de listado.
type CompanyListOptions struct {
	NewestFirst bool // orden por ID descendente; false = orden natural del almacén
}

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// Create persiste la empresa y asigna company.ID.
	Create(ctx context.Context, company *entity.Company) error
	// GetByID devuelve (nil, nil) si no existe. Las referencias vienen pobladas con rating.
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// Exists comprueba la existencia sin poblar referencias.
	Exists(ctx context.Context, id string) (bool, error)
	// Find aplica el filtro; las referencias vienen pobladas con rating.
	Find(ctx context.Context, filter search.CompanyFilter, opts CompanyListOptions) ([]*entity.Company, error)
	// AppendReview agrega reviewID al final de la lista de la empresa.
	// Devuelve domain.ErrNotFound si la empresa no existe.
	AppendReview(ctx context.Context, companyID, reviewID string) error
}
