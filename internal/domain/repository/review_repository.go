package repository

import (
	"context"

	"github.com/jhoicas/company-reviews-api/internal/domain/entity"
	"github.com/jhoicas/company-reviews-api/internal/domain/search"
)

// ReviewRepository define el puerto de persistencia para Review.
type ReviewRepository interface {
	// Create persiste la reseña y asigna review.ID.
	Create(ctx context.Context, review *entity.Review) error
	// ListByCompany devuelve las reseñas cuyo companyId coincide.
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Review, error)
	// GetByIDs devuelve las reseñas existentes en el orden de ids; ignora las que no existen.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Review, error)
	Search(ctx context.Context, s search.ReviewSearch) ([]*entity.Review, error)
	// Delete solo se usa para compensar una creación incompleta.
	Delete(ctx context.Context, id string) error
}

// TxRunner ejecuta fn con repositorios atados a una misma unidad de trabajo.
// Si Atomic() es false, fn corre sin transacción y el llamador debe compensar.
// fn puede ejecutarse más de una vez si el almacén reintenta la transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context, companies CompanyRepository, reviews ReviewRepository) error) error
	Atomic() bool
}
