// Package memory implementa los puertos de persistencia en memoria (DB_DRIVER=memory y tests).
// Los identificadores tienen el mismo formato que los de MongoDB.
package memory

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/company-reviews-api/internal/domain"
	"github.com/jhoicas/company-reviews-api/internal/domain/entity"
	"github.com/jhoicas/company-reviews-api/internal/domain/repository"
	"github.com/jhoicas/company-reviews-api/internal/domain/search"
)

var (
	_ repository.CompanyRepository = (*CompanyRepo)(nil)
	_ repository.ReviewRepository  = (*ReviewRepo)(nil)
	_ repository.TxRunner          = (*TxRunner)(nil)
)

// Store guarda empresas y reseñas. Seguro para uso concurrente.
type Store struct {
	mu        sync.RWMutex
	companies []*entity.Company // orden de inserción = orden natural
	reviews   []*entity.Review
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{}
}

// Companies devuelve el repositorio de empresas sobre el almacén.
func (s *Store) Companies() *CompanyRepo { return &CompanyRepo{s: s} }

// Reviews devuelve el repositorio de reseñas sobre el almacén.
func (s *Store) Reviews() *ReviewRepo { return &ReviewRepo{s: s} }

func newID() string { return primitive.NewObjectID().Hex() }

func (s *Store) company(id string) *entity.Company {
	for _, c := range s.companies {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (s *Store) review(id string) *entity.Review {
	for _, r := range s.reviews {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// populated copia la empresa resolviendo el rating de cada referencia; descarta las colgantes.
func (s *Store) populated(c *entity.Company) *entity.Company {
	out := *c
	out.Reviews = make([]entity.ReviewRef, 0, len(c.Reviews))
	for _, ref := range c.Reviews {
		if r := s.review(ref.ID); r != nil {
			out.Reviews = append(out.Reviews, entity.ReviewRef{ID: r.ID, Rating: r.Rating})
		}
	}
	return &out
}

// CompanyRepo implementación en memoria de repository.CompanyRepository.
type CompanyRepo struct {
	s *Store
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(_ context.Context, company *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	company.ID = newID()
	stored := *company
	stored.Reviews = append([]entity.ReviewRef(nil), company.Reviews...)
	r.s.companies = append(r.s.companies, &stored)
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c := r.s.company(id)
	if c == nil {
		return nil, nil
	}
	return r.s.populated(c), nil
}

// Exists informa si la empresa existe.
func (r *CompanyRepo) Exists(_ context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.company(id) != nil, nil
}

// Find devuelve las empresas que cumplen el filtro.
func (r *CompanyRepo) Find(_ context.Context, filter search.CompanyFilter, opts repository.CompanyListOptions) ([]*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		if filter.Match(c) {
			list = append(list, r.s.populated(c))
		}
	}
	if opts.NewestFirst {
		// Los ObjectID hex crecen con el tiempo de creación.
		sort.SliceStable(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	}
	return list, nil
}

// AppendReview agrega la referencia al final de la lista.
func (r *CompanyRepo) AppendReview(_ context.Context, companyID, reviewID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := r.s.company(companyID)
	if c == nil {
		return &domain.NotFoundError{Entity: "company", ID: companyID}
	}
	c.Reviews = append(c.Reviews, entity.ReviewRef{ID: reviewID})
	return nil
}

// ReviewRepo implementación en memoria de repository.ReviewRepository.
type ReviewRepo struct {
	s *Store
}

// Create persiste una reseña nueva.
func (r *ReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	review.ID = newID()
	stored := *review
	r.s.reviews = append(r.s.reviews, &stored)
	return nil
}

// ListByCompany devuelve las reseñas de la empresa en orden de inserción.
func (r *ReviewRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Review
	for _, rv := range r.s.reviews {
		if rv.CompanyID == companyID {
			cp := *rv
			list = append(list, &cp)
		}
	}
	return list, nil
}

// GetByIDs devuelve las reseñas existentes en el orden de ids.
func (r *ReviewRepo) GetByIDs(_ context.Context, ids []string) ([]*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Review, 0, len(ids))
	for _, id := range ids {
		if rv := r.s.review(id); rv != nil {
			cp := *rv
			list = append(list, &cp)
		}
	}
	return list, nil
}

// Search evalúa el predicado sobre todas las reseñas.
func (r *ReviewRepo) Search(_ context.Context, s search.ReviewSearch) ([]*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Review
	for _, rv := range r.s.reviews {
		if s.Match(rv) {
			cp := *rv
			list = append(list, &cp)
		}
	}
	return list, nil
}

// Delete elimina una reseña; no falla si no existe.
func (r *ReviewRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, rv := range r.s.reviews {
		if rv.ID == id {
			r.s.reviews = append(r.s.reviews[:i], r.s.reviews[i+1:]...)
			return nil
		}
	}
	return nil
}

// TxRunner ejecuta fn directamente sobre los repositorios; no es atómico.
type TxRunner struct {
	companies repository.CompanyRepository
	reviews   repository.ReviewRepository
}

// NewTxRunner construye el runner con los repositorios dados.
func NewTxRunner(companies repository.CompanyRepository, reviews repository.ReviewRepository) *TxRunner {
	return &TxRunner{companies: companies, reviews: reviews}
}

// Run ejecuta fn una sola vez.
func (t *TxRunner) Run(ctx context.Context, fn func(ctx context.Context, companies repository.CompanyRepository, reviews repository.ReviewRepository) error) error {
	return fn(ctx, t.companies, t.reviews)
}

// Atomic siempre es false.
func (t *TxRunner) Atomic() bool { return false }
