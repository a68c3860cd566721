package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/company-reviews-api/internal/domain/entity"
	"github.com/jhoicas/company-reviews-api/internal/domain/repository"
	"github.com/jhoicas/company-reviews-api/internal/domain/search"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación del puerto ReviewRepository sobre MongoDB.
type ReviewRepo struct {
	reviews *mongo.Collection
}

// NewReviewRepository construye el adaptador de persistencia para reseñas.
func NewReviewRepository(db *mongo.Database) *ReviewRepo {
	return &ReviewRepo{reviews: db.Collection(reviewsCollection)}
}

// Create persiste la reseña. Siempre asigna un ID nuevo (la transacción puede reintentarse).
func (r *ReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	companyID, err := toObjectID(review.CompanyID)
	if err != nil {
		return err
	}
	doc := reviewDoc{
		ID:           primitive.NewObjectID(),
		CompanyID:    companyID,
		ReviewerName: review.ReviewerName,
		Subject:      review.Subject,
		ReviewText:   review.ReviewText,
		Rating:       review.Rating,
		CreatedAt:    review.CreatedAt,
	}
	if _, err := r.reviews.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	review.ID = doc.ID.Hex()
	return nil
}

// ListByCompany devuelve las reseñas con companyId igual al dado.
func (r *ReviewRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Review, error) {
	oid, err := toObjectID(companyID)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, bson.M{"companyId": oid})
}

// GetByIDs devuelve las reseñas en el orden de ids, omitiendo las inexistentes.
func (r *ReviewRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Review, error) {
	oids := toObjectIDs(ids)
	if len(oids) == 0 {
		return []*entity.Review{}, nil
	}
	found, err := r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Review, len(found))
	for _, rv := range found {
		byID[rv.ID] = rv
	}
	list := make([]*entity.Review, 0, len(ids))
	for _, id := range ids {
		if rv, ok := byID[id]; ok {
			list = append(list, rv)
		}
	}
	return list, nil
}

// Search ejecuta el predicado de búsqueda de reseñas.
func (r *ReviewRepo) Search(ctx context.Context, s search.ReviewSearch) ([]*entity.Review, error) {
	q, err := reviewQuery(s)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, q)
}

// Delete elimina una reseña por ID.
func (r *ReviewRepo) Delete(ctx context.Context, id string) error {
	oid, err := toObjectID(id)
	if err != nil {
		return err
	}
	if _, err := r.reviews.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

func (r *ReviewRepo) find(ctx context.Context, filter bson.M) ([]*entity.Review, error) {
	cur, err := r.reviews.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	var docs []reviewDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	list := make([]*entity.Review, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].toEntity())
	}
	return list, nil
}
