package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/company-reviews-api/internal/domain"
	"github.com/jhoicas/company-reviews-api/internal/domain/entity"
	"github.com/jhoicas/company-reviews-api/internal/domain/repository"
	"github.com/jhoicas/company-reviews-api/internal/domain/search"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre MongoDB.
// Si ctx es un mongo.SessionContext las operaciones participan en su transacción.
type CompanyRepo struct {
	companies *mongo.Collection
	reviews   *mongo.Collection
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db *mongo.Database) *CompanyRepo {
	return &CompanyRepo{
		companies: db.Collection(companiesCollection),
		reviews:   db.Collection(reviewsCollection),
	}
}

// Create persiste una nueva empresa con la lista de reseñas vacía.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	doc := companyDoc{
		ID:        primitive.NewObjectID(),
		Name:      company.Name,
		Location:  company.Location,
		FoundedOn: company.FoundedOn,
		Logo:      company.Logo,
		Reviews:   []primitive.ObjectID{},
	}
	if _, err := r.companies.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	company.ID = doc.ID.Hex()
	company.Reviews = []entity.ReviewRef{}
	return nil
}

// GetByID obtiene una empresa por ID con el rating de cada reseña referenciada.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}
	var doc companyDoc
	if err := r.companies.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	list, err := r.populate(ctx, []companyDoc{doc})
	if err != nil {
		return nil, err
	}
	return list[0], nil
}

// Exists comprueba si la empresa existe.
func (r *CompanyRepo) Exists(ctx context.Context, id string) (bool, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return false, err
	}
	n, err := r.companies.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count company: %w", err)
	}
	return n > 0, nil
}

// Find devuelve las empresas que cumplen el filtro.
func (r *CompanyRepo) Find(ctx context.Context, filter search.CompanyFilter, opts repository.CompanyListOptions) ([]*entity.Company, error) {
	findOpts := options.Find()
	if opts.NewestFirst {
		findOpts.SetSort(bson.D{{Key: "_id", Value: -1}})
	}
	cur, err := r.companies.Find(ctx, companyQuery(filter), findOpts)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	var docs []companyDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode companies: %w", err)
	}
	return r.populate(ctx, docs)
}

// AppendReview agrega la referencia al final de la lista ($push, atómico por documento).
func (r *CompanyRepo) AppendReview(ctx context.Context, companyID, reviewID string) error {
	cid, err := toObjectID(companyID)
	if err != nil {
		return err
	}
	rid, err := toObjectID(reviewID)
	if err != nil {
		return err
	}
	res, err := r.companies.UpdateOne(ctx, bson.M{"_id": cid}, bson.M{"$push": bson.M{"reviews": rid}})
	if err != nil {
		return fmt.Errorf("append review: %w", err)
	}
	if res.MatchedCount == 0 {
		return &domain.NotFoundError{Entity: "company", ID: companyID}
	}
	return nil
}

// populate resuelve el rating de todas las referencias con una sola consulta.
func (r *CompanyRepo) populate(ctx context.Context, docs []companyDoc) ([]*entity.Company, error) {
	seen := make(map[primitive.ObjectID]struct{})
	ids := make([]primitive.ObjectID, 0)
	for _, d := range docs {
		for _, oid := range d.Reviews {
			if _, ok := seen[oid]; !ok {
				seen[oid] = struct{}{}
				ids = append(ids, oid)
			}
		}
	}

	ratings := make(map[primitive.ObjectID]int, len(ids))
	if len(ids) > 0 {
		cur, err := r.reviews.Find(ctx,
			bson.M{"_id": bson.M{"$in": ids}},
			options.Find().SetProjection(bson.M{"rating": 1}),
		)
		if err != nil {
			return nil, fmt.Errorf("populate ratings: %w", err)
		}
		var rows []ratingDoc
		if err := cur.All(ctx, &rows); err != nil {
			return nil, fmt.Errorf("decode ratings: %w", err)
		}
		for _, row := range rows {
			ratings[row.ID] = row.Rating
		}
	}

	list := make([]*entity.Company, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].toEntity(ratings))
	}
	return list, nil
}
