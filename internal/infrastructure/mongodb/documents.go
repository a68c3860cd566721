package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/company-reviews-api/internal/domain/entity"
)

// companyDoc forma persistida de una empresa.
type companyDoc struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Name      string               `bson:"name"`
	Location  string               `bson:"location"`
	FoundedOn *time.Time           `bson:"foundedOn"`
	Logo      string               `bson:"logo"`
	Reviews   []primitive.ObjectID `bson:"reviews"`
}

// reviewDoc forma persistida de una reseña.
type reviewDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	CompanyID    primitive.ObjectID `bson:"companyId"`
	ReviewerName string             `bson:"reviewerName"`
	Subject      string             `bson:"subject,omitempty"`
	ReviewText   string             `bson:"reviewText"`
	Rating       int                `bson:"rating"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

// ratingDoc proyección usada al poblar referencias.
type ratingDoc struct {
	ID     primitive.ObjectID `bson:"_id"`
	Rating int                `bson:"rating"`
}

func (d *companyDoc) toEntity(ratings map[primitive.ObjectID]int) *entity.Company {
	c := &entity.Company{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Location:  d.Location,
		FoundedOn: d.FoundedOn,
		Logo:      d.Logo,
		Reviews:   make([]entity.ReviewRef, 0, len(d.Reviews)),
	}
	for _, oid := range d.Reviews {
		rating, ok := ratings[oid]
		if !ok {
			continue // referencia colgante
		}
		c.Reviews = append(c.Reviews, entity.ReviewRef{ID: oid.Hex(), Rating: rating})
	}
	return c
}

func (d *reviewDoc) toEntity() *entity.Review {
	return &entity.Review{
		ID:           d.ID.Hex(),
		CompanyID:    d.CompanyID.Hex(),
		ReviewerName: d.ReviewerName,
		Subject:      d.Subject,
		ReviewText:   d.ReviewText,
		Rating:       d.Rating,
		CreatedAt:    d.CreatedAt,
	}
}
