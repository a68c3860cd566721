package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/company-reviews-api/internal/domain/search"
)

// containsRegex coincidencia por subcadena sin distinguir mayúsculas; el texto del
// usuario se escapa para que no se interprete como expresión regular.
func containsRegex(text string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
}

// companyQuery traduce el filtro de empresas a BSON.
func companyQuery(f search.CompanyFilter) bson.M {
	if f.IsEmpty() {
		return bson.M{}
	}
	or := bson.A{}
	if f.City != "" {
		or = append(or, bson.M{"location": containsRegex(f.City)})
	}
	if f.Name != "" {
		or = append(or, bson.M{"name": containsRegex(f.Name)})
	}
	return bson.M{"$or": or}
}

// reviewQuery traduce la búsqueda de reseñas a BSON.
// Sin índices de texto recorre todas las reseñas de la empresa (companyId sí está indexado).
func reviewQuery(s search.ReviewSearch) (bson.M, error) {
	companyID, err := toObjectID(s.CompanyID)
	if err != nil {
		return nil, err
	}
	or := bson.A{
		bson.M{"reviewerName": containsRegex(s.Text)},
		bson.M{"subject": containsRegex(s.Text)},
		bson.M{"reviewText": containsRegex(s.Text)},
	}
	if s.Rating != nil {
		or = append(or, bson.M{"rating": *s.Rating})
	}
	return bson.M{"companyId": companyID, "$or": or}, nil
}
