package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/company-reviews-api/internal/domain"
)

// IsValidID informa si id es un ObjectID hexadecimal de 24 caracteres.
func IsValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

func toObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", domain.Invalid("id", domain.MsgInvalidID), id)
	}
	return oid, nil
}

// toObjectIDs ignora los ids mal formados: no pueden existir en el almacén.
func toObjectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			out = append(out, oid)
		}
	}
	return out
}
