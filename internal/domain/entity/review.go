package entity

import "time"

// Rango permitido para la calificación.
const (
	MinRating = 1
	MaxRating = 5
)

// Review reseña de una empresa. Inmutable una vez creada.
type Review struct {
	ID           string
	CompanyID    string
	ReviewerName string
	Subject      string
	ReviewText   string
	Rating       int
	CreatedAt    time.Time
}
