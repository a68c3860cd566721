package dto

import "time"

// CreateReviewRequest entrada de POST /api/reviews. "name" es el nombre del autor.
type CreateReviewRequest struct {
	CompanyID  string `json:"companyId" form:"companyId"`
	Name       string `json:"name" form:"name" validate:"required"`
	Subject    string `json:"subject" form:"subject"`
	ReviewText string `json:"reviewText" form:"reviewText" validate:"required"`
	Rating     int    `json:"rating" form:"rating" validate:"required,min=1,max=5"`
}

// ReviewSearchQuery parámetros de GET /api/reviews/search.
type ReviewSearchQuery struct {
	CompanyID string `query:"companyId"`
	Query     string `query:"query"`
}

// ReviewResponse salida de una reseña.
type ReviewResponse struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"companyId"`
	ReviewerName string    `json:"reviewerName"`
	Subject      string    `json:"subject,omitempty"`
	ReviewText   string    `json:"reviewText"`
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"createdAt"`
}
