package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa (multipart/form-data o JSON).
type CreateCompanyRequest struct {
	Name      string  `json:"name" form:"name" validate:"required"`
	Location  string  `json:"location" form:"location" validate:"required"`
	FoundedOn string  `json:"foundedOn" form:"foundedOn"` // RFC3339 o YYYY-MM-DD, opcional
	Logo      *Upload `json:"-" form:"-"`
}

// CompanyQuery filtros de GET /api/companies y /api/companies/by-city.
type CompanyQuery struct {
	City string `query:"city"`
	Name string `query:"name"`
}

// ReviewRatingResponse referencia poblada: solo rating.
type ReviewRatingResponse struct {
	ID     string `json:"id"`
	Rating int    `json:"rating"`
}

// CompanyResponse salida de una empresa con las calificaciones de sus reseñas.
type CompanyResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Location      string                 `json:"location"`
	FoundedOn     *time.Time             `json:"foundedOn"`
	Logo          string                 `json:"logo"`
	Reviews       []ReviewRatingResponse `json:"reviews"`
	ReviewCount   int                    `json:"reviewCount"`
	AverageRating float64                `json:"averageRating"`
}
