package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CompanyCreatedResponse respuesta de POST /api/companies.
type CompanyCreatedResponse struct {
	Message string          `json:"message"`
	Company CompanyResponse `json:"company"`
}

// ReviewCreatedResponse respuesta de POST /api/reviews.
type ReviewCreatedResponse struct {
	Message string         `json:"message"`
	Review  ReviewResponse `json:"review"`
}
