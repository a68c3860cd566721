// Package search construye los predicados de búsqueda de empresas y reseñas de forma
// independiente del almacén. Los adaptadores de infraestructura los traducen a su
// lenguaje de consulta; Match permite evaluarlos en memoria.
package search

import (
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/company-reviews-api/internal/domain/entity"
)

// CompanyFilter predicado para listar empresas.
// Vacío = todas; si no, location contiene City O name contiene Name (sin distinguir mayúsculas).
type CompanyFilter struct {
	City string
	Name string
}

// NewCompanyFilter normaliza los parámetros de consulta.
func NewCompanyFilter(city, name string) CompanyFilter {
	return CompanyFilter{
		City: strings.TrimSpace(city),
		Name: strings.TrimSpace(name),
	}
}

// IsEmpty informa si el filtro acepta todas las empresas.
func (f CompanyFilter) IsEmpty() bool {
	return f.City == "" && f.Name == ""
}

// Match evalúa el filtro sobre una empresa.
func (f CompanyFilter) Match(c *entity.Company) bool {
	if f.IsEmpty() {
		return true
	}
	if f.City != "" && ContainsFold(c.Location, f.City) {
		return true
	}
	return f.Name != "" && ContainsFold(c.Name, f.Name)
}

// ReviewSearch predicado de búsqueda de reseñas dentro de una empresa:
// companyId = CompanyID Y (reviewerName|subject|reviewText contiene Text [O rating = *Rating]).
type ReviewSearch struct {
	CompanyID string
	Text      string
	Rating    *int // solo si Text es numérico y entero
}

// NewReviewSearch construye el predicado. Si la consulta es un número entero
// (p.ej. "5" o " 4 "), también se compara contra rating.
func NewReviewSearch(companyID, query string) ReviewSearch {
	s := ReviewSearch{CompanyID: companyID, Text: query}
	if n, ok := parseRating(query); ok {
		s.Rating = &n
	}
	return s
}

// Match evalúa el predicado sobre una reseña.
func (s ReviewSearch) Match(r *entity.Review) bool {
	if r.CompanyID != s.CompanyID {
		return false
	}
	if ContainsFold(r.ReviewerName, s.Text) || ContainsFold(r.Subject, s.Text) || ContainsFold(r.ReviewText, s.Text) {
		return true
	}
	return s.Rating != nil && r.Rating == *s.Rating
}

// ContainsFold busca substr en s sin distinguir mayúsculas. Una subcadena vacía siempre coincide.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// parseRating acepta cualquier literal numérico con valor entero; un valor no entero
// nunca puede igualar una calificación.
func parseRating(query string) (int, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(q, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
