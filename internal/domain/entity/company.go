package entity

import "time"

// Company representa una empresa del directorio de reseñas.
type Company struct {
	ID        string
	Name      string
	Location  string
	FoundedOn *time.Time // nil = sin fecha de fundación
	Logo      string     // nombre del archivo subido, vacío si no hay logo
	Reviews   []ReviewRef
}

// ReviewRef referencia a una reseña guardada en la empresa (solo append).
// Rating se rellena en lecturas pobladas; en escrituras vale 0.
type ReviewRef struct {
	ID     string
	Rating int
}

// ReviewIDs devuelve los IDs referenciados en el orden almacenado.
func (c *Company) ReviewIDs() []string {
	ids := make([]string, 0, len(c.Reviews))
	for _, r := range c.Reviews {
		ids = append(ids, r.ID)
	}
	return ids
}
