package ports

import (
	"context"
	"io"
)

// LogoStorage define el puerto de salida para guardar los logos de empresas.
// Solo el nombre devuelto se persiste en la empresa.
type LogoStorage interface {
	// Save guarda el contenido bajo un nombre único derivado de la hora y conserva
	// la extensión de originalName. Devuelve el nombre del archivo guardado.
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	// Remove elimina un archivo guardado (compensación si falla la creación).
	Remove(ctx context.Context, name string) error
}
