package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/company-reviews-api/internal/application/ports"
)

var _ ports.LogoStorage = (*LocalStorage)(nil)

// LocalStorage guarda los logos en un directorio del servidor.
// No valida tipo ni tamaño del archivo.
type LocalStorage struct {
	dir string
	now func() time.Time
}

// NewLocalStorage crea el directorio si no existe.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de subidas: %w", err)
	}
	return &LocalStorage{dir: dir, now: time.Now}, nil
}

// Dir devuelve el directorio de subidas (para servirlo como estático).
func (s *LocalStorage) Dir() string { return s.dir }

// Save escribe el contenido como <unix-ms>-<sufijo><ext> y devuelve ese nombre.
func (s *LocalStorage) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := s.fileName(originalName)
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("crear archivo: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("escribir archivo: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("cerrar archivo: %w", err)
	}
	return name, nil
}

// Remove elimina un archivo guardado; no falla si ya no existe.
func (s *LocalStorage) Remove(_ context.Context, name string) error {
	if name == "" || name != filepath.Base(name) {
		return fmt.Errorf("nombre de archivo inválido: %q", name)
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar archivo: %w", err)
	}
	return nil
}

func (s *LocalStorage) fileName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	// El sufijo evita colisiones entre subidas del mismo milisegundo.
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + suffix + ext
}
