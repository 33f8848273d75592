package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStore guarda las firmas como archivos PNG en un directorio.
type LocalStore struct {
	dir string
}

// NewLocalStore crea el directorio si no existe.
func NewLocalStore(dir string) (*LocalStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage: directorio local vacío")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save escribe el archivo en un temporal y lo renombra, reemplazando la firma anterior.
func (s *LocalStore) Save(_ context.Context, companyID string, png []byte) error {
	tmp, err := os.CreateTemp(s.dir, "signature-*.tmp")
	if err != nil {
		return fmt.Errorf("storage: temporal: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(png); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: escribir firma: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cerrar firma: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(companyID)); err != nil {
		return fmt.Errorf("storage: renombrar firma: %w", err)
	}
	return nil
}

// Load devuelve nil, nil si la empresa no tiene firma.
func (s *LocalStore) Load(_ context.Context, companyID string) ([]byte, error) {
	data, err := os.ReadFile(s.path(companyID))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: leer firma: %w", err)
	}
	return data, nil
}

// Name nombre del archivo de firma.
func (s *LocalStore) Name(companyID string) string { return ObjectName(companyID) }

// Close no hace nada en disco local.
func (s *LocalStore) Close() error { return nil }

func (s *LocalStore) path(companyID string) string {
	return filepath.Join(s.dir, filepath.Base(ObjectName(companyID)))
}
