// Package storage guarda la firma escaneada de cada empresa, en disco local o en Google Cloud Storage.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/bill-automation-api/pkg/config"
)

// SignatureStore almacén de firmas; lo implementan LocalStore y GCSStore.
type SignatureStore interface {
	Save(ctx context.Context, companyID string, png []byte) error
	Load(ctx context.Context, companyID string) ([]byte, error)
	Name(companyID string) string
	Close() error
}

// ObjectName nombre convencional del archivo de firma de una empresa.
func ObjectName(companyID string) string {
	return fmt.Sprintf("signature-%s.png", companyID)
}

// New construye el almacén configurado.
func New(ctx context.Context, cfg config.StorageConfig) (SignatureStore, error) {
	switch cfg.Backend {
	case "gcs":
		return NewGCSStore(ctx, cfg.GCSBucket, cfg.GCSPrefix, cfg.CredentialsFile)
	case "", "local":
		return NewLocalStore(cfg.LocalDir)
	default:
		return nil, fmt.Errorf("storage: backend desconocido %q", cfg.Backend)
	}
}
