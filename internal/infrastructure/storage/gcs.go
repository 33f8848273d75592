package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSStore guarda las firmas como objetos en un bucket de Google Cloud Storage.
type GCSStore struct {
	client *gcs.Client
	bucket string
	prefix string
}

// NewGCSStore crea el cliente. Sin credentialsFile se usan las credenciales por defecto (ADC).
func NewGCSStore(ctx context.Context, bucket, prefix, credentialsFile string) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("storage: GCS_BUCKET requerido")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: cliente gcs: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket, prefix: prefix}, nil
}

// Save sube el PNG y reemplaza el objeto anterior.
func (s *GCSStore) Save(ctx context.Context, companyID string, png []byte) error {
	w := s.client.Bucket(s.bucket).Object(s.Name(companyID)).NewWriter(ctx)
	w.ContentType = "image/png"
	if _, err := w.Write(png); err != nil {
		w.Close()
		return fmt.Errorf("storage: subir firma: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("storage: cerrar subida: %w", err)
	}
	return nil
}

// Load devuelve nil, nil si el objeto no existe.
func (s *GCSStore) Load(ctx context.Context, companyID string) ([]byte, error) {
	r, err := s.client.Bucket(s.bucket).Object(s.Name(companyID)).NewReader(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: leer firma: %w", err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("storage: leer firma: %w", err)
	}
	return data, nil
}

// Name ruta del objeto dentro del bucket.
func (s *GCSStore) Name(companyID string) string {
	return path.Join(s.prefix, ObjectName(companyID))
}

// Close libera el cliente.
func (s *GCSStore) Close() error { return s.client.Close() }
