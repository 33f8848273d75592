package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Recuadro máximo de la firma en píxeles; la factura la dibuja escalada.
const (
	SignatureMaxWidth  = 400
	SignatureMaxHeight = 250
)

// Dimensiones máximas aceptadas antes de decodificar; un archivo pequeño puede declarar
// un lienzo enorme.
const (
	SourceMaxWidth  = 6000
	SourceMaxHeight = 6000
)

// ErrImageTooLarge la cabecera declara dimensiones sobre SourceMaxWidth x SourceMaxHeight.
var ErrImageTooLarge = errors.New("imagen demasiado grande")

// PNGNormalizer decodifica JPEG/PNG/GIF/BMP/TIFF, reduce la imagen al recuadro y la guarda como PNG.
type PNGNormalizer struct{}

// Normalize devuelve el PNG resultante y sus dimensiones.
func (PNGNormalizer) Normalize(data []byte) ([]byte, int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("imagen no válida: %w", err)
	}
	if cfg.Width > SourceMaxWidth || cfg.Height > SourceMaxHeight {
		return nil, 0, 0, fmt.Errorf("%w: %dx%d (máx. %dx%d)", ErrImageTooLarge, cfg.Width, cfg.Height, SourceMaxWidth, SourceMaxHeight)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("imagen no válida: %w", err)
	}
	b := img.Bounds()
	if b.Dx() > SignatureMaxWidth || b.Dy() > SignatureMaxHeight {
		img = imaging.Fit(img, SignatureMaxWidth, SignatureMaxHeight, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, 0, 0, fmt.Errorf("codificar png: %w", err)
	}
	b = img.Bounds()
	return buf.Bytes(), b.Dx(), b.Dy(), nil
}
