package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/bill-automation-api/internal/application/billing"
)

// Maroto trabaja en milímetros; el layout está en puntos.
const mmPerPoint = 25.4 / 72

// fixedCreationDate fecha de creación embebida en los metadatos. Maroto sigue escribiendo
// /ModDate con la hora actual, así que dos renders solo difieren en ese campo.
var fixedCreationDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateBillPDF dibuja el layout del documento y devuelve los bytes del PDF.
// Si las filas no caben en una página, Maroto continúa en la siguiente.
func (g *MarotoPDFGenerator) GenerateBillPDF(ctx context.Context, doc *billing.InvoiceDocument) ([]byte, error) {
	if doc == nil || doc.Company == nil {
		return nil, fmt.Errorf("pdf: documento sin empresa")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(mm(PageMargin)).WithRightMargin(mm(PageMargin)).
		WithTopMargin(mm(PageMargin)).WithBottomMargin(mm(PageMargin)).
		WithMaxGridSize(ContentWidth).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(doc.TaxMode.DocumentTitle()+" "+doc.BillNo, true).
		WithAuthor(doc.Company.Name, true).
		WithCreationDate(fixedCreationDate).
		Build()

	m := maroto.New(cfg)
	for _, b := range Layout(doc) {
		m.AddRows(renderBand(b))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

func renderBand(b Band) core.Row {
	cols := make([]core.Col, 0, len(b.Cells))
	for _, c := range b.Cells {
		cols = append(cols, renderCell(c))
	}
	r := row.New(mm(b.Height)).Add(cols...)
	if f := b.Frame(); f != 0 {
		r = r.WithStyle(&props.Cell{BorderType: toBorder(f), BorderThickness: borderThickness})
	}
	return r
}

func renderCell(c Cell) core.Col {
	components := make([]core.Component, 0, len(c.Lines)+1)
	tops := LineTops(c)
	for i, l := range c.Lines {
		if l.Text != "" {
			components = append(components, text.New(l.Text, textProps(l, tops[i])))
		}
	}
	if len(c.Image) > 0 {
		components = append(components, image.NewFromBytes(c.Image, extension.Png, props.Rect{
			Center:  true,
			Percent: 80,
		}))
	}
	out := col.New(c.Width).Add(components...)
	if c.Border {
		out = out.WithStyle(boxed())
	}
	return out
}

func textProps(l Line, top float64) props.Text {
	p := props.Text{
		Size:  l.Size,
		Top:   mm(top),
		Left:  mm(cellPadding),
		Right: mm(cellPadding),
		Align: toAlign(l.Align),
	}
	if l.Bold {
		p.Style = fontstyle.Bold
	}
	return p
}

func toAlign(a Align) align.Type {
	switch a {
	case AlignCenter:
		return align.Center
	case AlignRight:
		return align.Right
	default:
		return align.Left
	}
}

const borderThickness = 0.3

func boxed() *props.Cell {
	return &props.Cell{BorderType: border.Full, BorderThickness: borderThickness}
}

func toBorder(s Side) border.Type {
	var t border.Type
	if s&SideLeft != 0 {
		t |= border.Left
	}
	if s&SideTop != 0 {
		t |= border.Top
	}
	if s&SideRight != 0 {
		t |= border.Right
	}
	if s&SideBottom != 0 {
		t |= border.Bottom
	}
	return t
}

func mm(pt float64) float64 { return pt * mmPerPoint }
