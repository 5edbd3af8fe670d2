// Package pdf genera el reporte del pipeline de ventas en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  Fecha de generación                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Etapa | Leads | Valor estimado                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: leads / valor total del pipeline                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator genera reportes con Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GeneratePipelineReport genera el PDF del pipeline y devuelve sus bytes.
// companyName vacío (super_admin sin filtro) imprime el encabezado global.
func (g *MarotoReportGenerator) GeneratePipelineReport(
	_ context.Context,
	companyName string,
	stages []entity.PipelineStage,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de pipeline", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())

	// Filas en orden de pipeline; etapas sin leads se imprimen en cero.
	byStatut := make(map[string]entity.PipelineStage, len(stages))
	for _, s := range stages {
		byStatut[s.Statut] = s
	}
	totalCount := 0
	totalValeur := decimal.Zero
	for _, statut := range entity.LeadStatuts {
		s := byStatut[statut]
		s.Statut = statut
		m.AddRows(stageRow(s))
		totalCount += s.Count
		totalValeur = totalValeur.Add(s.TotalValeur)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(totalCount, totalValeur))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(companyName string) core.Row {
	title := "REPORTE DE PIPELINE DE VENTAS"
	if companyName == "" {
		companyName = "Todas las empresas"
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Etapa", 6, align.Left),
		h("Leads", 2, align.Center),
		h("Valor estimado", 4, align.Right),
	)
}

func stageRow(s entity.PipelineStage) core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New(s.Statut, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", s.Count), props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
		col.New(4).Add(text.New("€ "+s.TotalValeur.StringFixed(2), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

func totalsRow(count int, total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2, Left: 1,
		})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", count), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Center, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(text.New("€ "+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}
