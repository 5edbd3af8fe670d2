package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-suite/internal/application/usecase"
)

// ReportHandler maneja los reportes del pipeline (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Pipeline godoc
// @Summary      Resumen del pipeline por etapa
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PipelineReportResponse
// @Router       /api/reports/pipeline [get]
func (h *ReportHandler) Pipeline(c *fiber.Ctx) error {
	out, err := h.uc.Pipeline(c.Context(), GetCaller(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PipelinePDF godoc
// @Summary      Reporte del pipeline en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/pipeline/pdf [get]
func (h *ReportHandler) PipelinePDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.PipelinePDF(c.Context(), GetCaller(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pipeline.pdf"`)
	return c.Send(pdfBytes)
}
