package compare

import (
	"fmt"
	"io"
	"mime/multipart"

	"invoice-reconciler/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for comparison runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the compare routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/compare", h.HandleCompare)
	app.Post("/documents/extract", h.HandleExtract)

	group := app.Group("/compare")
	group.Get("/runs", h.HandleRuns)
	group.Get("/runs/:id/export", h.HandleExport)
}

// HandleCompare compares two uploaded PDF documents.
// @Summary Compare Two Documents
// @Description Extract product records from two uploaded PDFs and produce a difference report.
// @Tags compare
// @Accept multipart/form-data
// @Produce json
// @Param left formData file true "Left document (PDF)"
// @Param right formData file true "Right document (PDF)"
// @Success 200 {object} CompareResult "Comparison result"
// @Failure 400 {object} map[string]string "Missing upload"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /compare [post]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	left, err := readUpload(c, "left")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	right, err := readUpload(c, "right")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result, err := h.service.Compare(c.Context(), left, right)
	if err != nil {
		l.Error("Comparison failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Comparison completed",
		zap.String("run_id", result.RunID),
		zap.Int("differences", len(result.Report.Differences)),
		zap.Int("failures", len(result.Failures)))
	return c.JSON(result)
}

// HandleExtract extracts and annotates the records of a single uploaded PDF.
// @Summary Extract Document Records
// @Description Extract product records from one uploaded PDF and annotate them with lookup codes.
// @Tags compare
// @Accept multipart/form-data
// @Produce json
// @Param document formData file true "Document (PDF)"
// @Success 200 {array} models.ProductRecord "Annotated records"
// @Failure 400 {object} map[string]string "Missing upload"
// @Failure 422 {object} map[string]string "Extraction failed"
// @Router /documents/extract [post]
func (h *Handler) HandleExtract(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	doc, err := readUpload(c, "document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	records, err := h.service.ExtractDocument(c.Context(), doc)
	if err != nil {
		l.Warn("Extraction failed", zap.String("document", doc.Name), zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(records)
}

// HandleRuns lists past comparison runs.
// @Summary List Comparison Runs
// @Description List past comparison runs, newest first.
// @Tags compare
// @Produce json
// @Success 200 {array} models.CompareRun "Runs"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /compare/runs [get]
func (h *Handler) HandleRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	runs, err := h.service.Runs(c.Context())
	if err != nil {
		l.Error("Run listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(runs)
}

// HandleExport downloads the XLSX export of a past run.
// @Summary Download Run Export
// @Description Download the XLSX export of a comparison run.
// @Tags compare
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Run ID"
// @Success 200 {file} file "Workbook"
// @Failure 404 {object} map[string]string "Export not found"
// @Router /compare/runs/{id}/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	runID := c.Params("id")

	reader, err := h.service.Export(c.Context(), runID)
	if err != nil {
		l.Warn("Export download failed", zap.String("run_id", runID), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		l.Error("Export read failed", zap.String("run_id", runID), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.xlsx"`, runID))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(data)
}

// readUpload pulls one multipart file field into memory.
func readUpload(c *fiber.Ctx, field string) (Document, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return Document{}, fmt.Errorf("multipart field %q is required", field)
	}
	data, err := readMultipartFile(header)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read upload %q: %w", field, err)
	}
	return Document{Name: header.Filename, Data: data}, nil
}

func readMultipartFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
