package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x17green/debtledger/internal/middleware"
	"github.com/x17green/debtledger/internal/service"
	"github.com/x17green/debtledger/pkg/logger"
)

type ImportHandler struct {
	service service.ImportService
	logger  *logger.Logger
}

func NewImportHandler(svc service.ImportService, log *logger.Logger) *ImportHandler {
	return &ImportHandler{
		service: svc,
		logger:  log,
	}
}

func (h *ImportHandler) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	h.logger.Info(ctx, "Handling import upload request")

	file, err := c.FormFile("file")
	if err != nil {
		h.logger.Error(ctx, "Failed to get file from request",
			"error", err,
		)
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "file is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error(ctx, "Failed to open file",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to open file",
		})
	}
	defer src.Close()

	importID, err := h.service.StartImport(ctx, middleware.UserID(c), src)
	if err != nil {
		h.logger.Error(ctx, "Failed to start import",
			"error", err,
		)
		return writeError(c, err)
	}

	return c.JSON(http.StatusAccepted, map[string]string{
		"import_id": importID,
		"status":    "processing",
	})
}

func (h *ImportHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	imp, err := h.service.GetImport(ctx, middleware.UserID(c), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, imp)
}

func (h *ImportHandler) GetIssues(c echo.Context) error {
	ctx := c.Request().Context()

	importID := c.Param("id")

	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(c.QueryParam("per_page"))
	if err != nil || perPage < 1 {
		perPage = 10
	}

	issues, total, err := h.service.GetImportIssues(ctx, middleware.UserID(c), importID, page, perPage)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"import_id": importID,
		"items":     issues,
		"page":      page,
		"per_page":  perPage,
		"total":     total,
	})
}
