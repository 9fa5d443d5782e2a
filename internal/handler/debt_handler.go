package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x17green/debtledger/internal/domain"
	"github.com/x17green/debtledger/internal/middleware"
	"github.com/x17green/debtledger/internal/service"
	"github.com/x17green/debtledger/pkg/logger"
	"github.com/x17green/debtledger/pkg/money"
)

type createDebtRequest struct {
	DebtorID           string `json:"debtor_id"`
	DebtorPhone        string `json:"debtor_phone"`
	DebtorName         string `json:"debtor_name"`
	IsExternal         bool   `json:"is_external"`
	ExternalLenderName string `json:"external_lender_name"`
	Principal          string `json:"principal" validate:"required"`
	InterestRate       string `json:"interest_rate"`
	DueDate            string `json:"due_date" validate:"required"`
	Notes              string `json:"notes" validate:"max=500"`
}

type recordPaymentRequest struct {
	Amount    string `json:"amount" validate:"required"`
	Notes     string `json:"notes" validate:"max=500"`
	Reference string `json:"reference" validate:"max=64"`
	Gateway   string `json:"gateway" validate:"omitempty,oneof=manual"`
}

type DebtHandler struct {
	service service.LedgerService
	logger  *logger.Logger
}

func NewDebtHandler(svc service.LedgerService, log *logger.Logger) *DebtHandler {
	return &DebtHandler{
		service: svc,
		logger:  log,
	}
}

func (h *DebtHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req createDebtRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "due_date must be a date in YYYY-MM-DD format",
			"field": "due_date",
		})
	}

	debt, err := h.service.CreateDebt(ctx, middleware.UserID(c), service.CreateDebtInput{
		DebtorID:           req.DebtorID,
		DebtorPhone:        req.DebtorPhone,
		DebtorName:         req.DebtorName,
		IsExternal:         req.IsExternal,
		ExternalLenderName: req.ExternalLenderName,
		Principal:          req.Principal,
		InterestRate:       req.InterestRate,
		DueDate:            dueDate,
		Notes:              req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, debt)
}

func (h *DebtHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	debts, err := h.service.ListDebts(ctx, middleware.UserID(c))
	if err != nil {
		h.logger.Error(ctx, "Failed to list debts",
			"error", err,
		)
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": debts,
		"total": len(debts),
	})
}

func (h *DebtHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	debt, err := h.service.GetDebt(ctx, middleware.UserID(c), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, debt)
}

func (h *DebtHandler) RecordPayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	debt, payment, err := h.service.RecordPayment(ctx, middleware.UserID(c), c.Param("id"), service.RecordPaymentInput{
		Amount:    req.Amount,
		Notes:     req.Notes,
		Reference: req.Reference,
		Gateway:   domain.PaymentGateway(req.Gateway),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"debt":    debt,
		"payment": payment,
	})
}

func (h *DebtHandler) ListPayments(c echo.Context) error {
	ctx := c.Request().Context()

	payments, err := h.service.ListPayments(ctx, middleware.UserID(c), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": payments,
		"total": len(payments),
	})
}

func (h *DebtHandler) Summary(c echo.Context) error {
	ctx := c.Request().Context()

	summary, err := h.service.Summary(ctx, middleware.UserID(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"total_lending":           summary.TotalLending,
		"total_lending_formatted": money.Format(summary.TotalLending),
		"lending_count":           summary.LendingCount,
		"total_owing":             summary.TotalOwing,
		"total_owing_formatted":   money.Format(summary.TotalOwing),
		"owing_count":             summary.OwingCount,
		"overdue_debts":           summary.OverdueDebts,
		"recent_debts":            summary.RecentDebts,
	})
}

func (h *DebtHandler) Activity(c echo.Context) error {
	ctx := c.Request().Context()

	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		limit = 20
	}

	activities, err := h.service.ListActivity(ctx, middleware.UserID(c), limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": activities,
	})
}
