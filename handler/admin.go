package handler

import (
	"context"
	"net/http"

	"github.com/finucity/finucity-calc/database"
	"github.com/finucity/finucity-calc/tax"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	maxDeductionCap = decimal.NewFromInt(1_000_000)
	maxTDSRate      = decimal.NewFromInt(30)
)

type AdminAmountRequest struct {
	Amount *decimal.Decimal `json:"amount" validate:"required"`
}

type AdminRateRequest struct {
	Rate *decimal.Decimal `json:"rate" validate:"required"`
}

type DeductionLimitResponse struct {
	Code      string          `json:"code"`
	MaxAmount decimal.Decimal `json:"maxAmount"`
}

type TDSRateResponse struct {
	Section string          `json:"section"`
	Rate    decimal.Decimal `json:"rate"`
}

type IAdminDB interface {
	UpdateDeductionLimit(ctx context.Context, code string, amount decimal.Decimal) (database.DeductionLimit, error)
	UpdateTDSRate(ctx context.Context, section string, rate decimal.Decimal) (database.TDSRate, error)
}

type AdminHandler struct {
	vl     *validator.Validate
	db     IAdminDB
	logger *zap.Logger
}

func NewAdminHandler(vl *validator.Validate, db IAdminDB, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{vl, db, logger}
}

// UpdateDeductionLimit sets the cap of a fixed-cap deduction. 80D and 80G
// caps depend on age and income and cannot be overridden here.
func (a *AdminHandler) UpdateDeductionLimit(c echo.Context) error {
	code, err := tax.ParseDeductionCode(c.Param("code"))
	if err != nil || code == tax.Deduction80D || code == tax.Deduction80G {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Unsupported deduction code",
		})
	}

	var req AdminAmountRequest

	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}

	if err := a.vl.Struct(req); err != nil {
		return badRequest(c)
	}

	if tax.CheckAmount("amount", *req.Amount) != nil ||
		!req.Amount.IsPositive() || req.Amount.GreaterThan(maxDeductionCap) {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Invalid amount",
		})
	}

	limit, err := a.db.UpdateDeductionLimit(c.Request().Context(), string(code), *req.Amount)
	if err != nil {
		a.logger.Error("failed to update deduction limit", zap.String("code", string(code)), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ResponseMsg{
			Message: "Failed to update " + string(code) + " amount",
		})
	}

	a.logger.Info("deduction limit updated",
		zap.String("code", limit.Code),
		zap.Stringer("maxAmount", limit.MaxAmount),
	)

	return c.JSON(http.StatusOK, DeductionLimitResponse{
		Code:      limit.Code,
		MaxAmount: limit.MaxAmount,
	})
}

func (a *AdminHandler) UpdateTDSRate(c echo.Context) error {
	section, err := tax.ParseTDSSection(c.Param("section"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Unsupported tds section",
		})
	}

	var req AdminRateRequest

	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}

	if err := a.vl.Struct(req); err != nil {
		return badRequest(c)
	}

	if tax.CheckAmount("rate", *req.Rate) != nil ||
		req.Rate.IsNegative() || req.Rate.GreaterThan(maxTDSRate) {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Invalid rate",
		})
	}

	rate, err := a.db.UpdateTDSRate(c.Request().Context(), string(section), *req.Rate)
	if err != nil {
		a.logger.Error("failed to update tds rate", zap.String("section", string(section)), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ResponseMsg{
			Message: "Failed to update " + string(section) + " rate",
		})
	}

	a.logger.Info("tds rate updated",
		zap.String("section", rate.Section),
		zap.Stringer("rate", rate.Rate),
	)

	return c.JSON(http.StatusOK, TDSRateResponse{
		Section: rate.Section,
		Rate:    rate.Rate,
	})
}
