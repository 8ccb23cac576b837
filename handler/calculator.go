package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/finucity/finucity-calc/database"
	"github.com/finucity/finucity-calc/tax"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// IST is the zone used when the caller does not pin a reference date.
var IST = time.FixedZone("IST", 5*60*60+30*60)

type Deduction struct {
	Code   string           `json:"code" validate:"required"`
	Amount *decimal.Decimal `json:"amount" validate:"required"`
}

type IncomeTaxRequest struct {
	GrossIncome *decimal.Decimal `json:"grossIncome" validate:"required"`
	AgeGroup    string           `json:"ageGroup" validate:"required,oneof=under_60 senior_60_80 super_80"`
	Regime      string           `json:"regime" validate:"required,oneof=old new"`
	Deductions  []Deduction      `json:"deductions" validate:"dive"`
}

type CompareRegimesRequest struct {
	GrossIncome *decimal.Decimal `json:"grossIncome" validate:"required"`
	AgeGroup    string           `json:"ageGroup" validate:"required,oneof=under_60 senior_60_80 super_80"`
	Deductions  []Deduction      `json:"deductions" validate:"dive"`
}

type HRARequest struct {
	BasicSalary *decimal.Decimal `json:"basicSalary" validate:"required"`
	HRAReceived *decimal.Decimal `json:"hraReceived" validate:"required"`
	RentPaid    *decimal.Decimal `json:"rentPaid" validate:"required"`
	IsMetro     bool             `json:"isMetro"`
}

type CapitalGainsRequest struct {
	PurchasePrice       *decimal.Decimal `json:"purchasePrice" validate:"required"`
	SalePrice           *decimal.Decimal `json:"salePrice" validate:"required"`
	HoldingPeriodMonths *int             `json:"holdingPeriodMonths" validate:"required"`
	AssetType           string           `json:"assetType" validate:"required,oneof=equity property debt"`
}

type SIPRequest struct {
	MonthlyInvestment *decimal.Decimal `json:"monthlyInvestment" validate:"required"`
	AnnualReturnPct   *decimal.Decimal `json:"annualReturnPct" validate:"required"`
	TenureYears       int              `json:"tenureYears" validate:"required,gt=0,lte=100"`
}

type GSTRequest struct {
	Amount     *decimal.Decimal `json:"amount" validate:"required"`
	GSTRatePct *decimal.Decimal `json:"gstRatePct" validate:"required"`
	Mode       string           `json:"mode" validate:"required,oneof=exclusive inclusive"`
}

type TDSRequest struct {
	Income  *decimal.Decimal `json:"income" validate:"required"`
	Section string           `json:"section" validate:"required"`
}

type GratuityRequest struct {
	BasicSalary     *decimal.Decimal `json:"basicSalary" validate:"required"`
	YearsOfService  *decimal.Decimal `json:"yearsOfService" validate:"required"`
	CoveredUnderAct bool             `json:"coveredUnderAct"`
}

type FinancialYearResponse struct {
	Date           string            `json:"date"`
	FinancialYear  tax.FinancialYear `json:"financialYear"`
	AssessmentYear tax.FinancialYear `json:"assessmentYear"`
	StartsOn       string            `json:"startsOn"`
	EndsOn         string            `json:"endsOn"`
}

type IDB interface {
	FindAllDeductionLimits(ctx context.Context) ([]database.DeductionLimit, error)
	FindAllTDSRates(ctx context.Context) ([]database.TDSRate, error)
}

type CalculatorHandler struct {
	vl     *validator.Validate
	db     IDB
	rules  tax.Rules
	base   *tax.Calculator
	logger *zap.Logger
	now    func() time.Time
}

func NewCalculatorHandler(vl *validator.Validate, db IDB, rules tax.Rules, logger *zap.Logger) *CalculatorHandler {
	return &CalculatorHandler{
		vl:     vl,
		db:     db,
		rules:  rules,
		base:   tax.NewCalculator(rules),
		logger: logger,
		now:    time.Now,
	}
}

func (h *CalculatorHandler) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return h.vl.Struct(req)
}

func badRequest(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ResponseMsg{
		Message: "Bad request",
	})
}

func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, ResponseMsg{
		Message: "Internal server error",
	})
}

// calculationError maps engine failures to responses. Anything that is not
// an input error is unexpected and reported as a 500.
func (h *CalculatorHandler) calculationError(c echo.Context, err error) error {
	var invalid *tax.InvalidInputError
	if errors.As(err, &invalid) {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: invalid.Reason,
		})
	}

	h.logger.Error("calculation failed", zap.String("path", c.Path()), zap.Error(err))

	return internalError(c)
}

// calculator builds a Calculator from the base rules overlaid with the
// administrator overrides currently stored in the database.
func (h *CalculatorHandler) calculator(ctx context.Context) (*tax.Calculator, error) {
	limits, err := h.db.FindAllDeductionLimits(ctx)
	if err != nil {
		h.logger.Error("failed to find deduction limits", zap.Error(err))
		return nil, err
	}

	caps := make(map[tax.DeductionCode]decimal.Decimal, len(limits))

	for _, l := range limits {
		code, err := tax.ParseDeductionCode(l.Code)
		if err != nil {
			h.logger.Warn("ignoring stored deduction limit", zap.String("code", l.Code))
			continue
		}
		caps[code] = l.MaxAmount
	}

	stored, err := h.db.FindAllTDSRates(ctx)
	if err != nil {
		h.logger.Error("failed to find tds rates", zap.Error(err))
		return nil, err
	}

	rates := make(map[tax.TDSSection]decimal.Decimal, len(stored))

	for _, r := range stored {
		section, err := tax.ParseTDSSection(r.Section)
		if err != nil {
			h.logger.Warn("ignoring stored tds rate", zap.String("section", r.Section))
			continue
		}
		rates[section] = r.Rate
	}

	return tax.NewCalculator(h.rules.WithDeductionCaps(caps).WithTDSRates(rates)), nil
}

// parseDeductions rejects a code claimed more than once rather than letting
// the later claim replace the earlier one.
func parseDeductions(in []Deduction) (tax.Deductions, error) {
	out := make(tax.Deductions, len(in))

	for _, d := range in {
		code, err := tax.ParseDeductionCode(d.Code)
		if err != nil {
			return nil, err
		}

		if _, ok := out[code]; ok {
			return nil, &tax.InvalidInputError{Reason: fmt.Sprintf("duplicate deduction code %q", code)}
		}

		out[code] = *d.Amount
	}

	return out, nil
}

func (h *CalculatorHandler) CalculateIncomeTax(c echo.Context) error {
	var req IncomeTaxRequest

	if err := h.bind(c, &req); err != nil {
		return badRequest(c)
	}

	deductions, err := parseDeductions(req.Deductions)
	if err != nil {
		return h.calculationError(c, err)
	}

	calc, err := h.calculator(c.Request().Context())
	if err != nil {
		return internalError(c)
	}

	result, err := calc.IncomeTax(*req.GrossIncome, tax.AgeGroup(req.AgeGroup), tax.Regime(req.Regime), deductions)
	if err != nil {
		return h.calculationError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CalculatorHandler) CompareRegimes(c echo.Context) error {
	var req CompareRegimesRequest

	if err := h.bind(c, &req); err != nil {
		return badRequest(c)
	}

	deductions, err := parseDeductions(req.Deductions)
	if err != nil {
		return h.calculationError(c, err)
	}

	calc, err := h.calculator(c.Request().Context())
	if err != nil {
		return internalError(c)
	}

	result, err := calc.CompareRegimes(*req.GrossIncome, tax.AgeGroup(req.AgeGroup), deductions)
	if err != nil {
		return h.calculationError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CalculatorHandler) CalculateHRA(c echo.Context) error {
	var req HRARequest

	if err := h.bind(c, &req); err != nil {
		return badRequest(c)
	}

	result, err := h.base.HRAExemption(*req.BasicSalary, *req.HRAReceived, *req.RentPaid, req.IsMetro)
	if err != nil {
		return h.calculationError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CalculatorHandler) CalculateCapitalGains(c echo.Context) error {
	var req CapitalGainsRequest

	if err := h.bind(c, &req); err != nil {
		return badRequest(c)
	}

	result, err := h.base.CapitalGains(
		*req.PurchasePrice,
		*req.SalePrice,
		*req.HoldingPeriodMonths,
		tax.AssetType(req.AssetType),
	)
	if err != nil {
		return h.calculationError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CalculatorHandler) CalculateSIP(c echo.Context) error {
	var req SIPRequest

	if err := h.bind(c, &req); err != nil {
		return badRequest(c)
	}

	result, err := tax.SIP(*req.MonthlyInvestment, *req.AnnualReturnPct, req.TenureYears)
	if err != nil {
		return h.calculationError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CalculatorHandler) CalculateGST(c echo.Context) error {
	var req GSTRequest

	if err := h.bind(c, &req); err != nil {
		return badRequest(c)
	}

	result, err := tax.GST(*req.Amount, *req.GSTRatePct, tax.GSTMode(req.Mode))
	if err != nil {
		return h.calculationError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CalculatorHandler) CalculateTDS(c echo.Context) error {
	var req TDSRequest

	if err := h.bind(c, &req); err != nil {
		return badRequest(c)
	}

	section, err := tax.ParseTDSSection(req.Section)
	if err != nil {
		return h.calculationError(c, err)
	}

	calc, err := h.calculator(c.Request().Context())
	if err != nil {
		return internalError(c)
	}

	result, err := calc.TDS(*req.Income, section)
	if err != nil {
		return h.calculationError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CalculatorHandler) CalculateGratuity(c echo.Context) error {
	var req GratuityRequest

	if err := h.bind(c, &req); err != nil {
		return badRequest(c)
	}

	result, err := h.base.Gratuity(*req.BasicSalary, *req.YearsOfService, req.CoveredUnderAct)
	if err != nil {
		return h.calculationError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// FinancialYear reports the financial and assessment year for ?date=
// (YYYY-MM-DD) or, without it, for today in IST.
func (h *CalculatorHandler) FinancialYear(c echo.Context) error {
	ref := h.now().In(IST)

	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, raw, IST)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseMsg{
				Message: "Invalid date, expected YYYY-MM-DD",
			})
		}
		ref = parsed
	}

	fy := tax.FinancialYearOf(ref)

	return c.JSON(http.StatusOK, FinancialYearResponse{
		Date:           ref.Format(time.DateOnly),
		FinancialYear:  fy,
		AssessmentYear: tax.AssessmentYearOf(ref),
		StartsOn:       fy.Start(IST).Format(time.DateOnly),
		EndsOn:         fy.End(IST).Format(time.DateOnly),
	})
}
