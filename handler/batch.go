package handler

import (
	"encoding/csv"
	"mime"
	"net/http"

	"github.com/finucity/finucity-calc/tax"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type GSTBatchResponse struct {
	Results []tax.GSTResult `json:"results"`
}

// CalculateGSTWithCSV runs the GST calculator once per CSV row. The body
// must carry the header amount,rate,mode. Any bad row rejects the batch.
func (h *CalculatorHandler) CalculateGSTWithCSV(c echo.Context) error {
	mediaType, _, err := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))
	if err != nil || mediaType != "text/csv" {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Unacceptable content, require CSV content",
		})
	}

	rows, err := csv.NewReader(c.Request().Body).ReadAll()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Bad request, might not be csv format",
		})
	}

	if len(rows) < 2 {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Wrong csv content, need a header and at least one row",
		})
	}

	header := rows[0]
	if len(header) != 3 || header[0] != "amount" || header[1] != "rate" || header[2] != "mode" {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Wrong csv header",
		})
	}

	results := make([]tax.GSTResult, 0, len(rows)-1)

	for _, row := range rows[1:] {
		amount, err := decimal.NewFromString(row[0])
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseMsg{
				Message: "Invalid amount",
			})
		}

		rate, err := decimal.NewFromString(row[1])
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseMsg{
				Message: "Invalid rate",
			})
		}

		mode, err := tax.ParseGSTMode(row[2])
		if err != nil {
			return h.calculationError(c, err)
		}

		result, err := tax.GST(amount, rate, mode)
		if err != nil {
			return h.calculationError(c, err)
		}

		results = append(results, result)
	}

	return c.JSON(http.StatusOK, GSTBatchResponse{
		Results: results,
	})
}
