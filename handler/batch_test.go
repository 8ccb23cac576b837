package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateGSTWithCSV(t *testing.T) {
	type TC struct {
		name        string
		contentType string
		body        string
		wantStatus  int
		wantMessage string
		wantTotals  []string
	}

	tcs := []TC{
		{
			name:        "mixed modes",
			contentType: "text/csv",
			body:        "amount,rate,mode\n1000,18,exclusive\n118,18,inclusive\n500,0,exclusive\n",
			wantStatus:  http.StatusOK,
			wantTotals:  []string{"1180", "118", "500"},
		},
		{
			name:        "csv with charset",
			contentType: "text/csv; charset=utf-8",
			body:        "amount,rate,mode\n1000,18,exclusive\n",
			wantStatus:  http.StatusOK,
			wantTotals:  []string{"1180"},
		},
		{
			name:        "json body",
			contentType: echo.MIMEApplicationJSON,
			body:        `{"amount":1000}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Unacceptable content, require CSV content",
		},
		{
			name:        "ragged rows",
			contentType: "text/csv",
			body:        "amount,rate,mode\n1000,18\n",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Bad request, might not be csv format",
		},
		{
			name:        "header only",
			contentType: "text/csv",
			body:        "amount,rate,mode\n",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Wrong csv content, need a header and at least one row",
		},
		{
			name:        "wrong header",
			contentType: "text/csv",
			body:        "totalIncome,wht,donation\n1000,18,exclusive\n",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Wrong csv header",
		},
		{
			name:        "bad amount",
			contentType: "text/csv",
			body:        "amount,rate,mode\nabc,18,exclusive\n",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid amount",
		},
		{
			name:        "bad rate",
			contentType: "text/csv",
			body:        "amount,rate,mode\n1000,x,exclusive\n",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid rate",
		},
		{
			name:        "unknown mode",
			contentType: "text/csv",
			body:        "amount,rate,mode\n1000,18,both\n",
			wantStatus:  http.StatusBadRequest,
			wantMessage: `unsupported gst mode "both"`,
		},
		{
			name:        "huge amount",
			contentType: "text/csv",
			body:        "amount,rate,mode\n1e20000000,18,exclusive\n",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "amount is out of range",
		},
		{
			name:        "negative amount",
			contentType: "text/csv",
			body:        "amount,rate,mode\n-1,18,exclusive\n",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "amount must be > 0",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/calculators/gst/csv", strings.NewReader(tc.body))
			req.Header.Set(echo.HeaderContentType, tc.contentType)
			rec := httptest.NewRecorder()

			assert.NoError(t, newTestHandler(nil).CalculateGSTWithCSV(echo.New().NewContext(req, rec)))
			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus != http.StatusOK {
				assert.Equal(t, tc.wantMessage, decodeMessage(t, rec))
				return
			}

			var got GSTBatchResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.Len(t, got.Results, len(tc.wantTotals))

			for i, want := range tc.wantTotals {
				assert.Truef(t, got.Results[i].TotalAmount.Equal(decimal.RequireFromString(want)),
					"row %d: expected %s, but got %s", i, want, got.Results[i].TotalAmount)
			}
		})
	}
}
