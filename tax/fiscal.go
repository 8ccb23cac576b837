package tax

import (
	"fmt"
	"time"
)

// FinancialYear is an Indian fiscal year running 1 April to 31 March,
// identified by the calendar year it starts in.
type FinancialYear struct {
	StartYear int
}

// FinancialYearOf returns the year containing ref, evaluated in ref's
// location. Callers pick the clock; nothing here reads time.Now.
func FinancialYearOf(ref time.Time) FinancialYear {
	y := ref.Year()
	if ref.Month() < time.April {
		y--
	}
	return FinancialYear{StartYear: y}
}

// AssessmentYearOf returns the year in which income earned during the
// financial year containing ref is assessed.
func AssessmentYearOf(ref time.Time) FinancialYear {
	return FinancialYearOf(ref).Next()
}

func (fy FinancialYear) Next() FinancialYear {
	return FinancialYear{StartYear: fy.StartYear + 1}
}

func (fy FinancialYear) Start(loc *time.Location) time.Time {
	return time.Date(fy.StartYear, time.April, 1, 0, 0, 0, 0, loc)
}

// End returns the last instant of 31 March.
func (fy FinancialYear) End(loc *time.Location) time.Time {
	return fy.Next().Start(loc).Add(-time.Nanosecond)
}

func (fy FinancialYear) String() string {
	return fmt.Sprintf("%d-%02d", fy.StartYear, (fy.StartYear+1)%100)
}

func (fy FinancialYear) MarshalText() ([]byte, error) {
	return []byte(fy.String()), nil
}
