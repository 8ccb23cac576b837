package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
)

//go:embed migrations/*.sql
var migrations embed.FS

type DB struct {
	sqlDB *sql.DB
}

func NewDB(dbURL string) (*DB, error) {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

func (db *DB) GetSQLDB() *sql.DB {
	return db.sqlDB
}

func (db *DB) Ping(ctx context.Context) error {
	return db.sqlDB.PingContext(ctx)
}

func (db *DB) Close() error {
	return db.sqlDB.Close()
}

// Migrate creates the override tables and seeds them with the statutory
// defaults. Existing rows are left alone.
func (db *DB) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db.sqlDB, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

func (db *DB) FindAllDeductionLimits(ctx context.Context) ([]DeductionLimit, error) {
	var results []DeductionLimit

	rows, err := db.GetSQLDB().QueryContext(
		ctx,
		`
			SELECT code, max_amount FROM deduction_limits
		`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			code      string
			maxAmount decimal.Decimal
		)

		err = rows.Scan(&code, &maxAmount)
		if err != nil {
			return nil, err
		}

		results = append(results, DeductionLimit{
			Code:      code,
			MaxAmount: maxAmount,
		})
	}

	return results, rows.Err()
}

func (db *DB) FindAllTDSRates(ctx context.Context) ([]TDSRate, error) {
	var results []TDSRate

	rows, err := db.GetSQLDB().QueryContext(
		ctx,
		`
			SELECT section, rate FROM tds_rates
		`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			section string
			rate    decimal.Decimal
		)

		err = rows.Scan(&section, &rate)
		if err != nil {
			return nil, err
		}

		results = append(results, TDSRate{
			Section: section,
			Rate:    rate,
		})
	}

	return results, rows.Err()
}

func (db *DB) UpdateDeductionLimit(ctx context.Context, code string, amount decimal.Decimal) (DeductionLimit, error) {
	var result DeductionLimit

	err := db.GetSQLDB().QueryRowContext(
		ctx,
		`
			INSERT INTO deduction_limits (code, max_amount) VALUES ($1, $2)
			ON CONFLICT (code) DO UPDATE SET max_amount = EXCLUDED.max_amount
			RETURNING code, max_amount
		`,
		code, amount,
	).Scan(&result.Code, &result.MaxAmount)
	if err != nil {
		return DeductionLimit{}, err
	}

	return result, nil
}

func (db *DB) UpdateTDSRate(ctx context.Context, section string, rate decimal.Decimal) (TDSRate, error) {
	var result TDSRate

	err := db.GetSQLDB().QueryRowContext(
		ctx,
		`
			INSERT INTO tds_rates (section, rate) VALUES ($1, $2)
			ON CONFLICT (section) DO UPDATE SET rate = EXCLUDED.rate
			RETURNING section, rate
		`,
		section, rate,
	).Scan(&result.Section, &result.Rate)
	if err != nil {
		return TDSRate{}, err
	}

	return result, nil
}

type DeductionLimit struct {
	Code      string          `db:"code"`
	MaxAmount decimal.Decimal `db:"max_amount"`
}

// TDSRate holds a section rate in percent.
type TDSRate struct {
	Section string          `db:"section"`
	Rate    decimal.Decimal `db:"rate"`
}
