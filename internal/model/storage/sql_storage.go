package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	// sqlite driver
	_ "modernc.org/sqlite"

	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/entity/month"
	"max.ks1230/expense-tracker/internal/entity/record"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	dsnTemplate   = "user=%s password=%s host=%s dbname=%s sslmode=disable"
	sqlitePragmas = "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
)

type dbConfig interface {
	Driver() string
	Path() string
	Host() string
	Username() string
	Password() string
	Database() string
}

// SQLStorage keeps every record in a relational database. The handle is
// opened once by NewSQLStorage and released by Close.
type SQLStorage struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

func NewSQLStorage(cfg dbConfig) (*SQLStorage, error) {
	driver, dsn, err := dataSource(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}

	if err = runMigrations(driver, dsn); err != nil {
		return nil, errors.Wrap(err, "cannot prepare database schema")
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "cannot connect to database")
	}

	logger.Info("storage opened", zap.String("driver", driver))
	return &SQLStorage{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholders(driver)),
	}, nil
}

func dataSource(cfg dbConfig) (driver, dsn string, err error) {
	switch cfg.Driver() {
	case config.DriverPostgres:
		return config.DriverPostgres, fmt.Sprintf(dsnTemplate,
			cfg.Username(),
			cfg.Password(),
			cfg.Host(),
			cfg.Database()), nil
	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.Path()); dir != "." {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return "", "", errors.Wrap(err, "create database directory")
			}
		}
		return config.DriverSQLite, cfg.Path() + sqlitePragmas, nil
	default:
		return "", "", fmt.Errorf("unsupported sql driver %s", cfg.Driver())
	}
}

func placeholders(driver string) sq.PlaceholderFormat {
	if driver == config.DriverPostgres {
		return sq.Dollar
	}
	return sq.Question
}

func (s *SQLStorage) Close() error {
	return errors.Wrap(s.db.Close(), "close storage")
}

func (s *SQLStorage) AddCategory(ctx context.Context, name string) (record.Category, error) {
	query := s.builder.Insert("categories").
		Columns("name").
		Values(name).
		Suffix("RETURNING id")

	res := record.Category{Name: name}
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&res.ID)
	if err != nil {
		return record.Category{}, errors.Wrap(err, "add category")
	}
	return res, nil
}

func (s *SQLStorage) CategoryByName(ctx context.Context, name string) (record.Category, bool, error) {
	query := s.builder.Select("id", "name").
		From("categories").
		Where(sq.Eq{"name": name})

	var res record.Category
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&res.ID, &res.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return record.Category{}, false, nil
	}
	if err != nil {
		return record.Category{}, false, errors.Wrap(err, "get category")
	}
	return res, true, nil
}

func (s *SQLStorage) ListCategories(ctx context.Context) ([]record.Category, error) {
	query := s.builder.Select("id", "name").
		From("categories").
		OrderBy("name")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	defer closeRows(rows)

	res := make([]record.Category, 0)
	for rows.Next() {
		var c record.Category
		if err = rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, errors.Wrap(err, "list categories")
		}
		res = append(res, c)
	}
	return res, errors.Wrap(rows.Err(), "list categories")
}

func (s *SQLStorage) AddExpense(ctx context.Context, rec record.Expense) (int64, error) {
	query := s.builder.Insert("expenses").
		Columns("amount", "category_id", "date", "description").
		Values(rec.Amount, rec.CategoryID, rec.Date, rec.Description).
		Suffix("RETURNING id")

	var id int64
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "add expense")
	}
	return id, nil
}

func (s *SQLStorage) ListExpenses(ctx context.Context) ([]record.ExpenseView, error) {
	query := s.builder.Select("e.amount", "c.name", "e.date", "e.description").
		From("expenses e").
		Join("categories c ON c.id = e.category_id").
		OrderBy("e.date", "e.id")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list expenses")
	}
	defer closeRows(rows)

	exps := make([]record.ExpenseView, 0)
	for rows.Next() {
		var (
			e    record.ExpenseView
			date string
		)
		if err = rows.Scan(&e.Amount, &e.Category, &date, &e.Description); err != nil {
			return nil, errors.Wrap(err, "list expenses")
		}
		e.Date, err = time.Parse(month.DateLayout, date)
		if err != nil {
			return nil, errors.Wrapf(err, "list expenses: stored date %q", date)
		}
		exps = append(exps, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list expenses")
	}
	return exps, nil
}

// SumExpensesForMonth adds up the expenses dated inside the month. The result
// is invalid (SQL NULL) when no expense matches, including malformed keys.
func (s *SQLStorage) SumExpensesForMonth(ctx context.Context, monthKey string) (decimal.NullDecimal, error) {
	key, err := month.Parse(monthKey)
	if err != nil {
		return decimal.NullDecimal{}, nil
	}

	query := s.builder.Select("amount").
		From("expenses").
		Where(sq.And{
			sq.GtOrEq{"date": key.FirstDay()},
			sq.Lt{"date": key.Next().FirstDay()},
		})

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return decimal.NullDecimal{}, errors.Wrap(err, "sum expenses")
	}
	defer closeRows(rows)

	var sum decimal.NullDecimal
	for rows.Next() {
		var amount decimal.Decimal
		if err = rows.Scan(&amount); err != nil {
			return decimal.NullDecimal{}, errors.Wrap(err, "sum expenses")
		}
		sum.Decimal = sum.Decimal.Add(amount)
		sum.Valid = true
	}
	if err = rows.Err(); err != nil {
		return decimal.NullDecimal{}, errors.Wrap(err, "sum expenses")
	}
	return sum, nil
}

func (s *SQLStorage) SetBudget(ctx context.Context, monthKey string, amount decimal.Decimal) error {
	query := s.builder.Insert("budgets").
		Columns("month", "amount").
		Values(monthKey, amount).
		Suffix("ON CONFLICT(month) DO UPDATE SET amount = excluded.amount")

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "set budget")
}

func (s *SQLStorage) GetBudget(ctx context.Context, monthKey string) (decimal.NullDecimal, error) {
	query := s.builder.Select("amount").
		From("budgets").
		Where(sq.Eq{"month": monthKey})

	var res decimal.NullDecimal
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&res)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.NullDecimal{}, nil
	}
	if err != nil {
		return decimal.NullDecimal{}, errors.Wrap(err, "get budget")
	}
	return res, nil
}

func (s *SQLStorage) AddSavingGoal(ctx context.Context, goal record.SavingGoal) (int64, error) {
	query := s.builder.Insert("saving_goals").
		Columns("name", "amount").
		Values(goal.Name, goal.Amount).
		Suffix("RETURNING id")

	var id int64
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "add saving goal")
	}
	return id, nil
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logger.Error("error closing rows", zap.Error(err))
	}
}
