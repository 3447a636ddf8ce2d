package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"max.ks1230/expense-tracker/internal/entity/month"
	"max.ks1230/expense-tracker/internal/entity/record"
)

// InMemStorage mirrors SQLStorage semantics without persistence.
type InMemStorage struct {
	mu         sync.RWMutex
	categories []record.Category
	expenses   []record.Expense
	budgets    map[string]decimal.Decimal
	goals      []record.SavingGoal
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{budgets: make(map[string]decimal.Decimal)}
}

func (s *InMemStorage) Close() error {
	return nil
}

func (s *InMemStorage) AddCategory(_ context.Context, name string) (record.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categoryByName(name); ok {
		return record.Category{}, errors.Errorf("add category: name %q is not unique", name)
	}
	c := record.Category{ID: int64(len(s.categories) + 1), Name: name}
	s.categories = append(s.categories, c)
	return c, nil
}

func (s *InMemStorage) CategoryByName(_ context.Context, name string) (record.Category, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categoryByName(name)
	return c, ok, nil
}

func (s *InMemStorage) categoryByName(name string) (record.Category, bool) {
	for _, c := range s.categories {
		if c.Name == name {
			return c, true
		}
	}
	return record.Category{}, false
}

func (s *InMemStorage) ListCategories(_ context.Context) ([]record.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]record.Category, len(s.categories))
	copy(res, s.categories)
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res, nil
}

func (s *InMemStorage) AddExpense(_ context.Context, rec record.Expense) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.CategoryID < 1 || rec.CategoryID > int64(len(s.categories)) {
		return 0, errors.Errorf("add expense: unknown category id %d", rec.CategoryID)
	}
	rec.ID = int64(len(s.expenses) + 1)
	s.expenses = append(s.expenses, rec)
	return rec.ID, nil
}

func (s *InMemStorage) ListExpenses(_ context.Context) ([]record.ExpenseView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exps := make([]record.ExpenseView, 0, len(s.expenses))
	for _, e := range s.expenses {
		date, err := time.Parse(month.DateLayout, e.Date)
		if err != nil {
			return nil, errors.Wrapf(err, "list expenses: stored date %q", e.Date)
		}
		exps = append(exps, record.ExpenseView{
			Amount:      e.Amount,
			Category:    s.categories[e.CategoryID-1].Name,
			Date:        date,
			Description: e.Description,
		})
	}
	sort.SliceStable(exps, func(i, j int) bool {
		return exps[i].Date.Before(exps[j].Date)
	})
	return exps, nil
}

func (s *InMemStorage) SumExpensesForMonth(_ context.Context, monthKey string) (decimal.NullDecimal, error) {
	key, err := month.Parse(monthKey)
	if err != nil {
		return decimal.NullDecimal{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	from, to := key.FirstDay(), key.Next().FirstDay()
	var sum decimal.NullDecimal
	for _, e := range s.expenses {
		if e.Date >= from && e.Date < to {
			sum.Decimal = sum.Decimal.Add(e.Amount)
			sum.Valid = true
		}
	}
	return sum, nil
}

func (s *InMemStorage) SetBudget(_ context.Context, monthKey string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.budgets[monthKey] = amount
	return nil
}

func (s *InMemStorage) GetBudget(_ context.Context, monthKey string) (decimal.NullDecimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	amount, ok := s.budgets[monthKey]
	if !ok {
		return decimal.NullDecimal{}, nil
	}
	return decimal.NewNullDecimal(amount), nil
}

func (s *InMemStorage) AddSavingGoal(_ context.Context, goal record.SavingGoal) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal.ID = int64(len(s.goals) + 1)
	s.goals = append(s.goals, goal)
	return goal.ID, nil
}
