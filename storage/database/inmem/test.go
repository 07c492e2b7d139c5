package inmem

import (
	"context"
	"sort"

	"github.com/vianuedu/backend/core/testlib"
)

type testRepository struct {
	db *testTable
}

var _ testlib.Repository = (*testRepository)(nil) // interface compliance check

func NewTestRepository(db *DB) testlib.Repository {
	return &testRepository{db: db.test}
}

func (repo *testRepository) query() []testlib.Test {
	tests := make([]testlib.Test, 0, len(repo.db.table))
	for _, test := range repo.db.table {
		tests = append(tests, *test)
	}
	sort.Slice(tests, func(i, j int) bool { return tests[i].ID < tests[j].ID })
	return tests
}

func (repo *testRepository) CheckTestIDUniqueness(ctx context.Context, id string) error {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if _, ok := repo.db.table[id]; ok {
		return testlib.ErrIDExists
	}
	return nil
}

func (repo *testRepository) CreateTest(ctx context.Context, test testlib.Test) (testlib.Test, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[test.ID]; ok {
		return testlib.Test{}, testlib.ErrIDExists
	}
	repo.db.table[test.ID] = &test
	return test, nil
}

func (repo *testRepository) GetTestByID(ctx context.Context, id string) (testlib.Test, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if test, ok := repo.db.table[id]; ok {
		return *test, nil
	}
	return testlib.Test{}, testlib.ErrNotFound
}

func (repo *testRepository) QueryAllTests(ctx context.Context) ([]testlib.Test, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	return repo.query(), nil
}

func (repo *testRepository) FilterTests(ctx context.Context, filter testlib.QueryFilter) ([]testlib.Test, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	tests := make([]testlib.Test, 0)
	for _, test := range repo.query() {
		if filter.Course != "" && test.Course != filter.Course {
			continue
		}
		if filter.Grade != "" && test.Grade != filter.Grade {
			continue
		}
		tests = append(tests, test)
	}
	return tests, nil
}
