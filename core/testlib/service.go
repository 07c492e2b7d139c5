package testlib

import (
	"context"

	"github.com/vianuedu/backend/core"
)

type (
	Repository interface {
		CheckTestIDUniqueness(ctx context.Context, id string) error
		CreateTest(ctx context.Context, test Test) (Test, error)
		GetTestByID(ctx context.Context, id string) (Test, error)
		QueryAllTests(ctx context.Context) ([]Test, error)
		// FilterTests applies an AND operation on available QueryFilter fields.
		FilterTests(ctx context.Context, filter QueryFilter) ([]Test, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nt NewTest) (Test, error) {
	test, err := New(nt)
	if err != nil {
		return Test{}, err
	}
	if err := svc.repo.CheckTestIDUniqueness(ctx, test.ID); err != nil {
		return Test{}, core.NewValidationError(err, core.FieldError{Field: "id", Error: err.Error()})
	}
	return svc.repo.CreateTest(ctx, test)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Test, error) {
	return svc.repo.QueryAllTests(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Test, error) {
	return svc.repo.GetTestByID(ctx, core.CleanString(id))
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Test, error) {
	return svc.repo.FilterTests(ctx, filter)
}

// Questions returns the decoded questions of a stored test, ordered by number.
func (svc *Service) Questions(ctx context.Context, id string) ([]Question, error) {
	test, err := svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return DecodeContents(test.Contents)
}

// Choices returns the choice strings of one question of a stored test.
func (svc *Service) Choices(ctx context.Context, id string, n int) ([]string, error) {
	test, err := svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return test.MultipleChoices(n)
}
