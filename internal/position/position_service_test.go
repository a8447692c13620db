package position_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Fritz24/Remunera/internal/position"
	positionerrors "github.com/Fritz24/Remunera/internal/position/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePositionRepository struct {
	createFn     func(ctx context.Context, row *position.Position) error
	findAllFn    func(ctx context.Context) ([]position.Position, error)
	findByIDFn   func(ctx context.Context, id string) (*position.Position, error)
	updateFn     func(ctx context.Context, row *position.Position) error
	deleteFn     func(ctx context.Context, id string) error
	countStaffFn func(ctx context.Context, id string) (int64, error)
}

func (f *fakePositionRepository) Create(ctx context.Context, row *position.Position) error {
	if f.createFn != nil {
		return f.createFn(ctx, row)
	}
	return nil
}

func (f *fakePositionRepository) FindAll(ctx context.Context) ([]position.Position, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakePositionRepository) FindByID(ctx context.Context, id string) (*position.Position, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePositionRepository) Update(ctx context.Context, row *position.Position) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, row)
	}
	return nil
}

func (f *fakePositionRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakePositionRepository) CountStaff(ctx context.Context, id string) (int64, error) {
	if f.countStaffFn != nil {
		return f.countStaffFn(ctx, id)
	}
	return 0, nil
}

func TestPositionService_Create(t *testing.T) {
	ctx := context.Background()

	var created *position.Position
	repo := &fakePositionRepository{
		createFn: func(ctx context.Context, row *position.Position) error {
			created = row
			return nil
		},
	}
	svc := position.NewService(repo, nil)

	resp, err := svc.Create(ctx, position.CreatePositionRequest{Title: "Cashier"})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, "Cashier", resp.Title)
}

func TestPositionService_Create_DuplicateTitle(t *testing.T) {
	ctx := context.Background()

	repo := &fakePositionRepository{
		createFn: func(ctx context.Context, row *position.Position) error {
			return errors.New(`pq: duplicate key value violates unique constraint "idx_position_title"`)
		},
	}
	svc := position.NewService(repo, nil)

	_, err := svc.Create(ctx, position.CreatePositionRequest{Title: "Cashier"})

	assert.ErrorIs(t, err, positionerrors.ErrDuplicateTitle)
}

func TestPositionService_Delete_InUse(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	repo := &fakePositionRepository{
		findByIDFn: func(ctx context.Context, pid string) (*position.Position, error) {
			return &position.Position{ID: uuid.MustParse(id), Title: "Manager"}, nil
		},
		countStaffFn: func(ctx context.Context, pid string) (int64, error) {
			return 4, nil
		},
	}
	svc := position.NewService(repo, nil)

	err := svc.Delete(ctx, id)

	assert.ErrorIs(t, err, positionerrors.ErrPositionInUse)
}

func TestPositionService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := position.NewService(&fakePositionRepository{}, nil)

	_, err := svc.GetByID(ctx, uuid.NewString())

	assert.ErrorIs(t, err, positionerrors.ErrPositionNotFound)
}

func TestPositionService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	repo := &fakePositionRepository{
		findByIDFn: func(ctx context.Context, pid string) (*position.Position, error) {
			return &position.Position{ID: id, Title: "Cashier"}, nil
		},
	}
	svc := position.NewService(repo, nil)

	title := "Senior Cashier"
	resp, err := svc.Update(ctx, id.String(), position.UpdatePositionRequest{Title: &title})

	assert.NoError(t, err)
	assert.Equal(t, "Senior Cashier", resp.Title)
}
