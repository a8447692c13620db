package position

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	positionerrors "github.com/Fritz24/Remunera/internal/position/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const PositionAllKey = "positions:all"

type Service interface {
	Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	GetAll(ctx context.Context) ([]PositionResponse, error)
	GetByID(ctx context.Context, id string) (PositionResponse, error)
	Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
	rdb  *redis.Client
	sf   *singleflight.Group
}

func NewService(repo Repository, rdb *redis.Client) Service {
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}}
}

func (s *service) Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error) {
	row := Position{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, &row); err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	s.invalidateCache(ctx)
	return mapToResponse(row), nil
}

func (s *service) GetAll(ctx context.Context) ([]PositionResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, PositionAllKey).Result(); err == nil {
			var resp []PositionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(PositionAllKey, func() (interface{}, error) {
		rows, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]PositionResponse, len(rows))
		for i, r := range rows {
			resp[i] = mapToResponse(r)
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, PositionAllKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]PositionResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PositionResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PositionResponse{}, positionerrors.ErrPositionNotFound
		}
		return PositionResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PositionResponse{}, positionerrors.ErrPositionNotFound
		}
		return PositionResponse{}, err
	}

	if req.Title != nil {
		row.Title = *req.Title
	}
	if req.Description != nil {
		row.Description = req.Description
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	s.invalidateCache(ctx)
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return positionerrors.ErrPositionNotFound
		}
		return err
	}

	count, err := s.repo.CountStaff(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return positionerrors.ErrPositionInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb != nil {
		s.rdb.Del(ctx, PositionAllKey)
	}
}

func mapRepositoryError(err error) error {
	if strings.Contains(err.Error(), "duplicate key") {
		return positionerrors.ErrDuplicateTitle
	}
	return err
}

func mapToResponse(row Position) PositionResponse {
	return PositionResponse{
		ID:          row.ID.String(),
		Title:       row.Title,
		Description: row.Description,
	}
}
