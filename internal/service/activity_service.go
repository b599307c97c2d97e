package service

import (
	"context"
	"errors"

	"github.com/questa-app/questa-backend/internal/model"
	"github.com/questa-app/questa-backend/internal/repository"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

type ActivityService interface {
	List(ctx context.Context, userID uint64) ([]ActivityForUser, error)
	Get(ctx context.Context, userID, activityID uint64) (*ActivityForUser, error)
	Complete(ctx context.Context, userID, activityID uint64) error
}

// ActivityForUser is an activity annotated with the caller's completion state.
type ActivityForUser struct {
	Activity  model.Activity
	Completed bool
}

type activityService struct {
	activityRepo repository.ActivityRepository
}

func NewActivityService(activityRepo repository.ActivityRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

func (s *activityService) List(ctx context.Context, userID uint64) ([]ActivityForUser, error) {
	activities, err := s.activityRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := s.activityRepo.CompletedActivityIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]ActivityForUser, 0, len(activities))
	for _, a := range activities {
		resp = append(resp, ActivityForUser{Activity: a, Completed: completed[a.ID]})
	}
	return resp, nil
}

func (s *activityService) Get(ctx context.Context, userID, activityID uint64) (*ActivityForUser, error) {
	a, err := s.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	completed, err := s.activityRepo.CompletedActivityIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ActivityForUser{Activity: *a, Completed: completed[a.ID]}, nil
}

// Complete credits the activity's points to the user. There is no guard
// against repeat completion: calling this twice credits twice, while the
// membership row stays unique.
func (s *activityService) Complete(ctx context.Context, userID, activityID uint64) error {
	a, err := s.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.activityRepo.Complete(ctx, userID, activityID, a.Points); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
