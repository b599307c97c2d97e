package service

import (
	"context"
	"errors"

	"github.com/questa-app/questa-backend/internal/model"
	"github.com/questa-app/questa-backend/internal/repository"
	"gorm.io/gorm"
)

var ErrInsufficientPoints = errors.New("insufficient points")

const (
	ActionRedeem   = "Redeem"
	ActionEarnMore = "Earn more"
)

type RewardService interface {
	List(ctx context.Context, userID uint64) ([]RewardForUser, error)
	Redeem(ctx context.Context, userID, rewardID uint64) error
}

// RewardForUser is a reward annotated with whether the caller can afford it.
type RewardForUser struct {
	Reward      model.Reward
	CanPurchase bool
	Action      string
}

type rewardService struct {
	rewardRepo repository.RewardRepository
	userRepo   repository.UserRepository
}

func NewRewardService(rewardRepo repository.RewardRepository, userRepo repository.UserRepository) RewardService {
	return &rewardService{rewardRepo: rewardRepo, userRepo: userRepo}
}

func (s *rewardService) List(ctx context.Context, userID uint64) ([]RewardForUser, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	rewards, err := s.rewardRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]RewardForUser, 0, len(rewards))
	for _, r := range rewards {
		canPurchase := u.Points >= r.PointsNeeded
		action := ActionEarnMore
		if canPurchase {
			action = ActionRedeem
		}
		resp = append(resp, RewardForUser{Reward: r, CanPurchase: canPurchase, Action: action})
	}
	return resp, nil
}

// Redeem debits the reward's cost from the user's balance. Redeeming twice
// debits twice; only the membership row is idempotent.
func (s *rewardService) Redeem(ctx context.Context, userID, rewardID uint64) error {
	r, err := s.rewardRepo.FindByID(ctx, rewardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.rewardRepo.Redeem(ctx, userID, rewardID, r.PointsNeeded); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInsufficientPoints
		}
		return err
	}
	return nil
}
