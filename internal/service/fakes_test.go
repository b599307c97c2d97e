package service

import (
	"context"
	"sync"

	"github.com/go-sql-driver/mysql"
	"github.com/questa-app/questa-backend/internal/model"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[uint64]*model.User
	nextID    uint64
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*model.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
		}
	}
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type completionKey struct {
	userID     uint64
	activityID uint64
}

type fakeActivityRepo struct {
	activities  map[uint64]*model.Activity
	users       *fakeUserRepo
	completions map[completionKey]bool
}

func newFakeActivityRepo(users *fakeUserRepo) *fakeActivityRepo {
	return &fakeActivityRepo{
		activities:  make(map[uint64]*model.Activity),
		users:       users,
		completions: make(map[completionKey]bool),
	}
}

func (f *fakeActivityRepo) FindByID(_ context.Context, id uint64) (*model.Activity, error) {
	a, ok := f.activities[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeActivityRepo) List(_ context.Context) ([]model.Activity, error) {
	list := make([]model.Activity, 0, len(f.activities))
	for id := uint64(1); id < uint64(len(f.activities))+1; id++ {
		if a, ok := f.activities[id]; ok {
			list = append(list, *a)
		}
	}
	return list, nil
}

func (f *fakeActivityRepo) Complete(_ context.Context, userID, activityID uint64, points int64) error {
	f.users.mu.Lock()
	defer f.users.mu.Unlock()
	u, ok := f.users.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Points += points
	f.completions[completionKey{userID, activityID}] = true
	return nil
}

func (f *fakeActivityRepo) CompletedActivityIDs(_ context.Context, userID uint64) (map[uint64]bool, error) {
	set := make(map[uint64]bool)
	for k := range f.completions {
		if k.userID == userID {
			set[k.activityID] = true
		}
	}
	return set, nil
}

type redemptionKey struct {
	userID   uint64
	rewardID uint64
}

type fakeRewardRepo struct {
	rewards     map[uint64]*model.Reward
	users       *fakeUserRepo
	redemptions map[redemptionKey]bool
}

func newFakeRewardRepo(users *fakeUserRepo) *fakeRewardRepo {
	return &fakeRewardRepo{
		rewards:     make(map[uint64]*model.Reward),
		users:       users,
		redemptions: make(map[redemptionKey]bool),
	}
}

func (f *fakeRewardRepo) FindByID(_ context.Context, id uint64) (*model.Reward, error) {
	r, ok := f.rewards[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRewardRepo) List(_ context.Context) ([]model.Reward, error) {
	list := make([]model.Reward, 0, len(f.rewards))
	for id := uint64(1); id < uint64(len(f.rewards))+1; id++ {
		if r, ok := f.rewards[id]; ok {
			list = append(list, *r)
		}
	}
	return list, nil
}

// Redeem mirrors the repository's compare-and-set contract: the balance
// check and debit happen under one lock, as the conditional UPDATE does in
// one statement.
func (f *fakeRewardRepo) Redeem(_ context.Context, userID, rewardID uint64, pointsNeeded int64) error {
	f.users.mu.Lock()
	defer f.users.mu.Unlock()
	u, ok := f.users.users[userID]
	if !ok || u.Points < pointsNeeded {
		return gorm.ErrRecordNotFound
	}
	u.Points -= pointsNeeded
	f.redemptions[redemptionKey{userID, rewardID}] = true
	return nil
}
