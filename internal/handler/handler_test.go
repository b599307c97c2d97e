package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/questa-app/questa-backend/internal/authctx"
	"github.com/questa-app/questa-backend/internal/model"
	"github.com/questa-app/questa-backend/internal/service"
)

// fakeAccountService backs auth/account handler tests.
type fakeAccountService struct {
	users map[string]*model.User
}

func newFakeAccountService() *fakeAccountService {
	return &fakeAccountService{users: make(map[string]*model.User)}
}

func (f *fakeAccountService) Signup(_ context.Context, username, email, password string) (*model.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, service.ErrValidation
	}
	if _, ok := f.users[username]; ok {
		return nil, service.ErrUsernameTaken
	}
	u := &model.User{ID: uint64(len(f.users) + 1), Username: username, Email: email}
	f.users[username] = u
	return u, nil
}

func (f *fakeAccountService) Authenticate(_ context.Context, username, password string) (*model.User, error) {
	u, ok := f.users[username]
	if !ok || password != "pass123" {
		return nil, service.ErrInvalidCredentials
	}
	return u, nil
}

func (f *fakeAccountService) Get(_ context.Context, userID uint64) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, service.ErrNotFound
}

type fakeActivityService struct {
	activities map[uint64]service.ActivityForUser
	completed  []uint64
}

func (f *fakeActivityService) List(context.Context, uint64) ([]service.ActivityForUser, error) {
	list := make([]service.ActivityForUser, 0, len(f.activities))
	for id := uint64(1); id < uint64(len(f.activities))+1; id++ {
		if a, ok := f.activities[id]; ok {
			list = append(list, a)
		}
	}
	return list, nil
}

func (f *fakeActivityService) Get(_ context.Context, _, activityID uint64) (*service.ActivityForUser, error) {
	a, ok := f.activities[activityID]
	if !ok {
		return nil, service.ErrNotFound
	}
	return &a, nil
}

func (f *fakeActivityService) Complete(_ context.Context, _, activityID uint64) error {
	if _, ok := f.activities[activityID]; !ok {
		return service.ErrNotFound
	}
	f.completed = append(f.completed, activityID)
	return nil
}

type fakeRewardService struct {
	rewards      map[uint64]service.RewardForUser
	insufficient bool
}

func (f *fakeRewardService) List(context.Context, uint64) ([]service.RewardForUser, error) {
	list := make([]service.RewardForUser, 0, len(f.rewards))
	for id := uint64(1); id < uint64(len(f.rewards))+1; id++ {
		if r, ok := f.rewards[id]; ok {
			list = append(list, r)
		}
	}
	return list, nil
}

func (f *fakeRewardService) Redeem(_ context.Context, _, rewardID uint64) error {
	if _, ok := f.rewards[rewardID]; !ok {
		return service.ErrNotFound
	}
	if f.insufficient {
		return service.ErrInsufficientPoints
	}
	return nil
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func authed(c echo.Context, userID uint64) echo.Context {
	ctx := authctx.WithUserID(c.Request().Context(), userID)
	c.SetRequest(c.Request().WithContext(ctx))
	return c
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp DetailResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return resp.Detail
}
