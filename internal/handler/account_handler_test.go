package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/questa-app/questa-backend/internal/model"
)

func TestMyAccount(t *testing.T) {
	accounts := newFakeAccountService()
	accounts.users["alice"] = &model.User{ID: 1, Username: "alice", Email: "a@example.com", Points: 17}
	h := NewAccountHandler(accounts)

	c, rec := newJSONContext(t, http.MethodGet, "/api/my-account", "")
	c = authed(c, 1)

	if err := h.MyAccount(c); err != nil {
		t.Fatalf("MyAccount: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d want 200", rec.Code)
	}
	var resp AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Username != "alice" || resp.Email != "a@example.com" || resp.Points != 17 {
		t.Fatalf("resp=%+v", resp)
	}
}

func TestMyAccountUnauthenticatedContext(t *testing.T) {
	h := NewAccountHandler(newFakeAccountService())
	c, rec := newJSONContext(t, http.MethodGet, "/api/my-account", "")

	if err := h.MyAccount(c); err != nil {
		t.Fatalf("MyAccount: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d want 401", rec.Code)
	}
}
