package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/questa-app/questa-backend/internal/model"
	"github.com/questa-app/questa-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const mysqlErrDuplicateEntry = 1062

var ErrValidation = errors.New("username and password are required")
var ErrUsernameTaken = errors.New("username already taken")
var ErrInvalidCredentials = errors.New("invalid credentials")

type AccountService interface {
	Signup(ctx context.Context, username, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	Get(ctx context.Context, userID uint64) (*model.User, error)
}

type accountService struct {
	userRepo repository.UserRepository
}

func NewAccountService(userRepo repository.UserRepository) AccountService {
	return &accountService{userRepo: userRepo}
}

// Signup creates a user with a zero point balance. The balance is mutated
// only by the activity/reward ledger afterwards.
func (s *accountService) Signup(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || password == "" {
		return nil, ErrValidation
	}

	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Points:       0,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		// The unique index can still reject a racing duplicate; map only
		// that case so transient failures don't masquerade as a taken name.
		if isDuplicateEntry(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}

func isDuplicateEntry(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlErrDuplicateEntry {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func (s *accountService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *accountService) Get(ctx context.Context, userID uint64) (*model.User, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
