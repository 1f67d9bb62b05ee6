package user

import (
	"context"
	"testing"
	"time"

	"github.com/attenda/timeclock-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	users        map[string]user.User
	lastPassword string
	lastActive   *bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]user.User)}
}

func (r *stubUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return user.User{}, user.ErrUsernameTaken
		}
	}
	u.ID = "user-" + u.Username
	u.CreatedAt = time.Now()
	r.users[u.ID] = u
	return u, nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *stubUserRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	r.users[id] = u
	r.lastPassword = passwordHash
	return nil
}

func (r *stubUserRepo) SetActive(ctx context.Context, id string, active bool) error {
	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.IsActive = active
	r.users[id] = u
	r.lastActive = &active
	return nil
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	resp, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
		Username:   "frontdesk",
		Password:   "correct-horse",
		Role:       "employee",
		EmployeeID: "5001",
	})
	require.NoError(t, err)

	assert.Equal(t, "frontdesk", resp.Username)
	assert.Equal(t, "employee", resp.Role)
	assert.Equal(t, "5001", resp.EmployeeID)
	assert.True(t, resp.IsActive)

	stored := repo.users[resp.ID]
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse")))
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	_, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
		Username: "frontdesk",
		Password: "correct-horse",
		Role:     "employee",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), user.CreateUserRequest{
		Username: "frontdesk",
		Password: "another-pass",
		Role:     "manager",
	})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}

func TestCreateUserValidatesInput(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	cases := []struct {
		name string
		req  user.CreateUserRequest
	}{
		{"unknown role", user.CreateUserRequest{Username: "frontdesk", Password: "correct-horse", Role: "superuser"}},
		{"short password", user.CreateUserRequest{Username: "frontdesk", Password: "short", Role: "employee"}},
		{"bad employee id", user.CreateUserRequest{Username: "frontdesk", Password: "correct-horse", Role: "employee", EmployeeID: "5001 SP"}},
		{"bad username", user.CreateUserRequest{Username: "a b", Password: "correct-horse", Role: "employee"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateUser(context.Background(), tc.req)
			assert.Error(t, err)
		})
	}
}

func TestResetPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	resp, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
		Username: "frontdesk",
		Password: "correct-horse",
		Role:     "employee",
	})
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), resp.ID, user.ResetPasswordRequest{Password: "battery-staple"})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.lastPassword), []byte("battery-staple")))

	err = svc.ResetPassword(context.Background(), resp.ID, user.ResetPasswordRequest{Password: "short"})
	assert.Error(t, err)

	err = svc.ResetPassword(context.Background(), "missing", user.ResetPasswordRequest{Password: "battery-staple"})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestSetUserStatus(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	resp, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
		Username: "frontdesk",
		Password: "correct-horse",
		Role:     "employee",
	})
	require.NoError(t, err)

	err = svc.SetUserStatus(context.Background(), resp.ID, user.SetUserStatusRequest{Active: false})
	require.NoError(t, err)
	assert.False(t, repo.users[resp.ID].IsActive)

	err = svc.SetUserStatus(context.Background(), resp.ID, user.SetUserStatusRequest{Active: true})
	require.NoError(t, err)
	assert.True(t, repo.users[resp.ID].IsActive)
}

func TestSetUserStatusProtectsAdmins(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	resp, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
		Username: "root",
		Password: "correct-horse",
		Role:     "admin",
	})
	require.NoError(t, err)

	err = svc.SetUserStatus(context.Background(), resp.ID, user.SetUserStatusRequest{Active: false})
	assert.ErrorIs(t, err, user.ErrCannotDeactivateAdmin)
	assert.True(t, repo.users[resp.ID].IsActive)
}
