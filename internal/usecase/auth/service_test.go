package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-forge/internal/domain/user"
)

type memoryUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User

	createErr error
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		byID:    map[uuid.UUID]user.User{},
		byEmail: map[string]user.User{},
	}
}

func (r *memoryUserRepo) Create(_ context.Context, u user.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *memoryUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(newMemoryUserRepo())
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{
		Email:    "Dev@Example.com",
		Password: "s3cret-password",
		FullName: "  Jane Smith ",
	})
	require.NoError(t, err)

	assert.Equal(t, "dev@example.com", created.Email, "emails are stored lowercased")
	assert.Equal(t, "Jane Smith", created.FullName)
	assert.Empty(t, created.PasswordHash, "hash never leaves the service")

	logged, err := svc.Login(ctx, LoginInput{Email: "dev@example.com", Password: "s3cret-password"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, logged.ID)
	assert.Empty(t, logged.PasswordHash)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	svc := NewService(newMemoryUserRepo())
	ctx := context.Background()

	cases := []RegisterInput{
		{Email: "", Password: "s3cret-password"},
		{Email: "not-an-email", Password: "s3cret-password"},
		{Email: "dev@example.com", Password: "short"},
		{Email: "dev@example.com", Password: "        "},
	}
	for _, in := range cases {
		_, err := svc.Register(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %+v", in)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(newMemoryUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "dev@example.com", Password: "s3cret-password"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Email: "DEV@example.com", Password: "s3cret-password"})
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := NewService(newMemoryUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "dev@example.com", Password: "s3cret-password"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginInput{Email: "dev@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewService(newMemoryUserRepo())

	_, err := svc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRepositoryFailure(t *testing.T) {
	repo := newMemoryUserRepo()
	repo.createErr = errors.New("db down")
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{Email: "dev@example.com", Password: "s3cret-password"})
	assert.ErrorIs(t, err, ErrInternal)
}
