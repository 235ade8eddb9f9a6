package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/account"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo keeps users keyed by username.
type fakeUserRepo struct {
	users map[string]account.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]account.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user account.User) (account.User, error) {
	if _, ok := f.users[user.Username]; ok {
		return account.User{}, account.ErrUsernameExists
	}
	user.ID = int64(len(f.users) + 1)
	f.users[user.Username] = user
	return user, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (account.User, error) {
	user, ok := f.users[username]
	if !ok {
		return account.User{}, account.ErrUserNotFound
	}
	return user, nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), account.User{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         "employee",
		EmployeeID:   7,
	})
	require.NoError(t, err)
}

func TestAccountService_Login_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	seedUser(t, userRepo, "jdoe@example.com", "password123")
	svc := NewAccountService(nil, userRepo, nil)

	resp, err := svc.Login(ctx, account.LoginRequest{Username: "jdoe@example.com", Password: "password123"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.EmployeeID)
	assert.Equal(t, "employee", resp.Role)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	seedUser(t, userRepo, "jdoe@example.com", "password123")
	svc := NewAccountService(nil, userRepo, nil)

	_, err := svc.Login(ctx, account.LoginRequest{Username: "jdoe@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestAccountService_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := NewAccountService(nil, newFakeUserRepo(), nil)

	_, err := svc.Login(ctx, account.LoginRequest{Username: "nobody@example.com", Password: "password123"})

	// An unknown username reads the same as a bad password.
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestAccountService_Login_MissingFields(t *testing.T) {
	ctx := context.Background()
	svc := NewAccountService(nil, newFakeUserRepo(), nil)

	_, err := svc.Login(ctx, account.LoginRequest{})

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "username")
	assert.Contains(t, errs.ToMap(), "password")
}

func TestSignupRequest_Validate(t *testing.T) {
	valid := account.SignupRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		Password:    "secret",
		AccountType: "employee",
	}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*account.SignupRequest)
		field  string
	}{
		{"missing first_name", func(r *account.SignupRequest) { r.FirstName = "" }, "first_name"},
		{"missing email", func(r *account.SignupRequest) { r.Email = "" }, "email"},
		{"malformed email", func(r *account.SignupRequest) { r.Email = "not-an-email" }, "email"},
		{"missing password", func(r *account.SignupRequest) { r.Password = "" }, "password"},
		{"unknown account_type", func(r *account.SignupRequest) { r.AccountType = "manager" }, "account_type"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := valid
			c.mutate(&req)

			err := req.Validate()
			var errs validator.ValidationErrors
			assert.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.field)
		})
	}
}
