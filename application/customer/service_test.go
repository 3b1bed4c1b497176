package customer

import (
	"context"
	"testing"

	"dashboard/infrastructure/persistence/memory"
	apperrors "dashboard/pkg/errors"
)

func newService() *Service {
	return NewService(memory.NewCustomerRepository())
}

func createAda(t *testing.T, s *Service) *Response {
	t.Helper()
	created, err := s.Create(context.Background(), CreateRequest{
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		Password:    "secret",
		City:        "London",
		State:       "England",
		Country:     "GB",
		Occupation:  "engineer",
		PhoneNumber: "5551234",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return created
}

func TestCreateThenGetPreservesFields(t *testing.T) {
	s := newService()
	created := createAda(t, s)

	got, err := s.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if got.Name != "Ada Lovelace" || got.Email != "ada@example.com" ||
		got.Password != "secret" || got.City != "London" ||
		got.State != "England" || got.Country != "GB" ||
		got.Occupation != "engineer" || got.PhoneNumber != "5551234" {
		t.Errorf("fields not preserved verbatim: %+v", got)
	}
	if got.Role != "user" {
		t.Errorf("role = %q, want default user", got.Role)
	}
}

func TestCreateMissingRequiredFields(t *testing.T) {
	s := newService()
	_, err := s.Create(context.Background(), CreateRequest{Name: "A", Email: "a@b.com"})
	if !apperrors.Is(err, apperrors.CodeValidation) {
		t.Errorf("err = %v, want VALIDATION_ERROR", err)
	}
}

func TestCreateDuplicateEmailConflicts(t *testing.T) {
	s := newService()
	createAda(t, s)

	_, err := s.Create(context.Background(), CreateRequest{
		Name:     "Someone Else",
		Email:    "ada@example.com",
		Password: "other",
	})
	if !apperrors.Is(err, apperrors.CodeEmailExists) {
		t.Errorf("err = %v, want EMAIL_EXISTS", err)
	}
}

func TestGetUnknownIDNotFound(t *testing.T) {
	s := newService()
	_, err := s.Get(context.Background(), "missing")
	if !apperrors.Is(err, apperrors.CodeCustomerNotFound) {
		t.Errorf("err = %v, want CUSTOMER_NOT_FOUND", err)
	}
}

func TestListFiltersRoleAndStripsPassword(t *testing.T) {
	s := newService()
	createAda(t, s)
	if _, err := s.Create(context.Background(), CreateRequest{
		Name: "Root", Email: "root@example.com", Password: "pw", Role: "admin",
	}); err != nil {
		t.Fatalf("Create admin: %v", err)
	}

	users, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 1 || users[0].Email != "ada@example.com" {
		t.Errorf("List = %+v, want only the user-role record", users)
	}

	admins, err := s.Admins(context.Background())
	if err != nil {
		t.Fatalf("Admins: %v", err)
	}
	if len(admins) != 1 || admins[0].Email != "root@example.com" {
		t.Errorf("Admins = %+v, want only the admin record", admins)
	}
}

func TestUpdateMergesOnlySuppliedFields(t *testing.T) {
	s := newService()
	created := createAda(t, s)

	name := "Grace Hopper"
	updated, err := s.Update(context.Background(), created.ID, UpdateRequest{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Grace Hopper" {
		t.Errorf("name = %q, want Grace Hopper", updated.Name)
	}

	got, err := s.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if got.Name != "Grace Hopper" {
		t.Errorf("persisted name = %q, want Grace Hopper", got.Name)
	}
	if got.Email != created.Email || got.Country != created.Country ||
		got.Occupation != created.Occupation || got.Password != created.Password ||
		got.City != created.City {
		t.Error("fields outside the update changed")
	}
}

func TestUpdateUnknownIDNotFound(t *testing.T) {
	s := newService()
	name := "X"
	_, err := s.Update(context.Background(), "missing", UpdateRequest{Name: &name})
	if !apperrors.Is(err, apperrors.CodeCustomerNotFound) {
		t.Errorf("err = %v, want CUSTOMER_NOT_FOUND", err)
	}
}

func TestDeleteThenGetNotFound(t *testing.T) {
	s := newService()
	created := createAda(t, s)
	ctx := context.Background()

	if err := s.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, created.ID); !apperrors.Is(err, apperrors.CodeCustomerNotFound) {
		t.Errorf("Get after delete err = %v, want CUSTOMER_NOT_FOUND", err)
	}
	// The second delete also reports not-found.
	if err := s.Delete(ctx, created.ID); !apperrors.Is(err, apperrors.CodeCustomerNotFound) {
		t.Errorf("second Delete err = %v, want CUSTOMER_NOT_FOUND", err)
	}
}

func TestLogin(t *testing.T) {
	s := newService()
	createAda(t, s)
	ctx := context.Background()

	user, err := s.Login(ctx, "ada@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Name != "Ada Lovelace" || user.Email != "ada@example.com" {
		t.Errorf("login user = %+v", user)
	}

	// Whitespace around either side is ignored.
	if _, err := s.Login(ctx, "ada@example.com", "  secret  "); err != nil {
		t.Errorf("Login with padded password: %v", err)
	}

	if _, err := s.Login(ctx, "ada@example.com", "wrong"); !apperrors.Is(err, apperrors.CodeInvalidPassword) {
		t.Errorf("wrong password err = %v, want INVALID_PASSWORD", err)
	}
	if _, err := s.Login(ctx, "nobody@example.com", "secret"); !apperrors.Is(err, apperrors.CodeUserNotFound) {
		t.Errorf("unknown email err = %v, want USER_NOT_FOUND", err)
	}
}
