package customer

import (
	"errors"
	"testing"
)

func TestNewRequiresNameEmailPassword(t *testing.T) {
	cases := []CreateFields{
		{Email: "a@b.com", Password: "pw"},
		{Name: "A", Password: "pw"},
		{Name: "A", Email: "a@b.com"},
		{},
	}
	for _, fields := range cases {
		if _, err := New(fields); !errors.Is(err, ErrMissingRequiredFields) {
			t.Errorf("New(%+v) err = %v, want ErrMissingRequiredFields", fields, err)
		}
	}
}

func TestNewDefaultsRole(t *testing.T) {
	c, err := New(CreateFields{Name: "Ada", Email: "ada@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Role() != RoleUser {
		t.Errorf("role = %q, want %q", c.Role(), RoleUser)
	}
	if c.ID() == "" {
		t.Error("id not assigned")
	}
}

func TestNewRejectsUnknownRole(t *testing.T) {
	_, err := New(CreateFields{Name: "Ada", Email: "ada@example.com", Password: "pw", Role: "root"})
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("err = %v, want ErrInvalidRole", err)
	}
}

func TestApplyMergesOnlySuppliedFields(t *testing.T) {
	c, err := New(CreateFields{
		Name: "Ada", Email: "ada@example.com", Password: "pw",
		City: "London", Country: "GB", Occupation: "engineer",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	name := "Grace"
	if err := c.Apply(UpdateFields{Name: &name}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if c.Name() != "Grace" {
		t.Errorf("name = %q, want Grace", c.Name())
	}
	if c.Email() != "ada@example.com" || c.Country() != "GB" || c.Occupation() != "engineer" {
		t.Error("untouched fields changed during partial update")
	}
	if c.Password() != "pw" || c.City() != "London" {
		t.Error("fields outside the update surface changed")
	}
}

func TestApplyRejectsInvalidRole(t *testing.T) {
	c, _ := New(CreateFields{Name: "Ada", Email: "ada@example.com", Password: "pw"})
	bad := "root"
	if err := c.Apply(UpdateFields{Role: &bad}); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("err = %v, want ErrInvalidRole", err)
	}
}

func TestRebuildRoundTrip(t *testing.T) {
	c, _ := New(CreateFields{Name: "Ada", Email: "ada@example.com", Password: "pw", Role: "admin"})
	rebuilt := RebuildFromDTO(ReconstructionDTO{
		ID: c.ID(), Name: c.Name(), Email: c.Email(), Password: c.Password(),
		City: c.City(), State: c.State(), Country: c.Country(),
		Occupation: c.Occupation(), PhoneNumber: c.PhoneNumber(),
		Role: string(c.Role()), CreatedAt: c.CreatedAt(), UpdatedAt: c.UpdatedAt(),
	})
	if rebuilt.ID() != c.ID() || rebuilt.Email() != c.Email() || rebuilt.Role() != RoleAdmin {
		t.Error("rebuilt record does not match original")
	}
}
