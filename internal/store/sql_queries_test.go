package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/psantos/go-accounts/models"
)

func strPtr(s string) *string { return &s }

func TestBuildUpdateQuery_AllFields(t *testing.T) {
	query, args, err := buildUpdateQuery(7, models.UserUpdate{
		Name:         strPtr("New Name"),
		Email:        strPtr("new@x.com"),
		PasswordHash: strPtr("$2a$12$newhash"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, fragment := range []string{"UPDATE users", "name = ", "email = ", "password_hash = ", "updated_at = NOW()", "WHERE user_id = ", "RETURNING"} {
		if !strings.Contains(query, fragment) {
			t.Errorf("expected query to contain %q, got:\n%s", fragment, query)
		}
	}

	// 3 field values + user_id
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %d: %v", len(args), args)
	}
}

func TestBuildUpdateQuery_SingleField(t *testing.T) {
	query, args, err := buildUpdateQuery(7, models.UserUpdate{Name: strPtr("Only Name")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(query, "email = ") || strings.Contains(query, "password_hash = ") {
		t.Errorf("unset fields must not appear in SET clause:\n%s", query)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d: %v", len(args), args)
	}
}

func TestBuildUpdateQuery_DollarPlaceholders(t *testing.T) {
	query, _, err := buildUpdateQuery(1, models.UserUpdate{Name: strPtr("x")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "$1") {
		t.Errorf("expected PostgreSQL dollar placeholders, got:\n%s", query)
	}
}

func TestBuildUpdateQuery_Empty(t *testing.T) {
	_, _, err := buildUpdateQuery(7, models.UserUpdate{})
	if !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}
}
