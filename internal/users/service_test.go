package users

import (
	"context"
	"errors"
	"testing"
)

func TestUpsertFromAuthStoresProfile(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	u, err := svc.UpsertFromAuth(context.Background(), Identity{
		ID: "u1", Name: "Jane Doe", Email: "jane@example.com",
	})
	if err != nil {
		t.Fatalf("UpsertFromAuth: %v", err)
	}
	if u.ID != "u1" || u.Name != "Jane Doe" {
		t.Fatalf("unexpected user %+v", u)
	}

	stored, err := svc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Email != "jane@example.com" {
		t.Fatalf("unexpected stored email %q", stored.Email)
	}
}

func TestUpsertFromAuthPreservesCreatedAt(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	first, err := svc.UpsertFromAuth(context.Background(), Identity{ID: "u1", Name: "Jane"})
	if err != nil {
		t.Fatalf("UpsertFromAuth: %v", err)
	}

	second, err := svc.UpsertFromAuth(context.Background(), Identity{ID: "u1", Name: "Jane D."})
	if err != nil {
		t.Fatalf("UpsertFromAuth: %v", err)
	}
	if second.Name != "Jane D." {
		t.Fatalf("expected refreshed name, got %q", second.Name)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatal("expected CreatedAt to be preserved on upsert")
	}
}

func TestUpsertFromAuthRequiresIdentity(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	if _, err := svc.UpsertFromAuth(context.Background(), Identity{}); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestGetMissing(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{"stored name wins", User{Name: "Jane", Email: "jane@example.com"}, "Jane"},
		{"anonymous", User{IsAnonymous: true}, "Guest User"},
		{"email local part", User{Email: "jane@example.com"}, "jane"},
		{"bare fallback", User{}, "User"},
		{"malformed email", User{Email: "@example.com"}, "User"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.user); got != tt.want {
				t.Fatalf("DisplayName(%+v) = %q, want %q", tt.user, got, tt.want)
			}
		})
	}
}
