package services

import (
	"context"
	"errors"
	"testing"

	"myblog/internal/models"
	"myblog/internal/repository/memory"
)

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.New().Users())

	alice, err := svc.Create(ctx, models.CreateUserRequest{Username: "alice", Password: "secret"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if alice.Role != models.RoleUser {
		t.Fatalf("default role = %q", alice.Role)
	}

	got, err := svc.Login(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != alice.ID || got.Password != "secret" {
		t.Fatalf("login returned %+v", got)
	}

	for _, creds := range [][2]string{{"alice", "wrong"}, {"bob", "secret"}, {"Alice", "secret"}} {
		_, err := svc.Login(ctx, creds[0], creds[1])
		var ua *UnauthorizedError
		if !errors.As(err, &ua) {
			t.Fatalf("Login(%q, %q) err = %v, want UnauthorizedError", creds[0], creds[1], err)
		}
	}
}

func TestUserService_LoginDuplicatePairFirstWins(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.New().Users())

	first, _ := svc.Create(ctx, models.CreateUserRequest{Username: "alice", Password: "secret"})
	_, _ = svc.Create(ctx, models.CreateUserRequest{Username: "alice", Password: "secret", Role: models.RoleAdmin})

	got, err := svc.Login(ctx, "alice", "secret")
	if err != nil || got.ID != first.ID {
		t.Fatalf("login = %+v %v, want id %d", got, err, first.ID)
	}
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.New().Users())

	admin, _ := svc.Create(ctx, models.CreateUserRequest{Username: "root", Password: "pw", Role: models.RoleAdmin})

	got, err := svc.GetByID(ctx, admin.ID)
	if err != nil || got.Username != "root" || got.Role != models.RoleAdmin {
		t.Fatalf("get: %+v %v", got, err)
	}

	_, err = svc.GetByID(ctx, 77)
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Kind != UserNotFound {
		t.Fatalf("err = %v", err)
	}
}

func TestUserService_CreateValidation(t *testing.T) {
	svc := NewUserService(memory.New().Users())

	cases := []models.CreateUserRequest{
		{Password: "pw"},
		{Username: "x"},
		{Username: "x", Password: "pw", Role: "owner"},
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), req)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("Create(%+v) err = %v", req, err)
		}
	}
}
