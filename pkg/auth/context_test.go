package auth

import (
	"context"
	"errors"
	"testing"
)

func TestWithPrincipal_PrincipalFromCtx(t *testing.T) {
	want := Principal{UserID: "u-1", Username: "asha", Role: "admin"}
	ctx := WithPrincipal(context.Background(), want)

	got, err := PrincipalFromCtx(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestPrincipalFromCtx_EmptyContext(t *testing.T) {
	_, err := PrincipalFromCtx(context.Background())
	if !errors.Is(err, ErrNoPrincipal) {
		t.Fatalf("expected ErrNoPrincipal, got %v", err)
	}
}

func TestPrincipalFromCtx_EmptyUserID(t *testing.T) {
	ctx := WithPrincipal(context.Background(), Principal{Username: "asha"})
	_, err := PrincipalFromCtx(ctx)
	if !errors.Is(err, ErrNoPrincipal) {
		t.Fatalf("expected ErrNoPrincipal for empty user id, got %v", err)
	}
}

func TestPrincipalFromCtx_Isolation(t *testing.T) {
	p1 := Principal{UserID: "u-1", Username: "asha", Role: "admin"}
	p2 := Principal{UserID: "u-2", Username: "ravi", Role: "tailor"}

	ctx1 := WithPrincipal(context.Background(), p1)
	ctx2 := WithPrincipal(context.Background(), p2)

	got1, _ := PrincipalFromCtx(ctx1)
	got2, _ := PrincipalFromCtx(ctx2)

	if got1 != p1 {
		t.Fatalf("ctx1: expected %+v, got %+v", p1, got1)
	}
	if got2 != p2 {
		t.Fatalf("ctx2: expected %+v, got %+v", p2, got2)
	}
}
