package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"wedding/internal/core"
	"wedding/internal/storage"
)

func newTestService(t *testing.T) *GuestService {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "wedding_test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	svc := NewGuestService(repo)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestCreateNormalizesKhmerNumerals(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, GuestInput{
		Name:    "លោក សុខ",
		KHR:     "១,២៣៤",
		USD:     "១០.៥",
		Address: "កំពង់ចាម",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	g, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if g.KHR != 1234 {
		t.Fatalf("KHR = %d, want 1234", g.KHR)
	}
	if g.USD != 10.5 {
		t.Fatalf("USD = %v, want 10.5", g.USD)
	}
}

func TestCreateEmptyAmountsDefaultToZero(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, GuestInput{Name: "no gift recorded"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	g, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if g.KHR != 0 || g.USD != 0 {
		t.Fatalf("empty amounts should default to zero, got khr=%d usd=%v", g.KHR, g.USD)
	}
}

func TestCreateRejectsWithoutTouchingStore(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   GuestInput
	}{
		{"empty name", GuestInput{KHR: "1000"}},
		{"bad khr", GuestInput{Name: "x", KHR: "lots"}},
		{"bad usd", GuestInput{Name: "x", USD: "10.0.0"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tc.in); !errors.Is(err, core.ErrInvalidInput) {
				t.Fatalf("Create = %v, want ErrInvalidInput", err)
			}
		})
	}

	sum, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.Guests != 0 {
		t.Fatalf("rejected inputs reached the store: %d rows", sum.Guests)
	}
}

func TestUpdateReplacesAllFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, GuestInput{Name: "before", KHR: "100", USD: "1", Address: "old"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Update(ctx, id, GuestInput{Name: "after", KHR: "២០០", USD: "2.5"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	g, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if g.Name != "after" || g.KHR != 200 || g.USD != 2.5 || g.Address != "" {
		t.Fatalf("update not atomic: %+v", g)
	}
}

func TestUpdateMissingGuest(t *testing.T) {
	svc := newTestService(t)

	err := svc.Update(context.Background(), 42, GuestInput{Name: "ghost"})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Update = %v, want ErrNotFound", err)
	}
}

func TestDeleteThenListAll(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	keep, err := svc.Create(ctx, GuestInput{Name: "keep"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	drop, err := svc.Create(ctx, GuestInput{Name: "drop"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, drop); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	guests, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(guests) != 1 || guests[0].ID != keep {
		t.Fatalf("unexpected survivors: %+v", guests)
	}
}
