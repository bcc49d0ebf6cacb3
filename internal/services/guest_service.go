package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"wedding/internal/core"
	"wedding/internal/storage"
)

// GuestInput carries the raw field text collected by the presentation layer.
// Numeric fields may contain Khmer digits, thousands separators and stray
// whitespace; coercion happens here, before the store is ever touched.
type GuestInput struct {
	Name    string
	KHR     string
	USD     string
	Address string
}

// GuestService sits between the presentation layer and the record store:
// normalize numerals, coerce types, validate, then persist.
type GuestService struct {
	storage *storage.SQLiteRepository
}

func NewGuestService(storage *storage.SQLiteRepository) *GuestService {
	return &GuestService{storage: storage}
}

// coerce converts raw input into a validated guest. Any failure here returns
// before a single storage call, so a rejected record is never half-written.
func coerce(in GuestInput) (core.Guest, error) {
	g := core.Guest{
		Name:    strings.TrimSpace(in.Name),
		Address: strings.TrimSpace(in.Address),
	}

	var err error
	if g.KHR, err = core.ParseRiel(in.KHR); err != nil {
		return core.Guest{}, fmt.Errorf("khr field: %w", err)
	}
	if g.USD, err = core.ParseDollars(in.USD); err != nil {
		return core.Guest{}, fmt.Errorf("usd field: %w", err)
	}
	if err := g.Validate(); err != nil {
		return core.Guest{}, err
	}

	return g, nil
}

// Create coerces and persists a new guest, returning the assigned id.
func (s *GuestService) Create(ctx context.Context, in GuestInput) (int64, error) {
	g, err := coerce(in)
	if err != nil {
		return 0, err
	}

	id, err := s.storage.Insert(ctx, g)
	if err != nil {
		return 0, fmt.Errorf("create guest: %w", err)
	}

	slog.InfoContext(ctx, "Guest created",
		"id", id,
		"khr", g.KHR,
		"usd", g.USD)

	return id, nil
}

// Update replaces every mutable field of an existing guest atomically.
// core.ErrNotFound propagates when the id does not exist.
func (s *GuestService) Update(ctx context.Context, id int64, in GuestInput) error {
	g, err := coerce(in)
	if err != nil {
		return err
	}
	g.ID = id

	if err := s.storage.Update(ctx, g); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Guest updated", "id", id)
	return nil
}

func (s *GuestService) Delete(ctx context.Context, id int64) error {
	return s.storage.Delete(ctx, id)
}

func (s *GuestService) Get(ctx context.Context, id int64) (core.Guest, error) {
	return s.storage.GetByID(ctx, id)
}

func (s *GuestService) ListAll(ctx context.Context) ([]core.Guest, error) {
	return s.storage.ListAll(ctx)
}

func (s *GuestService) Summary(ctx context.Context) (core.Summary, error) {
	return s.storage.Summary(ctx)
}

func (s *GuestService) Close() error {
	if s.storage != nil {
		return s.storage.Close()
	}
	return nil
}
