package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"haat/browse/internal/domain"
)

// countingService records calls and returns canned responses.
type countingService struct {
	marketCalls   int
	categoryCalls int
	err           error
}

func (s *countingService) FetchMarket(_ context.Context, marketID int) (*domain.Market, error) {
	s.marketCalls++
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Market{ID: marketID, Name: "Test Market"}, nil
}

func (s *countingService) FetchCategory(_ context.Context, _, categoryID int) (*domain.Category, error) {
	s.categoryCalls++
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Category{ID: categoryID}, nil
}

func TestCachedDeduplicatesFetches(t *testing.T) {
	inner := &countingService{}
	c := NewCached(inner, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := c.FetchMarket(ctx, 4532); err != nil {
			t.Fatalf("FetchMarket: %v", err)
		}
	}
	if inner.marketCalls != 1 {
		t.Errorf("market calls = %d, want 1", inner.marketCalls)
	}

	// Different market is a different entry.
	if _, err := c.FetchMarket(ctx, 7); err != nil {
		t.Fatalf("FetchMarket: %v", err)
	}
	if inner.marketCalls != 2 {
		t.Errorf("market calls = %d, want 2", inner.marketCalls)
	}

	for i := 0; i < 2; i++ {
		if _, err := c.FetchCategory(ctx, 4532, 1); err != nil {
			t.Fatalf("FetchCategory: %v", err)
		}
	}
	if inner.categoryCalls != 1 {
		t.Errorf("category calls = %d, want 1", inner.categoryCalls)
	}
}

func TestCachedExpiry(t *testing.T) {
	inner := &countingService{}
	c := NewCached(inner, time.Nanosecond)
	ctx := context.Background()

	c.FetchMarket(ctx, 1)
	time.Sleep(time.Millisecond)
	c.FetchMarket(ctx, 1)
	if inner.marketCalls != 2 {
		t.Errorf("market calls = %d, want 2 after expiry", inner.marketCalls)
	}
}

func TestCachedCachesErrors(t *testing.T) {
	wantErr := errors.New("backend down")
	inner := &countingService{err: wantErr}
	c := NewCached(inner, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := c.FetchMarket(ctx, 1); !errors.Is(err, wantErr) {
			t.Fatalf("err = %v, want %v", err, wantErr)
		}
	}
	if inner.marketCalls != 1 {
		t.Errorf("market calls = %d, want 1 (error cached)", inner.marketCalls)
	}
}

func TestCachedInvalidate(t *testing.T) {
	inner := &countingService{}
	c := NewCached(inner, time.Minute)
	ctx := context.Background()

	c.FetchMarket(ctx, 1)
	c.Invalidate()
	c.FetchMarket(ctx, 1)
	if inner.marketCalls != 2 {
		t.Errorf("market calls = %d, want 2 after invalidate", inner.marketCalls)
	}
}
