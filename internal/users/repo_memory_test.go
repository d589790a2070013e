package users

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryRepoCreateAllocatesIncreasingIDs(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		user, err := repo.Create(ctx, NewUser{
			Email:        fmt.Sprintf("user%d@example.com", i),
			Name:         "User",
			PasswordHash: "opaque",
		})
		if err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
		if user.ID != int64(i) {
			t.Fatalf("expected id %d, got %d", i, user.ID)
		}
		if user.CreatedAt.IsZero() {
			t.Fatalf("expected CreatedAt to be set")
		}
	}
}

func TestMemoryRepoCreateRejectsDuplicateEmail(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if _, err := repo.Create(ctx, NewUser{Email: "alex@x.com", Name: "Alex", PasswordHash: "h"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := repo.Create(ctx, NewUser{Email: "alex@x.com", Name: "Other", PasswordHash: "h"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestMemoryRepoGetByID(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, NewUser{Email: "alex@x.com", Name: "Alex", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	user, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if user.Email != "alex@x.com" || user.Name != "Alex" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoGetByEmailIsCaseSensitive(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if _, err := repo.Create(ctx, NewUser{Email: "Alex@x.com", Name: "Alex", PasswordHash: "h"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := repo.GetByEmail(ctx, "Alex@x.com"); err != nil {
		t.Fatalf("GetByEmail exact: %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "alex@x.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for different case, got %v", err)
	}
}

func TestMemoryRepoConcurrentCreates(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			user, err := repo.Create(ctx, NewUser{
				Email:        fmt.Sprintf("user%d@example.com", i),
				Name:         "User",
				PasswordHash: "h",
			})
			if err != nil {
				t.Errorf("Create: %v", err)
				return
			}
			ids <- user.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("id %d allocated twice", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d distinct ids, got %d", n, len(seen))
	}
}
