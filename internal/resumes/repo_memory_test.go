package resumes

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryRepoCreateAllocatesIncreasingIDs(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	var last int64
	for i := 0; i < 10; i++ {
		resume, err := repo.Create(ctx, NewResume{UserID: 1, Title: "T", Content: "{}", Prompt: "P"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if resume.ID <= last {
			t.Fatalf("expected id > %d, got %d", last, resume.ID)
		}
		if resume.CreatedAt.IsZero() {
			t.Fatalf("expected CreatedAt to be set")
		}
		last = resume.ID
	}
	if last != 10 {
		t.Fatalf("expected last id 10, got %d", last)
	}
}

func TestMemoryRepoIDsSurviveDeletes(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	first, err := repo.Create(ctx, NewResume{UserID: 1, Title: "T", Content: "{}", Prompt: "P"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, first.ID, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	second, err := repo.Create(ctx, NewResume{UserID: 1, Title: "T", Content: "{}", Prompt: "P"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if second.ID <= first.ID {
		t.Fatalf("expected id %d to not be reused, got %d", first.ID, second.ID)
	}
}

func TestMemoryRepoListByUserFiltersByOwner(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	// Interleave creates across three users.
	owners := []int64{1, 2, 1, 3, 2, 1}
	for i, owner := range owners {
		_, err := repo.Create(ctx, NewResume{
			UserID: owner,
			Title:  fmt.Sprintf("resume %d", i),
			Prompt: "P",
		})
		if err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	list, err := repo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 resumes for user 1, got %d", len(list))
	}
	for i, resume := range list {
		if resume.UserID != 1 {
			t.Fatalf("resume %d belongs to user %d", resume.ID, resume.UserID)
		}
		if i > 0 && list[i-1].ID >= resume.ID {
			t.Fatalf("expected insertion order, got ids %d then %d", list[i-1].ID, resume.ID)
		}
	}

	empty, err := repo.ListByUser(ctx, 99)
	if err != nil {
		t.Fatalf("ListByUser empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty list for unknown user, got %d", len(empty))
	}
}

func TestMemoryRepoDeleteRemovesOwnedResume(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	resume, err := repo.Create(ctx, NewResume{UserID: 1, Title: "T", Content: "{}", Prompt: "P"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, resume.ID, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	list, err := repo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected deleted resume to be gone, got %d entries", len(list))
	}
}

func TestMemoryRepoDeleteWrongOwnerIsNoOp(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if _, err := repo.Create(ctx, NewResume{UserID: 1, Title: "A", Prompt: "P"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := repo.Create(ctx, NewResume{UserID: 2, Title: "B", Prompt: "P"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// User 1 tries to delete user 2's resume.
	if err := repo.Delete(ctx, second.ID, 1); err != nil {
		t.Fatalf("Delete wrong owner: %v", err)
	}

	list, err := repo.ListByUser(ctx, 2)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 1 || list[0].ID != second.ID {
		t.Fatalf("expected resume %d still owned by user 2, got %+v", second.ID, list)
	}
}

func TestMemoryRepoDeleteIsIdempotent(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	resume, err := repo.Create(ctx, NewResume{UserID: 1, Title: "T", Prompt: "P"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, resume.ID, 1); err != nil {
		t.Fatalf("first Delete: %v", err)
	}
	if err := repo.Delete(ctx, resume.ID, 1); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if err := repo.Delete(ctx, 999, 1); err != nil {
		t.Fatalf("Delete unknown id: %v", err)
	}
}

func TestMemoryRepoConcurrentCreates(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	const n = 100
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			resume, err := repo.Create(ctx, NewResume{
				UserID: int64(i%5 + 1),
				Title:  "T",
				Prompt: "P",
			})
			if err != nil {
				t.Errorf("Create: %v", err)
				return
			}
			ids <- resume.ID
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

	total := 0
	for user := int64(1); user <= 5; user++ {
		list, err := repo.ListByUser(ctx, user)
		if err != nil {
			t.Fatalf("ListByUser: %v", err)
		}
		total += len(list)
	}
	if total != n {
		t.Fatalf("expected %d stored resumes, got %d", n, total)
	}
}

func TestMemoryRepoEndToEndScenario(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	resume, err := repo.Create(ctx, NewResume{UserID: 1, Title: "T", Content: "{}", Prompt: "P"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resume.ID != 1 {
		t.Fatalf("expected first resume id 1, got %d", resume.ID)
	}
	if resume.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt set")
	}

	list, err := repo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 1 || list[0].ID != resume.ID {
		t.Fatalf("expected [resume 1], got %+v", list)
	}

	if err := repo.Delete(ctx, resume.ID, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	list, err = repo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser after delete: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list after delete, got %+v", list)
	}
}

func TestMemoryRepoTwoUsersWrongOwnerScenario(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	first, err := repo.Create(ctx, NewResume{UserID: 1, Title: "A", Prompt: "P"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := repo.Create(ctx, NewResume{UserID: 2, Title: "B", Prompt: "P"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}

	if err := repo.Delete(ctx, second.ID, 1); err != nil {
		t.Fatalf("Delete wrong owner: %v", err)
	}

	list, err := repo.ListByUser(ctx, 2)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 1 || list[0].ID != 2 {
		t.Fatalf("expected resume 2 to survive, got %+v", list)
	}
}

func TestMemoryRepoCanceledContext(t *testing.T) {
	repo := NewMemoryRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.Create(ctx, NewResume{UserID: 1, Prompt: "P"}); err == nil {
		t.Fatalf("expected error for canceled context")
	}
	if _, err := repo.ListByUser(ctx, 1); err == nil {
		t.Fatalf("expected error for canceled context")
	}
	if err := repo.Delete(ctx, 1, 1); err == nil {
		t.Fatalf("expected error for canceled context")
	}
}
