package gallery

import (
	"context"
	"errors"
	"testing"

	"github.com/Weslleykacau1/AvatarForge/models"
)

func newAvatarRepo() *MemoryRepository[models.Avatar] {
	return NewMemoryRepository(
		func(a models.Avatar) uint { return a.ID },
		func(a models.Avatar, id uint) models.Avatar { a.ID = id; return a },
	)
}

func TestMemoryRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := newAvatarRepo()

	first := models.Avatar{Name: "Luna", Niche: "Tech"}
	if err := repo.Upsert(ctx, &first); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("Upsert did not assign an ID")
	}

	second := models.Avatar{Name: "Dr. Roberto", Niche: "Saúde"}
	if err := repo.Upsert(ctx, &second); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("second record reused ID %d", first.ID)
	}

	got, err := repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Luna" {
		t.Errorf("GetByID returned %q", got.Name)
	}

	// Update in place keeps the same ID.
	first.Niche = "Gaming"
	if err := repo.Upsert(ctx, &first); err != nil {
		t.Fatalf("Upsert update: %v", err)
	}
	got, err = repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if got.Niche != "Gaming" {
		t.Errorf("Niche = %q after update", got.Niche)
	}

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("List returned %d records, want 2", len(records))
	}
	if records[0].ID > records[1].ID {
		t.Error("List is not ordered by ID")
	}

	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID after delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepositoryNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newAvatarRepo()

	if _, err := repo.GetByID(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID on empty repo = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete on empty repo = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepositoryValueIsolation(t *testing.T) {
	ctx := context.Background()
	repo := newAvatarRepo()

	record := models.Avatar{Name: "Luna"}
	if err := repo.Upsert(ctx, &record); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	// Mutating the caller's copy must not reach the stored record.
	record.Name = "changed"
	got, err := repo.GetByID(ctx, record.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Luna" {
		t.Errorf("stored record mutated through caller copy: %q", got.Name)
	}
}
