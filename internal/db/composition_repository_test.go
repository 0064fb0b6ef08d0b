package db

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/udisondev/armygo/internal/army"
)

func testPayload(id uuid.UUID) army.SavePayload {
	return army.SavePayload{
		ID:       id,
		Name:     "mass dragons",
		TownHall: 14,
		Units: []army.SelectedUnit{
			{UnitID: 7, Placement: army.PlacementArmyCamp, Amount: 10},
			{UnitID: 42, Placement: army.PlacementArmyCamp, Amount: 4},
			{UnitID: 60, Placement: army.PlacementClanCastle, Amount: 1},
		},
		Equipment: []army.SelectedEquipment{{EquipmentID: 80}},
		Pets:      []army.SelectedPet{{PetID: 100, Hero: "Barbarian King"}},
		Guide:     &army.Guide{Text: "drop everything on the core", VideoURL: "https://example.com/v"},
		Tags:      []string{"air", "three star"},
		Banner:    "dragons.png",
	}
}

func TestCompositionSaveGet(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCompositionRepository(pool)
	ctx := context.Background()

	id := uuid.New()
	p := testPayload(id)
	if err := repo.Save(ctx, "player-1", p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	rec, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if rec == nil {
		t.Fatal("Get() = nil; want record")
	}
	if rec.Owner != "player-1" {
		t.Errorf("Owner = %q; want player-1", rec.Owner)
	}
	if rec.Payload.Name != p.Name || rec.Payload.TownHall != p.TownHall {
		t.Errorf("payload header = %q/%d; want %q/%d",
			rec.Payload.Name, rec.Payload.TownHall, p.Name, p.TownHall)
	}
	if len(rec.Payload.Units) != 3 || rec.Payload.Units[0] != p.Units[0] {
		t.Errorf("units = %+v; want %+v", rec.Payload.Units, p.Units)
	}
	if len(rec.Payload.Equipment) != 1 || rec.Payload.Equipment[0].EquipmentID != 80 {
		t.Errorf("equipment = %+v", rec.Payload.Equipment)
	}
	if len(rec.Payload.Pets) != 1 || rec.Payload.Pets[0].Hero != "Barbarian King" {
		t.Errorf("pets = %+v", rec.Payload.Pets)
	}
	if rec.Payload.Guide == nil || rec.Payload.Guide.Text != p.Guide.Text {
		t.Errorf("guide = %+v; want %+v", rec.Payload.Guide, p.Guide)
	}
	if len(rec.Payload.Tags) != 2 || rec.Payload.Banner != "dragons.png" {
		t.Errorf("tags/banner = %+v/%q", rec.Payload.Tags, rec.Payload.Banner)
	}
	if rec.Votes != 0 || rec.Bookmarks != 0 || rec.Views != 0 {
		t.Errorf("fresh record has non-zero counters: %+v", rec)
	}
}

// A minimal payload (no guide, tags, equipment or pets) must persist cleanly.
func TestCompositionSaveMinimal(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCompositionRepository(pool)
	ctx := context.Background()

	id := uuid.New()
	p := army.SavePayload{
		ID:       id,
		TownHall: 10,
		Units:    []army.SelectedUnit{{UnitID: 1, Placement: army.PlacementArmyCamp, Amount: 10}},
	}
	if err := repo.Save(ctx, "player-1", p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	rec, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if rec == nil {
		t.Fatal("Get() = nil; want record")
	}
	if rec.Payload.Guide != nil || len(rec.Payload.Tags) != 0 {
		t.Errorf("minimal payload grew attachments: %+v", rec.Payload)
	}
}

func TestCompositionGetMissing(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCompositionRepository(pool)

	rec, err := repo.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if rec != nil {
		t.Errorf("Get() = %+v; want nil for missing id", rec)
	}
}

func TestCompositionSaveUpsert(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCompositionRepository(pool)
	ctx := context.Background()

	id := uuid.New()
	p := testPayload(id)
	if err := repo.Save(ctx, "player-1", p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	p.Name = "mass dragons v2"
	p.Units = p.Units[:1]
	if err := repo.Save(ctx, "player-1", p); err != nil {
		t.Fatalf("Save() again error = %v", err)
	}

	rec, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if rec.Payload.Name != "mass dragons v2" {
		t.Errorf("Name = %q; want updated name", rec.Payload.Name)
	}
	if len(rec.Payload.Units) != 1 {
		t.Errorf("units = %+v; want 1 unit", rec.Payload.Units)
	}

	if got, err := repo.ListByOwner(ctx, "player-1"); err != nil || len(got) != 1 {
		t.Errorf("ListByOwner() = %v, %v; want exactly one row", got, err)
	}
}

// Someone else's id cannot be overwritten by re-saving under a new owner.
func TestCompositionSaveOwnership(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCompositionRepository(pool)
	ctx := context.Background()

	id := uuid.New()
	if err := repo.Save(ctx, "player-1", testPayload(id)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	stolen := testPayload(id)
	stolen.Name = "hijacked"
	if err := repo.Save(ctx, "player-2", stolen); err != nil {
		t.Fatalf("Save() as another owner error = %v", err)
	}

	rec, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if rec.Owner != "player-1" || rec.Payload.Name == "hijacked" {
		t.Errorf("record overwritten across owners: %+v", rec)
	}
}

func TestCompositionDelete(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCompositionRepository(pool)
	ctx := context.Background()

	id := uuid.New()
	if err := repo.Save(ctx, "player-1", testPayload(id)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Deleting under the wrong owner is a silent no-op.
	if err := repo.Delete(ctx, id, "player-2"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if rec, _ := repo.Get(ctx, id); rec == nil {
		t.Fatal("Delete() by non-owner removed the record")
	}

	if err := repo.Delete(ctx, id, "player-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if rec, _ := repo.Get(ctx, id); rec != nil {
		t.Errorf("record survived owner delete: %+v", rec)
	}
}

func TestCompositionCounters(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCompositionRepository(pool)
	ctx := context.Background()

	id := uuid.New()
	if err := repo.Save(ctx, "player-1", testPayload(id)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	for range 3 {
		if err := repo.IncrementViews(ctx, id); err != nil {
			t.Fatalf("IncrementViews() error = %v", err)
		}
	}
	if err := repo.AddVote(ctx, id, 1); err != nil {
		t.Fatalf("AddVote() error = %v", err)
	}
	if err := repo.AddVote(ctx, id, 1); err != nil {
		t.Fatalf("AddVote() error = %v", err)
	}
	if err := repo.AddVote(ctx, id, -1); err != nil {
		t.Fatalf("AddVote() error = %v", err)
	}
	if err := repo.AddBookmark(ctx, id, 1); err != nil {
		t.Fatalf("AddBookmark() error = %v", err)
	}

	rec, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if rec.Views != 3 || rec.Votes != 1 || rec.Bookmarks != 1 {
		t.Errorf("counters = views %d votes %d bookmarks %d; want 3/1/1",
			rec.Views, rec.Votes, rec.Bookmarks)
	}
}
