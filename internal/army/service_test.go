package army

import (
	"context"
	"errors"
	"testing"
)

type fakeStore struct {
	saved []SavePayload
	err   error
}

func (f *fakeStore) Save(_ context.Context, _ string, p SavePayload) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, p)
	return nil
}

func TestCompositionServiceSave(t *testing.T) {
	snap := loadSnapshot(t)
	store := &fakeStore{}
	svc := NewCompositionService(NewValidator(snap, DefaultLimits()), store)

	p := SavePayload{TownHall: 16, Units: []SelectedUnit{camp(1, 10)}}
	if _, err := svc.Save(context.Background(), "player-1", p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if len(store.saved) != 1 {
		t.Fatalf("store received %d payloads; want 1", len(store.saved))
	}
}

// A rejected payload must never reach the store.
func TestCompositionServiceSaveRejected(t *testing.T) {
	snap := loadSnapshot(t)
	store := &fakeStore{}
	svc := NewCompositionService(NewValidator(snap, DefaultLimits()), store)

	p := SavePayload{TownHall: 10, Units: []SelectedUnit{camp(20, 1)}}
	_, err := svc.Save(context.Background(), "player-1", p)
	if !IsRejection(err) {
		t.Fatalf("Save() error = %v; want rejection", err)
	}
	if len(store.saved) != 0 {
		t.Errorf("store received %d payloads; want 0", len(store.saved))
	}
}

func TestCompositionServiceSaveStorageError(t *testing.T) {
	snap := loadSnapshot(t)
	boom := errors.New("connection reset")
	svc := NewCompositionService(NewValidator(snap, DefaultLimits()), &fakeStore{err: boom})

	p := SavePayload{TownHall: 16, Units: []SelectedUnit{camp(1, 10)}}
	_, err := svc.Save(context.Background(), "player-1", p)
	if !errors.Is(err, boom) {
		t.Fatalf("Save() error = %v; want wrapped storage error", err)
	}
	if IsRejection(err) {
		t.Error("storage failure reported as a user rejection")
	}
}
