package army

import (
	"testing"

	"github.com/udisondev/armygo/internal/data"
)

func TestAggregateCapacity(t *testing.T) {
	tests := []struct {
		name    string
		entries []CapacityEntry
		want    CapacityTotals
	}{
		{
			name: "empty",
			want: CapacityTotals{},
		},
		{
			name: "troops_only",
			entries: []CapacityEntry{
				{Kind: data.KindTroop, Amount: 10, HousingSpace: 1, TrainingTime: 5},
				{Kind: data.KindTroop, Amount: 2, HousingSpace: 5, TrainingTime: 30},
			},
			want: CapacityTotals{TroopSpace: 20, TrainingTime: 110},
		},
		{
			name: "kinds_accumulate_separately",
			entries: []CapacityEntry{
				{Kind: data.KindTroop, Amount: 4, HousingSpace: 5, TrainingTime: 30},
				{Kind: data.KindSpell, Amount: 2, HousingSpace: 2, TrainingTime: 300},
				{Kind: data.KindSiege, Amount: 1, HousingSpace: 1, TrainingTime: 1200},
			},
			want: CapacityTotals{TroopSpace: 20, SpellSpace: 4, SiegeSpace: 1, TrainingTime: 1200},
		},
		{
			// Queues run in parallel: total time is the slowest queue,
			// not 120+600+1200.
			name: "training_time_is_slowest_queue",
			entries: []CapacityEntry{
				{Kind: data.KindTroop, Amount: 24, HousingSpace: 1, TrainingTime: 5},
				{Kind: data.KindSpell, Amount: 2, HousingSpace: 2, TrainingTime: 300},
				{Kind: data.KindSiege, Amount: 1, HousingSpace: 1, TrainingTime: 1200},
			},
			want: CapacityTotals{TroopSpace: 24, SpellSpace: 4, SiegeSpace: 1, TrainingTime: 1200},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AggregateCapacity(tt.entries); got != tt.want {
				t.Errorf("AggregateCapacity() = %+v; want %+v", got, tt.want)
			}
		})
	}
}

// Amounts come from clients; the products must not wrap in 32 bits.
func TestAggregateCapacityHugeAmounts(t *testing.T) {
	got := AggregateCapacity([]CapacityEntry{
		{Kind: data.KindTroop, Amount: 429496730, HousingSpace: 20, TrainingTime: 180},
	})
	if got.TroopSpace != 8589934600 {
		t.Errorf("TroopSpace = %d; want 8589934600", got.TroopSpace)
	}
	if got.TrainingTime != 77309411400 {
		t.Errorf("TrainingTime = %d; want 77309411400", got.TrainingTime)
	}
}

func TestSpaceFor(t *testing.T) {
	totals := CapacityTotals{TroopSpace: 10, SiegeSpace: 1, SpellSpace: 4}
	if got := totals.SpaceFor(data.KindTroop); got != 10 {
		t.Errorf("SpaceFor(troop) = %d; want 10", got)
	}
	if got := totals.SpaceFor(data.KindSiege); got != 1 {
		t.Errorf("SpaceFor(siege) = %d; want 1", got)
	}
	if got := totals.SpaceFor(data.KindSpell); got != 4 {
		t.Errorf("SpaceFor(spell) = %d; want 4", got)
	}
}
