package army

import (
	"errors"
	"strings"
	"testing"

	"github.com/udisondev/armygo/internal/data"
)

func camp(unitID, amount int32) SelectedUnit {
	return SelectedUnit{UnitID: unitID, Placement: PlacementArmyCamp, Amount: amount}
}

func donated(unitID, amount int32) SelectedUnit {
	return SelectedUnit{UnitID: unitID, Placement: PlacementClanCastle, Amount: amount}
}

func TestValidateAccepts(t *testing.T) {
	snap := loadSnapshot(t)

	tests := []struct {
		name    string
		payload SavePayload
	}{
		{
			name: "basic_army",
			payload: SavePayload{TownHall: 16, Units: []SelectedUnit{
				camp(1, 10), camp(2, 5), camp(40, 2), camp(60, 1),
			}},
		},
		{
			name: "two_super_troops",
			payload: SavePayload{TownHall: 11, Units: []SelectedUnit{
				camp(20, 2), camp(21, 1),
			}},
		},
		{
			name: "third_super_in_clan_castle_is_exempt",
			payload: SavePayload{TownHall: 16, Units: []SelectedUnit{
				camp(20, 1), camp(21, 1), donated(22, 1),
			}},
		},
		{
			name: "same_unit_in_both_placements",
			payload: SavePayload{TownHall: 16, Units: []SelectedUnit{
				camp(1, 10), donated(1, 5),
			}},
		},
		{
			name: "equipment_before_blacksmith",
			payload: SavePayload{TownHall: 7, Equipment: []SelectedEquipment{{EquipmentID: 80}}},
		},
		{
			name: "battle_drill_donation",
			payload: SavePayload{TownHall: 13, Units: []SelectedUnit{donated(61, 1)}},
		},
		{
			name: "pets",
			payload: SavePayload{TownHall: 14, Pets: []SelectedPet{
				{PetID: 100, Hero: data.HeroBarbarianKing},
				{PetID: 101, Hero: data.HeroArcherQueen},
			}},
		},
		{
			name:    "guide_with_video",
			payload: SavePayload{TownHall: 16, Guide: &Guide{VideoURL: "https://example.com/watch?v=abc"}},
		},
		{
			// Exactly at the troop capacity boundary; one more is the
			// "troop_capacity" rejection below.
			name:    "exact_troop_capacity",
			payload: SavePayload{TownHall: 10, Units: []SelectedUnit{camp(1, 240)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateComposition(snap, tt.payload); err != nil {
				t.Errorf("Validate() rejected: %v", err)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	snap := loadSnapshot(t)

	tests := []struct {
		name    string
		payload SavePayload
		wantMsg string
	}{
		{
			name:    "unknown_unit",
			payload: SavePayload{TownHall: 16, Units: []SelectedUnit{camp(999, 1)}},
			wantMsg: "unit 999 not found",
		},
		{
			name: "unknown_placement",
			payload: SavePayload{TownHall: 16, Units: []SelectedUnit{
				{UnitID: 1, Placement: "wall", Amount: 1},
			}},
			wantMsg: `unknown placement "wall"`,
		},
		{
			name:    "zero_amount",
			payload: SavePayload{TownHall: 16, Units: []SelectedUnit{camp(1, 0)}},
			wantMsg: "Barbarian has invalid amount 0",
		},
		{
			name: "duplicate_in_camp",
			payload: SavePayload{TownHall: 16, Units: []SelectedUnit{
				camp(1, 10), camp(1, 5),
			}},
			wantMsg: "Barbarian is selected twice in the army camp",
		},
		{
			name:    "troop_capacity",
			payload: SavePayload{TownHall: 10, Units: []SelectedUnit{camp(1, 241)}},
			wantMsg: "town hall 10 allows at most 240 troop housing space in the army camp, got 241",
		},
		{
			// 429496730 dragons at 20 housing each wraps int32 back to 8;
			// the total must be computed wide enough to stay over the cap.
			name:    "troop_capacity_huge_amount",
			payload: SavePayload{TownHall: 10, Units: []SelectedUnit{camp(7, 429496730)}},
			wantMsg: "town hall 10 allows at most 240 troop housing space in the army camp, got 8589934600",
		},
		{
			name:    "spell_capacity",
			payload: SavePayload{TownHall: 10, Units: []SelectedUnit{camp(41, 6)}},
			wantMsg: "town hall 10 allows at most 11 spell housing space in the army camp, got 12",
		},
		{
			name:    "siege_capacity",
			payload: SavePayload{TownHall: 12, Units: []SelectedUnit{camp(60, 2)}},
			wantMsg: "town hall 12 allows at most 1 siege housing space in the army camp, got 2",
		},
		{
			name:    "clan_castle_capacity",
			payload: SavePayload{TownHall: 10, Units: []SelectedUnit{donated(7, 2)}},
			wantMsg: "town hall 10 allows at most 35 troop housing space in the clan castle, got 40",
		},
		{
			name: "three_super_troops",
			payload: SavePayload{TownHall: 16, Units: []SelectedUnit{
				camp(20, 1), camp(21, 1), camp(22, 1),
			}},
			wantMsg: "an army can contain at most 2 unique super troops, got 3",
		},
		{
			name:    "super_troop_below_town_hall_11",
			payload: SavePayload{TownHall: 10, Units: []SelectedUnit{camp(20, 1)}},
			wantMsg: "Super Barbarian is not available at town hall 10",
		},
		{
			name:    "super_troop_below_counterpart_floor",
			payload: SavePayload{TownHall: 11, Units: []SelectedUnit{camp(22, 1)}},
			wantMsg: "Sneaky Goblin is not available at town hall 11",
		},
		{
			name:    "siege_below_town_hall_12",
			payload: SavePayload{TownHall: 11, Units: []SelectedUnit{camp(60, 1)}},
			wantMsg: "Wall Wrecker is not available at town hall 11",
		},
		{
			name:    "battle_drill_donation_below_castle_9",
			payload: SavePayload{TownHall: 12, Units: []SelectedUnit{donated(61, 1)}},
			wantMsg: "Battle Drill cannot be donated at town hall 12",
		},
		{
			name: "duplicate_equipment",
			payload: SavePayload{TownHall: 13, Equipment: []SelectedEquipment{
				{EquipmentID: 80}, {EquipmentID: 80},
			}},
			wantMsg: "Barbarian King already has Barbarian Puppet equipped",
		},
		{
			name: "third_equipment_piece",
			payload: SavePayload{TownHall: 13, Equipment: []SelectedEquipment{
				{EquipmentID: 80}, {EquipmentID: 81}, {EquipmentID: 82},
			}},
			wantMsg: "Barbarian King can carry at most 2 equipment pieces",
		},
		{
			name:    "equipment_hero_locked",
			payload: SavePayload{TownHall: 6, Equipment: []SelectedEquipment{{EquipmentID: 80}}},
			wantMsg: "Barbarian King is not unlocked at town hall 6",
		},
		{
			name:    "epic_equipment_below_blacksmith_6",
			payload: SavePayload{TownHall: 12, Equipment: []SelectedEquipment{{EquipmentID: 82}}},
			wantMsg: "Giant Gauntlet is not available at town hall 12",
		},
		{
			name: "pet_unknown_hero",
			payload: SavePayload{TownHall: 14, Pets: []SelectedPet{
				{PetID: 100, Hero: "Goblin King"},
			}},
			wantMsg: `unknown hero "Goblin King"`,
		},
		{
			name: "hero_with_two_pets",
			payload: SavePayload{TownHall: 14, Pets: []SelectedPet{
				{PetID: 100, Hero: data.HeroBarbarianKing},
				{PetID: 101, Hero: data.HeroBarbarianKing},
			}},
			wantMsg: "Barbarian King already has a pet",
		},
		{
			name: "pet_shared_between_heroes",
			payload: SavePayload{TownHall: 14, Pets: []SelectedPet{
				{PetID: 100, Hero: data.HeroBarbarianKing},
				{PetID: 100, Hero: data.HeroArcherQueen},
			}},
			wantMsg: "L.A.S.S.I is already assigned to Barbarian King",
		},
		{
			name: "pet_below_pet_house_level",
			payload: SavePayload{TownHall: 14, Pets: []SelectedPet{
				{PetID: 104, Hero: data.HeroBarbarianKing},
			}},
			wantMsg: "Spirit Fox is not available at town hall 14",
		},
		{
			name: "five_heroes",
			payload: SavePayload{TownHall: 14, Equipment: []SelectedEquipment{
				{EquipmentID: 80}, {EquipmentID: 83}, {EquipmentID: 85},
				{EquipmentID: 87}, {EquipmentID: 89},
			}},
			wantMsg: "a composition can use at most 4 heroes, got 5",
		},
		{
			name:    "empty_guide",
			payload: SavePayload{TownHall: 16, Guide: &Guide{}},
			wantMsg: "a guide needs text or a video link",
		},
		{
			name:    "guide_bad_video_link",
			payload: SavePayload{TownHall: 16, Guide: &Guide{VideoURL: "ftp://example.com/x"}},
			wantMsg: `invalid video link "ftp://example.com/x"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateComposition(snap, tt.payload)
			if err == nil {
				t.Fatal("Validate() accepted; want rejection")
			}
			if !IsRejection(err) {
				t.Fatalf("Validate() error %T is not a rejection", err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Validate() = %q; want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateUnknownTownHall(t *testing.T) {
	snap := loadSnapshot(t)

	_, err := ValidateComposition(snap, SavePayload{TownHall: 99})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Validate() error = %v; want *NotFoundError", err)
	}
	if nf.Entity != "town hall" || nf.ID != 99 {
		t.Errorf("NotFoundError = %+v; want town hall 99", nf)
	}
}

// The first failing check wins; later violations are never reported.
func TestValidateFailsFast(t *testing.T) {
	snap := loadSnapshot(t)

	p := SavePayload{TownHall: 10, Units: []SelectedUnit{
		camp(1, 241), // over troop capacity
		camp(20, 1),  // super troop below town hall 11
	}}
	_, err := ValidateComposition(snap, p)
	if err == nil {
		t.Fatal("Validate() accepted; want rejection")
	}
	if !strings.Contains(err.Error(), "housing space") {
		t.Errorf("Validate() = %q; want the capacity rejection first", err.Error())
	}
}

func TestValidateGuideTextLimit(t *testing.T) {
	snap := loadSnapshot(t)
	v := NewValidator(snap, Limits{GuideTextLimit: 10})

	// Runes, not bytes: ten multibyte characters fit exactly.
	ok := SavePayload{TownHall: 16, Guide: &Guide{Text: strings.Repeat("ж", 10)}}
	if _, err := v.Validate(ok); err != nil {
		t.Errorf("Validate() rejected a guide at the limit: %v", err)
	}

	over := SavePayload{TownHall: 16, Guide: &Guide{Text: strings.Repeat("ж", 11)}}
	_, err := v.Validate(over)
	if err == nil || err.Error() != "guide text exceeds 10 characters" {
		t.Errorf("Validate() = %v; want guide text limit rejection", err)
	}
}

// Validation is pure: the same payload yields the same decision every time.
func TestValidateIdempotent(t *testing.T) {
	snap := loadSnapshot(t)

	p := SavePayload{TownHall: 16, Units: []SelectedUnit{camp(1, 10), camp(2, 10)}}
	first, err := ValidateComposition(snap, p)
	if err != nil {
		t.Fatalf("Validate() rejected: %v", err)
	}
	second, err := ValidateComposition(snap, first)
	if err != nil {
		t.Fatalf("Validate() rejected on the second pass: %v", err)
	}
	if len(second.Units) != len(first.Units) || second.TownHall != first.TownHall {
		t.Errorf("second pass changed the payload: %+v vs %+v", second, first)
	}
}

func TestIsRejection(t *testing.T) {
	if !IsRejection(rejectf("nope")) {
		t.Error("IsRejection(ValidationError) = false")
	}
	if !IsRejection(&NotFoundError{Entity: "unit", ID: 1}) {
		t.Error("IsRejection(NotFoundError) = false")
	}
	if IsRejection(errors.New("boom")) {
		t.Error("IsRejection(generic) = true")
	}
}
