package data

// unitDefs — войска, осадные машины и заклинания со списками требований
// по уровням. Levels sorted ascending; BuildingLevel is the production
// building threshold, LaboratoryLevel nil means no lab requirement.
var unitDefs = []UnitDefinition{
	// --- Elixir troops ---
	{ID: 1, Name: "Barbarian", Kind: KindTroop, Production: BuildingBarrack, HousingSpace: 1, TrainingTime: 5,
		Levels: []UnitLevel{
			{Level: 1, BuildingLevel: i32(1)},
			{Level: 2, LaboratoryLevel: i32(1)},
			{Level: 3, LaboratoryLevel: i32(3)},
			{Level: 4, LaboratoryLevel: i32(5)},
			{Level: 5, LaboratoryLevel: i32(6)},
			{Level: 6, LaboratoryLevel: i32(7)},
			{Level: 7, LaboratoryLevel: i32(8)},
			{Level: 8, LaboratoryLevel: i32(9)},
			{Level: 9, LaboratoryLevel: i32(10)},
			{Level: 10, LaboratoryLevel: i32(11)},
			{Level: 11, LaboratoryLevel: i32(12)},
			{Level: 12, LaboratoryLevel: i32(14)},
		}},
	{ID: 2, Name: "Archer", Kind: KindTroop, Production: BuildingBarrack, TargetsAir: true, HousingSpace: 1, TrainingTime: 5,
		Levels: []UnitLevel{
			{Level: 1, BuildingLevel: i32(2)},
			{Level: 2, LaboratoryLevel: i32(1)},
			{Level: 3, LaboratoryLevel: i32(3)},
			{Level: 4, LaboratoryLevel: i32(5)},
			{Level: 5, LaboratoryLevel: i32(6)},
			{Level: 6, LaboratoryLevel: i32(7)},
			{Level: 7, LaboratoryLevel: i32(8)},
			{Level: 8, LaboratoryLevel: i32(9)},
			{Level: 9, LaboratoryLevel: i32(10)},
			{Level: 10, LaboratoryLevel: i32(11)},
			{Level: 11, LaboratoryLevel: i32(12)},
			{Level: 12, LaboratoryLevel: i32(14)},
		}},
	{ID: 3, Name: "Giant", Kind: KindTroop, Production: BuildingBarrack, HousingSpace: 5, TrainingTime: 30,
		Levels: []UnitLevel{
			{Level: 1, BuildingLevel: i32(3)},
			{Level: 2, LaboratoryLevel: i32(2)},
			{Level: 3, LaboratoryLevel: i32(4)},
			{Level: 4, LaboratoryLevel: i32(6)},
			{Level: 5, LaboratoryLevel: i32(7)},
			{Level: 6, LaboratoryLevel: i32(8)},
			{Level: 7, LaboratoryLevel: i32(9)},
			{Level: 8, LaboratoryLevel: i32(10)},
			{Level: 9, LaboratoryLevel: i32(11)},
			{Level: 10, LaboratoryLevel: i32(12)},
			{Level: 11, LaboratoryLevel: i32(13)},
			{Level: 12, LaboratoryLevel: i32(14)},
		}},
	{ID: 4, Name: "Goblin", Kind: KindTroop, Production: BuildingBarrack, HousingSpace: 1, TrainingTime: 7,
		Levels: []UnitLevel{
			{Level: 1, BuildingLevel: i32(4)},
			{Level: 2, LaboratoryLevel: i32(1)},
			{Level: 3, LaboratoryLevel: i32(3)},
			{Level: 4, LaboratoryLevel: i32(5)},
			{Level: 5, LaboratoryLevel: i32(6)},
			{Level: 6, LaboratoryLevel: i32(7)},
			{Level: 7, LaboratoryLevel: i32(10)},
			{Level: 8, LaboratoryLevel: i32(12)},
			{Level: 9, LaboratoryLevel: i32(14)},
		}},
	{ID: 5, Name: "Wall Breaker", Kind: KindTroop, Production: BuildingBarrack, HousingSpace: 2, TrainingTime: 15,
		Levels: []UnitLevel{
			{Level: 1, BuildingLevel: i32(5)},
			{Level: 2, LaboratoryLevel: i32(2)},
			{Level: 3, LaboratoryLevel: i32(4)},
			{Level: 4, LaboratoryLevel: i32(6)},
			{Level: 5, LaboratoryLevel: i32(7)},
			{Level: 6, LaboratoryLevel: i32(8)},
			{Level: 7, LaboratoryLevel: i32(10)},
			{Level: 8, LaboratoryLevel: i32(11)},
			{Level: 9, LaboratoryLevel: i32(12)},
			{Level: 10, LaboratoryLevel: i32(13)},
			{Level: 11, LaboratoryLevel: i32(14)},
		}},
	{ID: 6, Name: "Balloon", Kind: KindTroop, Production: BuildingBarrack, Flying: true, HousingSpace: 5, TrainingTime: 30,
		Levels: []UnitLevel{
			{Level: 1, BuildingLevel: i32(6)},
			{Level: 2, LaboratoryLevel: i32(2)},
			{Level: 3, LaboratoryLevel: i32(4)},
			{Level: 4, LaboratoryLevel: i32(6)},
			{Level: 5, LaboratoryLevel: i32(7)},
			{Level: 6, LaboratoryLevel: i32(8)},
			{Level: 7, LaboratoryLevel: i32(9)},
			{Level: 8, LaboratoryLevel: i32(11)},
			{Level: 9, LaboratoryLevel: i32(12)},
			{Level: 10, LaboratoryLevel: i32(13)},
			{Level: 11, LaboratoryLevel: i32(15)},
		}},
	{ID: 7, Name: "Dragon", Kind: KindTroop, Production: BuildingBarrack, Flying: true, TargetsAir: true, HousingSpace: 20, TrainingTime: 180,
		Levels: []UnitLevel{
			{Level: 1, BuildingLevel: i32(9)},
			{Level: 2, LaboratoryLevel: i32(5)},
			{Level: 3, LaboratoryLevel: i32(7)},
			{Level: 4, LaboratoryLevel: i32(8)},
			{Level: 5, LaboratoryLevel: i32(9)},
			{Level: 6, LaboratoryLevel: i32(10)},
			{Level: 7, LaboratoryLevel: i32(11)},
			{Level: 8, LaboratoryLevel: i32(12)},
			{Level: 9, LaboratoryLevel: i32(13)},
			{Level: 10, LaboratoryLevel: i32(14)},
			{Level: 11, LaboratoryLevel: i32(15)},
		}},

	// --- Dark elixir troops ---
	{ID: 8, Name: "Minion", Kind: KindTroop, Production: BuildingDarkBarrack, Flying: true, TargetsAir: true, HousingSpace: 2, TrainingTime: 18,
		Levels: []UnitLevel{
			{Level: 1, BuildingLevel: i32(1)},
			{Level: 2, LaboratoryLevel: i32(5)},
			{Level: 3, LaboratoryLevel: i32(6)},
			{Level: 4, LaboratoryLevel: i32(7)},
			{Level: 5, LaboratoryLevel: i32(8)},
			{Level: 6, LaboratoryLevel: i32(9)},
			{Level: 7, LaboratoryLevel: i32(10)},
			{Level: 8, LaboratoryLevel: i32(11)},
			{Level: 9, LaboratoryLevel: i32(12)},
			{Level: 10, LaboratoryLevel: i32(14)},
			{Level: 11, LaboratoryLevel: i32(15)},
		}},
	{ID: 9, Name: "Hog Rider", Kind: KindTroop, Production: BuildingDarkBarrack, Jumping: true, HousingSpace: 5, TrainingTime: 45,
		Levels: []UnitLevel{
			{Level: 1, BuildingLevel: i32(2)},
			{Level: 2, LaboratoryLevel: i32(5)},
			{Level: 3, LaboratoryLevel: i32(6)},
			{Level: 4, LaboratoryLevel: i32(7)},
			{Level: 5, LaboratoryLevel: i32(8)},
			{Level: 6, LaboratoryLevel: i32(9)},
			{Level: 7, LaboratoryLevel: i32(10)},
			{Level: 8, LaboratoryLevel: i32(11)},
			{Level: 9, LaboratoryLevel: i32(12)},
			{Level: 10, LaboratoryLevel: i32(13)},
			{Level: 11, LaboratoryLevel: i32(14)},
			{Level: 12, LaboratoryLevel: i32(15)},
		}},

	// --- Super troops ---
	// Super variants carry no lab thresholds of their own: their resolved
	// level mirrors the regular counterpart. The first listed level is the
	// boost eligibility floor.
	{ID: 20, Name: "Super Barbarian", Kind: KindTroop, Production: BuildingBarrack, IsSuper: true,
		RegularCounterpart: "Barbarian", HousingSpace: 5, TrainingTime: 25,
		Levels: []UnitLevel{
			{Level: 8}, {Level: 9}, {Level: 10}, {Level: 11}, {Level: 12},
		}},
	{ID: 21, Name: "Super Archer", Kind: KindTroop, Production: BuildingBarrack, IsSuper: true, TargetsAir: true,
		RegularCounterpart: "Archer", HousingSpace: 12, TrainingTime: 60,
		Levels: []UnitLevel{
			{Level: 8}, {Level: 9}, {Level: 10}, {Level: 11}, {Level: 12},
		}},
	{ID: 22, Name: "Sneaky Goblin", Kind: KindTroop, Production: BuildingBarrack, IsSuper: true,
		RegularCounterpart: "Goblin", HousingSpace: 3, TrainingTime: 21,
		Levels: []UnitLevel{
			{Level: 7}, {Level: 8}, {Level: 9},
		}},
	{ID: 23, Name: "Super Wall Breaker", Kind: KindTroop, Production: BuildingBarrack, IsSuper: true,
		RegularCounterpart: "Wall Breaker", HousingSpace: 8, TrainingTime: 60,
		Levels: []UnitLevel{
			{Level: 7}, {Level: 8}, {Level: 9}, {Level: 10}, {Level: 11},
		}},

	// --- Spells ---
	{ID: 40, Name: "Lightning Spell", Kind: KindSpell, Production: BuildingSpellFactory, HousingSpace: 1, TrainingTime: 180,
		Levels: []UnitLevel{
			{Level: 1, BuildingLevel: i32(1)},
			{Level: 2, LaboratoryLevel: i32(1)},
			{Level: 3, LaboratoryLevel: i32(4)},
			{Level: 4, LaboratoryLevel: i32(5)},
			{Level: 5, LaboratoryLevel: i32(6)},
			{Level: 6, LaboratoryLevel: i32(8)},
			{Level: 7, LaboratoryLevel: i32(9)},
			{Level: 8, LaboratoryLevel: i32(10)},
			{Level: 9, LaboratoryLevel: i32(11)},
			{Level: 10, LaboratoryLevel: i32(12)},
			{Level: 11, LaboratoryLevel: i32(14)},
			{Level: 12, LaboratoryLevel: i32(15)},
		}},
	{ID: 41, Name: "Healing Spell", Kind: KindSpell, Production: BuildingSpellFactory, HousingSpace: 2, TrainingTime: 300,
		Levels: []UnitLevel{
			{Level: 1, BuildingLevel: i32(2)},
			{Level: 2, LaboratoryLevel: i32(3)},
			{Level: 3, LaboratoryLevel: i32(5)},
			{Level: 4, LaboratoryLevel: i32(6)},
			{Level: 5, LaboratoryLevel: i32(7)},
			{Level: 6, LaboratoryLevel: i32(8)},
			{Level: 7, LaboratoryLevel: i32(10)},
			{Level: 8, LaboratoryLevel: i32(13)},
			{Level: 9, LaboratoryLevel: i32(14)},
			{Level: 10, LaboratoryLevel: i32(15)},
		}},
	{ID: 42, Name: "Rage Spell", Kind: KindSpell, Production: BuildingSpellFactory, HousingSpace: 2, TrainingTime: 300,
		Levels: []UnitLevel{
			{Level: 1, BuildingLevel: i32(3)},
			{Level: 2, LaboratoryLevel: i32(4)},
			{Level: 3, LaboratoryLevel: i32(5)},
			{Level: 4, LaboratoryLevel: i32(6)},
			{Level: 5, LaboratoryLevel: i32(7)},
			{Level: 6, LaboratoryLevel: i32(10)},
		}},
	{ID: 43, Name: "Poison Spell", Kind: KindSpell, Production: BuildingDarkSpellFactory, HousingSpace: 1, TrainingTime: 180,
		Levels: []UnitLevel{
			{Level: 1, BuildingLevel: i32(1)},
			{Level: 2, LaboratoryLevel: i32(6)},
			{Level: 3, LaboratoryLevel: i32(7)},
			{Level: 4, LaboratoryLevel: i32(8)},
			{Level: 5, LaboratoryLevel: i32(9)},
			{Level: 6, LaboratoryLevel: i32(10)},
			{Level: 7, LaboratoryLevel: i32(12)},
			{Level: 8, LaboratoryLevel: i32(13)},
			{Level: 9, LaboratoryLevel: i32(14)},
			{Level: 10, LaboratoryLevel: i32(15)},
		}},
	{ID: 44, Name: "Haste Spell", Kind: KindSpell, Production: BuildingDarkSpellFactory, HousingSpace: 1, TrainingTime: 180,
		Levels: []UnitLevel{
			{Level: 1, BuildingLevel: i32(3)},
			{Level: 2, LaboratoryLevel: i32(7)},
			{Level: 3, LaboratoryLevel: i32(8)},
			{Level: 4, LaboratoryLevel: i32(9)},
			{Level: 5, LaboratoryLevel: i32(11)},
		}},

	// --- Siege machines ---
	{ID: 60, Name: "Wall Wrecker", Kind: KindSiege, Production: BuildingWorkshop, HousingSpace: 1, TrainingTime: 1200,
		Levels: []UnitLevel{
			{Level: 1, BuildingLevel: i32(1)},
			{Level: 2, LaboratoryLevel: i32(10)},
			{Level: 3, LaboratoryLevel: i32(11)},
			{Level: 4, LaboratoryLevel: i32(12)},
			{Level: 5, LaboratoryLevel: i32(13)},
			{Level: 6, LaboratoryLevel: i32(14)},
		}},
	{ID: 61, Name: "Battle Drill", Kind: KindSiege, Production: BuildingWorkshop, HousingSpace: 1, TrainingTime: 1200,
		Levels: []UnitLevel{
			{Level: 1, BuildingLevel: i32(7)},
			{Level: 2, LaboratoryLevel: i32(14)},
			{Level: 3, LaboratoryLevel: i32(15)},
		}},
}
