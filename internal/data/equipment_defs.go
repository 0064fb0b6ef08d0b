package data

// equipmentDefs — снаряжение героев с порогами кузницы по уровням.
// Identity is the integer id: display names have been renamed in the past
// ("Hog Rider Puppet" shipped as "Hog Rider Doll" at first), so nothing may
// key equipment by name.
var equipmentDefs = []EquipmentDefinition{
	{ID: 80, Name: "Barbarian Puppet", Hero: HeroBarbarianKing, Levels: commonEquipmentLadder},
	{ID: 81, Name: "Rage Vial", Hero: HeroBarbarianKing, Levels: commonEquipmentLadder},
	{ID: 82, Name: "Giant Gauntlet", Hero: HeroBarbarianKing, Epic: true, Levels: epicEquipmentLadder},
	{ID: 83, Name: "Archer Puppet", Hero: HeroArcherQueen, Levels: commonEquipmentLadder},
	{ID: 84, Name: "Invisibility Vial", Hero: HeroArcherQueen, Levels: commonEquipmentLadder},
	{ID: 85, Name: "Eternal Tome", Hero: HeroGrandWarden, Levels: commonEquipmentLadder},
	{ID: 86, Name: "Life Gem", Hero: HeroGrandWarden, Levels: commonEquipmentLadder},
	{ID: 87, Name: "Royal Gem", Hero: HeroRoyalChampion, Levels: commonEquipmentLadder},
	{ID: 88, Name: "Seeking Shield", Hero: HeroRoyalChampion, Levels: commonEquipmentLadder},
	{ID: 89, Name: "Dark Orb", Hero: HeroMinionPrince, Levels: commonEquipmentLadder},
	{ID: 90, Name: "Hog Rider Puppet", Hero: HeroMinionPrince, Levels: commonEquipmentLadder},
}

// commonEquipmentLadder — общая лестница уровней обычного снаряжения.
// Level 1 comes with the hero; the blacksmith only gates upgrades.
var commonEquipmentLadder = []EquipmentLevel{
	{Level: 1},
	{Level: 4, BlacksmithLevel: i32(2)},
	{Level: 7, BlacksmithLevel: i32(3)},
	{Level: 10, BlacksmithLevel: i32(4)},
	{Level: 13, BlacksmithLevel: i32(5)},
	{Level: 16, BlacksmithLevel: i32(6)},
	{Level: 18, BlacksmithLevel: i32(7)},
}

// epicEquipmentLadder — лестница epic-снаряжения (доступно позже и выше).
var epicEquipmentLadder = []EquipmentLevel{
	{Level: 1, BlacksmithLevel: i32(6)},
	{Level: 9, BlacksmithLevel: i32(7)},
	{Level: 15, BlacksmithLevel: i32(8)},
	{Level: 21, BlacksmithLevel: i32(9)},
	{Level: 27, BlacksmithLevel: i32(10)},
}
