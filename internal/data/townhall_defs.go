package data

// i32 — shorthand для nullable порогов в литералах справочника.
func i32(v int32) *int32 { return &v }

// townHallDefs — уровни ратуши 1..17 с максимумами зданий и героев.
// Transcribed from game reference tables; kept sorted by level.
var townHallDefs = []TownHallTier{
	{Level: 1, MaxBarrack: i32(2), TroopCapacity: 20},
	{Level: 2, MaxBarrack: i32(4), TroopCapacity: 30},
	{Level: 3, MaxBarrack: i32(5), MaxLaboratory: i32(1), MaxClanCastle: i32(1),
		TroopCapacity: 70, CcTroopCapacity: 10, CcLaboratoryCap: 2},
	{Level: 4, MaxBarrack: i32(6), MaxLaboratory: i32(2), MaxClanCastle: i32(2),
		TroopCapacity: 80, CcTroopCapacity: 15, CcLaboratoryCap: 3},
	{Level: 5, MaxBarrack: i32(7), MaxLaboratory: i32(3), MaxSpellFactory: i32(1), MaxClanCastle: i32(2),
		TroopCapacity: 135, SpellCapacity: 2, CcTroopCapacity: 15, CcLaboratoryCap: 4},
	{Level: 6, MaxBarrack: i32(8), MaxLaboratory: i32(4), MaxSpellFactory: i32(2), MaxClanCastle: i32(3),
		TroopCapacity: 150, SpellCapacity: 4, CcTroopCapacity: 20, CcLaboratoryCap: 5},
	{Level: 7, MaxBarrack: i32(9), MaxDarkBarrack: i32(2), MaxLaboratory: i32(5), MaxSpellFactory: i32(3),
		MaxClanCastle: i32(3), MaxBarbarianKing: i32(5),
		TroopCapacity: 200, SpellCapacity: 6, CcTroopCapacity: 20, CcLaboratoryCap: 6},
	{Level: 8, MaxBarrack: i32(10), MaxDarkBarrack: i32(4), MaxLaboratory: i32(6), MaxSpellFactory: i32(4),
		MaxDarkSpellFactory: i32(1), MaxBlacksmith: i32(1), MaxClanCastle: i32(4), MaxBarbarianKing: i32(10),
		TroopCapacity: 200, SpellCapacity: 7, CcTroopCapacity: 25, CcSpellCapacity: 1, CcLaboratoryCap: 7},
	{Level: 9, MaxBarrack: i32(11), MaxDarkBarrack: i32(6), MaxLaboratory: i32(7), MaxSpellFactory: i32(5),
		MaxDarkSpellFactory: i32(2), MaxBlacksmith: i32(2), MaxClanCastle: i32(5),
		MaxBarbarianKing: i32(30), MaxArcherQueen: i32(30), MaxMinionPrince: i32(30),
		TroopCapacity: 220, SpellCapacity: 9, CcTroopCapacity: 30, CcSpellCapacity: 1, CcLaboratoryCap: 8},
	{Level: 10, MaxBarrack: i32(12), MaxDarkBarrack: i32(7), MaxLaboratory: i32(8), MaxSpellFactory: i32(5),
		MaxDarkSpellFactory: i32(3), MaxBlacksmith: i32(3), MaxClanCastle: i32(6),
		MaxBarbarianKing: i32(40), MaxArcherQueen: i32(40), MaxMinionPrince: i32(40),
		TroopCapacity: 240, SpellCapacity: 11, CcTroopCapacity: 35, CcSpellCapacity: 1, CcLaboratoryCap: 9},
	{Level: 11, MaxBarrack: i32(13), MaxDarkBarrack: i32(8), MaxLaboratory: i32(9), MaxSpellFactory: i32(6),
		MaxDarkSpellFactory: i32(4), MaxBlacksmith: i32(4), MaxClanCastle: i32(7),
		MaxBarbarianKing: i32(50), MaxArcherQueen: i32(50), MaxGrandWarden: i32(20), MaxMinionPrince: i32(50),
		TroopCapacity: 260, SpellCapacity: 11, CcTroopCapacity: 35, CcSpellCapacity: 2, CcLaboratoryCap: 10},
	{Level: 12, MaxBarrack: i32(14), MaxDarkBarrack: i32(9), MaxLaboratory: i32(10), MaxSpellFactory: i32(6),
		MaxDarkSpellFactory: i32(5), MaxWorkshop: i32(1), MaxBlacksmith: i32(5), MaxClanCastle: i32(8),
		MaxBarbarianKing: i32(65), MaxArcherQueen: i32(65), MaxGrandWarden: i32(40), MaxMinionPrince: i32(65),
		TroopCapacity: 280, SpellCapacity: 11, SiegeCapacity: 1,
		CcTroopCapacity: 40, CcSpellCapacity: 2, CcSiegeCapacity: 1, CcLaboratoryCap: 11},
	{Level: 13, MaxBarrack: i32(15), MaxDarkBarrack: i32(10), MaxLaboratory: i32(11), MaxSpellFactory: i32(7),
		MaxDarkSpellFactory: i32(5), MaxWorkshop: i32(3), MaxBlacksmith: i32(6), MaxClanCastle: i32(9),
		MaxBarbarianKing: i32(75), MaxArcherQueen: i32(75), MaxGrandWarden: i32(50), MaxRoyalChampion: i32(25),
		MaxMinionPrince: i32(75),
		TroopCapacity: 300, SpellCapacity: 11, SiegeCapacity: 1,
		CcTroopCapacity: 45, CcSpellCapacity: 3, CcSiegeCapacity: 1, CcLaboratoryCap: 12},
	{Level: 14, MaxBarrack: i32(16), MaxDarkBarrack: i32(11), MaxLaboratory: i32(12), MaxSpellFactory: i32(7),
		MaxDarkSpellFactory: i32(6), MaxWorkshop: i32(4), MaxBlacksmith: i32(7), MaxPetHouse: i32(4),
		MaxClanCastle: i32(10),
		MaxBarbarianKing: i32(80), MaxArcherQueen: i32(80), MaxGrandWarden: i32(55), MaxRoyalChampion: i32(30),
		MaxMinionPrince: i32(80),
		TroopCapacity: 300, SpellCapacity: 11, SiegeCapacity: 1,
		CcTroopCapacity: 45, CcSpellCapacity: 3, CcSiegeCapacity: 1, CcLaboratoryCap: 13},
	{Level: 15, MaxBarrack: i32(17), MaxDarkBarrack: i32(12), MaxLaboratory: i32(13), MaxSpellFactory: i32(8),
		MaxDarkSpellFactory: i32(6), MaxWorkshop: i32(5), MaxBlacksmith: i32(8), MaxPetHouse: i32(8),
		MaxClanCastle: i32(11),
		MaxBarbarianKing: i32(90), MaxArcherQueen: i32(90), MaxGrandWarden: i32(65), MaxRoyalChampion: i32(40),
		MaxMinionPrince: i32(90),
		TroopCapacity: 320, SpellCapacity: 11, SiegeCapacity: 2,
		CcTroopCapacity: 45, CcSpellCapacity: 3, CcSiegeCapacity: 1, CcLaboratoryCap: 14},
	{Level: 16, MaxBarrack: i32(18), MaxDarkBarrack: i32(12), MaxLaboratory: i32(14), MaxSpellFactory: i32(8),
		MaxDarkSpellFactory: i32(6), MaxWorkshop: i32(6), MaxBlacksmith: i32(9), MaxPetHouse: i32(10),
		MaxClanCastle: i32(12),
		MaxBarbarianKing: i32(95), MaxArcherQueen: i32(95), MaxGrandWarden: i32(70), MaxRoyalChampion: i32(45),
		MaxMinionPrince: i32(95),
		TroopCapacity: 320, SpellCapacity: 11, SiegeCapacity: 2,
		CcTroopCapacity: 50, CcSpellCapacity: 4, CcSiegeCapacity: 1, CcLaboratoryCap: 15},
	{Level: 17, MaxBarrack: i32(18), MaxDarkBarrack: i32(12), MaxLaboratory: i32(15), MaxSpellFactory: i32(9),
		MaxDarkSpellFactory: i32(7), MaxWorkshop: i32(7), MaxBlacksmith: i32(10), MaxPetHouse: i32(11),
		MaxClanCastle: i32(13),
		MaxBarbarianKing: i32(100), MaxArcherQueen: i32(100), MaxGrandWarden: i32(75), MaxRoyalChampion: i32(50),
		MaxMinionPrince: i32(100),
		TroopCapacity: 340, SpellCapacity: 11, SiegeCapacity: 2,
		CcTroopCapacity: 50, CcSpellCapacity: 4, CcSiegeCapacity: 1, CcLaboratoryCap: 16},
}
