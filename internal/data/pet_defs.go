package data

// petDefs — питомцы героев с порогами pet house по уровням.
var petDefs = []PetDefinition{
	{ID: 100, Name: "L.A.S.S.I", Levels: petLadder(1)},
	{ID: 101, Name: "Electro Owl", Levels: petLadder(2)},
	{ID: 102, Name: "Mighty Yak", Levels: petLadder(3)},
	{ID: 103, Name: "Unicorn", Levels: petLadder(4)},
	{ID: 104, Name: "Spirit Fox", Levels: petLadder(9)},
}

// petLadder строит лестницу из 10 уровней, начиная с порога base:
// уровни 1..5 требуют base, 6..8 — base+1, 9..10 — base+2.
func petLadder(base int32) []PetLevel {
	levels := make([]PetLevel, 0, 10)
	for lvl := int32(1); lvl <= 10; lvl++ {
		step := int32(0)
		switch {
		case lvl >= 9:
			step = 2
		case lvl >= 6:
			step = 1
		}
		levels = append(levels, PetLevel{Level: lvl, PetHouseLevel: i32(base + step)})
	}
	return levels
}
