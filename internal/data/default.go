package data

// LoadDefault строит Snapshot из встроенных литералов справочника.
// Used by offline tooling and tests; the server builds the snapshot from
// the reference tables in PostgreSQL instead.
func LoadDefault() (*Snapshot, error) {
	return NewSnapshot(townHallDefs, unitDefs, equipmentDefs, petDefs)
}

// DefaultRecords возвращает встроенные записи справочника как есть —
// для первичного наполнения таблиц в PostgreSQL.
func DefaultRecords() ([]TownHallTier, []UnitDefinition, []EquipmentDefinition, []PetDefinition) {
	return townHallDefs, unitDefs, equipmentDefs, petDefs
}
