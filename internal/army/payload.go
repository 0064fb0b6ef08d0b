package army

import (
	"github.com/google/uuid"

	"github.com/udisondev/armygo/internal/data"
)

// Placement — куда ставится юнит: армейский лагерь или клановый замок.
// The two pools have independent capacities and independent unlock rules.
type Placement string

const (
	PlacementArmyCamp   Placement = "army_camp"
	PlacementClanCastle Placement = "clan_castle"
)

// Valid reports whether p is a recognized placement.
func (p Placement) Valid() bool {
	return p == PlacementArmyCamp || p == PlacementClanCastle
}

// SelectedUnit — выбранный юнит в композиции.
type SelectedUnit struct {
	UnitID    int32     `json:"unit_id"`
	Placement Placement `json:"placement"`
	Amount    int32     `json:"amount"`
}

// SelectedEquipment — выбранное снаряжение.
type SelectedEquipment struct {
	EquipmentID int32 `json:"equipment_id"`
}

// SelectedPet — питомец, назначенный герою.
type SelectedPet struct {
	PetID int32     `json:"pet_id"`
	Hero  data.Hero `json:"hero"`
}

// Guide — текстовый гайд композиции с опциональной видео-ссылкой.
type Guide struct {
	Text     string `json:"text"`
	VideoURL string `json:"video_url,omitempty"`
}

// SavePayload — форма сохранения композиции. Это и есть wire/storage shape:
// сериализуется в JSONB колонки как есть, поэтому имена и nullability полей
// должны совпадать с тем, что принимает ValidateComposition.
type SavePayload struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	TownHall  int32               `json:"town_hall"`
	Units     []SelectedUnit      `json:"units"`
	Equipment []SelectedEquipment `json:"equipment"`
	Pets      []SelectedPet       `json:"pets"`
	Guide     *Guide              `json:"guide,omitempty"`
	Tags      []string            `json:"tags,omitempty"`
	Banner    string              `json:"banner,omitempty"`
}

// UnitsIn возвращает юниты payload с указанным placement.
func (p *SavePayload) UnitsIn(placement Placement) []SelectedUnit {
	var out []SelectedUnit
	for _, u := range p.Units {
		if u.Placement == placement {
			out = append(out, u)
		}
	}
	return out
}
