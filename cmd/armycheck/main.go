// armycheck validates an army composition file against the built-in
// reference data without touching the database.
//
// Usage:
//
//	go run ./cmd/armycheck -f army.yaml
//	go run ./cmd/armycheck -link u10x1-2x60s3x40 -th 16
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/armygo/internal/army"
	"github.com/udisondev/armygo/internal/data"
)

type armyFile struct {
	Name     string `yaml:"name"`
	TownHall int32  `yaml:"town_hall"`
	Units    []struct {
		Unit      string `yaml:"unit"`
		Amount    int32  `yaml:"amount"`
		Placement string `yaml:"placement"` // empty = army camp
	} `yaml:"units"`
	Equipment []string `yaml:"equipment"`
	Pets      []struct {
		Pet  string `yaml:"pet"`
		Hero string `yaml:"hero"`
	} `yaml:"pets"`
	Guide *struct {
		Text     string `yaml:"text"`
		VideoURL string `yaml:"video_url"`
	} `yaml:"guide"`
	Tags   []string `yaml:"tags"`
	Banner string   `yaml:"banner"`
}

func main() {
	file := flag.String("f", "", "army yaml file")
	link := flag.String("link", "", "army deep link (alternative to -f)")
	townHall := flag.Int("th", 0, "town hall level for -link mode")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(*file, *link, int32(*townHall)); err != nil {
		if army.IsRejection(err) {
			fmt.Fprintf(os.Stderr, "REJECTED: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(file, link string, townHall int32) error {
	snap, err := data.LoadDefault()
	if err != nil {
		return fmt.Errorf("loading reference data: %w", err)
	}

	var payload army.SavePayload
	switch {
	case file != "":
		payload, err = payloadFromFile(snap, file)
		if err != nil {
			return err
		}
	case link != "":
		if townHall == 0 {
			townHall = snap.MaxTier()
		}
		units, err := army.DecodeLink(snap, link)
		if err != nil {
			return err
		}
		payload = army.SavePayload{TownHall: townHall, Units: units}
	default:
		return fmt.Errorf("either -f or -link is required")
	}

	validated, err := army.ValidateComposition(snap, payload)
	if err != nil {
		return err
	}

	model := army.FromPayload(snap, validated)
	totals := model.HousingTotals()
	troopCap, spellCap, siegeCap := model.Capacity()

	fmt.Printf("OK: town hall %d\n", validated.TownHall)
	fmt.Printf("  troops: %d/%d  spells: %d/%d  sieges: %d/%d\n",
		totals.TroopSpace, troopCap, totals.SpellSpace, spellCap, totals.SiegeSpace, siegeCap)
	fmt.Printf("  training time: %ds  army type: %s\n", totals.TrainingTime, model.Type())
	if cc := model.CcHousingTotals(); cc != (army.CapacityTotals{}) {
		ccTroop, ccSpell, ccSiege := model.CcCapacity()
		fmt.Printf("  clan castle: troops %d/%d  spells %d/%d  sieges %d/%d\n",
			cc.TroopSpace, ccTroop, cc.SpellSpace, ccSpell, cc.SiegeSpace, ccSiege)
	}
	if l := army.EncodeLink(snap, validated); l != "" {
		fmt.Printf("  link: %s\n", l)
	}
	return nil
}

func payloadFromFile(snap *data.Snapshot, path string) (army.SavePayload, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return army.SavePayload{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var f armyFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return army.SavePayload{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	p := army.SavePayload{
		Name:     f.Name,
		TownHall: f.TownHall,
		Tags:     f.Tags,
		Banner:   f.Banner,
	}
	for _, entry := range f.Units {
		u := snap.UnitByName(entry.Unit)
		if u == nil {
			return army.SavePayload{}, fmt.Errorf("unknown unit %q", entry.Unit)
		}
		placement := army.PlacementArmyCamp
		if entry.Placement != "" {
			placement = army.Placement(entry.Placement)
		}
		amount := entry.Amount
		if amount == 0 {
			amount = 1
		}
		p.Units = append(p.Units, army.SelectedUnit{UnitID: u.ID, Placement: placement, Amount: amount})
	}
	for _, name := range f.Equipment {
		e := equipmentByName(snap, name)
		if e == nil {
			return army.SavePayload{}, fmt.Errorf("unknown equipment %q", name)
		}
		p.Equipment = append(p.Equipment, army.SelectedEquipment{EquipmentID: e.ID})
	}
	for _, entry := range f.Pets {
		pet := petByName(snap, entry.Pet)
		if pet == nil {
			return army.SavePayload{}, fmt.Errorf("unknown pet %q", entry.Pet)
		}
		p.Pets = append(p.Pets, army.SelectedPet{PetID: pet.ID, Hero: data.Hero(entry.Hero)})
	}
	if f.Guide != nil {
		p.Guide = &army.Guide{Text: f.Guide.Text, VideoURL: f.Guide.VideoURL}
	}
	return p, nil
}

// equipmentByName ищет снаряжение по имени. Names are a human input surface
// only: identity everywhere else is the id.
func equipmentByName(snap *data.Snapshot, name string) *data.EquipmentDefinition {
	for _, e := range snap.EquipmentList() {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func petByName(snap *data.Snapshot, name string) *data.PetDefinition {
	for _, p := range snap.Pets() {
		if p.Name == name {
			return p
		}
	}
	return nil
}
