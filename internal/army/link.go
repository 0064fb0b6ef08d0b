package army

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/udisondev/armygo/internal/data"
)

// Deep-link кодек для шаринга армии: записи amount×id через "x",
// разделённые "-"; войска и осадные машины идут в секции "u",
// заклинания — в секции "s". Например "u10x1-2x60s3x40".
// Only army camp units participate: donations are not shareable.

// EncodeLink кодирует юниты лагеря в строку deep link.
func EncodeLink(snap *data.Snapshot, p SavePayload) string {
	var units, spells []string
	for _, su := range p.Units {
		if su.Placement != PlacementArmyCamp {
			continue
		}
		u := snap.Unit(su.UnitID)
		if u == nil {
			continue
		}
		entry := fmt.Sprintf("%dx%d", su.Amount, su.UnitID)
		if u.Kind == data.KindSpell {
			spells = append(spells, entry)
		} else {
			units = append(units, entry)
		}
	}

	var b strings.Builder
	if len(units) > 0 {
		b.WriteString("u")
		b.WriteString(strings.Join(units, "-"))
	}
	if len(spells) > 0 {
		b.WriteString("s")
		b.WriteString(strings.Join(spells, "-"))
	}
	return b.String()
}

// DecodeLink разбирает строку deep link в выбор юнитов лагеря.
// Неизвестные id и несоответствие вида секции отклоняются.
func DecodeLink(snap *data.Snapshot, link string) ([]SelectedUnit, error) {
	if link == "" {
		return nil, nil
	}

	unitPart, spellPart := link, ""
	if i := strings.IndexByte(link, 's'); i >= 0 {
		unitPart, spellPart = link[:i], link[i+1:]
	}
	if unitPart != "" {
		if !strings.HasPrefix(unitPart, "u") {
			return nil, rejectf("malformed army link %q", link)
		}
		unitPart = unitPart[1:]
	}

	var out []SelectedUnit
	parse := func(part string, wantSpell bool) error {
		if part == "" {
			return nil
		}
		for _, entry := range strings.Split(part, "-") {
			amountStr, idStr, ok := strings.Cut(entry, "x")
			if !ok {
				return rejectf("malformed army link entry %q", entry)
			}
			amount, err := strconv.ParseInt(amountStr, 10, 32)
			if err != nil || amount < 1 {
				return rejectf("malformed army link entry %q", entry)
			}
			id, err := strconv.ParseInt(idStr, 10, 32)
			if err != nil {
				return rejectf("malformed army link entry %q", entry)
			}
			u := snap.Unit(int32(id))
			if u == nil {
				return &NotFoundError{Entity: "unit", ID: int32(id)}
			}
			if isSpell := u.Kind == data.KindSpell; isSpell != wantSpell {
				return rejectf("%s is in the wrong army link section", u.Name)
			}
			out = append(out, SelectedUnit{
				UnitID:    int32(id),
				Placement: PlacementArmyCamp,
				Amount:    int32(amount),
			})
		}
		return nil
	}

	if err := parse(unitPart, false); err != nil {
		return nil, err
	}
	if err := parse(spellPart, true); err != nil {
		return nil, err
	}
	return out, nil
}
