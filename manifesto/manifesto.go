// Package manifesto embeds the party manifesto tables used to seed the
// promises collection.
package manifesto

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"

	"promisewatch-be/models"
)

//go:embed data/*.json
var tables embed.FS

// Table names one embedded manifesto.
type Table struct {
	Party models.Party
	Year  int
	file  string
}

var (
	NDC2024 = Table{Party: models.NDC, Year: 2024, file: "data/ndc_2024.json"}
	NPP2016 = Table{Party: models.NPP, Year: 2016, file: "data/npp_2016.json"}
)

// Tables lists every embedded manifesto in seeding order.
var Tables = []Table{NDC2024, NPP2016}

// Older tables use "completed" where the tracker uses "fulfilled".
var statusAliases = map[models.PromiseStatus]models.PromiseStatus{
	"completed": models.StatusFulfilled,
}

type entry struct {
	ID string `json:"id"`
	models.Promise
}

// Load decodes one table. Returned promises carry the table id in Ref and
// no store ID.
func Load(t Table) ([]models.Promise, error) {
	raw, err := tables.ReadFile(t.file)
	if err != nil {
		return nil, fmt.Errorf("manifesto %s %d: %w", t.Party, t.Year, err)
	}
	var entries []entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("manifesto %s %d: %w", t.Party, t.Year, err)
	}
	promises := make([]models.Promise, 0, len(entries))
	for _, e := range entries {
		p := e.Promise
		p.ID = ""
		p.Ref = e.ID
		if alias, ok := statusAliases[p.Status]; ok {
			p.Status = alias
		}
		promises = append(promises, p)
	}
	return promises, nil
}

// Find returns the table for party and year.
func Find(party models.Party, year int) (Table, bool) {
	for _, t := range Tables {
		if t.Party == party && t.Year == year {
			return t, true
		}
	}
	return Table{}, false
}

// All loads every table, in seeding order.
func All() ([]models.Promise, error) {
	var all []models.Promise
	for _, t := range Tables {
		promises, err := Load(t)
		if err != nil {
			return nil, err
		}
		all = append(all, promises...)
	}
	return all, nil
}

// Flagship filters promises down to the flagship priority, sorted by Ref.
func Flagship(promises []models.Promise) []models.Promise {
	var out []models.Promise
	for _, p := range promises {
		if p.Priority == models.Flagship {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ref < out[j].Ref })
	return out
}
