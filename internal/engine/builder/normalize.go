package builder

import (
	"fmt"
	"slices"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"go.trai.ch/zerr"
)

// hookChain is the canonical form of the shared hooks of one build call.
type hookChain struct {
	input  []domain.HookEntry
	output []domain.HookEntry
}

// canonicalBuilding is a building with resolved source and destination.
type canonicalBuilding struct {
	index    int
	building *domain.Building
	source   domain.SourceLocation
	dest     domain.DestLocation
	taskIDs  []string
}

// pipelineSpec describes one (building, task) pipeline.
type pipelineSpec struct {
	building  *canonicalBuilding
	taskID    string
	transform domain.Transform
}

func normalizeHooks(hooks *domain.Hooks) hookChain {
	if hooks == nil {
		return hookChain{}
	}
	return hookChain{
		input:  domain.HookEntries(hooks.Input),
		output: domain.HookEntries(hooks.Output),
	}
}

func normalizeBuildings(buildings []domain.Building) ([]*canonicalBuilding, error) {
	out := make([]*canonicalBuilding, 0, len(buildings))
	for i := range buildings {
		b := &buildings[i]
		if b.Source == nil {
			return nil, invalidBuilding(i, "missing source")
		}
		if b.Destination == nil {
			return nil, invalidBuilding(i, "missing destination")
		}

		ids := make([]string, 0, len(b.Tasks))
		for id := range b.Tasks {
			if id == "" {
				return nil, invalidBuilding(i, "empty task identifier")
			}
			ids = append(ids, id)
		}
		slices.Sort(ids)

		out = append(out, &canonicalBuilding{
			index:    i,
			building: b,
			source:   domain.ResolveSource(b.Source),
			dest:     domain.ResolveDest(b.Destination),
			taskIDs:  ids,
		})
	}
	return out, nil
}

func invalidBuilding(index int, reason string) error {
	return zerr.With(zerr.Wrap(domain.ErrInvalidBuilding, fmt.Sprintf("building %d: %s", index, reason)), "building", index)
}

// messages returns the completion messages of the building.
func (c *canonicalBuilding) messages() []string {
	if len(c.building.Messages) == 0 {
		return []string{domain.DefaultMessage}
	}
	return c.building.Messages
}

// changeExtension returns the extension handed to the change detector and
// whether change detection applies at all.
func (c *canonicalBuilding) changeExtension() (string, bool) {
	switch ext := c.building.Extension; ext {
	case "":
		return "", false
	case domain.WildcardExtension:
		return "", true
	default:
		return ext, true
	}
}
