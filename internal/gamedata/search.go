package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/RogueMods_Go/internal/domain"
)

// FindByName resolves a species by id, exact name, unique prefix or closest
// fuzzy match, in that order.
func (r *Registry) FindByName(query string) (*domain.Species, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, fmt.Errorf(ErrMsgNoMatch, domain.ErrSpeciesNotFound, query)
	}

	if id, err := strconv.Atoi(q); err == nil {
		return r.Species(domain.SpeciesID(id))
	}

	var prefixHits []*domain.Species
	for _, s := range r.data.Species {
		name := strings.ToLower(s.Name)
		if name == q {
			return s, nil
		}
		if strings.HasPrefix(name, q) {
			prefixHits = append(prefixHits, s)
		}
	}
	if len(prefixHits) == 1 {
		return prefixHits[0], nil
	}

	var (
		best     *domain.Species
		bestDist = -1
	)
	for _, s := range r.data.Species {
		name := strings.ToLower(s.Name)
		dist := levenshtein.ComputeDistance(q, name)
		if dist > distanceLimit(len(name)) {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			best, bestDist = s, dist
		}
	}
	if best == nil {
		return nil, fmt.Errorf(ErrMsgNoMatch, domain.ErrSpeciesNotFound, query)
	}
	return best, nil
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
