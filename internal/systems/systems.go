// Package systems holds the immutable reference data for system tiles:
// planet values, wormholes, anomalies, and hyperlane links. Data is embedded
// and looked up by system ID; nothing here is mutated after init.
package systems

import "sort"

type Wormhole string

const (
	WormholeAlpha Wormhole = "alpha"
	WormholeBeta  Wormhole = "beta"
	WormholeGamma Wormhole = "gamma"
)

type Anomaly string

const (
	AnomalyAsteroidField Anomaly = "asteroid_field"
	AnomalyNebula        Anomaly = "nebula"
	AnomalySupernova     Anomaly = "supernova"
	AnomalyGravityRift   Anomaly = "gravity_rift"
)

type TechSkip string

const (
	SkipBiotic     TechSkip = "biotic"
	SkipPropulsion TechSkip = "propulsion"
	SkipCybernetic TechSkip = "cybernetic"
	SkipWarfare    TechSkip = "warfare"
)

type Planet struct {
	Name      string
	Resources int
	Influence int
	Skip      TechSkip
	Legendary bool
}

// System is one tile's static data. Hyperlanes lists pairs of hex edges
// joined by the tile (edge 0 is north, clockwise); a placed tile's rotation
// rotates both ends of every link.
type System struct {
	ID         string
	Planets    []Planet
	Wormholes  []Wormhole
	Anomalies  []Anomaly
	Hyperlanes [][2]int
}

func (s System) Legendaries() int {
	n := 0
	for _, p := range s.Planets {
		if p.Legendary {
			n++
		}
	}
	return n
}

func (s System) HasWormhole(w Wormhole) bool {
	for _, h := range s.Wormholes {
		if h == w {
			return true
		}
	}
	return false
}

// Registry resolves system IDs. The zero value is unusable; use Default or
// NewRegistry.
type Registry struct {
	byID map[string]System
}

func NewRegistry(list []System) *Registry {
	r := &Registry{byID: make(map[string]System, len(list))}
	for _, s := range list {
		r.byID[s.ID] = s
	}
	return r
}

func (r *Registry) Lookup(id string) (System, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// IDs returns all known system IDs in sorted order.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.byID))
	for id := range r.byID {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// PlanetIDs returns the IDs of systems that contain at least one planet,
// sorted. This is the default pool slices are drawn from.
func (r *Registry) PlanetIDs() []string {
	out := make([]string, 0, len(r.byID))
	for id, s := range r.byID {
		if len(s.Planets) > 0 && id != MecatolRex {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// EmptyIDs returns the IDs of planetless, non-hyperlane systems, sorted.
func (r *Registry) EmptyIDs() []string {
	out := make([]string, 0, len(r.byID))
	for id, s := range r.byID {
		if len(s.Planets) == 0 && len(s.Hyperlanes) == 0 && id != MecatolRex {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
