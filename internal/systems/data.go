package systems

// MecatolRex is the fixed central system of every map.
const MecatolRex = "18"

// Default returns the registry for the base tile set plus the expansion
// legendaries and a handful of hyperlane tiles.
func Default() *Registry {
	return NewRegistry(baseSystems)
}

var baseSystems = []System{
	{ID: "18", Planets: []Planet{{Name: "Mecatol Rex", Resources: 1, Influence: 6}}},

	// single-planet blue backs
	{ID: "19", Planets: []Planet{{Name: "Wellon", Resources: 1, Influence: 2, Skip: SkipCybernetic}}},
	{ID: "20", Planets: []Planet{{Name: "Vefut II", Resources: 2, Influence: 2}}},
	{ID: "21", Planets: []Planet{{Name: "Thibah", Resources: 1, Influence: 1, Skip: SkipPropulsion}}},
	{ID: "22", Planets: []Planet{{Name: "Tar'mann", Resources: 1, Influence: 1, Skip: SkipBiotic}}},
	{ID: "23", Planets: []Planet{{Name: "Saudor", Resources: 2, Influence: 2}}},
	{ID: "24", Planets: []Planet{{Name: "Mehar Xull", Resources: 1, Influence: 3, Skip: SkipWarfare}}},
	{ID: "25", Planets: []Planet{{Name: "Quann", Resources: 2, Influence: 1}}, Wormholes: []Wormhole{WormholeBeta}},
	{ID: "26", Planets: []Planet{{Name: "Lodor", Resources: 3, Influence: 1}}, Wormholes: []Wormhole{WormholeAlpha}},

	// two-planet blue backs
	{ID: "27", Planets: []Planet{{Name: "New Albion", Resources: 1, Influence: 1, Skip: SkipBiotic}, {Name: "Starpoint", Resources: 3, Influence: 1}}},
	{ID: "28", Planets: []Planet{{Name: "Tequ'ran", Resources: 2, Influence: 0}, {Name: "Torkan", Resources: 0, Influence: 3}}},
	{ID: "29", Planets: []Planet{{Name: "Qucen'n", Resources: 1, Influence: 2}, {Name: "Rarron", Resources: 0, Influence: 3}}},
	{ID: "30", Planets: []Planet{{Name: "Mellon", Resources: 0, Influence: 2}, {Name: "Zohbat", Resources: 3, Influence: 1}}},
	{ID: "31", Planets: []Planet{{Name: "Lazar", Resources: 1, Influence: 0, Skip: SkipCybernetic}, {Name: "Sakulag", Resources: 2, Influence: 1}}},
	{ID: "32", Planets: []Planet{{Name: "Dal Bootha", Resources: 0, Influence: 2}, {Name: "Xxehan", Resources: 1, Influence: 1}}},
	{ID: "33", Planets: []Planet{{Name: "Corneeq", Resources: 1, Influence: 2}, {Name: "Resculon", Resources: 2, Influence: 0}}},
	{ID: "34", Planets: []Planet{{Name: "Centauri", Resources: 1, Influence: 3}, {Name: "Gral", Resources: 1, Influence: 1, Skip: SkipPropulsion}}},
	{ID: "35", Planets: []Planet{{Name: "Bereg", Resources: 3, Influence: 1}, {Name: "Lirta IV", Resources: 2, Influence: 3}}},
	{ID: "36", Planets: []Planet{{Name: "Arnor", Resources: 2, Influence: 1}, {Name: "Lor", Resources: 1, Influence: 2}}},
	{ID: "37", Planets: []Planet{{Name: "Arinam", Resources: 1, Influence: 2}, {Name: "Meer", Resources: 0, Influence: 4, Skip: SkipWarfare}}},
	{ID: "38", Planets: []Planet{{Name: "Abyz", Resources: 3, Influence: 0}, {Name: "Fria", Resources: 2, Influence: 0}}},

	// red backs
	{ID: "39", Wormholes: []Wormhole{WormholeAlpha}},
	{ID: "40", Wormholes: []Wormhole{WormholeBeta}},
	{ID: "41", Anomalies: []Anomaly{AnomalyGravityRift}},
	{ID: "42", Anomalies: []Anomaly{AnomalyNebula}},
	{ID: "43", Anomalies: []Anomaly{AnomalySupernova}},
	{ID: "44", Anomalies: []Anomaly{AnomalyAsteroidField}},
	{ID: "45", Anomalies: []Anomaly{AnomalyAsteroidField}},
	{ID: "46"},
	{ID: "47"},
	{ID: "48"},
	{ID: "49"},
	{ID: "50"},

	// expansion blue backs
	{ID: "59", Planets: []Planet{{Name: "Archon Vail", Resources: 1, Influence: 3, Skip: SkipPropulsion}}},
	{ID: "60", Planets: []Planet{{Name: "Perimeter", Resources: 2, Influence: 1}}},
	{ID: "61", Planets: []Planet{{Name: "Ang", Resources: 2, Influence: 0, Skip: SkipWarfare}}},
	{ID: "62", Planets: []Planet{{Name: "Sem-Lore", Resources: 3, Influence: 2, Skip: SkipCybernetic}}},
	{ID: "63", Planets: []Planet{{Name: "Vorhal", Resources: 0, Influence: 2, Skip: SkipBiotic}}},
	{ID: "64", Planets: []Planet{{Name: "Atlas", Resources: 3, Influence: 1}}, Wormholes: []Wormhole{WormholeBeta}},
	{ID: "69", Planets: []Planet{{Name: "Accoen", Resources: 2, Influence: 3}, {Name: "Jeol Ir", Resources: 2, Influence: 3}}},
	{ID: "70", Planets: []Planet{{Name: "Kraag", Resources: 2, Influence: 1}, {Name: "Siig", Resources: 0, Influence: 2}}},
	{ID: "71", Planets: []Planet{{Name: "Ba'kal", Resources: 3, Influence: 2}, {Name: "Alio Prima", Resources: 1, Influence: 1}}},
	{ID: "72", Planets: []Planet{{Name: "Lisis", Resources: 2, Influence: 2}, {Name: "Velnor", Resources: 2, Influence: 1, Skip: SkipWarfare}}},
	{ID: "73", Planets: []Planet{{Name: "Cealdri", Resources: 0, Influence: 2, Skip: SkipCybernetic}, {Name: "Xanhact", Resources: 0, Influence: 1}}},
	{ID: "74", Planets: []Planet{{Name: "Vega Major", Resources: 2, Influence: 1}, {Name: "Vega Minor", Resources: 1, Influence: 2, Skip: SkipPropulsion}}},
	{ID: "75", Planets: []Planet{{Name: "Loki", Resources: 1, Influence: 2}, {Name: "Abaddon", Resources: 1, Influence: 0}, {Name: "Ashtroth", Resources: 2, Influence: 0}}},
	{ID: "76", Planets: []Planet{{Name: "Rigel I", Resources: 0, Influence: 1}, {Name: "Rigel II", Resources: 1, Influence: 2}, {Name: "Rigel III", Resources: 1, Influence: 1, Skip: SkipBiotic}}},

	// expansion red backs
	{ID: "77"},
	{ID: "78"},
	{ID: "79", Anomalies: []Anomaly{AnomalyAsteroidField}, Wormholes: []Wormhole{WormholeAlpha}},
	{ID: "80", Anomalies: []Anomaly{AnomalySupernova}},
	{ID: "81", Anomalies: []Anomaly{AnomalyGravityRift}},
	{ID: "82", Anomalies: []Anomaly{AnomalyNebula}},

	// expansion legendaries
	{ID: "65", Planets: []Planet{{Name: "Primor", Resources: 2, Influence: 1, Legendary: true}}},
	{ID: "66", Planets: []Planet{{Name: "Hope's End", Resources: 3, Influence: 0, Legendary: true}}},

	// hyperlanes: each pair joins two hex edges straight through the tile
	{ID: "83A", Hyperlanes: [][2]int{{0, 3}}},
	{ID: "84A", Hyperlanes: [][2]int{{1, 4}}},
	{ID: "85A", Hyperlanes: [][2]int{{2, 5}}},
	{ID: "86A", Hyperlanes: [][2]int{{0, 3}, {1, 4}}},
}
