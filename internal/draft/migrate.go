package draft

// Migrate normalizes a loaded document to the current schema. Version 1
// drafts stored simultaneous-phase staging in per-phase top-level fields;
// they are folded into the canonical Staged map here so the engine never
// branches on field presence.
func Migrate(d *Document) {
	if d.SchemaVersion >= SchemaVersion {
		return
	}
	if d.Staged == nil {
		d.Staged = make(map[string]map[string]string)
	}
	if len(d.LegacyStagedPriorities) > 0 && d.Staged[PhasePriority] == nil {
		d.Staged[PhasePriority] = d.LegacyStagedPriorities
	}
	if len(d.LegacyStagedFactions) > 0 && d.Staged[PhaseFaction] == nil {
		d.Staged[PhaseFaction] = d.LegacyStagedFactions
	}
	d.LegacyStagedPriorities = nil
	d.LegacyStagedFactions = nil
	d.SchemaVersion = SchemaVersion
}
