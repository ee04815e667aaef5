package draft

import "strconv"

// Pick-order construction. The order is a pure function of settings and the
// shuffled base order, so a fixed seed always yields the same sequence.

func reversed(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[len(ids)-1-i] = id
	}
	return out
}

func seqSlots(ids []string, action Action) []Slot {
	out := make([]Slot, len(ids))
	for i, id := range ids {
		out[i] = Slot{Action: action, Player: id}
	}
	return out
}

// buildStandardOrder lays out the standard draft:
//
//	[priority phase]  optional simultaneous opener
//	[bans]            reverse(base), repeated per configured ban round
//	snake             base, reverse(base), base
//	[optional rounds] one reverse(base) round each, in settings order:
//	                  speaker order, minor faction, color
func buildStandardOrder(s Settings, base []string) []Slot {
	rev := reversed(base)
	var order []Slot
	if s.PriorityPhase {
		order = append(order, Slot{Action: ActionPhase, Phase: PhasePriority})
	}
	for i := 0; i < s.BanRounds; i++ {
		order = append(order, seqSlots(rev, ActionBan)...)
	}
	order = append(order, seqSlots(base, ActionDraft)...)
	order = append(order, seqSlots(rev, ActionDraft)...)
	order = append(order, seqSlots(base, ActionDraft)...)
	if s.SpeakerOrderRound {
		order = append(order, seqSlots(rev, ActionSpeaker)...)
	}
	if s.MinorFactionRound {
		order = append(order, seqSlots(rev, ActionMinorFaction)...)
	}
	if s.ColorRound {
		order = append(order, seqSlots(rev, ActionColor)...)
	}
	return order
}

// buildTexasOrder lays out the hand-dealing variant: one simultaneous phase
// per keep-and-pass round of each color pool, then the faction, priority,
// and home-system phases, then sequential tile placement in seat order.
func buildTexasOrder(s Settings, seatOrder []string) []Slot {
	var order []Slot
	for r := 1; r <= s.BlueKeeps; r++ {
		order = append(order, Slot{Action: ActionPhase, Phase: numberedPhase(bluePhasePrefix, r)})
	}
	for r := 1; r <= s.RedKeeps; r++ {
		order = append(order, Slot{Action: ActionPhase, Phase: numberedPhase(redPhasePrefix, r)})
	}
	order = append(order,
		Slot{Action: ActionPhase, Phase: PhaseFaction},
		Slot{Action: ActionPhase, Phase: PhasePriority},
		Slot{Action: ActionPhase, Phase: PhaseHomeSystems},
	)
	for r := 0; r < s.BlueKeeps+s.RedKeeps; r++ {
		order = append(order, seqSlots(seatOrder, ActionPlaceTile)...)
	}
	return order
}

func numberedPhase(prefix string, round int) string {
	return prefix + strconv.Itoa(round)
}
