package types

// StateSnapshot:
//   version: number
//   draft: the full draft document
//     settings, players, pickOrder, selections, slices, map, staged
//   players: players with draft-assigned attributes folded in from the
//     selection log (faction, sliceIndex, seat, speakerOrder, color)
//   currentSlot: { action, player?, phase? } (absent when complete)
//   complete: boolean
//   sliceValues: one valuation breakdown per slice, index-aligned:
//     { optimal: {resources, influence, flex}, modifiers: [{name, delta}],
//       equidistantPenalty, total }
