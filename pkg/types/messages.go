package types

// Client -> Server
// SubmitPick:
//   player_id: string (optional, defaults to the ?player= connection param)
//   selection:
//     type: "select_slice" | "select_seat" | "select_faction" |
//           "select_speaker_order" | "select_color" | "ban_faction" |
//           "place_tile"
//     slice / seat / faction / order / color / tileIndex / system as the
//     type requires
//
// Stage:
//   phase: string ("priorityValue", "faction", "homeSystems", "blue-1", ...)
//   value: string (re-staging overwrites; "redraw" defers to the draw pile
//          in the faction phase)
//
// Unstage:
//   phase: string
//
// UndoPhase:
//   phase: string
//   expected: number (caller's observed selection count)
//
// UndoLastPick:
//   expected: number

// Server -> Client
// StateSnapshot:
//   version: number
//   snapshot: see pkg/types/snapshot.go
//
// Error:
//   code: "WrongTurn" | "OutOfSync" | "InvalidPayload" | "NotFound" |
//         "Complete" | "GenerationExhausted" | "Internal"
//   error: string
//
// Errors go only to the client whose request was rejected; snapshots go to
// every subscriber of the draft.
