// Package burrow models the amphipod burrow: a fixed eleven-slot corridor and four
// equally deep side rooms, one per agent kind, together with the legality and
// energy rules that govern every transition between burrow states.
//
// Topology (depth 2 shown):
//
//	#############
//	#...........#   corridor slots 0..10
//	###B#C#B#D###   room mouths sit below slots 2, 4, 6, 8
//	  #A#D#C#A#     slot 0 of a room is nearest the corridor
//	  #########
//
// Key types:
//
//   - Kind      – one of Amber, Bronze, Copper, Desert; StepCost is 1, 10, 100, 1000.
//   - Corridor  – value type; mouth slots can never hold an occupant.
//   - Room      – immutable; occupants always settle toward the closed end.
//   - Burrow    – immutable corridor + four *Room; successors share untouched rooms.
//   - Move      – one legal transition, carrying the energy it costs.
//   - Key       – compact comparable encoding of a Burrow for memo tables.
//
// Move families:
//
//   - IntoRoom:  a corridor occupant walks to its native room when the path is clear
//     and the room holds only natives.
//   - OutOfRoom: the topmost occupant of a room leaves for any reachable corridor slot,
//     unless it is native and nothing foreign sits beneath it.
//
// Energy of a move is (|slot − mouth| + depth + 1) × StepCost(kind), in both directions.
//
// Errors:
//
//   - ErrRoomCount    – New was given a number of rooms other than four.
//   - ErrRoomSize     – the rooms passed to New differ in length.
//   - ErrRoomDepth    – a room is empty or deeper than MaxRoomDepth.
//   - ErrInvalidKind  – an occupant is not one of the four kinds.
//   - ErrKeyLength    – KeyFromBytes was given a buffer of the wrong size.
//
// Calling Insert, Remove, Apply, RemoveToRoom or InsertFromRoom when the matching
// legality predicate is false is a programming error and panics.
package burrow
