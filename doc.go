// Package amphipod computes the minimum total energy needed to sort the
// amphipods of a burrow into their own rooms.
//
// 🚀 What is in the box?
//
//	A small, exact solver with a practical shell around it:
//		• State model: corridor, rooms, burrows, legal moves and their energy
//		• Canonical keys: two uint64 words per burrow for memo tables
//		• Search: depth-first branch-and-bound, best-first (Dijkstra), parallel
//		• Input: the ASCII burrow diagram, including the unfolded part-two form
//		• Shell: CLI, YAML config, structured logs, OpenTelemetry, result cache
//
// ✨ Guarantees
//
//   - Exact – every strategy returns the true minimum, or reports the burrow
//     unsolvable without an error
//   - Immutable states – successors share untouched rooms with their parent
//   - Contract checks – an illegal move panics, bad input is an error
//
// Everything is organized under these packages:
//
//	burrow/  — Kind, Corridor, Room, Burrow, Move and Key
//	diagram/ — parse, unfold and format burrow diagrams
//	solver/  — Solve with DepthFirst, BestFirst and Parallel strategies
//	store/   — BadgerDB cache of solved burrows
//	config/  — YAML + environment configuration with validation
//	logging/ — bolt structured logging and field helpers
//	cli/     — cobra commands behind cmd/amphipod
//
// Quick ASCII example:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
//	sorts for 12521 energy.
//
//	go install github.com/katalvlaran/amphipod/cmd/amphipod@latest
//	amphipod solve -p 1 -f input.txt
package amphipod
