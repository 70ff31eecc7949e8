// Package diagram reads and writes the ASCII burrow diagram used as puzzle
// input.
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// Parse keeps only the agent letters A–D. Every line that carries letters is
// one room row: its four letters belong to rooms A, B, C and D in that order,
// and the first such line is the row nearest the corridor. The result is four
// mouth-first occupant lists ready for burrow.New.
//
// Unfold turns a two-row input into the four-row variant by slipping the fixed
// rows
//
//	#D#C#B#A#
//	#D#B#A#C#
//
// between the original rows.
//
// Errors (sentinel):
//
//	– ErrNoAgents     if the input holds no agent letters at all.
//	– ErrRaggedRooms  if a row does not carry exactly four letters.
//	– ErrTooDeep      if the input has more rows than burrow.MaxRoomDepth.
//	– ErrUnfoldDepth  if Unfold is given rooms that are not two deep.
package diagram
