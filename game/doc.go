// Package game runs one game of War between two paired connections.
//
// # Lifecycle
//
// A Session moves through Dealt, then Round(1) .. Round(26), then Completed.
// Any protocol violation or I/O failure moves it to Killed instead. Both
// terminal states close the two connections and perform no further I/O.
//
// # Rounds
//
// Each round reads a PLAYCARD frame from player 1, then one from player 2.
// A card is accepted only if it was dealt to its sender and has not been
// played before. The ranks are then compared and both players receive a
// PLAYRESULT frame. Player 1 is always read first, so a stalled player 1
// holds the game until its frame arrives or the optional round timeout
// expires.
//
// # Errors
//
// Failures that kill a game are reported in Result.Err as one of ErrFraming,
// *ProtocolViolation or *TransportError. They never leave the session in any
// other way.
package game
