// Package client implements the load-generating War client.
//
// A client connects, sends WANTGAME, reads its 27-byte GAMESTART frame and
// then plays its 26 cards in the order they were dealt, reading one
// PLAYRESULT frame after each PLAYCARD. The running score moves by +1 on a
// WIN and -1 on a LOSE.
//
// RunMany plays many such games at once, with at most a fixed number in
// flight. A failed game is logged and counted, never fatal to the run.
//
// The client shares nothing with the server but the wire format.
package client
