// Package war implements the card model and the wire format of the War
// card game protocol.
//
// # Cards
//
// A Card is an integer in [0, 51]. Its rank is card mod 13, where 0 is the
// deuce and 12 the ace; the suit (card div 13) never takes part in a
// comparison. A Hand holds the 26 cards dealt to one player and a CardSet is
// a compact membership set used to track played cards.
//
// # Frames
//
// Every message is a fixed-length frame whose first byte is a Command:
//
//	WANTGAME   client→server  [0x00, 0x00]
//	GAMESTART  server→client  [0x01] + 26 card bytes
//	PLAYCARD   client→server  [0x02, card]
//	PLAYRESULT server→client  [0x03, outcome]
//
// Outcomes are relative to the recipient: WIN, DRAW or LOSE.
package war
