// Package application wires the War server together.
//
// The Server accepts connections, checks each opening WANTGAME frame and
// offers valid connections to the Matchmaker. Every pair the Matchmaker
// forms is handed to its own goroutine running a game.Session, so the accept
// loop never waits on game I/O. The Supervisor keeps track of the games in
// flight and of how the finished ones ended.
package application
