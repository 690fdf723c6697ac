// Package network provides the stream primitives the War server is built on.
//
// # Framing
//
// Every War message is a fixed-length frame, so the only read primitive the
// protocol needs is ReadExactly: it accumulates exactly n bytes from a
// connection across partial deliveries and reports a stream that ends early
// as ErrShortRead instead of returning fewer bytes silently.
//
// # Listening
//
// Listen opens a TCP listener with SO_REUSEADDR set, so a restarted server
// can bind its port again while old connections linger in TIME_WAIT.
package network
