//go:build !unix

package network

import "syscall"

// Outside unix the runtime default socket options are used.
func reuseAddr(_, _ string, _ syscall.RawConn) error {
	return nil
}
