package network

import (
	"context"
	"fmt"
	"net"
)

// Listen announces on the TCP address addr (host:port) with address reuse
// enabled. The accept backlog is the kernel's somaxconn.
func Listen(ctx context.Context, addr string) (net.Listener, error) {
	lc := net.ListenConfig{Control: reuseAddr}
	l, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return l, nil
}
