package main

import (
	"fmt"
	"net"
	"strconv"
)

// hostPort joins host and port after checking that port is a TCP port number.
// An empty host means every local interface.
func hostPort(host, port string) (string, error) {
	n, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return "", fmt.Errorf("invalid port %q: %w", port, err)
	}
	if n == 0 {
		return "", fmt.Errorf("invalid port %q: must be between 1 and 65535", port)
	}
	return net.JoinHostPort(host, port), nil
}
