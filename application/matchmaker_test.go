package application

import (
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func pipeConn(t *testing.T) (net.Conn, net.Conn) {
	t.Helper()
	server, client := net.Pipe()
	t.Cleanup(func() {
		server.Close()
		client.Close()
	})
	return server, client
}

func TestMatchmakerFIFO(t *testing.T) {
	m := NewMatchmaker()
	c1, _ := pipeConn(t)
	c2, _ := pipeConn(t)
	c3, _ := pipeConn(t)

	_, ok := m.Offer(c1)
	require.False(t, ok, "C1 must wait")

	pair, ok := m.Offer(c2)
	require.True(t, ok, "C2 must pair with C1")
	require.Same(t, c1, pair.P1)
	require.Same(t, c2, pair.P2)

	_, ok = m.Offer(c3)
	require.False(t, ok, "C3 must wait")
	require.Equal(t, 1, m.Len())
}

func TestMatchmakerPairsLongestWaiting(t *testing.T) {
	m := NewMatchmaker()
	conns := make([]net.Conn, 6)
	for i := range conns {
		conns[i], _ = pipeConn(t)
	}
	var pairs [][2]net.Conn
	for _, c := range conns {
		if pair, ok := m.Offer(c); ok {
			pairs = append(pairs, [2]net.Conn{pair.P1, pair.P2})
		}
	}
	require.Len(t, pairs, 3)
	for i, p := range pairs {
		require.Same(t, conns[2*i], p[0])
		require.Same(t, conns[2*i+1], p[1])
	}
	require.Zero(t, m.Len())
}

func TestMatchmakerUniqueGameIDs(t *testing.T) {
	m := NewMatchmaker()
	a, _ := pipeConn(t)
	b, _ := pipeConn(t)
	c, _ := pipeConn(t)
	d, _ := pipeConn(t)
	m.Offer(a)
	p1, _ := m.Offer(b)
	m.Offer(c)
	p2, _ := m.Offer(d)
	require.NotEqual(t, p1.ID, p2.ID)
}

func TestMatchmakerConcurrentOffers(t *testing.T) {
	m := NewMatchmaker()
	n := 100
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		seen  = make(map[net.Conn]int)
		pairs int
	)
	for i := 0; i < n; i++ {
		c, _ := pipeConn(t)
		wg.Add(1)
		go func() {
			defer wg.Done()
			pair, ok := m.Offer(c)
			if !ok {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			pairs++
			seen[pair.P1]++
			seen[pair.P2]++
		}()
	}
	wg.Wait()
	require.Equal(t, n/2, pairs)
	require.Zero(t, m.Len())
	for _, count := range seen {
		require.Equal(t, 1, count, "a connection was paired twice")
	}
}

func TestMatchmakerClose(t *testing.T) {
	m := NewMatchmaker()
	waiting, peer := pipeConn(t)
	m.Offer(waiting)
	require.NoError(t, m.Close())
	require.Zero(t, m.Len())

	_, err := peer.Read(make([]byte, 1))
	require.Error(t, err, "waiting connection must be closed")

	late, latePeer := pipeConn(t)
	_, ok := m.Offer(late)
	require.False(t, ok)
	_, err = latePeer.Read(make([]byte, 1))
	require.Error(t, err, "offers after Close must be closed")
}
