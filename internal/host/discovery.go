package host

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"geoquiz/internal/protocol"
)

// DefaultDiscoveryPort is the side-channel port scanners probe for
// joinable sessions.
const DefaultDiscoveryPort = 8081

// discoveryTimeout bounds how long a probe connection may idle.
const discoveryTimeout = 5 * time.Second

// Announcer answers GET_HOST_INFO probes on the discovery side-channel
// so players on the same network can find the session without typing
// an address.
type Announcer struct {
	name        string
	address     string
	gamePort    int
	playerCount func() int
	logger      *slog.Logger

	ln   net.Listener
	done chan struct{}
}

// NewAnnouncer creates an announcer for a running session. playerCount
// is polled per probe so responses carry the current roster size.
func NewAnnouncer(name, address string, gamePort int, playerCount func() int, logger *slog.Logger) *Announcer {
	return &Announcer{
		name:        name,
		address:     address,
		gamePort:    gamePort,
		playerCount: playerCount,
		logger:      logger,
		done:        make(chan struct{}),
	}
}

// Start binds the discovery port and begins answering probes.
func (a *Announcer) Start(port int) error {
	ln, err := net.Listen("tcp", net.JoinHostPort("0.0.0.0", strconv.Itoa(port)))
	if err != nil {
		return fmt.Errorf("start announcer: %w", err)
	}
	a.ln = ln

	a.logger.Info("discovery announcer listening", "addr", ln.Addr().String())

	go a.acceptLoop()
	return nil
}

// Addr returns the bound announcer address.
func (a *Announcer) Addr() net.Addr {
	return a.ln.Addr()
}

// Stop closes the discovery listener. Safe to call more than once.
func (a *Announcer) Stop() {
	select {
	case <-a.done:
		return
	default:
		close(a.done)
	}
	a.ln.Close()
}

func (a *Announcer) acceptLoop() {
	for {
		conn, err := a.ln.Accept()
		if err != nil {
			select {
			case <-a.done:
			default:
				a.logger.Debug("announcer accept error", "error", err)
			}
			return
		}
		go a.serve(conn)
	}
}

// serve answers probes on one connection until the scanner closes it
// or the idle deadline passes.
func (a *Announcer) serve(conn net.Conn) {
	defer conn.Close()

	dec := protocol.NewDecoder(a.logger)
	buf := make([]byte, readBufferSize)

	for {
		conn.SetReadDeadline(time.Now().Add(discoveryTimeout))
		n, err := conn.Read(buf)
		if n > 0 {
			for _, msg := range dec.Push(buf[:n]) {
				if _, ok := msg.(protocol.GetHostInfo); !ok {
					continue
				}
				a.reply(conn)
			}
		}
		if err != nil {
			return
		}
	}
}

func (a *Announcer) reply(conn net.Conn) {
	info := protocol.HostInfo{
		Name:        a.name,
		Address:     a.address,
		Port:        a.gamePort,
		PlayerCount: a.playerCount(),
	}

	frame, err := protocol.Encode(info)
	if err != nil {
		a.logger.Debug("encode host info", "error", err)
		return
	}

	conn.SetWriteDeadline(time.Now().Add(discoveryTimeout))
	if _, err := conn.Write(frame); err != nil {
		a.logger.Debug("write host info", "error", err)
	}
}
