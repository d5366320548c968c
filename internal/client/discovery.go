package client

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"geoquiz/internal/protocol"
)

// probeTimeout bounds one discovery connection attempt end to end.
const probeTimeout = time.Second

// Probes talk to hosts we don't control; their frame noise is not
// worth logging.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Probe asks a single address whether a session is hosted there. Hosts
// that don't answer within the timeout are reported as an error.
func Probe(address string, port int, timeout time.Duration) (protocol.HostInfo, error) {
	if timeout <= 0 {
		timeout = probeTimeout
	}
	deadline := time.Now().Add(timeout)

	conn, err := net.DialTimeout("tcp", net.JoinHostPort(address, strconv.Itoa(port)), timeout)
	if err != nil {
		return protocol.HostInfo{}, fmt.Errorf("probe %s: %w", address, err)
	}
	defer conn.Close()

	frame, err := protocol.Encode(protocol.GetHostInfo{})
	if err != nil {
		return protocol.HostInfo{}, err
	}

	conn.SetDeadline(deadline)
	if _, err := conn.Write(frame); err != nil {
		return protocol.HostInfo{}, fmt.Errorf("probe %s: %w", address, err)
	}

	dec := protocol.NewDecoder(discardLogger)
	buf := make([]byte, readBufferSize)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			for _, msg := range dec.Push(buf[:n]) {
				if info, ok := msg.(protocol.HostInfo); ok {
					return info, nil
				}
			}
		}
		if err != nil {
			return protocol.HostInfo{}, fmt.Errorf("probe %s: %w", address, err)
		}
	}
}

// Scan sweeps likely addresses on the local /24 subnet for hosted
// sessions. localIP anchors the subnet and is skipped itself.
func Scan(localIP string, port int, timeout time.Duration) []protocol.HostInfo {
	dot := strings.LastIndex(localIP, ".")
	if dot < 0 {
		return nil
	}
	subnet := localIP[:dot]

	// Common router and device addresses; a full sweep takes too long
	// on a phone-grade network.
	octets := []int{1, 100, 101, 102, 103, 104, 105, 254}

	var (
		mu    sync.Mutex
		found []protocol.HostInfo
		wg    sync.WaitGroup
	)

	for _, octet := range octets {
		addr := fmt.Sprintf("%s.%d", subnet, octet)
		if addr == localIP {
			continue
		}

		wg.Add(1)
		go func(addr string) {
			defer wg.Done()
			info, err := Probe(addr, port, timeout)
			if err != nil {
				return
			}
			mu.Lock()
			found = append(found, info)
			mu.Unlock()
		}(addr)
	}

	wg.Wait()
	return found
}

// LocalIP returns the outbound interface address, used to anchor
// subnet scans and to announce the host's own address.
func LocalIP() (string, error) {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "", fmt.Errorf("determine local address: %w", err)
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "", fmt.Errorf("determine local address: unexpected address type")
	}
	return addr.IP.String(), nil
}
