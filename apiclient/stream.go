package apiclient

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	apitypes "github.com/holaimscott/hidmux/apitypes"
)

// VibrationStream is a long-lived connection delivering the vibration values
// an applet session sends, one JSON line per event.
type VibrationStream struct {
	conn   net.Conn
	r      *bufio.Reader
	Aruid  uint64
	closed bool

	readCancel context.CancelFunc
	readMu     sync.Mutex
}

// OpenVibrationStream subscribes to the vibration events of an applet session.
// The session must already exist (use AppletCreate first).
func (c *Client) OpenVibrationStream(ctx context.Context, aruid uint64) (*VibrationStream, error) {
	if c.transport.mock != nil {
		return nil, fmt.Errorf("stream connections not supported with mock transport")
	}

	d := &net.Dialer{Timeout: c.transport.cfg.DialTimeout}
	conn, err := d.DialContext(ctx, "tcp", c.transport.addr)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	streamPath := fmt.Sprintf("vibration/stream/%d\x00", aruid)
	if _, err := conn.Write([]byte(streamPath)); err != nil {
		conn.Close()
		return nil, fmt.Errorf("write stream path: %w", err)
	}

	return &VibrationStream{conn: conn, r: bufio.NewReader(conn), Aruid: aruid}, nil
}

// Next blocks until the next vibration event arrives.
func (s *VibrationStream) Next() (*apitypes.VibrationStreamEvent, error) {
	if s.closed {
		return nil, fmt.Errorf("stream closed")
	}
	line, err := s.r.ReadBytes('\n')
	if err != nil {
		return nil, err
	}
	var ev apitypes.VibrationStreamEvent
	if err := json.Unmarshal(line, &ev); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	return &ev, nil
}

// StartReading begins asynchronously reading events in a background goroutine.
// The returned channels close when the stream ends; the error channel carries
// the terminating error (io.EOF on clean shutdown, ctx.Err on cancellation).
func (s *VibrationStream) StartReading(ctx context.Context, chSize int) (<-chan apitypes.VibrationStreamEvent, <-chan error) {
	s.readMu.Lock()
	defer s.readMu.Unlock()

	if s.readCancel != nil {
		panic("StartReading called twice on the same stream")
	}

	evCh := make(chan apitypes.VibrationStreamEvent, chSize)
	errCh := make(chan error, 1)

	readCtx, cancel := context.WithCancel(ctx)
	s.readCancel = cancel

	go func() {
		defer close(evCh)
		defer close(errCh)
		defer cancel()

		r := s.r
		for {
			select {
			case <-readCtx.Done():
				errCh <- readCtx.Err()
				return
			default:
			}

			line, err := r.ReadBytes('\n')
			if err != nil {
				errCh <- err
				return
			}
			var ev apitypes.VibrationStreamEvent
			if err := json.Unmarshal(line, &ev); err != nil {
				errCh <- fmt.Errorf("decode event: %w", err)
				return
			}

			select {
			case evCh <- ev:
			case <-readCtx.Done():
				errCh <- readCtx.Err()
				return
			}
		}
	}()

	return evCh, errCh
}

// SetReadDeadline sets the read deadline for the underlying connection.
func (s *VibrationStream) SetReadDeadline(t time.Time) error {
	return s.conn.SetReadDeadline(t)
}

// Close closes the stream connection and stops any background reading.
func (s *VibrationStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	s.readMu.Lock()
	if s.readCancel != nil {
		s.readCancel()
	}
	s.readMu.Unlock()

	return s.conn.Close()
}
