package api_test

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holaimscott/hidmux/apitypes"
	"github.com/holaimscott/hidmux/hid"
	"github.com/holaimscott/hidmux/internal/server/api"
	"github.com/holaimscott/hidmux/internal/server/api/auth"
	"github.com/holaimscott/hidmux/internal/server/api/handler"
	"github.com/holaimscott/hidmux/service"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	_ = ln.Close()
	return addr
}

func TestVibrationStreamDeliversEvents(t *testing.T) {
	svc := service.New(slog.Default())
	addr := freeAddr(t)
	apiSrv := api.New(svc, addr, api.ServerConfig{Addr: addr}, nil, slog.Default())
	handler.RegisterRoutes(apiSrv.Router(), svc)
	require.NoError(t, apiSrv.Start())
	defer apiSrv.Close()

	require.NoError(t, svc.CreateAppletResource(11))

	c, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer c.Close()
	_, err = fmt.Fprintf(c, "vibration/stream/11\x00")
	require.NoError(t, err)

	// Give the server a moment to subscribe before publishing.
	time.Sleep(50 * time.Millisecond)

	h := hid.VibrationDeviceHandle{Type: hid.StyleIndexProController, NpadId: hid.NpadIdPlayer1}
	svc.SendVibrationValue(11, h, hid.VibrationValue{AmplitudeLow: 0.5, FrequencyLow: 160, FrequencyHigh: 320})

	_ = c.SetReadDeadline(time.Now().Add(2 * time.Second))
	line, err := bufio.NewReader(c).ReadString('\n')
	require.NoError(t, err)

	var ev apitypes.VibrationStreamEvent
	require.NoError(t, json.Unmarshal([]byte(line), &ev))
	assert.Equal(t, uint64(11), ev.Aruid)
	assert.Equal(t, h, ev.Handle)
	assert.InDelta(t, 0.5, ev.Value.AmplitudeLow, 1e-6)
}

func TestAuthRequiredRejectsPlaintext(t *testing.T) {
	svc := service.New(slog.Default())
	key, err := auth.DeriveKey("secret")
	require.NoError(t, err)

	addr := freeAddr(t)
	apiSrv := api.New(svc, addr, api.ServerConfig{Addr: addr}, key, slog.Default())
	handler.RegisterRoutes(apiSrv.Router(), svc)
	require.NoError(t, apiSrv.Start())
	defer apiSrv.Close()

	c, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer c.Close()
	_, err = fmt.Fprintf(c, "ping\x00")
	require.NoError(t, err)

	_ = c.SetReadDeadline(time.Now().Add(2 * time.Second))
	line, err := bufio.NewReader(c).ReadString('\n')
	require.NoError(t, err)
	var apiErr apitypes.ApiError
	require.NoError(t, json.Unmarshal([]byte(line), &apiErr))
	assert.Equal(t, 401, apiErr.Status)
}

func TestAuthHandshakeRoundTrip(t *testing.T) {
	svc := service.New(slog.Default())
	key, err := auth.DeriveKey("secret")
	require.NoError(t, err)

	addr := freeAddr(t)
	apiSrv := api.New(svc, addr, api.ServerConfig{Addr: addr}, key, slog.Default())
	handler.RegisterRoutes(apiSrv.Router(), svc)
	require.NoError(t, apiSrv.Start())
	defer apiSrv.Close()

	c, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer c.Close()
	_ = c.SetDeadline(time.Now().Add(5 * time.Second))

	r := bufio.NewReader(c)
	clientNonce, serverNonce, err := auth.HandleAuthHandshake(r, c, key, true)
	require.NoError(t, err)

	sessionKey := auth.DeriveSessionKey(key, serverNonce, clientNonce)
	sc, err := auth.WrapConn(c, sessionKey)
	require.NoError(t, err)

	_, err = fmt.Fprintf(sc, "ping\x00")
	require.NoError(t, err)

	line, err := bufio.NewReader(sc).ReadString('\n')
	require.NoError(t, err)
	var ping apitypes.PingResponse
	require.NoError(t, json.Unmarshal([]byte(line), &ping))
	assert.Equal(t, "hidmux", ping.Server)
}

func TestWrongPasswordRejected(t *testing.T) {
	svc := service.New(slog.Default())
	key, err := auth.DeriveKey("secret")
	require.NoError(t, err)

	addr := freeAddr(t)
	apiSrv := api.New(svc, addr, api.ServerConfig{Addr: addr}, key, slog.Default())
	require.NoError(t, apiSrv.Start())
	defer apiSrv.Close()

	wrongKey, err := auth.DeriveKey("not-the-secret")
	require.NoError(t, err)

	c, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer c.Close()
	_ = c.SetDeadline(time.Now().Add(5 * time.Second))

	r := bufio.NewReader(c)
	_, _, err = auth.HandleAuthHandshake(r, c, wrongKey, true)
	require.Error(t, err)
	var apiErr *apitypes.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
}
