package apiclient_test

import (
	"context"
	"errors"
	"testing"

	apiclient "github.com/holaimscott/hidmux/apiclient"
	apitypes "github.com/holaimscott/hidmux/apitypes"
	"github.com/holaimscott/hidmux/hid"

	"github.com/stretchr/testify/assert"
)

// testClient constructs a client backed by a simple in-memory responder.
// responses maps paths to raw JSON payloads. If err is non-nil, every request
// returns that error, simulating dial failures.
func testClient(responses map[string]string, err error) *apiclient.Client {
	return apiclient.WithTransport(apiclient.NewMockTransport(func(path string, _ any, _ map[string]string) (string, error) {
		if err != nil {
			return "", err
		}
		if out, ok := responses[path]; ok {
			return out, nil
		}
		return "", nil
	}))
}

func TestHighLevelClient(t *testing.T) {
	proHandle := hid.VibrationDeviceHandle{Type: hid.StyleIndexProController, NpadId: hid.NpadIdPlayer1}

	tests := []struct {
		name       string
		setup      func(responses map[string]string) (err error)
		call       func(c *apiclient.Client) (any, error)
		wantErr    string
		assertFunc func(t *testing.T, got any)
	}{
		{
			name:  "ping success",
			setup: func(responses map[string]string) error { responses["ping"] = `{"server":"hidmux","version":"dev"}`; return nil },
			call:  func(c *apiclient.Client) (any, error) { return c.Ping() },
			assertFunc: func(t *testing.T, got any) {
				resp, ok := got.(*apitypes.PingResponse)
				assert.True(t, ok, "expected *apitypes.PingResponse type")
				assert.Equal(t, "hidmux", resp.Server)
			},
		},
		{
			name: "applet create conflict",
			setup: func(responses map[string]string) error {
				responses["applet/create"] = `{"status":409,"title":"Conflict","detail":"applet resource 1 already exists"}`
				return nil
			},
			call:    func(c *apiclient.Client) (any, error) { return c.AppletCreate(1) },
			wantErr: "409 Conflict: applet resource 1 already exists",
		},
		{
			name: "device info",
			setup: func(responses map[string]string) error {
				responses["vibration/device-info"] = `{"deviceType":1,"position":0}`
				return nil
			},
			call: func(c *apiclient.Client) (any, error) { return c.VibrationDeviceInfo(proHandle) },
			assertFunc: func(t *testing.T, got any) {
				info := got.(*hid.VibrationDeviceInfo)
				assert.Equal(t, hid.VibrationDeviceLinearResonantActuator, info.DeviceType)
			},
		},
		{
			name: "actual vibration value",
			setup: func(responses map[string]string) error {
				responses["vibration/actual"] = `{"value":{"amplitudeLow":0,"frequencyLow":160,"amplitudeHigh":0,"frequencyHigh":320}}`
				return nil
			},
			call: func(c *apiclient.Client) (any, error) { return c.VibrationActual(1, proHandle) },
			assertFunc: func(t *testing.T, got any) {
				resp := got.(*apitypes.VibrationValueResponse)
				assert.InDelta(t, 160.0, resp.Value.FrequencyLow, 1e-6)
			},
		},
		{
			name: "led pattern",
			setup: func(responses map[string]string) error {
				responses["npad/led-pattern"] = `{"pattern":3}`
				return nil
			},
			call: func(c *apiclient.Client) (any, error) { return c.NpadLedPattern(hid.NpadIdPlayer2) },
			assertFunc: func(t *testing.T, got any) {
				resp := got.(*apitypes.NpadLedPatternResponse)
				assert.Equal(t, hid.LedPattern(3), resp.Pattern)
			},
		},
		{
			name: "single destination reassigned",
			setup: func(responses map[string]string) error {
				responses["npad/assignment/single-destination"] = `{"reassigned":true,"newNpadId":1}`
				return nil
			},
			call: func(c *apiclient.Client) (any, error) {
				return c.NpadAssignSingleWithDestination(1, hid.NpadIdPlayer1, hid.JoyDeviceLeft)
			},
			assertFunc: func(t *testing.T, got any) {
				resp := got.(*apitypes.NpadAssignmentDestinationResponse)
				assert.True(t, resp.Reassigned)
				assert.Equal(t, hid.NpadIdPlayer2, resp.NewNpadId)
			},
		},
		{
			name:    "transport failure",
			setup:   func(responses map[string]string) error { return errors.New("dial fail") },
			call:    func(c *apiclient.Client) (any, error) { return c.Ping() },
			wantErr: "dial fail",
		},
		{
			name:    "blank response error",
			setup:   func(responses map[string]string) error { return nil },
			call:    func(c *apiclient.Client) (any, error) { return c.Ping() },
			wantErr: "empty response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responses := map[string]string{}
			errInject := error(nil)
			if tt.setup != nil {
				if e := tt.setup(responses); e != nil {
					errInject = e
				}
			}
			c := testClient(responses, errInject)
			got, err := tt.call(c)
			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
			if tt.assertFunc != nil {
				tt.assertFunc(t, got)
			}
		})
	}
}

func TestEmptySuccessRoutes(t *testing.T) {
	responses := map[string]string{}
	c := testClient(responses, nil)

	// Empty-body routes treat a blank response as success.
	assert.NoError(t, c.NpadActivate(1))
	assert.NoError(t, c.VibrationPermit(false))
	assert.NoError(t, c.SixAxisStart(1, hid.SixAxisSensorHandle{Type: hid.StyleIndexProController}))

	// And surface problem documents as errors.
	responses["npad/assignment/merge"] = `{"status":409,"title":"Conflict","detail":"npad 0 is not in single joy-con mode"}`
	err := c.NpadMerge(1, hid.NpadIdPlayer1, hid.NpadIdPlayer2)
	assert.Error(t, err)
	var apiErr *apitypes.ApiError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Status)
}

func TestContextCancellation(t *testing.T) {
	c := apiclient.WithTransport(apiclient.NewTransport("127.0.0.1:9")) // address irrelevant due to early cancel
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.PingCtx(ctx)
	assert.Error(t, err)
}

func TestStrictJSONDecode(t *testing.T) {
	responses := map[string]string{}
	responses["ping"] = `{"server":"hidmux","version":"dev","extra":true}` // extra field should cause decode error
	c := testClient(responses, nil)
	_, err := c.Ping()
	assert.Error(t, err)
}
