package handler_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holaimscott/hidmux/apitypes"
	"github.com/holaimscott/hidmux/internal/server/api"
	"github.com/holaimscott/hidmux/internal/server/api/handler"
	"github.com/holaimscott/hidmux/service"
	th "github.com/holaimscott/hidmux/internal/testing"
)

func startServer(t *testing.T) (string, *service.Service, func()) {
	t.Helper()
	return th.StartAPIServer(t, func(r *api.Router, svc *service.Service, apiSrv *api.Server) {
		handler.RegisterRoutes(r, svc)
	})
}

func TestPing(t *testing.T) {
	addr, _, done := startServer(t)
	defer done()

	resp := th.ExecCmd(t, addr, "ping")
	var ping apitypes.PingResponse
	require.NoError(t, json.Unmarshal([]byte(resp), &ping))
	assert.Equal(t, "hidmux", ping.Server)
}

func TestUnknownPath(t *testing.T) {
	addr, _, done := startServer(t)
	defer done()

	resp := th.ExecCmd(t, addr, "nonsense/path")
	var apiErr apitypes.ApiError
	require.NoError(t, json.Unmarshal([]byte(resp), &apiErr))
	assert.Equal(t, 404, apiErr.Status)
}

func TestAppletCreateConflict(t *testing.T) {
	addr, _, done := startServer(t)
	defer done()

	resp := th.ExecCmd(t, addr, `applet/create {"aruid":1}`)
	var created apitypes.AppletCreateRequest
	require.NoError(t, json.Unmarshal([]byte(resp), &created))
	assert.Equal(t, uint64(1), created.Aruid)

	resp = th.ExecCmd(t, addr, `applet/create {"aruid":1}`)
	var apiErr apitypes.ApiError
	require.NoError(t, json.Unmarshal([]byte(resp), &apiErr))
	assert.Equal(t, 409, apiErr.Status)
}

func TestVibrationRoutes(t *testing.T) {
	addr, _, done := startServer(t)
	defer done()

	th.ExecCmd(t, addr, `applet/create {"aruid":7}`)

	tests := []struct {
		name   string
		cmd    string
		status int    // expected problem status, 0 for success
		want   string // substring expected in a success body, "" to skip
	}{
		{
			name: "device info pro controller",
			cmd:  `vibration/device-info {"handle":{"type":3,"npadId":0,"deviceIndex":0}}`,
			want: `"deviceType":1`,
		},
		{
			name:   "device info invalid type",
			cmd:    `vibration/device-info {"handle":{"type":9,"npadId":0,"deviceIndex":0}}`,
			status: 400,
		},
		{
			name: "send is fire and forget for unknown session",
			cmd:  `vibration/send {"aruid":999,"handle":{"type":3,"npadId":0,"deviceIndex":0},"value":{"amplitudeLow":1,"frequencyLow":160,"amplitudeHigh":0,"frequencyHigh":320}}`,
		},
		{
			name:   "batch size mismatch",
			cmd:    `vibration/send-batch {"aruid":7,"handles":[{"type":3,"npadId":0,"deviceIndex":0}],"values":[]}`,
			status: 400,
		},
		{
			name: "actual read is safe for inactive session",
			cmd:  `vibration/actual {"aruid":999,"handle":{"type":3,"npadId":0,"deviceIndex":0}}`,
			want: `"frequencyLow":160`,
		},
		{
			name:   "mounted surfaces invalid handle",
			cmd:    `vibration/mounted {"aruid":7,"handle":{"type":10,"npadId":0,"deviceIndex":0}}`,
			status: 400,
		},
		{
			name: "permitted default",
			cmd:  `vibration/permitted`,
			want: `"permitted":true`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := th.ExecCmd(t, addr, tc.cmd)
			if tc.status != 0 {
				var apiErr apitypes.ApiError
				require.NoError(t, json.Unmarshal([]byte(resp), &apiErr), "response: %s", resp)
				assert.Equal(t, tc.status, apiErr.Status)
				return
			}
			if tc.want != "" {
				assert.Contains(t, resp, tc.want)
			}
		})
	}
}

func TestVibrationDeviceListOverWire(t *testing.T) {
	addr, _, done := startServer(t)
	defer done()

	resp := th.ExecCmd(t, addr, "vibration/device-list/create")
	var created apitypes.VibrationDeviceListCreateResponse
	require.NoError(t, json.Unmarshal([]byte(resp), &created))

	cmd := fmt.Sprintf(`vibration/device-list/activate {"listId":%d,"handle":{"type":3,"npadId":0,"deviceIndex":0}}`, created.ListId)
	assert.Empty(t, th.ExecCmd(t, addr, cmd))

	resp = th.ExecCmd(t, addr, `vibration/device-list/activate {"listId":9999,"handle":{"type":3,"npadId":0,"deviceIndex":0}}`)
	var apiErr apitypes.ApiError
	require.NoError(t, json.Unmarshal([]byte(resp), &apiErr))
	assert.Equal(t, 404, apiErr.Status)

	release := fmt.Sprintf(`vibration/device-list/release {"listId":%d}`, created.ListId)
	assert.Empty(t, th.ExecCmd(t, addr, release))

	// A released id is gone for both activate and a second release.
	resp = th.ExecCmd(t, addr, cmd)
	require.NoError(t, json.Unmarshal([]byte(resp), &apiErr))
	assert.Equal(t, 404, apiErr.Status)
	resp = th.ExecCmd(t, addr, release)
	require.NoError(t, json.Unmarshal([]byte(resp), &apiErr))
	assert.Equal(t, 404, apiErr.Status)
}

func TestNpadRoutes(t *testing.T) {
	addr, _, done := startServer(t)
	defer done()

	tests := []struct {
		name   string
		cmd    string
		status int
		want   string
	}{
		{
			name: "activate",
			cmd:  `npad/activate {"aruid":1}`,
		},
		{
			name: "activate with revision",
			cmd:  `npad/activate-with-revision {"aruid":1,"revision":2}`,
		},
		{
			name: "hold type roundtrip set",
			cmd:  `npad/joy-hold-type/set {"aruid":1,"holdType":1}`,
		},
		{
			name: "hold type get",
			cmd:  `npad/joy-hold-type/get {"aruid":1}`,
			want: `"holdType":1`,
		},
		{
			name:   "hold type invalid maps to 400 not crash",
			cmd:    `npad/joy-hold-type/set {"aruid":1,"holdType":9}`,
			status: 400,
		},
		{
			name:   "handheld activation invalid maps to 400 not crash",
			cmd:    `npad/handheld-activation-mode/set {"aruid":1,"mode":7}`,
			status: 400,
		},
		{
			name: "led pattern player2",
			cmd:  `npad/led-pattern {"npadId":1}`,
			want: `"pattern":3`,
		},
		{
			name:   "led pattern invalid id",
			cmd:    `npad/led-pattern {"npadId":200}`,
			status: 400,
		},
		{
			name:   "supported ids invalid id",
			cmd:    `npad/supported-ids/set {"aruid":1,"npadIds":[0,9]}`,
			status: 400,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := th.ExecCmd(t, addr, tc.cmd)
			if tc.status != 0 {
				var apiErr apitypes.ApiError
				require.NoError(t, json.Unmarshal([]byte(resp), &apiErr), "response: %s", resp)
				assert.Equal(t, tc.status, apiErr.Status)
				return
			}
			if tc.want != "" {
				assert.Contains(t, resp, tc.want)
			}
		})
	}
}

func TestNpadMergeOverWire(t *testing.T) {
	addr, _, done := startServer(t)
	defer done()

	assert.Empty(t, th.ExecCmd(t, addr, `npad/assignment/single {"aruid":1,"npadId":0,"deviceType":0}`))
	assert.Empty(t, th.ExecCmd(t, addr, `npad/assignment/single {"aruid":1,"npadId":1,"deviceType":1}`))
	assert.Empty(t, th.ExecCmd(t, addr, `npad/assignment/merge {"aruid":1,"npadId1":0,"npadId2":1}`))

	// Merging the now-dual pair again conflicts.
	resp := th.ExecCmd(t, addr, `npad/assignment/merge {"aruid":1,"npadId1":0,"npadId2":1}`)
	var apiErr apitypes.ApiError
	require.NoError(t, json.Unmarshal([]byte(resp), &apiErr))
	assert.Equal(t, 409, apiErr.Status)
}

func TestNpadSingleDestinationOverWire(t *testing.T) {
	addr, _, done := startServer(t)
	defer done()

	assert.Empty(t, th.ExecCmd(t, addr, `npad/assignment/dual {"aruid":1,"npadId":0}`))

	resp := th.ExecCmd(t, addr, `npad/assignment/single-destination {"aruid":1,"npadId":0,"deviceType":0}`)
	var dest apitypes.NpadAssignmentDestinationResponse
	require.NoError(t, json.Unmarshal([]byte(resp), &dest))
	assert.True(t, dest.Reassigned)
	assert.Equal(t, uint32(1), uint32(dest.NewNpadId))
}

func TestSixAxisRoutes(t *testing.T) {
	addr, _, done := startServer(t)
	defer done()

	h := `{"type":3,"npadId":0,"deviceIndex":0}`

	assert.Empty(t, th.ExecCmd(t, addr, `sixaxis/fusion/parameters/set {"aruid":1,"handle":`+h+`,"parameter1":0.9,"parameter2":0.2}`))
	assert.Empty(t, th.ExecCmd(t, addr, `sixaxis/fusion/enable {"aruid":1,"handle":`+h+`,"enabled":false}`))
	assert.Empty(t, th.ExecCmd(t, addr, `sixaxis/fusion/parameters/reset {"aruid":1,"handle":`+h+`}`))

	resp := th.ExecCmd(t, addr, `sixaxis/fusion/parameters/get {"aruid":1,"handle":`+h+`}`)
	var params apitypes.SixAxisFusionParametersResponse
	require.NoError(t, json.Unmarshal([]byte(resp), &params))
	assert.InDelta(t, 0.03, params.Parameter1, 1e-6)
	assert.InDelta(t, 0.4, params.Parameter2, 1e-6)

	resp = th.ExecCmd(t, addr, `sixaxis/fusion/enabled {"aruid":1,"handle":`+h+`}`)
	assert.Contains(t, resp, `"enabled":true`)

	resp = th.ExecCmd(t, addr, `sixaxis/at-rest {"aruid":1,"handle":`+h+`}`)
	assert.Contains(t, resp, `"atRest":true`)

	resp = th.ExecCmd(t, addr, `sixaxis/drift-mode/get {"aruid":1,"handle":{"type":9,"npadId":0,"deviceIndex":0}}`)
	var apiErr apitypes.ApiError
	require.NoError(t, json.Unmarshal([]byte(resp), &apiErr))
	assert.Equal(t, 400, apiErr.Status)
}

func TestMissingPayload(t *testing.T) {
	addr, _, done := startServer(t)
	defer done()

	resp := th.ExecCmd(t, addr, "npad/activate")
	var apiErr apitypes.ApiError
	require.NoError(t, json.Unmarshal([]byte(resp), &apiErr))
	assert.Equal(t, 400, apiErr.Status)
}
