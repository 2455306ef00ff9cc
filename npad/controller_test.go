package npad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holaimscott/hidmux/hid"
	"github.com/holaimscott/hidmux/npad"
)

const aruid = uint64(42)

func TestActivateAndRevision(t *testing.T) {
	c := npad.NewController(nil)
	c.Activate(aruid)
	assert.Equal(t, hid.Revision0, c.Revision(aruid))

	c.ActivateWithRevision(aruid, hid.Revision2)
	assert.Equal(t, hid.Revision2, c.Revision(aruid))
}

func TestSupportedStyleSet(t *testing.T) {
	c := npad.NewController(nil)
	styles := hid.StyleSetFullKey | hid.StyleSetJoyDual
	c.SetSupportedStyleSet(aruid, styles)
	assert.Equal(t, styles, c.SupportedStyleSet(aruid))

	// Palma on an old revision only logs; the style set is still recorded.
	c.SetSupportedStyleSet(aruid, hid.StyleSetPalma)
	assert.Equal(t, hid.StyleSetPalma, c.SupportedStyleSet(aruid))
}

func TestSupportedIdsValidation(t *testing.T) {
	c := npad.NewController(nil)
	err := c.SetSupportedIds(aruid, []hid.NpadIdType{hid.NpadIdPlayer1, hid.NpadIdType(9)})
	assert.ErrorIs(t, err, hid.ErrInvalidNpadId)
	assert.Empty(t, c.SupportedIds(aruid), "rejected call must not partially apply")

	ids := []hid.NpadIdType{hid.NpadIdPlayer1, hid.NpadIdHandheld}
	require.NoError(t, c.SetSupportedIds(aruid, ids))
	assert.Equal(t, ids, c.SupportedIds(aruid))
}

func TestSingleAssignmentSplitsDualPair(t *testing.T) {
	c := npad.NewController(nil)
	require.NoError(t, c.SetAssignmentDual(aruid, hid.NpadIdPlayer1))

	reassigned, newID, err := c.SetAssignmentSingle(aruid, hid.NpadIdPlayer1, hid.JoyDeviceLeft)
	require.NoError(t, err)
	assert.True(t, reassigned, "splitting a dual pair frees the other half")
	assert.Equal(t, hid.NpadIdPlayer2, newID)

	// Already single: no further reassignment.
	reassigned, _, err = c.SetAssignmentSingle(aruid, hid.NpadIdPlayer1, hid.JoyDeviceRight)
	require.NoError(t, err)
	assert.False(t, reassigned)
}

func TestMergeSingleJoyAsDualJoy(t *testing.T) {
	c := npad.NewController(nil)
	_, _, err := c.SetAssignmentSingle(aruid, hid.NpadIdPlayer1, hid.JoyDeviceLeft)
	require.NoError(t, err)
	_, _, err = c.SetAssignmentSingle(aruid, hid.NpadIdPlayer2, hid.JoyDeviceRight)
	require.NoError(t, err)

	require.NoError(t, c.MergeSingleJoyAsDualJoy(aruid, hid.NpadIdPlayer1, hid.NpadIdPlayer2))

	// Player1 is dual now, so re-merging fails and changes nothing.
	err = c.MergeSingleJoyAsDualJoy(aruid, hid.NpadIdPlayer1, hid.NpadIdPlayer2)
	assert.ErrorIs(t, err, hid.ErrNpadNotSingleJoy)
}

func TestMergeRequiresBothSingle(t *testing.T) {
	c := npad.NewController(nil)
	require.NoError(t, c.SetAssignmentDual(aruid, hid.NpadIdPlayer1))
	_, _, err := c.SetAssignmentSingle(aruid, hid.NpadIdPlayer3, hid.JoyDeviceRight)
	require.NoError(t, err)

	err = c.MergeSingleJoyAsDualJoy(aruid, hid.NpadIdPlayer1, hid.NpadIdPlayer3)
	assert.ErrorIs(t, err, hid.ErrNpadNotSingleJoy)
}

func TestSwapIsSelfInverse(t *testing.T) {
	c := npad.NewController(nil)
	require.NoError(t, c.SetAssignmentDual(aruid, hid.NpadIdPlayer1))
	_, _, err := c.SetAssignmentSingle(aruid, hid.NpadIdPlayer2, hid.JoyDeviceRight)
	require.NoError(t, err)

	require.NoError(t, c.SwapNpadAssignment(aruid, hid.NpadIdPlayer1, hid.NpadIdPlayer2))
	// Player2 now holds the dual pair: merging it fails as not-single.
	err = c.MergeSingleJoyAsDualJoy(aruid, hid.NpadIdPlayer2, hid.NpadIdPlayer1)
	assert.ErrorIs(t, err, hid.ErrNpadNotSingleJoy)

	require.NoError(t, c.SwapNpadAssignment(aruid, hid.NpadIdPlayer1, hid.NpadIdPlayer2))
	// Restored: player1 dual again, so split reports a reassignment.
	reassigned, _, err := c.SetAssignmentSingle(aruid, hid.NpadIdPlayer1, hid.JoyDeviceLeft)
	require.NoError(t, err)
	assert.True(t, reassigned)
}

func TestDisconnect(t *testing.T) {
	c := npad.NewController(nil)
	require.NoError(t, c.SetAssignmentDual(aruid, hid.NpadIdPlayer1))
	require.NoError(t, c.Disconnect(aruid, hid.NpadIdPlayer1))

	// Disconnected slot is no longer dual: splitting reports nothing freed.
	reassigned, _, err := c.SetAssignmentSingle(aruid, hid.NpadIdPlayer1, hid.JoyDeviceLeft)
	require.NoError(t, err)
	assert.False(t, reassigned)

	assert.ErrorIs(t, c.Disconnect(aruid, hid.NpadIdType(99)), hid.ErrInvalidNpadId)
}

func TestJoyHoldType(t *testing.T) {
	c := npad.NewController(nil)
	assert.Equal(t, hid.HoldTypeVertical, c.JoyHoldType(aruid))
	c.SetJoyHoldType(aruid, hid.HoldTypeHorizontal)
	assert.Equal(t, hid.HoldTypeHorizontal, c.JoyHoldType(aruid))

	assert.Panics(t, func() {
		c.SetJoyHoldType(aruid, hid.NpadJoyHoldType(7))
	})
}

func TestHandheldActivationMode(t *testing.T) {
	c := npad.NewController(nil)
	assert.Equal(t, hid.HandheldActivationDual, c.HandheldActivationMode(aruid))

	c.SetHandheldActivationMode(aruid, hid.HandheldActivationNone)
	assert.Equal(t, hid.HandheldActivationNone, c.HandheldActivationMode(aruid))

	assert.Panics(t, func() {
		c.SetHandheldActivationMode(aruid, hid.NpadHandheldActivationMode(3))
	})
}

func TestLrAssignmentModeIdempotent(t *testing.T) {
	c := npad.NewController(nil)
	assert.False(t, c.IsLrAssignmentMode(aruid))
	c.StartLrAssignmentMode(aruid)
	c.StartLrAssignmentMode(aruid)
	assert.True(t, c.IsLrAssignmentMode(aruid))
	c.StopLrAssignmentMode(aruid)
	c.StopLrAssignmentMode(aruid)
	assert.False(t, c.IsLrAssignmentMode(aruid))
}

func TestHomeProtection(t *testing.T) {
	c := npad.NewController(nil)
	on, err := c.HomeProtection(aruid, hid.NpadIdPlayer1)
	require.NoError(t, err)
	assert.False(t, on)

	require.NoError(t, c.SetHomeProtection(aruid, hid.NpadIdPlayer1, true))
	on, err = c.HomeProtection(aruid, hid.NpadIdPlayer1)
	require.NoError(t, err)
	assert.True(t, on)

	_, err = c.HomeProtection(aruid, hid.NpadIdType(8))
	assert.ErrorIs(t, err, hid.ErrInvalidNpadId)
	assert.ErrorIs(t, c.SetHomeProtection(aruid, hid.NpadIdType(8), true), hid.ErrInvalidNpadId)
}

func TestLedPattern(t *testing.T) {
	c := npad.NewController(nil)
	p, err := c.LedPattern(hid.NpadIdPlayer4)
	require.NoError(t, err)
	assert.Equal(t, hid.LedPattern(0b1111), p)

	p, err = c.LedPattern(hid.NpadIdHandheld)
	require.NoError(t, err)
	assert.Equal(t, hid.LedPattern(0), p)

	_, err = c.LedPattern(hid.NpadIdType(200))
	assert.ErrorIs(t, err, hid.ErrInvalidNpadId)
}

func TestSessionsAreIndependent(t *testing.T) {
	c := npad.NewController(nil)
	require.NoError(t, c.SetAssignmentDual(1, hid.NpadIdPlayer1))

	// A different session's player1 slot is untouched.
	reassigned, _, err := c.SetAssignmentSingle(2, hid.NpadIdPlayer1, hid.JoyDeviceLeft)
	require.NoError(t, err)
	assert.False(t, reassigned)
}
