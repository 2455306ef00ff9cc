// Package npad implements the logical controller assignment state machine:
// which physical joy-con halves back which logical npad slot, per session.
package npad

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/holaimscott/hidmux/hid"
)

// assignment is the exclusive state of one npad slot. A slot is always in
// exactly one of these; merge and swap are the only operations that move two
// slots' states together.
type assignment uint8

const (
	assignInactive assignment = iota
	assignSingleLeft
	assignSingleRight
	assignDual
)

func (a assignment) isSingle() bool {
	return a == assignSingleLeft || a == assignSingleRight
}

type slot struct {
	assign         assignment
	homeProtection bool
}

type session struct {
	active             bool
	revision           hid.NpadRevision
	supportedStyleSet  hid.NpadStyleSet
	supportedIds       []hid.NpadIdType
	holdType           hid.NpadJoyHoldType
	handheldActivation hid.NpadHandheldActivationMode
	lrAssignment       bool
	analogCenterClamp  bool
	captureButtons     map[hid.NpadStyleSet]hid.NpadButton
	slots              map[hid.NpadIdType]*slot
}

func newSession() *session {
	return &session{
		holdType:           hid.HoldTypeVertical,
		handheldActivation: hid.HandheldActivationDual,
		captureButtons:     make(map[hid.NpadStyleSet]hid.NpadButton),
		slots:              make(map[hid.NpadIdType]*slot),
	}
}

func (s *session) slot(id hid.NpadIdType) *slot {
	sl, ok := s.slots[id]
	if !ok {
		sl = &slot{}
		s.slots[id] = sl
	}
	return sl
}

// Controller holds the npad assignment state for every session. One coarse
// lock serializes all operations: assignment changes that touch two slots
// (merge, swap, splitting a dual pair) must be observed as a single step, and
// the slot count is small enough that per-slot locking buys nothing.
type Controller struct {
	mu       sync.Mutex
	logger   *slog.Logger
	sessions map[uint64]*session
}

// NewController creates an empty assignment controller.
func NewController(logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		logger:   logger,
		sessions: make(map[uint64]*session),
	}
}

func (c *Controller) session(aruid uint64) *session {
	s, ok := c.sessions[aruid]
	if !ok {
		s = newSession()
		c.sessions[aruid] = s
	}
	return s
}

// Activate marks the session's npads active at the oldest revision.
func (c *Controller) Activate(aruid uint64) {
	c.ActivateWithRevision(aruid, hid.Revision0)
}

// ActivateWithRevision marks the session's npads active at a given revision.
// Re-activation only updates the revision.
func (c *Controller) ActivateWithRevision(aruid uint64, revision hid.NpadRevision) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session(aruid)
	s.active = true
	s.revision = revision
	c.logger.Debug("npad activated", "aruid", aruid, "revision", revision)
}

// Revision reports the session's npad interface revision.
func (c *Controller) Revision(aruid uint64) hid.NpadRevision {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session(aruid).revision
}

// SetSupportedStyleSet records the controller types the session accepts.
func (c *Controller) SetSupportedStyleSet(aruid uint64, styles hid.NpadStyleSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session(aruid)
	s.supportedStyleSet = styles
	if styles&hid.StyleSetPalma != 0 && s.revision < hid.Revision3 {
		// Pre-revision-3 palma support is meant to flip the controller into
		// boost mode here; the hook was never wired up, so the request is
		// recorded without the side effect.
		c.logger.Warn("palma style requested on pre-revision-3 session, boost mode not applied",
			"aruid", aruid, "revision", s.revision)
	}
}

// SupportedStyleSet reports the session's accepted controller types.
func (c *Controller) SupportedStyleSet(aruid uint64) hid.NpadStyleSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session(aruid).supportedStyleSet
}

// SetSupportedIds replaces the set of npad slots the session listens to.
// Every id must be valid; the first invalid id rejects the whole call.
func (c *Controller) SetSupportedIds(aruid uint64, ids []hid.NpadIdType) error {
	for _, id := range ids {
		if err := hid.ValidateNpadId(id); err != nil {
			return err
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session(aruid)
	s.supportedIds = append(s.supportedIds[:0], ids...)
	return nil
}

// SupportedIds reports the session's supported npad slots.
func (c *Controller) SupportedIds(aruid uint64) []hid.NpadIdType {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session(aruid)
	return append([]hid.NpadIdType(nil), s.supportedIds...)
}

// Disconnect detaches whatever physical devices back the slot.
func (c *Controller) Disconnect(aruid uint64, id hid.NpadIdType) error {
	if err := hid.ValidateNpadId(id); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session(aruid).slot(id).assign = assignInactive
	return nil
}

// SetJoyHoldType sets the orientation single joy-cons are held in. Anything
// outside the enumerated hold types is a caller contract violation and
// panics; there is no recoverable path for it.
func (c *Controller) SetJoyHoldType(aruid uint64, hold hid.NpadJoyHoldType) {
	if hold != hid.HoldTypeVertical && hold != hid.HoldTypeHorizontal {
		panic(fmt.Sprintf("npad: invalid joy hold type %d", hold))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session(aruid).holdType = hold
}

// JoyHoldType reports the session's joy-con hold orientation.
func (c *Controller) JoyHoldType(aruid uint64) hid.NpadJoyHoldType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session(aruid).holdType
}

// SetHandheldActivationMode sets when the handheld slot activates. Values
// outside the enumerated modes are a caller contract violation and panic.
func (c *Controller) SetHandheldActivationMode(aruid uint64, mode hid.NpadHandheldActivationMode) {
	if !mode.Valid() {
		panic(fmt.Sprintf("npad: invalid handheld activation mode %d", mode))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session(aruid).handheldActivation = mode
}

// HandheldActivationMode reports when the handheld slot activates.
func (c *Controller) HandheldActivationMode(aruid uint64) hid.NpadHandheldActivationMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session(aruid).handheldActivation
}

// SetAssignmentSingle binds one physical joy-con half, chosen by device, to
// the slot. Splitting a dual pair frees the other half onto the first
// unassigned player slot; the returned pair reports whether that reassignment
// happened and which slot received the freed half.
func (c *Controller) SetAssignmentSingle(aruid uint64, id hid.NpadIdType, device hid.NpadJoyDeviceType) (bool, hid.NpadIdType, error) {
	if err := hid.ValidateNpadId(id); err != nil {
		return false, hid.NpadIdInvalid, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.session(aruid)
	sl := s.slot(id)
	target := assignSingleLeft
	freed := assignSingleRight
	if device == hid.JoyDeviceRight {
		target = assignSingleRight
		freed = assignSingleLeft
	}

	wasDual := sl.assign == assignDual
	sl.assign = target
	if !wasDual {
		return false, hid.NpadIdInvalid, nil
	}
	newID, ok := s.firstFreeSlot(id)
	if !ok {
		// Every slot taken: the freed half stays unassigned.
		return false, hid.NpadIdInvalid, nil
	}
	s.slot(newID).assign = freed
	c.logger.Debug("joy-con half reassigned", "aruid", aruid, "from", id, "to", newID)
	return true, newID, nil
}

// SetAssignmentSingleDefault binds the slot's left half in single mode
// without reporting reassignment, matching the legacy single-by-default call.
func (c *Controller) SetAssignmentSingleDefault(aruid uint64, id hid.NpadIdType) error {
	_, _, err := c.SetAssignmentSingle(aruid, id, hid.JoyDeviceLeft)
	return err
}

// SetAssignmentDual binds both halves of a joy-con pair to the slot.
func (c *Controller) SetAssignmentDual(aruid uint64, id hid.NpadIdType) error {
	if err := hid.ValidateNpadId(id); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session(aruid).slot(id).assign = assignDual
	return nil
}

// firstFreeSlot finds the lowest player slot with no assignment, skipping the
// slot being split.
func (s *session) firstFreeSlot(exclude hid.NpadIdType) (hid.NpadIdType, bool) {
	for _, id := range hid.NpadIds {
		if id == exclude || id == hid.NpadIdHandheld || id == hid.NpadIdOther {
			continue
		}
		if s.slot(id).assign == assignInactive {
			return id, true
		}
	}
	return hid.NpadIdInvalid, false
}

// MergeSingleJoyAsDualJoy combines two single-assigned slots into one dual
// slot. id1 keeps the pair, id2 is left unassigned. Fails without touching
// state unless both slots are currently single-assigned.
func (c *Controller) MergeSingleJoyAsDualJoy(aruid uint64, id1, id2 hid.NpadIdType) error {
	if err := hid.ValidateNpadId(id1); err != nil {
		return err
	}
	if err := hid.ValidateNpadId(id2); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.session(aruid)
	sl1, sl2 := s.slot(id1), s.slot(id2)
	if !sl1.assign.isSingle() || !sl2.assign.isSingle() {
		return hid.ErrNpadNotSingleJoy
	}
	sl1.assign = assignDual
	sl2.assign = assignInactive
	return nil
}

// SwapNpadAssignment exchanges the physical bindings of two slots. Both
// slots move together under the controller lock; applying the swap twice
// restores the original assignment.
func (c *Controller) SwapNpadAssignment(aruid uint64, id1, id2 hid.NpadIdType) error {
	if err := hid.ValidateNpadId(id1); err != nil {
		return err
	}
	if err := hid.ValidateNpadId(id2); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.session(aruid)
	sl1, sl2 := s.slot(id1), s.slot(id2)
	sl1.assign, sl2.assign = sl2.assign, sl1.assign
	return nil
}

// StartLrAssignmentMode enters the mode where single joy-con activity
// auto-pairs L and R halves. Idempotent.
func (c *Controller) StartLrAssignmentMode(aruid uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session(aruid).lrAssignment = true
}

// StopLrAssignmentMode leaves LR assignment mode. Idempotent.
func (c *Controller) StopLrAssignmentMode(aruid uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session(aruid).lrAssignment = false
}

// IsLrAssignmentMode reports whether LR assignment mode is on.
func (c *Controller) IsLrAssignmentMode(aruid uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session(aruid).lrAssignment
}

// SetHomeProtection enables or disables home-button protection on a slot.
func (c *Controller) SetHomeProtection(aruid uint64, id hid.NpadIdType, enabled bool) error {
	if err := hid.ValidateNpadId(id); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session(aruid).slot(id).homeProtection = enabled
	return nil
}

// HomeProtection reports whether home-button protection is on for a slot.
func (c *Controller) HomeProtection(aruid uint64, id hid.NpadIdType) (bool, error) {
	if err := hid.ValidateNpadId(id); err != nil {
		return false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session(aruid).slot(id).homeProtection, nil
}

// SetAnalogStickUseCenterClamp toggles center clamping of analog stick input.
func (c *Controller) SetAnalogStickUseCenterClamp(aruid uint64, use bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session(aruid).analogCenterClamp = use
}

// AnalogStickUseCenterClamp reports the analog stick clamp setting.
func (c *Controller) AnalogStickUseCenterClamp(aruid uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session(aruid).analogCenterClamp
}

// SetCaptureButtonAssignment remaps the capture button for the given styles.
func (c *Controller) SetCaptureButtonAssignment(aruid uint64, styles hid.NpadStyleSet, button hid.NpadButton) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session(aruid).captureButtons[styles] = button
}

// ClearCaptureButtonAssignment drops every capture button remap.
func (c *Controller) ClearCaptureButtonAssignment(aruid uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session(aruid)
	s.captureButtons = make(map[hid.NpadStyleSet]hid.NpadButton)
}

// LedPattern reports the player indicator LEDs assigned to a slot.
func (c *Controller) LedPattern(id hid.NpadIdType) (hid.LedPattern, error) {
	if err := hid.ValidateNpadId(id); err != nil {
		return 0, err
	}
	return hid.LedPatternForNpadId(id), nil
}
