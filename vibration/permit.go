package vibration

import "sync"

// PermitSession is the process-wide vibration permission state: a master
// volume and an exclusive "permit session" bracket. It is one explicitly
// shared component passed to whoever needs it, never a package-level global.
//
// The master volume is not clamped: callers pass 0.0 or 1.0 derived from the
// permit boolean, and "permitted" simply means volume above zero.
type PermitSession struct {
	mu           sync.Mutex
	masterVolume float32
	holderAruid  uint64
	held         bool
}

// NewPermitSession creates a permit session with vibration enabled.
func NewPermitSession() *PermitSession {
	return &PermitSession{masterVolume: 1.0}
}

// SetMasterVolume replaces the master volume.
func (p *PermitSession) SetMasterVolume(volume float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.masterVolume = volume
}

// MasterVolume reports the current master volume.
func (p *PermitSession) MasterVolume() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.masterVolume
}

// IsPermitted reports whether vibration output is currently allowed.
func (p *PermitSession) IsPermitted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.masterVolume > 0.0
}

// Begin marks the session as the one allowed to author the master volume.
// A second Begin while the bracket is held simply replaces the holder; there
// is no queue and no failure path.
func (p *PermitSession) Begin(aruid uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.holderAruid = aruid
	p.held = true
}

// End clears the bracket. Safe to call when no bracket is held.
func (p *PermitSession) End() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.held = false
	p.holderAruid = 0
}

// Holder reports the bracket holder, if any.
func (p *PermitSession) Holder() (uint64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.holderAruid, p.held
}
