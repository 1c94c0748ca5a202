package portal

import "sync"

// Registration is a handle to one payload written by Scope.Register. The
// token is the entry's name in the host bucket and is never reused.
type Registration struct {
	scope *Scope
	host  string
	token string

	mu       sync.Mutex
	released bool
}

// Token returns the opaque name the payload is stored under.
func (r *Registration) Token() string {
	return r.token
}

// Host returns the host the payload is written to.
func (r *Registration) Host() string {
	return r.host
}

// Update replaces the payload. It returns ErrReleased after Release.
func (r *Registration) Update(payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return ErrReleased
	}
	r.scope.Update(r.host, r.token, payload)
	return nil
}

// Release removes the payload. Calling it again does nothing.
func (r *Registration) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return
	}
	r.released = true
	r.scope.Remove(r.host, r.token)
}

// Released reports whether Release has been called.
func (r *Registration) Released() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.released
}
