package gamepad

import (
	"fmt"
	"strings"
	"sync"
)

// Standard logical button codes, matching the gamepad binding codes.
const (
	CodeDPadUp    = "dpad_up"
	CodeDPadDown  = "dpad_down"
	CodeDPadLeft  = "dpad_left"
	CodeDPadRight = "dpad_right"
	CodeA         = "a"
	CodeB         = "b"
	CodeX         = "x"
	CodeY         = "y"
	CodeStart     = "start"
	CodeSelect    = "select"
)

// Profile maps a controller model's raw button indices to logical
// button codes. Profiles are selected by device signature; when no
// profile matches, the generic profile applies - selection never
// fails, it only degrades.
type Profile struct {
	// Name identifies the profile, e.g. "xbox" or "generic".
	Name string

	// Vendors lists the vendor/product pairs the profile matches.
	Vendors []Signature

	// NameContains matches by substring of the reported device name
	// (case-insensitive) when vendor/product ids are unavailable.
	NameContains []string

	// Buttons maps raw button indices to logical codes.
	Buttons map[int]string
}

// matches reports whether the profile claims the given signature.
func (p Profile) matches(sig Signature) bool {
	for _, v := range p.Vendors {
		if v.Vendor == sig.Vendor && v.Product == sig.Product && sig.Vendor != 0 {
			return true
		}
	}
	name := strings.ToLower(sig.Name)
	for _, sub := range p.NameContains {
		if sub != "" && strings.Contains(name, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

// Code returns the logical code for a raw button index.
func (p Profile) Code(button int) (string, bool) {
	code, ok := p.Buttons[button]
	return code, ok
}

// GenericProfile returns the fallback 4-button/d-pad profile used
// when no registered profile matches a device. Indices follow the
// common XInput-style layout under SDL-based backends.
func GenericProfile() Profile {
	return Profile{
		Name: "generic",
		Buttons: map[int]string{
			0:  CodeA,
			1:  CodeB,
			2:  CodeX,
			3:  CodeY,
			6:  CodeSelect,
			7:  CodeStart,
			11: CodeDPadUp,
			12: CodeDPadRight,
			13: CodeDPadDown,
			14: CodeDPadLeft,
		},
	}
}

// Registry holds named mapping profiles. Registration is an explicit,
// typed contract; profiles never self-register through globals.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]Profile
	order    []string
	fallback Profile
}

// NewRegistry creates a registry seeded with the generic fallback.
func NewRegistry() *Registry {
	return &Registry{
		profiles: make(map[string]Profile),
		fallback: GenericProfile(),
	}
}

// Register adds a profile. A profile with an empty name or no button
// map is rejected; a duplicate name replaces the earlier profile.
func (r *Registry) Register(p Profile) error {
	if p.Name == "" {
		return fmt.Errorf("profile has no name")
	}
	if len(p.Buttons) == 0 {
		return fmt.Errorf("profile %q has no button map", p.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[p.Name]; !exists {
		r.order = append(r.order, p.Name)
	}
	r.profiles[p.Name] = p
	return nil
}

// Get returns a profile by name.
func (r *Registry) Get(name string) (Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[name]
	return p, ok
}

// Select returns the profile for a device signature. Profiles are
// tried in registration order; when none matches, the generic
// fallback is returned. Select never fails.
func (r *Registry) Select(sig Signature) Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.order {
		if p := r.profiles[name]; p.matches(sig) {
			return p
		}
	}
	return r.fallback
}
