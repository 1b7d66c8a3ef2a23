package auth

import "portfolio-core/pkg/contracts"

const passwordKey = "admin_password"

// DefaultPassword is used until the operator sets their own. Passwords are
// stored verbatim: this subsystem protects a single-operator local tool,
// not networked credentials, and reset must stay possible without the old
// value.
const DefaultPassword = "eclipse-2024"

// Passwords reads and writes the stored admin password.
type Passwords struct {
	store    contracts.Store
	fallback string
}

func NewPasswords(store contracts.Store, fallback string) *Passwords {
	if fallback == "" {
		fallback = DefaultPassword
	}
	return &Passwords{store: store, fallback: fallback}
}

func (p *Passwords) current() string {
	raw, ok, err := p.store.Get(passwordKey)
	if err != nil || !ok || len(raw) == 0 {
		return p.fallback
	}
	return string(raw)
}

func (p *Passwords) Validate(candidate string) bool {
	return candidate == p.current()
}

func (p *Passwords) Update(newPassword string) error {
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}
	return p.store.Set(passwordKey, []byte(newPassword))
}

// Reset drops the stored password, reverting to the default.
func (p *Passwords) Reset() error {
	return p.store.Delete(passwordKey)
}
