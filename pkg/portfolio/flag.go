package portfolio

import "portfolio-core/pkg/contracts"

const adminFlagKey = "portfolio_admin_auth"

// AdminFlag is the single persisted boolean gating every content mutation.
// Absent or corrupt defaults to false.
type AdminFlag struct {
	store contracts.Store
}

func NewAdminFlag(store contracts.Store) *AdminFlag {
	return &AdminFlag{store: store}
}

func (f *AdminFlag) IsAdmin() bool {
	var isAdmin bool
	if !f.store.GetJSON(adminFlagKey, &isAdmin) {
		return false
	}
	return isAdmin
}

func (f *AdminFlag) Set(isAdmin bool) error {
	return f.store.SetJSON(adminFlagKey, isAdmin)
}
