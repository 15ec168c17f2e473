package entity

import "github.com/google/uuid"

// Session is the authenticated caller of a request. It is resolved once by the auth
// middleware and passed explicitly into every use case that needs an identity.
type Session struct {
	UserID        uuid.UUID
	WalletAddress string
	Role          Role
}

// IsZero reports whether the session carries no identity.
func (s Session) IsZero() bool {
	return s.UserID == uuid.Nil && s.WalletAddress == ""
}

// OwnsWallet reports whether address belongs to the session holder.
func (s Session) OwnsWallet(address string) bool {
	return SameWallet(s.WalletAddress, address)
}

// TrackingUpdater is the updater identity recorded on each tracking event.
func (s Session) TrackingUpdater() Updater {
	return Updater{
		WalletAddress: NormalizeWallet(s.WalletAddress),
		Role:          s.Role,
	}
}
