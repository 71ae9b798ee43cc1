package domain

const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// User is the mock account record. Phone and PhotoURL are optional; Provider
// is one of the Provider* constants.
type User struct {
	ID       string
	Name     string
	Email    string
	Phone    *string
	PhotoURL *string
	Provider string
}

// Session is the per-client signed-in user snapshot, stored under an opaque
// token. One session per token; login replaces, logout clears.
type Session struct {
	Token string
	User  User
}
