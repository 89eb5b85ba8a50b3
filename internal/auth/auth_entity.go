package auth

// Credentials holds the static credential tables loaded at process start:
// username to password, and username to provisioned API key. A user may have
// a password but no API key.
type Credentials struct {
	Passwords map[string]string
	APIKeys   map[string]string
}
