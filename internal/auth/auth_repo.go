package auth

type Repository interface {
	Password(username string) (string, bool)
	APIKey(username string) (string, bool)
	IsIssuedKey(token string) bool
}

// staticRepository is a read-only credential store. The maps are copied at
// construction so callers cannot mutate them afterwards.
type staticRepository struct {
	passwords map[string]string
	apiKeys   map[string]string
	issued    map[string]struct{}
}

func NewRepository(creds Credentials) Repository {
	repo := &staticRepository{
		passwords: make(map[string]string, len(creds.Passwords)),
		apiKeys:   make(map[string]string, len(creds.APIKeys)),
		issued:    make(map[string]struct{}, len(creds.APIKeys)),
	}

	for username, password := range creds.Passwords {
		repo.passwords[username] = password
	}
	for username, key := range creds.APIKeys {
		repo.apiKeys[username] = key
		repo.issued[key] = struct{}{}
	}

	return repo
}

func (r *staticRepository) Password(username string) (string, bool) {
	password, ok := r.passwords[username]
	return password, ok
}

func (r *staticRepository) APIKey(username string) (string, bool) {
	key, ok := r.apiKeys[username]
	return key, ok
}

func (r *staticRepository) IsIssuedKey(token string) bool {
	_, ok := r.issued[token]
	return ok
}
