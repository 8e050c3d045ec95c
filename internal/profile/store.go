package profile

// Store holds the form state for one session: the current profile and the
// endpoint address the profile is submitted to. It is owned by the UI update
// loop and is not safe for concurrent use.
type Store struct {
	profile  Profile
	endpoint string
}

// NewStore creates a store seeded with the default profile
func NewStore(endpoint string) *Store {
	return &Store{
		profile:  Default(),
		endpoint: endpoint,
	}
}

// SetField replaces one field's value and returns the new profile
func (s *Store) SetField(name string, value any) Profile {
	s.profile = s.profile.Set(name, value)
	return s.profile
}

// SetEndpoint replaces the endpoint address. No validation is performed.
func (s *Store) SetEndpoint(endpoint string) {
	s.endpoint = endpoint
}

// Profile returns the current profile
func (s *Store) Profile() Profile {
	return s.profile
}

// Endpoint returns the current endpoint address
func (s *Store) Endpoint() string {
	return s.endpoint
}
