package profile

import "testing"

func TestNewStore(t *testing.T) {
	s := NewStore("http://localhost:8000")

	if s.Endpoint() != "http://localhost:8000" {
		t.Errorf("Endpoint() = %s, want http://localhost:8000", s.Endpoint())
	}
	if s.Profile().Len() != len(Fields()) {
		t.Errorf("store not seeded with a complete profile")
	}
}

func TestStore_SetField(t *testing.T) {
	s := NewStore("")
	before := s.Profile()

	after := s.SetField(FieldInternetService, "DSL")

	if v, _ := after.Get(FieldInternetService); v != "DSL" {
		t.Errorf("returned profile InternetService = %v, want DSL", v)
	}
	if v, _ := s.Profile().Get(FieldInternetService); v != "DSL" {
		t.Errorf("held profile InternetService = %v, want DSL", v)
	}
	if v, _ := before.Get(FieldInternetService); v != "Fiber optic" {
		t.Errorf("earlier snapshot changed: InternetService = %v", v)
	}
}

func TestStore_SetEndpoint(t *testing.T) {
	s := NewStore("http://localhost:8000")
	p := s.Profile()

	s.SetEndpoint("not a url")

	if s.Endpoint() != "not a url" {
		t.Errorf("Endpoint() = %s, want %q", s.Endpoint(), "not a url")
	}
	if s.Profile().Len() != p.Len() {
		t.Error("SetEndpoint changed the profile")
	}
}
