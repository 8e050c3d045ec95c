// Package profile holds the customer profile form state.
//
// The form schema (Fields) lists every input in wire order together with its
// kind and domain: categorical strings, a 0/1 flag, tenure in months (0-72)
// and two non-negative charge amounts. The UI uses the schema to cycle
// options and format values; the Profile itself never validates.
//
// # Immutability
//
// Profile values are immutable. Set copies the profile and replaces exactly
// one entry, so a profile handed to a running request cannot change under it
// while the user keeps editing the form:
//
//	store := profile.NewStore("http://localhost:8000")
//	snapshot := store.Profile()
//	store.SetField(profile.FieldContract, "Two year")
//	// snapshot still holds "Month-to-month"
//
// # Wire Format
//
// MarshalJSON writes one JSON object with the schema fields in order. Numeric
// fields are JSON numbers and categorical fields are JSON strings.
package profile
