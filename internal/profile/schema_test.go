package profile

import "testing"

func TestFields_DefaultsWithinDomain(t *testing.T) {
	for _, f := range Fields() {
		switch f.Kind {
		case KindCategorical, KindFlag:
			if f.optionIndex(f.Default) < 0 {
				t.Errorf("%s default %v not among options", f.Name, f.Default)
			}
		case KindBounded:
			n, ok := asInt(f.Default)
			if !ok || n < f.Min || n > f.Max {
				t.Errorf("%s default %v outside [%d, %d]", f.Name, f.Default, f.Min, f.Max)
			}
		case KindUnbounded:
			x, ok := f.Default.(float64)
			if !ok || x < 0 {
				t.Errorf("%s default %v is not a non-negative real", f.Name, f.Default)
			}
		}
	}
}

func TestFields_ReturnsCopy(t *testing.T) {
	fields := Fields()
	fields[0].Name = "mutated"

	if Fields()[0].Name != FieldGender {
		t.Error("Fields() exposed the internal schema")
	}
}

func TestLookup(t *testing.T) {
	f, ok := Lookup(FieldPaymentMethod)
	if !ok {
		t.Fatal("Lookup(PaymentMethod) not found")
	}
	if f.Section != SectionBilling {
		t.Errorf("Section = %s, want %s", f.Section, SectionBilling)
	}
	if len(f.Options) != 4 {
		t.Errorf("len(Options) = %d, want 4", len(f.Options))
	}

	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup(nope) should not be found")
	}
}

func TestField_NextPrev(t *testing.T) {
	contract, _ := Lookup(FieldContract)
	senior, _ := Lookup(FieldSeniorCitizen)
	tenure, _ := Lookup(FieldTenure)
	charges, _ := Lookup(FieldMonthlyCharges)

	tests := []struct {
		name  string
		field Field
		in    any
		next  any
		prev  any
	}{
		{"categorical middle", contract, "One year", "Two year", "Month-to-month"},
		{"categorical wraps", contract, "Two year", "Month-to-month", "One year"},
		{"categorical unknown resets", contract, "Weekly", "Month-to-month", "Month-to-month"},
		{"flag toggles", senior, 0, 1, 1},
		{"tenure steps", tenure, 12, 13, 11},
		{"tenure clamps high", tenure, 72, 72, 71},
		{"tenure clamps low", tenure, 0, 1, 0},
		{"tenure from float", tenure, 10.0, 11, 9},
		{"tenure non-numeric", tenure, "x", 1, 0},
		{"unbounded unchanged", charges, 70.35, 70.35, 70.35},
		{"non-comparable value", contract, []string{"a"}, "Month-to-month", "Month-to-month"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.Next(tt.in); !sameValue(got, tt.next) {
				t.Errorf("Next(%v) = %v, want %v", tt.in, got, tt.next)
			}
			if got := tt.field.Prev(tt.in); !sameValue(got, tt.prev) {
				t.Errorf("Prev(%v) = %v, want %v", tt.in, got, tt.prev)
			}
		})
	}
}

func TestField_Format(t *testing.T) {
	senior, _ := Lookup(FieldSeniorCitizen)
	tenure, _ := Lookup(FieldTenure)
	charges, _ := Lookup(FieldTotalCharges)
	gender, _ := Lookup(FieldGender)

	tests := []struct {
		name  string
		field Field
		in    any
		want  string
	}{
		{"flag label", senior, 1, "Senior Citizen"},
		{"tenure months", tenure, 12, "12 months"},
		{"charges", charges, 845.5, "845.5"},
		{"categorical", gender, "Male", "Male"},
		{"out of domain", gender, "Other", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.Format(tt.in); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if KindBounded.String() != "bounded" {
		t.Errorf("KindBounded.String() = %s", KindBounded.String())
	}
	if Kind(42).String() != "Kind(42)" {
		t.Errorf("Kind(42).String() = %s", Kind(42).String())
	}
}
