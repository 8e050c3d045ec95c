package profile

import (
	"fmt"
	"strconv"
)

// Field names as sent on the wire. The order of Fields() follows this list.
const (
	FieldGender           = "gender"
	FieldSeniorCitizen    = "SeniorCitizen"
	FieldPartner          = "Partner"
	FieldDependents       = "Dependents"
	FieldTenure           = "tenure"
	FieldPhoneService     = "PhoneService"
	FieldMultipleLines    = "MultipleLines"
	FieldInternetService  = "InternetService"
	FieldOnlineSecurity   = "OnlineSecurity"
	FieldOnlineBackup     = "OnlineBackup"
	FieldDeviceProtection = "DeviceProtection"
	FieldTechSupport      = "TechSupport"
	FieldStreamingTV      = "StreamingTV"
	FieldStreamingMovies  = "StreamingMovies"
	FieldContract         = "Contract"
	FieldPaperlessBilling = "PaperlessBilling"
	FieldPaymentMethod    = "PaymentMethod"
	FieldMonthlyCharges   = "MonthlyCharges"
	FieldTotalCharges     = "TotalCharges"
)

// Kind is the value domain of a field
type Kind int

const (
	// KindCategorical is a bounded set of strings
	KindCategorical Kind = iota
	// KindFlag is a 0/1 integer
	KindFlag
	// KindBounded is an integer within [Min, Max]
	KindBounded
	// KindUnbounded is a non-negative real
	KindUnbounded
)

// String returns a human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindCategorical:
		return "categorical"
	case KindFlag:
		return "flag"
	case KindBounded:
		return "bounded"
	case KindUnbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Section groups fields on screen
type Section string

const (
	SectionPersonal Section = "Personal Info"
	SectionServices Section = "Services"
	SectionBilling  Section = "Billing"
)

// Sections returns the display order of sections
func Sections() []Section {
	return []Section{SectionPersonal, SectionServices, SectionBilling}
}

// Option is one choice of a categorical or flag field.
// Label is what the UI shows; Value is what goes on the wire.
type Option struct {
	Value any
	Label string
}

// Field describes one input of the customer profile form
type Field struct {
	Name    string
	Label   string
	Section Section
	Kind    Kind
	Options []Option // categorical and flag fields
	Min     int      // bounded fields
	Max     int      // bounded fields
	Default any
}

var (
	yesNo         = stringOptions("Yes", "No")
	internetAddOn = stringOptions("Yes", "No", "No internet service")
)

func stringOptions(values ...string) []Option {
	opts := make([]Option, len(values))
	for i, v := range values {
		opts[i] = Option{Value: v, Label: v}
	}
	return opts
}

var schema = []Field{
	{Name: FieldGender, Label: "Gender", Section: SectionPersonal, Kind: KindCategorical,
		Options: stringOptions("Female", "Male"), Default: "Female"},
	{Name: FieldSeniorCitizen, Label: "Senior Citizen", Section: SectionPersonal, Kind: KindFlag,
		Options: []Option{{Value: 0, Label: "Not Senior"}, {Value: 1, Label: "Senior Citizen"}}, Default: 0},
	{Name: FieldPartner, Label: "Partner", Section: SectionPersonal, Kind: KindCategorical,
		Options: yesNo, Default: "No"},
	{Name: FieldDependents, Label: "Dependents", Section: SectionPersonal, Kind: KindCategorical,
		Options: yesNo, Default: "No"},
	{Name: FieldTenure, Label: "Tenure", Section: SectionPersonal, Kind: KindBounded,
		Min: 0, Max: 72, Default: 12},

	{Name: FieldPhoneService, Label: "Phone Service", Section: SectionServices, Kind: KindCategorical,
		Options: yesNo, Default: "Yes"},
	{Name: FieldMultipleLines, Label: "Multiple Lines", Section: SectionServices, Kind: KindCategorical,
		Options: stringOptions("Yes", "No", "No phone service"), Default: "No"},
	{Name: FieldInternetService, Label: "Internet Service", Section: SectionServices, Kind: KindCategorical,
		Options: stringOptions("DSL", "Fiber optic", "No"), Default: "Fiber optic"},
	{Name: FieldOnlineSecurity, Label: "Online Security", Section: SectionServices, Kind: KindCategorical,
		Options: internetAddOn, Default: "No"},
	{Name: FieldOnlineBackup, Label: "Online Backup", Section: SectionServices, Kind: KindCategorical,
		Options: internetAddOn, Default: "No"},
	{Name: FieldDeviceProtection, Label: "Device Protection", Section: SectionServices, Kind: KindCategorical,
		Options: internetAddOn, Default: "No"},
	{Name: FieldTechSupport, Label: "Tech Support", Section: SectionServices, Kind: KindCategorical,
		Options: internetAddOn, Default: "No"},
	{Name: FieldStreamingTV, Label: "Streaming TV", Section: SectionServices, Kind: KindCategorical,
		Options: internetAddOn, Default: "No"},
	{Name: FieldStreamingMovies, Label: "Streaming Movies", Section: SectionServices, Kind: KindCategorical,
		Options: internetAddOn, Default: "No"},

	{Name: FieldContract, Label: "Contract", Section: SectionBilling, Kind: KindCategorical,
		Options: stringOptions("Month-to-month", "One year", "Two year"), Default: "Month-to-month"},
	{Name: FieldPaperlessBilling, Label: "Paperless Billing", Section: SectionBilling, Kind: KindCategorical,
		Options: yesNo, Default: "Yes"},
	{Name: FieldPaymentMethod, Label: "Payment Method", Section: SectionBilling, Kind: KindCategorical,
		Options: stringOptions("Electronic check", "Mailed check", "Bank transfer (automatic)", "Credit card (automatic)"),
		Default: "Electronic check"},
	{Name: FieldMonthlyCharges, Label: "Monthly Charges", Section: SectionBilling, Kind: KindUnbounded,
		Default: 70.35},
	{Name: FieldTotalCharges, Label: "Total Charges", Section: SectionBilling, Kind: KindUnbounded,
		Default: 845.5},
}

var schemaIndex = func() map[string]int {
	idx := make(map[string]int, len(schema))
	for i, f := range schema {
		idx[f.Name] = i
	}
	return idx
}()

// Fields returns a copy of the form schema in wire order
func Fields() []Field {
	out := make([]Field, len(schema))
	copy(out, schema)
	return out
}

// Lookup returns the schema entry for name
func Lookup(name string) (Field, bool) {
	i, ok := schemaIndex[name]
	if !ok {
		return Field{}, false
	}
	return schema[i], true
}

// Next returns the value following current: the next option (wrapping) for
// categorical and flag fields, current+1 clamped to Max for bounded fields.
// Unbounded fields are edited as text and are returned unchanged.
func (f Field) Next(current any) any {
	return f.step(current, 1)
}

// Prev is the reverse of Next
func (f Field) Prev(current any) any {
	return f.step(current, -1)
}

func (f Field) step(current any, delta int) any {
	switch f.Kind {
	case KindCategorical, KindFlag:
		if len(f.Options) == 0 {
			return current
		}
		i := f.optionIndex(current)
		if i < 0 {
			return f.Options[0].Value
		}
		n := len(f.Options)
		return f.Options[((i+delta)%n+n)%n].Value

	case KindBounded:
		v, ok := asInt(current)
		if !ok {
			v = f.Min
		}
		v += delta
		if v < f.Min {
			v = f.Min
		}
		if v > f.Max {
			v = f.Max
		}
		return v
	}
	return current
}

func (f Field) optionIndex(v any) int {
	for i, o := range f.Options {
		if sameValue(o.Value, v) {
			return i
		}
	}
	return -1
}

// sameValue compares scalar values; non-scalar values never match.
func sameValue(a, b any) bool {
	switch b.(type) {
	case string, int, int64, float64, bool:
		return a == b
	}
	return false
}

// Format renders a value for display
func (f Field) Format(v any) string {
	switch f.Kind {
	case KindCategorical, KindFlag:
		if i := f.optionIndex(v); i >= 0 {
			return f.Options[i].Label
		}
	case KindBounded:
		if n, ok := asInt(v); ok {
			return fmt.Sprintf("%d months", n)
		}
	case KindUnbounded:
		if x, ok := v.(float64); ok {
			return strconv.FormatFloat(x, 'f', -1, 64)
		}
	}
	return fmt.Sprint(v)
}

// Parse converts raw text into a value of the field's kind.
// Only the representation is checked, not the domain.
func (f Field) Parse(raw string) (any, error) {
	switch f.Kind {
	case KindFlag, KindBounded:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer: %w", f.Name, err)
		}
		return n, nil
	case KindUnbounded:
		x, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s expects a number: %w", f.Name, err)
		}
		return x, nil
	default:
		return raw, nil
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
