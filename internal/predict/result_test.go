package predict

import (
	"encoding/json"
	"testing"
)

func TestSuccessMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"shap", `{"churn_probability":0.82,"churn_label":"Yes","explanation":[{"feature":"Contract","shap_value":0.31}]}`},
		{"importance", `{"churn_probability":0.4,"churn_label":"No","explanation":[{"feature":"tenure","importance":0.125}]}`},
		{"raw entries", `{"churn_probability":0.5,"churn_label":"No","explanation":[{"error":"SHAP failed","detail":"boom"},7]}`},
		{"no explanation", `{"churn_probability":0.1,"churn_label":"No","explanation":null}`},
		{"empty explanation", `{"churn_probability":0.1,"churn_label":"No","explanation":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := DecodeResponse([]byte(tt.body))
			if err != nil {
				t.Fatalf("DecodeResponse() error = %v", err)
			}

			got, err := json.Marshal(s)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.body {
				t.Errorf("Marshal() = %s, want %s", got, tt.body)
			}
		})
	}
}

func TestSuccessChurns(t *testing.T) {
	if !(&Success{Label: LabelYes}).Churns() {
		t.Error("Churns() = false for Yes")
	}
	if (&Success{Label: LabelNo}).Churns() {
		t.Error("Churns() = true for No")
	}
}
