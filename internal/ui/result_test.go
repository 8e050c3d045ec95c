package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/churnlens/churnform/internal/predict"
)

func TestRenderResult_Prediction(t *testing.T) {
	r := &predict.Success{
		Probability: 0.82,
		Label:       "Yes",
		Explanation: []predict.ExplanationItem{
			predict.ShapItem{Feature: "Contract", Value: 0.31},
		},
	}

	out := RenderResult(r, 80)

	for _, want := range []string{"0.82", "82%", "Yes", "Top Explanations", "Contract", "0.3100"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderResult() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, NoExplanationText) {
		t.Error("RenderResult() shows explanation placeholder for a non-empty list")
	}
}

func TestRenderResult_NoExplanation(t *testing.T) {
	out := RenderResult(&predict.Success{Probability: 0.4, Label: "No"}, 80)

	if !strings.Contains(out, NoExplanationText) {
		t.Errorf("RenderResult() missing placeholder in:\n%s", out)
	}
	if !strings.Contains(out, "40%") {
		t.Errorf("RenderResult() missing bar percentage in:\n%s", out)
	}
}

func TestRenderResult_RawItem(t *testing.T) {
	r := &predict.Success{
		Probability: 0.6,
		Label:       "Yes",
		Explanation: []predict.ExplanationItem{
			predict.RawItem{Raw: json.RawMessage(`[1,2,3]`)},
		},
	}

	out := RenderResult(r, 80)
	if !strings.Contains(out, "[1,2,3]") {
		t.Errorf("RenderResult() missing raw entry in:\n%s", out)
	}
}

func TestRenderResult_Failure(t *testing.T) {
	out := RenderResult(&predict.Failure{Message: "service returned 500"}, 80)

	if !strings.Contains(out, "service returned 500") {
		t.Errorf("RenderResult() missing error message in:\n%s", out)
	}
	if strings.Contains(out, "Top Explanations") {
		t.Error("RenderResult() shows prediction fields for a failure")
	}
}

func TestRenderResult_NoResult(t *testing.T) {
	out := RenderResult(nil, 80)
	if !strings.Contains(out, NoResultText) {
		t.Errorf("RenderResult(nil) = %q, want placeholder", out)
	}
}

func TestRenderResult_NarrowWidth(t *testing.T) {
	// Bar falls back to its minimum width
	out := RenderResult(&predict.Success{Probability: 1, Label: "Yes"}, 0)
	if !strings.Contains(out, "100%") {
		t.Errorf("RenderResult() missing percentage in:\n%s", out)
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(80)

	p.PrintHeader("predict", map[string]string{"Endpoint": "http://localhost:8000"})
	p.PrintResult(&predict.Success{Probability: 0.82, Label: "Yes"})
	p.PrintSuccess("Service healthy", nil)
	p.PrintError("Prediction failed", errors.New("boom"), []string{"Check the endpoint"})

	out := buf.String()
	for _, want := range []string{
		"PREDICT",
		"Endpoint:",
		"http://localhost:8000",
		"82%",
		"Service healthy",
		"Prediction failed",
		"Error: boom",
		"Check the endpoint",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPrinter_SetWidthMinimum(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}).SetWidth(10)
	if p.Width() != MinTerminalWidth {
		t.Errorf("Width() = %d, want %d", p.Width(), MinTerminalWidth)
	}
}
