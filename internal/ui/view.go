package ui

import (
	"fmt"
	"math"
	"strconv"

	"github.com/churnlens/churnform/internal/predict"
)

// Placeholder texts
const (
	NoResultText      = "No prediction yet"
	NoExplanationText = "No explanation available"
)

// ResultKind is the state the result pane is in
type ResultKind int

const (
	ResultNone ResultKind = iota
	ResultError
	ResultPrediction
)

// Badge is the visual treatment of the churn label
type Badge int

const (
	BadgeNone Badge = iota
	BadgeChurn
	BadgeRetain
)

// ResultView is the display model of a prediction result. Every text the
// result pane shows is computed here; RenderResult only applies styles.
type ResultView struct {
	Kind ResultKind

	// Message is the placeholder (ResultNone) or the error (ResultError)
	Message string

	Probability string // as received, e.g. "0.82"
	BarPercent  int    // round(probability*100), clamped to [0, 100]
	Label       string
	Badge       Badge

	// Explanation holds one "feature: value" line per item, in received
	// order. Empty means the explanation placeholder is shown.
	Explanation []string
}

// Describe builds the display model for r. A nil r means no request has
// completed yet.
func Describe(r predict.Result) ResultView {
	switch r := r.(type) {
	case *predict.Failure:
		msg := r.Message
		if msg == "" {
			msg = "request failed"
		}
		return ResultView{Kind: ResultError, Message: msg}

	case *predict.Success:
		badge := BadgeRetain
		if r.Churns() {
			badge = BadgeChurn
		}

		lines := make([]string, 0, len(r.Explanation))
		for _, item := range r.Explanation {
			lines = append(lines, ExplanationLine(item))
		}

		return ResultView{
			Kind:        ResultPrediction,
			Probability: strconv.FormatFloat(r.Probability, 'f', -1, 64),
			BarPercent:  BarPercent(r.Probability),
			Label:       r.Label,
			Badge:       badge,
			Explanation: lines,
		}
	}

	return ResultView{Kind: ResultNone, Message: NoResultText}
}

// BarPercent converts a probability into the bar width percentage
func BarPercent(p float64) int {
	if math.IsNaN(p) {
		return 0
	}
	pct := math.Round(p * 100)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return int(pct)
}

// ExplanationLine formats one explanation item. SHAP values use four
// decimals, importances are printed as received, anything else is dumped
// as JSON.
func ExplanationLine(item predict.ExplanationItem) string {
	switch it := item.(type) {
	case predict.ShapItem:
		return fmt.Sprintf("%s: %.4f", it.Feature, it.Value)
	case predict.ImportanceItem:
		return fmt.Sprintf("%s: %s", it.Feature, strconv.FormatFloat(it.Value, 'f', -1, 64))
	case predict.RawItem:
		if it.Feature == "" {
			return string(it.Raw)
		}
		return fmt.Sprintf("%s: %s", it.Feature, it.Raw)
	}
	return fmt.Sprintf("%v", item)
}
