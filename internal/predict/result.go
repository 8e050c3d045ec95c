package predict

import "encoding/json"

// Result is the outcome of one prediction request: *Success or *Failure.
// A nil Result means no request has completed yet.
type Result interface {
	isResult()
}

// Success is a decoded prediction response
type Success struct {
	Probability float64 // churn_probability
	Label       string  // churn_label, "Yes" or "No"
	// Explanation is nil when the service sent no explanation
	Explanation []ExplanationItem
}

// Failure is any request that did not produce a decodable prediction.
// Message is never empty.
type Failure struct {
	Message string
	Err     error
}

func (*Success) isResult() {}
func (*Failure) isResult() {}

// Churns reports whether the label predicts churn
func (s *Success) Churns() bool {
	return s.Label == LabelYes
}

// Labels sent by the service
const (
	LabelYes = "Yes"
	LabelNo  = "No"
)

// ExplanationItem is one entry of the explanation list: ShapItem,
// ImportanceItem or RawItem.
type ExplanationItem interface {
	FeatureName() string
	isExplanationItem()
}

// ShapItem carries a per-feature SHAP contribution
type ShapItem struct {
	Feature string
	Value   float64
}

// ImportanceItem carries a global feature importance
type ImportanceItem struct {
	Feature string
	Value   float64
}

// RawItem is an entry of any other shape, kept as compact JSON
type RawItem struct {
	Feature string
	Raw     json.RawMessage
}

func (i ShapItem) FeatureName() string       { return i.Feature }
func (i ImportanceItem) FeatureName() string { return i.Feature }
func (i RawItem) FeatureName() string        { return i.Feature }

func (ShapItem) isExplanationItem()       {}
func (ImportanceItem) isExplanationItem() {}
func (RawItem) isExplanationItem()        {}

// MarshalJSON encodes the prediction in the service's response format.
// RawItem entries are written back unchanged.
func (s *Success) MarshalJSON() ([]byte, error) {
	var items []json.RawMessage
	if s.Explanation != nil {
		items = make([]json.RawMessage, 0, len(s.Explanation))
	}

	for _, item := range s.Explanation {
		var (
			data []byte
			err  error
		)
		switch it := item.(type) {
		case ShapItem:
			data, err = json.Marshal(struct {
				Feature string  `json:"feature"`
				Value   float64 `json:"shap_value"`
			}{it.Feature, it.Value})
		case ImportanceItem:
			data, err = json.Marshal(struct {
				Feature string  `json:"feature"`
				Value   float64 `json:"importance"`
			}{it.Feature, it.Value})
		case RawItem:
			data = it.Raw
		}
		if err != nil {
			return nil, err
		}
		items = append(items, data)
	}

	return json.Marshal(struct {
		Probability float64           `json:"churn_probability"`
		Label       string            `json:"churn_label"`
		Explanation []json.RawMessage `json:"explanation"`
	}{s.Probability, s.Label, items})
}
