package predict

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Response field names
const (
	keyProbability = "churn_probability"
	keyLabel       = "churn_label"
	keyExplanation = "explanation"
	keyFeature     = "feature"
	keyShapValue   = "shap_value"
	keyImportance  = "importance"
	keyDetail      = "detail"
)

// maxDetailLength caps how much of an error body ends up in a message
const maxDetailLength = 200

// DecodeResponse validates a prediction response body and builds a Success.
// churn_probability must be a number and churn_label a string; explanation
// may be missing or null. Explanation items are classified here, so the
// renderer never inspects raw JSON fields.
func DecodeResponse(body []byte) (*Success, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, newDecodeError("response is not a JSON object", err)
	}
	if fields == nil {
		return nil, newDecodeError("response is not a JSON object", nil)
	}

	probability, ok := decodeNumber(fields[keyProbability])
	if !ok {
		return nil, newDecodeError(fmt.Sprintf("response has no numeric %s", keyProbability), nil)
	}

	label, ok := decodeString(fields[keyLabel])
	if !ok {
		return nil, newDecodeError(fmt.Sprintf("response has no string %s", keyLabel), nil)
	}

	return &Success{
		Probability: probability,
		Label:       label,
		Explanation: decodeExplanation(fields[keyExplanation]),
	}, nil
}

func decodeExplanation(raw json.RawMessage) []ExplanationItem {
	if isNull(raw) {
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		// Not a list: keep whatever was sent as a single entry
		return []ExplanationItem{RawItem{Raw: compact(raw)}}
	}

	items := make([]ExplanationItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, decodeItem(entry))
	}
	return items
}

func decodeItem(raw json.RawMessage) ExplanationItem {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return RawItem{Raw: compact(raw)}
	}

	feature, _ := decodeString(fields[keyFeature])

	if v, ok := decodeNumber(fields[keyShapValue]); ok {
		return ShapItem{Feature: feature, Value: v}
	}
	if v, ok := decodeNumber(fields[keyImportance]); ok {
		return ImportanceItem{Feature: feature, Value: v}
	}
	return RawItem{Feature: feature, Raw: compact(raw)}
}

// decodeErrorDetail extracts a short description from an error body.
// FastAPI-style services put it under "detail"; anything else is used as-is.
func decodeErrorDetail(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}

	detail := string(body)
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil && fields != nil {
		if raw, ok := fields[keyDetail]; ok {
			if s, ok := decodeString(raw); ok {
				detail = s
			} else {
				detail = string(compact(raw))
			}
		}
	}

	if len(detail) > maxDetailLength {
		detail = detail[:maxDetailLength] + "..."
	}
	return detail
}

func decodeNumber(raw json.RawMessage) (float64, bool) {
	if isNull(raw) {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	return v, true
}

func decodeString(raw json.RawMessage) (string, bool) {
	if isNull(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func compact(raw json.RawMessage) json.RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return raw
	}
	return buf.Bytes()
}
