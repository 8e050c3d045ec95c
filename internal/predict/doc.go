// Package predict is the client side of the churn prediction service.
//
// The service contract is a single call:
//
//	POST {endpoint}/predict_with_explain
//	Content-Type: application/json
//
//	{"gender": "Female", "SeniorCitizen": 0, ..., "TotalCharges": 845.5}
//
// answered with
//
//	{"churn_probability": 0.82, "churn_label": "Yes",
//	 "explanation": [{"feature": "Contract", "shap_value": 0.31}, ...]}
//
// # Results
//
// Predict never fails with a Go error. It returns a Result, which is either a
// *Success or a *Failure. Network errors, HTTP error statuses and bodies that
// are not predictions all become a *Failure whose Message is the error text;
// the underlying *RequestError is kept in Failure.Err and classified by
// ErrorKind for logging.
//
// The response is validated before a Success is built: churn_probability must
// be a number and churn_label a string. The explanation list is optional.
// Each entry is decoded into one of three variants:
//
//   - ShapItem: the entry has a numeric shap_value
//   - ImportanceItem: otherwise, the entry has a numeric importance
//   - RawItem: anything else, kept as compact JSON
//
// # Health
//
// Health calls GET {endpoint}/health and expects {"status": "ok"}.
package predict
