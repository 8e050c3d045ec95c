// Package ui renders prediction results for churnform.
//
// Rendering happens in two steps. Describe turns a predict.Result into a
// ResultView, a plain display model holding every text the result pane
// shows: the placeholder or error message, the probability, the bar width
// percentage, the label with its badge, and one line per explanation item.
// RenderView then applies Lipgloss styles and draws the probability bar
// with the Bubbles progress component.
//
// # Result States
//
//   - nil result: "No prediction yet"
//   - *predict.Failure: the failure message in red
//   - *predict.Success: probability, bar at round(p*100) percent, a red
//     badge for "Yes" and a green one otherwise, then the explanations
//
// Explanation lines keep the order the service sent. SHAP values are shown
// with four decimals ("Contract: 0.3100"), importances as received, and
// entries of any other shape as compact JSON. A missing or empty list shows
// "No explanation available".
//
// # Command Output
//
// Printer wraps the same rendering in bordered boxes for the one-shot
// commands (predict, health). The interactive form embeds RenderResult
// directly.
package ui
