// Package tui implements the interactive churn form.
//
// The form is a single Bubble Tea screen wrapped in RenderApplicationContainer:
// the endpoint row and the profile fields grouped by section on one side,
// the result pane on the other (below the form on narrow terminals), and a
// bubbles/help footer.
//
// # Editing
//
// Categorical and flag fields cycle through their options with ←/→, tenure
// steps by one month within its range. Monthly and total charges and the
// endpoint are bubbles/textinput fields: every keystroke that leaves a valid
// number is stored, anything else keeps the last valid value and marks the
// row. An empty charges field counts as 0.
//
// # Submitting
//
// Enter (or ctrl+s) calls session.Controller.Begin on the update loop and
// runs the request in a tea.Cmd. The completion comes back as a message and
// is passed to Finish, which drops it when a newer submission has started.
// A spinner replaces the result pane while a request is in flight; the
// fields stay editable.
//
// # Usage Example
//
//	store := profile.NewStore(endpoint)
//	controller := session.NewController(predict.NewClient(timeout))
//	program := tea.NewProgram(tui.NewFormModel(store, controller), tea.WithAltScreen())
//	if _, err := program.Run(); err != nil {
//	    return err
//	}
package tui
