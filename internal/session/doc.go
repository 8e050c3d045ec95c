// Package session implements the request/response lifecycle of the form.
//
// A Controller holds two pieces of UI state, the in-flight flag and the last
// result, and moves them through a submission:
//
//  1. Begin sets in-flight, clears the previous result and issues a Ticket.
//  2. Request serializes the profile and calls the prediction service.
//  3. Finish records the result and clears in-flight.
//
// Submit runs all three steps and clears in-flight even if the request
// panics. The interactive form calls Begin from its update loop, runs Request
// inside a tea.Cmd and calls Finish when the completion message arrives.
//
// # Overlapping Submissions
//
// Submissions are never blocked or cancelled. Each Begin issues a larger
// ticket than the last, and Finish drops results whose ticket is not the
// latest, so the most recently submitted request decides what is shown
// regardless of the order in which responses arrive.
package session
