package session

import (
	"context"
	"sync"

	"github.com/churnlens/churnform/internal/logging"
	"github.com/churnlens/churnform/internal/predict"
	"github.com/churnlens/churnform/internal/profile"
)

// Predictor submits a profile to an endpoint. *predict.Client implements it.
type Predictor interface {
	Predict(ctx context.Context, endpoint string, p profile.Profile) predict.Result
}

// Ticket identifies one submission. Tickets increase monotonically.
type Ticket uint64

// State is a snapshot of the controller
type State struct {
	InFlight bool
	// Result is nil until a submission completes
	Result predict.Result
}

// Controller owns the request lifecycle of the form: whether a request is
// in flight and the last result. When submissions overlap, the result of
// the most recent one is kept and earlier completions are discarded.
type Controller struct {
	predictor Predictor

	mu       sync.Mutex
	latest   Ticket
	inFlight bool
	result   predict.Result
}

// NewController creates a controller that submits through p
func NewController(p Predictor) *Controller {
	return &Controller{predictor: p}
}

// Begin starts a submission: it marks a request in flight, clears the
// previous result and returns the ticket the completion must present.
func (c *Controller) Begin() Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.latest++
	c.inFlight = true
	c.result = nil
	return c.latest
}

// Finish records the result of the submission identified by t. A result for
// any ticket but the latest is dropped and Finish returns false; in-flight
// then stays set until the latest submission finishes.
func (c *Controller) Finish(t Ticket, r predict.Result) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t != c.latest {
		logging.LogStaleResult(uint64(t), uint64(c.latest))
		return false
	}
	c.inFlight = false
	c.result = r
	return true
}

// Request performs the network half of a submission for ticket t and
// returns the result without recording it. The interactive form runs this
// off the update loop and calls Finish with the outcome.
func (c *Controller) Request(ctx context.Context, t Ticket, p profile.Profile, endpoint string) predict.Result {
	logging.LogSubmission(uint64(t), endpoint)

	r := c.predictor.Predict(ctx, endpoint, p)
	if r == nil {
		r = &predict.Failure{Message: "prediction service returned no result"}
	}
	return r
}

// Submit runs a whole submission: Begin, the request, Finish. In-flight is
// cleared on every path once the latest submission returns.
func (c *Controller) Submit(ctx context.Context, p profile.Profile, endpoint string) predict.Result {
	t := c.Begin()

	var r predict.Result = &predict.Failure{Message: "submission aborted"}
	defer func() { c.Finish(t, r) }()

	r = c.Request(ctx, t, p, endpoint)
	return r
}

// State returns the current in-flight flag and result
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{InFlight: c.inFlight, Result: c.result}
}

// InFlight reports whether the latest submission is still pending
func (c *Controller) InFlight() bool {
	return c.State().InFlight
}

// Result returns the last recorded result, or nil
func (c *Controller) Result() predict.Result {
	return c.State().Result
}
