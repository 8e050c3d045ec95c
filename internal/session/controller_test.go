package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/churnlens/churnform/internal/predict"
	"github.com/churnlens/churnform/internal/profile"
)

// stubPredictor returns a fixed result and records what it was given
type stubPredictor struct {
	mu       sync.Mutex
	result   predict.Result
	endpoint string
	profile  profile.Profile
	calls    int
	panics   bool
}

func (s *stubPredictor) Predict(_ context.Context, endpoint string, p profile.Profile) predict.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.endpoint = endpoint
	s.profile = p
	if s.panics {
		panic("transport exploded")
	}
	return s.result
}

// gatedPredictor blocks each call until its release channel is closed
type gatedPredictor struct {
	started chan string
	release map[string]chan struct{}
}

func (g *gatedPredictor) Predict(ctx context.Context, endpoint string, _ profile.Profile) predict.Result {
	g.started <- endpoint
	<-g.release[endpoint]
	return &predict.Success{Probability: 0.5, Label: endpoint}
}

func TestController_InitialState(t *testing.T) {
	c := NewController(&stubPredictor{})

	state := c.State()
	if state.InFlight {
		t.Error("InFlight = true before any submission")
	}
	if state.Result != nil {
		t.Errorf("Result = %#v, want nil", state.Result)
	}
}

func TestController_SubmitSuccess(t *testing.T) {
	want := &predict.Success{Probability: 0.82, Label: "Yes"}
	stub := &stubPredictor{result: want}
	c := NewController(stub)

	p := profile.Default().Set(profile.FieldTenure, 3)
	got := c.Submit(context.Background(), p, "http://svc")

	if got != want {
		t.Errorf("Submit() = %#v, want %#v", got, want)
	}
	if c.InFlight() {
		t.Error("InFlight = true after Submit returned")
	}
	if c.Result() != want {
		t.Errorf("Result() = %#v, want %#v", c.Result(), want)
	}
	if stub.endpoint != "http://svc" {
		t.Errorf("endpoint = %s, want http://svc", stub.endpoint)
	}
	if v, _ := stub.profile.Get(profile.FieldTenure); v != 3 {
		t.Errorf("submitted tenure = %v, want 3", v)
	}
}

func TestController_SubmitFailure(t *testing.T) {
	stub := &stubPredictor{result: &predict.Failure{Message: "connection refused"}}
	c := NewController(stub)

	c.Submit(context.Background(), profile.Default(), "http://svc")

	if c.InFlight() {
		t.Error("InFlight = true after failed Submit")
	}
	failure, ok := c.Result().(*predict.Failure)
	if !ok {
		t.Fatalf("Result() = %#v, want *Failure", c.Result())
	}
	if failure.Message == "" {
		t.Error("failure message is empty")
	}
}

func TestController_SubmitNilResult(t *testing.T) {
	c := NewController(&stubPredictor{result: nil})

	c.Submit(context.Background(), profile.Default(), "http://svc")

	if _, ok := c.Result().(*predict.Failure); !ok {
		t.Errorf("Result() = %#v, want *Failure", c.Result())
	}
}

func TestController_SubmitPanicClearsInFlight(t *testing.T) {
	c := NewController(&stubPredictor{panics: true})

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic to propagate")
			}
		}()
		c.Submit(context.Background(), profile.Default(), "http://svc")
	}()

	if c.InFlight() {
		t.Error("InFlight = true after panicking Submit")
	}
	if _, ok := c.Result().(*predict.Failure); !ok {
		t.Errorf("Result() = %#v, want *Failure", c.Result())
	}
}

func TestController_BeginClearsPreviousResult(t *testing.T) {
	c := NewController(&stubPredictor{result: &predict.Success{Probability: 0.1, Label: "No"}})
	c.Submit(context.Background(), profile.Default(), "http://svc")

	if c.Result() == nil {
		t.Fatal("expected a result after first submission")
	}

	c.Begin()

	state := c.State()
	if !state.InFlight {
		t.Error("InFlight = false after Begin")
	}
	if state.Result != nil {
		t.Errorf("Result = %#v after Begin, want nil", state.Result)
	}
}

func TestController_StaleResultDiscarded(t *testing.T) {
	c := NewController(&stubPredictor{})

	first := c.Begin()
	second := c.Begin()

	if second <= first {
		t.Fatalf("tickets not increasing: %d then %d", first, second)
	}

	if c.Finish(first, &predict.Success{Label: "first"}) {
		t.Error("Finish(first) = true, want false (stale)")
	}
	if !c.InFlight() {
		t.Error("InFlight cleared by a stale completion")
	}
	if c.Result() != nil {
		t.Errorf("stale result recorded: %#v", c.Result())
	}

	want := &predict.Success{Label: "second"}
	if !c.Finish(second, want) {
		t.Error("Finish(second) = false, want true")
	}
	if c.InFlight() {
		t.Error("InFlight = true after latest completion")
	}
	if c.Result() != want {
		t.Errorf("Result() = %#v, want %#v", c.Result(), want)
	}
}

func TestController_LastSubmittedWins(t *testing.T) {
	gate := &gatedPredictor{
		started: make(chan string, 2),
		release: map[string]chan struct{}{
			"first":  make(chan struct{}),
			"second": make(chan struct{}),
		},
	}
	c := NewController(gate)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.Submit(context.Background(), profile.Default(), "first")
	}()
	waitStarted(t, gate.started, "first")

	go func() {
		defer wg.Done()
		c.Submit(context.Background(), profile.Default(), "second")
	}()
	waitStarted(t, gate.started, "second")

	// second resolves before first
	close(gate.release["second"])
	close(gate.release["first"])
	wg.Wait()

	success, ok := c.Result().(*predict.Success)
	if !ok {
		t.Fatalf("Result() = %#v, want *Success", c.Result())
	}
	if success.Label != "second" {
		t.Errorf("Result label = %s, want second", success.Label)
	}
	if c.InFlight() {
		t.Error("InFlight = true after both submissions settled")
	}
}

func waitStarted(t *testing.T, started <-chan string, want string) {
	t.Helper()
	select {
	case got := <-started:
		if got != want {
			t.Fatalf("started %s, want %s", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s to start", want)
	}
}
