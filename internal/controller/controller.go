// Package controller owns the request state of the window and sequences clone
// submissions. Only the latest submission may change the state: each one gets a
// new sequence number and results carrying an older number are dropped.
package controller

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ytget/site-cloner/internal/clone"
	"github.com/ytget/site-cloner/internal/model"
)

// Controller runs the Idle/Validating/Loading/Success/Error state machine
type Controller struct {
	mu       sync.Mutex
	state    model.RequestState
	seq      uint64
	client   clone.Submitter
	onUpdate func(model.RequestState) // called after every transition, from any goroutine
	log      *logrus.Entry

	ctx      context.Context
	cancel   context.CancelFunc
	closed   bool
	inflight sync.WaitGroup
}

// New creates a controller in the Idle phase
func New(client clone.Submitter, log *logrus.Entry) *Controller {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		state:  model.NewRequestState(),
		client: client,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetUpdateCallback sets the function notified after each state change
func (c *Controller) SetUpdateCallback(callback func(model.RequestState)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUpdate = callback
}

// SetClient swaps the submitter used by later submissions. A request already
// in flight keeps the client it started with.
func (c *Controller) SetClient(client clone.Submitter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.client = client
}

// State returns a snapshot of the current state
func (c *Controller) State() model.RequestState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CanSubmit reports whether the submit control should be enabled
func (c *Controller) CanSubmit() bool {
	return c.State().CanSubmit()
}

// SetInput records the URL entry text. It never changes the phase and never
// affects a request in flight.
func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	if c.state.InputURL == text {
		c.mu.Unlock()
		return
	}
	c.state.InputURL = text
	snapshot, notify := c.state, c.onUpdate
	c.mu.Unlock()

	if notify != nil {
		notify(snapshot)
	}
}

// Submit validates the current input and, when it is a URL, starts a clone
// request. Submitting while a request is loading supersedes it. The returned
// sequence number identifies this submission.
func (c *Controller) Submit() uint64 {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return 0
	}

	// The sequence number advances before validation so that a pending result
	// can never overwrite the outcome of a newer, rejected submission.
	c.seq++
	seq := c.seq
	var transitions []model.RequestState

	c.state.Phase = model.PhaseValidating
	c.state.Sequence = seq
	c.state.SubmittedURL = ""
	c.state.ClearOutcome()
	transitions = append(transitions, c.state)

	target, err := clone.ValidateURL(c.state.InputURL)
	if err != nil {
		c.fail(clone.AsError(err))
		transitions = append(transitions, c.state)
		c.log.WithFields(logrus.Fields{"seq": seq, "input": c.state.InputURL}).Info("Rejected invalid URL")
		notify := c.onUpdate
		c.mu.Unlock()
		c.notifyAll(notify, transitions)
		return seq
	}

	c.state.Phase = model.PhaseLoading
	c.state.SubmittedURL = target.String()
	transitions = append(transitions, c.state)

	client, ctx, url := c.client, c.ctx, c.state.SubmittedURL
	c.inflight.Add(1)
	notify := c.onUpdate
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{"seq": seq, "url": url}).Info("Submitting clone request")
	c.notifyAll(notify, transitions)

	go c.run(ctx, client, url, seq)
	return seq
}

// run performs one request and hands its outcome to resolve
func (c *Controller) run(ctx context.Context, client clone.Submitter, url string, seq uint64) {
	defer c.inflight.Done()

	if client == nil {
		c.resolve(seq, "", clone.AsError(errNoClient))
		return
	}

	html, err := client.Submit(ctx, url, seq)
	c.resolve(seq, html, err)
}

// resolve applies a finished request if it still belongs to the latest
// submission and discards it otherwise.
func (c *Controller) resolve(seq uint64, html string, err error) {
	c.mu.Lock()
	if c.closed || seq != c.seq || c.state.Phase != model.PhaseLoading {
		latest := c.seq
		c.mu.Unlock()
		c.log.WithFields(logrus.Fields{"seq": seq, "latest": latest}).Debug("Discarding stale clone result")
		return
	}

	if err != nil {
		cloneErr := clone.AsError(err)
		c.fail(cloneErr)
		c.log.WithFields(logrus.Fields{"seq": seq, "kind": cloneErr.Kind}).WithError(err).Warn("Clone request failed")
	} else {
		c.state.ClearOutcome()
		c.state.Phase = model.PhaseSuccess
		c.state.Artifact = html
		c.log.WithFields(logrus.Fields{"seq": seq, "html_bytes": len(html)}).Info("Clone request succeeded")
	}

	snapshot, notify := c.state, c.onUpdate
	c.mu.Unlock()

	if notify != nil {
		notify(snapshot)
	}
}

// fail moves to the Error phase; callers hold c.mu
func (c *Controller) fail(err *clone.Error) {
	c.state.ClearOutcome()
	c.state.Phase = model.PhaseError
	c.state.ErrorKind = err.Kind
	c.state.ErrorStatus = err.Status
	c.state.ErrorMessage = err.UserMessage()
}

func (c *Controller) notifyAll(notify func(model.RequestState), transitions []model.RequestState) {
	if notify == nil {
		return
	}
	for _, snapshot := range transitions {
		notify(snapshot)
	}
}

// Wait blocks until every request issued so far has resolved
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// Close cancels requests in flight, drops their results and waits for them
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.cancel()
	c.inflight.Wait()
}
