package stream

import (
	"context"
	"errors"
	"time"

	"langton/internal/ant"
	"langton/internal/app"
	"langton/internal/core"
	"langton/pkg/api"
	"langton/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ErrBusy is returned when the command queue is full.
var ErrBusy = errors.New("stream: session busy")

// FrameInterval is how often the session polls the scheduler and flushes
// batched steps to viewers.
const FrameInterval = 16 * time.Millisecond

type request struct {
	cmd    api.ClientCommand
	client string
}

// Session owns the controller. Only the goroutine executing Run touches the
// engine; viewers reach it through Submit.
type Session struct {
	ctrl     *app.Controller
	hub      *Broadcaster
	requests chan request
	pending  []api.StepView
	log      *logrus.Entry
}

// NewSession wires ctrl to hub and subscribes to engine events.
func NewSession(ctrl *app.Controller, hub *Broadcaster) *Session {
	s := &Session{
		ctrl:     ctrl,
		hub:      hub,
		requests: make(chan request, 64),
		log:      logger.Log.WithField("component", "session"),
	}
	ctrl.Engine().Subscribe(s)
	return s
}

// Submit queues a command from client. Replies go to that client only;
// state changes are broadcast.
func (s *Session) Submit(client string, cmd api.ClientCommand) error {
	select {
	case s.requests <- request{cmd: cmd, client: client}:
		return nil
	default:
		return ErrBusy
	}
}

// Run drives the engine until ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-s.requests:
			s.handle(req)
		case now := <-ticker.C:
			if s.ctrl.Advance(now) > 0 {
				s.flush()
			}
			s.resync()
		}
	}
}

func (s *Session) handle(req request) {
	if req.cmd.Action == api.ActionSnapshot {
		snap := s.snapshot()
		s.hub.SendTo(req.client, api.ServerMessage{Type: api.TypeSnapshot, Snapshot: &snap})
		return
	}
	if err := s.ctrl.Apply(req.cmd); err != nil {
		s.log.WithError(err).WithField("client", req.client).Warn("command rejected")
		s.hub.SendTo(req.client, api.ServerMessage{Type: api.TypeError, Error: err.Error()})
		return
	}
	s.flush()
	s.hub.Broadcast(api.ServerMessage{Type: api.TypeStatus, Status: s.status()})
}

// OnStep batches the step for the next flush.
func (s *Session) OnStep(ev ant.StepEvent) {
	s.pending = append(s.pending, api.StepView{
		Step:        ev.Step,
		From:        wireCoord(ev.Prev),
		FromBlack:   ev.PrevBlack,
		FromVisible: ev.PrevVisible,
		To:          wireCoord(ev.Next),
		ToVisible:   ev.NextVisible,
		Heading:     ev.Heading.String(),
	})
}

// OnReset drops batched steps and sends a full repaint.
func (s *Session) OnReset(ant.ResetEvent) {
	s.pending = s.pending[:0]
	snap := s.snapshot()
	s.hub.Broadcast(api.ServerMessage{Type: api.TypeReset, Snapshot: &snap})
}

// OnViewport flushes steps computed under the old viewport and sends a full
// repaint under the new one.
func (s *Session) OnViewport(ant.ViewportEvent) {
	s.flush()
	snap := s.snapshot()
	s.hub.Broadcast(api.ServerMessage{Type: api.TypeViewport, Snapshot: &snap, Viewport: &snap.Viewport})
}

func (s *Session) flush() {
	if len(s.pending) == 0 {
		return
	}
	steps := make([]api.StepView, len(s.pending))
	copy(steps, s.pending)
	s.pending = s.pending[:0]
	s.hub.Broadcast(api.ServerMessage{Type: api.TypeFrame, Steps: steps})
}

// resync sends a full snapshot to every viewer that missed a message. A
// viewer still full stays marked and is retried on the next tick.
func (s *Session) resync() {
	ids := s.hub.TakeDropped()
	if len(ids) == 0 {
		return
	}
	snap := s.snapshot()
	msg := api.ServerMessage{Type: api.TypeSnapshot, Snapshot: &snap}
	for _, id := range ids {
		if s.hub.SendTo(id, msg) {
			s.log.WithField("client", id).Debug("viewer resynced after dropped frames")
		}
	}
}

func (s *Session) snapshot() api.Snapshot {
	e := s.ctrl.Engine()
	view := e.Viewport()
	lo, hi := view.Min(), view.Max()
	a := e.Ant()
	snap := api.Snapshot{
		Step:    e.Steps(),
		Ant:     wireCoord(a.Pos),
		Heading: a.Heading.String(),
		Viewport: api.ViewportView{
			Shape: view.Shape.String(),
			MinX:  lo.X,
			MinY:  lo.Y,
			MaxX:  hi.X,
			MaxY:  hi.Y,
		},
		Black: []api.Coord{},
	}
	e.Grid().Each(func(c core.Coord) {
		if view.Contains(c) {
			snap.Black = append(snap.Black, wireCoord(c))
		}
	})
	return snap
}

func (s *Session) status() *api.Status {
	return &api.Status{
		Running: s.ctrl.Running(),
		Speed:   s.ctrl.Speed(),
		Step:    s.ctrl.Engine().Steps(),
	}
}

func wireCoord(c core.Coord) api.Coord { return api.Coord{X: c.X, Y: c.Y} }
