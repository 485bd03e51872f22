package stream

import (
	"context"
	"errors"
	"testing"
	"time"

	"langton/internal/ant"
	"langton/internal/app"
	"langton/internal/core"
	"langton/pkg/api"
)

func newTestController(w, h int) *app.Controller {
	cfg := ant.DefaultConfig()
	cfg.Width, cfg.Height = w, h
	return app.NewController(ant.New(cfg), core.NewFixedStep(100))
}

func recv(t *testing.T, ch <-chan api.ServerMessage) api.ServerMessage {
	t.Helper()
	select {
	case msg, ok := <-ch:
		if !ok {
			t.Fatal("channel closed")
		}
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a message")
	}
	return api.ServerMessage{}
}

func expectType(t *testing.T, ch <-chan api.ServerMessage, want string) api.ServerMessage {
	t.Helper()
	msg := recv(t, ch)
	if msg.Type != want {
		t.Fatalf("message type = %q (error %q), want %q", msg.Type, msg.Error, want)
	}
	return msg
}

func startSession(t *testing.T, ctrl *app.Controller) (*Session, <-chan api.ServerMessage) {
	t.Helper()
	hub := NewBroadcaster()
	ch := hub.Register("t")
	s := NewSession(ctrl, hub)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		if err := <-done; !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	})
	return s, ch
}

func TestSessionSnapshotOnRequest(t *testing.T) {
	s, ch := startSession(t, newTestController(5, 3))
	if err := s.Submit("t", api.ClientCommand{Action: api.ActionSnapshot}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	snap := expectType(t, ch, api.TypeSnapshot).Snapshot
	if snap == nil {
		t.Fatal("snapshot message without payload")
	}
	if snap.Ant != (api.Coord{X: 2, Y: 1}) || snap.Heading != "north" {
		t.Fatalf("ant = %+v %s, want (2,1) north", snap.Ant, snap.Heading)
	}
	want := api.ViewportView{Shape: "rect", MinX: 0, MinY: 0, MaxX: 4, MaxY: 2}
	if snap.Viewport != want {
		t.Fatalf("viewport = %+v, want %+v", snap.Viewport, want)
	}
	if len(snap.Black) != 0 {
		t.Fatalf("fresh grid has %d black cells", len(snap.Black))
	}
}

func TestSessionStepBroadcastsFrameThenStatus(t *testing.T) {
	s, ch := startSession(t, newTestController(5, 3))
	if err := s.Submit("t", api.ClientCommand{Action: api.ActionStep}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	frame := expectType(t, ch, api.TypeFrame)
	if len(frame.Steps) != 1 {
		t.Fatalf("frame carries %d steps, want 1", len(frame.Steps))
	}
	step := frame.Steps[0]
	if step.From != (api.Coord{X: 2, Y: 1}) || !step.FromBlack || !step.FromVisible {
		t.Fatalf("unexpected from cell %+v", step)
	}
	if step.To != (api.Coord{X: 3, Y: 1}) || !step.ToVisible || step.Heading != "east" {
		t.Fatalf("unexpected destination %+v", step)
	}

	status := expectType(t, ch, api.TypeStatus).Status
	if status == nil || status.Step != 1 || status.Running {
		t.Fatalf("status = %+v, want step 1 stopped", status)
	}
}

func TestSessionResetSendsRepaint(t *testing.T) {
	s, ch := startSession(t, newTestController(5, 3))
	s.Submit("t", api.ClientCommand{Action: api.ActionStep})
	expectType(t, ch, api.TypeFrame)
	expectType(t, ch, api.TypeStatus)

	s.Submit("t", api.ClientCommand{Action: api.ActionReset})
	snap := expectType(t, ch, api.TypeReset).Snapshot
	if snap == nil || snap.Step != 0 || len(snap.Black) != 0 {
		t.Fatalf("reset snapshot = %+v", snap)
	}
	if snap.Ant != (api.Coord{X: 2, Y: 1}) {
		t.Fatalf("ant after reset at %+v", snap.Ant)
	}
	expectType(t, ch, api.TypeStatus)
}

func TestSessionResizeSendsViewport(t *testing.T) {
	s, ch := startSession(t, newTestController(5, 3))
	s.Submit("t", api.ClientCommand{Action: api.ActionResize, Width: 7, Height: 5})

	msg := expectType(t, ch, api.TypeViewport)
	if msg.Viewport == nil || msg.Viewport.MaxX != 6 || msg.Viewport.MaxY != 4 {
		t.Fatalf("viewport = %+v, want max (6,4)", msg.Viewport)
	}
	expectType(t, ch, api.TypeStatus)
}

func TestSessionRejectedCommandRepliesWithError(t *testing.T) {
	s, ch := startSession(t, newTestController(5, 3))
	s.Submit("t", api.ClientCommand{Action: api.ActionZoom, Value: 4})
	if msg := expectType(t, ch, api.TypeError); msg.Error == "" {
		t.Fatal("error message is empty")
	}

	s.Submit("t", api.ClientCommand{Action: "teleport"})
	expectType(t, ch, api.TypeError)
}

func TestSessionRunningStreamsFrames(t *testing.T) {
	ctrl := newTestController(5, 3)
	ctrl.SetSpeed(core.MaxSpeed)
	s, ch := startSession(t, ctrl)
	s.Submit("t", api.ClientCommand{Action: api.ActionStart})

	deadline := time.After(2 * time.Second)
	for {
		select {
		case msg := <-ch:
			if msg.Type == api.TypeFrame && len(msg.Steps) > 0 {
				return
			}
		case <-deadline:
			t.Fatal("running session produced no frames")
		}
	}
}

func TestSnapshotListsOnlyVisibleBlackCells(t *testing.T) {
	ctrl := newTestController(1, 1)
	s := NewSession(ctrl, NewBroadcaster())
	e := ctrl.Engine()
	e.Run(2)
	if e.BlackCount() != 2 {
		t.Fatalf("black count = %d, want 2", e.BlackCount())
	}

	snap := s.snapshot()
	if len(snap.Black) != 1 || snap.Black[0] != (api.Coord{X: 0, Y: 0}) {
		t.Fatalf("visible black cells = %+v, want only (0,0)", snap.Black)
	}
}

func TestSubmitReportsBusyWhenQueueIsFull(t *testing.T) {
	s := NewSession(newTestController(5, 3), NewBroadcaster())
	for i := 0; i < cap(s.requests); i++ {
		if err := s.Submit("t", api.ClientCommand{Action: api.ActionStep}); err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
	}
	if err := s.Submit("t", api.ClientCommand{Action: api.ActionStep}); !errors.Is(err, ErrBusy) {
		t.Fatalf("Submit on a full queue = %v, want ErrBusy", err)
	}
}

func TestSessionResyncsViewerThatMissedFrames(t *testing.T) {
	ctrl := newTestController(5, 3)
	hub := NewBroadcaster()
	ch := hub.Register("slow")
	s := NewSession(ctrl, hub)

	for i := 0; i < subscriberBuffer; i++ {
		hub.SendTo("slow", api.ServerMessage{Type: api.TypeStatus})
	}
	ctrl.StepOnce()
	s.flush()

	for len(ch) > 0 {
		if msg := <-ch; msg.Type == api.TypeFrame {
			t.Fatal("frame should have been dropped for a full viewer")
		}
	}

	s.resync()
	msg := expectType(t, ch, api.TypeSnapshot)
	if msg.Snapshot.Step != 1 || msg.Snapshot.Ant != (api.Coord{X: 3, Y: 1}) {
		t.Fatalf("resync snapshot = %+v", msg.Snapshot)
	}
	if len(msg.Snapshot.Black) != 1 || msg.Snapshot.Black[0] != (api.Coord{X: 2, Y: 1}) {
		t.Fatalf("resync black cells = %+v", msg.Snapshot.Black)
	}

	s.resync()
	if len(ch) != 0 {
		t.Fatal("a viewer that caught up must not be resynced again")
	}
}
