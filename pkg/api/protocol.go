// Package api defines the JSON messages exchanged with remote renderers.
package api

// Message types sent by the server.
const (
	TypeSnapshot = "snapshot"
	TypeFrame    = "frame"
	TypeReset    = "reset"
	TypeViewport = "viewport"
	TypeStatus   = "status"
	TypeError    = "error"
)

// Client actions.
const (
	ActionSnapshot = "snapshot"
	ActionStart    = "start"
	ActionStop     = "stop"
	ActionReset    = "reset"
	ActionStep     = "step"
	ActionSpeed    = "speed"
	ActionZoom     = "zoom"
	ActionResize   = "resize"
)

// Coord is a lattice coordinate on the wire.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ViewportView describes the visible window so a client can size its grid.
// Row 0 of the client grid is MaxY.
type ViewportView struct {
	Shape string `json:"shape"`
	MinX  int    `json:"minX"`
	MinY  int    `json:"minY"`
	MaxX  int    `json:"maxX"`
	MaxY  int    `json:"maxY"`
}

// StepView carries one transition: repaint From with its new color and draw
// the ant marker on To when visible.
type StepView struct {
	Step        int    `json:"step"`
	From        Coord  `json:"from"`
	FromBlack   bool   `json:"fromBlack"`
	FromVisible bool   `json:"fromVisible"`
	To          Coord  `json:"to"`
	ToVisible   bool   `json:"toVisible"`
	Heading     string `json:"heading"`
}

// Snapshot is a full repaint of the visible window.
type Snapshot struct {
	Step     int          `json:"step"`
	Ant      Coord        `json:"ant"`
	Heading  string       `json:"heading"`
	Viewport ViewportView `json:"viewport"`
	Black    []Coord      `json:"black"`
}

// Status reports the scheduler state.
type Status struct {
	Running bool `json:"running"`
	Speed   int  `json:"speed"`
	Step    int  `json:"step"`
}

// ServerMessage is the root object sent to clients.
type ServerMessage struct {
	Type     string        `json:"type"`
	Snapshot *Snapshot     `json:"snapshot,omitempty"`
	Steps    []StepView    `json:"steps,omitempty"`
	Viewport *ViewportView `json:"viewport,omitempty"`
	Status   *Status       `json:"status,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// ClientCommand is a user action sent by a client.
type ClientCommand struct {
	Action string `json:"action"`
	Value  int    `json:"value,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}
