package api

import (
	"errors"
	"testing"
)

func TestClientCommandValidate(t *testing.T) {
	ok := []ClientCommand{
		{Action: ActionStart},
		{Action: ActionStep},
		{Action: ActionSpeed, Value: 5000},
		{Action: ActionZoom, Value: 3},
		{Action: ActionResize, Width: 10, Height: 4},
	}
	for _, cmd := range ok {
		if err := cmd.Validate(); err != nil {
			t.Fatalf("%+v: unexpected error %v", cmd, err)
		}
	}

	if err := (ClientCommand{Action: ActionZoom}).Validate(); !errors.Is(err, ErrMissingValue) {
		t.Fatalf("zoom without value: %v", err)
	}
	if err := (ClientCommand{Action: ActionResize, Width: 3}).Validate(); !errors.Is(err, ErrMissingValue) {
		t.Fatalf("resize without height: %v", err)
	}
	if err := (ClientCommand{Action: "teleport"}).Validate(); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("unknown action: %v", err)
	}
}
