package core

import "testing"

func TestEventQueueDrain(t *testing.T) {
	q := NewEventQueue()

	if got := q.Drain(); got != nil {
		t.Fatalf("Drain() on empty queue = %v, expected nil", got)
	}

	q.Push(Pressed(KeyUp))
	q.Push(KeyEvent{Key: KeyUp, Action: Release})
	q.Push(Pressed(KeyRestart))

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}

	events := q.Drain()
	if len(events) != 3 {
		t.Fatalf("Drain() returned %d events, expected 3", len(events))
	}
	if events[0].Key != KeyUp || events[0].Action != Press {
		t.Errorf("events[0] = %+v, expected Up press", events[0])
	}
	if events[1].Action != Release {
		t.Errorf("events[1] should be a release, got %+v", events[1])
	}
	if events[2].Key != KeyRestart {
		t.Errorf("events[2].Key = %v, expected Restart", events[2].Key)
	}

	if q.Len() != 0 {
		t.Errorf("queue should be empty after Drain, Len() = %d", q.Len())
	}

	// Drained slice must not alias the queue's storage
	q.Push(Pressed(KeyLeft))
	if events[0].Key != KeyUp {
		t.Error("drained events were overwritten by a later Push")
	}
}

func TestKeyDirection(t *testing.T) {
	tests := []struct {
		key      Key
		expected Direction
	}{
		{KeyUp, DirUp},
		{KeyDown, DirDown},
		{KeyLeft, DirLeft},
		{KeyRight, DirRight},
		{KeyRestart, DirNone},
		{KeyOther, DirNone},
	}

	for _, tc := range tests {
		t.Run(tc.key.String(), func(t *testing.T) {
			if got := tc.key.Direction(); got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
