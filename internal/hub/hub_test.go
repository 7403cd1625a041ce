package hub

import (
	"testing"
)

func newTestClient(h *Hub, clientID string) *Client {
	// conn stays nil: these tests exercise routing and the send buffer, which
	// never touch the socket.
	return NewClient(h, nil, "user_x", "draw_1", clientID)
}

// drain empties a client's send buffer and returns how many messages were
// queued.
func drain(c *Client) int {
	n := 0
	for {
		select {
		case _, ok := <-c.send:
			if !ok {
				return n
			}
			n++
		default:
			return n
		}
	}
}

func TestSendAfterDisconnectIsDropped(t *testing.T) {
	h := NewHub()
	c := newTestClient(h, "c1")
	h.addClient(c)
	h.removeClient(c)

	// A broadcast that snapshotted the room before the disconnect still calls
	// Send afterward; it must be a silent drop, not a panic.
	c.Send(&Message{Type: TypeDrawingUpdate})
	c.Send(&Message{Type: TypeDrawingUpdate})
}

func TestCloseSendIsIdempotent(t *testing.T) {
	h := NewHub()
	c := newTestClient(h, "c1")

	c.closeSend()
	c.closeSend()
	c.Send(&Message{Type: TypeWelcome})
}

func TestSendDropsWhenBufferFull(t *testing.T) {
	h := NewHub()
	c := newTestClient(h, "c1")

	for i := 0; i < cap(c.send)+10; i++ {
		c.Send(&Message{Type: TypeDrawingUpdate})
	}

	if got := len(c.send); got != cap(c.send) {
		t.Errorf("queued = %d, want the buffer capacity %d", got, cap(c.send))
	}
}

func TestAddClientSendsWelcome(t *testing.T) {
	h := NewHub()
	c := newTestClient(h, "c1")
	h.addClient(c)

	if got := drain(c); got != 1 {
		t.Errorf("queued = %d, want just the welcome", got)
	}
}

func TestJoinNotifiesOtherShells(t *testing.T) {
	h := NewHub()
	c1 := newTestClient(h, "c1")
	c2 := newTestClient(h, "c2")
	h.addClient(c1)
	drain(c1)

	h.addClient(c2)

	// c1 sees the join; c2 only its own welcome.
	if got := drain(c1); got != 1 {
		t.Errorf("existing shell queued = %d, want 1 join", got)
	}
	if got := drain(c2); got != 1 {
		t.Errorf("joining shell queued = %d, want 1 welcome", got)
	}
}

func TestBroadcastDrawingUpdate(t *testing.T) {
	h := NewHub()
	c1 := newTestClient(h, "c1")
	c2 := newTestClient(h, "c2")
	h.addClient(c1)
	h.addClient(c2)
	drain(c1)
	drain(c2)

	h.BroadcastDrawingUpdate("draw_1", 7)

	if drain(c1) != 1 || drain(c2) != 1 {
		t.Error("drawing update did not reach every shell")
	}

	// Unknown rooms are a no-op.
	h.BroadcastDrawingUpdate("draw_nope", 1)
}

func TestClipboardUpdateRelayedToOtherShells(t *testing.T) {
	h := NewHub()
	c1 := newTestClient(h, "c1")
	c2 := newTestClient(h, "c2")
	h.addClient(c1)
	h.addClient(c2)
	drain(c1)
	drain(c2)

	h.handleMessage(c1, &Message{Type: TypeClipboardUpdate, ClientID: "c1", DrawingID: "draw_1"})

	if got := drain(c1); got != 0 {
		t.Errorf("sender queued = %d, want its own update not echoed", got)
	}
	if got := drain(c2); got != 1 {
		t.Errorf("other shell queued = %d, want the relayed update", got)
	}
}

func TestRemoveLastClientDropsRoom(t *testing.T) {
	h := NewHub()
	c := newTestClient(h, "c1")
	h.addClient(c)
	h.removeClient(c)

	h.mu.RLock()
	_, ok := h.rooms["draw_1"]
	h.mu.RUnlock()
	if ok {
		t.Error("empty room survived the last disconnect")
	}

	// Removing an already-removed client is a no-op.
	h.removeClient(c)
}
