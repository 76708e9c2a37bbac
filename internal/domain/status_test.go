package domain

import "testing"

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "accepted", "rejected", "deleted"} {
		got, err := ParseStatus(s)
		if err != nil {
			t.Fatalf("ParseStatus(%q): %v", s, err)
		}
		if string(got) != s {
			t.Fatalf("ParseStatus(%q) = %q", s, got)
		}
	}
	for _, s := range []string{"", "completed", "PENDING", "cancelled"} {
		if _, err := ParseStatus(s); err == nil {
			t.Fatalf("ParseStatus(%q) succeeded; want error", s)
		}
	}
}

func TestParseAction(t *testing.T) {
	for _, s := range []string{"accept", "reject", "delete"} {
		got, err := ParseAction(s)
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", s, err)
		}
		if string(got) != s {
			t.Fatalf("ParseAction(%q) = %q", s, got)
		}
	}
	if _, err := ParseAction("approve"); err == nil {
		t.Fatalf("ParseAction(approve) succeeded; want error")
	}
}

func TestActionTarget(t *testing.T) {
	cases := map[SwapAction]SwapStatus{
		ActionAccept: StatusAccepted,
		ActionReject: StatusRejected,
		ActionDelete: StatusDeleted,
	}
	for a, want := range cases {
		if got := a.Target(); got != want {
			t.Fatalf("%s.Target() = %q, want %q", a, got, want)
		}
	}
}

func TestCanTransition(t *testing.T) {
	actions := []SwapAction{ActionAccept, ActionReject, ActionDelete}

	// Pending allows every action exactly once.
	for _, a := range actions {
		if !CanTransition(StatusPending, a) {
			t.Fatalf("CanTransition(pending, %s) = false", a)
		}
	}

	// Terminal states allow nothing, from any actor, for any action.
	for _, from := range []SwapStatus{StatusAccepted, StatusRejected, StatusDeleted} {
		if !from.Terminal() {
			t.Fatalf("%s.Terminal() = false", from)
		}
		for _, a := range actions {
			if CanTransition(from, a) {
				t.Fatalf("CanTransition(%s, %s) = true", from, a)
			}
		}
	}

	if StatusPending.Terminal() {
		t.Fatalf("pending must not be terminal")
	}
}

func TestRequiredActor(t *testing.T) {
	s := &SwapRequest{SenderID: "alice", ReceiverID: "bob"}

	if got := ActionAccept.RequiredActor(s); got != "bob" {
		t.Fatalf("accept required actor = %q, want receiver", got)
	}
	if got := ActionReject.RequiredActor(s); got != "bob" {
		t.Fatalf("reject required actor = %q, want receiver", got)
	}
	if got := ActionDelete.RequiredActor(s); got != "alice" {
		t.Fatalf("delete required actor = %q, want sender", got)
	}
}

func TestParticipant(t *testing.T) {
	s := &SwapRequest{SenderID: "alice", ReceiverID: "bob"}
	if !s.Participant("alice") || !s.Participant("bob") {
		t.Fatalf("sender and receiver must both be participants")
	}
	if s.Participant("mallory") {
		t.Fatalf("third parties must not be participants")
	}
}
