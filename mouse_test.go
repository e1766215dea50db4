package vtcore

import (
	"bytes"
	"testing"
)

func TestMouseTrackerOffIgnoresEvents(t *testing.T) {
	var m MouseTracker
	reply, consumed := m.Handle(MouseEvent{Action: ButtonDown, Row: 1, Col: 1})

	if consumed || reply != nil {
		t.Errorf("expected no consumption while tracking is off, got consumed=%v reply=%v", consumed, reply)
	}
}

func TestMouseTrackerNormalProtocolLeftPressWithShift(t *testing.T) {
	m := MouseTracker{State: MouseNormal, Protocol: MouseProtocolNormal}

	reply, consumed := m.Handle(MouseEvent{
		Action:    ButtonDown,
		Button:    MouseButtonLeft,
		Modifiers: MouseModShift,
		Row:       5,
		Col:       9,
	})

	if !consumed {
		t.Fatal("expected event to be consumed")
	}
	want := []byte{0x1B, '[', 'M', 0x24, 0x2A, 0x26}
	if !bytes.Equal(reply, want) {
		t.Errorf("expected %v, got %v", want, reply)
	}
}

func TestMouseTrackerDragModeIgnoresMoveWithoutPress(t *testing.T) {
	m := MouseTracker{State: MouseDrag, Protocol: MouseProtocolNormal}

	_, consumed := m.Handle(MouseEvent{Action: MouseMove, Row: 2, Col: 2})
	if !consumed {
		t.Error("expected the event to be swallowed (consumed) even though no report is emitted")
	}
}

func TestMouseTrackerDragModeReportsMoveWhilePressed(t *testing.T) {
	m := MouseTracker{State: MouseDrag, Protocol: MouseProtocolNormal}

	m.Handle(MouseEvent{Action: ButtonDown, Button: MouseButtonLeft, Row: 0, Col: 0})
	reply, consumed := m.Handle(MouseEvent{Action: MouseMove, Row: 1, Col: 1})

	if !consumed || reply == nil {
		t.Fatal("expected a move report while a button is held in drag mode")
	}
}

func TestMouseTrackerAnyModeReportsBareMove(t *testing.T) {
	m := MouseTracker{State: MouseAny, Protocol: MouseProtocolNormal}

	reply, consumed := m.Handle(MouseEvent{Action: MouseMove, Row: 3, Col: 3})
	if !consumed || reply == nil {
		t.Fatal("expected a bare move report in any-event mode")
	}
}

func TestMouseTrackerSuppressesDuplicateMove(t *testing.T) {
	m := MouseTracker{State: MouseAny, Protocol: MouseProtocolNormal}

	m.Handle(MouseEvent{Action: MouseMove, Row: 3, Col: 3})
	reply, consumed := m.Handle(MouseEvent{Action: MouseMove, Row: 3, Col: 3})

	if !consumed || reply != nil {
		t.Errorf("expected the identical repeated move to be consumed without a report, got reply=%v", reply)
	}
}

func TestMouseTrackerSgrProtocolUsesLowercaseMOnRelease(t *testing.T) {
	m := MouseTracker{State: MouseNormal, Protocol: MouseProtocolSgr}

	m.Handle(MouseEvent{Action: ButtonDown, Button: MouseButtonLeft, Row: 0, Col: 0})
	reply, _ := m.Handle(MouseEvent{Action: ButtonUp, Row: 0, Col: 0})

	if len(reply) == 0 || reply[len(reply)-1] != 'm' {
		t.Errorf("expected SGR release report to end in lowercase 'm', got %q", reply)
	}
}

func TestMouseTrackerNormalProtocolOverflowEncodesZeroByte(t *testing.T) {
	m := MouseTracker{State: MouseNormal, Protocol: MouseProtocolNormal}

	reply, _ := m.Handle(MouseEvent{Action: ButtonDown, Button: MouseButtonLeft, Row: 0, Col: 300})

	if len(reply) != 6 {
		t.Fatalf("expected a 6-byte report, got %d bytes", len(reply))
	}
	if reply[4] != 0 {
		t.Errorf("expected xterm bug-parity zero byte at the clamp limit, got %d", reply[4])
	}
}

func TestMouseTrackerWheelEventsReportButtonBitsWithoutPressState(t *testing.T) {
	m := MouseTracker{State: MouseNormal, Protocol: MouseProtocolNormal}

	reply, consumed := m.Handle(MouseEvent{Action: WheelUp, Row: 0, Col: 0})
	if !consumed || reply == nil {
		t.Fatal("expected a wheel report")
	}
	if reply[3] != byte(0x40|0x20) {
		t.Errorf("expected wheel-up status byte, got %d", reply[3])
	}
}
