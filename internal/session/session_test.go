package session

import "testing"

func TestUnknownSenderIsDisabled(t *testing.T) {
	r := NewRegistry()
	if r.Enabled("5491100000001@s.whatsapp.net") {
		t.Error("unknown sender should not be in AI mode")
	}
}

func TestEnableDisableRoundTrip(t *testing.T) {
	r := NewRegistry()
	sender := "5491100000001@s.whatsapp.net"

	r.Enable(sender)
	if !r.Enabled(sender) {
		t.Fatal("sender should be enabled after Enable")
	}

	r.Disable(sender)
	if r.Enabled(sender) {
		t.Fatal("sender should be disabled after Disable")
	}
}

func TestSendersAreIndependent(t *testing.T) {
	r := NewRegistry()
	r.Enable("a@s.whatsapp.net")
	if r.Enabled("b@s.whatsapp.net") {
		t.Error("enabling one sender must not affect another")
	}
}
