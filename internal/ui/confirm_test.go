package ui

import "testing"

func TestAutoConfirmer(t *testing.T) {
	yes := &AutoConfirmer{Answer: true}
	ok, err := yes.Confirm("proceed?")
	if err != nil || !ok {
		t.Errorf("Confirm() = (%v, %v), want (true, nil)", ok, err)
	}

	no := &AutoConfirmer{Answer: false}
	ok, err = no.Confirm("proceed?")
	if err != nil || ok {
		t.Errorf("Confirm() = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestNewConfirmer_NoPrompt(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(false) // interactive TTY, but --no-prompt wins

	c := NewConfirmer(true, hm)
	auto, ok := c.(*AutoConfirmer)
	if !ok {
		t.Fatalf("NewConfirmer(noPrompt) = %T, want *AutoConfirmer", c)
	}
	if !auto.Answer {
		t.Error("no-prompt confirmer must auto-answer yes")
	}
}

func TestNewConfirmer_Headless(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)

	if _, ok := NewConfirmer(false, hm).(*AutoConfirmer); !ok {
		t.Error("headless sessions must auto-confirm")
	}
}

func TestNewConfirmer_Interactive(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)

	if _, ok := NewConfirmer(false, hm).(*promptConfirmer); !ok {
		t.Error("interactive sessions must use the prompt confirmer")
	}
}

func TestHeadlessManager_ForceAndClear(t *testing.T) {
	hm := NewHeadlessManager()

	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("IsHeadless() = false after ForceHeadless(true)")
	}

	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("IsHeadless() = true after ForceHeadless(false)")
	}

	hm.ClearForce()
	// After clearing, detection falls back to the TTY state; just verify
	// it does not panic.
	_ = hm.IsHeadless()
}
