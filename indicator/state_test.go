package indicator

import "testing"

func TestSetPassSetsGreenWhenRedClear(t *testing.T) {
	var s State
	s.setPass()
	if !s.Green || s.Red {
		t.Errorf("state = %+v, want Green=true Red=false", s)
	}
}

func TestSetFailLatchesRedAndClearsGreen(t *testing.T) {
	var s State
	s.setPass()
	s.setFail()
	if s.Green || !s.Red {
		t.Errorf("state = %+v, want Green=false Red=true", s)
	}
}

func TestSetPassIsNoOpOnceRedLatched(t *testing.T) {
	var s State
	s.setFail()
	s.setPass()
	if s.Green {
		t.Errorf("state = %+v, Green must stay false once Red has latched", s)
	}
}
