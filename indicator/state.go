package indicator

// State holds the two LED bits. Once Red is set it latches: Green may
// never be set while Red is set, and setting Green is a no-op once Red
// has latched.
type State struct {
	Green, Red bool
}

// setFail latches Red and clears Green.
func (s *State) setFail() {
	s.Red = true
	s.Green = false
}

// setPass sets Green, unless Red has already latched.
func (s *State) setPass() {
	if !s.Red {
		s.Green = true
	}
}
