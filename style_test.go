package kir

import "testing"

func TestActiveBreakpoint(t *testing.T) {
	s := NewStyle()
	s.Breakpoints = []Breakpoint{
		{Conditions: []QueryCondition{{Kind: QueryMaxWidth, Value: 480}}, Opacity: 0.5},
		{Conditions: []QueryCondition{{Kind: QueryMaxWidth, Value: 768}}, Opacity: 0.8},
	}

	if bp := s.ActiveBreakpoint(400, 600); bp == nil || bp.Opacity != 0.5 {
		t.Errorf("narrow viewport picked %+v", bp)
	}
	// First match wins, so the 768 breakpoint only fires between the two.
	if bp := s.ActiveBreakpoint(600, 600); bp == nil || bp.Opacity != 0.8 {
		t.Errorf("mid viewport picked %+v", bp)
	}
	if bp := s.ActiveBreakpoint(1024, 600); bp != nil {
		t.Errorf("wide viewport picked %+v", bp)
	}

	// A breakpoint without conditions never activates.
	s.Breakpoints = []Breakpoint{{Opacity: 0.1}}
	if bp := s.ActiveBreakpoint(100, 100); bp != nil {
		t.Errorf("conditionless breakpoint activated: %+v", bp)
	}
}

func TestPseudoOverride(t *testing.T) {
	s := NewStyle()
	s.PseudoStyles = []PseudoStyle{
		{State: StateHover | StateFocus, Opacity: 0.3, HasOpacity: true},
		{State: StateHover, Opacity: 0.7, HasOpacity: true},
	}

	if ps := s.PseudoOverride(); ps != nil {
		t.Errorf("no active states, got %+v", ps)
	}

	s.PseudoStates = StateHover
	if ps := s.PseudoOverride(); ps == nil || ps.Opacity != 0.7 {
		t.Errorf("hover picked %+v", ps)
	}

	s.PseudoStates = StateHover | StateFocus
	if ps := s.PseudoOverride(); ps == nil || ps.Opacity != 0.3 {
		t.Errorf("hover+focus picked %+v", ps)
	}
}

func TestInFlow(t *testing.T) {
	var s *Style
	if !s.InFlow() {
		t.Error("nil style is in flow")
	}
	s = NewStyle()
	if !s.InFlow() {
		t.Error("relative style is in flow")
	}
	s.Position = PositionAbsolute
	if s.InFlow() {
		t.Error("absolute style left in flow")
	}
}
