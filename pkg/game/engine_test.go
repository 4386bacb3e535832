package game

import (
	"errors"
	"testing"
)

// scriptSource replays scripted draws and then settles on "never fire"
// (Float64 = 0.99) and "first element" (IntN = 0).
type scriptSource struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptSource) Float64() float64 {
	if s.fi < len(s.floats) {
		v := s.floats[s.fi]
		s.fi++
		return v
	}
	return 0.99
}

func (s *scriptSource) IntN(n int) int {
	if s.ii < len(s.ints) {
		v := s.ints[s.ii] % n
		s.ii++
		return v
	}
	return 0
}

// quietEngine never fires events and always picks the first variant.
func quietEngine() *Engine {
	return NewEngine(&scriptSource{})
}

func TestApplyChoiceInvalidLeavesSessionUntouched(t *testing.T) {
	e := quietEngine()
	s := NewSession(1, "")
	s.CurrentScene = SceneWork
	before := *s

	_, err := e.ApplyChoice(s, "transport_bus")
	if !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("err = %v, want ErrInvalidChoice", err)
	}
	if s.Clock != before.Clock || s.Resources != before.Resources {
		t.Error("invalid choice must not mutate the session")
	}
	if s.CurrentScene != SceneWork || s.PendingScene != "" {
		t.Errorf("scene state changed: current=%s pending=%s", s.CurrentScene, s.PendingScene)
	}
}

func TestApplyChoiceAdvancesWhenNoEvent(t *testing.T) {
	e := quietEngine()
	s := NewSession(1, "")
	s.CurrentScene = SceneWork

	res, err := e.ApplyChoice(s, "work_quality")
	if err != nil {
		t.Fatalf("ApplyChoice() error: %v", err)
	}
	if res.Event != nil {
		t.Fatal("no event should fire with a 0.99 draw")
	}
	if s.CurrentScene != SceneWorkDecision {
		t.Errorf("CurrentScene = %s, want %s", s.CurrentScene, SceneWorkDecision)
	}
	if s.PendingScene != "" {
		t.Errorf("PendingScene = %q, want empty after a clean advance", s.PendingScene)
	}
	if s.Clock.String() != "17:00" {
		t.Errorf("Clock = %s, want 17:00", s.Clock)
	}
	if want := (Resources{Career: 3, Energy: 6, Skills: 1}); s.Resources != want {
		t.Errorf("Resources = %+v, want %+v", s.Resources, want)
	}
	if len(res.Choices) != 1 {
		t.Errorf("got %d choices for %s, want 1", len(res.Choices), res.Scene)
	}
}

func TestApplyChoiceEventDefersScene(t *testing.T) {
	// Float64 draws: 0.1 fires the injector; IntN 2 picks traffic_jam.
	e := NewEngine(&scriptSource{floats: []float64{0.1}, ints: []int{2}})
	s := NewSession(1, "")
	s.CurrentScene = SceneWork

	res, err := e.ApplyChoice(s, "work_fast")
	if err != nil {
		t.Fatalf("ApplyChoice() error: %v", err)
	}
	if res.Event == nil {
		t.Fatal("expected an event to fire")
	}
	if res.Event.Event.ID != "traffic_jam" {
		t.Errorf("event = %s, want traffic_jam", res.Event.Event.ID)
	}
	if s.CurrentScene != SceneWork {
		t.Errorf("CurrentScene = %s, want unchanged %s", s.CurrentScene, SceneWork)
	}
	if s.PendingScene != SceneWorkDecision {
		t.Errorf("PendingScene = %s, want %s", s.PendingScene, SceneWorkDecision)
	}
	if len(res.Choices) != 0 {
		t.Error("an event result carries no scene choices")
	}
	// work_fast (60) plus the jam (30) from 15:00.
	if s.Clock.String() != "16:30" {
		t.Errorf("Clock = %s, want 16:30", s.Clock)
	}

	cont, err := e.ResolveContinuation(s)
	if err != nil {
		t.Fatalf("ResolveContinuation() error: %v", err)
	}
	if cont.Scene != SceneWorkDecision || s.CurrentScene != SceneWorkDecision {
		t.Errorf("continuation landed on %s, want %s", s.CurrentScene, SceneWorkDecision)
	}
	if s.PendingScene != "" {
		t.Errorf("PendingScene = %q, want cleared", s.PendingScene)
	}
}

func TestResolveContinuationWithoutPendingRecovers(t *testing.T) {
	e := quietEngine()
	s := NewSession(1, "")
	s.CurrentScene = SceneTransport

	res, err := e.ResolveContinuation(s)
	if !errors.Is(err, ErrNoPendingEvent) {
		t.Fatalf("err = %v, want ErrNoPendingEvent", err)
	}
	if res.Scene != SceneWork || s.CurrentScene != SceneWork {
		t.Errorf("recovery landed on %s, want %s", res.Scene, SceneWork)
	}
	if len(res.Choices) == 0 {
		t.Error("recovery result should carry the work choices")
	}
}

func TestBeginDayEntersWork(t *testing.T) {
	e := quietEngine()
	s := NewSession(1, "")
	s.CurrentScene = SceneDayIntro

	res := e.BeginDay(s)
	if res.Scene != SceneWork || s.CurrentScene != SceneWork {
		t.Errorf("BeginDay landed on %s, want %s", s.CurrentScene, SceneWork)
	}
	if res.Narrative == "" {
		t.Error("work scene should carry an intro")
	}
}

// TestFullDayRun walks the exact reference day: fast report, acknowledge,
// paid help, postponed visit, bus, with events suppressed throughout.
func TestFullDayRun(t *testing.T) {
	e := quietEngine()
	s := NewSession(42, "Sam")
	s.SubscriptionVerified = true
	e.BeginDay(s)

	steps := []struct {
		choice    string
		wantScene SceneID
		wantClock string
	}{
		{"work_fast", SceneWorkDecision, "16:00"},
		{"work_ack", SceneFamilyCrisis, "16:00"},
		{"family_pay", ScenePartnerDilemma, "16:20"},
		{"partner_postpone", SceneTransport, "16:30"},
		{"transport_bus", SceneFinal, "17:20"},
	}

	for _, st := range steps {
		res, err := e.ApplyChoice(s, st.choice)
		if err != nil {
			t.Fatalf("ApplyChoice(%s) error: %v", st.choice, err)
		}
		if res.Scene != st.wantScene {
			t.Fatalf("after %s: scene = %s, want %s", st.choice, res.Scene, st.wantScene)
		}
		if s.Clock.String() != st.wantClock {
			t.Fatalf("after %s: clock = %s, want %s", st.choice, s.Clock, st.wantClock)
		}
	}

	if want := (Resources{Career: 1, Family: 0, Energy: 6, Skills: 0}); s.Resources != want {
		t.Fatalf("Resources = %+v, want %+v", s.Resources, want)
	}

	out := EvaluateFinalOutcome(s)
	if !out.OnTime {
		t.Error("17:20 is on time")
	}
	if out.CareerOK || out.FamilyOK || out.SkillsOK {
		t.Errorf("career/family/skills goals should all miss: %+v", out)
	}
	if !out.EnergyOK {
		t.Error("energy 6 meets the 4+ goal")
	}
	if out.SuccessCount != 2 {
		t.Errorf("SuccessCount = %d, want 2", out.SuccessCount)
	}
	if s.DaysCompleted != 1 {
		t.Errorf("DaysCompleted = %d, want 1", s.DaysCompleted)
	}
}

func TestStatsRefreshesScoreSnapshot(t *testing.T) {
	e := quietEngine()
	s := NewSession(1, "")
	s.Resources = Resources{Career: 2, Family: 1, Energy: 5, Skills: 0}

	view := e.Stats(s)
	if view.Score != Score(s) {
		t.Errorf("Score = %d, want %d", view.Score, Score(s))
	}
	if s.TotalScore != view.Score {
		t.Errorf("TotalScore snapshot = %d, want %d", s.TotalScore, view.Score)
	}
	if view.Resources != s.Resources {
		t.Errorf("Resources = %+v, want %+v", view.Resources, s.Resources)
	}
}
