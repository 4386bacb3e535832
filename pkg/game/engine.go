package game

import "fmt"

// eventChance is the probability of an interrupt event after each choice.
const eventChance = 0.3

// Engine resolves player input against the scene graph and mutates sessions.
// It holds no per-session state of its own; all randomness flows through the
// injected RandomSource. Engine methods are synchronous and never block;
// serialization of concurrent callers belongs to Store.Do.
type Engine struct {
	rng RandomSource
}

// NewEngine creates an engine. A nil rng selects the production source.
func NewEngine(rng RandomSource) *Engine {
	if rng == nil {
		rng = NewRandomSource()
	}
	return &Engine{rng: rng}
}

// TransitionResult is what one resolved input renders as: either a scene
// (narrative plus its choices) or a fired interrupt event awaiting a single
// "continue" from the player.
type TransitionResult struct {
	Scene     SceneID
	Narrative string
	Choices   []Transition
	// Event is non-nil when an interrupt fired; the current scene is then
	// unchanged and Choices is empty until ResolveContinuation.
	Event *EventResult
}

// ApplyChoice resolves choiceID against the session's current scene.
//
// On an unknown choice it returns ErrInvalidChoice and leaves the session
// untouched. Otherwise it spends the edge's time, applies its deltas, and
// rolls the event injector: no event advances straight to the destination;
// a fired event leaves the destination pending behind the interrupt.
func (e *Engine) ApplyChoice(s *Session, choiceID string) (TransitionResult, error) {
	tr, ok := FindTransition(s.CurrentScene, choiceID)
	if !ok {
		return TransitionResult{}, fmt.Errorf("%w: %q from scene %q", ErrInvalidChoice, choiceID, s.CurrentScene)
	}

	s.Clock = s.Clock.Add(tr.Minutes)
	s.Resources = s.Resources.Apply(tr.Delta)
	s.PendingScene = tr.Dest

	if ev := maybeFire(s, e.rng, eventChance); ev != nil {
		return TransitionResult{Scene: s.CurrentScene, Narrative: ev.Event.Text, Event: ev}, nil
	}

	s.CurrentScene = tr.Dest
	s.PendingScene = ""
	return e.enter(s, tr.Dest), nil
}

// ResolveContinuation moves past a fired event into the scene it deferred.
//
// With nothing pending it recovers by re-entering the work scene and reports
// ErrNoPendingEvent alongside the usable recovery result; the condition is
// recovered locally and is not fatal.
func (e *Engine) ResolveContinuation(s *Session) (TransitionResult, error) {
	if s.PendingScene == "" {
		s.CurrentScene = SceneWork
		return e.enter(s, SceneWork), ErrNoPendingEvent
	}
	s.CurrentScene = s.PendingScene
	s.PendingScene = ""
	return e.enter(s, s.CurrentScene), nil
}

// BeginDay moves a session from the day-intro screen into the first working
// scene of the day.
func (e *Engine) BeginDay(s *Session) TransitionResult {
	s.CurrentScene = SceneWork
	s.PendingScene = ""
	return e.enter(s, SceneWork)
}

// enter builds the render payload for arriving at a scene.
func (e *Engine) enter(s *Session, scene SceneID) TransitionResult {
	return TransitionResult{
		Scene:     scene,
		Narrative: Narrative(scene, s, e.rng),
		Choices:   Choices(scene),
	}
}

// StatsView is a read-only snapshot for the stats screen.
type StatsView struct {
	Resources        Resources
	Score            int
	Day              int
	DaysCompleted    int
	AchievementCount int
}

// Stats refreshes the session's score snapshot and returns the stats view.
func (e *Engine) Stats(s *Session) StatsView {
	s.TotalScore = Score(s)
	return StatsView{
		Resources:        s.Resources,
		Score:            s.TotalScore,
		Day:              s.Day,
		DaysCompleted:    s.DaysCompleted,
		AchievementCount: s.AchievementCount(),
	}
}
