package game

// Effect is what an interrupt event does to the session: a minute delta
// (negative means a time refund) and a resource delta. Both use the same
// normalization and clamping rules as scene transitions.
type Effect struct {
	Minutes int
	Delta   Delta
}

// Event is one entry of the fixed interrupt catalog.
type Event struct {
	ID          string
	Title       string
	Text        string
	Effect      Effect
	Achievement string // optional grant, empty for none
}

// Catalog is the fixed interrupt-event catalog.
var Catalog = []Event{
	{
		ID:          "bonus_award",
		Title:       "SURPRISE BONUS!",
		Text:        "Your project just landed emergency funding! The boss sends you off early.",
		Effect:      Effect{Minutes: -90, Delta: Delta{Career: 2, Energy: 1}},
		Achievement: AchGoldenEmployee,
	},
	{
		ID:          "friend_help",
		Title:       "A LIFT FROM A FRIEND!",
		Text:        "A friend spots you on the way and drives you straight to campus!",
		Effect:      Effect{Minutes: -40, Delta: Delta{Family: 1}},
		Achievement: AchTrueFriend,
	},
	{
		ID:     "traffic_jam",
		Title:  "TRAFFIC JAM!",
		Text:   "An unexpected jam eats half an hour of your evening!",
		Effect: Effect{Minutes: 30, Delta: Delta{Energy: -1}},
	},
	{
		ID:          "kids_amazing",
		Title:       "THE KIDS COME THROUGH!",
		Text:        "The kids finished their homework on their own and freed up your evening!",
		Effect:      Effect{Minutes: -45, Delta: Delta{Family: 2, Energy: 1}},
		Achievement: AchSuperparent,
	},
}

// luckyEventChance overrides the fire probability on lucky days.
const luckyEventChance = 0.7

// EventResult describes an applied interrupt for rendering. Applying an
// event never advances the current scene; the pending scene stays set until
// the player continues past it.
type EventResult struct {
	Event    Event
	OldClock Clock
	NewClock Clock
	// Unlocked is the achievement granted by this event, empty if the event
	// carries none or the player already held it.
	Unlocked string
}

// maybeFire rolls the event injector once. A nil result means no event.
//
// Selection pool is the catalog entries the session hasn't seen; once the
// catalog is exhausted the full catalog becomes eligible again rather than
// the injector failing. The selected ID is recorded either way.
func maybeFire(s *Session, rng RandomSource, chance float64) *EventResult {
	if s.DayType == DayLucky {
		chance = luckyEventChance
	}
	if rng.Float64() > chance {
		return nil
	}

	pool := make([]Event, 0, len(Catalog))
	for _, ev := range Catalog {
		if !s.SeenEvents[ev.ID] {
			pool = append(pool, ev)
		}
	}
	if len(pool) == 0 {
		pool = Catalog
	}
	ev := pool[rng.IntN(len(pool))]
	s.SeenEvents[ev.ID] = true

	res := &EventResult{Event: ev, OldClock: s.Clock}
	s.Clock = s.Clock.Add(ev.Effect.Minutes)
	s.Resources = s.Resources.Apply(ev.Effect.Delta)
	res.NewClock = s.Clock

	if ev.Achievement != "" && s.Unlock(ev.Achievement) {
		res.Unlocked = ev.Achievement
	}
	return res
}
