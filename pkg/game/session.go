package game

import "github.com/google/uuid"

// Resource bounds. Every mutation path clamps back into this range.
const (
	ResourceMin = 0
	ResourceMax = 10
)

// startingEnergy is the only non-zero resource on a fresh session.
const startingEnergy = 8

// Delta is an adjustment to the resource vector. Any axis may be negative.
type Delta struct {
	Career int
	Family int
	Energy int
	Skills int
}

// Resources is the four-axis life balance vector.
type Resources struct {
	Career int `json:"career"`
	Family int `json:"family"`
	Energy int `json:"energy"`
	Skills int `json:"skills"`
}

// Apply adds d and clamps every axis back into [ResourceMin, ResourceMax].
func (r Resources) Apply(d Delta) Resources {
	return Resources{
		Career: clampResource(r.Career + d.Career),
		Family: clampResource(r.Family + d.Family),
		Energy: clampResource(r.Energy + d.Energy),
		Skills: clampResource(r.Skills + d.Skills),
	}
}

// Sum returns the total across all four axes.
func (r Resources) Sum() int {
	return r.Career + r.Family + r.Energy + r.Skills
}

func clampResource(v int) int {
	if v < ResourceMin {
		return ResourceMin
	}
	if v > ResourceMax {
		return ResourceMax
	}
	return v
}

// Session is the complete mutable state of one player's playthrough.
// It is created by the Store and mutated only through Engine operations;
// concurrent access to one session must go through Store.Do.
type Session struct {
	RunID      uuid.UUID `json:"run_id"`
	UserID     int64     `json:"user_id"`
	PlayerName string    `json:"player_name"`

	Resources Resources `json:"resources"`
	Clock     Clock     `json:"clock"`

	Day           int     `json:"day"`
	DaysCompleted int     `json:"days_completed"`
	DayType       DayType `json:"day_type"`

	CurrentScene SceneID `json:"current_scene"`
	// PendingScene is set only between an interrupt event firing and the
	// player continuing past it; empty otherwise.
	PendingScene SceneID `json:"pending_scene,omitempty"`

	Achievements map[string]bool `json:"achievements"`
	SeenEvents   map[string]bool `json:"seen_events"`

	// SubscriptionVerified never reverts to false within a session.
	SubscriptionVerified bool `json:"subscription_verified"`

	// TotalScore is a derived snapshot, recomputed on demand.
	TotalScore int `json:"total_score"`
}

// NewSession returns a fresh playthrough: day 1, 15:00, energy 8, at the
// pre-gate start scene.
func NewSession(userID int64, playerName string) *Session {
	if playerName == "" {
		playerName = "Hero"
	}
	return &Session{
		RunID:        uuid.New(),
		UserID:       userID,
		PlayerName:   playerName,
		Resources:    Resources{Energy: startingEnergy},
		Clock:        NewClock(),
		Day:          1,
		DayType:      DayNormal,
		CurrentScene: SceneStart,
		Achievements: make(map[string]bool),
		SeenEvents:   make(map[string]bool),
	}
}

// Unlock adds an achievement to the session. It reports whether the
// achievement was newly unlocked; granting an already-held one is a no-op.
func (s *Session) Unlock(name string) bool {
	if s.Achievements[name] {
		return false
	}
	s.Achievements[name] = true
	return true
}

// AchievementCount returns the number of unlocked achievements.
func (s *Session) AchievementCount() int {
	return len(s.Achievements)
}
