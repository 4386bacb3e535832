package game

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		prep func(*Session)
		want int
	}{
		{
			"fresh session counts starting energy",
			func(s *Session) {},
			130, // energy 8 * 10, plus the 8+ excellence bonus
		},
		{
			"resources and days",
			func(s *Session) {
				s.Resources = Resources{Career: 4, Family: 3, Energy: 2, Skills: 1}
				s.DaysCompleted = 2
			},
			200, // 10*10 + 2*50
		},
		{
			"achievements add thirty each",
			func(s *Session) {
				s.Resources = Resources{}
				s.Unlock(AchTrueFriend)
				s.Unlock(AchSpeedRecord)
			},
			60,
		},
		{
			"excellence bonus per high resource",
			func(s *Session) {
				s.Resources = Resources{Career: 8, Family: 9, Energy: 10, Skills: 7}
			},
			490, // 34*10 + 3*50
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(1, "")
			tt.prep(s)
			if got := Score(s); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreIsPure(t *testing.T) {
	s := NewSession(1, "")
	s.Resources = Resources{Career: 8, Family: 2, Energy: 8, Skills: 3}
	s.Unlock(AchEnergizer)
	before := *s

	first := Score(s)
	second := Score(s)
	if first != second {
		t.Errorf("Score() = %d then %d, want identical", first, second)
	}
	if s.AchievementCount() != before.AchievementCount() || s.Resources != before.Resources {
		t.Error("Score() must not mutate the session")
	}
}

func TestEvaluateFinalOutcomeGrants(t *testing.T) {
	s := NewSession(1, "")
	s.Resources = Resources{Career: 8, Family: 8, Energy: 8, Skills: 8}
	s.Clock = Clock{Hours: 18, Minutes: 40}

	out := EvaluateFinalOutcome(s)
	if out.SuccessCount != 5 {
		t.Fatalf("SuccessCount = %d, want 5", out.SuccessCount)
	}
	for _, name := range []string{AchSpeedRecord, AchPerfectBalance, AchCareerist, AchSuperparent, AchEnergizer, AchMaster, AchChampion} {
		if !s.Achievements[name] {
			t.Errorf("expected %q to be granted", name)
		}
	}
	if len(out.Unlocked) != 7 {
		t.Errorf("Unlocked = %v, want 7 new grants", out.Unlocked)
	}
	if s.DaysCompleted != 1 {
		t.Errorf("DaysCompleted = %d, want 1", s.DaysCompleted)
	}
	if out.Tier != motivationalTiers[5] {
		t.Errorf("Tier = %q, want the 5/5 tier", out.Tier)
	}
}

func TestEvaluateFinalOutcomeLate(t *testing.T) {
	s := NewSession(1, "")
	s.Resources = Resources{Career: 5, Family: 5, Energy: 4, Skills: 3}
	s.Clock = Clock{Hours: 19, Minutes: 10}

	out := EvaluateFinalOutcome(s)
	if out.OnTime {
		t.Error("19:10 is late")
	}
	if out.SuccessCount != 4 {
		t.Errorf("SuccessCount = %d, want 4", out.SuccessCount)
	}
	if s.Achievements[AchSpeedRecord] {
		t.Error("Speed Record must not be granted on a late day")
	}
	if s.Achievements[AchPerfectBalance] {
		t.Error("Perfect Balance needs all five goals")
	}
}

func TestEvaluateFinalOutcomeIdempotentGrants(t *testing.T) {
	s := NewSession(1, "")
	s.Resources = Resources{Career: 8, Family: 1, Energy: 4, Skills: 3}

	first := EvaluateFinalOutcome(s)
	count := s.AchievementCount()
	second := EvaluateFinalOutcome(s)

	if s.AchievementCount() != count {
		t.Errorf("achievement count grew from %d to %d on re-evaluation", count, s.AchievementCount())
	}
	if len(second.Unlocked) != 0 {
		t.Errorf("second evaluation unlocked %v, want nothing new", second.Unlocked)
	}
	if len(first.Unlocked) == 0 {
		t.Error("first evaluation should have unlocked something")
	}
	if s.DaysCompleted != 2 {
		t.Errorf("DaysCompleted = %d, want 2", s.DaysCompleted)
	}
}

func TestMotivationalTiersCoverAllCounts(t *testing.T) {
	for i, tier := range motivationalTiers {
		if tier == "" {
			t.Errorf("tier %d is empty", i)
		}
	}
}
