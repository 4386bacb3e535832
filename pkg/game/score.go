package game

// Score weights.
const (
	resourcePoint    = 10 // per resource point
	dayBonus         = 50 // per completed day
	achievementBonus = 30 // per unlocked achievement
	excellenceBonus  = 50 // per resource at excellenceBar or above
	excellenceBar    = 8
)

// Daily success thresholds.
const (
	careerGoal = 5
	familyGoal = 5
	energyGoal = 4
	skillsGoal = 3
)

// Score computes the running score from the resource vector and history.
// It is pure: calling it never mutates the session.
func Score(s *Session) int {
	total := s.Resources.Sum() * resourcePoint
	total += s.DaysCompleted * dayBonus
	total += s.AchievementCount() * achievementBonus
	for _, v := range [4]int{s.Resources.Career, s.Resources.Family, s.Resources.Energy, s.Resources.Skills} {
		if v >= excellenceBar {
			total += excellenceBonus
		}
	}
	return total
}

// FinalOutcome is the verdict for one completed day.
type FinalOutcome struct {
	OnTime   bool
	CareerOK bool
	FamilyOK bool
	EnergyOK bool
	SkillsOK bool

	SuccessCount int
	Tier         string
	Score        int
	// Unlocked lists achievements newly granted by this evaluation, in
	// grant order.
	Unlocked []string
}

// motivationalTiers is indexed by SuccessCount (0 through 5).
var motivationalTiers = [6]string{
	"A PRACTICE DAY!\nTomorrow brings a fresh chance to show what you've got!",
	"THE ROAD BEGINS!\nBalance is an art — every attempt gets you closer!",
	"ROOM TO GROW!\nNot bad, but you can do better! Tomorrow is another shot!",
	"A SOLID RESULT!\nYou're keeping it all under control! Keep it up!",
	"ALMOST PERFECT!\nGreat balance! Your friends would be jealous of these skills!",
	"LEGENDARY BALANCE!\nYou are a god of multitasking! A result worth showing off!",
}

// EvaluateFinalOutcome scores the day against the five success conditions,
// grants any earned achievements, and counts the day as completed. It is
// meant to be invoked exactly once, on arrival at the final scene.
func EvaluateFinalOutcome(s *Session) FinalOutcome {
	out := FinalOutcome{
		OnTime:   !s.Clock.Late(),
		CareerOK: s.Resources.Career >= careerGoal,
		FamilyOK: s.Resources.Family >= familyGoal,
		EnergyOK: s.Resources.Energy >= energyGoal,
		SkillsOK: s.Resources.Skills >= skillsGoal,
	}
	for _, ok := range [5]bool{out.OnTime, out.CareerOK, out.FamilyOK, out.EnergyOK, out.SkillsOK} {
		if ok {
			out.SuccessCount++
		}
	}

	grant := func(cond bool, name string) {
		if cond && s.Unlock(name) {
			out.Unlocked = append(out.Unlocked, name)
		}
	}
	grant(out.OnTime, AchSpeedRecord)
	grant(out.SuccessCount == 5, AchPerfectBalance)
	grant(s.Resources.Career >= excellenceBar, AchCareerist)
	grant(s.Resources.Family >= excellenceBar, AchSuperparent)
	grant(s.Resources.Energy >= excellenceBar, AchEnergizer)
	grant(s.Resources.Skills >= excellenceBar, AchMaster)
	grant(s.Resources.Career >= excellenceBar &&
		s.Resources.Family >= excellenceBar &&
		s.Resources.Energy >= excellenceBar &&
		s.Resources.Skills >= excellenceBar, AchChampion)

	s.DaysCompleted++
	s.TotalScore = Score(s)

	out.Score = s.TotalScore
	out.Tier = motivationalTiers[out.SuccessCount]
	return out
}
