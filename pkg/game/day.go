package game

// DayType flavors a simulated day. It drives the day-intro framing and the
// lucky-day event boost; transition costs stay fixed regardless of type.
type DayType string

const (
	DayNormal       DayType = "normal"
	DayCareerCrisis DayType = "career_crisis"
	DayFamilyCrisis DayType = "family_crisis"
	DayLucky        DayType = "lucky_day"
	DayEnergyDrain  DayType = "energy_drain"
	DaySkillFocus   DayType = "skill_focus"
)

var dayTypes = []DayType{DayNormal, DayCareerCrisis, DayFamilyCrisis, DayLucky, DayEnergyDrain, DaySkillFocus}

// crisisDays is the weighted pool used once the player has a few days behind
// them.
var crisisDays = []DayType{DayCareerCrisis, DayFamilyCrisis, DayEnergyDrain}

const (
	crisisStreakThreshold = 3   // completed days before crises get likelier
	crisisChance          = 0.6 // chance of drawing from the crisis pool
)

var dayBanners = map[DayType]string{
	DayNormal:       "AN ORDINARY DAY\nThe usual mix of demands",
	DayCareerCrisis: "CRISIS AT WORK\nHarder tasks, richer career experience",
	DayFamilyCrisis: "FAMILY EMERGENCY\nThe family needs extra care today",
	DayLucky:        "A LUCKY DAY\nGood surprises come easier",
	DayEnergyDrain:  "A DRAINING DAY\nEnergy burns faster — pace yourself",
	DaySkillFocus:   "A SKILL-BUILDING DAY\nA great day to level up",
}

// Banner returns the day-intro headline for t.
func Banner(t DayType) string {
	if b, ok := dayBanners[t]; ok {
		return b
	}
	return dayBanners[DayNormal]
}

// Modifiers is the per-day-type difficulty profile. The multipliers are
// narrative flavor only: no transition cost reads them.
type Modifiers struct {
	TimeMod     float64
	EnergyMod   float64
	CareerBonus int
	FamilyBonus int
	SkillBonus  int
}

var dayModifiers = map[DayType]Modifiers{
	DayNormal:       {TimeMod: 1.0, EnergyMod: 1.0},
	DayCareerCrisis: {TimeMod: 1.2, EnergyMod: 0.8, CareerBonus: 1},
	DayFamilyCrisis: {TimeMod: 1.3, EnergyMod: 0.7, FamilyBonus: 1},
	DayLucky:        {TimeMod: 0.8, EnergyMod: 1.2},
	DayEnergyDrain:  {TimeMod: 1.1, EnergyMod: 0.6},
	DaySkillFocus:   {TimeMod: 1.0, EnergyMod: 1.1, SkillBonus: 1},
}

// DayModifiers returns the profile for t, defaulting to the normal profile
// for unknown types.
func DayModifiers(t DayType) Modifiers {
	if m, ok := dayModifiers[t]; ok {
		return m
	}
	return dayModifiers[DayNormal]
}

// Overnight changes applied by AdvanceDay.
const (
	overnightDecay = 1 // career, family, skills each drop by this (floor 0)
	overnightRest  = 2 // energy recovers by this (cap 10)
)

// DayIntro is the render payload for the start of a day.
type DayIntro struct {
	Day       int
	DayType   DayType
	Banner    string
	Clock     Clock
	Resources Resources
}

// StartDay re-rolls the day's type and moves the session to the day-intro
// screen. Once the player has completed crisisStreakThreshold days, there is
// a crisisChance probability of drawing from the crisis pool; otherwise the
// type is uniform over all six.
func (e *Engine) StartDay(s *Session) DayIntro {
	s.DayType = rollDayType(s, e.rng)
	s.CurrentScene = SceneDayIntro
	s.PendingScene = ""
	return DayIntro{
		Day:       s.Day,
		DayType:   s.DayType,
		Banner:    Banner(s.DayType),
		Clock:     s.Clock,
		Resources: s.Resources,
	}
}

// AdvanceDay rolls the session into the next day: day counter up, clock back
// to 15:00, career/family/skills decay by one, energy recovers by two, then
// the new day starts.
func (e *Engine) AdvanceDay(s *Session) DayIntro {
	s.Day++
	s.Clock = NewClock()
	s.Resources = s.Resources.Apply(Delta{
		Career: -overnightDecay,
		Family: -overnightDecay,
		Skills: -overnightDecay,
		Energy: overnightRest,
	})
	return e.StartDay(s)
}

func rollDayType(s *Session, rng RandomSource) DayType {
	if s.DaysCompleted >= crisisStreakThreshold && rng.Float64() < crisisChance {
		return crisisDays[rng.IntN(len(crisisDays))]
	}
	return dayTypes[rng.IntN(len(dayTypes))]
}
