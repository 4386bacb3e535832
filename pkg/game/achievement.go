package game

// Achievement names. Grants are idempotent set inserts; the set only grows.
const (
	AchPerfectBalance = "Perfect Balance"
	AchSpeedRecord    = "Speed Record"
	AchCareerist      = "Careerist"
	AchSuperparent    = "Superparent"
	AchPerfectPartner = "Perfect Partner"
	AchMaster         = "Master of All Trades"
	AchInnovator      = "Innovator"
	AchTrueFriend     = "True Friend"
	AchTimeManager    = "Time Manager"
	AchEnergizer      = "Energizer"
	AchFinancier      = "Financier"
	AchChampion       = "Absolute Champion"

	// AchGoldenEmployee is granted by the bonus event only and has no
	// descriptor row below.
	AchGoldenEmployee = "Golden Employee"
)

// Descriptor is one row of the fixed achievement table shown to players.
type Descriptor struct {
	Name      string
	Condition string
}

// Descriptors is the fixed 12-entry achievement table.
var Descriptors = []Descriptor{
	{AchPerfectBalance, "Hit 5/5 goals in a single day"},
	{AchSpeedRecord, "Make it to the lecture on time"},
	{AchCareerist, "Career at 8+"},
	{AchSuperparent, "Family at 8+"},
	{AchPerfectPartner, "Keep your partner happy 3 days straight"},
	{AchMaster, "Skills at 8+"},
	{AchInnovator, "Discover 3+ life hacks"},
	{AchTrueFriend, "Get a friend's help on the road"},
	{AchTimeManager, "Five days without being late"},
	{AchEnergizer, "Energy at 8+"},
	{AchFinancier, "Always hire the help"},
	{AchChampion, "All four resources at 8+ at once"},
}

// AchievementStatus pairs a descriptor with its unlocked state for one
// session.
type AchievementStatus struct {
	Descriptor
	Unlocked bool
}

// Achievements reports the full descriptor table with unlock flags for s.
func Achievements(s *Session) []AchievementStatus {
	out := make([]AchievementStatus, len(Descriptors))
	for i, d := range Descriptors {
		out[i] = AchievementStatus{Descriptor: d, Unlocked: s.Achievements[d.Name]}
	}
	return out
}
