package game

import "fmt"

// SceneID names a decision point in the day's fixed scene graph.
type SceneID string

const (
	SceneStart          SceneID = "start"
	SceneDayIntro       SceneID = "day_intro"
	SceneWork           SceneID = "work"
	SceneWorkDecision   SceneID = "work_decision"
	SceneFamilyCrisis   SceneID = "family_crisis"
	ScenePartnerDilemma SceneID = "partner_dilemma"
	SceneTransport      SceneID = "transport"
	SceneFinal          SceneID = "final"
)

// Transition is one choice edge out of a scene: a fixed time cost, a clamped
// resource delta, and a destination. Costs never vary with the day type.
type Transition struct {
	Choice  string
	Label   string
	Minutes int
	Delta   Delta
	Dest    SceneID
}

// transitions is the full choice catalog, keyed by origin scene.
// Edge order is the order choices are presented to the player.
var transitions = map[SceneID][]Transition{
	SceneWork: {
		{Choice: "work_quality", Label: "Write the thorough report", Minutes: 120, Delta: Delta{Career: 3, Energy: -2, Skills: 1}, Dest: SceneWorkDecision},
		{Choice: "work_fast", Label: "Bang out a quick report", Minutes: 60, Delta: Delta{Career: 1, Energy: -1}, Dest: SceneWorkDecision},
		{Choice: "work_delegate", Label: "Hand it to a colleague", Minutes: 30, Delta: Delta{Career: -1, Energy: -1}, Dest: SceneFamilyCrisis},
	},
	SceneWorkDecision: {
		{Choice: "work_ack", Label: "Hear them out", Minutes: 0, Delta: Delta{}, Dest: SceneFamilyCrisis},
	},
	SceneFamilyCrisis: {
		{Choice: "family_help_all", Label: "Help every kid yourself", Minutes: 90, Delta: Delta{Family: 3, Energy: -2, Skills: 1}, Dest: ScenePartnerDilemma},
		{Choice: "family_quick", Label: "Quick triage only", Minutes: 45, Delta: Delta{Family: 1, Energy: -1}, Dest: ScenePartnerDilemma},
		{Choice: "family_pay", Label: "Hire a helper", Minutes: 20, Delta: Delta{Family: 2}, Dest: ScenePartnerDilemma},
	},
	ScenePartnerDilemma: {
		{Choice: "partner_help", Label: "Drive to the in-laws", Minutes: 90, Delta: Delta{Family: 2, Energy: -1, Skills: 1}, Dest: SceneTransport},
		{Choice: "partner_apologize", Label: "Apologize and promise", Minutes: 30, Delta: Delta{Family: 1}, Dest: SceneTransport},
		{Choice: "partner_postpone", Label: "Push it to tomorrow", Minutes: 10, Delta: Delta{Family: -2, Energy: -1}, Dest: SceneTransport},
	},
	SceneTransport: {
		{Choice: "transport_fix", Label: "Fix the car", Minutes: 60, Delta: Delta{Skills: 2}, Dest: SceneFinal},
		{Choice: "transport_taxi", Label: "Call a taxi", Minutes: 25, Delta: Delta{Skills: 1}, Dest: SceneFinal},
		{Choice: "transport_bus", Label: "Take the bus", Minutes: 50, Delta: Delta{}, Dest: SceneFinal},
	},
}

// FindTransition looks up the edge for choiceID out of scene.
func FindTransition(scene SceneID, choiceID string) (Transition, bool) {
	for _, tr := range transitions[scene] {
		if tr.Choice == choiceID {
			return tr, true
		}
	}
	return Transition{}, false
}

// Choices returns the edges out of scene in presentation order.
// Terminal and system scenes have none.
func Choices(scene SceneID) []Transition {
	return transitions[scene]
}

// Scene intro texts. Scenes with more than one variant pick at random,
// so repeat days read a little differently.
var workIntros = []string{
	"WORK\n\n%s, the boss drops a task on you:\n\"I need the full quarterly report. No report, no funding!\"",
	"WORK\n\n%s, urgent assignment:\n\"The client wants the report by end of day. The big contract rides on it.\"",
}

var familyIntros = []string{
	"FAMILY EMERGENCY\n\n%s, your partner is panicking:\n\"The oldest blew the school project, the middle one is sick, and the youngest flooded the bathroom!\"",
	"CHAOS AT HOME\n\n%s, it's a full storm back home:\n\"The kids have projects due, dinner isn't started, and the little one won't stop crying!\"",
}

var partnerIntros = []string{
	"RELATIONSHIP\n\nYour partner looks at you hopefully:\n\"It's my mom's anniversary today. She's expecting us. I know you're tired, but it matters to me...\"",
	"FAMILY TIES\n\nYour better half says:\n\"My parents are expecting us for dinner. Can you carve out the time? It would mean a lot.\"",
}

const workDecisionIntro = "WORK WRAP-UP\n\nReport delivered! Time to move on.\n\nYour partner calls, voice shaking:\n\"I need you at home. Now!\""

const transportIntro = "THE FINAL STRETCH\n\nYou run out the door. The car won't start — dead battery!\n\nLess and less time before the lecture...\n\nPick your ride:"

// Narrative renders the intro text the player sees on entering scene.
// Variant scenes draw from rng; the final scene has no intro of its own
// (its text is the day summary produced by EvaluateFinalOutcome).
func Narrative(scene SceneID, s *Session, rng RandomSource) string {
	pick := func(variants []string) string {
		return variants[rng.IntN(len(variants))]
	}
	switch scene {
	case SceneWork:
		return fmt.Sprintf(pick(workIntros), s.PlayerName)
	case SceneWorkDecision:
		return workDecisionIntro
	case SceneFamilyCrisis:
		return fmt.Sprintf(pick(familyIntros), s.PlayerName)
	case ScenePartnerDilemma:
		return pick(partnerIntros)
	case SceneTransport:
		return transportIntro
	default:
		return ""
	}
}
