package rdbrain

// Role identifies which member of the innovation squad produced a message.
// Display metadata hangs off a lookup table rather than the identity itself.
type Role int

const (
	RoleUser Role = iota
	RoleOrchestrator
	RoleMarketResearcher
	RoleInternalSpecialist
	RoleSolutionArchitect
	RoleDevilsAdvocate
)

type Persona struct {
	Avatar      string
	DisplayName string
}

var personas = map[Role]Persona{
	RoleUser:               {Avatar: "🧑", DisplayName: "User"},
	RoleOrchestrator:       {Avatar: "👑", DisplayName: "Orchestrator"},
	RoleMarketResearcher:   {Avatar: "🕵️", DisplayName: "Market Researcher"},
	RoleInternalSpecialist: {Avatar: "🔍", DisplayName: "Internal Specialist"},
	RoleSolutionArchitect:  {Avatar: "💡", DisplayName: "Solution Architect"},
	RoleDevilsAdvocate:     {Avatar: "👿", DisplayName: "Devil's Advocate"},
}

func (r Role) Persona() Persona {
	if p, ok := personas[r]; ok {
		return p
	}
	return Persona{Avatar: "🤖", DisplayName: "Agent"}
}

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleOrchestrator:
		return "orchestrator"
	case RoleMarketResearcher:
		return "market-researcher"
	case RoleInternalSpecialist:
		return "internal-specialist"
	case RoleSolutionArchitect:
		return "solution-architect"
	case RoleDevilsAdvocate:
		return "devils-advocate"
	}
	return "unknown"
}

// Message is one append-only conversation log entry: the durable artifact of a
// pipeline run, kept for audit and UI replay independent of the final report.
type Message struct {
	Agent   Role   `json:"agent"`
	Content string `json:"content"`
}

// ChatRole maps squad roles onto the two-valued chat transcript role.
func (m Message) ChatRole() string {
	if m.Agent == RoleUser {
		return "user"
	}
	return "assistant"
}
