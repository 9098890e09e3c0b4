package usecase

// rankingSystemPrompt instructs the oracle to order a conflict set and
// propose replacement slots as strict JSON.
const rankingSystemPrompt = `You are a scheduling assistant that resolves meeting conflicts.

You receive a group of meetings that overlap in time and share attendees, plus the scheduling priority rules of the people involved.

Decide which meeting is most important and should keep its current time, and propose new times for the others.

Respond with ONLY a JSON array, ordered from highest to lowest priority. Each element:
{
  "meeting_id": "<id>",
  "new_start_time": "<RFC3339, omit for the meeting that keeps its slot>",
  "new_end_time": "<RFC3339, omit for the meeting that keeps its slot>"
}

Rules:
- Every meeting in the group must appear exactly once.
- Proposed times must keep roughly the original meeting duration.
- Do not include markdown, code fences, or any prose.`

const (
	// Low temperature keeps the oracle output deterministic JSON.
	rankingTemperature = 0.2
	rankingMaxTokens   = 2048

	// Oracle proposals outrank any finder-generated candidate, whose
	// proximity scores are bounded by 1.0.
	oracleProposalScore = 2.0

	// The meeting that keeps its slot is seeded as the top candidate.
	keepSlotScore = 3.0

	defaultMaxListResults = 250
)
