package rdbrain_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/w-h-a/rdbrain"
)

const testMemo = "Customer needs a resin for automotive connectors that survives 150C continuous and resists hydrolysis. Current PA66 fails."

func scriptedResponder(critique string) func(prompt string) (string, error) {
	return func(prompt string) (string, error) {
		switch {
		case strings.Contains(prompt, "Devil's Advocate"):
			return critique, nil
		case strings.Contains(prompt, "Solution Architect"):
			return "Proposal: blend PA9T with an impact modifier.", nil
		case strings.Contains(prompt, "Market Researcher"):
			return "Competitors: Toray. Trends: PFAS pressure.", nil
		case strings.Contains(prompt, "strategy report"):
			return "## Trigger\nx\n## Chemical Insight\nx\n## Cross-Link\nx\n## Market Trend\nx\n## Proposal\nx", nil
		default:
			return "Kickoff brief.", nil
		}
	}
}

func TestRunProducesFixedLogOrder(t *testing.T) {
	gen := &fakeGenerator{respond: scriptedResponder("Too expensive.")}
	squad := newTestSquad(gen)

	pc := rdbrain.NewPipelineContext(nil)

	result, err := squad.Run(context.Background(), pc, rdbrain.Request{
		InterviewMemo: testMemo,
		TechTags:      []string{"PA9T", "hydrolysis resistance"},
		Department:    "Sales A",
		CompanyName:   "Acme Auto",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	log := pc.Log()
	require.Len(t, log, 10)

	wantAgents := []rdbrain.Role{
		rdbrain.RoleOrchestrator,
		rdbrain.RoleMarketResearcher,
		rdbrain.RoleInternalSpecialist,
		rdbrain.RoleOrchestrator,
		rdbrain.RoleSolutionArchitect,
		rdbrain.RoleOrchestrator,
		rdbrain.RoleDevilsAdvocate,
		rdbrain.RoleOrchestrator,
		rdbrain.RoleSolutionArchitect,
		rdbrain.RoleOrchestrator,
	}
	for i, want := range wantAgents {
		assert.Equal(t, want, log[i].Agent, "log entry %d", i)
	}

	// The final report is returned, not appended to the discussion log.
	for _, msg := range log {
		assert.NotEqual(t, result.FinalReport, msg.Content)
	}
}

func TestRunInvokesArchitectTwiceWithCritique(t *testing.T) {
	const critique = "CRITIQUE: hydrolysis risk at the amide bond is unaddressed."

	gen := &fakeGenerator{respond: scriptedResponder(critique)}
	squad := newTestSquad(gen)

	_, err := squad.Run(context.Background(), rdbrain.NewPipelineContext(nil), rdbrain.Request{
		InterviewMemo: testMemo,
	})
	require.NoError(t, err)

	architectPrompts := promptsContaining(gen.streamPrompts, "Solution Architect")
	require.Len(t, architectPrompts, 2)

	assert.Contains(t, architectPrompts[0], "None")
	assert.NotContains(t, architectPrompts[0], critique)
	assert.Contains(t, architectPrompts[1], critique)

	devilPrompts := promptsContaining(gen.streamPrompts, "Devil's Advocate")
	assert.Len(t, devilPrompts, 1)
}

func TestRunCompletesWhenAllRetrievalDegrades(t *testing.T) {
	gen := &fakeGenerator{respond: scriptedResponder("Weak.")}
	squad := degradedSquad(gen)

	pc := rdbrain.NewPipelineContext(nil)

	result, err := squad.Run(context.Background(), pc, rdbrain.Request{
		InterviewMemo: testMemo,
		TechTags:      []string{"PA9T"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.FinalReport)

	// The static corpus backfills the market prompt when live search is empty.
	marketPrompts := promptsContaining(gen.allPrompts(), "Market Researcher")
	require.Len(t, marketPrompts, 1)
	assert.Contains(t, marketPrompts[0], "PA9T competes with PA6T")

	log := pc.Log()
	require.Len(t, log, 10)
	assert.Equal(t, "No relevant internal data found.", log[2].Content)
}

func TestRunReportsMonotonicProgressEndingAtHundred(t *testing.T) {
	gen := &fakeGenerator{respond: scriptedResponder("Weak.")}
	squad := newTestSquad(gen)

	var percents []int
	pc := rdbrain.NewPipelineContext(func(percent int, label string) {
		percents = append(percents, percent)
	})

	_, err := squad.Run(context.Background(), pc, rdbrain.Request{InterviewMemo: testMemo})
	require.NoError(t, err)

	require.NotEmpty(t, percents)
	assert.Equal(t, 0, percents[0])
	assert.Equal(t, 100, percents[len(percents)-1])
	for i := 1; i < len(percents); i++ {
		assert.GreaterOrEqual(t, percents[i], percents[i-1])
	}
}

func TestRunAbortsOnGeneratorFailureKeepingLog(t *testing.T) {
	gen := &fakeGenerator{respond: func(prompt string) (string, error) {
		if strings.Contains(prompt, "Devil's Advocate") {
			return "", errors.New("model overloaded")
		}
		return scriptedResponder("unused")(prompt)
	}}
	squad := newTestSquad(gen)

	pc := rdbrain.NewPipelineContext(nil)

	result, err := squad.Run(context.Background(), pc, rdbrain.Request{InterviewMemo: testMemo})
	require.Error(t, err)
	assert.Nil(t, result)

	// Everything appended before the failure stays visible.
	log := pc.Log()
	require.Len(t, log, 6)
	assert.Equal(t, rdbrain.RoleSolutionArchitect, log[4].Agent)
}

func TestRunRequiresMemo(t *testing.T) {
	gen := &fakeGenerator{}
	squad := newTestSquad(gen)

	_, err := squad.Run(context.Background(), rdbrain.NewPipelineContext(nil), rdbrain.Request{})
	assert.Error(t, err)
}

func TestRunStreamsArchitectChunks(t *testing.T) {
	gen := &fakeGenerator{respond: scriptedResponder("Weak.")}

	var chunkAgents []rdbrain.Role
	var streamed strings.Builder
	squad := newTestSquad(gen, rdbrain.WithOnChunk(func(agent rdbrain.Role, chunk string) {
		chunkAgents = append(chunkAgents, agent)
		streamed.WriteString(chunk)
	}))

	_, err := squad.Run(context.Background(), rdbrain.NewPipelineContext(nil), rdbrain.Request{InterviewMemo: testMemo})
	require.NoError(t, err)

	assert.Contains(t, chunkAgents, rdbrain.RoleSolutionArchitect)
	assert.Contains(t, chunkAgents, rdbrain.RoleDevilsAdvocate)
	assert.Contains(t, streamed.String(), "PA9T")
}
