package rdbrain

import (
	"context"
	"fmt"

	"github.com/w-h-a/rdbrain/arxiv"
	"github.com/w-h-a/rdbrain/store"
	"golang.org/x/sync/errgroup"
)

// Request carries one interview artifact into a pipeline run.
type Request struct {
	InterviewMemo string
	TechTags      []string
	Department    string
	CompanyName   string
}

// PipelineResult is the terminal artifact of one run; ownership transfers to
// the caller.
type PipelineResult struct {
	FinalReport     string        `json:"final_report"`
	InternalHits    []store.Hit   `json:"internal_hits"`
	AcademicResults []arxiv.Paper `json:"academic_results"`
}

// Progress milestones, in driver order. Percentages only move forward and the
// last milestone of a successful run is always 100.
const (
	progressInit        = 0
	progressBrief       = 10
	progressResearch    = 25
	progressToArchitect = 40
	progressDraft       = 50
	progressToCritic    = 60
	progressCritique    = 65
	progressToRevision  = 75
	progressRevise      = 80
	progressAnnounce    = 90
	progressSummarize   = 95
	progressDone        = 100
)

// Run drives the fixed agent sequence: kickoff brief, research, draft
// proposal, critique, one revision, final report. Research runs the market
// and internal agents concurrently; everything else is strictly sequential
// because each step feeds the next. An agent failure aborts the run at the
// current state — entries already in the log stay visible, no partial result
// is returned, and the caller restarts from scratch.
func (s *Squad) Run(ctx context.Context, pc *PipelineContext, req Request) (*PipelineResult, error) {
	if len(req.InterviewMemo) == 0 {
		return nil, fmt.Errorf("interview memo is required")
	}

	pc.ReportProgress(progressInit, "initializing squad")

	pc.ReportProgress(progressBrief, "orchestrator writing kickoff brief")
	brief, err := s.orchestratorBrief(ctx, req.InterviewMemo)
	if err != nil {
		return nil, err
	}
	pc.Append(RoleOrchestrator, brief)

	pc.ReportProgress(progressResearch, "gathering market and internal data")

	var (
		marketData   string
		papers       []arxiv.Paper
		internalData string
		hits         []store.Hit
	)

	// No data dependency between the two research agents; their log entries
	// are appended afterwards in fixed order so the transcript never
	// interleaves.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		marketData, papers, err = s.marketResearch(gctx, req.TechTags, req.InterviewMemo)
		return err
	})
	g.Go(func() error {
		internalData, hits = s.internalSpecialist(gctx, req.InterviewMemo, req.Department)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pc.Append(RoleMarketResearcher, marketData)
	pc.Append(RoleInternalSpecialist, internalData)

	pc.ReportProgress(progressToArchitect, "handing off to the architect")
	pc.Append(RoleOrchestrator, transitionToArchitect)

	pc.ReportProgress(progressDraft, "architect drafting proposal")
	draft, err := s.solutionArchitect(ctx, marketData, internalData, req.InterviewMemo, "")
	if err != nil {
		return nil, err
	}
	pc.Append(RoleSolutionArchitect, draft)

	pc.ReportProgress(progressToCritic, "handing off to the devil's advocate")
	pc.Append(RoleOrchestrator, transitionToCritic)

	pc.ReportProgress(progressCritique, "devil's advocate reviewing")
	critique, err := s.devilsAdvocate(ctx, draft)
	if err != nil {
		return nil, err
	}
	pc.Append(RoleDevilsAdvocate, critique)

	pc.ReportProgress(progressToRevision, "requesting revision")
	pc.Append(RoleOrchestrator, transitionToRevision)

	pc.ReportProgress(progressRevise, "architect revising proposal")
	revised, err := s.solutionArchitect(ctx, marketData, internalData, req.InterviewMemo, critique)
	if err != nil {
		return nil, err
	}
	pc.Append(RoleSolutionArchitect, revised)

	pc.ReportProgress(progressAnnounce, "wrapping up discussion")
	pc.Append(RoleOrchestrator, transitionDone)

	pc.ReportProgress(progressSummarize, "compiling final report")
	report, err := s.orchestratorSummary(
		ctx,
		revised,
		marketData,
		formatCrossLinks(hits),
		req.InterviewMemo,
		req.TechTags,
		req.CompanyName,
	)
	if err != nil {
		return nil, err
	}

	pc.ReportProgress(progressDone, "done")

	return &PipelineResult{
		FinalReport:     report,
		InternalHits:    hits,
		AcademicResults: papers,
	}, nil
}
