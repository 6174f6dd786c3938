package rdbrain

import "sync"

// ProgressFunc receives pipeline milestones. Percentages are monotonically
// non-decreasing and the final call of a successful run reports 100.
type ProgressFunc func(percent int, label string)

// PipelineContext owns the mutable state of one run: the append-only
// conversation log and the progress watermark. Only the driver's single
// execution path writes to it; readers get copies.
type PipelineContext struct {
	mtx         sync.Mutex
	log         []Message
	progress    ProgressFunc
	lastPercent int
}

func NewPipelineContext(progress ProgressFunc) *PipelineContext {
	return &PipelineContext{
		progress: progress,
	}
}

func (p *PipelineContext) Append(agent Role, content string) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.log = append(p.log, Message{Agent: agent, Content: content})
}

// Log returns a copy of the conversation so far; entries already appended
// stay visible even if the run later aborts.
func (p *PipelineContext) Log() []Message {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	cpy := make([]Message, len(p.log))
	copy(cpy, p.log)

	return cpy
}

// ReportProgress clamps to the watermark so percent never goes backwards.
func (p *PipelineContext) ReportProgress(percent int, label string) {
	p.mtx.Lock()

	if percent < p.lastPercent {
		percent = p.lastPercent
	}
	p.lastPercent = percent
	progress := p.progress

	p.mtx.Unlock()

	if progress != nil {
		progress(percent, label)
	}
}

// Progress returns the current watermark.
func (p *PipelineContext) Progress() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.lastPercent
}
