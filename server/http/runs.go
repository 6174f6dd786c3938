package http

import (
	"sync"

	"github.com/google/uuid"
	"github.com/w-h-a/rdbrain"
)

const (
	statusRunning = "running"
	statusDone    = "done"
	statusFailed  = "failed"
)

// run is the server-side view of one pipeline execution, polled by clients.
type run struct {
	Id      string                   `json:"id"`
	Status  string                   `json:"status"`
	Percent int                      `json:"percent"`
	Label   string                   `json:"label"`
	Result  *rdbrain.PipelineResult  `json:"result,omitempty"`
	Error   string                   `json:"error,omitempty"`
	pc      *rdbrain.PipelineContext `json:"-"`
}

type runRegistry struct {
	mtx  sync.RWMutex
	runs map[string]*run
}

func newRunRegistry() *runRegistry {
	return &runRegistry{
		runs: map[string]*run{},
	}
}

func (r *runRegistry) create(pc *rdbrain.PipelineContext) *run {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	rn := &run{
		Id:     uuid.NewString(),
		Status: statusRunning,
		pc:     pc,
	}
	r.runs[rn.Id] = rn

	return rn
}

func (r *runRegistry) get(id string) (*run, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	rn, ok := r.runs[id]
	return rn, ok
}

func (r *runRegistry) progress(id string, percent int, label string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if rn, ok := r.runs[id]; ok {
		rn.Percent = percent
		rn.Label = label
	}
}

func (r *runRegistry) finish(id string, result *rdbrain.PipelineResult, err error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	rn, ok := r.runs[id]
	if !ok {
		return
	}

	if err != nil {
		rn.Status = statusFailed
		rn.Error = err.Error()
		return
	}

	rn.Status = statusDone
	rn.Result = result
}

// snapshot copies the poll-visible fields so handlers never hand out a struct
// that a finishing goroutine is still mutating.
func (r *runRegistry) snapshot(id string) (run, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	rn, ok := r.runs[id]
	if !ok {
		return run{}, false
	}

	return *rn, true
}
