package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/w-h-a/rdbrain"
	"github.com/w-h-a/rdbrain/intake"
	"github.com/w-h-a/rdbrain/review"
	"github.com/w-h-a/rdbrain/server"
	"go.uber.org/zap"
)

type httpServer struct {
	options  server.Options
	reviewer *review.Reviewer
	intake   *intake.Intake
	squad    *rdbrain.Squad
	registry *runRegistry
	srv      *http.Server
}

func (s *httpServer) Run() error {
	s.options.Logger.Info("http server starting", zap.String("address", s.options.Address))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *httpServer) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

type reviewRequest struct {
	Content string `json:"content"`
}

func (s *httpServer) handleReview(w http.ResponseWriter, r *http.Request) {
	if s.reviewer == nil {
		writeError(w, http.StatusServiceUnavailable, "review is not configured")
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Content) == 0 {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}

	result, err := s.reviewer.Review(r.Context(), req.Content)
	if err != nil {
		s.options.Logger.Error("review failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "review failed")
		return
	}

	writeJson(w, http.StatusOK, result)
}

type runRequest struct {
	InterviewMemo string   `json:"interview_memo"`
	TechTags      []string `json:"tech_tags"`
	Department    string   `json:"department"`
	CompanyName   string   `json:"company_name"`
	ContactInfo   string   `json:"contact_info"`
}

func (s *httpServer) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.InterviewMemo) == 0 {
		writeError(w, http.StatusBadRequest, "interview_memo is required")
		return
	}

	var rn *run
	pc := rdbrain.NewPipelineContext(func(percent int, label string) {
		s.registry.progress(rn.Id, percent, label)
	})
	rn = s.registry.create(pc)

	go func() {
		result, err := s.squad.Run(context.Background(), pc, rdbrain.Request{
			InterviewMemo: req.InterviewMemo,
			TechTags:      req.TechTags,
			Department:    req.Department,
			CompanyName:   req.CompanyName,
		})
		if err != nil {
			s.options.Logger.Error("pipeline run failed", zap.String("run", rn.Id), zap.Error(err))
		}
		s.registry.finish(rn.Id, result, err)

		if err == nil && s.intake != nil {
			if saveErr := s.intake.Save(context.Background(), intake.InterviewRecord{
				CompanyName: req.CompanyName,
				ContactInfo: req.ContactInfo,
				Department:  req.Department,
				RawText:     req.InterviewMemo,
				TechTags:    req.TechTags,
				CreatedAt:   time.Now().UTC(),
			}); saveErr != nil {
				s.options.Logger.Error("interview save failed", zap.String("run", rn.Id), zap.Error(saveErr))
			}
		}
	}()

	writeJson(w, http.StatusAccepted, map[string]string{"id": rn.Id})
}

func (s *httpServer) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	rn, ok := s.registry.snapshot(id)
	if !ok {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}

	writeJson(w, http.StatusOK, rn)
}

type logEntry struct {
	Agent   string `json:"agent"`
	Avatar  string `json:"avatar"`
	Content string `json:"content"`
}

func (s *httpServer) handleGetRunLog(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	rn, ok := s.registry.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}

	log := rn.pc.Log()
	entries := make([]logEntry, 0, len(log))
	for _, msg := range log {
		entries = append(entries, logEntry{
			Agent:   msg.Agent.String(),
			Avatar:  msg.Agent.Persona().Avatar,
			Content: msg.Content,
		})
	}

	writeJson(w, http.StatusOK, entries)
}

func writeJson(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJson(w, status, map[string]string{"error": msg})
}

func NewServer(opts ...server.Option) server.Server {
	options := server.NewOptions(opts...)

	s := &httpServer{
		options:  options,
		registry: newRunRegistry(),
	}

	if reviewer, ok := ReviewerFrom(options.Context); ok {
		s.reviewer = reviewer
	}

	if in, ok := IntakeFrom(options.Context); ok {
		s.intake = in
	}

	if squad, ok := SquadFrom(options.Context); ok {
		s.squad = squad
	} else {
		panic("squad is required")
	}

	router := mux.NewRouter()
	router.HandleFunc("/review", s.handleReview).Methods(http.MethodPost)
	router.HandleFunc("/runs", s.handleCreateRun).Methods(http.MethodPost)
	router.HandleFunc("/runs/{id}", s.handleGetRun).Methods(http.MethodGet)
	router.HandleFunc("/runs/{id}/log", s.handleGetRunLog).Methods(http.MethodGet)

	var handler http.Handler = router
	if ms, ok := MiddlewareFrom(options.Context); ok {
		for i := len(ms) - 1; i >= 0; i-- {
			handler = ms[i](handler)
		}
	}

	s.srv = &http.Server{
		Addr:    options.Address,
		Handler: handler,
	}

	return s
}
