package http

import (
	"context"
	"net/http"

	"github.com/w-h-a/rdbrain"
	"github.com/w-h-a/rdbrain/intake"
	"github.com/w-h-a/rdbrain/review"
	"github.com/w-h-a/rdbrain/server"
)

type middlewareKey struct{}

func WithMiddleware(ms ...func(h http.Handler) http.Handler) server.Option {
	return func(o *server.Options) {
		o.Context = context.WithValue(o.Context, middlewareKey{}, ms)
	}
}

func MiddlewareFrom(ctx context.Context) ([]func(h http.Handler) http.Handler, bool) {
	ms, ok := ctx.Value(middlewareKey{}).([]func(h http.Handler) http.Handler)
	return ms, ok
}

type reviewerKey struct{}

func WithReviewer(r *review.Reviewer) server.Option {
	return func(o *server.Options) {
		o.Context = context.WithValue(o.Context, reviewerKey{}, r)
	}
}

func ReviewerFrom(ctx context.Context) (*review.Reviewer, bool) {
	r, ok := ctx.Value(reviewerKey{}).(*review.Reviewer)
	return r, ok
}

type intakeKey struct{}

func WithIntake(i *intake.Intake) server.Option {
	return func(o *server.Options) {
		o.Context = context.WithValue(o.Context, intakeKey{}, i)
	}
}

func IntakeFrom(ctx context.Context) (*intake.Intake, bool) {
	i, ok := ctx.Value(intakeKey{}).(*intake.Intake)
	return i, ok
}

type squadKey struct{}

func WithSquad(s *rdbrain.Squad) server.Option {
	return func(o *server.Options) {
		o.Context = context.WithValue(o.Context, squadKey{}, s)
	}
}

func SquadFrom(ctx context.Context) (*rdbrain.Squad, bool) {
	s, ok := ctx.Value(squadKey{}).(*rdbrain.Squad)
	return s, ok
}
