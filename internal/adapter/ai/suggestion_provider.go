// Package ai provides the productivity suggestion source consumed by
// the dashboard. Real model integration is architected but not wired
// in; the provider serves canned suggestions behind the same fallible
// interface a remote call would have.
package ai

import (
	"context"
	"math/rand"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/ports"
)

var suggestions = []string{
	"Review and organize your top 3 tasks for the day.",
	"Take a 15-minute break to recharge before your next task.",
	"Catch up on emails from yesterday.",
	"Reflect on your progress from this week and set a goal for tomorrow.",
	"Plan your next big project's first step.",
	"Declutter your digital workspace for 10 minutes.",
	"Prioritize tasks using the Eisenhower Matrix.",
	"Block out time for deep work on your critical task.",
	"Identify one small habit to improve your daily routine.",
}

// SuggestionProvider picks a random canned suggestion. Calls go
// through a circuit breaker so that once a real upstream replaces the
// canned list, repeated failures trip open and surface as provider
// errors instead of hammering the upstream.
type SuggestionProvider struct {
	breaker *gobreaker.CircuitBreaker
}

var _ ports.SuggestionProvider = (*SuggestionProvider)(nil)

func NewSuggestionProvider() *SuggestionProvider {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "suggestion-provider",
		MaxRequests: 1,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			zap.L().Info("circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	return &SuggestionProvider{breaker: breaker}
}

func (p *SuggestionProvider) Suggest(ctx context.Context, userID uint64) (string, error) {
	result, err := p.breaker.Execute(func() (any, error) {
		return suggestions[rand.Intn(len(suggestions))], nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}
