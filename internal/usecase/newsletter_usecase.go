package usecase

import (
	"clockstore-backend/internal/domain"
	"clockstore-backend/pkg/logger"
	"context"
	"slices"
	"strings"
)

type NewsletterUsecase struct {
	state *SessionState
}

func NewNewsletterUsecase(state *SessionState) *NewsletterUsecase {
	return &NewsletterUsecase{state: state}
}

// Subscribe appends email to the session's subscription list unless already present.
// It reports whether the address was new.
func (u *NewsletterUsecase) Subscribe(ctx context.Context, sessionID, email string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, domain.ErrEmailRequired
	}

	unlock := u.state.Lock(sessionID)
	defer unlock()

	subs, err := loadJSON(ctx, u.state, sessionID, domain.StateKeySubscriptions, []string{})
	if err != nil {
		return false, err
	}
	if slices.Contains(subs, email) {
		return false, nil
	}
	subs = append(subs, email)
	if err := saveJSON(ctx, u.state, sessionID, domain.StateKeySubscriptions, subs); err != nil {
		return false, err
	}

	logger.WithContext(ctx).Info().Int("subscriptions", len(subs)).Msg("Newsletter subscription added")
	return true, nil
}

func (u *NewsletterUsecase) Subscriptions(ctx context.Context, sessionID string) ([]string, error) {
	subs, err := loadJSON(ctx, u.state, sessionID, domain.StateKeySubscriptions, []string{})
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []string{}
	}
	return subs, nil
}
