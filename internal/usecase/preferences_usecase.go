package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	prefsKeyPrefix = "prefs:"
)

var ErrInvalidTheme = errors.New("invalid theme")

// Preferences are the per-user durable flags: whether onboarding was
// finished and which theme the client should apply at startup.
type Preferences struct {
	OnboardingCompleted bool   `json:"onboarding_completed"`
	Theme               string `json:"theme"`
}

func defaultPreferences() Preferences {
	return Preferences{OnboardingCompleted: false, Theme: ThemeLight}
}

// PreferenceStore is the durable flag store (redis-backed in production).
type PreferenceStore interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSONForever(ctx context.Context, key string, value any) error
}

type PreferencesUsecase struct {
	store  PreferenceStore
	logger *log.Logger
}

func NewPreferencesUsecase(store PreferenceStore, logger *log.Logger) *PreferencesUsecase {
	if logger == nil {
		logger = log.Default()
	}
	return &PreferencesUsecase{store: store, logger: logger}
}

func (uc *PreferencesUsecase) Get(ctx context.Context, userID uuid.UUID) Preferences {
	prefs := defaultPreferences()
	if uc.store == nil {
		return prefs
	}

	hit, err := uc.store.GetJSON(ctx, prefsKey(userID), &prefs)
	if err != nil {
		uc.logger.Printf("[Preferences] read failed user_id=%s: %v", userID, err)
		return defaultPreferences()
	}
	if !hit {
		return defaultPreferences()
	}
	if prefs.Theme != ThemeLight && prefs.Theme != ThemeDark {
		prefs.Theme = ThemeLight
	}
	return prefs
}

func (uc *PreferencesUsecase) CompleteOnboarding(ctx context.Context, userID uuid.UUID) (Preferences, error) {
	prefs := uc.Get(ctx, userID)
	prefs.OnboardingCompleted = true
	return prefs, uc.save(ctx, userID, prefs)
}

func (uc *PreferencesUsecase) SetTheme(ctx context.Context, userID uuid.UUID, theme string) (Preferences, error) {
	if theme != ThemeLight && theme != ThemeDark {
		return Preferences{}, ErrInvalidTheme
	}
	prefs := uc.Get(ctx, userID)
	prefs.Theme = theme
	return prefs, uc.save(ctx, userID, prefs)
}

// ToggleTheme flips between dark and light.
func (uc *PreferencesUsecase) ToggleTheme(ctx context.Context, userID uuid.UUID) (Preferences, error) {
	prefs := uc.Get(ctx, userID)
	if prefs.Theme == ThemeDark {
		prefs.Theme = ThemeLight
	} else {
		prefs.Theme = ThemeDark
	}
	return prefs, uc.save(ctx, userID, prefs)
}

func (uc *PreferencesUsecase) save(ctx context.Context, userID uuid.UUID, prefs Preferences) error {
	if uc.store == nil {
		return nil
	}
	if err := uc.store.SetJSONForever(ctx, prefsKey(userID), prefs); err != nil {
		uc.logger.Printf("[Preferences] write failed user_id=%s: %v", userID, err)
		return err
	}
	return nil
}

func prefsKey(userID uuid.UUID) string {
	return prefsKeyPrefix + userID.String()
}
