package usecase

import (
	"context"
	"errors"

	"learnplatform/internal/infrastructure/kvstore"
	"learnplatform/internal/pkg/logger"

	"github.com/google/uuid"
)

const (
	languageKeyPrefix = "app_language:"
	themeKeyPrefix    = "theme:"

	defaultLanguage = "ru"
	defaultTheme    = "light"
)

var ErrBadSetting = errors.New("unsupported setting value")

type Settings struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

// SettingsService хранит язык и тему в том же KV, что и прогресс.
// Отсутствующий или недоступный ключ — это просто дефолт.
type SettingsService struct {
	store kvstore.Store
	log   *logger.Logger
}

func NewSettingsService(store kvstore.Store, log *logger.Logger) *SettingsService {
	return &SettingsService{store: store, log: log.With("service", "settings")}
}

func (s *SettingsService) Get(ctx context.Context, userID uuid.UUID) Settings {
	result := Settings{Language: defaultLanguage, Theme: defaultTheme}

	if lang, err := s.store.Get(ctx, languageKeyPrefix+userID.String()); err == nil {
		result.Language = lang
	} else if !errors.Is(err, kvstore.ErrNotFound) {
		s.log.Warn("language read failed, using default", "user_id", userID, "err", err)
	}

	if theme, err := s.store.Get(ctx, themeKeyPrefix+userID.String()); err == nil {
		result.Theme = theme
	} else if !errors.Is(err, kvstore.ErrNotFound) {
		s.log.Warn("theme read failed, using default", "user_id", userID, "err", err)
	}

	return result
}

func (s *SettingsService) Set(ctx context.Context, userID uuid.UUID, settings Settings) error {
	switch settings.Language {
	case "ru", "en", "ky":
	default:
		return ErrBadSetting
	}
	switch settings.Theme {
	case "light", "dark":
	default:
		return ErrBadSetting
	}

	if err := s.store.Set(ctx, languageKeyPrefix+userID.String(), settings.Language, 0); err != nil {
		return err
	}
	return s.store.Set(ctx, themeKeyPrefix+userID.String(), settings.Theme, 0)
}
