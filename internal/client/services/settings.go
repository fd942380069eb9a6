package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/bookstore/internal/client/api"
	"github.com/dmitrijs2005/bookstore/internal/client/models"
)

// SettingsService fetches the global settings object. Results are never
// cached: every call hits the server.
type SettingsService interface {
	GetGlobalSettings(ctx context.Context) (*models.Settings, error)
}

type settingsService struct {
	api    Doer
	tokens api.TokenSource
}

func NewSettingsService(client Doer, tokens api.TokenSource) SettingsService {
	return &settingsService{api: client, tokens: tokens}
}

func (s *settingsService) GetGlobalSettings(ctx context.Context) (*models.Settings, error) {
	if err := requireToken(ctx, s.tokens); err != nil {
		return nil, err
	}

	resp, err := s.api.Do(ctx, api.Request{Method: http.MethodGet, Path: api.GlobalSettingsPath})
	if err != nil {
		return nil, fmt.Errorf("get global settings: %w", err)
	}

	env, err := api.DecodeEnvelope[models.Settings](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("get global settings: %w", err)
	}

	settings := env.Resp().Data
	return &settings, nil
}
