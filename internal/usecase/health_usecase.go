package usecase

import (
	"context"

	"go-prodigy-backend/config"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	cfg *config.Config
}

func NewHealthUsecase(cfg *config.Config) HealthUsecase {
	return &healthUsecase{cfg: cfg}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	mailer := "configured"
	if len(u.cfg.MissingMailerFields()) > 0 {
		mailer = "unconfigured"
	}

	return map[string]string{
		"status": "ok",
		"mailer": mailer,
	}
}
