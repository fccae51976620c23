package handler

import (
	"pingo/backend/internal/archive"
	"pingo/backend/internal/chathub"
	"pingo/backend/internal/config"
	"pingo/backend/internal/mailer"
	"pingo/backend/internal/media"
	"pingo/backend/internal/storage"
)

// Handler wires the HTTP surface to the hub, storage, and the out-of-scope
// collaborators.
type Handler struct {
	Hub      *chathub.Hub
	Storage  storage.Storage
	Archive  *archive.Manager
	Mailer   mailer.Mailer
	Uploader media.Uploader
	Cfg      *config.Config
}

func NewHandler(hub *chathub.Hub, s storage.Storage, a *archive.Manager, m mailer.Mailer, u media.Uploader, cfg *config.Config) *Handler {
	return &Handler{
		Hub:      hub,
		Storage:  s,
		Archive:  a,
		Mailer:   m,
		Uploader: u,
		Cfg:      cfg,
	}
}
