package handler

import (
	"unsent/backend/internal/sentiment"
	"unsent/backend/internal/starhub"
	"unsent/backend/internal/storage"
	"unsent/backend/internal/threads"
)

// Handler wires the HTTP surface to the hub and its collaborators.
type Handler struct {
	Hub       *starhub.Hub
	Storage   storage.Storage
	Sentiment sentiment.Classifier
	Assigner  *threads.Assigner
}

func NewHandler(hub *starhub.Hub, s storage.Storage, cls sentiment.Classifier, a *threads.Assigner) *Handler {
	return &Handler{Hub: hub, Storage: s, Sentiment: cls, Assigner: a}
}
