package usecase

import (
	"voice-task-management/internal/voice"
	"voice-task-management/pkg/log"
)

type implUseCase struct {
	l         log.Logger
	extractor voice.Extractor
	resolver  voice.Resolver
}

// New creates a new voice UseCase instance.
func New(l log.Logger, extractor voice.Extractor, resolver voice.Resolver) *implUseCase {
	return &implUseCase{
		l:         l,
		extractor: extractor,
		resolver:  resolver,
	}
}
