package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/middleware"
	voiceHTTP "voice-task-management/internal/voice/delivery/http"
	"voice-task-management/internal/voice/extractor"
	"voice-task-management/internal/voice/resolver"
	voiceUC "voice-task-management/internal/voice/usecase"
)

// setupVoiceDomain initializes the voice parsing pipeline and registers
// its routes. The parse endpoint calls the language model, so it gets the
// rate limiter.
func (srv *HTTPServer) setupVoiceDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	ext := extractor.NewGemini(srv.geminiClient, srv.l)
	res := resolver.New(srv.dateParser, srv.l)

	uc := voiceUC.New(srv.l, ext, res)

	h := voiceHTTP.New(srv.l, uc)

	// Routes: registers /api/voice/parse-voice
	voiceHTTP.RegisterRoutes(api.Group("/voice"), h, mw.RateLimit())

	srv.l.Infof(ctx, "Voice domain registered")
	return nil
}
