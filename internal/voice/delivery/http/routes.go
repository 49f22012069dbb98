package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// rg is expected to be the /api/voice group. Extra middleware (rate
// limiting) is applied by the caller since LLM calls are metered.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw ...gin.HandlerFunc) {
	rg.POST("/parse-voice", append(mw, h.ParseVoice)...)
}
