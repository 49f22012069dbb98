package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/voice"
)

// ParseVoice godoc
// @Summary     Parse a voice transcript
// @Description Extracts structured task fields from a spoken transcript and resolves any date phrase.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Finalized transcript"
// @Success     200 {object} parseResp
// @Failure     400 {object} parseResp "Empty transcript"
// @Failure     500 {object} parseResp "Extraction failed"
// @Router      /api/voice/parse-voice [POST]
func (h *handler) ParseVoice(c *gin.Context) {
	ctx := c.Request.Context()

	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newFailureResp("transcript is required"))
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		if err == voice.ErrEmptyTranscript {
			c.JSON(http.StatusBadRequest, newFailureResp("transcript is required"))
			return
		}
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		c.JSON(http.StatusInternalServerError, newFailureResp("Failed to process and parse voice input."))
		return
	}

	c.JSON(http.StatusOK, newParseResp(output))
}
