package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-management/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns tasks filtered by status, priority and search text, newest first.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       status   query string false "Filter by status (To Do/In Progress/Done, or All)"
// @Param       priority query string false "Filter by priority (Low/Medium/High/Urgent, or All)"
// @Param       search   query string false "Case-insensitive substring over title or description"
// @Success     200 {array}  taskResp
// @Failure     500 {object} response.ErrResp
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processListReq(c)

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newListResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a task from manual entry or a confirmed voice candidate.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201 {object} taskResp
// @Failure     400 {object} response.ErrResp
// @Failure     500 {object} response.ErrResp
// @Router      /api/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.Created(c, newTaskResp(output.Task))
}

// Update godoc
// @Summary     Update a task
// @Description Partially updates an existing task. Omitted fields are unchanged.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.ErrResp
// @Failure     404 {object} response.ErrResp
// @Failure     500 {object} response.ErrResp
// @Router      /api/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.ErrResp "Deletion confirmation message"
// @Failure     404 {object} response.ErrResp
// @Failure     500 {object} response.ErrResp
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "Task deleted successfully"})
}
