package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "voice-task-management/internal/task/delivery/http"
	"voice-task-management/internal/task/repository"
	taskInmem "voice-task-management/internal/task/repository/inmemory"
	taskMongo "voice-task-management/internal/task/repository/mongo"
	taskUC "voice-task-management/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.mongoDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h)
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository: Mongo when configured, in-memory otherwise.
	repo := srv.taskRepository(ctx)

	// 2. UseCase, with optional calendar sync for due dates.
	var calendar taskUC.CalendarClient
	if srv.calendar != nil {
		calendar = srv.calendar
	}
	uc := taskUC.New(repo, srv.l, calendar, srv.cfg.GoogleCalendar.CalendarID, srv.cfg.Gemini.Timezone)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/tasks
	taskHTTP.RegisterRoutes(api.Group("/tasks"), h)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}

func (srv *HTTPServer) taskRepository(ctx context.Context) repository.Repository {
	if srv.mongoDB != nil {
		srv.l.Infof(ctx, "task store: mongo database %q", srv.mongoDB.Name())
		return taskMongo.New(srv.mongoDB, srv.l)
	}
	srv.l.Warnf(ctx, "task store: no Mongo URI configured, using in-memory store")
	return taskInmem.New()
}
