package api

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/interviewd/internal/interviews"
	"github.com/nikmy/interviewd/pkg/errors"
	"github.com/nikmy/interviewd/pkg/logger"
)

func NewServer(
	cfg Config,
	log logger.Logger,
	engine InterviewEngine,
	bank QuestionBank,
	skillTrees SkillTrees,
) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: true,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods: []string{
			fiber.MethodGet, fiber.MethodPost, fiber.MethodPatch, fiber.MethodDelete,
		},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			serveLog.Error(errors.WrapFail(err, "handle http request"))
		} else {
			serveLog.Warn(err)
		}

		return c.Status(status).JSON(map[string]string{"status": "ERROR", "message": err.Error()})
	}

	s := &server{
		engine: engine,
		bank:   bank,
		skills: skillTrees,
		http:   fiber.New(fiberCfg),
		addr:   cfg.HTTP.Addr,
		log:    serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	engine InterviewEngine
	bank   QuestionBank
	skills SkillTrees
	http   *fiber.App
	addr   string
	log    logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	err := s.http.ShutdownWithContext(ctx)
	return errors.WrapFail(err, "shutdown http server")
}

func (s *server) setupRoutes() {
	s.http.Get("/health", s.handleHealth)

	s.http.Get("/interviews", s.handleListInterviews)
	s.http.Get("/interviews/:id", s.handleGetInterview)
	s.http.Post("/interviews", s.handleCreateInterview)
	s.http.Patch("/interviews/:id", s.handleUpdateInterview)
	s.http.Delete("/interviews/:id", s.handleDeleteInterview)
	s.http.Patch("/interviews/:id/status", s.handleTransitionStatus)
	s.http.Patch("/interviews/:id/feedback", s.handleSetFeedback)
	s.http.Post("/interviews/:id/questions", s.handleAddQuestion)
	s.http.Patch("/interviews/:id/questions/:questionId", s.handleUpdateQuestion)
	s.http.Delete("/interviews/:id/questions/:questionId", s.handleDeleteQuestion)

	s.http.Get("/skills", s.handleSkillTrees)
	s.http.Get("/skills/:id", s.handleSkillTree)

	s.http.Get("/users/:userId/questions", s.handleListUserQuestions)
	s.http.Post("/users/:userId/questions", s.handleCreateUserQuestion)
	s.http.Patch("/users/:userId/questions/:id", s.handleUpdateUserQuestion)
	s.http.Delete("/users/:userId/questions/:id", s.handleDeleteUserQuestion)
	s.http.Get("/users/:userId/questions/skill/:skillId", s.handleListUserQuestionsBySkill)
}

func (s *server) handleHealth(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(map[string]string{"status": "OK"})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, errors.NotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.Validation), errors.Is(err, interviews.ErrInvalidTransition):
		return http.StatusBadRequest
	case errors.Is(err, interviews.ErrCollision):
		return http.StatusConflict
	case errors.Is(err, errors.Unavailable):
		return http.StatusServiceUnavailable
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}

	return http.StatusInternalServerError
}
