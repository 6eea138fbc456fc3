package api

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/interviewd/internal/interviews"
)

func (s *server) handleListInterviews(c *fiber.Ctx) error {
	all, err := s.engine.List(c.Context())
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(all)
}

func (s *server) handleGetInterview(c *fiber.Ctx) error {
	interview, err := s.engine.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(interview)
}

func (s *server) handleCreateInterview(c *fiber.Ctx) error {
	body, err := parseBody[createInterviewRequest](c)
	if err != nil {
		return err
	}

	created, err := s.engine.Create(c.Context(), interviews.CreateParams{
		InterviewerID: body.InterviewerID,
		CandidateID:   body.CandidateID,
		PlannedTime:   body.PlannedTime,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(created)
}

func (s *server) handleUpdateInterview(c *fiber.Ctx) error {
	body, err := parseBody[updateInterviewRequest](c)
	if err != nil {
		return err
	}

	updated, err := s.engine.Update(c.Context(), c.Params("id"), interviews.UpdateParams{
		PlannedTime: body.PlannedTime,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(updated)
}

func (s *server) handleDeleteInterview(c *fiber.Ctx) error {
	err := s.engine.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.Status(http.StatusNoContent).Send(nil)
}

func (s *server) handleTransitionStatus(c *fiber.Ctx) error {
	body, err := parseBody[transitionStatusRequest](c)
	if err != nil {
		return err
	}

	next, err := interviews.ParseStatus(body.Status)
	if err != nil {
		return err
	}

	updated, err := s.engine.TransitionStatus(c.Context(), c.Params("id"), next)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(updated)
}

func (s *server) handleSetFeedback(c *fiber.Ctx) error {
	body, err := parseBody[setFeedbackRequest](c)
	if err != nil {
		return err
	}

	updated, err := s.engine.SetFeedback(c.Context(), c.Params("id"), body.Feedback)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(updated)
}

func (s *server) handleAddQuestion(c *fiber.Ctx) error {
	body, err := parseBody[addQuestionRequest](c)
	if err != nil {
		return err
	}

	question, err := s.engine.AddQuestion(c.Context(), c.Params("id"), body.UserQuestionID)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(question)
}

func (s *server) handleUpdateQuestion(c *fiber.Ctx) error {
	body, err := parseBody[updateQuestionRequest](c)
	if err != nil {
		return err
	}

	question, err := s.engine.UpdateQuestion(
		c.Context(),
		c.Params("id"),
		c.Params("questionId"),
		interviews.QuestionUpdateParams{Notes: body.Notes, Order: body.Order},
	)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(question)
}

func (s *server) handleDeleteQuestion(c *fiber.Ctx) error {
	err := s.engine.DeleteQuestion(c.Context(), c.Params("id"), c.Params("questionId"))
	if err != nil {
		return err
	}

	return c.Status(http.StatusNoContent).Send(nil)
}
