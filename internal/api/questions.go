package api

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/interviewd/internal/questions"
)

func (s *server) handleListUserQuestions(c *fiber.Ctx) error {
	list, err := s.bank.ListByUser(c.Context(), c.Params("userId"))
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(list)
}

func (s *server) handleListUserQuestionsBySkill(c *fiber.Ctx) error {
	list, err := s.bank.ListByUserAndSkill(c.Context(), c.Params("userId"), c.Params("skillId"))
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(list)
}

func (s *server) handleCreateUserQuestion(c *fiber.Ctx) error {
	body, err := parseBody[userQuestionRequest](c)
	if err != nil {
		return err
	}

	created, err := s.bank.Create(c.Context(), c.Params("userId"), questions.CreateParams{
		Text:       body.Text,
		SkillID:    body.SkillID,
		Difficulty: body.Difficulty,
		Type:       body.Type,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(created)
}

func (s *server) handleUpdateUserQuestion(c *fiber.Ctx) error {
	body, err := parseBody[userQuestionPatchRequest](c)
	if err != nil {
		return err
	}

	updated, err := s.bank.Update(c.Context(), c.Params("userId"), c.Params("id"), questions.UpdateParams{
		Text:       body.Text,
		SkillID:    body.SkillID,
		Difficulty: body.Difficulty,
		Type:       body.Type,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(updated)
}

func (s *server) handleDeleteUserQuestion(c *fiber.Ctx) error {
	err := s.bank.Delete(c.Context(), c.Params("userId"), c.Params("id"))
	if err != nil {
		return err
	}

	return c.Status(http.StatusNoContent).Send(nil)
}
