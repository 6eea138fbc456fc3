package api

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

func (s *server) handleSkillTrees(c *fiber.Ctx) error {
	trees, err := s.skills.Trees(c.Context())
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(trees)
}

func (s *server) handleSkillTree(c *fiber.Ctx) error {
	tree, err := s.skills.TreeByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(tree)
}
