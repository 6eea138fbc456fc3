package skills

import (
	"context"

	"github.com/nikmy/interviewd/pkg/errors"
	"github.com/nikmy/interviewd/pkg/logger"
)

type Repo interface {
	FindAll(ctx context.Context) ([]Skill, error)

	// FindByID returns nil without an error when the skill is absent.
	FindByID(ctx context.Context, id string) (*Skill, error)
}

func New(repo Repo, log logger.Logger) *Service {
	return &Service{repo: repo, log: log.With("skills")}
}

type Service struct {
	repo Repo
	log  logger.Logger
}

// Trees returns every root skill with its subtree.
func (s *Service) Trees(ctx context.Context) ([]Tree, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, errors.WrapFail(err, "list skills")
	}

	var roots []Skill
	for _, skill := range all {
		if skill.ParentID == "" {
			roots = append(roots, skill)
		}
	}

	trees := buildTrees(all, roots)
	s.log.Infof("assembled %d skill trees of %d skills", len(trees), len(all))
	return trees, nil
}

// TreeByID returns the subtree rooted at the given skill.
func (s *Service) TreeByID(ctx context.Context, id string) (Tree, error) {
	root, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Tree{}, errors.WrapFail(err, "find skill by id")
	}
	if root == nil {
		return Tree{}, errors.NotFoundf("skill not found by id: %s", id)
	}

	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return Tree{}, errors.WrapFail(err, "list skills")
	}

	return buildTrees(all, []Skill{*root})[0], nil
}
