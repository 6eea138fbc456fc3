package interviews

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nikmy/interviewd/pkg/errors"
	"github.com/nikmy/interviewd/pkg/logger"
)

// ErrCollision marks scheduling conflicts within the one-hour window.
var ErrCollision = errors.Error("interview collision")

// conflictWindow is the half-width of the collision interval around the
// planned time. Bounds are inclusive on both ends.
const conflictWindow = time.Hour

type Config struct {
	// ExcludeCancelled drops CANCELLED interviews from the collision set.
	// Off by default: historically cancelled slots still block the window.
	ExcludeCancelled bool `yaml:"exclude_cancelled"`
}

type CreateParams struct {
	InterviewerID string    `validate:"required"`
	CandidateID   string    `validate:"required"`
	PlannedTime   time.Time `validate:"required"`
}

type UpdateParams struct {
	PlannedTime *time.Time
}

type QuestionUpdateParams struct {
	Notes *string
	Order *int
}

func New(cfg Config, store Store, users UserDirectory, bank QuestionBank, log logger.Logger) *Service {
	return &Service{
		cfg:      cfg,
		store:    store,
		users:    users,
		bank:     bank,
		clock:    stdClock{},
		newID:    func() string { return primitive.NewObjectID().Hex() },
		locks:    participantLocks{held: map[string]*sync.Mutex{}},
		validate: validator.New(),
		log:      log.With("interviews"),
	}
}

// Service is the interview lifecycle engine. It owns no state besides
// the per-participant locks and may be called from parallel handlers.
type Service struct {
	cfg      Config
	store    Store
	users    UserDirectory
	bank     QuestionBank
	clock    Clock
	newID    func() string
	locks    participantLocks
	validate *validator.Validate
	log      logger.Logger
}

func (s *Service) List(ctx context.Context) ([]Interview, error) {
	all, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, errors.Mark(errors.Unavailable, errors.WrapFail(err, "list interviews"))
	}

	s.log.Infof("retrieved %d interviews", len(all))
	return all, nil
}

func (s *Service) Get(ctx context.Context, id string) (Interview, error) {
	interview, err := s.getByID(ctx, id)
	if err != nil {
		return Interview{}, err
	}

	return *interview, nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (Interview, error) {
	err := s.validate.Struct(params)
	if err != nil {
		return Interview{}, errors.Mark(errors.Validation, err)
	}

	if params.InterviewerID == params.CandidateID {
		return Interview{}, errors.Validationf(
			"interviewer and candidate must be distinct users, got %s for both",
			params.InterviewerID,
		)
	}

	for _, userID := range []string{params.InterviewerID, params.CandidateID} {
		known, err := s.users.Exists(ctx, userID)
		if err != nil {
			return Interview{}, errors.Mark(errors.Unavailable, errors.WrapFail(err, "check user existence"))
		}
		if !known {
			return Interview{}, errors.NotFoundf("user not found by id: %s", userID)
		}
	}

	interview := Interview{
		InterviewerID: params.InterviewerID,
		CandidateID:   params.CandidateID,
		PlannedTime:   params.PlannedTime.UTC(),
		Status:        StatusPlanned,
	}

	unlock := s.locks.acquire(interview.InterviewerID, interview.CandidateID)
	defer unlock()

	err = s.checkConflicts(ctx, interview)
	if err != nil {
		return Interview{}, err
	}

	saved, err := s.save(ctx, interview)
	if err != nil {
		return Interview{}, err
	}

	s.log.Infof("created interview %s", saved.ID)
	return saved, nil
}

func (s *Service) Update(ctx context.Context, id string, params UpdateParams) (Interview, error) {
	interview, err := s.getByID(ctx, id)
	if err != nil {
		return Interview{}, err
	}

	if params.PlannedTime != nil {
		interview.PlannedTime = params.PlannedTime.UTC()
	}

	unlock := s.locks.acquire(interview.InterviewerID, interview.CandidateID)
	defer unlock()

	err = s.checkConflicts(ctx, *interview)
	if err != nil {
		return Interview{}, err
	}

	saved, err := s.save(ctx, *interview)
	if err != nil {
		return Interview{}, err
	}

	s.log.Infof("updated interview %s", id)
	return saved, nil
}

// Delete is idempotent: deleting a missing interview is not an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return errors.Mark(errors.Unavailable, errors.WrapFail(err, "delete interview"))
	}

	s.log.Infof("deleted interview %s", id)
	return nil
}

func (s *Service) TransitionStatus(ctx context.Context, id string, next Status) (Interview, error) {
	interview, err := s.getByID(ctx, id)
	if err != nil {
		return Interview{}, err
	}

	err = ValidateTransition(interview.Status, next)
	if err != nil {
		return Interview{}, err
	}

	interview.Status = next
	switch next {
	case StatusActive:
		now := s.clock.Now()
		interview.StartTime = &now
	case StatusCompleted:
		now := s.clock.Now()
		interview.EndTime = &now
	}

	saved, err := s.save(ctx, *interview)
	if err != nil {
		return Interview{}, err
	}

	s.log.Infof("interview %s is %s now", id, next)
	return saved, nil
}

func (s *Service) SetFeedback(ctx context.Context, id string, feedback string) (Interview, error) {
	interview, err := s.getByID(ctx, id)
	if err != nil {
		return Interview{}, err
	}

	interview.Feedback = feedback

	saved, err := s.save(ctx, *interview)
	if err != nil {
		return Interview{}, err
	}

	s.log.Infof("updated feedback of interview %s", id)
	return saved, nil
}

func (s *Service) AddQuestion(ctx context.Context, interviewID, userQuestionID string) (Question, error) {
	if userQuestionID == "" {
		return Question{}, errors.Validationf("user question id must not be empty")
	}

	interview, err := s.getByID(ctx, interviewID)
	if err != nil {
		return Question{}, err
	}

	bankQuestion, err := s.bank.FindByID(ctx, userQuestionID)
	if err != nil {
		return Question{}, errors.Mark(errors.Unavailable, errors.WrapFail(err, "resolve user question"))
	}
	if bankQuestion == nil {
		return Question{}, errors.NotFoundf("user question not found by id: %s", userQuestionID)
	}

	question := Question{
		ID:       s.newID(),
		Snapshot: *bankQuestion,
		Order:    len(interview.Questions),
	}
	for !interview.AddQuestion(question) {
		question.ID = s.newID()
	}

	_, err = s.save(ctx, *interview)
	if err != nil {
		return Question{}, err
	}

	s.log.Infof("attached question %s to interview %s", question.ID, interviewID)
	return question, nil
}

func (s *Service) UpdateQuestion(
	ctx context.Context,
	interviewID, questionID string,
	params QuestionUpdateParams,
) (Question, error) {
	interview, err := s.getByID(ctx, interviewID)
	if err != nil {
		return Question{}, err
	}

	question := interview.FindQuestion(questionID)
	if question == nil {
		return Question{}, errors.NotFoundf("question %s not found in interview %s", questionID, interviewID)
	}

	if params.Notes != nil {
		question.Notes = *params.Notes
	}
	if params.Order != nil {
		question.Order = *params.Order
	}

	_, err = s.save(ctx, *interview)
	if err != nil {
		return Question{}, err
	}

	s.log.Infof("updated question %s of interview %s", questionID, interviewID)
	return *question, nil
}

// DeleteQuestion removes the question if present; a missing question is
// a no-op, a missing interview is NotFound.
func (s *Service) DeleteQuestion(ctx context.Context, interviewID, questionID string) error {
	interview, err := s.getByID(ctx, interviewID)
	if err != nil {
		return err
	}

	removed := interview.RemoveQuestion(questionID)

	_, err = s.save(ctx, *interview)
	if err != nil {
		return err
	}

	if removed {
		s.log.Infof("deleted question %s of interview %s", questionID, interviewID)
	}
	return nil
}

func (s *Service) getByID(ctx context.Context, id string) (*Interview, error) {
	interview, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Mark(errors.Unavailable, errors.WrapFail(err, "find interview by id"))
	}
	if interview == nil {
		return nil, errors.NotFoundf("interview not found by id: %s", id)
	}

	return interview, nil
}

func (s *Service) save(ctx context.Context, interview Interview) (Interview, error) {
	saved, err := s.store.Save(ctx, interview)
	if err != nil {
		return Interview{}, errors.Mark(errors.Unavailable, errors.WrapFail(err, "save interview"))
	}

	return saved, nil
}

func (s *Service) checkConflicts(ctx context.Context, interview Interview) error {
	from := interview.PlannedTime.Add(-conflictWindow)
	to := interview.PlannedTime.Add(conflictWindow)

	overlapping, err := s.store.FindInTimeWindow(ctx, interview.InterviewerID, interview.CandidateID, from, to)
	if err != nil {
		return errors.Mark(errors.Unavailable, errors.WrapFail(err, "find overlapping interviews"))
	}

	for _, other := range overlapping {
		if other.ID == interview.ID {
			continue
		}
		if s.cfg.ExcludeCancelled && other.Status == StatusCancelled {
			continue
		}

		return errors.Mark(ErrCollision, errors.Errorf(
			"interview for interviewer %s and candidate %s at %s conflicts with existing interviews",
			interview.InterviewerID, interview.CandidateID, interview.PlannedTime.Format(time.RFC3339),
		))
	}

	return nil
}

// participantLocks serialises detector+save sequences touching the same
// interviewer or candidate within this process. Ids are locked in sorted
// order so two overlapping acquires cannot deadlock.
type participantLocks struct {
	mu   sync.Mutex
	held map[string]*sync.Mutex
}

func (l *participantLocks) acquire(ids ...string) (release func()) {
	slices.Sort(ids)
	ids = slices.Compact(ids)

	locked := make([]*sync.Mutex, 0, len(ids))
	for _, id := range ids {
		l.mu.Lock()
		m, ok := l.held[id]
		if !ok {
			m = &sync.Mutex{}
			l.held[id] = m
		}
		l.mu.Unlock()

		m.Lock()
		locked = append(locked, m)
	}

	return func() {
		for i := len(locked) - 1; i >= 0; i-- {
			locked[i].Unlock()
		}
	}
}
