package interviews

import (
	"time"

	"github.com/nikmy/interviewd/internal/questions"
)

// Interview is the aggregate root. It is always persisted as a whole,
// questions included; embedded questions never live outside their parent.
type Interview struct {
	ID            string `json:"id"             bson:"_id,omitempty"`
	InterviewerID string `json:"interviewer_id" bson:"interviewer_id"`
	CandidateID   string `json:"candidate_id"   bson:"candidate_id"`

	PlannedTime time.Time  `json:"planned_time"         bson:"planned_time"`
	StartTime   *time.Time `json:"start_time,omitempty" bson:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"   bson:"end_time,omitempty"`

	Status   Status `json:"status"             bson:"status"`
	Feedback string `json:"feedback,omitempty" bson:"feedback,omitempty"`

	Questions []Question `json:"questions" bson:"questions"`
}

// Question is an interview question embedded into its parent interview.
// Snapshot holds the user question copied at attach time; later edits to
// the bank do not propagate here.
type Question struct {
	ID       string                 `json:"id"              bson:"id"`
	Snapshot questions.UserQuestion `json:"question"        bson:"question"`
	Notes    string                 `json:"notes,omitempty" bson:"notes,omitempty"`
	Order    int                    `json:"order"           bson:"order"`
}

const (
	FieldInterviewerID = "interviewer_id"
	FieldCandidateID   = "candidate_id"
	FieldPlannedTime   = "planned_time"
	FieldStatus        = "status"
)

// AddQuestion appends q keeping ids unique within the interview.
func (i *Interview) AddQuestion(q Question) bool {
	if i.FindQuestion(q.ID) != nil {
		return false
	}

	i.Questions = append(i.Questions, q)
	return true
}

// FindQuestion returns a pointer into the Questions slice, nil on miss.
func (i *Interview) FindQuestion(id string) *Question {
	for idx := range i.Questions {
		if i.Questions[idx].ID == id {
			return &i.Questions[idx]
		}
	}

	return nil
}

// RemoveQuestion deletes the question with the given id preserving the
// order of the remaining ones. Reports whether anything was removed.
func (i *Interview) RemoveQuestion(id string) bool {
	for idx := range i.Questions {
		if i.Questions[idx].ID != id {
			continue
		}

		i.Questions = append(i.Questions[:idx], i.Questions[idx+1:]...)
		return true
	}

	return false
}
