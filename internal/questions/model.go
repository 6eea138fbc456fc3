package questions

// UserQuestion is an entry of a per-user question bank. Interviews embed
// value copies of it, so the struct must stay free of reference fields.
type UserQuestion struct {
	ID         string     `json:"id"         bson:"_id,omitempty"`
	UserID     string     `json:"user_id"    bson:"user_id"`
	Text       string     `json:"text"       bson:"text"`
	SkillID    string     `json:"skill_id"   bson:"skill_id"`
	Difficulty Difficulty `json:"difficulty" bson:"difficulty"`
	Type       Type       `json:"type"       bson:"type"`
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

type Type string

const (
	TypeSoftSkills Type = "SOFT_SKILLS"
	TypeTechnical  Type = "TECHNICAL"
	TypeCoding     Type = "CODING"
)

const (
	FieldUserID     = "user_id"
	FieldText       = "text"
	FieldSkillID    = "skill_id"
	FieldDifficulty = "difficulty"
	FieldType       = "type"
)
