package repo

import "time"

type Config struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	Database string `yaml:"database"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`

	Collections struct {
		Interviews    string `yaml:"interviews"`
		UserQuestions string `yaml:"user_questions"`
		Skills        string `yaml:"skills"`
	} `yaml:"collections"`
}
