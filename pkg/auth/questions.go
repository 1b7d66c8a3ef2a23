package auth

import (
	"encoding/base64"
	"fmt"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"portfolio-core/pkg/contracts"
	"portfolio-core/pkg/models"
)

const (
	questionsKey = "security_questions"

	// minConfiguredQuestions must be set before the login flow can challenge
	// a security question.
	minConfiguredQuestions = 3
)

// QuestionBank is the fixed catalog of question templates. Ids are stable;
// the persisted selection references them.
var QuestionBank = []models.SecurityQuestion{
	{ID: "birth", Question: "What city were you born in?"},
	{ID: "pet", Question: "What was your first pet's name?"},
	{ID: "school", Question: "What was the name of your first school?"},
	{ID: "car", Question: "What was your first car's model?"},
	{ID: "friend", Question: "Who was your best friend in childhood?"},
	{ID: "food", Question: "What is your favorite childhood food?"},
	{ID: "teacher", Question: "What was your favorite teacher's name?"},
	{ID: "book", Question: "What was your favorite book as a child?"},
	{ID: "movie", Question: "What was the first movie you saw in a theater?"},
	{ID: "street", Question: "What street did you grow up on?"},
}

// defaultAnswers back the installation that runs when no questions were ever
// configured, so the login flow is usable out of the box.
var defaultAnswers = map[string]string{
	"birth":  "springfield",
	"pet":    "buddy",
	"school": "lincoln elementary",
}

// Obfuscate encodes an answer for storage. This is a reversible encoding,
// NOT a cryptographic hash: it only keeps answers out of plain text. Answers
// are normalized before encoding so either comparison direction accepts the
// same inputs.
func Obfuscate(answer string) string {
	return base64.StdEncoding.EncodeToString([]byte(normalizeAnswer(answer)))
}

// Deobfuscate reverses Obfuscate.
func Deobfuscate(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Questions manages the persisted security-question selection and answers.
type Questions struct {
	store contracts.Store
	log   *zap.Logger
}

func NewQuestions(store contracts.Store, log *zap.Logger) *Questions {
	return &Questions{store: store, log: log}
}

func (q *Questions) Config() models.SecurityQuestionConfig {
	var cfg models.SecurityQuestionConfig
	if !q.store.GetJSON(questionsKey, &cfg) {
		return models.SecurityQuestionConfig{Answers: map[string]string{}}
	}
	if cfg.Answers == nil {
		cfg.Answers = map[string]string{}
	}
	return cfg
}

// Configured reports whether enough questions are set up to challenge one.
func (q *Questions) Configured() bool {
	cfg := q.Config()
	return len(cfg.QuestionIDs) >= minConfiguredQuestions && len(cfg.Answers) >= minConfiguredQuestions
}

// Save persists a new selection. At least three questions with answers are
// required; answers are obfuscated before they touch the store.
func (q *Questions) Save(questionIDs []string, answers map[string]string) error {
	if len(questionIDs) < minConfiguredQuestions {
		return fmt.Errorf("%w: at least %d security questions required", contracts.ErrValidation, minConfiguredQuestions)
	}
	encoded := make(map[string]string, len(answers))
	for id, answer := range answers {
		encoded[id] = Obfuscate(answer)
	}
	for _, id := range questionIDs {
		if _, ok := encoded[id]; !ok {
			return fmt.Errorf("%w: missing answer for question %q", contracts.ErrValidation, id)
		}
	}
	return q.store.SetJSON(questionsKey, models.SecurityQuestionConfig{
		QuestionIDs: questionIDs,
		Answers:     encoded,
	})
}

// EnsureDefaults installs the default selection when none is configured, so
// a fresh instance can complete the login flow.
func (q *Questions) EnsureDefaults() {
	if q.Configured() {
		return
	}
	ids := make([]string, 0, len(defaultAnswers))
	for id := range defaultAnswers {
		ids = append(ids, id)
	}
	if err := q.Save(ids, defaultAnswers); err != nil {
		q.log.Warn("failed to install default security questions", zap.Error(err))
	}
}

// Random picks one configured question.
func (q *Questions) Random() (models.SecurityQuestion, error) {
	cfg := q.Config()
	if len(cfg.QuestionIDs) == 0 {
		return models.SecurityQuestion{}, fmt.Errorf("%w: no security questions configured", contracts.ErrValidation)
	}
	id := cfg.QuestionIDs[rand.IntN(len(cfg.QuestionIDs))]
	for _, question := range QuestionBank {
		if question.ID == id {
			return question, nil
		}
	}
	return models.SecurityQuestion{}, fmt.Errorf("%w: unknown question id %q", contracts.ErrValidation, id)
}

// Validate compares a candidate answer against the stored one. Both sides
// are normalized (trim + lowercase) before comparing, so casing and stray
// whitespace never reject a correct answer.
func (q *Questions) Validate(questionID, answer string) bool {
	cfg := q.Config()
	stored, ok := cfg.Answers[questionID]
	if !ok {
		return false
	}
	decoded, err := Deobfuscate(stored)
	if err != nil {
		q.log.Warn("stored security answer corrupt", zap.String("question", questionID), zap.Error(err))
		return false
	}
	return normalizeAnswer(decoded) == normalizeAnswer(answer)
}
