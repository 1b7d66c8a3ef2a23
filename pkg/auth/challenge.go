package auth

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"portfolio-core/pkg/contracts"
	"portfolio-core/pkg/models"
)

// GenerateMathChallenge produces one arithmetic problem for the first login
// gate. Operands are bounded so subtraction never goes negative and
// multiplication stays small enough for mental arithmetic.
func GenerateMathChallenge() models.MathChallenge {
	switch rand.IntN(3) {
	case 0:
		a, b := rand.IntN(20)+1, rand.IntN(20)+1
		return models.MathChallenge{OperandA: a, OperandB: b, Operator: "+", Expected: a + b}
	case 1:
		a := rand.IntN(20) + 10
		b := rand.IntN(a)
		return models.MathChallenge{OperandA: a, OperandB: b, Operator: "-", Expected: a - b}
	default:
		a, b := rand.IntN(10)+1, rand.IntN(10)+1
		return models.MathChallenge{OperandA: a, OperandB: b, Operator: "*", Expected: a * b}
	}
}

// ChallengeQuestion renders the prompt shown to the operator.
func ChallengeQuestion(c models.MathChallenge) string {
	return fmt.Sprintf("What is %d %s %d?", c.OperandA, c.Operator, c.OperandB)
}

// CheckMathAnswer compares a typed answer against the expected result. A
// non-numeric submission is a validation failure, not a wrong answer.
func CheckMathAnswer(c models.MathChallenge, answer string) (bool, error) {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return false, fmt.Errorf("%w: answer must be a number", contracts.ErrValidation)
	}
	return n == c.Expected, nil
}
