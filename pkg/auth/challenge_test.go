package auth

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-core/pkg/contracts"
)

func TestGenerateMathChallengeBounds(t *testing.T) {
	for i := 0; i < 500; i++ {
		c := GenerateMathChallenge()
		switch c.Operator {
		case "+":
			assert.GreaterOrEqual(t, c.OperandA, 1)
			assert.LessOrEqual(t, c.OperandA, 20)
			assert.GreaterOrEqual(t, c.OperandB, 1)
			assert.LessOrEqual(t, c.OperandB, 20)
			assert.Equal(t, c.OperandA+c.OperandB, c.Expected)
		case "-":
			assert.GreaterOrEqual(t, c.Expected, 0, "subtraction must never go negative")
			assert.Equal(t, c.OperandA-c.OperandB, c.Expected)
		case "*":
			assert.LessOrEqual(t, c.OperandA, 10)
			assert.LessOrEqual(t, c.OperandB, 10)
			assert.Equal(t, c.OperandA*c.OperandB, c.Expected)
		default:
			t.Fatalf("unexpected operator %q", c.Operator)
		}
	}
}

func TestChallengeQuestionFormat(t *testing.T) {
	c := GenerateMathChallenge()
	assert.Equal(t, fmt.Sprintf("What is %d %s %d?", c.OperandA, c.Operator, c.OperandB), ChallengeQuestion(c))
}

func TestCheckMathAnswer(t *testing.T) {
	c := GenerateMathChallenge()

	ok, err := CheckMathAnswer(c, strconv.Itoa(c.Expected))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckMathAnswer(c, " "+strconv.Itoa(c.Expected)+" ")
	require.NoError(t, err)
	assert.True(t, ok, "surrounding whitespace is tolerated")

	ok, err = CheckMathAnswer(c, strconv.Itoa(c.Expected+1))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = CheckMathAnswer(c, "not a number")
	require.ErrorIs(t, err, contracts.ErrValidation)
}
