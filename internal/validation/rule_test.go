package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	rule := Contains("JSON", "ask for JSON")

	assert.True(t, rule("Respond with JSON only").Success)

	v := rule("respond with json only")
	assert.False(t, v.Success, "Contains is case-sensitive")
	assert.Equal(t, "ask for JSON", v.Message)
}

func TestContainsFold(t *testing.T) {
	rule := ContainsFold("you are", "open with a role")

	assert.True(t, rule("You Are a reviewer").Success)
	assert.True(t, rule("you are a reviewer").Success)
	assert.False(t, rule("act as a reviewer").Success)
}

func TestContainsAny(t *testing.T) {
	rule := ContainsAny([]string{"bullet", "table"}, "name a format")

	assert.True(t, rule("use bullet points").Success)
	assert.True(t, rule("render a table").Success)

	v := rule("just write prose")
	assert.False(t, v.Success)
	assert.Equal(t, "name a format", v.Message)
}

func TestMinLength(t *testing.T) {
	rule := MinLength(5, "too short")

	assert.True(t, rule("hello").Success)
	assert.False(t, rule("hi").Success)
	assert.False(t, rule("   hi   ").Success, "surrounding whitespace does not count")
}

func TestNotEmpty(t *testing.T) {
	assert.False(t, NotEmpty()("").Success)
	assert.False(t, NotEmpty()("   \n\t  ").Success)
	assert.True(t, NotEmpty()("x").Success)
}

func TestLineCount(t *testing.T) {
	rule := LineCount(2, "need more lines")

	assert.True(t, rule("one\ntwo").Success)
	assert.True(t, rule("one\n\n\ntwo").Success, "blank lines do not count")

	v := rule("one")
	assert.False(t, v.Success)
	assert.Contains(t, v.Message, "found 1 non-empty lines")
}

func TestAllReturnsFirstFailure(t *testing.T) {
	rule := All("all good",
		Contains("a", "missing a"),
		Contains("b", "missing b"),
	)

	v := rule("only a here")
	assert.False(t, v.Success)
	assert.Equal(t, "missing b", v.Message)

	v = rule("nothing matches")
	assert.False(t, v.Success)
	assert.Equal(t, "missing a", v.Message, "rules run in order")

	v = rule("a and b")
	assert.True(t, v.Success)
	assert.Equal(t, "all good", v.Message)
}

func TestRulesAreDeterministic(t *testing.T) {
	rule := All("ok", NotEmpty(), ContainsFold("stop when", "add a stop condition"))

	first := rule("Stop when the tests pass")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, rule("Stop when the tests pass"))
	}
}
