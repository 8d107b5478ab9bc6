// Package validation grades exercise submissions. Every exercise owns its
// own rule; there is no central dispatcher keyed on exercise identity.
// Rules are pure functions and safe for concurrent use.
package validation

import (
	"fmt"
	"strings"
)

// Verdict is the outcome of checking a submission. A failed check is an
// expected result, not an error.
type Verdict struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Rule maps a submitted text to a Verdict. Rules must be deterministic:
// the same submission always yields the same verdict.
type Rule func(submission string) Verdict

// Pass returns a succeeding verdict with the given message.
func Pass(message string) Verdict {
	return Verdict{Success: true, Message: message}
}

// Fail returns a failing verdict with a corrective message.
func Fail(message string) Verdict {
	return Verdict{Success: false, Message: message}
}

// Contains requires the submission to include the literal marker. The failure
// message should tell the learner what is missing, not just that it is.
func Contains(marker, failMessage string) Rule {
	return func(submission string) Verdict {
		if !strings.Contains(submission, marker) {
			return Fail(failMessage)
		}
		return Pass("")
	}
}

// ContainsFold is Contains with case-insensitive matching.
func ContainsFold(marker, failMessage string) Rule {
	lower := strings.ToLower(marker)
	return func(submission string) Verdict {
		if !strings.Contains(strings.ToLower(submission), lower) {
			return Fail(failMessage)
		}
		return Pass("")
	}
}

// ContainsAny requires at least one of the markers to be present.
func ContainsAny(markers []string, failMessage string) Rule {
	return func(submission string) Verdict {
		for _, m := range markers {
			if strings.Contains(submission, m) {
				return Pass("")
			}
		}
		return Fail(failMessage)
	}
}

// MinLength requires the trimmed submission to be at least n characters.
func MinLength(n int, failMessage string) Rule {
	return func(submission string) Verdict {
		if len(strings.TrimSpace(submission)) < n {
			return Fail(failMessage)
		}
		return Pass("")
	}
}

// NotEmpty refuses blank submissions.
func NotEmpty() Rule {
	return MinLength(1, "Your submission is empty. Start from the starter code and build on it.")
}

// All runs the rules in order and returns the first failure. When every rule
// passes it returns success with successMessage.
func All(successMessage string, rules ...Rule) Rule {
	return func(submission string) Verdict {
		for _, r := range rules {
			if v := r(submission); !v.Success {
				return v
			}
		}
		return Pass(successMessage)
	}
}

// LineCount requires at least n non-blank lines.
func LineCount(n int, failMessage string) Rule {
	return func(submission string) Verdict {
		count := 0
		for _, line := range strings.Split(submission, "\n") {
			if strings.TrimSpace(line) != "" {
				count++
			}
		}
		if count < n {
			return Fail(fmt.Sprintf("%s (found %d non-empty lines, need %d)", failMessage, count, n))
		}
		return Pass("")
	}
}
