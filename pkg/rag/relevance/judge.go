package relevance

import (
	"context"
	"strconv"
	"strings"

	"course-support-agent/internal/entity"
	"course-support-agent/internal/pkg/logger"
	"course-support-agent/pkg/llm"
)

const (
	// Bounds on the context handed to the judge model. The verdict only
	// needs a sample of the retrieved text, not the full units.
	maxUnits        = 3
	maxUnitChars    = 200
	maxContextChars = 500

	// Separator between query and context. Chosen because it does not
	// occur in natural text.
	separator = "|||"
)

// Judge decides whether the retrieved units are sufficient to answer the
// query, with a single constrained model call.
type Judge struct {
	llmProvider llm.LLMProvider
	failOpen    bool
	log         logger.ILogger
}

// NewJudge creates a relevance judge. failOpen controls the verdict when
// the model call fails or its reply is unusable: true treats the query as
// answerable (prefer attempting an answer over refusing), false routes it
// to the fallback.
func NewJudge(llmProvider llm.LLMProvider, failOpen bool, log logger.ILogger) *Judge {
	return &Judge{
		llmProvider: llmProvider,
		failOpen:    failOpen,
		log:         log,
	}
}

// Assess returns a binary verdict plus a confidence score in [0,1].
// Errors are absorbed here and never reach the caller.
func (j *Judge) Assess(ctx context.Context, query string, units []entity.RetrievableUnit) (bool, float64) {
	if len(units) == 0 {
		return false, 0.0
	}

	contextText := j.boundedContext(units)
	combined := query + separator + contextText

	parts := strings.SplitN(combined, separator, 2)
	if len(parts) != 2 {
		return j.degraded("query/context split failed")
	}
	if strings.TrimSpace(parts[1]) == "" {
		return false, 0.9
	}

	snippet := parts[1]
	if len(snippet) > maxContextChars {
		snippet = snippet[:maxContextChars]
	}

	prompt := "Question: " + parts[0] + "\nCourses: " + snippet + "...\nCan this question be answered from these courses? Reply RELEVANT or NOT_RELEVANT with score 0-1"

	reply, err := j.llmProvider.Generate(ctx, prompt)
	if err != nil {
		return j.degraded(err.Error())
	}

	return j.parseVerdict(reply)
}

// boundedContext samples the first maxUnitChars characters of each of the
// first maxUnits units, joined by newlines.
func (j *Judge) boundedContext(units []entity.RetrievableUnit) string {
	n := len(units)
	if n > maxUnits {
		n = maxUnits
	}

	samples := make([]string, n)
	for i := 0; i < n; i++ {
		text := units[i].Text
		if len(text) > maxUnitChars {
			text = text[:maxUnitChars]
		}
		samples[i] = text
	}
	return strings.Join(samples, "\n")
}

// parseVerdict reads the model's free-text reply. A reply containing
// RELEVANT without NOT_RELEVANT is a positive verdict; the trailing
// whitespace-delimited token is parsed as the score, defaulting to 0.8
// when it is not dot-decimal numeric. Everything else is a negative
// verdict with score 0.3.
func (j *Judge) parseVerdict(reply string) (bool, float64) {
	if !strings.Contains(reply, "RELEVANT") || strings.Contains(reply, "NOT_RELEVANT") {
		return false, 0.3
	}

	fields := strings.Fields(reply)
	scoreToken := "0.8"
	if len(fields) > 0 {
		scoreToken = fields[len(fields)-1]
	}

	if !isDotDecimal(scoreToken) {
		return true, 0.8
	}

	score, err := strconv.ParseFloat(scoreToken, 64)
	if err != nil {
		// Digits and dots but not a number, e.g. "0.9.": degraded reply.
		return j.degraded("unparseable score token: " + scoreToken)
	}

	return true, clamp(score)
}

// degraded is the recovery path for a failed or unusable judge call.
func (j *Judge) degraded(reason string) (bool, float64) {
	j.log.Warn("relevance", "assessment degraded", map[string]interface{}{
		"reason":    reason,
		"fail_open": j.failOpen,
	})
	return j.failOpen, 0.5
}

// isDotDecimal reports whether s consists only of digits and dots, with at
// least one digit.
func isDotDecimal(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
		default:
			return false
		}
	}
	return digits > 0
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
