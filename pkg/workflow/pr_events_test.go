//go:build !integration

package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPREventTypeTokens(t *testing.T) {
	tokens := map[PREventType]string{
		PRAssigned:             "assigned",
		PRUnassigned:           "unassigned",
		PRLabeled:              "labeled",
		PRUnlabeled:            "unlabeled",
		PROpened:               "opened",
		PREdited:               "edited",
		PRClosed:               "closed",
		PRReopened:             "reopened",
		PRSynchronize:          "synchronize",
		PRReadyForReview:       "ready_for_review",
		PRLocked:               "locked",
		PRUnlocked:             "unlocked",
		PRReviewRequested:      "review_requested",
		PRReviewRequestRemoved: "review_request_removed",
	}

	require.Len(t, tokens, len(PREventTypes), "token table must cover every member")
	for eventType, token := range tokens {
		assert.Equal(t, token, eventType.String())
	}
}

func TestParsePREventTypeRoundTrip(t *testing.T) {
	for _, eventType := range PREventTypes {
		parsed, err := ParsePREventType(eventType.String())
		require.NoError(t, err)
		assert.Equal(t, eventType, parsed)
	}
}

func TestParsePREventTypeUnknownToken(t *testing.T) {
	_, err := ParsePREventType("merged")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "merged")
}

func TestDefaultPREventTypes(t *testing.T) {
	assert.Equal(t, []PREventType{PRSynchronize, PROpened, PRReopened}, DefaultPREventTypes)
}
