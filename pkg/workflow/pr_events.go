package workflow

import "fmt"

// PREventType is a pull_request trigger subtype.
type PREventType int

const (
	PRAssigned PREventType = iota
	PRUnassigned
	PRLabeled
	PRUnlabeled
	PROpened
	PREdited
	PRClosed
	PRReopened
	PRSynchronize
	PRReadyForReview
	PRLocked
	PRUnlocked
	PRReviewRequested
	PRReviewRequestRemoved
)

// DefaultPREventTypes is the subset GitHub applies when a workflow declares no
// explicit types filter. A workflow whose filter equals this exact sequence
// renders no types: line. Comparison is ordered, not set-based, so a caller
// listing the same members in a different order still gets an explicit filter.
var DefaultPREventTypes = []PREventType{PRSynchronize, PROpened, PRReopened}

// String returns the snake_case token used in the types: filter.
func (t PREventType) String() string {
	switch t {
	case PRAssigned:
		return "assigned"
	case PRUnassigned:
		return "unassigned"
	case PRLabeled:
		return "labeled"
	case PRUnlabeled:
		return "unlabeled"
	case PROpened:
		return "opened"
	case PREdited:
		return "edited"
	case PRClosed:
		return "closed"
	case PRReopened:
		return "reopened"
	case PRSynchronize:
		return "synchronize"
	case PRReadyForReview:
		return "ready_for_review"
	case PRLocked:
		return "locked"
	case PRUnlocked:
		return "unlocked"
	case PRReviewRequested:
		return "review_requested"
	case PRReviewRequestRemoved:
		return "review_request_removed"
	}
	return fmt.Sprintf("PREventType(%d)", int(t))
}

// PREventTypes lists every member in declaration order.
var PREventTypes = []PREventType{
	PRAssigned,
	PRUnassigned,
	PRLabeled,
	PRUnlabeled,
	PROpened,
	PREdited,
	PRClosed,
	PRReopened,
	PRSynchronize,
	PRReadyForReview,
	PRLocked,
	PRUnlocked,
	PRReviewRequested,
	PRReviewRequestRemoved,
}

// ParsePREventType maps a snake_case token back to its member. Used by
// configuration loading; the compiler itself never parses.
func ParsePREventType(token string) (PREventType, error) {
	for _, t := range PREventTypes {
		if t.String() == token {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown pull request event type: %q", token)
}
