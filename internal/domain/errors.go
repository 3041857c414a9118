package domain

import "errors"

var (
	// ErrDuplicateArticle reports an insert that lost a race on the board id.
	// Callers treat it as "someone else already stored this", not a failure.
	ErrDuplicateArticle = errors.New("article already exists")

	// ErrNotificationExists reports a (subscriber, article) pair that is
	// already present in the delivery ledger.
	ErrNotificationExists = errors.New("notification already exists")

	// ErrOutcomeConflict reports an attempt to re-mark a delivered record
	// with a different outcome than the one already recorded.
	ErrOutcomeConflict = errors.New("delivery outcome already recorded")

	// ErrGenerationFailed reports that the content generator produced no
	// usable subject/body for an article.
	ErrGenerationFailed = errors.New("content generation produced no usable output")
)
