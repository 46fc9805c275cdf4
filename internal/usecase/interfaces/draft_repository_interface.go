package interfaces

import (
	"context"

	"elo_drinks/internal/domain/entities"
)

// IDraftRepository abstracts DynamoDB persistence for customization drafts.
//
// Tolerance contract:
//   - Load returns the all-empty default draft (nil error) for a missing or
//     unparseable record; an error is only returned for transport failures.
//   - Save/Clear failures are surfaced so the caller can log and swallow them;
//     a failed save never blocks the flow.

type IDraftRepository interface {
	Load(ctx context.Context, sessionID string) (entities.EventDraft, error)
	Save(ctx context.Context, sessionID string, draft entities.EventDraft) error
	Clear(ctx context.Context, sessionID string) error
}
