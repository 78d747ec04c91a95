package documents

import "context"

// Repo defines persistence operations for documents. All operations are
// partitioned strictly by user: a document is only ever visible to its owner.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	ListByUser(ctx context.Context, userID string) ([]Document, error)
	GetByID(ctx context.Context, userID, documentID string) (Document, error)
	Delete(ctx context.Context, userID, documentID string) error
}
