package db

import (
	"context"
	"fmt"

	"github.com/lib/pq"
)

// Notifier announces newly logged exchanges on a PostgreSQL NOTIFY channel
// so a reviewer dashboard can follow the log.  The notification is sent on
// the same transaction as the insert and is only delivered if it commits.
type Notifier struct {
	Channel string
}

// Notify queues a notification carrying payload.  NOTIFY takes no bind
// parameters, so both parts are quoted here.
func (n Notifier) Notify(ctx context.Context, ex execer, payload string) error {
	if n.Channel == "" {
		return nil
	}
	stmt := fmt.Sprintf("NOTIFY %s, %s", pq.QuoteIdentifier(n.Channel), pq.QuoteLiteral(payload))
	_, err := ex.ExecContext(ctx, stmt)
	return err
}
