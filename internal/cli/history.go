package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/aretw0/fibgen/pkg/ports"
)

// RunHistoryList prints the request journal as an aligned table.
func RunHistoryList(ctx context.Context, out io.Writer, store ports.RecordStore) error {
	records, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "No requests recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTERMS\tSOURCE\tCREATED")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", r.ID, r.Terms, r.Source, r.CreatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

// RunHistoryDelete removes one record from the journal.
func RunHistoryDelete(ctx context.Context, out io.Writer, store ports.RecordStore, id string) error {
	if err := store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete %s: %w", id, err)
	}
	fmt.Fprintf(out, "Deleted %s\n", id)
	return nil
}
