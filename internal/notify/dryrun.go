package notify

import (
	"context"
	"fmt"
	"io"
)

// DryRun prints what would be mailed without actually sending.
type DryRun struct {
	out io.Writer
}

// NewDryRun creates a dry-run notifier writing to out.
func NewDryRun(out io.Writer) *DryRun {
	return &DryRun{out: out}
}

// Send prints the message that would be delivered.
func (d *DryRun) Send(_ context.Context, subject, body string) error {
	fmt.Fprintf(d.out, "--- %s ---\n%s\n", subject, body)
	return nil
}
