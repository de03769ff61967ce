package reminder

import (
	"fmt"
	"io"
	"log/slog"
)

// TerminalNotifier prints the reminder and records it in the structured
// log, which is how a headless daemon surfaces it.
type TerminalNotifier struct {
	Out io.Writer
}

func (n TerminalNotifier) Notify(title, body string) error {
	if _, err := fmt.Fprintf(n.Out, "\n[%s] %s\n", title, body); err != nil {
		return err
	}
	slog.Info("reminder fired", "title", title)
	return nil
}
