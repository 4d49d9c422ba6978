// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/stayfocused/internal/config"
	"github.com/xvierd/stayfocused/internal/ports"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg  *config.NotificationConfig
	send func(title, message string) error
}

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	n := &Notifier{cfg: cfg}
	n.send = n.deliver
	return n
}

func (n *Notifier) deliver(title, message string) error {
	if n.cfg.Sound {
		return beeep.Alert(title, message, "")
	}
	return beeep.Notify(title, message, "")
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	return n.send(title, message)
}

// NotifyTaskChosen displays the task picked by a random selection.
func (n *Notifier) NotifyTaskChosen(project, task string) error {
	title := "🎲 Next up"
	message := fmt.Sprintf("%s: %s", project, task)
	return n.Notify(title, message)
}

// NotifyCommitmentMet displays a notification when today's commitment is reached.
func (n *Notifier) NotifyCommitmentMet(project, commitment string) error {
	title := "✅ Commitment reached"
	message := fmt.Sprintf("You put %s into %s today.", commitment, project)
	return n.Notify(title, message)
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
