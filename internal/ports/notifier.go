package ports

// Notifier delivers desktop notifications.
// This is a driven port (implemented by adapters).
type Notifier interface {
	// NotifyTaskChosen announces the task picked by a random selection.
	NotifyTaskChosen(project, task string) error

	// NotifyCommitmentMet announces that today's commitment was reached.
	NotifyCommitmentMet(project, commitment string) error
}
