package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/stayfocused/internal/config"
)

type sent struct{ title, message string }

func newRecording(cfg *config.NotificationConfig) (*Notifier, *[]sent) {
	var got []sent
	n := New(cfg)
	n.send = func(title, message string) error {
		got = append(got, sent{title, message})
		return nil
	}
	return n, &got
}

func TestNotifier_Disabled(t *testing.T) {
	n, got := newRecording(&config.NotificationConfig{Enabled: false})

	require.NoError(t, n.NotifyTaskChosen("Work", "Review"))
	assert.False(t, n.IsEnabled())
	assert.Empty(t, *got)

	assert.False(t, New(nil).IsEnabled())
	assert.NoError(t, New(nil).Notify("t", "m"))
}

func TestNotifier_Messages(t *testing.T) {
	n, got := newRecording(&config.NotificationConfig{Enabled: true})

	require.NoError(t, n.NotifyTaskChosen("Work", "Review"))
	require.NoError(t, n.NotifyCommitmentMet("Thesis", "2h0m0s"))

	require.Len(t, *got, 2)
	assert.Equal(t, "Work: Review", (*got)[0].message)
	assert.Contains(t, (*got)[1].message, "2h0m0s")
	assert.Contains(t, (*got)[1].message, "Thesis")
}
