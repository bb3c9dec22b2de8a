package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filebak/internal/errors"
)

func TestNewDefaults(t *testing.T) {
	o := New()
	assert.Equal(t, 5*time.Second, o.Interval)
	assert.Equal(t, "warn", o.LogLevel)
	assert.False(t, o.Quiet)
	assert.False(t, o.StartingBackup)
	assert.False(t, o.Compress)
}

func TestValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		o := New()
		o.WatchFile = "some/file.conf"
		assert.NoError(t, o.Validate())
	})

	t.Run("MissingWatchFile", func(t *testing.T) {
		o := New()
		err := o.Validate()
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
	})

	t.Run("NonPositiveInterval", func(t *testing.T) {
		for _, interval := range []time.Duration{0, -time.Second} {
			o := New()
			o.WatchFile = "f"
			o.Interval = interval
			err := o.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
		}
	})
}
