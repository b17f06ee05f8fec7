package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"canopy/internal/config"
)

func TestCanAct(t *testing.T) {
	tests := []struct {
		mode    config.UIMode
		canAct  bool
	}{
		{config.ModeUser, true},
		{config.ModeDev, true},
		{config.ModeObserver, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			c := NewController(tt.mode)
			assert.Equal(t, tt.canAct, c.CanAct())
		})
	}
}

func TestSetIgnoresInvalidMode(t *testing.T) {
	c := NewController(config.ModeUser)

	c.Set("root")

	assert.Equal(t, config.ModeUser, c.Current())
}

func TestInvalidDefaultFallsBackToUser(t *testing.T) {
	c := NewController("banana")
	assert.Equal(t, config.ModeUser, c.Current())
}

func TestResetRestoresDefault(t *testing.T) {
	c := NewController(config.ModeObserver)
	c.Set(config.ModeDev)
	assert.True(t, c.IsDev())

	c.Reset()

	assert.True(t, c.IsObserver())
	assert.False(t, c.CanAct())
}

func TestTransitions(t *testing.T) {
	c := NewController(config.ModeUser)

	c.Set(config.ModeObserver)
	assert.False(t, c.CanAct())
	assert.True(t, c.IsObserver())

	c.Set(config.ModeDev)
	assert.True(t, c.CanAct())
	assert.True(t, c.IsDev())
	assert.False(t, c.IsObserver())
}
