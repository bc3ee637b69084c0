package main

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelp_Write(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give    Help
		wantErr string
	}{
		{give: "usage"},
		{give: "default"},
		{give: "rules"},
		{give: "config"},
		{
			give:    "not-a-topic",
			wantErr: `unknown help topic "not-a-topic": valid values`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.give.String(), func(t *testing.T) {
			t.Parallel()

			err := tt.give.Write(io.Discard)
			if len(tt.wantErr) > 0 {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHelp_Set(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want Help
	}{
		{give: "true", want: DefaultHelp},
		{give: "false", want: NoHelp},
		{give: " Rules ", want: "rules"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			var h Help
			require.NoError(t, h.Set(tt.give))
			assert.Equal(t, tt.want, h)
			assert.Equal(t, tt.want, h.Get())
		})
	}
}

func TestUsageHelp(t *testing.T) {
	t.Parallel()

	assert.True(t, strings.HasPrefix(_defaultHelp, _usageHelp))
	assert.Equal(t, 1, strings.Count(_usageHelp, "\n"))
}

func TestHelp_Known(t *testing.T) {
	t.Parallel()

	assert.True(t, DefaultHelp.Known())
	assert.True(t, Help("rules").Known())
	assert.False(t, Help("notes.txt").Known())
	assert.False(t, NoHelp.Known())
}
