package discordstyle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMention(t *testing.T) {
	tests := []struct {
		name     string
		id       any
		nickname bool
		want     string
	}{
		{"int", 42, false, "<@42>"},
		{"nickname", 42, true, "<@!42>"},
		{"uint64 snowflake", uint64(math.MaxUint64), false, "<@18446744073709551615>"},
		{"int64", int64(80351110224678912), false, "<@80351110224678912>"},
		{"digit string", "80351110224678912", true, "<@!80351110224678912>"},
		{"zero", 0, false, "<@0>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewUserMention(tt.id, tt.nickname)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Render())
			assert.Equal(t, tt.want, m.String())
			assert.Equal(t, tt.nickname, m.Nickname())
		})
	}
}

func TestRoleAndChannelMention(t *testing.T) {
	role, err := NewRoleMention(123)
	require.NoError(t, err)
	assert.Equal(t, "<@&123>", role.Render())
	assert.Equal(t, uint64(123), role.ID())

	channel, err := NewChannelMention(uint32(456))
	require.NoError(t, err)
	assert.Equal(t, "<#456>", channel.Render())
	assert.Equal(t, uint64(456), channel.ID())
}

func TestMention_InvalidID(t *testing.T) {
	invalid := []struct {
		name string
		id   any
	}{
		{"float", 1.5},
		{"negative", -1},
		{"word", "yo"},
		{"empty string", ""},
		{"signed string", "-12"},
		{"overflow", "184467440737095516150"},
		{"nil", nil},
		{"bool", true},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUserMention(tt.id, false)
			assert.Nil(t, user)
			assertValidationCode(t, err, CodeInvalidID)

			_, err = NewRoleMention(tt.id)
			assertValidationCode(t, err, CodeInvalidID)

			_, err = NewChannelMention(tt.id)
			assertValidationCode(t, err, CodeInvalidID)
		})
	}
}

func TestMention_AsChild(t *testing.T) {
	user, err := NewUserMention(7, false)
	require.NoError(t, err)
	assert.Equal(t, "**hi <@7>**", Bold("hi", user).Render())
}
