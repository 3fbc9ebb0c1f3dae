package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAction(t *testing.T) {
	tests := []struct {
		callback string
		want     Action
	}{
		{"GadgetSinglePlayer", ActionSinglePlayer},
		{"MainMenuSkirmish", ActionSkirmish},
		{"ButtonMultiplayer", ActionMultiplayer},
		{"ReplayMenuInput", ActionReplay},
		{"GadgetLoadGame", ActionLoadGame},
		{"GadgetOptions", ActionOptions},
		{"GadgetExit", ActionExit},
		{"GadgetBack", ActionBack},
		{"StartButton", ActionStartGame},
		{"BackToOptions", ActionBack},
		{"SkirmishStart", ActionSkirmish},
		{"singleplayer", ActionNone},
		{"[None]", ActionNone},
		{"", ActionNone},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ResolveAction(tc.callback), "callback %q", tc.callback)
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "back", ActionBack.String())
	assert.Equal(t, "start-game", ActionStartGame.String())
	assert.Equal(t, "none", Action(42).String())
}
