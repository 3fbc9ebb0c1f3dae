package menu

import "strings"

type Action int

const (
	ActionNone Action = iota
	ActionSinglePlayer
	ActionSkirmish
	ActionMultiplayer
	ActionReplay
	ActionLoadGame
	ActionOptions
	ActionExit
	ActionBack
	ActionStartGame
)

// actionPatterns is checked in order; the first substring found in a
// callback name decides the action. Back precedes Options so that
// "BackToOptions" style callbacks navigate back.
var actionPatterns = []struct {
	substr string
	action Action
}{
	{"SinglePlayer", ActionSinglePlayer},
	{"Skirmish", ActionSkirmish},
	{"Multiplayer", ActionMultiplayer},
	{"Replay", ActionReplay},
	{"LoadGame", ActionLoadGame},
	{"Back", ActionBack},
	{"Options", ActionOptions},
	{"Exit", ActionExit},
	{"Start", ActionStartGame},
}

// ResolveAction maps a symbolic input callback name to an Action.
func ResolveAction(callback string) Action {
	for _, p := range actionPatterns {
		if strings.Contains(callback, p.substr) {
			return p.action
		}
	}
	return ActionNone
}

func (a Action) String() string {
	switch a {
	case ActionSinglePlayer:
		return "single-player"
	case ActionSkirmish:
		return "skirmish"
	case ActionMultiplayer:
		return "multiplayer"
	case ActionReplay:
		return "replay"
	case ActionLoadGame:
		return "load-game"
	case ActionOptions:
		return "options"
	case ActionExit:
		return "exit"
	case ActionBack:
		return "back"
	case ActionStartGame:
		return "start-game"
	default:
		return "none"
	}
}
