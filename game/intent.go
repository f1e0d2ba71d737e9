package game

// Intent is a player action, independent of the key or button bound to it.
type Intent uint8

const (
	IntentHit Intent = iota
	IntentToggleAim
	IntentAimLeft
	IntentAimRight
	IntentPowerUp
	IntentPowerDown
	IntentReset
	intentCount
)

func (i Intent) String() string {
	switch i {
	case IntentHit:
		return "hit"
	case IntentToggleAim:
		return "toggle_aim"
	case IntentAimLeft:
		return "aim_left"
	case IntentAimRight:
		return "aim_right"
	case IntentPowerUp:
		return "power_up"
	case IntentPowerDown:
		return "power_down"
	case IntentReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Controls turns held inputs into intents that fire once per press.
type Controls struct {
	held [intentCount]bool
}

// Pressed returns the intents whose input went from released to held since the
// last call, in Intent order. Intents missing from state count as released.
func (c *Controls) Pressed(state map[Intent]bool) []Intent {
	var pressed []Intent
	for i := Intent(0); i < intentCount; i++ {
		down := state[i]
		if down && !c.held[i] {
			pressed = append(pressed, i)
		}
		c.held[i] = down
	}
	return pressed
}

// Dispatch applies the newly pressed intents to session and returns those it accepted.
func (c *Controls) Dispatch(session *Session, state map[Intent]bool) []Intent {
	var accepted []Intent
	for _, intent := range c.Pressed(state) {
		if session.Apply(intent) {
			accepted = append(accepted, intent)
		}
	}
	return accepted
}
