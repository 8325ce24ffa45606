package pipeline

// State is a stage of the creation state machine.
type State int

const (
	StateParsingArgs State = iota
	StateResolvingTemplate
	StateBootstrapping
	StateInstalling
	StateInvoking
	StateDone
	StateFailed
)

var stateNames = [...]string{
	StateParsingArgs:       "parsing-args",
	StateResolvingTemplate: "resolving-template",
	StateBootstrapping:     "bootstrapping",
	StateInstalling:        "installing",
	StateInvoking:          "invoking",
	StateDone:              "done",
	StateFailed:            "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further transitions can happen from s.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}
