package pipeline

// State is the position of a Runner in the provisioning workflow.
type State string

const (
	NotStarted         State = "NotStarted"
	Authenticating     State = "Authenticating"
	CreatingGroup      State = "CreatingGroup"
	CreatingMonitoring State = "CreatingMonitoring"
	CreatingPlan       State = "CreatingPlan"
	CreatingApp        State = "CreatingApp"
	AttachingExtension State = "AttachingExtension"
	Completed          State = "Completed"
	Failed             State = "Failed"
)

var transitions = map[State][]State{
	NotStarted:         {Authenticating, Failed},
	Authenticating:     {CreatingGroup, Failed},
	CreatingGroup:      {CreatingMonitoring, Failed},
	CreatingMonitoring: {CreatingPlan, Failed},
	CreatingPlan:       {CreatingApp, Failed},
	CreatingApp:        {AttachingExtension, Failed},
	AttachingExtension: {Completed, Failed},
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return len(transitions[s]) == 0
}

func (s State) canTransitionTo(to State) bool {
	for _, t := range transitions[s] {
		if t == to {
			return true
		}
	}

	return false
}

func (s State) String() string {
	return string(s)
}
