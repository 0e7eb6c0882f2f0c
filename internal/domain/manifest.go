package domain

// ParameterKind distinguishes positional arguments from flags.
type ParameterKind string

const (
	ParameterArgument ParameterKind = "argument"
	ParameterOption   ParameterKind = "option"
)

// Manifest is the persisted description of the whole command surface.
type Manifest struct {
	Name               string         `json:"name"`
	Type               string         `json:"type"`
	Command            string         `json:"command"`
	SpecVersion        int            `json:"spec_version"`
	Description        string         `json:"description"`
	AvailableInSandbox bool           `json:"available_in_sandbox"`
	Actions            []Action       `json:"actions"`
	Documentation      map[string]any `json:"documentation"`
	BundledSkills      []Skill        `json:"bundled_skills"`
}

// Action is one invocable operation. Group operations are named "<group> <op>".
type Action struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
}

type Parameter struct {
	Name        string        `json:"name"`
	Kind        ParameterKind `json:"kind"`
	Required    bool          `json:"required"`
	Description string        `json:"description"`
}

// Skill describes a bundled recipe built from one or more actions.
type Skill struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Action returns the action with the given name.
func (m Manifest) Action(name string) (Action, bool) {
	for _, action := range m.Actions {
		if action.Name == name {
			return action, true
		}
	}
	return Action{}, false
}

// ActionNames lists action names in manifest order.
func (m Manifest) ActionNames() []string {
	names := make([]string, 0, len(m.Actions))
	for _, action := range m.Actions {
		names = append(names, action.Name)
	}
	return names
}

// Arguments returns the positional parameters in declaration order.
func (a Action) Arguments() []Parameter {
	out := make([]Parameter, 0, len(a.Parameters))
	for _, param := range a.Parameters {
		if param.Kind == ParameterArgument {
			out = append(out, param)
		}
	}
	return out
}
