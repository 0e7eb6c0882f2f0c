package manifest

import (
	"fmt"
	"strings"

	"aechlegal/internal/domain"
)

// Validate checks that action names are unique and that each one is served by
// a registered command.
func Validate(m domain.Manifest, registered []string) error {
	known := make(map[string]struct{}, len(registered))
	for _, name := range registered {
		known[name] = struct{}{}
	}
	seen := make(map[string]struct{}, len(m.Actions))
	var problems []string
	for _, action := range m.Actions {
		if _, dup := seen[action.Name]; dup {
			problems = append(problems, fmt.Sprintf("duplicate action %q", action.Name))
			continue
		}
		seen[action.Name] = struct{}{}
		if _, ok := known[action.Name]; !ok {
			problems = append(problems, fmt.Sprintf("action %q has no registered command", action.Name))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid manifest: %s", strings.Join(problems, "; "))
	}
	return nil
}
