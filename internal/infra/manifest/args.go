package manifest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// AnnotationArgs holds the JSON-encoded positional arguments of a command.
const AnnotationArgs = "aech.args"

// Arg documents one positional argument.
type Arg struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Optional    bool   `json:"optional,omitempty"`
}

// DeclareArgs records positional arguments on cmd, extends its usage line and
// installs a matching argument-count validator.
func DeclareArgs(cmd *cobra.Command, args ...Arg) {
	required := 0
	for _, a := range args {
		if a.Optional {
			cmd.Use += fmt.Sprintf(" [%s]", a.Name)
			continue
		}
		required++
		cmd.Use += fmt.Sprintf(" <%s>", a.Name)
	}
	cmd.Args = cobra.RangeArgs(required, len(args))

	data, err := json.Marshal(args)
	if err != nil {
		panic(fmt.Sprintf("encode args for %s: %v", cmd.Name(), err))
	}
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[AnnotationArgs] = string(data)
}

// DeclaredArgs returns the positional arguments recorded by DeclareArgs.
func DeclaredArgs(cmd *cobra.Command) ([]Arg, error) {
	raw := strings.TrimSpace(cmd.Annotations[AnnotationArgs])
	if raw == "" {
		return nil, nil
	}
	var args []Arg
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("decode args of %s: %w", cmd.CommandPath(), err)
	}
	return args, nil
}
