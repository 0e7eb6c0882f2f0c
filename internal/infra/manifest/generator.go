package manifest

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"aechlegal/internal/domain"
)

// Metadata is the project-level part of the manifest.
type Metadata struct {
	Name               string         `toml:"name"`
	Type               string         `toml:"type"`
	Command            string         `toml:"command"`
	SpecVersion        int            `toml:"spec_version"`
	Description        string         `toml:"description"`
	AvailableInSandbox bool           `toml:"available_in_sandbox"`
	Documentation      map[string]any `toml:"documentation"`
}

// Generate derives a manifest from the registered command tree. Hidden
// commands, help and completion are skipped; a runnable command becomes an
// action named by its path below the root.
func Generate(root *cobra.Command, meta Metadata, skills []domain.Skill) (domain.Manifest, error) {
	actions, err := collectActions(root, root)
	if err != nil {
		return domain.Manifest{}, err
	}
	if skills == nil {
		skills = []domain.Skill{}
	}
	doc := meta.Documentation
	if doc == nil {
		doc = map[string]any{}
	}
	return domain.Manifest{
		Name:               meta.Name,
		Type:               meta.Type,
		Command:            meta.Command,
		SpecVersion:        meta.SpecVersion,
		Description:        meta.Description,
		AvailableInSandbox: meta.AvailableInSandbox,
		Actions:            actions,
		Documentation:      doc,
		BundledSkills:      skills,
	}, nil
}

// CommandNames lists the action names the tree registers, in tree order.
func CommandNames(root *cobra.Command) ([]string, error) {
	actions, err := collectActions(root, root)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		names = append(names, a.Name)
	}
	return names, nil
}

func collectActions(root, cmd *cobra.Command) ([]domain.Action, error) {
	var actions []domain.Action
	for _, child := range cmd.Commands() {
		if child.Hidden || skipCommand(child.Name()) {
			continue
		}
		if child.HasAvailableSubCommands() {
			nested, err := collectActions(root, child)
			if err != nil {
				return nil, err
			}
			actions = append(actions, nested...)
			continue
		}
		if !child.Runnable() {
			continue
		}
		action, err := describe(root, child)
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	return actions, nil
}

func skipCommand(name string) bool {
	return name == "help" || name == "completion"
}

func describe(root, cmd *cobra.Command) (domain.Action, error) {
	name := strings.TrimSpace(strings.TrimPrefix(cmd.CommandPath(), root.CommandPath()))
	description := strings.TrimSpace(cmd.Long)
	if description == "" {
		description = strings.TrimSpace(cmd.Short)
	}

	args, err := DeclaredArgs(cmd)
	if err != nil {
		return domain.Action{}, err
	}
	params := make([]domain.Parameter, 0, len(args))
	for _, a := range args {
		params = append(params, domain.Parameter{
			Name:        a.Name,
			Kind:        domain.ParameterArgument,
			Required:    !a.Optional,
			Description: a.Description,
		})
	}

	inherited := cmd.InheritedFlags()
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Name == "help" || inherited.Lookup(f.Name) != nil {
			return
		}
		params = append(params, domain.Parameter{
			Name:        f.Name,
			Kind:        domain.ParameterOption,
			Required:    isRequired(f),
			Description: f.Usage,
		})
	})

	if err := checkUnique(name, params); err != nil {
		return domain.Action{}, err
	}
	return domain.Action{Name: name, Description: description, Parameters: params}, nil
}

func isRequired(f *pflag.Flag) bool {
	values := f.Annotations[cobra.BashCompOneRequiredFlag]
	return len(values) > 0 && values[0] == "true"
}

func checkUnique(action string, params []domain.Parameter) error {
	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("action %q declares parameter %q twice", action, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}
