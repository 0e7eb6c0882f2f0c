package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"aechlegal/internal/domain"
)

const skillFileName = "SKILL.md"

// LoadMetadata reads project metadata from a TOML file. Missing fields fall
// back to the built-in tool identity.
func LoadMetadata(path string) (Metadata, error) {
	meta := Metadata{
		Name:               domain.ToolName,
		Type:               "cli",
		Command:            domain.ToolCommand,
		SpecVersion:        domain.ManifestSpecVersion,
		AvailableInSandbox: true,
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("read metadata: %w", err)
	}
	var file struct {
		Project Metadata `toml:"project"`
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return Metadata{}, fmt.Errorf("decode metadata %s: %w", path, err)
	}
	p := file.Project
	if p.Name != "" {
		meta.Name = p.Name
	}
	if p.Type != "" {
		meta.Type = p.Type
	}
	if p.Command != "" {
		meta.Command = p.Command
	}
	if p.SpecVersion != 0 {
		meta.SpecVersion = p.SpecVersion
	}
	meta.Description = p.Description
	meta.AvailableInSandbox = p.AvailableInSandbox
	meta.Documentation = p.Documentation
	return meta, nil
}

type skillFrontMatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// LoadSkills collects bundled skills from <dir>/<skill>/SKILL.md front matter,
// ordered by directory name. A missing directory yields no skills.
func LoadSkills(dir string) ([]domain.Skill, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.Skill{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read skills dir: %w", err)
	}
	skills := make([]domain.Skill, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name(), skillFileName)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		fm, err := parseFrontMatter(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		name := strings.TrimSpace(fm.Name)
		if name == "" {
			name = entry.Name()
		}
		skills = append(skills, domain.Skill{Name: name, Description: strings.TrimSpace(fm.Description)})
	}
	return skills, nil
}

func parseFrontMatter(data []byte) (skillFrontMatter, error) {
	var fm skillFrontMatter
	content := bytes.TrimLeft(data, "\ufeff \t\r\n")
	if !bytes.HasPrefix(content, []byte("---")) {
		return fm, nil
	}
	rest := content[3:]
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return fm, errors.New("unterminated front matter")
	}
	if err := yaml.Unmarshal(rest[:end], &fm); err != nil {
		return fm, err
	}
	return fm, nil
}
