package data

import (
	"fmt"
	"io/fs"

	"github.com/hyperion-dev/hyperion-site/res"
	"gopkg.in/yaml.v2"
)

type Hero struct {
	Badge     string `yaml:"badge"`
	Title     string `yaml:"title"`
	Highlight string `yaml:"highlight"`
	Lead      string `yaml:"lead"`
}

type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Step struct {
	Title  string `yaml:"title"`
	Detail string `yaml:"detail"`
}

type Product struct {
	Name        string   `yaml:"name"`
	Headline    string   `yaml:"headline"`
	Description string   `yaml:"description"`
	Platforms   string   `yaml:"platforms"`
	Checklist   []string `yaml:"checklist"`
	Challenges  []string `yaml:"challenges"`
}

type Links struct {
	AppStore  string `yaml:"app_store"`
	BetaGroup string `yaml:"beta_group"`
	GitHub    string `yaml:"github"`
	LinkedIn  string `yaml:"linkedin"`
}

// Studio is the static copy of the landing page.
type Studio struct {
	Name         string    `yaml:"name"`
	ShortName    string    `yaml:"short_name"`
	ContactEmail string    `yaml:"contact_email"`
	Hero         Hero      `yaml:"hero"`
	Stacks       []string  `yaml:"stacks"`
	Features     []Feature `yaml:"features"`
	Product      Product   `yaml:"product"`
	Steps        []Step    `yaml:"steps"`
	Links        Links     `yaml:"links"`
}

func LoadStudio(fsys fs.FS, path string) (*Studio, error) {
	source, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("could not read studio content: %w", err)
	}

	studio := &Studio{}
	if err := yaml.UnmarshalStrict(source, studio); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	if studio.Name == "" {
		return nil, fmt.Errorf("studio content %s: missing name", path)
	}

	return studio, nil
}

// DefaultStudio loads the studio copy embedded in the binary.
func DefaultStudio() (*Studio, error) {
	return LoadStudio(res.Content, res.StudioFile)
}
