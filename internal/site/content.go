// Package site holds the portfolio's content model, route table and page rendering.
package site

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Content errors.
var (
	ErrNoProfile = errors.New("site content must define a profile name")
)

// Content is the whole site's content document.
type Content struct {
	Profile    Profile      `yaml:"profile"`
	Projects   []Project    `yaml:"projects"`
	Experience []Experience `yaml:"experience"`
	Social     []SocialLink `yaml:"social"`
}

// Profile is the person the portfolio presents.
type Profile struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Tagline  string `yaml:"tagline"`
	Bio      string `yaml:"bio"`
	Email    string `yaml:"email"`
	Location string `yaml:"location"`
}

// Project is one portfolio entry.
type Project struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	URL         string   `yaml:"url,omitempty"`
	Repo        string   `yaml:"repo,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Year        int      `yaml:"year,omitempty"`
}

// Experience is one work history entry.
type Experience struct {
	Company    string   `yaml:"company"`
	Role       string   `yaml:"role"`
	Start      string   `yaml:"start"`
	End        string   `yaml:"end,omitempty"`
	Summary    string   `yaml:"summary,omitempty"`
	Highlights []string `yaml:"highlights,omitempty"`
}

// SocialLink is one external profile link.
type SocialLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// LoadContent reads and validates the site content document.
func LoadContent(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}

	var content Content
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("parse content %s: %w", path, err)
	}
	if content.Profile.Name == "" {
		return nil, fmt.Errorf("content %s: %w", path, ErrNoProfile)
	}
	return &content, nil
}
