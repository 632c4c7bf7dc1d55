// Package types provides type definitions for structured data used throughout the job-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// tagMarker separates a bullet's free text from its comma-separated tag list
// when the bullet is written as a single string ("Shipped X :: go, grpc").
const tagMarker = "::"

// Profile represents the user's full structured personal history
type Profile struct {
	Name        string       `yaml:"name" json:"name" validate:"required"`
	Contact     string       `yaml:"contact" json:"contact"`
	Summary     string       `yaml:"summary" json:"summary"`
	Skills      []string     `yaml:"skills" json:"skills"`
	Experiences []Experience `yaml:"experiences" json:"experiences" validate:"dive"`
	Education   []string     `yaml:"education" json:"education"`
	Projects    []string     `yaml:"projects" json:"projects"`
}

// Validate validates the Profile using the validator.
func (p *Profile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Experience represents a named role/company pairing with an ordered sequence of bullets.
// Bullet order within an experience is display order and must be preserved.
type Experience struct {
	Role    string   `yaml:"role" json:"role"`
	Company string   `yaml:"company" json:"company" validate:"required"`
	Start   string   `yaml:"start" json:"start"`
	End     string   `yaml:"end" json:"end"`
	Bullets []Bullet `yaml:"bullets" json:"bullets"`
}

// Bullet represents a single accomplishment line with optional relevance tags
type Bullet struct {
	Text string   `yaml:"text" json:"text"`
	Tags []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// UnmarshalYAML accepts a bullet written either as a plain string (with an
// optional "text :: tag, tag" marker) or as a mapping with explicit text and tags.
func (b *Bullet) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var raw string
		if err := value.Decode(&raw); err != nil {
			return fmt.Errorf("failed to decode bullet string: %w", err)
		}
		*b = parseBulletString(raw)
		return nil
	case yaml.MappingNode:
		// Local alias avoids recursing into this method
		type bulletFields struct {
			Text string   `yaml:"text"`
			Tags []string `yaml:"tags"`
		}
		var fields bulletFields
		if err := value.Decode(&fields); err != nil {
			return fmt.Errorf("failed to decode bullet mapping: %w", err)
		}
		b.Text = fields.Text
		b.Tags = fields.Tags
		return nil
	default:
		return fmt.Errorf("bullet must be a string or a mapping, got yaml node kind %d", value.Kind)
	}
}

// parseBulletString splits a raw bullet line on the tag marker.
// Text without a marker becomes a bullet with no tags.
func parseBulletString(raw string) Bullet {
	parts := strings.SplitN(raw, tagMarker, 2)
	if len(parts) == 1 {
		return Bullet{Text: strings.TrimSpace(raw)}
	}

	var tags []string
	for _, t := range strings.Split(parts[1], ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}

	return Bullet{
		Text: strings.TrimSpace(parts[0]),
		Tags: tags,
	}
}
