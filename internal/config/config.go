// Package config loads reaction definitions from TOML files.
package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/HyDE-Project/hyde-ipc/internal/dispatch"
	"github.com/HyDE-Project/hyde-ipc/internal/events"
	"github.com/HyDE-Project/hyde-ipc/internal/react"
)

// File is the top-level configuration document.
type File struct {
	Reactions []ReactionConfig `toml:"reactions"`
}

// DispatcherConfig is one step of a reaction's command chain.
type DispatcherConfig struct {
	Name string   `toml:"name"`
	Args []string `toml:"args"`
}

// ReactionConfig is one [[reactions]] table. The event field takes the dotted
// form ("window.opened", "monitor"). A single dispatcher may be given inline
// via dispatcher/args; it runs before anything listed under dispatchers.
type ReactionConfig struct {
	Event       events.Type        `toml:"event"`
	Dispatcher  string             `toml:"dispatcher"`
	Args        []string           `toml:"args"`
	Dispatchers []DispatcherConfig `toml:"dispatchers"`
	Filter      string             `toml:"filter"`
	MaxCount    uint64             `toml:"max_count"`
	Name        string             `toml:"name"`
	Description string             `toml:"description"`
}

// DefaultPath returns the config location used when none is given,
// creating parent directories as needed.
func DefaultPath() (string, error) {
	return xdg.DataFile("hyde-ipc/config.toml")
}

// Load reads and parses a reactions file. Dispatcher chains are validated
// here so a bad config fails at startup, not mid-session.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a serialized reactions document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	for i := range f.Reactions {
		if err := f.Reactions[i].validate(); err != nil {
			return nil, fmt.Errorf("reaction %d (%s): %w", i+1, f.Reactions[i].label(), err)
		}
	}
	return &f, nil
}

func (r *ReactionConfig) label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Event.String()
}

func (r *ReactionConfig) validate() error {
	if r.Filter != "" {
		if _, err := dispatch.ParseWindowMatcher(r.Filter); err != nil {
			return fmt.Errorf("filter: %w", err)
		}
	}
	for _, d := range r.chain() {
		if _, err := dispatch.Build(d.Name, d.Args); err != nil {
			return fmt.Errorf("dispatcher %s: %w", d.Name, err)
		}
	}
	return nil
}

// chain merges the legacy inline dispatcher with the dispatchers list,
// inline first.
func (r *ReactionConfig) chain() []DispatcherConfig {
	if r.Dispatcher == "" {
		return r.Dispatchers
	}
	chain := make([]DispatcherConfig, 0, len(r.Dispatchers)+1)
	chain = append(chain, DispatcherConfig{Name: r.Dispatcher, Args: r.Args})
	return append(chain, r.Dispatchers...)
}

// BuildReactions converts the document into router-ready reactions,
// preserving file order.
func (f *File) BuildReactions() ([]*react.Reaction, error) {
	reactions := make([]*react.Reaction, 0, len(f.Reactions))
	for i := range f.Reactions {
		rc := &f.Reactions[i]
		reaction := &react.Reaction{
			Name:        rc.Name,
			Description: rc.Description,
			Event:       rc.Event,
			MaxCount:    rc.MaxCount,
		}
		if rc.Filter != "" {
			m, err := dispatch.ParseWindowMatcher(rc.Filter)
			if err != nil {
				return nil, fmt.Errorf("reaction %s: filter: %w", rc.label(), err)
			}
			reaction.Filter = &m
		}
		for _, d := range rc.chain() {
			cmd, err := dispatch.Build(d.Name, d.Args)
			if err != nil {
				return nil, fmt.Errorf("reaction %s: dispatcher %s: %w", rc.label(), d.Name, err)
			}
			reaction.Commands = append(reaction.Commands, cmd)
		}
		reactions = append(reactions, reaction)
	}
	return reactions, nil
}
