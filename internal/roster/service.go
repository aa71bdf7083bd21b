// Package roster coordinates the character store, portrait files and the
// domain model: everything the CLI and TUI call into.
package roster

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ryoumen0412/RollForge/internal/dnd"
	"github.com/ryoumen0412/RollForge/internal/storage"
)

type Service struct {
	store     storage.Store
	portraits *storage.PortraitDir
	log       zerolog.Logger
}

func NewService(store storage.Store, portraits *storage.PortraitDir, log zerolog.Logger) *Service {
	return &Service{store: store, portraits: portraits, log: log}
}

// Store exposes the underlying store, mainly for the TUI refresh loop.
func (s *Service) Store() storage.Store { return s.store }

// CreateInput is the raw user input for a new character. Class and
// proficiencies arrive as strings and are normalized here.
type CreateInput struct {
	Name          string
	Class         string
	Stats         map[dnd.Stat]int
	Proficiencies []string
	PortraitPath  string
}

// Create validates the input, builds the character and persists it. When
// a portrait path is given the image is copied into the data directory
// and the stored path points at the copy.
func (s *Service) Create(ctx context.Context, in CreateInput) (*dnd.Character, error) {
	class := in.Class
	if class == "" {
		class = string(dnd.DefaultClass)
	}

	profs := make([]dnd.Skill, 0, len(in.Proficiencies))
	for _, raw := range in.Proficiencies {
		skill, err := dnd.ParseSkill(raw)
		if err != nil {
			return nil, err
		}
		profs = append(profs, skill)
	}

	if err := dnd.ValidateCharacterData(in.Name, in.Stats, class, profs); err != nil {
		return nil, err
	}

	parsedClass, err := dnd.ParseClass(class)
	if err != nil {
		return nil, err
	}

	c, err := dnd.NewCharacter(dnd.CharacterInput{
		Name:          in.Name,
		Class:         parsedClass,
		Stats:         in.Stats,
		Proficiencies: profs,
	})
	if err != nil {
		return nil, err
	}

	if in.PortraitPath != "" {
		stored, err := s.portraits.Import(in.PortraitPath, c.ID())
		if err != nil {
			return nil, err
		}
		c.SetPortraitPath(stored)
	}

	if err := s.store.Put(ctx, c); err != nil {
		return nil, err
	}
	s.log.Debug().Str("id", c.ID()).Str("name", c.Name()).Msg("character created")
	return c, nil
}

func (s *Service) Get(ctx context.Context, id string) (*dnd.Character, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*dnd.Character, error) {
	return s.store.List(ctx)
}

// Find resolves ref as a character id, an exact name, or an unambiguous
// prefix of either, in that order. Name matching is case-insensitive.
func (s *Service) Find(ctx context.Context, ref string) (*dnd.Character, error) {
	if c, err := s.store.Get(ctx, ref); err == nil {
		return c, nil
	}

	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(ref))
	var matches []*dnd.Character
	for _, c := range all {
		name := strings.ToLower(c.Name())
		if name == needle {
			return c, nil
		}
		if strings.HasPrefix(name, needle) || strings.HasPrefix(c.ID(), ref) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, ref)
	default:
		return nil, fmt.Errorf("name %q is ambiguous (%d matches)", ref, len(matches))
	}
}

// mutate loads a character, applies fn and saves the result. A failed fn
// leaves the stored record untouched.
func (s *Service) mutate(ctx context.Context, id string, fn func(*dnd.Character) error) (*dnd.Character, error) {
	c, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) SetStat(ctx context.Context, id string, stat dnd.Stat, score int) (*dnd.Character, error) {
	return s.mutate(ctx, id, func(c *dnd.Character) error {
		return c.SetStat(stat, score)
	})
}

func (s *Service) SetClass(ctx context.Context, id string, class dnd.Class) (*dnd.Character, error) {
	return s.mutate(ctx, id, func(c *dnd.Character) error {
		return c.SetClass(class)
	})
}

func (s *Service) Rename(ctx context.Context, id, name string) (*dnd.Character, error) {
	return s.mutate(ctx, id, func(c *dnd.Character) error {
		return c.SetName(name)
	})
}

func (s *Service) SetProficiencies(ctx context.Context, id string, skills []dnd.Skill) (*dnd.Character, error) {
	return s.mutate(ctx, id, func(c *dnd.Character) error {
		return c.SetProficiencies(skills)
	})
}

func (s *Service) AddProficiency(ctx context.Context, id string, skill dnd.Skill) (*dnd.Character, error) {
	return s.mutate(ctx, id, func(c *dnd.Character) error {
		return c.AddProficiency(skill)
	})
}

func (s *Service) RemoveProficiency(ctx context.Context, id string, skill dnd.Skill) (*dnd.Character, error) {
	return s.mutate(ctx, id, func(c *dnd.Character) error {
		return c.RemoveProficiency(skill)
	})
}

// AttachPortrait copies the image at srcPath into the portrait directory
// and records the copy on the character.
func (s *Service) AttachPortrait(ctx context.Context, id, srcPath string) (*dnd.Character, error) {
	return s.mutate(ctx, id, func(c *dnd.Character) error {
		stored, err := s.portraits.Import(srcPath, c.ID())
		if err != nil {
			return err
		}
		c.SetPortraitPath(stored)
		return nil
	})
}

// Roll computes the check breakdown for a stored character.
func (s *Service) Roll(ctx context.Context, id string, dieResult int, check string, useExpertise bool) (dnd.RollBreakdown, *dnd.Character, error) {
	c, err := s.store.Get(ctx, id)
	if err != nil {
		return dnd.RollBreakdown{}, nil, err
	}
	breakdown, err := c.CalculateRoll(dieResult, check, useExpertise)
	if err != nil {
		return dnd.RollBreakdown{}, nil, err
	}
	return breakdown, c, nil
}

// Delete removes the character and its portrait file.
func (s *Service) Delete(ctx context.Context, id string) error {
	c, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.portraits.Remove(c.PortraitPath()); err != nil {
		s.log.Warn().Str("id", id).Err(err).Msg("portrait cleanup failed")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Debug().Str("id", id).Msg("character deleted")
	return nil
}
