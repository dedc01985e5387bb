package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// LoadDeck reads a JSON array of profiles from path
func LoadDeck(path string, logger *slog.Logger) ([]Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck: %w", err)
	}
	defer f.Close()
	return DecodeDeck(f, logger)
}

// DecodeDeck parses a deck, generating ids for entries without one
// Profiles without images are kept and logged, anything else invalid is an error
func DecodeDeck(r io.Reader, logger *slog.Logger) ([]Profile, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var profiles []Profile
	if err := json.NewDecoder(r).Decode(&profiles); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	if len(profiles) == 0 {
		return nil, errors.New("deck is empty")
	}

	seen := make(map[string]struct{}, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		if p.ID == "" {
			p.ID = uuid.NewString()
			logger.Debug("generated profile id", "name", p.Name, "id", p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("duplicate profile id %q", p.ID)
		}
		seen[p.ID] = struct{}{}

		if err := p.Validate(); err != nil {
			if errors.Is(err, ErrNoImages) {
				logger.Warn("profile without images", "id", p.ID, "name", p.Name)
				continue
			}
			return nil, fmt.Errorf("deck entry %d: %w", i, err)
		}
	}
	return profiles, nil
}
