// Package profile holds the candidate profile model and the built-in deck
package profile

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrMissingID   = errors.New("profile has no id")
	ErrMissingName = errors.New("profile has no name")
	ErrNoImages    = errors.New("profile has no images")
)

// Profile is one candidate card, immutable once queued
type Profile struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	Bio       string   `json:"bio"`
	ImageRefs []string `json:"images"`
	Intent    string   `json:"intent"`
	Desires   []string `json:"desires,omitempty"`
}

// Validate reports the first structural problem
// ErrNoImages is recoverable: the card renders a placeholder and gestures still work
func (p Profile) Validate() error {
	switch {
	case p.ID == "":
		return ErrMissingID
	case p.Name == "":
		return fmt.Errorf("%w: id %s", ErrMissingName, p.ID)
	case len(p.ImageRefs) == 0:
		return fmt.Errorf("%w: id %s", ErrNoImages, p.ID)
	}
	return nil
}

// ImageCount returns the number of photos
func (p Profile) ImageCount() int {
	return len(p.ImageRefs)
}

// Image returns the photo reference at i, empty if out of range
func (p Profile) Image(i int) string {
	if i < 0 || i >= len(p.ImageRefs) {
		return ""
	}
	return p.ImageRefs[i]
}

// HasDesire reports whether the profile lists desire
func (p Profile) HasDesire(desire string) bool {
	return slices.Contains(p.Desires, desire)
}

// FilterByDesire returns the profiles listing desire, preserving order
func FilterByDesire(profiles []Profile, desire string) []Profile {
	out := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.HasDesire(desire) {
			out = append(out, p)
		}
	}
	return out
}

// Desires returns every distinct desire across profiles in first-seen order
func Desires(profiles []Profile) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range profiles {
		for _, d := range p.Desires {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			out = append(out, d)
		}
	}
	return out
}
