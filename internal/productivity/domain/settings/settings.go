package settings

import (
	"errors"
	"strconv"
	"strings"
)

const (
	DefaultTheme  = "light"
	DefaultSortBy = "created"
)

var ErrUnknownKey = errors.New("unknown settings key")

// Settings holds user preferences. Unset fields are omitted from the stored
// record, so the zero value is the empty object.
type Settings struct {
	Theme         string `json:"theme,omitempty"`
	SortBy        string `json:"sortBy,omitempty"`
	ShowCompleted *bool  `json:"showCompleted,omitempty"`
}

// Defaults returns the documented default settings.
func Defaults() Settings {
	show := true
	return Settings{
		Theme:         DefaultTheme,
		SortBy:        DefaultSortBy,
		ShowCompleted: &show,
	}
}

// IsEmpty reports whether no field is set.
func (s Settings) IsEmpty() bool {
	return s.Theme == "" && s.SortBy == "" && s.ShowCompleted == nil
}

// Merge returns s with every field that is set in other copied over.
func (s Settings) Merge(other Settings) Settings {
	out := s
	if other.Theme != "" {
		out.Theme = other.Theme
	}
	if other.SortBy != "" {
		out.SortBy = other.SortBy
	}
	if other.ShowCompleted != nil {
		v := *other.ShowCompleted
		out.ShowCompleted = &v
	}
	return out
}

// WithDefaults fills unset fields from Defaults.
func (s Settings) WithDefaults() Settings {
	return Defaults().Merge(s)
}

// ShowsCompleted reports the effective showCompleted preference.
func (s Settings) ShowsCompleted() bool {
	if s.ShowCompleted == nil {
		return true
	}
	return *s.ShowCompleted
}

// Set assigns one field by its user-facing key.
func (s Settings) Set(key, value string) (Settings, error) {
	value = strings.TrimSpace(value)
	switch strings.ToLower(key) {
	case "theme":
		s.Theme = value
	case "sortby", "sort-by", "sort_by":
		s.SortBy = value
	case "showcompleted", "show-completed", "show_completed":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return s, err
		}
		s.ShowCompleted = &b
	default:
		return s, ErrUnknownKey
	}
	return s, nil
}
