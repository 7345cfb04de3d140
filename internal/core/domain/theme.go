package domain

import (
	"errors"
	"fmt"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

var (
	ErrInvalidTheme = errors.New("invalid theme")
	ErrThemeLocked  = errors.New("theme is not switchable")
)

func ParseTheme(s string) (Theme, error) {
	switch t := Theme(s); t {
	case ThemeLight, ThemeDark:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}
