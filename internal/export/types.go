package export

import (
	"fmt"
	"strings"

	"themeshift/internal/domain"
)

type ConflictStrategy string

const (
	ConflictStrategySkip      ConflictStrategy = "skip"
	ConflictStrategyOverwrite ConflictStrategy = "overwrite"
	ConflictStrategyFail      ConflictStrategy = "fail"
)

func ParseConflictStrategy(s string) (ConflictStrategy, error) {
	switch ConflictStrategy(strings.ToLower(s)) {
	case ConflictStrategySkip:
		return ConflictStrategySkip, nil
	case ConflictStrategyOverwrite:
		return ConflictStrategyOverwrite, nil
	case ConflictStrategyFail, "":
		return ConflictStrategyFail, nil
	default:
		return "", fmt.Errorf("invalid conflict strategy %q: must be skip, overwrite, or fail", s)
	}
}

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (domain.ThemeFormat, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "yaml", "yml":
		return domain.ThemeFormatYAML, nil
	case "toml":
		return domain.ThemeFormatTOML, nil
	case "json":
		return domain.ThemeFormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be yaml, toml, or json", s)
	}
}
