package filter

import (
	"context"
	"fmt"
	"strings"
)

const (
	// Separator joins field names in the persisted blob.
	// Field names containing it cannot be persisted.
	Separator = "###"
	// SettingPrefix namespaces every setting written by a field set
	SettingPrefix = "legend_data_filter_"
	// FieldListKey identifies the ordered field name list
	FieldListKey = "!!SLIDERS!!"
	// SettingsKey is the full key of the field name list
	SettingsKey = SettingPrefix + FieldListKey
)

func Serialize(names []string) string {
	return strings.Join(names, Separator)
}

// Deserialize splits a persisted blob; an empty blob yields no names
func Deserialize(blob string) []string {
	if blob == "" {
		return []string{}
	}
	return strings.Split(blob, Separator)
}

// LoadNames returns the persisted field order, or an empty slice if none was saved
func LoadNames(ctx context.Context, settings Settings) ([]string, error) {
	blob, err := settings.Setting(ctx, SettingsKey, "")
	if err != nil {
		return nil, fmt.Errorf("loading field names: %w", err)
	}
	return Deserialize(blob), nil
}

func SaveNames(ctx context.Context, settings Settings, names []string) error {
	err := settings.SetSetting(ctx, SettingsKey, Serialize(names))
	if err != nil {
		return fmt.Errorf("saving field names: %w", err)
	}
	return nil
}
