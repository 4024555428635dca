package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in `luvr config list`
	Hidden      bool   // Hidden keys are not shown in help or config list
}

// Storage keys used by the front end and kept for backup compatibility.
const (
	DefaultThemeStorageKey = "motel-ui-theme"
	SettingsStorageKey     = "luvrSystemSettings"
	AppDataStorageKey      = "luvrSystemData"
)

// ConfigKeys defines all available configuration keys.
// Order determines display order in `luvr config list`.
var ConfigKeys = []ConfigKey{
	// Appearance
	{
		Name:        "theme_default",
		Default:     string(ModeSystem),
		Description: "Mode used when nothing is stored: light, dark, system",
		Section:     "Appearance",
	},
	{
		Name:        "theme_storage_key",
		Default:     DefaultThemeStorageKey,
		Description: "Storage key holding the selected theme mode",
		Section:     "Appearance",
	},
	{
		Name:        "preference_poll_interval",
		Default:     "2s",
		Description: "How often the system color scheme is checked while watching",
		Section:     "Appearance",
	},
	{
		Name:        "language",
		Default:     "pt-BR",
		Description: "Language for status messages: pt-BR, en",
		Section:     "Appearance",
	},
	// Storage
	{
		Name:        "storage_backend",
		Default:     "sqlite",
		Description: "Preference storage: sqlite, file, memory",
		Section:     "Storage",
	},
	{
		Name:        "storage_path",
		Default:     "", // Set dynamically from the backend
		Description: "Path to the preference store",
		Section:     "Storage",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
}

// configKeyMap is a lookup map for configuration keys.
var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// VisibleConfigKeys returns all non-hidden configuration keys.
func VisibleConfigKeys() []ConfigKey {
	var visible []ConfigKey
	for _, key := range ConfigKeys {
		if !key.Hidden {
			visible = append(visible, key)
		}
	}
	return visible
}

// ConfigSections returns the ordered list of section names.
func ConfigSections() []string {
	return []string{"Appearance", "Storage", "Logging"}
}

// ConfigKeysBySection returns visible config keys grouped by section.
func ConfigKeysBySection() map[string][]ConfigKey {
	result := make(map[string][]ConfigKey)
	for _, key := range ConfigKeys {
		if !key.Hidden {
			result[key.Section] = append(result[key.Section], key)
		}
	}
	return result
}
