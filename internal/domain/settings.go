package domain

// SettingKey describes a configuration entry the driver control layer
// understands. The config file may contain entries beyond this list;
// unknown entries are kept as-is and simply have no description.
type SettingKey struct {
	// Section the key lives in; "" is the unnamed default section.
	Section string

	Name        string
	Default     string
	Description string
}

// SettingKeys defines the known driver-layer settings.
// Order determines display order in dk init and dk list.
var SettingKeys = []SettingKey{
	// Default section
	{
		Name:        "default_adapter",
		Default:     "",
		Description: "Adapter section used when none is named on the bus",
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Log level: debug, info, warn, error",
	},
	{
		Name:        "history",
		Default:     "true",
		Description: "Record configuration changes in the history database (true/false)",
	},
	// Daemon
	{
		Section:     "daemon",
		Name:        "poll_interval_ms",
		Default:     "250",
		Description: "Device poll interval in milliseconds",
	},
	{
		Section:     "daemon",
		Name:        "reset_on_start",
		Default:     "false",
		Description: "Reset the bus when the control daemon starts (true/false)",
	},
	{
		Section:     "daemon",
		Name:        "lock_timeout_ms",
		Default:     "5000",
		Description: "How long to wait for exclusive device access",
	},
}

// SettingSections returns the section names of the known settings in
// display order, the default section ("") first.
func SettingSections() []string {
	var order []string
	seen := make(map[string]bool)
	for _, key := range SettingKeys {
		if !seen[key.Section] {
			seen[key.Section] = true
			order = append(order, key.Section)
		}
	}
	return order
}

// SettingsInSection returns the known keys of one section in display
// order.
func SettingsInSection(section string) []SettingKey {
	var keys []SettingKey
	for _, key := range SettingKeys {
		if key.Section == section {
			keys = append(keys, key)
		}
	}
	return keys
}

// DescribeSetting returns the metadata for a known key, if any.
func DescribeSetting(section, name string) (SettingKey, bool) {
	for _, key := range SettingKeys {
		if key.Section == section && key.Name == name {
			return key, true
		}
	}
	return SettingKey{}, false
}
