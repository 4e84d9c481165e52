package selection

import (
	"strconv"
	"strings"
)

const (
	configurationHistoryKeyConstant         = "history"
	configurationRosterKeyConstant          = "roster"
	configurationPadDaysKeyConstant         = "pad_days"
	configurationCoAuditorPolicyKeyConstant = "co_auditor_policy"
	configurationKeySeparatorConstant       = "."
)

// CommandConfiguration captures persisted defaults for the selection commands. Flags override every field.
type CommandConfiguration struct {
	HistoryPath     string `mapstructure:"history"`
	RosterPath      string `mapstructure:"roster"`
	PadDays         int    `mapstructure:"pad_days"`
	CoAuditorPolicy string `mapstructure:"co_auditor_policy"`
}

// DefaultCommandConfiguration provides baseline configuration values for the selection commands.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		HistoryPath:     "",
		RosterPath:      "",
		PadDays:         DefaultPadDaysConstant,
		CoAuditorPolicy: "",
	}
}

// DefaultConfigurationValues exposes the defaults keyed beneath rootKey for the configuration loader.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + configurationHistoryKeyConstant:         defaults.HistoryPath,
		rootKey + configurationKeySeparatorConstant + configurationRosterKeyConstant:          defaults.RosterPath,
		rootKey + configurationKeySeparatorConstant + configurationPadDaysKeyConstant:         defaults.PadDays,
		rootKey + configurationKeySeparatorConstant + configurationCoAuditorPolicyKeyConstant: defaults.CoAuditorPolicy,
	}
}

func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.HistoryPath = strings.TrimSpace(configuration.HistoryPath)
	sanitized.RosterPath = strings.TrimSpace(configuration.RosterPath)
	sanitized.CoAuditorPolicy = strings.TrimSpace(configuration.CoAuditorPolicy)
	return sanitized
}

// padDaysText renders the configured pad for validation alongside flag and prompt input.
func (configuration CommandConfiguration) padDaysText() string {
	return strconv.Itoa(configuration.PadDays)
}
