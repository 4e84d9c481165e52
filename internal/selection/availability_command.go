package selection

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	pathutils "github.com/temirov/las/internal/utils/path"
)

const (
	availabilityCommandUseConstant              = "availability"
	availabilityCommandShortDescriptionConstant = "List auditors free during a padded audit window"
	availabilityCommandLongDescriptionConstant  = "availability lists the roster auditors who have no scheduled audit overlapping the audit window widened by the preparation and reporting pad."
	availabilityCommandExecutionErrorTemplate   = "availability check failed: %w"
)

// AvailabilityCommandBuilder assembles the availability command.
type AvailabilityCommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	ReporterProvider      ReporterProvider
	RosterSource          RosterSource
	PathResolver          *pathutils.DataFilePathResolver
}

// Build constructs the availability command.
func (builder *AvailabilityCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   availabilityCommandUseConstant,
		Short: availabilityCommandShortDescriptionConstant,
		Long:  availabilityCommandLongDescriptionConstant,
		RunE:  builder.run,
	}

	addWindowFlags(command)
	addRosterFlag(command)

	return command, nil
}

func (builder *AvailabilityCommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return fmt.Errorf(unexpectedArgumentsTemplateConstant, command.Name())
	}

	configuration := DefaultCommandConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider().sanitize()
	}

	window := readWindowFlags(command)
	padDays := window.padDays
	if len(strings.TrimSpace(padDays)) == 0 {
		padDays = configuration.padDaysText()
	}

	request, requestError := NewAvailabilityRequest(window.start, window.end, padDays)
	if requestError != nil {
		return requestError
	}

	rosterSource, rosterError := resolveRosterSource(builder.RosterSource, builder.PathResolver, chooseDataFile(command.Context(), window.rosterChanged, window.rosterPath, configuration.RosterPath))
	if rosterError != nil {
		return rosterError
	}

	service, serviceError := NewService(resolveLogger(builder.LoggerProvider), nil, rosterSource, resolveReporter(builder.ReporterProvider, command.OutOrStdout()))
	if serviceError != nil {
		return serviceError
	}

	if _, availabilityError := service.CheckAvailability(command.Context(), request); availabilityError != nil {
		return fmt.Errorf(availabilityCommandExecutionErrorTemplate, availabilityError)
	}
	return nil
}

type windowFlagValues struct {
	start         string
	end           string
	padDays       string
	rosterPath    string
	rosterChanged bool
}

func addWindowFlags(command *cobra.Command) {
	command.Flags().String(flagStartNameConstant, "", flagStartDescriptionConstant)
	command.Flags().String(flagEndNameConstant, "", flagEndDescriptionConstant)
	command.Flags().String(flagPadNameConstant, "", flagPadDescriptionConstant)
}

func addRosterFlag(command *cobra.Command) {
	command.Flags().String(flagRosterNameConstant, "", flagRosterDescriptionConstant)
}

// readWindowFlags returns the raw window values; the pad stays blank unless the flag was given.
func readWindowFlags(command *cobra.Command) windowFlagValues {
	commandFlags := command.Flags()
	start, _ := commandFlags.GetString(flagStartNameConstant)
	end, _ := commandFlags.GetString(flagEndNameConstant)
	padDays, _ := commandFlags.GetString(flagPadNameConstant)
	rosterPath, _ := commandFlags.GetString(flagRosterNameConstant)
	return windowFlagValues{
		start:         start,
		end:           end,
		padDays:       padDays,
		rosterPath:    rosterPath,
		rosterChanged: commandFlags.Changed(flagRosterNameConstant),
	}
}
