package selection

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/las/internal/datasource"
	"github.com/temirov/las/internal/decision"
	"github.com/temirov/las/internal/records"
	"github.com/temirov/las/internal/utils"
	"github.com/temirov/las/internal/utils/flags"
	pathutils "github.com/temirov/las/internal/utils/path"
)

const (
	selectCommandUseConstant                  = "select"
	selectCommandShortDescriptionConstant     = "Suggest a lead auditor and optional co-auditor"
	selectCommandLongDescriptionConstant      = "select lists the auditors free during the padded audit window, ranks them by experience with the requested category, and suggests a lead auditor and, when requested, a co-auditor."
	selectCommandExecutionErrorTemplate       = "lead auditor selection failed: %w"
	unexpectedArgumentsTemplateConstant       = "%s does not accept positional arguments"
	flagOrganizationNameConstant              = "organization"
	flagOrganizationDescriptionConstant       = "Organization being audited"
	flagSupplierTypeNameConstant              = "supplier-type"
	flagSupplierTypeDescriptionConstant       = "Organization kind; selects material or service history"
	flagStartNameConstant                     = "start"
	flagStartDescriptionConstant              = "Audit start date (YYYY-M-D)"
	flagEndNameConstant                       = "end"
	flagEndDescriptionConstant                = "Audit end date (YYYY-M-D)"
	flagPadNameConstant                       = "pad"
	flagPadDescriptionConstant                = "Days of preparation and reporting before and after the audit"
	flagCategoryNameConstant                  = "category"
	flagCategoryDescriptionConstant           = "Material or service category to match against audit history"
	flagCoAuditorNameConstant                 = "co-auditor"
	flagCoAuditorDescriptionConstant          = "Also suggest a co-auditor"
	flagCoAuditorPolicyNameConstant           = "co-auditor-policy"
	flagCoAuditorPolicyDescriptionConstant    = "Co-auditor type"
	flagHistoryNameConstant                   = "history"
	flagHistoryDescriptionConstant            = "Audit history file (.csv, .db, .sqlite)"
	flagRosterNameConstant                    = "roster"
	flagRosterDescriptionConstant             = "Roster and schedule file (.yaml, .toml, .db, .sqlite)"
	flagInteractiveNameConstant               = "interactive"
	flagInteractiveDescriptionConstant        = "Prompt for any value not supplied by flags"
	supplierTypeServiceProviderChoiceConstant = "Service Provider"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the persisted selection configuration.
type ConfigurationProvider func() CommandConfiguration

// ReporterProvider builds the presentation layer writing to the command output.
type ReporterProvider func(output io.Writer) Reporter

// CommandBuilder assembles the select command. Sources left nil are opened from the configured paths.
// Interactive questions use the reporter's StylePrompt when it provides one.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	ReporterProvider      ReporterProvider
	HistorySource         HistorySource
	RosterSource          RosterSource
	PathResolver          *pathutils.DataFilePathResolver
}

type selectOptions struct {
	input       RequestInput
	historyFile dataFileReference
	rosterFile  dataFileReference
}

// dataFileReference names a data file and the directory its relative path is anchored to.
type dataFileReference struct {
	path          string
	baseDirectory string
}

// Build constructs the select command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   selectCommandUseConstant,
		Short: selectCommandShortDescriptionConstant,
		Long:  selectCommandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().String(flagOrganizationNameConstant, "", flagOrganizationDescriptionConstant)
	command.Flags().String(flagSupplierTypeNameConstant, "", flags.FormatChoiceUsage("", []string{string(records.SupplierTypeSupplier), supplierTypeServiceProviderChoiceConstant}, flagSupplierTypeDescriptionConstant))
	command.Flags().String(flagCategoryNameConstant, "", flagCategoryDescriptionConstant)
	var coAuditorRequested bool
	flags.AddToggleFlag(command.Flags(), &coAuditorRequested, flagCoAuditorNameConstant, false, flagCoAuditorDescriptionConstant)
	command.Flags().String(flagCoAuditorPolicyNameConstant, "", flags.FormatChoiceUsage("", []string{string(decision.CoAuditorPolicyExperienced), string(decision.CoAuditorPolicyNew)}, flagCoAuditorPolicyDescriptionConstant))
	command.Flags().String(flagHistoryNameConstant, "", flagHistoryDescriptionConstant)
	command.Flags().Bool(flagInteractiveNameConstant, false, flagInteractiveDescriptionConstant)
	addWindowFlags(command)
	addRosterFlag(command)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return fmt.Errorf(unexpectedArgumentsTemplateConstant, command.Name())
	}

	configuration := builder.resolveConfiguration()
	reporter := resolveReporter(builder.ReporterProvider, command.OutOrStdout())
	options, optionsError := builder.parseOptions(command, configuration, promptDecoratorFor(reporter))
	if optionsError != nil {
		return optionsError
	}

	request, requestError := NewSelectionRequest(options.input)
	if requestError != nil {
		return requestError
	}

	historySource, historyError := builder.resolveHistorySource(options.historyFile)
	if historyError != nil {
		return historyError
	}
	rosterSource, rosterError := resolveRosterSource(builder.RosterSource, builder.PathResolver, options.rosterFile)
	if rosterError != nil {
		return rosterError
	}

	service, serviceError := NewService(resolveLogger(builder.LoggerProvider), historySource, rosterSource, reporter)
	if serviceError != nil {
		return serviceError
	}

	_, selectError := service.Select(command.Context(), request)
	if selectError != nil {
		return fmt.Errorf(selectCommandExecutionErrorTemplate, selectError)
	}
	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, configuration CommandConfiguration, decorator PromptDecorator) (selectOptions, error) {
	commandFlags := command.Flags()
	organization, _ := commandFlags.GetString(flagOrganizationNameConstant)
	supplierType, _ := commandFlags.GetString(flagSupplierTypeNameConstant)
	category, _ := commandFlags.GetString(flagCategoryNameConstant)
	coAuditorPolicy, _ := commandFlags.GetString(flagCoAuditorPolicyNameConstant)
	historyPath, _ := commandFlags.GetString(flagHistoryNameConstant)
	interactive, _ := commandFlags.GetBool(flagInteractiveNameConstant)
	coAuditorFlag := commandFlags.Lookup(flagCoAuditorNameConstant)

	window := readWindowFlags(command)
	input := RequestInput{
		Organization:       organization,
		SupplierType:       supplierType,
		AuditStart:         window.start,
		AuditEnd:           window.end,
		PadDays:            window.padDays,
		Category:           category,
		CoAuditorRequested: coAuditorFlag != nil && coAuditorFlag.Value.String() == "true",
		CoAuditorPolicy:    coAuditorPolicy,
	}
	if !commandFlags.Changed(flagCoAuditorPolicyNameConstant) {
		input.CoAuditorPolicy = configuration.CoAuditorPolicy
	}

	if interactive {
		prompter := NewIOLinePrompter(command.InOrStdin(), command.OutOrStdout(), decorator)
		completedInput, promptError := completeInteractively(prompter, input, interactiveFields{
			coAuditorDecided: coAuditorFlag != nil && coAuditorFlag.Changed,
		})
		if promptError != nil {
			return selectOptions{}, promptError
		}
		input = completedInput
	}

	if len(strings.TrimSpace(input.PadDays)) == 0 {
		input.PadDays = configuration.padDaysText()
	}

	return selectOptions{
		input:       input,
		historyFile: chooseDataFile(command.Context(), commandFlags.Changed(flagHistoryNameConstant), historyPath, configuration.HistoryPath),
		rosterFile:  chooseDataFile(command.Context(), window.rosterChanged, window.rosterPath, configuration.RosterPath),
	}, nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().sanitize()
}

func (builder *CommandBuilder) resolveHistorySource(historyFile dataFileReference) (HistorySource, error) {
	if builder.HistorySource != nil {
		return builder.HistorySource, nil
	}
	resolvedPath, resolveError := resolveDataFilePath(builder.PathResolver, historyFile)
	if resolveError != nil {
		return nil, resolveError
	}
	return datasource.OpenHistorySource(resolvedPath)
}

func resolveRosterSource(override RosterSource, resolver *pathutils.DataFilePathResolver, rosterFile dataFileReference) (RosterSource, error) {
	if override != nil {
		return override, nil
	}
	resolvedPath, resolveError := resolveDataFilePath(resolver, rosterFile)
	if resolveError != nil {
		return nil, resolveError
	}
	return datasource.OpenRosterSource(resolvedPath)
}

func resolveDataFilePath(resolver *pathutils.DataFilePathResolver, dataFile dataFileReference) (string, error) {
	if resolver == nil {
		resolver = pathutils.NewDataFilePathResolver()
	}
	resolvedPath, resolveError := resolver.Resolve(dataFile.path)
	if resolveError != nil || len(resolvedPath) == 0 || len(dataFile.baseDirectory) == 0 || filepath.IsAbs(resolvedPath) {
		return resolvedPath, resolveError
	}
	return filepath.Join(dataFile.baseDirectory, resolvedPath), nil
}

func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func resolveReporter(provider ReporterProvider, output io.Writer) Reporter {
	if provider == nil {
		return silentReporter{}
	}
	reporter := provider(output)
	if reporter == nil {
		return silentReporter{}
	}
	return reporter
}

func promptDecoratorFor(reporter Reporter) PromptDecorator {
	if promptStyler, stylesPrompts := reporter.(interface{ StylePrompt(string) string }); stylesPrompts {
		return promptStyler.StylePrompt
	}
	return nil
}

// chooseDataFile prefers the flag value, resolved against the working directory. A configured path
// is anchored to the directory of the configuration file that supplied it.
func chooseDataFile(executionContext context.Context, flagChanged bool, flagValue string, configuredValue string) dataFileReference {
	if flagChanged {
		return dataFileReference{path: flagValue}
	}
	dataFile := dataFileReference{path: configuredValue}
	configurationFilePath, configurationFileKnown := utils.NewCommandContextAccessor().ConfigurationFilePath(executionContext)
	if configurationFileKnown && len(strings.TrimSpace(configurationFilePath)) > 0 {
		dataFile.baseDirectory = filepath.Dir(configurationFilePath)
	}
	return dataFile
}
