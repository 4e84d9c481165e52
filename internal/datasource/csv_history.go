package datasource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/temirov/las/internal/records"
)

const (
	organizationColumnConstant           = "organization"
	materialCategoryColumnConstant       = "material category"
	serviceCategoryColumnConstant        = "service category"
	auditorNameColumnConstant            = "auditor name"
	auditorNameHeaderConstant            = "Auditor Name"
	byteOrderMarkConstant                = "\ufeff"
	historyOpenErrorTemplateConstant     = "unable to open audit history %s: %w"
	historyReadErrorTemplateConstant     = "unable to read audit history %s: %w"
	historyMissingColumnTemplateConstant = "audit history is missing the %q column"
	historyEmptyMessageConstant          = "audit history has no header row"
)

// CSVHistorySource reads historical audit records from a CSV export whose header names the
// Organization, Material Category, Service Category, and Auditor Name columns.
type CSVHistorySource struct {
	filePath string
}

// NewCSVHistorySource constructs a source for the provided file.
func NewCSVHistorySource(filePath string) *CSVHistorySource {
	return &CSVHistorySource{filePath: filePath}
}

// LoadAuditRecords reads every data row. Missing category columns yield absent categories.
func (source *CSVHistorySource) LoadAuditRecords(executionContext context.Context) ([]records.AuditRecord, error) {
	if contextError := executionContext.Err(); contextError != nil {
		return nil, contextError
	}

	historyFile, openError := os.Open(source.filePath)
	if openError != nil {
		return nil, fmt.Errorf(historyOpenErrorTemplateConstant, source.filePath, openError)
	}
	defer historyFile.Close()

	auditRecords, readError := ReadAuditRecordsCSV(historyFile)
	if readError != nil {
		return nil, fmt.Errorf(historyReadErrorTemplateConstant, source.filePath, readError)
	}
	return auditRecords, nil
}

// ReadAuditRecordsCSV decodes audit records from CSV content. Header names are matched case-insensitively.
func ReadAuditRecordsCSV(reader io.Reader) ([]records.AuditRecord, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	headerRow, headerError := csvReader.Read()
	if headerError != nil {
		if errors.Is(headerError, io.EOF) {
			return nil, errors.New(historyEmptyMessageConstant)
		}
		return nil, headerError
	}

	columnPositions := mapColumnPositions(headerRow)
	auditorPosition, auditorColumnPresent := columnPositions[auditorNameColumnConstant]
	if !auditorColumnPresent {
		return nil, fmt.Errorf(historyMissingColumnTemplateConstant, auditorNameHeaderConstant)
	}

	auditRecords := make([]records.AuditRecord, 0)
	for {
		dataRow, rowError := csvReader.Read()
		if errors.Is(rowError, io.EOF) {
			break
		}
		if rowError != nil {
			return nil, rowError
		}

		auditRecords = append(auditRecords, records.AuditRecord{
			Organization:     cellValue(dataRow, columnPositions, organizationColumnConstant),
			MaterialCategory: cellValue(dataRow, columnPositions, materialCategoryColumnConstant),
			ServiceCategory:  cellValue(dataRow, columnPositions, serviceCategoryColumnConstant),
			AuditorField:     cellAt(dataRow, auditorPosition),
		})
	}

	return auditRecords, nil
}

func mapColumnPositions(headerRow []string) map[string]int {
	columnPositions := make(map[string]int, len(headerRow))
	for columnPosition, columnName := range headerRow {
		normalizedName := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(columnName, byteOrderMarkConstant)))
		if _, exists := columnPositions[normalizedName]; exists {
			continue
		}
		columnPositions[normalizedName] = columnPosition
	}
	return columnPositions
}

func cellValue(dataRow []string, columnPositions map[string]int, columnName string) string {
	columnPosition, exists := columnPositions[columnName]
	if !exists {
		return ""
	}
	return cellAt(dataRow, columnPosition)
}

func cellAt(dataRow []string, columnPosition int) string {
	if columnPosition < 0 || columnPosition >= len(dataRow) {
		return ""
	}
	return strings.TrimSpace(dataRow[columnPosition])
}
