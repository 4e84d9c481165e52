package datasource

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/temirov/las/internal/dates"
	"github.com/temirov/las/internal/records"
	"github.com/temirov/las/internal/roster"
)

const (
	sqliteDriverNameConstant           = "sqlite"
	sqliteURISchemeConstant            = "file"
	sqliteReadOnlyQueryConstant        = "mode=ro&_pragma=busy_timeout(5000)"
	sqliteOpenErrorTemplateConstant    = "opening database %s: %w"
	sqliteQueryErrorTemplateConstant   = "querying %s: %w"
	sqliteScanErrorTemplateConstant    = "scanning %s row: %w"
	sqliteScheduleDateTemplateConstant = "schedule row %d %s: %w"
	auditRecordsTableConstant          = "audit_records"
	auditorsTableConstant              = "auditors"
	scheduleTableConstant              = "schedule"
	selectAuditRecordsQueryConstant    = `SELECT organization, material_category, service_category, auditor_name FROM audit_records ORDER BY rowid`
	selectAuditorsQueryConstant        = `SELECT name FROM auditors ORDER BY rowid`
	selectScheduleQueryConstant        = `SELECT auditor1, auditor2, start_date, end_date FROM schedule ORDER BY rowid`
)

// SchemaStatements creates the tables read by SQLiteSource. Columns mirror the spreadsheet exports.
var SchemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS audit_records (
		organization TEXT,
		material_category TEXT,
		service_category TEXT,
		auditor_name TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS auditors (
		name TEXT NOT NULL PRIMARY KEY
	)`,
	`CREATE TABLE IF NOT EXISTS schedule (
		auditor1 TEXT NOT NULL,
		auditor2 TEXT,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL
	)`,
}

// SQLiteSource reads history, roster, and schedule tables from one SQLite database.
// The database is opened read-only for each load so every run sees its own snapshot.
type SQLiteSource struct {
	databasePath string
}

// NewSQLiteSource constructs a source for the provided database file.
func NewSQLiteSource(databasePath string) *SQLiteSource {
	return &SQLiteSource{databasePath: databasePath}
}

// LoadAuditRecords reads the audit_records table. NULL cells become absent fields.
func (source *SQLiteSource) LoadAuditRecords(executionContext context.Context) ([]records.AuditRecord, error) {
	database, openError := source.open()
	if openError != nil {
		return nil, openError
	}
	defer database.Close()

	rows, queryError := database.QueryContext(executionContext, selectAuditRecordsQueryConstant)
	if queryError != nil {
		return nil, fmt.Errorf(sqliteQueryErrorTemplateConstant, auditRecordsTableConstant, queryError)
	}
	defer rows.Close()

	auditRecords := make([]records.AuditRecord, 0)
	for rows.Next() {
		var organization, materialCategory, serviceCategory, auditorName sql.NullString
		if scanError := rows.Scan(&organization, &materialCategory, &serviceCategory, &auditorName); scanError != nil {
			return nil, fmt.Errorf(sqliteScanErrorTemplateConstant, auditRecordsTableConstant, scanError)
		}
		auditRecords = append(auditRecords, records.AuditRecord{
			Organization:     organization.String,
			MaterialCategory: materialCategory.String,
			ServiceCategory:  serviceCategory.String,
			AuditorField:     auditorName.String,
		})
	}
	if iterationError := rows.Err(); iterationError != nil {
		return nil, fmt.Errorf(sqliteQueryErrorTemplateConstant, auditRecordsTableConstant, iterationError)
	}

	return auditRecords, nil
}

// LoadRoster reads the auditors and schedule tables.
func (source *SQLiteSource) LoadRoster(executionContext context.Context) (roster.Snapshot, error) {
	database, openError := source.open()
	if openError != nil {
		return roster.Snapshot{}, openError
	}
	defer database.Close()

	auditorNames, auditorsError := queryAuditors(executionContext, database)
	if auditorsError != nil {
		return roster.Snapshot{}, auditorsError
	}

	schedule, scheduleError := querySchedule(executionContext, database)
	if scheduleError != nil {
		return roster.Snapshot{}, scheduleError
	}

	return buildSnapshot(auditorNames, schedule)
}

func (source *SQLiteSource) open() (*sql.DB, error) {
	database, openError := sql.Open(sqliteDriverNameConstant, readOnlyDataSourceName(source.databasePath))
	if openError != nil {
		return nil, fmt.Errorf(sqliteOpenErrorTemplateConstant, source.databasePath, openError)
	}
	return database, nil
}

// readOnlyDataSourceName escapes the path into a file URI so characters such as '?' and '#' stay part of it.
func readOnlyDataSourceName(databasePath string) string {
	databaseURI := url.URL{
		Scheme:   sqliteURISchemeConstant,
		Path:     filepath.ToSlash(databasePath),
		OmitHost: true,
		RawQuery: sqliteReadOnlyQueryConstant,
	}
	return databaseURI.String()
}

func queryAuditors(executionContext context.Context, database *sql.DB) ([]string, error) {
	rows, queryError := database.QueryContext(executionContext, selectAuditorsQueryConstant)
	if queryError != nil {
		return nil, fmt.Errorf(sqliteQueryErrorTemplateConstant, auditorsTableConstant, queryError)
	}
	defer rows.Close()

	auditorNames := make([]string, 0)
	for rows.Next() {
		var auditorName string
		if scanError := rows.Scan(&auditorName); scanError != nil {
			return nil, fmt.Errorf(sqliteScanErrorTemplateConstant, auditorsTableConstant, scanError)
		}
		auditorNames = append(auditorNames, auditorName)
	}
	if iterationError := rows.Err(); iterationError != nil {
		return nil, fmt.Errorf(sqliteQueryErrorTemplateConstant, auditorsTableConstant, iterationError)
	}
	return auditorNames, nil
}

func querySchedule(executionContext context.Context, database *sql.DB) ([]roster.ScheduleEntry, error) {
	rows, queryError := database.QueryContext(executionContext, selectScheduleQueryConstant)
	if queryError != nil {
		return nil, fmt.Errorf(sqliteQueryErrorTemplateConstant, scheduleTableConstant, queryError)
	}
	defer rows.Close()

	schedule := make([]roster.ScheduleEntry, 0)
	for rowIndex := 0; rows.Next(); rowIndex++ {
		var firstAuditor string
		var secondAuditor sql.NullString
		var rawStartDate, rawEndDate string
		if scanError := rows.Scan(&firstAuditor, &secondAuditor, &rawStartDate, &rawEndDate); scanError != nil {
			return nil, fmt.Errorf(sqliteScanErrorTemplateConstant, scheduleTableConstant, scanError)
		}

		startDate, startError := dates.Parse(rawStartDate)
		if startError != nil {
			return nil, fmt.Errorf(sqliteScheduleDateTemplateConstant, rowIndex, scheduleStartDateFieldNameConstant, startError)
		}
		endDate, endError := dates.Parse(rawEndDate)
		if endError != nil {
			return nil, fmt.Errorf(sqliteScheduleDateTemplateConstant, rowIndex, scheduleEndDateFieldNameConstant, endError)
		}

		schedule = append(schedule, roster.ScheduleEntry{
			Auditor1: firstAuditor,
			Auditor2: secondAuditor.String,
			Start:    startDate,
			End:      endDate,
		})
	}
	if iterationError := rows.Err(); iterationError != nil {
		return nil, fmt.Errorf(sqliteQueryErrorTemplateConstant, scheduleTableConstant, iterationError)
	}
	return schedule, nil
}
