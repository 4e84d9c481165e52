package records

import "strings"

// SupplierType enumerates the organization kinds an audit can target.
type SupplierType string

// Supported supplier types.
const (
	SupplierTypeSupplier        SupplierType = "Supplier"
	SupplierTypeServiceProvider SupplierType = "ServiceProvider"
)

var supplierTypeAliases = map[string]SupplierType{
	"supplier":         SupplierTypeSupplier,
	"serviceprovider":  SupplierTypeServiceProvider,
	"service provider": SupplierTypeServiceProvider,
	"service-provider": SupplierTypeServiceProvider,
	"service_provider": SupplierTypeServiceProvider,
}

// ParseSupplierType resolves "Supplier" or "Service Provider" (case-insensitive, spacing variants allowed).
func ParseSupplierType(rawValue string) (SupplierType, bool) {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	supplierType, known := supplierTypeAliases[normalizedValue]
	return supplierType, known
}

// AuditRecord models one historical audit row. Blank fields are treated as absent.
// AuditorField holds a single name or a comma-separated list whose first entry is the lead.
type AuditRecord struct {
	Organization     string
	MaterialCategory string
	ServiceCategory  string
	AuditorField     string
}

// ParsedRecord is an audit row reduced to the auditor field and one category.
type ParsedRecord struct {
	AuditorField string
	Category     string
}

// ParsedRecords holds the material and service partitions of the audit history.
type ParsedRecords struct {
	Material []ParsedRecord
	Service  []ParsedRecord
}

// Parse drops rows without an auditor and splits the remainder into material and service sequences.
// A row carrying both categories contributes to both sequences; a row carrying neither is discarded.
func Parse(rawRecords []AuditRecord) ParsedRecords {
	parsedRecords := ParsedRecords{
		Material: make([]ParsedRecord, 0, len(rawRecords)),
		Service:  make([]ParsedRecord, 0, len(rawRecords)),
	}

	for _, rawRecord := range rawRecords {
		auditorField := strings.TrimSpace(rawRecord.AuditorField)
		if len(auditorField) == 0 {
			continue
		}

		materialCategory := strings.TrimSpace(rawRecord.MaterialCategory)
		if len(materialCategory) > 0 {
			parsedRecords.Material = append(parsedRecords.Material, ParsedRecord{AuditorField: auditorField, Category: materialCategory})
		}

		serviceCategory := strings.TrimSpace(rawRecord.ServiceCategory)
		if len(serviceCategory) > 0 {
			parsedRecords.Service = append(parsedRecords.Service, ParsedRecord{AuditorField: auditorField, Category: serviceCategory})
		}
	}

	return parsedRecords
}

// ForSupplierType returns the partition searched for the supplier type: material categories for suppliers,
// service categories for service providers.
func (parsedRecords ParsedRecords) ForSupplierType(supplierType SupplierType) []ParsedRecord {
	if supplierType == SupplierTypeSupplier {
		return parsedRecords.Material
	}
	return parsedRecords.Service
}
