package logging

// Standardized field names for structured logging.
// These constants keep the ETL's log output consistent and easy to filter.
const (
	FieldFile          = "file_path"
	FieldSource        = "source"
	FieldAccount       = "account_id"
	FieldKind          = "kind"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldMerchant      = "merchant"
	FieldCount         = "count"
	FieldRow           = "row"
	FieldOutputFile    = "output_file"
)
