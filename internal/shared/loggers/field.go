package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldHttpRoute  = "http_route"
	FieldHttpBytes  = "http_bytes"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldPartitionId = "partition_id"

	FieldDatasetID      = "dataset_id"
	FieldBatchID        = "batch_id"
	FieldBatchCount     = "batch_count"
	FieldValidRecords   = "valid_records"
	FieldInvalidRecords = "invalid_records"
	FieldShardCount     = "shard_count"
)
