package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldOperation  = "operation"
	FieldCollection = "collection"
	FieldPath       = "path"
	FieldCount      = "count"
	FieldDropped    = "dropped"
	FieldLine       = "line"
	FieldBackend    = "backend"
	FieldDuration   = "duration_ms"
	FieldSuccess    = "success"
	FieldError      = "error"
	FieldErrorType  = "error_type"
	FieldMonth      = "month"
	FieldCommand    = "command"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentCLI      = "cli"
	ComponentStorage  = "storage"
	ComponentSQLite   = "sqlite"
	ComponentAMQP     = "amqp"
	ComponentReport   = "report"
	ComponentBackend  = "backend"
	ComponentWorker   = "worker"
	ComponentServices = "services"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpSave     = "save"
	OpMigrate  = "migrate"
	OpPublish  = "publish"
	OpReport   = "report"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// ErrorTypes classify failures for log filtering
const (
	ErrorTypeValidation = "validation_error"
	ErrorTypeNotFound   = "not_found_error"
	ErrorTypeStorage    = "storage_error"
	ErrorTypeInternal   = "internal_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithCollection adds the collection name and its record count
func (f LogFields) WithCollection(name string, count int) LogFields {
	f[FieldCollection] = name
	f[FieldCount] = count
	return f
}

// WithPath adds the file or database path
func (f LogFields) WithPath(path string) LogFields {
	f[FieldPath] = path
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
