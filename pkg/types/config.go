package types

// ConverterBackend identifies how the JEP106 PDF is turned into text.
type ConverterBackend string

const (
	// BackendPdftotext runs the pdftotext binary found on the host.
	BackendPdftotext ConverterBackend = "pdftotext"
	// BackendContainer runs pdftotext inside a container image.
	BackendContainer ConverterBackend = "container"
)

// ConverterConfig holds settings for the PDF-to-text stage.
type ConverterConfig struct {
	// Backend selects the conversion path: pdftotext or container.
	Backend ConverterBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Binary is the pdftotext executable used by the host backend.
	Binary string `json:"binary" yaml:"binary" mapstructure:"binary"`

	// Image is the container image providing pdftotext (e.g. "minidocks/poppler:latest").
	Image string `json:"image" yaml:"image" mapstructure:"image"`
}

// LogConfig holds settings for operational logging.
type LogConfig struct {
	// Level is the minimum zap level: debug, info, warn, or error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// Config groups all jep106 configuration read from file, environment, and flags.
type Config struct {
	Converter ConverterConfig `json:"converter" yaml:"converter" mapstructure:"converter"`
	Log       LogConfig       `json:"log" yaml:"log" mapstructure:"log"`
}

// ExportFormat selects the output format of the export command.
type ExportFormat string

const (
	ExportYAML   ExportFormat = "yaml"
	ExportJSON   ExportFormat = "json"
	ExportSQLite ExportFormat = "sqlite"
)
