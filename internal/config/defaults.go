package config

const (
	defaultReviewDB            = "~/.local/share/omrdata/review.db"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	defaultAnnotationExtension = ".xml"
	defaultAnnotationIndent    = 4
	defaultExportFormat        = "json"
	maxAnnotationIndent        = 8
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ReviewDB: defaultReviewDB,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Vocabulary: Vocabulary{
			Suggest: true,
		},
		Annotations: Annotations{
			Extension: defaultAnnotationExtension,
			Indent:    defaultAnnotationIndent,
		},
		Export: Export{
			Format: defaultExportFormat,
		},
	}
}
