package config

import (
	"strconv"
	"strings"

	"pdf-to-text/internal/domain"

	"github.com/spf13/viper"
)

const defaultMaxFileSize int64 = 50 * 1024 * 1024

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string
	UploadPath     string
	ConvertedPath  string
	JSONOutputPath string
	MaxFileSize    int64
	LogLevel       string
	PDFEngine      string
	AllowedOrigins []string
}

// NewConfig creates a new configuration instance from the environment,
// falling back to defaults for anything unset or unparsable.
func NewConfig() domain.Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "5003")
	v.SetDefault("UPLOAD_PATH", "Uploads")
	v.SetDefault("CONVERTED_PATH", "Converted_To_Txt")
	v.SetDefault("JSON_OUTPUT_DIR", ".")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PDF_ENGINE", "fitz")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	return &AppConfig{
		// PORT wins over SERVER_PORT when both are set.
		ServerPort:     firstNonEmpty(v.GetString("PORT"), v.GetString("SERVER_PORT")),
		UploadPath:     v.GetString("UPLOAD_PATH"),
		ConvertedPath:  v.GetString("CONVERTED_PATH"),
		JSONOutputPath: v.GetString("JSON_OUTPUT_DIR"),
		MaxFileSize:    getInt64OrDefault(v, "MAX_FILE_SIZE", defaultMaxFileSize),
		LogLevel:       v.GetString("LOG_LEVEL"),
		PDFEngine:      strings.ToLower(v.GetString("PDF_ENGINE")),
		AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetUploadPath returns the upload directory path
func (c *AppConfig) GetUploadPath() string {
	return c.UploadPath
}

// GetConvertedPath returns the directory for extracted .txt files
func (c *AppConfig) GetConvertedPath() string {
	return c.ConvertedPath
}

// GetJSONOutputPath returns the directory for extracted .json files
func (c *AppConfig) GetJSONOutputPath() string {
	return c.JSONOutputPath
}

// GetMaxFileSize returns the maximum allowed file size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetPDFEngine returns the name of the text extraction engine
func (c *AppConfig) GetPDFEngine() string {
	return c.PDFEngine
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func getInt64OrDefault(v *viper.Viper, key string, defaultValue int64) int64 {
	if value := v.GetString(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
