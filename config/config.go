package config

import (
	"encoding/json"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/bearcourt/bear-court-api/models"
)

// Config holds the project config values
type Config struct {
	URL           string
	DatabaseName  string
	BaseURL       string
	Port          string
	Env           string
	TokenSecret   string
	OracleAPIKey  string
	OracleBaseURL string
	OracleModel   string
}

// New sets up all config related services
func New() *Config {
	env := os.Getenv("APP_ENV")

	//setup zap logger and replace default logger
	logger, err := setLogger(env)
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:           os.Getenv("DB_URI"),
		DatabaseName:  os.Getenv("DB_NAME"),
		BaseURL:       os.Getenv("BASE_URL"),
		Port:          os.Getenv("PORT"),
		Env:           env,
		TokenSecret:   os.Getenv("TOKEN_SECRET"),
		OracleAPIKey:  os.Getenv("ORACLE_API_KEY"),
		OracleBaseURL: os.Getenv("ORACLE_BASE_URL"),
		OracleModel:   os.Getenv("ORACLE_MODEL"),
	}
}

// setLogger returns a logger appropriate for the given environment
func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	ErrorKindStatus(message, "", httpStatusCode, w, err)
}

// ErrorKindStatus behaves like ErrorStatus but carries a machine-readable error
// kind so clients can branch without parsing the message
func ErrorKindStatus(message string, kind string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	b, _ := json.Marshal(models.ErrorMessageResponse{Response: models.MessageError{
		Message: message,
		Error:   errMsg,
		Kind:    kind,
	}})
	w.WriteHeader(httpStatusCode)
	w.Write(b)
}
