package logger

import (
	"crypto/sha256"
	"fmt"
	"regexp"
	"strings"
)

var secretPattern = regexp.MustCompile(`(?i)(key|token|secret)[=:]\s*[a-zA-Z0-9-]+`)

// SecurityLogger keeps submission keys out of log output.
type SecurityLogger struct {
	*Logger
}

// MaskKey renders a secret as a short stable fingerprint: key#1a2b3c4d.
func (sl *SecurityLogger) MaskKey(key string) string {
	if key == "" {
		return ""
	}
	return "key#" + sl.GenerateHash(key)[:8]
}

// MaskSensitiveData returns a copy of data with key-like fields fingerprinted.
func (sl *SecurityLogger) MaskSensitiveData(data map[string]interface{}) map[string]interface{} {
	masked := make(map[string]interface{}, len(data))

	for key, value := range data {
		lowerKey := strings.ToLower(key)
		str, isString := value.(string)

		switch {
		case !isString:
			masked[key] = value
		case strings.Contains(lowerKey, "location"), strings.HasSuffix(lowerKey, "file"):
			// key file names and locations are public by contract
			masked[key] = value
		case strings.Contains(lowerKey, "key"), strings.Contains(lowerKey, "secret"), strings.Contains(lowerKey, "token"):
			masked[key] = sl.MaskKey(str)
		default:
			masked[key] = value
		}
	}

	return masked
}

// MaskLogMessage strips inline key=value secrets from a message.
func (sl *SecurityLogger) MaskLogMessage(message string) string {
	return secretPattern.ReplaceAllString(message, "${1}=***")
}

// GenerateHash returns a hex sha256 prefix of data.
func (sl *SecurityLogger) GenerateHash(data string) string {
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash[:8])
}

// SafeInfo logs info with automatic sensitive data masking
func (sl *SecurityLogger) SafeInfo(msg string, fields map[string]interface{}) {
	if fields != nil {
		sl.Logger.WithFields(sl.MaskSensitiveData(fields)).Info(sl.MaskLogMessage(msg))
	} else {
		sl.Logger.Info(sl.MaskLogMessage(msg))
	}
}

// SafeWarn logs warning with automatic sensitive data masking
func (sl *SecurityLogger) SafeWarn(msg string, fields map[string]interface{}) {
	if fields != nil {
		sl.Logger.WithFields(sl.MaskSensitiveData(fields)).Warn(sl.MaskLogMessage(msg))
	} else {
		sl.Logger.Warn(sl.MaskLogMessage(msg))
	}
}

// SafeError logs error with automatic sensitive data masking
func (sl *SecurityLogger) SafeError(msg string, err error, fields map[string]interface{}) {
	maskedFields := map[string]interface{}{
		"error": sl.MaskLogMessage(err.Error()),
	}
	for k, v := range sl.MaskSensitiveData(fields) {
		maskedFields[k] = v
	}
	sl.Logger.WithFields(maskedFields).Error(sl.MaskLogMessage(msg))
}

var securityLoggerInstance *SecurityLogger

// GetSecurityLogger returns a singleton security logger bound to the current global logger.
func GetSecurityLogger() *SecurityLogger {
	base := GetLogger()

	mu.Lock()
	defer mu.Unlock()
	if securityLoggerInstance == nil || securityLoggerInstance.Logger != base {
		securityLoggerInstance = &SecurityLogger{Logger: base}
	}
	return securityLoggerInstance
}
