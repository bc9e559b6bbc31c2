package api

import (
	"errors"   // Error inspection
	"fmt"      // Message formatting
	"net/http" // HTTP status codes
	"reflect"  // JSON field names for validation messages
	"strings"  // String manipulation
	"sync"     // One-time validator setup

	"partner_management/internal/domain" // Domain errors

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/gin-gonic/gin/binding"       // Binding validator engine
	"github.com/go-playground/validator/v10" // Validation errors
	"github.com/sirupsen/logrus"             // Structured logging
)

var registerTagNameOnce sync.Once

// useJSONFieldNames makes validation errors report JSON field names
func useJSONFieldNames() {
	registerTagNameOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(func(f reflect.StructField) string {
				name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
				if name == "-" || name == "" {
					return f.Name
				}
				return name
			})
		}
	})
}

// bindingMessages turns a binding error into one message per field
func bindingMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"The request body is not valid JSON or has fields of the wrong type."}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "max":
		return fmt.Sprintf("The field %s must be a string with a maximum length of %s.", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("The %s field is not a valid e-mail address.", fe.Field())
	case "gtefield":
		return fmt.Sprintf("The %s field must not be earlier than %s.", fe.Field(), lowerFirst(fe.Param()))
	default:
		return fmt.Sprintf("The %s field is invalid.", fe.Field())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// bindJSON binds the body and writes a 400 with field messages on failure
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": bindingMessages(err)})
		return false
	}
	return true
}

// respondError maps domain errors to HTTP responses. Unknown errors are logged and hidden.
func respondError(c *gin.Context, err error, operation string) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": verr.Errors})
		return
	}
	message := err.Error()
	var derr *domain.Error
	if errors.As(err, &derr) {
		message = derr.Message
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": message})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"message": message})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": message})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": message})
	default:
		logrus.WithFields(logrus.Fields{
			"operation":  operation,
			"request_id": c.GetString("requestID"),
			"error":      err.Error(),
		}).Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
