package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jexlaindia/app/internal/apperrors"
)

var fieldNamesOnce sync.Once

// useJSONFieldNames makes validator report fields by their json name
// (client_name rather than ClientName).
func useJSONFieldNames() {
	fieldNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
}

// bindJSON decodes and validates the request body into obj. Failures come
// back as a validation AppError carrying one entry per offending field.
func bindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]apperrors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, apperrors.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		return apperrors.Validation("Invalid request body", fields...)
	}

	return apperrors.Validation("Invalid request body", apperrors.FieldError{Field: "body", Message: err.Error()})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
