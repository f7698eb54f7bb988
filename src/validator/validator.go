package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// CustomValidator 请求体校验器。枚举类字段（tab/象限）刻意不做白名单校验：
// 历史数据里可能存在未知取值，变更日志按原样渲染它们。
type CustomValidator struct {
	validator      *validator.Validate
	controlPattern *regexp.Regexp
	datePattern    *regexp.Regexp
}

// ValidationError 单条校验错误的详细信息
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// ValidationErrors 多条校验错误
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (ve ValidationErrors) Error() string {
	if len(ve.Errors) > 0 {
		return ve.Errors[0].Message
	}
	return "validation failed"
}

// NewCustomValidator creates a new custom validator instance
func NewCustomValidator() *CustomValidator {
	v := validator.New()
	cv := &CustomValidator{
		validator:      v,
		controlPattern: regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`),
		// 允许 YYYY-MM-DD，以及前端 datetime-local 的 YYYY-MM-DDTHH:MM[:SS]
		datePattern: regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([T ]\d{2}:\d{2}(:\d{2})?)?$`),
	}

	v.RegisterValidation("safe_text", cv.validateSafeText)
	v.RegisterValidation("date_string", cv.validateDateString)

	return cv
}

// Validate validates a struct and returns detailed error information
func (cv *CustomValidator) Validate(s interface{}) error {
	if err := cv.validator.Struct(s); err != nil {
		var validationErrors []ValidationError

		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   err.Value(),
				Message: cv.generateErrorMessage(err),
			})
		}

		return ValidationErrors{Errors: validationErrors}
	}
	return nil
}

// validateSafeText 拒绝包含控制字符的文本
func (cv *CustomValidator) validateSafeText(fl validator.FieldLevel) bool {
	return !cv.controlPattern.MatchString(fl.Field().String())
}

// validateDateString 校验计划完成时间的格式，空串视为未填写
func (cv *CustomValidator) validateDateString(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || cv.datePattern.MatchString(s)
}

func (cv *CustomValidator) generateErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "safe_text":
		return fmt.Sprintf("%s 包含非法字符", err.Field())
	case "date_string":
		return fmt.Sprintf("%s 不是有效的日期格式", err.Field())
	case "min":
		return fmt.Sprintf("%s 不能小于 %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s 不能大于 %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("%s 校验失败 (%s)", err.Field(), err.Tag())
	}
}
