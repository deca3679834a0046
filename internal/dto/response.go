package dto

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	res "github.com/VladimirStepanovN/Blog/internal/response"
)

func SuccessResponse(c *gin.Context, data any) {
	c.JSON(200, res.SuccessResponse(data))
}

func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	c.JSON(httpStatus(err.Code), res.ErrorResponse(err.Code, err.Msg))
}

// httpStatus 业务错误码到HTTP状态码的映射
// 表现层只做映射，错误的种类由服务层决定
func httpStatus(code res.ResponseCode) int {
	switch code {
	case res.ParseError, res.InvalidParameter:
		return 400
	case res.Unauthorized:
		return 401
	case res.Forbidden:
		return 403
	case res.NotFound:
		return 404
	case res.Conflict:
		return 409
	default:
		return 400
	}
}

// ValidationErrorResponse 处理验证错误，返回友好的JSON字段名
func ValidationErrorResponse(c *gin.Context, obj any, err error) {
	// 尝试转换为 validator.ValidationErrors
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		// 获取第一个错误
		if len(validationErrs) > 0 {
			firstErr := validationErrs[0]

			// 获取字段的JSON标签名
			jsonField := getJSONFieldName(obj, firstErr)

			// 构造友好的错误消息
			var message string
			switch firstErr.Tag() {
			case "required":
				message = fmt.Sprintf("字段 '%s' 是必填项", jsonField)
			case "max":
				message = fmt.Sprintf("字段 '%s' 长度不能超过 %s", jsonField, firstErr.Param())
			case "min":
				message = fmt.Sprintf("字段 '%s' 长度不能少于 %s", jsonField, firstErr.Param())
			case "email":
				message = fmt.Sprintf("字段 '%s' 不是合法的邮箱地址", jsonField)
			case "eqfield":
				message = fmt.Sprintf("字段 '%s' 必须与 %s 一致", jsonField, firstErr.Param())
			default:
				message = fmt.Sprintf("字段 '%s' 验证失败: %s", jsonField, firstErr.Tag())
			}

			ErrorResponse(c, res.NewBusinessError(
				res.WithErrorCode(res.ParseError),
				res.WithErrorMessage(message),
			))
			return
		}
	}

	// 如果不是 validation 错误，返回原始错误消息
	ErrorResponse(c, res.NewBusinessError(
		res.WithErrorCode(res.ParseError),
		res.WithErrorMessage("参数错误: "+err.Error()),
	))
}

// getJSONFieldName 通过反射取字段的json标签名，取不到时退回结构体字段名
func getJSONFieldName(obj any, fieldErr validator.FieldError) string {
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fieldErr.Field()
	}

	if field, ok := t.FieldByName(fieldErr.StructField()); ok {
		jsonTag := field.Tag.Get("json")
		if jsonTag != "" && jsonTag != "-" {
			return strings.Split(jsonTag, ",")[0]
		}
	}

	return fieldErr.Field()
}
