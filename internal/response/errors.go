package response

// 业务错误码
const (
	// 失败
	Fail ResponseCode = 0
	// 参数解析错误
	ParseError ResponseCode = 1
	// 参数错误
	InvalidParameter ResponseCode = 2
	// 资源不存在
	NotFound ResponseCode = 3
	// 未认证
	Unauthorized ResponseCode = 4
	// 无权限
	Forbidden ResponseCode = 5
	// 资源冲突（登录名/邮箱已占用）
	Conflict ResponseCode = 6
)

type BusinessError struct {
	Code ResponseCode
	Msg  string
	Err  error
}

// Error 实现 error 接口，便于日志输出
func (be *BusinessError) Error() string {
	return be.Msg
}

type ErrorOption func(*BusinessError)

func WithErrorCode(code ResponseCode) ErrorOption {
	return func(be *BusinessError) {
		be.Code = code
	}
}

func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Msg = msg
	}
}

func WithError(err error) ErrorOption {
	return func(be *BusinessError) {
		be.Err = err
	}
}

func NewBusinessError(opts ...ErrorOption) *BusinessError {
	err := &BusinessError{
		Code: Fail,
		Msg:  "business error",
		Err:  nil,
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}
