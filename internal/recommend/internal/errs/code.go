package errs

var (
	SystemError       = ErrorCode{Code: 530001, Msg: "系统错误"}
	InvalidItemKind   = ErrorCode{Code: 530002, Msg: "不支持的内容类型"}
	InvalidActionType = ErrorCode{Code: 530003, Msg: "不支持的行为类型"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
