package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "成功",
	ErrUnknown:         "未知错误",
	ErrBind:            "请求参数绑定错误",
	ErrValidation:      "请求参数验证错误",
	ErrTokenInvalid:    "无效的认证令牌",
	ErrTooManyRequests: "请求频率过高",

	// 管理员相关错误码
	ErrAdminNotFound:      "管理员不存在",
	ErrEmailTaken:         "邮箱已被注册",
	ErrInvalidCredentials: "邮箱或密码错误",

	// 媒体相关错误码
	ErrMediaNotFound:    "媒体不存在",
	ErrEmptyUpdate:      "未提供任何更新字段",
	ErrOrderConflict:    "排序值冲突，请稍后重试",
	ErrInvalidMediaType: "媒体类型无效，仅支持 image 或 video",

	// 资源文件相关错误码
	ErrAssetNotFound:     "资源文件不存在",
	ErrAssetTooLarge:     "资源文件超出大小上限",
	ErrAssetWriteFailed:  "资源文件写入失败",
	ErrAssetDeleteFailed: "资源文件删除失败",

	// 数据库相关错误码
	ErrDatabase:         "数据库错误",
	ErrRecordNotFound:   "记录不存在",
	ErrStoreUnavailable: "存储暂不可用，请稍后重试",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// 管理员相关错误码
	ErrAdminNotFound:      StatusNotFound,
	ErrEmailTaken:         StatusBadRequest,
	ErrInvalidCredentials: StatusUnauthorized,

	// 媒体相关错误码
	ErrMediaNotFound:    StatusNotFound,
	ErrEmptyUpdate:      StatusBadRequest,
	ErrOrderConflict:    StatusServiceUnavailable,
	ErrInvalidMediaType: StatusBadRequest,

	// 资源文件相关错误码
	ErrAssetNotFound:     StatusNotFound,
	ErrAssetTooLarge:     StatusRequestEntityTooLarge,
	ErrAssetWriteFailed:  StatusInternalServerError,
	ErrAssetDeleteFailed: StatusInternalServerError,

	// 数据库相关错误码
	ErrDatabase:         StatusInternalServerError,
	ErrRecordNotFound:   StatusNotFound,
	ErrStoreUnavailable: StatusServiceUnavailable,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
