package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusRequestEntityTooLarge - 413: 请求体过大.
	StatusRequestEntityTooLarge = 413
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusServiceUnavailable - 503: 服务暂不可用.
	StatusServiceUnavailable = 503
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 管理员相关错误码 (101xxx).
const (
	// ErrAdminNotFound - 404: 管理员不存在.
	ErrAdminNotFound int = iota + 101000
	// ErrEmailTaken - 400: 邮箱已被注册.
	ErrEmailTaken
	// ErrInvalidCredentials - 401: 邮箱或密码错误.
	ErrInvalidCredentials
)

// 媒体相关错误码 (102xxx).
const (
	// ErrMediaNotFound - 404: 媒体不存在.
	ErrMediaNotFound int = iota + 102000
	// ErrEmptyUpdate - 400: 未提供任何更新字段.
	ErrEmptyUpdate
	// ErrOrderConflict - 503: 排序值冲突，可稍后重试.
	ErrOrderConflict
	// ErrInvalidMediaType - 400: 媒体类型无效.
	ErrInvalidMediaType
)

// 资源文件相关错误码 (103xxx).
const (
	// ErrAssetNotFound - 404: 资源文件不存在.
	ErrAssetNotFound int = iota + 103000
	// ErrAssetTooLarge - 413: 资源文件超出大小上限.
	ErrAssetTooLarge
	// ErrAssetWriteFailed - 500: 资源文件写入失败.
	ErrAssetWriteFailed
	// ErrAssetDeleteFailed - 500: 资源文件删除失败.
	ErrAssetDeleteFailed
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
	// ErrStoreUnavailable - 503: 存储暂不可用，可重试.
	ErrStoreUnavailable
)
