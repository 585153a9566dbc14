package services

import "errors"

// 服务层哨兵错误，控制器据此映射到统一错误码
var (
	// 管理员/凭证
	ErrAdminNotFound      = errors.New("管理员不存在")
	ErrEmailTaken         = errors.New("邮箱已被注册")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")

	// 令牌，三种失败对调用方可区分，对外边界统一折叠为未授权
	ErrTokenMalformed = errors.New("令牌格式或签名无效")
	ErrTokenExpired   = errors.New("令牌已过期")
	ErrSubjectMissing = errors.New("令牌对应的管理员不存在")

	// 媒体
	ErrMediaNotFound = errors.New("媒体不存在")
	ErrEmptyUpdate   = errors.New("未提供任何更新字段")
	ErrOrderConflict = errors.New("排序值冲突")

	// 资源文件
	ErrAssetNotFound     = errors.New("资源文件不存在")
	ErrAssetTooLarge     = errors.New("资源文件超出大小上限")
	ErrAssetDeleteFailed = errors.New("资源文件删除失败")
)
