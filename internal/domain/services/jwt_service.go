package services

import (
	"errors"
	"fmt"
	"portfolio-http-service/internal/domain/models"
	"portfolio-http-service/internal/infrastructure/config"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// InterfaceJWTService 定义JWT服务接口
type InterfaceJWTService interface {
	GenerateToken(adminID string) (string, error)
	VerifyToken(tokenString string) (*models.Admin, error)
	Login(email, password string) (*LoginResult, error)
}

// LoginResult 表示登录/注册成功后的结果
type LoginResult struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	Admin       *models.Admin `json:"admin"`
}

// JWTService 提供会话令牌服务
// 令牌自包含（subject + 绝对过期时间），服务端不保存会话状态；
// 签名密钥和有效期在构造时注入，同一密钥可水平扩展
type JWTService struct {
	secretKey  string
	issuer     string
	expiration time.Duration
	DB         *gorm.DB
	admins     InterfaceAdminService
}

// JWTClaims 定义JWT令牌的声明结构
type JWTClaims struct {
	jwt.RegisteredClaims
}

// NewJWTService 创建一个新的JWT服务
func NewJWTService(cfg *config.Config, db *gorm.DB) InterfaceJWTService {
	return &JWTService{
		secretKey:  cfg.JWTSecretKey,
		issuer:     "portfolio-http-service",
		expiration: time.Duration(cfg.TokenExpiration()) * time.Hour,
		DB:         db,
		admins:     NewAdminService(db, cfg),
	}
}

// GenerateToken 签发JWT令牌，过期时间为签发时刻加固定有效期
func (s *JWTService) GenerateToken(adminID string) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// VerifyToken 验证JWT令牌并重新解析subject对应的管理员
// 失败分三类：结构/签名无效(ErrTokenMalformed)、已过期(ErrTokenExpired)、
// subject对应管理员已删除(ErrSubjectMissing)。删除管理员即让其所有
// 未过期令牌失效
func (s *JWTService) VerifyToken(tokenString string) (*models.Admin, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrTokenMalformed
	}

	admin, err := s.admins.GetAdminByID(claims.Subject)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			return nil, ErrSubjectMissing
		}
		return nil, err
	}
	return admin, nil
}

// Login 校验凭证并签发令牌
func (s *JWTService) Login(email, password string) (*LoginResult, error) {
	admin, err := s.admins.VerifyCredentials(email, password)
	if err != nil {
		return nil, err
	}

	token, err := s.GenerateToken(admin.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		Admin:       admin,
	}, nil
}
