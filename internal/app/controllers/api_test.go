package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"portfolio-http-service/internal/app/middleware"
	"portfolio-http-service/internal/domain/models"
	"portfolio-http-service/internal/domain/services/container"
	"portfolio-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// apiEnvelope 统一响应格式
type apiEnvelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newTestRouter 组装一个与生产路由同构的测试路由
// 不挂限流和响应缓存，测试里的高频请求不该被限流器干扰
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Media{},
		&models.ContactMessage{},
		&models.SiteSettings{},
	); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}

	cfg := &config.Config{
		JWTSecretKey:       "test-secret-key",
		JWTExpirationHours: 1,
		UploadDir:          t.TempDir(),
		MaxUploadSize:      1 << 20,
	}

	c := container.NewServiceContainer(db, cfg, nil)
	middleware.InitAuthMiddleware(cfg, db)

	r := gin.New()
	api := r.Group("/api")

	api.POST("/auth/register", HandleAuthFunc(c, "register"))
	api.POST("/auth/login", HandleAuthFunc(c, "login"))
	api.GET("/media", HandleMediaFunc(c, "getMediaList"))
	api.GET("/media/:id", HandleMediaFunc(c, "getMedia"))
	api.GET("/categories", HandleCategoryFunc(c, "getCategories"))
	api.GET("/settings", HandleSettingsFunc(c, "getSettings"))
	api.POST("/contact", HandleContactFunc(c, "submitMessage"))

	auth := api.Group("/")
	auth.Use(middleware.AuthenticateAdmin())
	auth.GET("/auth/me", HandleAuthFunc(c, "me"))
	auth.POST("/media/upload", HandleMediaFunc(c, "uploadMedia"))
	auth.PUT("/media/:id", HandleMediaFunc(c, "updateMedia"))
	auth.DELETE("/media/:id", HandleMediaFunc(c, "deleteMedia"))
	auth.PUT("/settings", HandleSettingsFunc(c, "updateSettings"))
	auth.GET("/contact/messages", HandleContactFunc(c, "listMessages"))

	return r
}

func doJSON(r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("解析响应失败: %v: %s", err, w.Body.String())
	}
	return env
}

// registerAdmin 注册管理员并返回会话令牌
func registerAdmin(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "admin@example.com",
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("注册失败: %d %s", w.Code, w.Body.String())
	}

	var data struct {
		AccessToken string `json:"access_token"`
	}
	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("解析令牌失败: %v", err)
	}
	if data.AccessToken == "" {
		t.Fatal("注册响应缺少令牌")
	}
	return data.AccessToken
}

// uploadMedia 通过multipart上传一个媒体并返回解析后的记录
func uploadMedia(t *testing.T, r *gin.Engine, token, title, category string) models.Media {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("title", title)
	mw.WriteField("category", category)
	fw, err := mw.CreateFormFile("file", "original.jpg")
	if err != nil {
		t.Fatalf("构造multipart失败: %v", err)
	}
	fw.Write([]byte("fake image bytes"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/media/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("上传失败: %d %s", w.Code, w.Body.String())
	}

	var media models.Media
	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, &media); err != nil {
		t.Fatalf("解析媒体失败: %v", err)
	}
	return media
}

func TestAuthFlow(t *testing.T) {
	r := newTestRouter(t)
	token := registerAdmin(t, r)

	// 重复注册同一邮箱被拒绝
	w := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "admin@example.com",
		"password": "other-pass",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("重复注册应返回400, 实际: %d", w.Code)
	}

	// 登录
	w = doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("登录失败: %d %s", w.Code, w.Body.String())
	}

	// 密码错误得到401
	w = doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("密码错误应返回401, 实际: %d", w.Code)
	}

	// me 返回当前管理员，不泄露密码哈希
	w = doJSON(r, http.MethodGet, "/api/auth/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me 失败: %d %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatalf("响应不应包含密码相关字段: %s", w.Body.String())
	}

	// 无令牌访问受保护端点
	w = doJSON(r, http.MethodGet, "/api/auth/me", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("无令牌应返回401, 实际: %d", w.Code)
	}
}

func TestMediaLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := registerAdmin(t, r)

	first := uploadMedia(t, r, token, "First", "Portrait")
	second := uploadMedia(t, r, token, "Second", "Landscape")

	if first.DisplayOrder != 1 || second.DisplayOrder != 2 {
		t.Fatalf("排序值应为1和2, 实际: %d, %d", first.DisplayOrder, second.DisplayOrder)
	}
	if !strings.HasPrefix(first.FileURL, "/api/uploads/") {
		t.Fatalf("文件URL应指向静态挂载点: %q", first.FileURL)
	}

	// 公开列表
	w := doJSON(r, http.MethodGet, "/api/media", "", nil)
	env := decodeEnvelope(t, w)
	var listData struct {
		Total int64          `json:"total"`
		Data  []models.Media `json:"data"`
	}
	if err := json.Unmarshal(env.Data, &listData); err != nil {
		t.Fatalf("解析列表失败: %v", err)
	}
	if listData.Total != 2 {
		t.Fatalf("total 应为2, 实际: %d", listData.Total)
	}

	// 分类过滤
	w = doJSON(r, http.MethodGet, "/api/media?category=Landscape", "", nil)
	env = decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, &listData); err != nil {
		t.Fatalf("解析列表失败: %v", err)
	}
	if listData.Total != 1 || listData.Data[0].Title != "Second" {
		t.Fatalf("分类过滤结果不正确: %+v", listData)
	}

	// 部分更新
	w = doJSON(r, http.MethodPut, "/api/media/"+first.ID, token, gin.H{"featured": true})
	if w.Code != http.StatusOK {
		t.Fatalf("更新失败: %d %s", w.Code, w.Body.String())
	}

	// 空更新被拒绝
	w = doJSON(r, http.MethodPut, "/api/media/"+first.ID, token, gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("空更新应返回400, 实际: %d", w.Code)
	}

	// 删除后记录与详情都消失
	w = doJSON(r, http.MethodDelete, "/api/media/"+first.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("删除失败: %d %s", w.Code, w.Body.String())
	}
	w = doJSON(r, http.MethodGet, "/api/media/"+first.ID, "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("删除后详情应返回404, 实际: %d", w.Code)
	}

	// 未认证的写操作被拒绝
	w = doJSON(r, http.MethodDelete, "/api/media/"+second.ID, "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("未认证删除应返回401, 实际: %d", w.Code)
	}
}

func TestCategoriesOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := registerAdmin(t, r)

	uploadMedia(t, r, token, "p1", "Portrait")
	uploadMedia(t, r, token, "p2", "Portrait")
	uploadMedia(t, r, token, "l1", "Landscape")

	w := doJSON(r, http.MethodGet, "/api/categories", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("查询分类失败: %d", w.Code)
	}

	var categories []struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, &categories); err != nil {
		t.Fatalf("解析分类失败: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("应有2个分类, 实际: %d", len(categories))
	}
	if categories[0].Name != "Landscape" || categories[0].Count != 1 ||
		categories[1].Name != "Portrait" || categories[1].Count != 2 {
		t.Fatalf("分类统计不正确: %+v", categories)
	}
}

func TestSettingsOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := registerAdmin(t, r)

	// 未保存过时返回默认值
	w := doJSON(r, http.MethodGet, "/api/settings", "", nil)
	env := decodeEnvelope(t, w)
	var settings models.SiteSettings
	if err := json.Unmarshal(env.Data, &settings); err != nil {
		t.Fatalf("解析设置失败: %v", err)
	}
	if settings.SiteTitle != "Findelmundo" {
		t.Fatalf("默认站点标题不匹配: %q", settings.SiteTitle)
	}

	// 更新需要认证
	w = doJSON(r, http.MethodPut, "/api/settings", "", gin.H{"site_title": "Hacked"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("未认证更新应返回401, 实际: %d", w.Code)
	}

	w = doJSON(r, http.MethodPut, "/api/settings", token, gin.H{
		"site_title":    "My Portfolio",
		"tagline":       "Photography",
		"contact_email": "hi@example.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("更新设置失败: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/settings", "", nil)
	env = decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, &settings); err != nil {
		t.Fatalf("解析设置失败: %v", err)
	}
	if settings.SiteTitle != "My Portfolio" {
		t.Fatalf("站点标题未更新: %q", settings.SiteTitle)
	}
}

func TestContactOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := registerAdmin(t, r)

	// 公开提交
	for i := 0; i < 2; i++ {
		w := doJSON(r, http.MethodPost, "/api/contact", "", gin.H{
			"name":    fmt.Sprintf("visitor-%d", i),
			"email":   "visitor@example.com",
			"subject": "Hello",
			"message": "Love the work",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("提交留言失败: %d %s", w.Code, w.Body.String())
		}
	}

	// 缺少必填字段被拒绝
	w := doJSON(r, http.MethodPost, "/api/contact", "", gin.H{"name": "no-email"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("缺少字段应返回400, 实际: %d", w.Code)
	}

	// 列表需要认证
	w = doJSON(r, http.MethodGet, "/api/contact/messages", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("未认证列表应返回401, 实际: %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/contact/messages", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("查询留言失败: %d %s", w.Code, w.Body.String())
	}
	var listData struct {
		Total int                     `json:"total"`
		Data  []models.ContactMessage `json:"data"`
	}
	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, &listData); err != nil {
		t.Fatalf("解析留言列表失败: %v", err)
	}
	if listData.Total != 2 {
		t.Fatalf("应有2条留言, 实际: %d", listData.Total)
	}
	for _, msg := range listData.Data {
		if msg.Read {
			t.Fatalf("新留言应为未读: %+v", msg)
		}
	}
}
