package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"
)

// 压测配置
// 需要一个运行中的服务实例，设置 BENCHMARK_BASE_URL 后才会执行，
// 未设置时整包跳过
type TestConfig struct {
	BaseURL     string `json:"base_url"`
	AdminEmail  string `json:"admin_email"`
	AdminPass   string `json:"admin_pass"`
	Concurrency int    `json:"concurrency"`
	Requests    int    `json:"requests"`
}

// 登录请求
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// 登录响应
type LoginResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		AccessToken string `json:"access_token"`
	} `json:"data"`
}

var (
	config    TestConfig
	authToken string
	enabled   bool
)

// TestMain 测试主函数
func TestMain(m *testing.M) {
	if err := loadConfig(); err != nil {
		fmt.Printf("加载配置失败: %v\n", err)
		os.Exit(1)
	}

	if enabled {
		if err := getAuthToken(); err != nil {
			fmt.Printf("获取认证令牌失败: %v\n", err)
			os.Exit(1)
		}
	}

	os.Exit(m.Run())
}

// loadConfig 加载压测配置
func loadConfig() error {
	config = TestConfig{
		BaseURL:     os.Getenv("BENCHMARK_BASE_URL"),
		AdminEmail:  "admin@example.com",
		AdminPass:   "admin123",
		Concurrency: 10,
		Requests:    100,
	}

	// 尝试从文件加载配置
	data, err := os.ReadFile("test_config.json")
	if err == nil {
		if err := json.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("解析配置文件失败: %v", err)
		}
	}

	enabled = config.BaseURL != ""
	return nil
}

// getAuthToken 登录并获取认证令牌
func getAuthToken() error {
	benchmark := NewAPIBenchmark(config.BaseURL, 1, 1, "")

	body, status, err := benchmark.PostJSON("/auth/login", LoginRequest{
		Email:    config.AdminEmail,
		Password: config.AdminPass,
	})
	if err != nil {
		return err
	}
	if status != 200 {
		return fmt.Errorf("登录失败, 状态码: %d", status)
	}

	var loginResp LoginResponse
	if err := json.Unmarshal(body, &loginResp); err != nil {
		return fmt.Errorf("解析登录响应失败: %v", err)
	}
	if loginResp.Data.AccessToken == "" {
		return fmt.Errorf("登录响应中没有令牌")
	}

	authToken = loginResp.Data.AccessToken
	return nil
}

func requireServer(t *testing.T) {
	t.Helper()
	if !enabled {
		t.Skip("未设置 BENCHMARK_BASE_URL，跳过压测")
	}
}

// TestPing 压测健康检查接口
func TestPing(t *testing.T) {
	requireServer(t)

	benchmark := NewAPIBenchmark(config.BaseURL, config.Concurrency, config.Requests, "")
	result := benchmark.RunGET("/ping")
	result.PrintResult()

	if result.FailureCount > 0 {
		t.Errorf("健康检查接口测试失败: 成功率 %.2f%%", float64(result.SuccessCount)/float64(result.TotalRequests)*100)
	}
}

// TestMediaList 压测媒体列表接口
func TestMediaList(t *testing.T) {
	requireServer(t)

	benchmark := NewAPIBenchmark(config.BaseURL, config.Concurrency, config.Requests, "")
	result := benchmark.RunGET("/media")
	result.PrintResult()

	if result.FailureCount > 0 {
		t.Errorf("媒体列表接口测试失败: 成功率 %.2f%%", float64(result.SuccessCount)/float64(result.TotalRequests)*100)
	}
}

// TestMediaListFiltered 压测带分类过滤的媒体列表接口
func TestMediaListFiltered(t *testing.T) {
	requireServer(t)

	benchmark := NewAPIBenchmark(config.BaseURL, config.Concurrency, config.Requests, "")
	result := benchmark.RunGET("/media?category=Portrait&featured=true")
	result.PrintResult()

	if result.FailureCount > 0 {
		t.Errorf("媒体过滤接口测试失败: 成功率 %.2f%%", float64(result.SuccessCount)/float64(result.TotalRequests)*100)
	}
}

// TestCategories 压测分类聚合接口
func TestCategories(t *testing.T) {
	requireServer(t)

	benchmark := NewAPIBenchmark(config.BaseURL, config.Concurrency, config.Requests, "")
	result := benchmark.RunGET("/categories")
	result.PrintResult()

	if result.FailureCount > 0 {
		t.Errorf("分类聚合接口测试失败: 成功率 %.2f%%", float64(result.SuccessCount)/float64(result.TotalRequests)*100)
	}
}

// TestSettings 压测站点设置接口（带响应缓存）
func TestSettings(t *testing.T) {
	requireServer(t)

	benchmark := NewAPIBenchmark(config.BaseURL, config.Concurrency, config.Requests, "")
	result := benchmark.RunGET("/settings")
	result.PrintResult()

	if result.FailureCount > 0 {
		t.Errorf("站点设置接口测试失败: 成功率 %.2f%%", float64(result.SuccessCount)/float64(result.TotalRequests)*100)
	}
}

// TestContactMessages 压测联系留言列表接口（需要认证）
func TestContactMessages(t *testing.T) {
	requireServer(t)

	benchmark := NewAPIBenchmark(config.BaseURL, config.Concurrency, config.Requests, authToken)
	result := benchmark.RunGET("/contact/messages")
	result.PrintResult()

	if result.FailureCount > 0 {
		t.Errorf("联系留言列表接口测试失败: 成功率 %.2f%%", float64(result.SuccessCount)/float64(result.TotalRequests)*100)
	}
}
