package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
	"time"

	"github.com/assetops/fieldsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс HTTP клиента инвентарного сервера
type ClientAPI interface {
	// Health проверяет доступность сервера
	Health(ctx context.Context) error

	// Login выполняет аутентификацию пользователя
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// GetAsset возвращает запись оборудования по id
	GetAsset(ctx context.Context, id int64) (*api.AssetResponse, error)

	// FindAssetByTag возвращает запись оборудования по инвентарному номеру
	FindAssetByTag(ctx context.Context, tag string) (*api.AssetResponse, error)

	// ListAssets возвращает список оборудования
	ListAssets(ctx context.Context) (*api.AssetListResponse, error)

	// UpdateAsset применяет частичное обновление записи оборудования
	UpdateAsset(ctx context.Context, id int64, req api.AssetUpdateRequest) (*api.AssetResponse, error)

	// UploadPhoto загружает фотографию оборудования (multipart)
	UploadPhoto(ctx context.Context, assetID int64, fileName, contentType string, data []byte) (*api.PhotoUploadResponse, error)

	// UploadSignature загружает подпись получателя
	UploadSignature(ctx context.Context, assetID int64, req api.SignatureUploadRequest) (*api.SignatureUploadResponse, error)

	// CreateEquipmentOutput создает запись о выдаче оборудования
	CreateEquipmentOutput(ctx context.Context, req api.EquipmentOutputRequest) (*api.EquipmentOutputResponse, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string

	mu    sync.RWMutex
	token string
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetAccessToken sets the bearer token attached to subsequent requests.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) accessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Health проверяет доступность сервера. Используется монитором
// соединения для определения online/offline состояния.
func (c *Client) Health(ctx context.Context) error {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, "GET", "/api/v1/health", nil, &resp); err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	return nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/login", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// GetAsset возвращает запись оборудования по id
func (c *Client) GetAsset(ctx context.Context, id int64) (*api.AssetResponse, error) {
	var resp api.AssetResponse
	url := fmt.Sprintf("/api/v1/assets/%d", id)
	err := c.doRequest(ctx, "GET", url, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get asset request failed: %w", err)
	}
	return &resp, nil
}

// FindAssetByTag возвращает запись оборудования по инвентарному номеру
func (c *Client) FindAssetByTag(ctx context.Context, tag string) (*api.AssetResponse, error) {
	var resp api.AssetResponse
	url := fmt.Sprintf("/api/v1/assets/tag/%s", tag)
	err := c.doRequest(ctx, "GET", url, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("find asset request failed: %w", err)
	}
	return &resp, nil
}

// ListAssets возвращает список оборудования
func (c *Client) ListAssets(ctx context.Context) (*api.AssetListResponse, error) {
	var resp api.AssetListResponse
	err := c.doRequest(ctx, "GET", "/api/v1/assets", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list assets request failed: %w", err)
	}
	return &resp, nil
}

// UpdateAsset применяет частичное обновление записи оборудования
func (c *Client) UpdateAsset(ctx context.Context, id int64, req api.AssetUpdateRequest) (*api.AssetResponse, error) {
	var resp api.AssetResponse
	url := fmt.Sprintf("/api/v1/assets/%d", id)
	err := c.doRequest(ctx, "PUT", url, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("update asset request failed: %w", err)
	}
	return &resp, nil
}

// UploadSignature загружает подпись получателя
func (c *Client) UploadSignature(ctx context.Context, assetID int64, req api.SignatureUploadRequest) (*api.SignatureUploadResponse, error) {
	var resp api.SignatureUploadResponse
	url := fmt.Sprintf("/api/v1/assets/%d/signatures", assetID)
	err := c.doRequest(ctx, "POST", url, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("upload signature request failed: %w", err)
	}
	return &resp, nil
}

// CreateEquipmentOutput создает запись о выдаче оборудования на дом
func (c *Client) CreateEquipmentOutput(ctx context.Context, req api.EquipmentOutputRequest) (*api.EquipmentOutputResponse, error) {
	var resp api.EquipmentOutputResponse
	err := c.doRequest(ctx, "POST", "/api/v1/equipment-outputs", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("create equipment output request failed: %w", err)
	}
	return &resp, nil
}

// UploadPhoto загружает фотографию оборудования через multipart запрос
func (c *Client) UploadPhoto(ctx context.Context, assetID int64, fileName, contentType string, data []byte) (*api.PhotoUploadResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("photo", fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write photo data: %w", err)
	}
	if err := writer.WriteField("content_type", contentType); err != nil {
		return nil, fmt.Errorf("failed to write content type field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/assets/%d/photos", c.baseURL, assetID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token := c.accessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, decodeErrorResponse(httpResp.StatusCode, respBody)
	}

	var resp api.PhotoUploadResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.accessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeErrorResponse(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// decodeErrorResponse разбирает тело ошибки в стандартном конверте сервера
func decodeErrorResponse(statusCode int, respBody []byte) error {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
		return fmt.Errorf("server error (%d): %s", statusCode, errResp.Message)
	}
	return fmt.Errorf("request failed with status %d: %s", statusCode, string(respBody))
}
