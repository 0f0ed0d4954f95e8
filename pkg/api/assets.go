package api

import "time"

// AssetResponse представляет запись оборудования, возвращаемую сервером
type AssetResponse struct {
	ID           int64     `json:"id"`
	Tag          string    `json:"tag"`           // инвентарный номер с этикетки
	Name         string    `json:"name"`          // название оборудования
	Category     string    `json:"category"`      // категория (laptop, monitor, ...)
	SerialNumber string    `json:"serial_number"` // серийный номер производителя
	Status       string    `json:"status"`        // текущий статус
	AssignedTo   string    `json:"assigned_to"`   // кому выдано
	Location     string    `json:"location"`      // где находится
	Notes        string    `json:"notes"`         // заметки
	UpdatedAt    time.Time `json:"updated_at"`
}

// AssetUpdateRequest представляет частичное обновление записи оборудования.
// Передаются только изменяемые поля.
type AssetUpdateRequest struct {
	Fields map[string]any `json:"fields"`
}

// AssetListResponse представляет страницу записей оборудования
type AssetListResponse struct {
	Assets []AssetResponse `json:"assets"`
	Total  int             `json:"total"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
