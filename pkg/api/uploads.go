package api

import "time"

// PhotoUploadResponse представляет ответ сервера на загрузку фотографии
type PhotoUploadResponse struct {
	PhotoID int64  `json:"photo_id"`
	AssetID int64  `json:"asset_id"`
	URL     string `json:"url"` // где сервер разместил файл
}

// SignatureUploadRequest представляет загрузку подписи (чек-лист
// выдачи/возврата оборудования подписывается получателем)
type SignatureUploadRequest struct {
	ImageBase64 string `json:"image_base64"` // PNG подписи в base64
	Signer      string `json:"signer"`       // кто подписал
	Action      string `json:"action"`       // "checkout" или "return"
	SignedAt    int64  `json:"signed_at"`    // epoch millis момента подписи
}

// SignatureUploadResponse представляет ответ сервера на загрузку подписи
type SignatureUploadResponse struct {
	SignatureID int64 `json:"signature_id"`
	AssetID     int64 `json:"asset_id"`
}

// EquipmentOutputRequest представляет запрос на создание записи о выдаче
// оборудования на дом (home office)
type EquipmentOutputRequest struct {
	AssetID   int64  `json:"asset_id"`
	Recipient string `json:"recipient"`
	Action    string `json:"action"` // "checkout" или "return"
}

// EquipmentOutputResponse представляет созданную запись о выдаче
type EquipmentOutputResponse struct {
	ID         int64      `json:"id"`
	AssetID    int64      `json:"asset_id"`
	Recipient  string     `json:"recipient"`
	Action     string     `json:"action"`
	IssuedAt   time.Time  `json:"issued_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
}
