package models

import "time"

// Asset statuses as reported by the inventory server.
const (
	AssetStatusInStock    = "in_stock"
	AssetStatusAssigned   = "assigned"
	AssetStatusHomeOffice = "home_office"
	AssetStatusRepair     = "repair"
	AssetStatusRetired    = "retired"
)

// Asset представляет единицу IT-оборудования в инвентаре.
// Локально кешируется для офлайн-просмотра после каждого успешного
// чтения с сервера.
type Asset struct {
	ID           int64     `json:"id"`
	Tag          string    `json:"tag"` // inventory tag printed on the equipment label
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	SerialNumber string    `json:"serial_number"`
	Status       string    `json:"status"`
	AssignedTo   string    `json:"assigned_to"`
	Location     string    `json:"location"`
	Notes        string    `json:"notes"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EquipmentOutput представляет запись о выдаче оборудования на дом
// (home office checkout). Возврат закрывает запись через ReturnedAt.
type EquipmentOutput struct {
	ID         int64      `json:"id"`
	AssetID    int64      `json:"asset_id"`
	Recipient  string     `json:"recipient"`
	Action     string     `json:"action"` // "checkout" or "return"
	IssuedAt   time.Time  `json:"issued_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
}
