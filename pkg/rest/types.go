// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import "time"

// CreateOfferRequest Форма продавца
type CreateOfferRequest struct {
	NFTAddress   string `json:"nftAddress" validate:"max=64"`
	BuyerAddress string `json:"buyerAddress" validate:"max=64"`
	Amount       string `json:"amount" validate:"max=32"`
}

// Offer Запись о предложении
type Offer struct {
	ID            string     `json:"id"`
	NFTAddress    string     `json:"nftAddress"`
	SellerAddress string     `json:"sellerAddress"`
	BuyerAddress  string     `json:"buyerAddress"`
	EscrowAddress string     `json:"escrowAddress"`
	OfferedAmount string     `json:"offeredAmount"`
	Fee           string     `json:"fee"`
	Total         string     `json:"total"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// SubmitOfferResponse Результат создания предложения
type SubmitOfferResponse struct {
	Offer            Offer  `json:"offer"`
	Fee              string `json:"fee"`
	Total            string `json:"total"`
	ReceiptSignature string `json:"receiptSignature"`
}

// TransitionResponse Результат accept/cancel
type TransitionResponse struct {
	Offer            Offer  `json:"offer"`
	ReceiptSignature string `json:"receiptSignature"`
}

// Asset Метаданные актива
type Asset struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	MediaURI string `json:"mediaUri"`
}

// OfferDetail Страница актива
type OfferDetail struct {
	NFTAddress    string   `json:"nftAddress"`
	SellerAddress string   `json:"sellerAddress"`
	ViewerRole    string   `json:"viewerRole"`
	IsRequested   bool     `json:"isRequested"`
	Stale         bool     `json:"stale"`
	Verified      bool     `json:"verified"`
	EscrowMissing bool     `json:"escrowMissing"`
	Actions       []string `json:"actions"`
	Offer         *Offer   `json:"offer,omitempty"`
	Asset         *Asset   `json:"asset,omitempty"`
}

// OfferRow Строка таблицы покупателя/продавца
type OfferRow struct {
	Offer   Offer    `json:"offer"`
	Actions []string `json:"actions"`
}

// OfferTable Таблица покупателя/продавца
type OfferTable struct {
	Role  string     `json:"role"`
	Items []OfferRow `json:"items"`
}

// FeeQuote Предпросмотр комиссии
type FeeQuote struct {
	Amount        string `json:"amount"`
	Fee           string `json:"fee"`
	Total         string `json:"total"`
	FeePercentage string `json:"feePercentage"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	SupportID string `json:"supportId"`
	Retryable bool   `json:"retryable"`
}

// ErrorCode Код ошибки
type ErrorCode string
