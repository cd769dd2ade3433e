package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"builder/constants"
	"builder/models"
	"builder/services/logger"

	"gorm.io/gorm"
)

// WhatsAppService gửi tin nhắn WhatsApp qua provider dạng Twilio.
// Gửi lỗi chỉ log lại, không làm fail thao tác gốc.
type WhatsAppService struct {
	db     *gorm.DB
	logger logger.Logger
	client *http.Client
}

func NewWhatsAppService(db *gorm.DB) *WhatsAppService {
	return &WhatsAppService{
		db:     db,
		logger: logger.NewDefaultLogger(logger.InfoLevel),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// providerResponse định nghĩa cấu trúc phản hồi từ provider
type providerResponse struct {
	Sid          string `json:"sid"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// SendMessage gửi một tin nhắn văn bản và ghi log vào DB
func (s *WhatsAppService) SendMessage(companyID uint, toPhone, body string) *models.WhatsAppMessage {
	message := &models.WhatsAppMessage{
		CompanyID: companyID,
		ToPhone:   toPhone,
		Body:      body,
		Status:    constants.WhatsAppStatusPending,
	}
	if err := s.db.Create(message).Error; err != nil {
		s.logger.Error("Lỗi khi lưu log tin nhắn WhatsApp: %v", err)
		return message
	}

	sid, err := s.callProvider(toPhone, body)
	if err != nil {
		s.logger.Error("Lỗi khi gửi WhatsApp đến %s: %v", toPhone, err)
		message.Status = constants.WhatsAppStatusFailed
		message.ErrorMess = err.Error()
	} else {
		message.Status = constants.WhatsAppStatusSent
		message.ProviderSid = sid
	}

	if err := s.db.Save(message).Error; err != nil {
		s.logger.Error("Lỗi khi cập nhật trạng thái tin nhắn WhatsApp: %v", err)
	}
	return message
}

// SendReservationConfirmation báo cho khách khi đặt phòng được xác nhận
func (s *WhatsAppService) SendReservationConfirmation(reservation *models.Reservation) {
	if reservation.GuestPhone == "" {
		return
	}
	body := fmt.Sprintf("Đặt phòng %s của bạn đã được xác nhận. Nhận phòng %s, trả phòng %s.",
		reservation.Code,
		reservation.CheckInDate.Format("02/01/2006"),
		reservation.CheckOutDate.Format("02/01/2006"))
	s.SendMessage(reservation.CompanyID, reservation.GuestPhone, body)
}

// SendOrderCreated báo cho khách khi tạo đơn hàng
func (s *WhatsAppService) SendOrderCreated(order *models.Order) {
	if order.GuestPhone == "" {
		return
	}
	body := fmt.Sprintf("Đơn hàng %s đã được tạo với tổng tiền %.0f. Cảm ơn bạn đã mua hàng.",
		order.Code, order.TotalPrice)
	s.SendMessage(order.CompanyID, order.GuestPhone, body)
}

// callProvider gọi REST API của provider, trả về sid của tin nhắn
func (s *WhatsAppService) callProvider(toPhone, body string) (string, error) {
	accountSid := os.Getenv("WHATSAPP_ACCOUNT_SID")
	authToken := os.Getenv("WHATSAPP_AUTH_TOKEN")
	fromPhone := os.Getenv("WHATSAPP_FROM")
	if accountSid == "" || authToken == "" || fromPhone == "" {
		return "", fmt.Errorf("thiếu cấu hình WhatsApp provider")
	}

	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", accountSid)
	form := url.Values{}
	form.Set("From", "whatsapp:"+fromPhone)
	form.Set("To", "whatsapp:"+toPhone)
	form.Set("Body", body)

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(accountSid, authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var parsed providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("provider trả về lỗi: %s", parsed.ErrorMessage)
	}
	return parsed.Sid, nil
}
