package services

import (
	"fmt"
	"log"

	"builder/dto"

	json "github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// BroadcastEditorEvent phát sự kiện editor tới các client cùng company.
// Lỗi broadcast chỉ log, không làm fail thao tác gốc.
func BroadcastEditorEvent(m *melody.Melody, companyID uint, event dto.EditorEvent) {
	if m == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("❌ Lỗi marshal sự kiện editor: %v\n", err)
		return
	}

	channel := fmt.Sprintf("company:%d", companyID)
	err = m.BroadcastFilter(payload, func(s *melody.Session) bool {
		v, ok := s.Get("channel")
		if !ok {
			return false
		}
		return v == channel
	})
	if err != nil {
		log.Printf("❌ Lỗi broadcast sự kiện editor: %v\n", err)
	}
}

// RegisterEditorSession gắn session vào channel của company khi client kết nối
func RegisterEditorSession(s *melody.Session, companyID uint) {
	s.Set("channel", fmt.Sprintf("company:%d", companyID))
}
