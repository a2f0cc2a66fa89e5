// File: internal/service/notification.go
package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"savory/internal/model"
)

// Notifier 送出訂位確認簡訊。APIURL 未設定時僅記錄 log。
type Notifier struct {
	APIURL string
	APIKey string
}

// httpPost 測試接縫
var httpPost = http.Post

// SendReservationConfirmation 對訂位電話送出確認訊息。
// 失敗僅記錄 log，不影響訂位結果。
func (n *Notifier) SendReservationConfirmation(r model.Reservation) {
	message := fmt.Sprintf(
		"Savory reservation received: %s, party of %d, %s at %s (%s). Status: %s.",
		r.CustomerName,
		r.NumPeople,
		r.Date,
		r.Time,
		r.Location,
		r.Status,
	)

	if n.APIURL == "" {
		log.Printf("notification (sms disabled): %s -> %s", r.Phone, message)
		return
	}

	payload, err := json.Marshal(map[string]string{
		"phone":   r.Phone,
		"message": message,
		"key":     n.APIKey,
	})
	if err != nil {
		log.Printf("notification: marshal failed for %s: %v", r.Phone, err)
		return
	}

	resp, err := httpPost(n.APIURL, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		log.Printf("notification: request failed for %s: %v", r.Phone, err)
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("notification: decode failed for %s: %v", r.Phone, err)
		return
	}

	if success, _ := result["success"].(bool); !success {
		reason, _ := result["error"].(string)
		log.Printf("notification: sms rejected for %s: %s", r.Phone, reason)
		return
	}
	log.Printf("notification: sms sent to %s", r.Phone)
}
