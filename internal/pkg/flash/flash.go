// Package flash carries one-shot messages across a redirect in a short-lived cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	cookieName = "pharmalab_flash"
	pendingKey = "flash.pending"
	maxAge     = 60
)

// Categories map onto Bootstrap alert classes
const (
	Success = "success"
	Danger  = "danger"
	Info    = "info"
	Warning = "warning"
)

// Message is one flashed line
type Message struct {
	Category string `json:"c"`
	Text     string `json:"t"`
}

// Add queues a message for the next rendered page
func Add(c *gin.Context, category, text string) {
	msgs := pending(c)
	msgs = append(msgs, Message{Category: category, Text: text})
	c.Set(pendingKey, msgs)

	raw, err := json.Marshal(msgs)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, base64.RawURLEncoding.EncodeToString(raw), maxAge, "/", "", false, true)
}

// Pop returns and clears all queued messages: those from the previous
// response's cookie plus any added while handling the current request.
func Pop(c *gin.Context) []Message {
	msgs := pending(c)
	c.Set(pendingKey, []Message(nil))

	if _, err := c.Cookie(cookieName); err == nil || len(msgs) > 0 {
		c.SetCookie(cookieName, "", -1, "/", "", false, true)
	}
	return msgs
}

func pending(c *gin.Context) []Message {
	if v, ok := c.Get(pendingKey); ok {
		msgs, _ := v.([]Message)
		return msgs
	}

	var msgs []Message
	if value, err := c.Cookie(cookieName); err == nil && value != "" {
		if raw, err := base64.RawURLEncoding.DecodeString(value); err == nil {
			_ = json.Unmarshal(raw, &msgs)
		}
	}
	c.Set(pendingKey, msgs)
	return msgs
}
