// wechatwork/wechatwork.go
package wechatwork

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// Message 企业微信Webhook消息结构
type Message struct {
	MsgType  string          `json:"msgtype"`
	Markdown MarkdownContent `json:"markdown"`
}

type MarkdownContent struct {
	Content string `json:"content"`
}

// Sender 通知发送器, WebhookKey为空时禁用
type Sender struct {
	WebhookKey string
	Enabled    bool
}

func NewSender(webhookKey string) *Sender {
	return &Sender{
		WebhookKey: webhookKey,
		Enabled:    webhookKey != "",
	}
}

// SendMarkdown 发送Markdown消息
func (s *Sender) SendMarkdown(content string) error {
	if !s.Enabled {
		return nil
	}

	return s.send(Message{
		MsgType: "markdown",
		Markdown: MarkdownContent{
			Content: content,
		},
	})
}

// send 发送消息
func (s *Sender) send(message Message) error {
	var webhookURL = fmt.Sprintf("https://qyapi.weixin.qq.com/cgi-bin/webhook/send?key=%s", s.WebhookKey)

	jsonData, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("无法序列化通知消息: %w", err)
	}

	resp, err := http.Post(webhookURL, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("发送企业微信通知失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("企业微信通知返回非200状态码: %d", resp.StatusCode)
	}

	log.Println("企业微信通知发送成功")
	return nil
}
