// Package email 通过 SMTP 投递反馈邮件
package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/feedback"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/config"
)

// SMTPSender 基于 net/smtp 的反馈投递实现，走 STARTTLS
type SMTPSender struct {
	cfg *config.SMTPConfig
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{cfg: &cfg.Feedback.SMTP}
}

// Send 组装并发送一封反馈邮件
func (s *SMTPSender) Send(ctx context.Context, msg feedback.Message) error {
	if s.cfg.Host == "" || s.cfg.SenderEmail == "" || s.cfg.ReceiverEmail == "" {
		return fmt.Errorf("smtp not configured")
	}

	subject := "Prompt Engineer Feedback: " + msg.Type
	body := fmt.Sprintf(
		"New feedback received from Prompt Engineer App:\n\nName: %s\nEmail: %s\nType: %s\n\nMessage:\n%s\n\nSent at: %s\n",
		msg.Name, msg.Email, msg.Type, msg.Content,
		time.Now().Format("2006-01-02 15:04:05"),
	)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.cfg.SenderEmail)
	fmt.Fprintf(&b, "To: %s\r\n", s.cfg.ReceiverEmail)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	// net/smtp 没有 context 入口，借 goroutine 保留取消语义
	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, s.cfg.SenderEmail, []string{s.cfg.ReceiverEmail}, []byte(b.String()))
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
