package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

type ResendEmailSender struct {
	Client *resend.Client
	From   string
}

func NewResendEmailSender(apiKey string, from string) *ResendEmailSender {
	if strings.TrimSpace(apiKey) == "" {
		return &ResendEmailSender{From: from}
	}
	return &ResendEmailSender{
		Client: resend.NewClient(apiKey),
		From:   from,
	}
}

func (s *ResendEmailSender) SendTwoStepsCode(ctx context.Context, email string, name string, code string) error {
	if s.Client == nil {
		return fmt.Errorf("email sender not configured")
	}
	html := fmt.Sprintf(
		"<p>Olá, %s!</p><p>Seu código de verificação de duas etapas é:</p><h2>%s</h2><p>O código expira em 15 minutos.</p>",
		name, code,
	)
	text := fmt.Sprintf("Seu código de verificação de duas etapas é %s. O código expira em 15 minutos.", code)
	_, err := s.Client.Emails.Send(&resend.SendEmailRequest{
		From:    s.From,
		To:      []string{email},
		Subject: "Código de verificação de duas etapas",
		Html:    html,
		Text:    text,
	})
	return err
}
