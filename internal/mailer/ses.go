package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"wordnote/internal/config"
	"wordnote/internal/middleware"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// sesAPI は SESMailer が使う sesv2.Client のメソッド
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESMailer は AWS SES v2 でメールを送信します
type SESMailer struct {
	client sesAPI
	from   string
}

// NewSESMailer は auth_type に応じて認証方法を切り替えて SES クライアントを作ります
func NewSESMailer(ctx context.Context, cfg *config.SESConfig) (*SESMailer, error) {
	awsCfgOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	switch cfg.AuthType {
	case "static_credentials":
		slog.Info("Configuring SES with static credentials.")
		if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
			return nil, errors.New("NewSESMailer: access_key_id or secret_access_key is missing")
		}
		creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
		awsCfgOpts = append(awsCfgOpts, awsconfig.WithCredentialsProvider(creds))
	case "iam_role":
		// 認証情報は SDK のデフォルトチェーンに任せる
		slog.Info("Configuring SES with IAM Role credentials.")
	default:
		slog.Warn("Unknown SES auth_type specified, defaulting to IAM Role.", "type", cfg.AuthType)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsCfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("NewSESMailer: load aws config: %w", err)
	}
	return &SESMailer{client: sesv2.NewFromConfig(awsCfg), from: cfg.From}, nil
}

func (m *SESMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(body),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		logger.Error("Failed to send email via SES", "error", err, "to", to)
		return fmt.Errorf("SESMailer.Send: %w", err)
	}

	logger.Info("Email sent successfully via SES", "to", to, "subject", subject)
	return nil
}
