package mailer

import (
	"bufio"
	"context"
	"errors"
	"net"
	"net/textproto"
	"strconv"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wordnote/internal/config"
)

type mockSES struct {
	mock.Mock
}

func (m *mockSES) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sesv2.SendEmailOutput)
	return out, args.Error(1)
}

func TestSESMailer_Send(t *testing.T) {
	client := new(mockSES)
	m := &SESMailer{client: client, from: "noreply@example.com"}

	client.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *sesv2.SendEmailInput) bool {
		return aws.ToString(in.FromEmailAddress) == "noreply@example.com" &&
			in.Destination.ToAddresses[0] == "alice@example.com" &&
			aws.ToString(in.Content.Simple.Subject.Data) == "復習の時間です"
	})).Return(&sesv2.SendEmailOutput{}, nil).Once()

	require.NoError(t, m.Send(context.Background(), "alice@example.com", "復習の時間です", "apple"))
	client.AssertExpectations(t)
}

func TestSESMailer_SendError(t *testing.T) {
	client := new(mockSES)
	m := &SESMailer{client: client, from: "noreply@example.com"}
	client.On("SendEmail", mock.Anything, mock.Anything).Return(nil, errors.New("throttled")).Once()

	err := m.Send(context.Background(), "alice@example.com", "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}

func TestNewSESMailer_MissingStaticCredentials(t *testing.T) {
	_, err := NewSESMailer(context.Background(), &config.SESConfig{Region: "ap-northeast-1", AuthType: "static_credentials"})
	assert.Error(t, err)
}

func TestNew_SelectsImplementation(t *testing.T) {
	cfg := &config.Config{}
	cfg.Mailer.Type = "smtp"
	m, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &SMTPMailer{}, m)

	cfg.Mailer.Type = "unknown"
	m, err = New(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &LogMailer{}, m)
}

// fakeSMTPServer は1通だけ受け取る最小限の SMTP サーバー
func fakeSMTPServer(t *testing.T) (addr string, received <-chan string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	ch := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		tp := textproto.NewConn(conn)
		tp.PrintfLine("220 localhost ESMTP")
		var data strings.Builder
		for {
			line, err := tp.ReadLine()
			if err != nil {
				return
			}
			cmd := strings.ToUpper(line)
			switch {
			case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
				tp.PrintfLine("250 localhost")
			case strings.HasPrefix(cmd, "MAIL"), strings.HasPrefix(cmd, "RCPT"):
				tp.PrintfLine("250 OK")
			case cmd == "DATA":
				tp.PrintfLine("354 go ahead")
				r := bufio.NewReader(tp.DotReader())
				for {
					l, err := r.ReadString('\n')
					data.WriteString(l)
					if err != nil {
						break
					}
				}
				tp.PrintfLine("250 OK")
				ch <- data.String()
			case cmd == "QUIT":
				tp.PrintfLine("221 bye")
				return
			default:
				tp.PrintfLine("250 OK")
			}
		}
	}()

	host, port, _ := net.SplitHostPort(ln.Addr().String())
	return net.JoinHostPort(host, port), ch
}

func TestSMTPMailer_Send(t *testing.T) {
	addr, received := fakeSMTPServer(t)
	host, portStr, _ := net.SplitHostPort(addr)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	m := NewSMTPMailer(&config.SMTPConfig{Host: host, Port: port, From: "noreply@example.com"})
	require.NoError(t, m.Send(context.Background(), "alice@example.com", "Reminder", "apple: りんご"))

	msg := <-received
	assert.Contains(t, msg, "To: alice@example.com")
	assert.Contains(t, msg, "Subject: Reminder")
	assert.Contains(t, msg, "apple: りんご")
}
