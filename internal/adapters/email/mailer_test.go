package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewMailer(t *testing.T) {
	m, err := NewMailer(MailerConfig{Provider: ProviderNoop}, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)

	m, err = NewMailer(MailerConfig{Provider: "carrier-pigeon"}, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)

	_, err = NewMailer(MailerConfig{Provider: ProviderSES}, testLogger())
	require.Error(t, err)

	m, err = NewMailer(MailerConfig{Provider: ProviderSES, FromAddress: "hi@openlaunch.dev", FromName: "OpenLaunch", SES: SESConfig{Region: "us-east-1"}}, testLogger())
	require.NoError(t, err)
	require.IsType(t, &sesMailer{}, m)
	assert.Equal(t, "OpenLaunch <hi@openlaunch.dev>", m.(*sesMailer).source)
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := &sesMailer{client: client, source: "hi@openlaunch.dev", logger: testLogger()}

	require.NoError(t, m.Send(context.Background(), "owner@example.com", "Subject", "<p>hi</p>", ""))
	require.NotNil(t, client.input)
	assert.Equal(t, []string{"owner@example.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "Subject", aws.ToString(client.input.Message.Subject.Data))
	assert.Equal(t, "<p>hi</p>", aws.ToString(client.input.Message.Body.Html.Data))
	assert.Nil(t, client.input.Message.Body.Text)

	client.err = errors.New("throttled")
	require.Error(t, m.Send(context.Background(), "owner@example.com", "Subject", "", "text"))
}
