// internal/common/aws/ses.go
package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charsetUTF8 = "UTF-8"

var ErrMissingRecipient = errors.New("email recipient is required")

// SESAPI is the subset of the SES client used here.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESClient sends plain-text emails from a fixed sender address.
type SESClient struct {
	api              SESAPI
	fromEmail        string
	configurationSet string
}

// LoadConfig resolves AWS credentials from the default chain for region.
func LoadConfig(ctx context.Context, region string) (aws.Config, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return aws.Config{}, fmt.Errorf("load AWS config: %w", err)
	}
	return cfg, nil
}

func NewSESClient(awsCfg aws.Config, fromEmail, configurationSet string) *SESClient {
	return NewSESClientWithAPI(ses.NewFromConfig(awsCfg), fromEmail, configurationSet)
}

func NewSESClientWithAPI(api SESAPI, fromEmail, configurationSet string) *SESClient {
	return &SESClient{
		api:              api,
		fromEmail:        fromEmail,
		configurationSet: configurationSet,
	}
}

// SendEmail delivers a text email to a single recipient and returns the SES message id.
func (s *SESClient) SendEmail(ctx context.Context, to, subject, body string) (string, error) {
	if to == "" {
		return "", ErrMissingRecipient
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: aws.String(charsetUTF8)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body), Charset: aws.String(charsetUTF8)},
			},
		},
		Source: aws.String(s.fromEmail),
	}
	if s.configurationSet != "" {
		input.ConfigurationSetName = aws.String(s.configurationSet)
	}

	out, err := s.api.SendEmail(ctx, input)
	if err != nil {
		return "", fmt.Errorf("ses send email: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}
