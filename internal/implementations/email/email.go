package email

import (
	"context"
	"encoding/json"
	c "inventory/internal/core/domain/common"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/logging"
	"inventory/internal/core/domain/user"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type EmailSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender                string
	passwordResetTemplate string
	passwordResetBaseUrl  url.URL
}

func NewEmailSender(
	awsConfig aws.Config,
	sender string,
	passwordResetTemplate string,
	passwordResetBaseUrl url.URL,
) *EmailSender {
	return &EmailSender{
		ses:                   ses.NewFromConfig(awsConfig),
		sender:                sender,
		passwordResetTemplate: passwordResetTemplate,
		passwordResetBaseUrl:  passwordResetBaseUrl,
	}
}

func (s *EmailSender) SendPasswordResetToken(
	ctx context.Context,
	email c.Email,
	token user.PasswordResetToken,
) error {
	templateParams, err := passwordResetTemplateData(s.passwordResetBaseUrl, token)
	if err != nil {
		return err
	}

	to := string(email)
	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{to},
			},
			Template:     &s.passwordResetTemplate,
			TemplateData: &templateParams,
		},
	)
	return err
}

// LogSender writes password reset emails to the log instead of sending
// them, it is used in test mode.
type LogSender struct {
	log                  logging.Logger
	passwordResetBaseUrl url.URL
}

func NewLogSender(log logging.Logger, passwordResetBaseUrl url.URL) *LogSender {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &LogSender{log: log, passwordResetBaseUrl: passwordResetBaseUrl}
}

func (s *LogSender) SendPasswordResetToken(
	ctx context.Context,
	email c.Email,
	token user.PasswordResetToken,
) error {
	templateParams, err := passwordResetTemplateData(s.passwordResetBaseUrl, token)
	if err != nil {
		return err
	}
	s.log.Info(
		ctx,
		"Password reset email.",
		logging.Entry("to", email),
		logging.Entry("templateData", templateParams),
	)
	return nil
}

type passwordResetTemplateParams struct {
	Token            string `json:"token"`
	PasswordResetUrl string `json:"passwordResetUrl"`
}

func passwordResetTemplateData(baseUrl url.URL, token user.PasswordResetToken) (string, error) {
	templateParamsBytes, err := json.Marshal(
		passwordResetTemplateParams{
			Token:            string(token),
			PasswordResetUrl: baseUrl.JoinPath(string(token)).String(),
		},
	)
	if err != nil {
		return "", err
	}
	return string(templateParamsBytes), nil
}
