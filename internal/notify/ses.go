package notify

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESNotifier emails submission events to the studio inbox via Amazon SES.
type SESNotifier struct {
	client *ses.Client
	from   string
	to     string
}

// NewSESNotifier builds an SES-backed notifier for the given region and
// sender/recipient pair.
func NewSESNotifier(ctx context.Context, region, from, to string) (*SESNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SESNotifier{
		client: ses.NewFromConfig(cfg),
		from:   from,
		to:     to,
	}, nil
}

// Notify sends a plain-text email describing the submission.
func (n *SESNotifier) Notify(ctx context.Context, event Event) error {
	input := &ses.SendEmailInput{
		Source: aws.String(n.from),
		Destination: &types.Destination{
			ToAddresses: []string{n.to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subjectLine(event))},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(bodyText(event))},
			},
		},
	}

	_, err := n.client.SendEmail(ctx, input)
	return err
}
