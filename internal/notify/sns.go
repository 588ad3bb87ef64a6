package notify

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSNotifier publishes submission events to an Amazon SNS topic, which the
// studio wires to an SMS subscription.
type SNSNotifier struct {
	client   *sns.Client
	topicARN string
}

// NewSNSNotifier builds an SNS-backed notifier publishing to the given topic.
func NewSNSNotifier(ctx context.Context, region, topicARN string) (*SNSNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SNSNotifier{
		client:   sns.NewFromConfig(cfg),
		topicARN: topicARN,
	}, nil
}

// Notify publishes a short message describing the submission.
func (n *SNSNotifier) Notify(ctx context.Context, event Event) error {
	input := &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(subjectLine(event)),
		Message:  aws.String(bodyText(event)),
	}

	_, err := n.client.Publish(ctx, input)
	return err
}
