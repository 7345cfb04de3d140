package kafka

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"strings"

	"github.com/kanoha/storefront/internal/core/domain"
	"github.com/kanoha/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	ErrTooFewOpts = errors.New("too few options")
)

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

// ProducerClientOpt dials the seed brokers. tlsCfg may be nil.
func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string, tlsCfg *tls.Config,
) ProducerOpt {
	return func(opts *producerOpts) error {
		kopts := []kgo.Opt{
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
			kgo.AllowAutoTopicCreation(),
		}
		if tlsCfg != nil {
			kopts = append(kopts, kgo.DialTLSConfig(tlsCfg))
		}

		cl, err := kgo.NewClient(kopts...)
		if err != nil {
			return err
		}

		if err := cl.Ping(ctx); err != nil {
			cl.Close()
			return err
		}
		opts.cl = cl
		return nil
	}
}

// ProducerWithClientOpt uses an already built client.
func ProducerWithClientOpt(cl ProducerClient) ProducerOpt {
	return func(opts *producerOpts) error {
		if cl == nil {
			return errors.New("client is nil")
		}
		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func submissionToSchemaV1(v domain.Submission) (s schema.SubmissionV1) {
	s.ID = v.ID
	s.Kind = string(v.Kind)
	s.VisitorID = v.VisitorID
	s.CreatedAt = v.CreatedAt
	s.Contact.FirstName = v.Contact.FirstName
	s.Contact.LastName = v.Contact.LastName
	s.Contact.Email = v.Contact.Email
	s.Contact.Company = v.Contact.Company
	s.Contact.Phone = v.Contact.Phone
	s.Subject = v.Subject
	s.Message = v.Message
	s.BusinessType = v.BusinessType

	s.Items = make([]schema.CartItemV1, len(v.Items))
	for i, item := range v.Items {
		s.Items[i] = schema.CartItemV1{
			ID:       item.ID,
			Name:     item.Name,
			Img:      item.Img,
			Quantity: item.Quantity,
		}
	}
	return
}
