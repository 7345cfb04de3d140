package kafka

import (
	"context"
	"log/slog"

	"github.com/kanoha/storefront/internal/core/domain"
	"github.com/kanoha/storefront/internal/core/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.SubmissionsProducer = (*SubmissionsProducer)(nil)

// A SubmissionsProducer publishes [domain.Submission] keyed by submission id.
type SubmissionsProducer struct {
	cl       ProducerClient
	encoder  Encoder
	opPrefix string
}

func NewSubmissionsProducer(opts ...ProducerOpt) (SubmissionsProducer, error) {
	const op = "NewSubmissionsProducer"

	if len(opts) != 2 {
		return SubmissionsProducer{}, opErr(ErrTooFewOpts, op)
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return SubmissionsProducer{}, opErr(err, op)
		}
	}

	return SubmissionsProducer{
		cl:       options.cl,
		encoder:  options.encoder,
		opPrefix: "SubmissionsProducer",
	}, nil
}

func (p SubmissionsProducer) Close() {
	const op = "Close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p SubmissionsProducer) ProduceSubmission(
	ctx context.Context, v domain.Submission,
) error {
	const op = "ProduceSubmission"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r, err := p.createRecord(v)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	slog.Debug("submission produced",
		"op", makeOp(p.opPrefix, op), "submissionID", v.ID)
	return nil
}

func (p SubmissionsProducer) createRecord(v domain.Submission) (*kgo.Record, error) {
	const op = "createRecord"

	b, err := p.encoder.Encode(submissionToSchemaV1(v))
	if err != nil {
		return nil, opErr(err, p.opPrefix, op)
	}

	return &kgo.Record{
		Key:   []byte(v.ID),
		Value: b,
		Headers: []kgo.RecordHeader{
			{Key: "kind", Value: []byte(v.Kind)},
		},
	}, nil
}
