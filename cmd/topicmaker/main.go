package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/kanoha/storefront/config"
	"github.com/kanoha/storefront/internal/adapter"
	"github.com/kanoha/storefront/pkg/sigctx"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	partitions        = 3
	replicationFactor = 3
	cleanupPolicy     = "delete"

	// Submissions are kept for a quarter.
	retention = 90 * 24 * time.Hour
)

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	if !cfg.BrokerEnabled() {
		printFail(errors.New("broker.seed_brokers is empty"))
		return
	}

	cl, err := createClient(cfg)
	if err != nil {
		printFail(err)
		return
	}
	defer cl.Close()

	printStart(cfg)
	defer printComplete(time.Now())

	if err := makeTopics(sigCtx, cl, cfg.Broker.SubmissionsTopic); err != nil {
		printFail(err)
		return
	}
}

func createClient(cfg config.Config) (*kadm.Client, error) {
	opts := []kgo.Opt{kgo.SeedBrokers(cfg.Broker.SeedBrokers...)}

	tls := cfg.Broker.TLS
	tlsCfg, err := adapter.MakeTLSConfig(tls.CA, tls.Cert, tls.Key)
	if err != nil {
		return nil, err
	}
	if tlsCfg != nil {
		opts = append(opts, kgo.DialTLSConfig(tlsCfg))
	}

	return kadm.NewOptClient(opts...)
}

func makeTopics(ctx context.Context, cl *kadm.Client, topics ...string) error {
	var (
		policy      = cleanupPolicy
		minISR      = "1"
		retentionMs = strconv.FormatInt(retention.Milliseconds(), 10)
	)

	config := map[string]*string{
		"cleanup.policy":      &policy,
		"min.insync.replicas": &minISR,
		"retention.ms":        &retentionMs,
	}

	responses, err := cl.CreateTopics(
		ctx,
		partitions,
		replicationFactor,
		config,
		topics...,
	)
	if err != nil {
		return err
	}

	var errs []error
	for _, res := range responses.Sorted() {
		if res.Err != nil {
			if errors.Is(res.Err, kerr.TopicAlreadyExists) {
				fmt.Printf("topic: %q already exists\n", res.Topic)
			} else {
				errs = append(errs, fmt.Errorf("topic %q: %w", res.Topic, res.Err))
			}
			continue
		}
		fmt.Printf("topic: %q successfully created\n", res.Topic)
	}

	return errors.Join(errs...)
}

func printStart(cfg config.Config) {
	fmt.Printf("initializing topics...\n\t- %q\n\n", cfg.Broker.SubmissionsTopic)
}

func printComplete(start time.Time) {
	fmt.Printf("\ncomplete in %s\n", time.Since(start))
}

func printFail(err error) {
	fmt.Printf("failed to create topics: \n%s\n", err)
}
