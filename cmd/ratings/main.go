package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rating-engine/ratings/internal/config"
	"github.com/rating-engine/ratings/internal/pipeline"
)

func main() {
	// Setup Logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "rating-model")

	entry.Info("Starting review rating model run")

	// 1. Config
	cfg := config.Load()

	// 2. Pipeline
	p, err := pipeline.New(cfg, entry)
	if err != nil {
		entry.Fatalf("Failed to initialize pipeline: %v", err)
	}
	defer p.Close()

	// 3. Train, select and evaluate
	result, err := p.Run()
	if err != nil {
		entry.Fatalf("Pipeline run failed: %v", err)
	}

	// 4. Report
	for _, c := range result.Selection.Candidates {
		fmt.Printf("lambda = %g, training/validation error = %g/%g\n",
			c.Lambda, c.TrainError, c.ValidationError)
	}
	fmt.Printf("test error = %g\n", result.TestError)

	entry.WithFields(logrus.Fields{
		"lambda":     result.Selection.Model.Lambda,
		"test_error": result.TestError,
	}).Info("Run complete")
}
