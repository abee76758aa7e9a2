// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/llm-secrets/internal/classifier"
	"github.com/MKhiriev/llm-secrets/internal/crypto"
	"github.com/MKhiriev/llm-secrets/internal/logger"
	"github.com/MKhiriev/llm-secrets/internal/store"
	"github.com/MKhiriev/llm-secrets/models"
)

type privacyPipeline struct {
	classifier classifier.Classifier
	cipher     crypto.Cipher
	keys       crypto.KeyManager
	artifacts  store.ArtifactStore
	logger     *logger.Logger
}

// NewPrivacyPipeline constructs the default [PrivacyPipeline] over the given
// collaborators. The key manager is expected to have been initialised at
// startup; a key failure at this point is reported per span rather than
// panicking, but should not occur in practice.
func NewPrivacyPipeline(
	cls classifier.Classifier,
	cipher crypto.Cipher,
	keys crypto.KeyManager,
	artifacts store.ArtifactStore,
	log *logger.Logger,
) PrivacyPipeline {
	return &privacyPipeline{
		classifier: cls,
		cipher:     cipher,
		keys:       keys,
		artifacts:  artifacts,
		logger:     log,
	}
}

// Process implements [PrivacyPipeline]. Spans are handled strictly in
// positional order: encrypt, then save, then the next span, so the stored
// records come back in the order the spans were found.
func (p *privacyPipeline) Process(ctx context.Context, text string) models.PipelineResult {
	log := logger.FromContext(ctx)

	publicText, spans := p.classifier.Classify(text)
	result := models.PipelineResult{PublicText: publicText}

	if len(spans) == 0 {
		log.Debug().
			Str("func", "privacyPipeline.Process").
			Int("input_bytes", len(text)).
			Msg("no private spans detected")
		return result
	}

	key, err := p.keys.GetOrCreateKey()
	if err != nil {
		// No key means no span can be sealed. Public text is still returned.
		log.Err(err).
			Str("func", "privacyPipeline.Process").
			Msg("failed to obtain encryption key")
		for i := range spans {
			result.Errors = append(result.Errors, models.SpanError{
				SpanIndex: i,
				Stage:     models.StageEncrypt,
				Err:       fmt.Errorf("obtain key: %w", err),
			})
		}
		return result
	}

	for i, span := range spans {
		artifact, encErr := p.cipher.Encrypt(key, []byte(span.Text))
		if encErr != nil {
			log.Err(encErr).
				Str("func", "privacyPipeline.Process").
				Int("span_index", i).
				Msg("failed to encrypt private span")
			result.Errors = append(result.Errors, models.SpanError{
				SpanIndex: i,
				Stage:     models.StageEncrypt,
				Err:       encErr,
			})
			continue
		}

		record, saveErr := p.artifacts.Save(ctx, artifact)
		if saveErr != nil {
			log.Err(saveErr).
				Str("func", "privacyPipeline.Process").
				Int("span_index", i).
				Msg("failed to store encrypted span")
			result.Errors = append(result.Errors, models.SpanError{
				SpanIndex: i,
				Stage:     models.StageStore,
				Err:       saveErr,
			})
			continue
		}

		result.Stored = append(result.Stored, record)
	}

	log.Debug().
		Str("func", "privacyPipeline.Process").
		Int("spans", len(spans)).
		Int("stored", len(result.Stored)).
		Int("failed", len(result.Errors)).
		Msg("response processed")

	return result
}
