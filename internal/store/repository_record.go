// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/llm-secrets/internal/logger"
	"github.com/MKhiriev/llm-secrets/models"
)

const artifactsTable = "artifacts"

var recordColumns = []string{"id", "file_path", "size_bytes", "created_at"}

type recordRepository struct {
	*DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewRecordRepository constructs the sqlite-backed [RecordRepository].
func NewRecordRepository(db *DB, log *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
	}
}

func (r *recordRepository) Insert(ctx context.Context, record models.StoredRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(artifactsTable).
		Columns(recordColumns...).
		Values(record.ID, record.FilePath, record.SizeBytes, record.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.Insert").
			Str("artifact_id", record.ID).
			Msg("failed to build insert query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "recordRepository.Insert").
			Str("artifact_id", record.ID).
			Msg("failed to insert artifact record")
		return fmt.Errorf("failed to insert artifact record (id=%s): %w", record.ID, err)
	}

	return nil
}

func (r *recordRepository) SelectAll(ctx context.Context) ([]models.StoredRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(recordColumns...).
		From(artifactsTable).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.SelectAll").
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.SelectAll").
			Msg("failed to query artifact records")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.StoredRecord

	for rows.Next() {
		var record models.StoredRecord

		if scanErr := rows.Scan(&record.ID, &record.FilePath, &record.SizeBytes, &record.CreatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "recordRepository.SelectAll").
				Msg("failed to scan artifact record row")
			return nil, fmt.Errorf("failed to scan artifact record row: %w", scanErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "recordRepository.SelectAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating artifact record rows: %w", rowsErr)
	}

	return records, nil
}

func (r *recordRepository) SelectByID(ctx context.Context, id string) (models.StoredRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(recordColumns...).
		From(artifactsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.SelectByID").
			Str("artifact_id", id).
			Msg("failed to build select query")
		return models.StoredRecord{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var record models.StoredRecord
	row := r.DB.QueryRowContext(ctx, query, args...)

	scanErr := row.Scan(&record.ID, &record.FilePath, &record.SizeBytes, &record.CreatedAt)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.StoredRecord{}, fmt.Errorf("%w: id=%s", ErrRecordNotFound, id)
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "recordRepository.SelectByID").
			Str("artifact_id", id).
			Msg("failed to scan artifact record row")
		return models.StoredRecord{}, fmt.Errorf("failed to scan artifact record row: %w", scanErr)
	}

	return record, nil
}
