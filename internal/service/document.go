package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"contracthub/internal/integrity"
	"contracthub/internal/model"
	"contracthub/internal/repository"
	"contracthub/internal/storage"
)

var (
	ErrContractNotFound   = errors.New("contract not found")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrFilenameRequired   = errors.New("a usable filename is required")
	ErrEmptyContent       = errors.New("document content is empty")
	ErrReaderNil          = errors.New("reader is nil")
	ErrVersionConflict    = errors.New("document version assignment conflicted; retry the upload")
	ErrStorageNameInvalid = errors.New("storage name is not confined to the upload root")
)

// VerificationResult reports an explicit integrity check of a stored document
// against its recorded digest.
type VerificationResult struct {
	StorageName    string `json:"storage_name"`
	RecordedSHA256 string `json:"recorded_sha256"`
	ComputedSHA256 string `json:"computed_sha256"`
	Match          bool   `json:"match"`
}

// DocumentService defines the document versioning and integrity use cases.
type DocumentService interface {
	// Upload stores one new revision for a contract: assigns the next
	// version, writes the bytes to object storage, and commits the metadata
	// row together with its audit event in one transaction. A lost race on
	// the version is retried once with a freshly computed version.
	Upload(ctx context.Context, contractID, filename string, r io.Reader, contentType, actor string) (*model.Document, error)

	// ListByContract returns a contract's revisions, newest version first.
	ListByContract(ctx context.Context, contractID string) ([]model.Document, error)

	// Download streams stored bytes by storage name. The name is validated
	// against the upload root only; there is no contract-scoping check.
	Download(ctx context.Context, storageName string) (io.ReadCloser, storage.ObjectInfo, error)

	// Verify rehashes the stored bytes and compares them to the digest
	// recorded at upload time.
	Verify(ctx context.Context, storageName string) (*VerificationResult, error)
}

type documentService struct {
	store     storage.Storage
	docs      repository.DocumentRepository
	contracts repository.ContractRepository
	audit     repository.AuditRepository
	tx        repository.TxManager
	retries   int
	tracer    trace.Tracer
}

// NewDocumentService constructs a new DocumentService. retries is the number
// of extra attempts after a version-assignment conflict (typically 1).
func NewDocumentService(
	store storage.Storage,
	docs repository.DocumentRepository,
	contracts repository.ContractRepository,
	audit repository.AuditRepository,
	tx repository.TxManager,
	retries int,
) DocumentService {
	if retries < 0 {
		retries = 0
	}
	return &documentService{
		store:     store,
		docs:      docs,
		contracts: contracts,
		audit:     audit,
		tx:        tx,
		retries:   retries,
		tracer:    otel.Tracer("contracthub/internal/service"),
	}
}

func (s *documentService) Upload(ctx context.Context, contractID, filename string, r io.Reader, contentType, actor string) (*model.Document, error) {
	ctx, span := s.tracer.Start(ctx, "DocumentService.Upload")
	defer span.End()

	if r == nil {
		return nil, ErrReaderNil
	}
	sanitized := SanitizeFilename(filename)
	if sanitized == "" {
		return nil, ErrFilenameRequired
	}

	// Buffer the content up front: the request boundary caps the size, and a
	// conflict retry needs to rewrite the object under a new name. A read
	// failure here aborts before anything is persisted.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload content: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyContent
	}

	exists, err := s.contracts.Exists(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("check contract: %w", err)
	}
	if !exists {
		return nil, ErrContractNotFound
	}

	// The digest covers exactly the buffer handed to storage with an exact
	// size, so recorded metadata always matches the written bytes.
	digest := integrity.DigestBytes(data)

	for attempt := 0; ; attempt++ {
		version, err := s.docs.NextVersion(ctx, contractID)
		if err != nil {
			return nil, fmt.Errorf("compute next version: %w", err)
		}
		name := StorageName(contractID, version, sanitized)

		if _, err := s.store.Put(ctx, name, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
			return nil, fmt.Errorf("upload to storage: %w", err)
		}

		doc := &model.Document{
			ID:          uuid.NewString(),
			ContractID:  contractID,
			Filename:    sanitized,
			StorageName: name,
			Version:     version,
			UploadedAt:  time.Now().UTC(),
			SHA256:      digest,
		}

		var stored *model.Document
		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			var createErr error
			if stored, createErr = s.docs.Create(txCtx, doc); createErr != nil {
				return createErr
			}
			details := fmt.Sprintf("Document %s v%d", sanitized, version)
			return s.audit.Append(txCtx, newAuditEvent(&contractID, "Uploaded document", actor, details))
		})
		if err == nil {
			return stored, nil
		}

		// The row never landed: remove the object so nothing addressable
		// references bytes without metadata.
		if delErr := s.store.Delete(ctx, name); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}

		switch {
		case errors.Is(err, repository.ErrVersionConflict) && attempt < s.retries:
			// Lost the race: another upload took this version. Recompute.
			continue
		case errors.Is(err, repository.ErrVersionConflict):
			return nil, ErrVersionConflict
		case errors.Is(err, repository.ErrMissingContract):
			return nil, ErrContractNotFound
		default:
			return nil, fmt.Errorf("db save failed: %w", err)
		}
	}
}

func (s *documentService) ListByContract(ctx context.Context, contractID string) ([]model.Document, error) {
	exists, err := s.contracts.Exists(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrContractNotFound
	}
	return s.docs.ListByContract(ctx, contractID)
}

func (s *documentService) Download(ctx context.Context, storageName string) (io.ReadCloser, storage.ObjectInfo, error) {
	if !ValidStorageName(storageName) {
		return nil, storage.ObjectInfo{}, ErrStorageNameInvalid
	}
	return s.store.Get(ctx, storageName)
}

func (s *documentService) Verify(ctx context.Context, storageName string) (*VerificationResult, error) {
	if !ValidStorageName(storageName) {
		return nil, ErrStorageNameInvalid
	}
	doc, err := s.docs.FindByStorageName(ctx, storageName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	rc, _, err := s.store.Get(ctx, storageName)
	if err != nil {
		return nil, fmt.Errorf("read stored bytes: %w", err)
	}
	defer rc.Close()

	computed, err := integrity.DigestReader(rc)
	if err != nil {
		return nil, fmt.Errorf("rehash stored bytes: %w", err)
	}

	return &VerificationResult{
		StorageName:    storageName,
		RecordedSHA256: doc.SHA256,
		ComputedSHA256: computed,
		Match:          computed == doc.SHA256,
	}, nil
}
