// Package services contains the gateway's business logic: upload and
// retrieval of time-locked files, view token issuance and redemption, and
// reconciliation of uploads whose oracle registration did not complete.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/cryptox"
	"github.com/dmitrijs2005/timevault/internal/dbx"
	"github.com/dmitrijs2005/timevault/internal/logging"
	"github.com/dmitrijs2005/timevault/internal/server/blob"
	"github.com/dmitrijs2005/timevault/internal/server/config"
	"github.com/dmitrijs2005/timevault/internal/server/models"
	"github.com/dmitrijs2005/timevault/internal/server/oracle"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/timevault/internal/timex"
)

const defaultContentType = "application/octet-stream"

// GatewayService orchestrates the cipher, the key custodian, the blob
// repository, the access oracle and the view token issuer.
type GatewayService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       blob.Repository
	oracle      oracle.Oracle
	issuer      *Issuer
	clock       timex.Clock
	log         logging.Logger

	blobTimeout    time.Duration
	maxUploadBytes int64
	rollback       bool
}

// NewGatewayService wires the gateway. db may be nil when the repository
// manager is memory backed.
func NewGatewayService(db *sql.DB, m repomanager.RepositoryManager, blobs blob.Repository, o oracle.Oracle,
	cfg *config.Config, clock timex.Clock, log logging.Logger) *GatewayService {
	if clock == nil {
		clock = timex.SystemClock{}
	}
	s := &GatewayService{
		db:             db,
		repomanager:    m,
		blobs:          blobs,
		oracle:         o,
		clock:          clock,
		log:            log.With("module", "gateway"),
		blobTimeout:    cfg.BlobTimeout,
		maxUploadBytes: cfg.MaxUploadBytes,
		rollback:       cfg.RollbackOnRegistrationFailure,
	}
	s.issuer = NewIssuer(m.Tokens(s.custodyDB()), o, s.contentAvailable, cfg.ViewTokenTTL, clock, log)
	return s
}

// custodyDB returns the handle repositories should run against. A nil
// *sql.DB must not be passed on as a non-nil dbx.DBTX.
func (s *GatewayService) custodyDB() dbx.DBTX {
	if s.db == nil {
		return nil
	}
	return s.db
}

func (s *GatewayService) withBlobTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.blobTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.blobTimeout)
}

// Upload encrypts req.Data under a fresh key, stores ciphertext and key, and
// registers the access window with the oracle. The custodial steps run on a
// context detached from the caller, so an abandoned request cannot leave a
// descriptor without its key.
func (s *GatewayService) Upload(ctx context.Context, req *models.UploadRequest) (*models.UploadReceipt, error) {
	if req == nil || req.Duration < time.Second {
		return nil, fmt.Errorf("%w: duration must be at least one second", common.ErrInvalidRequest)
	}
	if s.maxUploadBytes > 0 && int64(len(req.Data)) > s.maxUploadBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", common.ErrInvalidRequest, s.maxUploadBytes)
	}

	ctx = context.WithoutCancel(ctx)

	key, err := cryptox.GenerateKey()
	if err != nil {
		return nil, err
	}
	defer key.Wipe()

	sealed, err := cryptox.Seal(req.Data, key)
	if err != nil {
		return nil, fmt.Errorf("seal: %w", err)
	}

	bctx, cancel := s.withBlobTimeout(ctx)
	handle, err := s.blobs.Put(bctx, sealed)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("store ciphertext: %w", err)
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	now := s.clock.Now()
	obj := &models.EncryptedObject{
		Handle:      handle,
		FileName:    req.FileName,
		ContentType: contentType,
		Size:        int64(len(req.Data)),
		Duration:    req.Duration,
		CreatedAt:   now,
		Status:      models.StatusPending,
	}

	custody := s.repomanager.Custody(s.custodyDB())
	if err := custody.Save(ctx, obj, key); err != nil {
		if !errors.Is(err, common.ErrorAlreadyExists) {
			s.deleteBlob(ctx, handle)
		}
		return nil, fmt.Errorf("custody save: %w", err)
	}

	if err := s.oracle.Register(ctx, handle, req.Duration); err != nil {
		return nil, s.registrationFailed(ctx, handle, err)
	}

	if err := custody.MarkRegistered(ctx, handle); err != nil {
		s.log.Error(ctx, "registered with oracle but status not updated", "handle", handle, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrRegistrationIncomplete, err)
	}

	s.log.Info(ctx, "file uploaded", "handle", handle, "size", obj.Size, "duration", req.Duration.String())
	return &models.UploadReceipt{Handle: handle, ExpiresAt: obj.ExpiresAt()}, nil
}

func (s *GatewayService) registrationFailed(ctx context.Context, handle string, regErr error) error {
	if !errors.Is(regErr, common.ErrOracleUnavailable) {
		regErr = fmt.Errorf("%w: %w", common.ErrOracleUnavailable, regErr)
	}

	if !s.rollback {
		s.log.Warn(ctx, "oracle registration failed, handle left pending", "handle", handle, "error", regErr)
		return fmt.Errorf("%w: %w", common.ErrRegistrationIncomplete, regErr)
	}

	if err := s.evict(ctx, handle); err != nil {
		s.log.Error(ctx, "rollback after failed registration failed", "handle", handle, "error", err)
		return fmt.Errorf("%w: rollback failed: %v", common.ErrRegistrationIncomplete, err)
	}

	s.log.Warn(ctx, "oracle registration failed, upload rolled back", "handle", handle, "error", regErr)
	return fmt.Errorf("upload rolled back: %w", regErr)
}

// Retrieve decrypts handle if the oracle grants access now. Nothing is
// mutated.
func (s *GatewayService) Retrieve(ctx context.Context, handle string) (*models.Content, error) {
	if err := s.ensureRegistered(ctx, handle); err != nil {
		return nil, err
	}
	if err := checkAccess(ctx, s.oracle, handle); err != nil {
		return nil, err
	}
	return s.open(ctx, handle)
}

// IssueViewToken mints a single-use token for handle.
func (s *GatewayService) IssueViewToken(ctx context.Context, handle string) (*models.ViewToken, error) {
	if err := s.ensureRegistered(ctx, handle); err != nil {
		return nil, err
	}
	return s.issuer.Issue(ctx, handle)
}

// View redeems tokenID and decrypts handle. Once redemption succeeded the
// token is gone, whatever the decryption outcome.
func (s *GatewayService) View(ctx context.Context, handle, tokenID string) (*models.Content, error) {
	if _, err := s.issuer.Redeem(ctx, tokenID, handle); err != nil {
		return nil, err
	}
	return s.open(ctx, handle)
}

// Evict removes the object, its key, its outstanding view tokens and its
// ciphertext.
func (s *GatewayService) Evict(ctx context.Context, handle string) error {
	if _, err := s.repomanager.Custody(s.custodyDB()).Get(ctx, handle); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrContentUnavailable
		}
		return fmt.Errorf("custody get: %w", err)
	}
	if err := s.evict(context.WithoutCancel(ctx), handle); err != nil {
		return err
	}
	s.log.Info(ctx, "file evicted", "handle", handle)
	return nil
}

func (s *GatewayService) evict(ctx context.Context, handle string) error {
	drop := func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Custody(tx).Evict(ctx, handle); err != nil {
			return fmt.Errorf("custody evict: %w", err)
		}
		if err := s.repomanager.Tokens(tx).DeleteByHandle(ctx, handle); err != nil {
			return fmt.Errorf("token purge: %w", err)
		}
		return nil
	}

	var err error
	if s.db != nil {
		err = dbx.WithTx(ctx, s.db, nil, drop)
	} else {
		err = drop(ctx, nil)
	}
	if err != nil {
		return err
	}

	bctx, cancel := s.withBlobTimeout(ctx)
	defer cancel()
	if err := s.blobs.Delete(bctx, handle); err != nil {
		return fmt.Errorf("blob delete: %w", err)
	}
	return nil
}

func (s *GatewayService) deleteBlob(ctx context.Context, handle string) {
	bctx, cancel := s.withBlobTimeout(ctx)
	defer cancel()
	if err := s.blobs.Delete(bctx, handle); err != nil {
		s.log.Warn(ctx, "orphaned ciphertext", "handle", handle, "error", err)
	}
}

// ensureRegistered fails with ErrRegistrationIncomplete for a pending
// handle. Unknown handles pass so the oracle decides the denial reason.
func (s *GatewayService) ensureRegistered(ctx context.Context, handle string) error {
	obj, err := s.repomanager.Custody(s.custodyDB()).Get(ctx, handle)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return fmt.Errorf("custody get: %w", err)
	}
	if obj.Status == models.StatusPending {
		return common.ErrRegistrationIncomplete
	}
	return nil
}

// contentAvailable checks descriptor, key and ciphertext without
// decrypting.
func (s *GatewayService) contentAvailable(ctx context.Context, handle string) error {
	custody := s.repomanager.Custody(s.custodyDB())

	if _, err := custody.Get(ctx, handle); err != nil {
		return s.unavailable(err, "custody get")
	}
	key, ok, err := custody.LookupKey(ctx, handle)
	if err != nil {
		return fmt.Errorf("key lookup: %w", err)
	}
	if !ok {
		return common.ErrContentUnavailable
	}
	key.Wipe()

	bctx, cancel := s.withBlobTimeout(ctx)
	defer cancel()
	exists, err := s.blobs.Exists(bctx, handle)
	if err != nil {
		return fmt.Errorf("blob exists: %w", err)
	}
	if !exists {
		return common.ErrContentUnavailable
	}
	return nil
}

func (s *GatewayService) open(ctx context.Context, handle string) (*models.Content, error) {
	custody := s.repomanager.Custody(s.custodyDB())

	obj, err := custody.Get(ctx, handle)
	if err != nil {
		return nil, s.unavailable(err, "custody get")
	}

	key, ok, err := custody.LookupKey(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("key lookup: %w", err)
	}
	if !ok {
		return nil, common.ErrContentUnavailable
	}
	defer key.Wipe()

	bctx, cancel := s.withBlobTimeout(ctx)
	sealed, err := s.blobs.Get(bctx, handle)
	cancel()
	if err != nil {
		return nil, s.unavailable(err, "blob get")
	}

	plaintext, err := cryptox.Open(sealed, key)
	if err != nil {
		s.log.Error(ctx, "ciphertext failed authentication", "handle", handle)
		return nil, err
	}

	return &models.Content{
		Handle:      handle,
		FileName:    obj.FileName,
		ContentType: obj.ContentType,
		Data:        plaintext,
	}, nil
}

func (s *GatewayService) unavailable(err error, op string) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrContentUnavailable
	}
	return fmt.Errorf("%s: %w", op, err)
}
