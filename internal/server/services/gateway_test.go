package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/cryptox"
	"github.com/dmitrijs2005/timevault/internal/logging"
	"github.com/dmitrijs2005/timevault/internal/server/blob"
	"github.com/dmitrijs2005/timevault/internal/server/config"
	"github.com/dmitrijs2005/timevault/internal/server/models"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadRetrieve_OneMiB(t *testing.T) {
	f := newFixture(t, nil, nil)
	data := randomBytes(t, 1<<20)

	rec, err := f.svc.Upload(context.Background(), &models.UploadRequest{
		Data:        data,
		FileName:    "blob.bin",
		ContentType: "application/x-test",
		Duration:    3600 * time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, testStart.Add(time.Hour), rec.ExpiresAt)
	assert.True(t, blob.ValidHandle(rec.Handle))

	got, err := f.svc.Retrieve(context.Background(), rec.Handle)
	require.NoError(t, err)
	assert.Equal(t, data, got.Data)
	assert.Equal(t, "blob.bin", got.FileName)
	assert.Equal(t, "application/x-test", got.ContentType)

	obj, err := f.repos.Custody(nil).Get(context.Background(), rec.Handle)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRegistered, obj.Status)
}

func TestUpload_StoresOnlyCiphertext(t *testing.T) {
	f := newFixture(t, nil, nil)
	data := []byte("plain words that must not be stored")

	h := upload(t, f, data, time.Minute)

	sealed, err := f.blobs.Repository.Get(context.Background(), h)
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), string(data))
	assert.Len(t, sealed, cryptox.NonceSize+len(data)+cryptox.TagSize)
}

func TestUpload_DefaultsContentType(t *testing.T) {
	f := newFixture(t, nil, nil)
	rec, err := f.svc.Upload(context.Background(), &models.UploadRequest{Data: []byte("x"), Duration: time.Minute})
	require.NoError(t, err)

	got, err := f.svc.Retrieve(context.Background(), rec.Handle)
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", got.ContentType)
}

func TestUpload_InvalidRequests(t *testing.T) {
	f := newFixture(t, nil, func(c *config.Config) { c.MaxUploadBytes = 4 })
	ctx := context.Background()

	_, err := f.svc.Upload(ctx, nil)
	assert.ErrorIs(t, err, common.ErrInvalidRequest)

	_, err = f.svc.Upload(ctx, &models.UploadRequest{Data: []byte("x"), Duration: 0})
	assert.ErrorIs(t, err, common.ErrInvalidRequest)

	_, err = f.svc.Upload(ctx, &models.UploadRequest{Data: []byte("too big"), Duration: time.Minute})
	assert.ErrorIs(t, err, common.ErrInvalidRequest)
}

func TestUpload_SurvivesCallerCancellation(t *testing.T) {
	f := newFixture(t, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec, err := f.svc.Upload(ctx, &models.UploadRequest{Data: []byte("x"), Duration: time.Minute})
	require.NoError(t, err)

	_, err = f.repos.Custody(nil).Get(context.Background(), rec.Handle)
	assert.NoError(t, err)
	_, ok, err := f.repos.Custody(nil).LookupKey(context.Background(), rec.Handle)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestUpload_RegistrationFailureRollsBack(t *testing.T) {
	o := newSwitchOracle(true)
	o.registerErr = errBoom
	f := newFixture(t, o, nil)

	_, err := f.svc.Upload(context.Background(), &models.UploadRequest{Data: []byte("x"), Duration: time.Minute})
	assert.ErrorIs(t, err, common.ErrOracleUnavailable)
	assert.NotErrorIs(t, err, common.ErrRegistrationIncomplete)

	pending, err := f.repos.Custody(nil).ListPending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestUpload_RegistrationFailureLeavesPending(t *testing.T) {
	o := newSwitchOracle(true)
	o.registerErr = errBoom
	f := newFixture(t, o, func(c *config.Config) { c.RollbackOnRegistrationFailure = false })
	ctx := context.Background()

	_, err := f.svc.Upload(ctx, &models.UploadRequest{Data: []byte("x"), Duration: time.Minute})
	assert.ErrorIs(t, err, common.ErrRegistrationIncomplete)

	pending, err := f.repos.Custody(nil).ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	h := pending[0].Handle

	// the oracle would grant, but the handle was never registered
	_, err = f.svc.Retrieve(ctx, h)
	assert.ErrorIs(t, err, common.ErrRegistrationIncomplete)
	_, err = f.svc.IssueViewToken(ctx, h)
	assert.ErrorIs(t, err, common.ErrRegistrationIncomplete)
}

func TestUpload_RollbackFailureIsIncomplete(t *testing.T) {
	o := newSwitchOracle(true)
	o.registerErr = errBoom
	f := newFixture(t, o, nil)
	f.blobs.deleteErr = errBoom

	_, err := f.svc.Upload(context.Background(), &models.UploadRequest{Data: []byte("x"), Duration: time.Minute})
	assert.ErrorIs(t, err, common.ErrRegistrationIncomplete)
}

func TestRetrieve_DeniedNotUnavailable(t *testing.T) {
	f := newFixture(t, nil, nil)
	h := upload(t, f, []byte("secret"), time.Minute)

	f.clock.Advance(time.Minute)

	_, err := f.svc.Retrieve(context.Background(), h)
	assert.ErrorIs(t, err, common.ErrAccessDenied)
}

func TestRetrieve_UnknownHandleIsDenied(t *testing.T) {
	f := newFixture(t, nil, nil)

	_, err := f.svc.Retrieve(context.Background(), blob.HandleFor([]byte("never uploaded")))
	assert.ErrorIs(t, err, common.ErrAccessDenied)
}

func TestRetrieve_KeyEvictedWhileOracleGrants(t *testing.T) {
	f := newFixture(t, nil, nil)
	h := upload(t, f, []byte("secret"), time.Hour)

	require.NoError(t, f.repos.Custody(nil).Evict(context.Background(), h))

	_, err := f.svc.Retrieve(context.Background(), h)
	assert.ErrorIs(t, err, common.ErrContentUnavailable)
}

func TestRetrieve_BlobLost(t *testing.T) {
	f := newFixture(t, nil, nil)
	h := upload(t, f, []byte("secret"), time.Hour)

	require.NoError(t, f.blobs.Repository.Delete(context.Background(), h))

	_, err := f.svc.Retrieve(context.Background(), h)
	assert.ErrorIs(t, err, common.ErrContentUnavailable)
}

func TestRetrieve_TamperedCiphertext(t *testing.T) {
	f := newFixture(t, nil, nil)
	h := upload(t, f, []byte("secret"), time.Hour)
	f.blobs.tamper = true

	got, err := f.svc.Retrieve(context.Background(), h)
	assert.ErrorIs(t, err, common.ErrAuthenticationFailure)
	assert.Nil(t, got)
}

func TestRetrieve_OracleFailureFailsClosed(t *testing.T) {
	o := newSwitchOracle(true)
	f := newFixture(t, o, nil)
	h := upload(t, f, []byte("secret"), time.Hour)

	o.failChecks(errBoom)

	got, err := f.svc.Retrieve(context.Background(), h)
	assert.ErrorIs(t, err, common.ErrOracleUnavailable)
	assert.Nil(t, got)
}

func TestEvict_RemovesEverything(t *testing.T) {
	f := newFixture(t, nil, nil)
	ctx := context.Background()
	h := upload(t, f, []byte("secret"), time.Hour)

	_, err := f.svc.IssueViewToken(ctx, h)
	require.NoError(t, err)

	require.NoError(t, f.svc.Evict(ctx, h))

	_, err = f.repos.Custody(nil).Get(ctx, h)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, ok, _ := f.repos.Custody(nil).LookupKey(ctx, h)
	assert.False(t, ok)
	exists, _ := f.blobs.Exists(ctx, h)
	assert.False(t, exists)
	assert.Equal(t, 0, f.tokens().Len())

	assert.ErrorIs(t, f.svc.Evict(ctx, h), common.ErrContentUnavailable)

	_, err = f.svc.Retrieve(ctx, h)
	assert.ErrorIs(t, err, common.ErrContentUnavailable)
}

func TestEvict_PostgresRunsInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	master := cryptox.DeriveMasterKey([]byte("k"), []byte("s"))
	svc := NewGatewayService(db, repomanager.NewPostgresRepositoryManager(master), blob.NewMemoryRepository(),
		newSwitchOracle(true), cfg, nil, logging.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE\s+FROM\s+custody_objects`).WithArgs("h").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE\s+FROM\s+view_tokens\s+WHERE\s+handle`).WithArgs("h").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, svc.evict(context.Background(), "h"))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE\s+FROM\s+custody_objects`).WithArgs("h").WillReturnError(errBoom)
	mock.ExpectRollback()

	err = svc.evict(context.Background(), "h")
	assert.ErrorContains(t, err, "custody evict")
	require.NoError(t, mock.ExpectationsWereMet())
}
