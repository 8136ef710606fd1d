// internal/workers/revenue/distribute-revenue/handler_test.go
package distributerevenue

import (
	"context"
	"database/sql"
	stderrors "errors"
	"testing"
	"time"

	"marketplace-workers/internal/common/config"
	"marketplace-workers/internal/common/errors"
	"marketplace-workers/internal/common/logger"
	"marketplace-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Mock Implementations
// ==========================

type MockPublisher struct {
	PublishEventFunc func(ctx context.Context, eventType string, payload interface{}) (string, error)
	calls            int
}

func (m *MockPublisher) PublishEvent(ctx context.Context, eventType string, payload interface{}) (string, error) {
	m.calls++
	return m.PublishEventFunc(ctx, eventType, payload)
}

// ==========================
// Test Helper Functions
// ==========================

var fixedTime = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func createTestHandler(t *testing.T, db *sql.DB, publisher EventPublisher) *Handler {
	h, err := NewHandler(DefaultConfig(), db, publisher, logger.NewTestLogger(t))
	require.NoError(t, err)
	h.newID = func() string { return "dist-1" }
	h.now = func() time.Time { return fixedTime }
	return h
}

func createTestInput() *Input {
	return &Input{
		PaymentID:   "pay_1",
		ModuleID:    "energy_efficiency",
		CreatorID:   "creator-1",
		CommunityID: "community-1",
		TotalAmount: 1000,
	}
}

func expectDistributionInsert(mock sqlmock.Sqlmock, in *Input, split models.RevenueSplit, affected int64) {
	mock.ExpectExec("INSERT INTO revenue_distributions").
		WithArgs("dist-1", in.PaymentID, in.ModuleID, sqlmock.AnyArg(), sqlmock.AnyArg(), in.TotalAmount,
			split.CreatorAmount, split.CommunityAmount, split.PlatformAmount, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, affected))
}

func expectExistingDistribution(mock sqlmock.Sqlmock, paymentID, id string, split models.RevenueSplit) {
	mock.ExpectQuery("SELECT id, creator_amount_mxn, community_amount_mxn, platform_amount_mxn").
		WithArgs(paymentID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "creator_amount_mxn", "community_amount_mxn", "platform_amount_mxn"}).
			AddRow(id, split.CreatorAmount, split.CommunityAmount, split.PlatformAmount))
}

func requireCode(t *testing.T, err error, code errors.ErrorCode) *errors.StandardError {
	t.Helper()
	var stdErr *errors.StandardError
	require.True(t, stderrors.As(err, &stdErr), "expected StandardError, got %v", err)
	assert.Equal(t, code, stdErr.Code)
	return stdErr
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_DefaultSplit(t *testing.T) {
	db, mock := setupMockDB(t)
	publisher := &MockPublisher{
		PublishEventFunc: func(ctx context.Context, eventType string, payload interface{}) (string, error) {
			assert.Equal(t, EventRevenueDistributed, eventType)
			event, ok := payload.(DistributedEvent)
			require.True(t, ok)
			assert.Equal(t, "pay_1", event.PaymentID)
			assert.Equal(t, fixedTime, event.DistributedAt)
			return "msg-1", nil
		},
	}
	handler := createTestHandler(t, db, publisher)
	input := createTestInput()
	split := models.RevenueSplit{CreatorAmount: 200, CommunityAmount: 500, PlatformAmount: 300}

	mock.ExpectBegin()
	expectDistributionInsert(mock, input, split, 1)
	mock.ExpectExec("INSERT INTO wallets").
		WithArgs("creator-1", OwnerCreator, int64(200), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO wallets").
		WithArgs("community-1", OwnerCommunity, int64(500), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	out, err := handler.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "dist-1", out.DistributionID)
	assert.Equal(t, split, out.Split)
	assert.False(t, out.AlreadyProcessed)
	assert.Equal(t, 1, publisher.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_CreatorDonatesSkipsCreatorWallet(t *testing.T) {
	db, mock := setupMockDB(t)
	handler := createTestHandler(t, db, nil)
	input := createTestInput()
	input.CreatorDonates = true
	input.TotalAmount = 999
	split := models.RevenueSplit{CreatorAmount: 0, CommunityAmount: 799, PlatformAmount: 200}

	mock.ExpectBegin()
	expectDistributionInsert(mock, input, split, 1)
	mock.ExpectExec("INSERT INTO wallets").
		WithArgs("community-1", OwnerCommunity, int64(799), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	out, err := handler.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, split, out.Split)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_PlatformModuleCreditsNoWallet(t *testing.T) {
	db, mock := setupMockDB(t)
	handler := createTestHandler(t, db, nil)
	input := &Input{PaymentID: "pay_2", ModuleID: "integration", TotalAmount: 45000, IsPlatformModule: true}
	split := models.RevenueSplit{PlatformAmount: 45000}

	mock.ExpectBegin()
	expectDistributionInsert(mock, input, split, 1)
	mock.ExpectCommit()

	out, err := handler.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, split, out.Split)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_DuplicatePaymentIsNotCreditedTwice(t *testing.T) {
	db, mock := setupMockDB(t)
	publisher := &MockPublisher{
		PublishEventFunc: func(ctx context.Context, eventType string, payload interface{}) (string, error) {
			return "", nil
		},
	}
	handler := createTestHandler(t, db, publisher)
	input := createTestInput()
	split := models.RevenueSplit{CreatorAmount: 200, CommunityAmount: 500, PlatformAmount: 300}

	mock.ExpectBegin()
	expectDistributionInsert(mock, input, split, 0)
	expectExistingDistribution(mock, "pay_1", "dist-original", split)
	mock.ExpectCommit()

	out, err := handler.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, out.AlreadyProcessed)
	assert.Equal(t, "dist-original", out.DistributionID)
	assert.Equal(t, split, out.Split)
	assert.Equal(t, 0, publisher.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_DuplicateReturnsRecordedSplit(t *testing.T) {
	db, mock := setupMockDB(t)
	handler := createTestHandler(t, db, nil)

	// First delivery recorded 1000; the retry arrives with 5000.
	recorded := models.RevenueSplit{CreatorAmount: 200, CommunityAmount: 500, PlatformAmount: 300}
	input := createTestInput()
	input.TotalAmount = 5000
	retrySplit := models.RevenueSplit{CreatorAmount: 1000, CommunityAmount: 2500, PlatformAmount: 1500}

	mock.ExpectBegin()
	expectDistributionInsert(mock, input, retrySplit, 0)
	expectExistingDistribution(mock, "pay_1", "dist-original", recorded)
	mock.ExpectCommit()

	out, err := handler.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, out.AlreadyProcessed)
	assert.Equal(t, "dist-original", out.DistributionID)
	assert.Equal(t, recorded, out.Split)
	assert.Equal(t, int64(1000), out.Split.CreatorAmount+out.Split.CommunityAmount+out.Split.PlatformAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_RejectDuplicates(t *testing.T) {
	db, mock := setupMockDB(t)
	handler := createTestHandler(t, db, nil)
	handler.config.RejectDuplicates = true
	input := createTestInput()
	split := models.RevenueSplit{CreatorAmount: 200, CommunityAmount: 500, PlatformAmount: 300}

	mock.ExpectBegin()
	expectDistributionInsert(mock, input, split, 0)
	expectExistingDistribution(mock, "pay_1", "dist-original", split)
	mock.ExpectCommit()

	_, err := handler.Execute(context.Background(), input)

	stdErr := requireCode(t, err, errors.ErrCodeDuplicatePayment)
	assert.False(t, stdErr.Retryable)
}

func TestHandler_Execute_PublishFailureDoesNotFailJob(t *testing.T) {
	db, mock := setupMockDB(t)
	publisher := &MockPublisher{
		PublishEventFunc: func(ctx context.Context, eventType string, payload interface{}) (string, error) {
			return "", stderrors.New("sns unavailable")
		},
	}
	handler := createTestHandler(t, db, publisher)
	input := &Input{PaymentID: "pay_3", ModuleID: "integration", TotalAmount: 100, IsPlatformModule: true}

	mock.ExpectBegin()
	expectDistributionInsert(mock, input, models.RevenueSplit{PlatformAmount: 100}, 1)
	mock.ExpectCommit()

	out, err := handler.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(100), out.Split.PlatformAmount)
	assert.Equal(t, 1, publisher.calls)
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_WalletFailureRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	handler := createTestHandler(t, db, nil)
	input := createTestInput()
	split := models.RevenueSplit{CreatorAmount: 200, CommunityAmount: 500, PlatformAmount: 300}

	mock.ExpectBegin()
	expectDistributionInsert(mock, input, split, 1)
	mock.ExpectExec("INSERT INTO wallets").
		WithArgs("creator-1", OwnerCreator, int64(200), sqlmock.AnyArg()).
		WillReturnError(stderrors.New("deadlock detected"))
	mock.ExpectRollback()

	_, err := handler.Execute(context.Background(), input)

	stdErr := requireCode(t, err, errors.ErrCodeLedgerWriteFailed)
	assert.True(t, stdErr.Retryable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_InvalidInput(t *testing.T) {
	handler := createTestHandler(t, nil, nil)

	tests := []struct {
		name   string
		modify func(*Input)
	}{
		{"missing payment id", func(in *Input) { in.PaymentID = "" }},
		{"negative total", func(in *Input) { in.TotalAmount = -1 }},
		{"missing community", func(in *Input) { in.CommunityID = "" }},
		{"missing creator", func(in *Input) { in.CreatorID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := createTestInput()
			tt.modify(input)
			_, err := handler.Execute(context.Background(), input)
			requireCode(t, err, errors.ErrCodeInvalidRevenueInput)
		})
	}
}

func TestValidateInput_DonatingCreatorNeedsNoCreatorID(t *testing.T) {
	input := createTestInput()
	input.CreatorID = ""
	input.CreatorDonates = true

	assert.NoError(t, validateInput(input))
}

// ==========================
// Configuration Tests
// ==========================

func TestNewConfig_RevenueSettings(t *testing.T) {
	wc := config.WorkerConfig{Enabled: true, MaxJobsActive: 2, Timeout: 5000}

	cfg := NewConfig(wc, config.RevenueConfig{EventType: "revenue.split", RejectDuplicates: true})

	assert.Equal(t, 2, cfg.MaxJobsActive)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "revenue.split", cfg.EventType)
	assert.True(t, cfg.RejectDuplicates)
	assert.NoError(t, cfg.Validate())
}

func TestNewHandler_InvalidConfig(t *testing.T) {
	db, _ := setupMockDB(t)
	tests := []struct {
		name    string
		wc      config.WorkerConfig
		rc      config.RevenueConfig
		message string
	}{
		{"empty event type", config.WorkerConfig{Enabled: true}, config.RevenueConfig{}, "event_type is required"},
		{"negative timeout", config.WorkerConfig{Enabled: true, Timeout: -1}, config.RevenueConfig{EventType: EventRevenueDistributed}, "timeout must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, err := NewHandler(NewConfig(tt.wc, tt.rc), db, nil, logger.NewTestLogger(t))
			assert.Nil(t, handler)
			assert.ErrorContains(t, err, tt.message)
		})
	}
}
