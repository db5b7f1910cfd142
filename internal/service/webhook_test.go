package service_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"brokerage-backoffice/internal/config"
	"brokerage-backoffice/internal/database/models"
	apperrors "brokerage-backoffice/internal/errors"
	"brokerage-backoffice/internal/mocks"
	"brokerage-backoffice/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newDispatcherFixture(t *testing.T) (*service.WebhookDispatcher, *mocks.MockWebhookSettingRepositoryInterface) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWebhookSettingRepositoryInterface(ctrl)
	dispatcher := service.NewWebhookDispatcher(repo, &config.Config{WebhookTimeoutSec: 5})
	return dispatcher, repo
}

func activeSetting(targetURL, secret string) models.WebhookSetting {
	return models.WebhookSetting{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Event:     models.WebhookEventTransactionCreated,
		TargetURL: targetURL,
		Secret:    secret,
		IsActive:  true,
	}
}

func TestDispatchDeliversPayload(t *testing.T) {
	received := make(chan []byte, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		received <- body
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dispatcher, repo := newDispatcherFixture(t)
	repo.EXPECT().GetActiveByEvent(models.WebhookEventTransactionCreated).
		Return([]models.WebhookSetting{activeSetting(server.URL, "")}, nil)

	dispatcher.Dispatch(models.WebhookEventTransactionCreated, map[string]string{"transaction_id": "abc"})

	body := <-received
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "transaction.created", envelope["event"])
	assert.NotEmpty(t, envelope["timestamp"])
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "abc", data["transaction_id"])
}

func TestDispatchSignsPayload(t *testing.T) {
	const secret = "hook-secret"

	type delivery struct {
		body      []byte
		signature string
	}
	received := make(chan delivery, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- delivery{body: body, signature: r.Header.Get("X-Webhook-Signature")}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dispatcher, repo := newDispatcherFixture(t)
	repo.EXPECT().GetActiveByEvent(models.WebhookEventTransactionCreated).
		Return([]models.WebhookSetting{activeSetting(server.URL, secret)}, nil)

	dispatcher.Dispatch(models.WebhookEventTransactionCreated, map[string]string{"transaction_id": "abc"})

	got := <-received
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(got.body)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), got.signature)
}

func TestDispatchContinuesAfterFailedTarget(t *testing.T) {
	received := make(chan struct{}, 1)
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- struct{}{}
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	dispatcher, repo := newDispatcherFixture(t)
	repo.EXPECT().GetActiveByEvent(models.WebhookEventTransactionCreated).
		Return([]models.WebhookSetting{
			activeSetting(failing.URL, ""),
			activeSetting(healthy.URL, ""),
		}, nil)

	dispatcher.Dispatch(models.WebhookEventTransactionCreated, map[string]string{"transaction_id": "abc"})

	select {
	case <-received:
	default:
		t.Fatal("healthy target never received the event")
	}
}

func TestDispatchNoSubscribers(t *testing.T) {
	dispatcher, repo := newDispatcherFixture(t)
	repo.EXPECT().GetActiveByEvent(models.WebhookEventRevenueShareComputed).
		Return(nil, nil)

	// Must not panic or call any target
	dispatcher.Dispatch(models.WebhookEventRevenueShareComputed, nil)
}

func TestWebhookSettingServiceCreate(t *testing.T) {
	t.Run("creates an active setting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockWebhookSettingRepositoryInterface(ctrl)
		repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(setting *models.WebhookSetting) error {
			setting.ID = uuid.New()
			return nil
		})

		svc := service.NewWebhookSettingService(repo, validator.New())
		resp, err := svc.Create(&service.CreateWebhookSettingRequest{
			Event:     models.WebhookEventTransactionCreated,
			TargetURL: "https://hooks.example.com/endpoint",
		})

		require.NoError(t, err)
		assert.Equal(t, models.WebhookEventTransactionCreated, resp.Event)
		assert.True(t, resp.IsActive)
	})

	t.Run("rejects unknown event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockWebhookSettingRepositoryInterface(ctrl)

		svc := service.NewWebhookSettingService(repo, validator.New())
		_, err := svc.Create(&service.CreateWebhookSettingRequest{
			Event:     "agent.sneezed",
			TargetURL: "https://hooks.example.com/endpoint",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("rejects invalid URL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockWebhookSettingRepositoryInterface(ctrl)

		svc := service.NewWebhookSettingService(repo, validator.New())
		_, err := svc.Create(&service.CreateWebhookSettingRequest{
			Event:     models.WebhookEventTransactionCreated,
			TargetURL: "not-a-url",
		})

		assert.Error(t, err)
	})
}

func TestWebhookSettingServiceUpdate(t *testing.T) {
	t.Run("updates fields selectively", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockWebhookSettingRepositoryInterface(ctrl)
		setting := activeSetting("https://hooks.example.com/old", "")
		repo.EXPECT().GetByID(setting.ID).Return(&setting, nil)
		repo.EXPECT().Update(gomock.Any()).Return(nil)

		svc := service.NewWebhookSettingService(repo, validator.New())
		isActive := false
		resp, err := svc.Update(setting.ID, &service.UpdateWebhookSettingRequest{IsActive: &isActive})

		require.NoError(t, err)
		assert.False(t, resp.IsActive)
		assert.Equal(t, "https://hooks.example.com/old", resp.TargetURL)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockWebhookSettingRepositoryInterface(ctrl)
		id := uuid.New()
		repo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		svc := service.NewWebhookSettingService(repo, validator.New())
		_, err := svc.Update(id, &service.UpdateWebhookSettingRequest{})

		assert.ErrorIs(t, err, apperrors.ErrWebhookSettingNotFound)
	})
}

func TestWebhookSettingServiceDelete(t *testing.T) {
	t.Run("deletes an existing setting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockWebhookSettingRepositoryInterface(ctrl)
		setting := activeSetting("https://hooks.example.com/endpoint", "")
		repo.EXPECT().GetByID(setting.ID).Return(&setting, nil)
		repo.EXPECT().Delete(setting.ID).Return(nil)

		svc := service.NewWebhookSettingService(repo, validator.New())
		err := svc.Delete(setting.ID)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockWebhookSettingRepositoryInterface(ctrl)
		id := uuid.New()
		repo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		svc := service.NewWebhookSettingService(repo, validator.New())
		err := svc.Delete(id)

		assert.ErrorIs(t, err, apperrors.ErrWebhookSettingNotFound)
	})
}
