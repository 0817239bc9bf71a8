// Package propagation は顧客のネットワークパスワードを割り当てルーターへ反映する。
//
// ライフサイクルフックと異なり、失敗は型付きエラーとして呼び出し元へ返す。再試行は行わない。
package propagation

import (
	"context"
	"log/slog"
	"time"

	"github.com/oyaguma3/radsync/apps/sync-server/internal/audit"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/config"
	"github.com/oyaguma3/radsync/pkg/apperr"
	"github.com/oyaguma3/radsync/pkg/comment"
	"github.com/oyaguma3/radsync/pkg/logging"
	"github.com/oyaguma3/radsync/pkg/model"
)

// Service はパスワード反映サービス
type Service struct {
	device   DeviceClient
	recorder AuditRecorder
	fields   *logging.CommonFields
	timeout  time.Duration
}

// NewService は新しいServiceを生成する。recorder と masker は nil でもよい。
func NewService(device DeviceClient, recorder AuditRecorder, masker *logging.Masker) *Service {
	return &Service{
		device:   device,
		recorder: recorder,
		fields:   logging.NewCommonFields(masker),
		timeout:  config.DeviceCallTimeout,
	}
}

// UpdatePassword は割り当てルーターのPPPシークレットのパスワードとコメントを更新する。
// 顧客にルーターが割り当てられていない場合は ErrNoRouterAssigned、
// 指定ルーターが割り当てと異なる場合は ErrRouterMismatch を返す。
func (s *Service) UpdatePassword(ctx context.Context, customer *model.Customer, router *model.Router, newPassword string) error {
	if customer == nil {
		return apperr.NewValidationError("customer", "customer is required")
	}
	if customer.Username == "" {
		return apperr.NewValidationError("username", "username is required")
	}
	if newPassword == "" {
		return apperr.NewValidationError("password", "password is required")
	}
	if router == nil || customer.RouterID == nil {
		return apperr.ErrNoRouterAssigned
	}
	if *customer.RouterID != router.ID {
		return apperr.ErrRouterMismatch
	}

	annotation := comment.Encode(comment.FieldsFromCustomer(customer))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	err := s.device.SetSubscriberSecret(ctx, router, customer.Username, newPassword, annotation)
	latencyMs := time.Since(start).Milliseconds()

	rec := audit.Record{
		Operation:  audit.OpSetSecret,
		TargetType: audit.TargetCustomer,
		TargetKey:  router.IPAddress,
		CustomerID: customer.ID,
		RouterID:   router.ID,
		Username:   customer.Username,
		Err:        err,
	}

	if err != nil {
		if s.recorder != nil {
			s.recorder.RecordFailure(rec)
		}
		slog.Warn("password propagation failed",
			append(s.fields.CustomerLogFields("PASSWORD_PUSH_ERR", customer.ID, customer.Username),
				logging.WithRouterID(router.ID),
				s.fields.WithMobile(customer.Mobile),
				logging.WithLatency(latencyMs),
				logging.WithError(err))...)
		return err
	}

	if s.recorder != nil {
		s.recorder.RecordSuccess(rec)
	}
	slog.Info("password propagated",
		append(s.fields.CustomerLogFields("PASSWORD_PUSH_OK", customer.ID, customer.Username),
			logging.WithRouterID(router.ID),
			logging.WithLatency(latencyMs))...)
	return nil
}
