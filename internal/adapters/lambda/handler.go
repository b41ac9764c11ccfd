// Package lambda adapts the button service to the AWS Lambda runtime.
package lambda

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/armandopadilla/lasttimei-lamdbda/internal/domain/model"
	"github.com/armandopadilla/lasttimei-lamdbda/pkg/logger"
)

// ButtonHandler is the part of the service a Lambda invocation needs.
type ButtonHandler interface {
	HandleButtonEvent(ctx context.Context, ev model.ButtonEvent) error
}

// Handler turns one IoT button payload into one service call.
type Handler struct {
	svc    ButtonHandler
	logger logger.Logger
}

// NewHandler creates a Handler. A nil logger falls back to the global "lambda" logger.
func NewHandler(svc ButtonHandler, l logger.Logger) *Handler {
	if l == nil {
		l = logger.Named("lambda")
	}
	return &Handler{svc: svc, logger: l}
}

// Handle is registered with lambda.Start. The error is returned unchanged so
// the runtime reports the invocation as failed with the service's message.
func (h *Handler) Handle(ctx context.Context, ev model.ButtonEvent) error {
	fields := []logger.Field{logger.String("serial_number", ev.SerialNumber)}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		fields = append(fields, logger.String("request_id", lc.AwsRequestID))
	}
	log := h.logger.With(fields...)

	log.Debug(ctx, "invocation received", logger.String("click_type", ev.ClickType))

	if err := h.svc.HandleButtonEvent(ctx, ev); err != nil {
		log.Warn(ctx, "invocation failed", logger.Error(err))
		return err
	}
	return nil
}

// Start hands control to the Lambda runtime. It does not return.
func Start(h *Handler) {
	lambda.Start(h.Handle)
}
