package lambda_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"

	awslambda "github.com/armandopadilla/lasttimei-lamdbda/internal/adapters/lambda"
	repository "github.com/armandopadilla/lasttimei-lamdbda/internal/adapters/repository"
	service "github.com/armandopadilla/lasttimei-lamdbda/internal/app"
	"github.com/armandopadilla/lasttimei-lamdbda/internal/domain/model"
	"github.com/armandopadilla/lasttimei-lamdbda/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

type recordingHandler struct {
	events []model.ButtonEvent
	err    error
}

func (r *recordingHandler) HandleButtonEvent(_ context.Context, ev model.ButtonEvent) error {
	r.events = append(r.events, ev)
	return r.err
}

func TestHandler(t *testing.T) {
	Convey("Given a Lambda context", t, func() {
		ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-123"})

		Convey("When the IoT payload is decoded and handled", func() {
			var ev model.ButtonEvent
			payload := `{"serialNumber":"G030MD027383CRCB","clickType":"SINGLE","batteryVoltage":"1570mV"}`
			So(json.Unmarshal([]byte(payload), &ev), ShouldBeNil)

			svc := &recordingHandler{}
			err := awslambda.NewHandler(svc, nil).Handle(ctx, ev)

			Convey("Then the service sees the event once", func() {
				So(err, ShouldBeNil)
				So(svc.events, ShouldHaveLength, 1)
				So(svc.events[0].SerialNumber, ShouldEqual, "G030MD027383CRCB")
				So(svc.events[0].ClickType, ShouldEqual, "SINGLE")
			})
		})

		Convey("When the service fails", func() {
			cause := errors.New("boom")
			err := awslambda.NewHandler(&recordingHandler{err: cause}, nil).Handle(ctx, model.ButtonEvent{SerialNumber: "X"})

			Convey("Then the error is returned unchanged", func() {
				So(err, ShouldEqual, cause)
			})
		})
	})

	Convey("Given the real service over a memory store", t, func() {
		store := repository.NewMemoryStore()
		h := awslambda.NewHandler(service.New(store), nil)

		Convey("When an unregistered button invokes the function", func() {
			err := h.Handle(context.Background(), model.ButtonEvent{SerialNumber: "UNKNOWN_SERIAL_0000"})

			Convey("Then the invocation fails with the not-registered message", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldEqual, "serial number, UNKNOWN_SERIAL_0000, not registered!")
				So(store.Count(), ShouldEqual, 0)
			})
		})

		Convey("When the registered button invokes the function", func() {
			err := h.Handle(context.Background(), model.ButtonEvent{SerialNumber: "G030MD027383CRCB"})

			Convey("Then one record is stored", func() {
				So(err, ShouldBeNil)
				So(store.Count(), ShouldEqual, 1)
			})
		})
	})
}
