package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/armandopadilla/lasttimei-lamdbda/internal/adapters/http/api"
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

// failingDeps reports a non-domain error for every call.
type failingDeps struct{}

func (failingDeps) Press(context.Context, model.ButtonEvent) (model.ActionRecord, error) {
	return model.ActionRecord{}, errors.New("context deadline exceeded")
}

func (failingDeps) Record(context.Context, string) (model.ActionRecord, error) {
	return model.ActionRecord{}, errors.New("connection reset")
}

func (failingDeps) GetStats() map[string]interface{} { return nil }

func newMux(deps api.Dependencies) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps).Register(context.Background(), mux)
	return mux
}

func do(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestServer_Register(t *testing.T) {
	Convey("Given a server over a memory-backed service", t, func() {
		mux := newMux(service.New(repository.NewMemoryStore()))

		Convey("Then health endpoint should report ok", func() {
			w := do(mux, http.MethodGet, "/healthz", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"status":"ok"`)
		})

		Convey("And metrics endpoint should expose the press counter", func() {
			do(mux, http.MethodPost, "/events", `{"serialNumber":"G030MD027383CRCB"}`)
			w := do(mux, http.MethodGet, "/metrics", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "lasttimei_button_presses_total")
			So(w.Body.String(), ShouldContainSubstring, "lasttimei_button_http_requests_total")
		})

		Convey("And stats endpoint should return service stats", func() {
			w := do(mux, http.MethodGet, "/stats", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			var stats map[string]interface{}
			So(json.Unmarshal(w.Body.Bytes(), &stats), ShouldBeNil)
			So(stats["store"], ShouldEqual, "memory")
			So(stats["registeredDevices"], ShouldEqual, 1)
		})

		Convey("And health endpoint should reject POST", func() {
			w := do(mux, http.MethodPost, "/healthz", "")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestEventsHandler(t *testing.T) {
	Convey("Given an events handler over a memory store", t, func() {
		store := repository.NewMemoryStore()
		mux := newMux(service.New(store))

		Convey("When the registered button is posted", func() {
			w := do(mux, http.MethodPost, "/events", `{"serialNumber":"G030MD027383CRCB","clickType":"SINGLE"}`)

			Convey("Then it should return 201 with the record id", func() {
				So(w.Code, ShouldEqual, http.StatusCreated)
				var resp map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["status"], ShouldEqual, "recorded")
				So(resp["id"], ShouldNotBeEmpty)
				So(store.Count(), ShouldEqual, 1)

				Convey("And the record should be readable at /events/{id}", func() {
					g := do(mux, http.MethodGet, "/events/"+resp["id"], "")
					So(g.Code, ShouldEqual, http.StatusOK)
					var rec model.ActionRecord
					So(json.Unmarshal(g.Body.Bytes(), &rec), ShouldBeNil)
					So(rec.ID, ShouldEqual, resp["id"])
					So(rec.Action, ShouldEqual, "ACTION_WASHED_KIDS_BED_SHEETS")
				})
			})
		})

		Convey("When an unregistered button is posted", func() {
			w := do(mux, http.MethodPost, "/events", `{"serialNumber":"UNKNOWN_SERIAL_0000"}`)

			Convey("Then it should return 404 with the not-registered message", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(w.Body.String(), ShouldContainSubstring, `"code":"not_registered"`)
				So(w.Body.String(), ShouldContainSubstring, "serial number, UNKNOWN_SERIAL_0000, not registered!")
				So(store.Count(), ShouldEqual, 0)
			})
		})

		Convey("When the body is not JSON", func() {
			w := do(mux, http.MethodPost, "/events", `{not json`)

			Convey("Then it should return bad request status", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(w.Body.String(), ShouldContainSubstring, "bad request")
			})
		})

		Convey("When handling a non-POST request", func() {
			w := do(mux, http.MethodGet, "/events", "")

			Convey("Then it should return not found status", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When reading an unknown id", func() {
			w := do(mux, http.MethodGet, "/events/does-not-exist", "")

			Convey("Then it should return not found status", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(w.Body.String(), ShouldContainSubstring, `"code":"not_found"`)
			})
		})

		Convey("When reading a nested path", func() {
			w := do(mux, http.MethodGet, "/events/a/b", "")

			Convey("Then it should return bad request status", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})
	})

	Convey("Given a store that rejects writes", t, func() {
		store := repository.NewMemoryStore(repository.WithFailure(errors.New("ProvisionedThroughputExceededException")))
		mux := newMux(service.New(store))

		Convey("When the registered button is posted", func() {
			w := do(mux, http.MethodPost, "/events", `{"serialNumber":"G030MD027383CRCB"}`)

			Convey("Then it should return 502 carrying the store message", func() {
				So(w.Code, ShouldEqual, http.StatusBadGateway)
				So(w.Body.String(), ShouldContainSubstring, `"code":"store_error"`)
				So(w.Body.String(), ShouldContainSubstring, "ProvisionedThroughputExceededException")
			})
		})
	})

	Convey("Given dependencies that fail unexpectedly", t, func() {
		mux := newMux(failingDeps{})

		Convey("Then POST /events should return 500", func() {
			w := do(mux, http.MethodPost, "/events", `{"serialNumber":"G030MD027383CRCB"}`)
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
		})

		Convey("Then GET /events/{id} should return 500", func() {
			w := do(mux, http.MethodGet, "/events/abc", "")
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
		})
	})
}
