package swagger_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/meeplewise/advisor/internal/adapters/http/swagger"
)

func TestSwagger(t *testing.T) {
	Convey("Given the API doc routes", t, func() {
		mux := http.NewServeMux()
		swagger.Register(context.Background(), mux)

		Convey("When fetching the doc page", func() {
			req := httptest.NewRequest(http.MethodGet, "/api-docs", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should serve HTML", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
			})
		})

		Convey("When fetching the OpenAPI document", func() {
			req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should serve the embedded spec", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "Board Game Advisor API")
				So(w.Body.String(), ShouldContainSubstring, "/recommend")
			})
		})

		Convey("When registering on a nil mux", func() {
			So(func() { swagger.Register(context.Background(), nil) }, ShouldPanic)
		})
	})
}
