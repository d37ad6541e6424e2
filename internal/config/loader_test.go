package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given the config loader", t, func() {
		// Isolate from ambient environment.
		for _, key := range []string{"ADVISOR_CONFIG", "ADVISOR_ADDR", "ADVISOR_TOP_N", "ADVISOR_LOG_LEVEL"} {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}

		Convey("When loading with no file and no env", func() {
			cfg, err := Load(context.Background())

			Convey("Then defaults should apply", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":8080")
				So(cfg.TopN, ShouldEqual, 3)
			})
		})

		Convey("When env overrides are present", func() {
			t.Setenv("ADVISOR_ADDR", ":9090")
			t.Setenv("ADVISOR_LOG_LEVEL", "debug")

			cfg, err := Load(context.Background())

			Convey("Then they should win over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9090")
				So(cfg.LogLevel, ShouldEqual, "debug")
				So(cfg.CandidateCap, ShouldEqual, 30)
			})
		})

		Convey("When a YAML file is provided", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "advisor.yaml")
			content := []byte("addr: \":7070\"\ntop_n: 5\nfetch_concurrency: 1\n")
			So(os.WriteFile(path, content, 0o600), ShouldBeNil)
			t.Setenv("ADVISOR_CONFIG", path)

			cfg, err := Load(context.Background())

			Convey("Then file values should override defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.TopN, ShouldEqual, 5)
				So(cfg.FetchConcurrency, ShouldEqual, 1)
			})

			Convey("And env should override the file", func() {
				t.Setenv("ADVISOR_ADDR", ":6060")
				cfg, err := Load(context.Background())
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":6060")
			})
		})

		Convey("When the config file is missing", func() {
			t.Setenv("ADVISOR_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

			_, err := Load(context.Background())

			Convey("Then loading should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
