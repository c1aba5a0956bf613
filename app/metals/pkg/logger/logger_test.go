package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/sirupsen/logrus"
)

func TestCustomFormatter(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&CustomFormatter{})

	l.WithField("symbol", "Cu").Warn("price source failed")

	got := buf.String()
	if !strings.Contains(got, "[WARN]") {
		t.Errorf("level missing: %q", got)
	}
	if !strings.HasSuffix(got, "price source failed symbol=Cu\n") {
		t.Errorf("unexpected line: %q", got)
	}
}

func TestKratosLogger(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&CustomFormatter{})

	h := log.NewHelper(NewKratosLogger(l))
	h.Infof("loaded %d elements", 118)

	got := buf.String()
	if !strings.Contains(got, "[INFO]") || !strings.Contains(got, "loaded 118 elements") {
		t.Errorf("unexpected line: %q", got)
	}
}
