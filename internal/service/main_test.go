package service

import (
	"os"
	"testing"

	"github.com/emrgen/logbook/internal/tester"
)

func TestMain(m *testing.M) {
	tester.Setup()
	code := m.Run()

	os.Exit(code)
}
